package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/quarrydev/quarry/internal/ansi"
	"github.com/quarrydev/quarry/internal/iostreams"
	"github.com/quarrydev/quarry/internal/rawmode"
	"github.com/quarrydev/quarry/internal/style"
)

// ErrNoChoices reports a choice prompt with an empty choice list.
var ErrNoChoices = errors.New("prompt: no choices")

// ChooseOne renders choices below message with the current selection
// highlighted and moves the selection with the arrow keys, wrapping
// around at either end. Enter confirms. The initial selection is the
// index of def in choices, or the first entry.
//
// The list is fully redrawn in place on every keypress; on completion
// it collapses to a single line holding message and the dimmed chosen
// value. The cursor is hidden during interaction and shown again on
// every exit path. End of input confirms the current selection.
func ChooseOne(s iostreams.Streams, message string, choices []string, def string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	sess, err := rawmode.Acquire(s.In)
	if err != nil {
		return "", err
	}
	defer sess.Release() //nolint:errcheck // restoration is best effort on the error path

	fmt.Fprint(s.Out, ansi.HideCursor)
	defer fmt.Fprint(s.Out, ansi.ShowCursor)

	selected := 0
	for i, c := range choices {
		if c == def {
			selected = i
			break
		}
	}

	fmt.Fprint(s.Out, ansi.CursorSave)
	fmt.Fprint(s.Out, renderChoices(message, choices, selected))

	var win keyWindow
	b := make([]byte, 1)
	reading := true
	for reading {
		n, rerr := s.In.Read(b)
		if n > 0 {
			switch win.feed(b[0]) {
			case keyUp:
				selected = (selected - 1 + len(choices)) % len(choices)
				fmt.Fprint(s.Out, ansi.CursorRestore+ansi.EraseDown)
				fmt.Fprint(s.Out, renderChoices(message, choices, selected))
			case keyDown:
				selected = (selected + 1) % len(choices)
				fmt.Fprint(s.Out, ansi.CursorRestore+ansi.EraseDown)
				fmt.Fprint(s.Out, renderChoices(message, choices, selected))
			case keyEnter:
				reading = false
			}
		}
		if rerr != nil {
			// End of input confirms the current selection.
			reading = false
			if n == 0 && !errors.Is(rerr, io.EOF) {
				fmt.Fprint(s.Out, ansi.CursorRestore+ansi.EraseDown)
				return "", rerr
			}
		}
	}

	choice := choices[selected]
	fmt.Fprint(s.Out, ansi.CursorRestore+ansi.EraseDown)
	fmt.Fprint(s.Out, message+" "+style.DarkGray.Wrap(choice)+"\r\n")
	return choice, nil
}

// renderChoices draws the message and one row per choice. Raw mode
// disables output post-processing, so rows end with an explicit \r\n.
func renderChoices(message string, choices []string, selected int) string {
	var b strings.Builder
	b.WriteString(message)
	for i, c := range choices {
		b.WriteString("\r\n")
		if i == selected {
			b.WriteString(" " + style.BrightCyan.Wrap("❯") + " " + style.BrightCyan.Wrap("◉") + "  " + style.BrightCyan.Wrap(c))
		} else {
			b.WriteString("   ◯  " + c)
		}
	}
	return b.String()
}
