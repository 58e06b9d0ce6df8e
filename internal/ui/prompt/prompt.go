// Package prompt drives raw-mode interactive reads: free text with
// defaults and in-place redraw, hidden input, yes/no confirmation and
// arrow-key single choice.
//
// Every entry point redraws its own prompt line exactly once per read,
// erasing as many terminal rows as the prompt text spanned, and
// restores raw mode, echo and cursor visibility on every exit path.
// End of input is never an error: it resolves to the default answer.
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

// mask replaces hidden answers in the redrawn echo.
const mask = "******"

// TextOptions configures a Text prompt.
type TextOptions struct {
	// Default is returned for empty input and rendered as a dim hint.
	Default string
	// Hidden reads byte-by-byte in raw mode and masks the echo.
	Hidden bool
}

// Text writes message, reads one line and redraws the prompt line with
// the accepted answer. Empty input and end of input resolve to the
// default. Hidden prompts on a non-terminal file return
// rawmode.ErrNotTerminal.
func Text(s iostreams.Streams, message string, opts TextOptions) (string, error) {
	hint := message
	if opts.Default != "" {
		hint += " " + style.DarkGray.Wrap("("+opts.Default+")")
	}
	fmt.Fprint(s.Out, hint+" ")

	var answer string
	echoRows := 0
	if opts.Hidden {
		sess, err := rawmode.Acquire(s.In)
		if err != nil {
			fmt.Fprintln(s.Out)
			return "", err
		}
		raw, rerr := readHidden(s.In)
		if relErr := sess.Release(); relErr != nil {
			return "", relErr
		}
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return "", rerr
		}
		answer = raw
	} else {
		line, rerr := readLine(s.In)
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return "", rerr
		}
		answer = line
		// Line-mode enter echoed onto a fresh row.
		echoRows = 1
	}

	if answer == "" {
		answer = opts.Default
	}

	display := answer
	if opts.Hidden && answer != "" {
		display = mask
	}
	redraw(s, hint, display, echoRows)
	return answer, nil
}

var (
	affirmative = []string{"y", "yes", "yea", "yeah", "yep", "yup"}
	negative    = []string{"n", "no", "nope"}
)

// Confirm asks a yes/no question. Answers are matched case
// insensitively against a fixed vocabulary; anything unrecognized,
// including empty input and end of input, resolves to def.
func Confirm(s iostreams.Streams, message string, def bool) (bool, error) {
	suffix := "(y/N)"
	if def {
		suffix = "(Y/n)"
	}
	hint := message + " " + style.DarkGray.Wrap(suffix)
	fmt.Fprint(s.Out, hint+" ")

	line, rerr := readLine(s.In)
	if rerr != nil && !errors.Is(rerr, io.EOF) {
		return def, rerr
	}

	answer := def
	switch token := strings.ToLower(strings.TrimSpace(line)); {
	case contains(affirmative, token):
		answer = true
	case contains(negative, token):
		answer = false
	}

	echo := "No"
	if answer {
		echo = "Yes"
	}
	redraw(s, hint, echo, 1)
	return answer, nil
}

func contains(vocab []string, token string) bool {
	for _, v := range vocab {
		if v == token {
			return true
		}
	}
	return false
}

// redraw erases the prompt's own rows plus any rows the input echo
// consumed and rewrites the prompt with the accepted answer dimmed.
func redraw(s iostreams.Streams, hint, answer string, echoRows int) {
	rows := ansi.LineSpan(hint) + echoRows
	fmt.Fprint(s.Out, ansi.EraseLines(rows))
	fmt.Fprintln(s.Out, hint+" "+style.DarkGray.Wrap(answer))
}
