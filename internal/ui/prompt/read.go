package prompt

import (
	"io"

	"github.com/quarrydev/quarry/internal/ansi"
)

// readLine reads bytes one at a time until a line terminator, without
// buffering past it, so consecutive prompts on the same stream never
// steal each other's input. The terminator is not included. End of
// input returns what was accumulated together with io.EOF.
func readLine(r io.Reader) (string, error) {
	var line []byte
	b := make([]byte, 1)
	for {
		n, err := r.Read(b)
		if n > 0 {
			c := b[0]
			if c == ansi.KeyLineFeed || c == ansi.KeyEnter {
				return string(line), nil
			}
			line = append(line, c)
		}
		if err != nil {
			return string(line), err
		}
	}
}

// readHidden accumulates raw-mode input without echoing it, honoring
// backspace and delete. Enter finishes the read; ctrl-c, ctrl-d and
// end of input finish it too, accepting whatever was typed so far.
func readHidden(r io.Reader) (string, error) {
	var line []byte
	b := make([]byte, 1)
	for {
		n, err := r.Read(b)
		if n > 0 {
			switch c := b[0]; c {
			case ansi.KeyEnter, ansi.KeyLineFeed:
				return string(line), nil
			case ansi.KeyBackspace, ansi.KeyDelete:
				if len(line) > 0 {
					line = line[:len(line)-1]
				}
			case ansi.KeyEndOfText, ansi.KeyEndOfInput:
				return string(line), io.EOF
			default:
				if c >= 0x20 {
					line = append(line, c)
				}
			}
		}
		if err != nil {
			return string(line), err
		}
	}
}
