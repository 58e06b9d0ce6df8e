package prompt

import "github.com/quarrydev/quarry/internal/ansi"

type key int

const (
	keyNone key = iota
	keyUp
	keyDown
	keyEnter
)

// keyWindow recognizes multi-byte escape sequences from an unbuffered
// byte stream. It holds at most three bytes and is cleared whenever a
// sequence completes or capacity is reached without a match.
type keyWindow struct {
	buf [3]byte
	n   int
}

// feed consumes one raw input byte and reports the key it completes,
// if any.
func (w *keyWindow) feed(b byte) key {
	if b == ansi.KeyEnter || b == ansi.KeyLineFeed {
		w.n = 0
		return keyEnter
	}

	w.buf[w.n] = b
	w.n++
	if w.n < len(w.buf) {
		return keyNone
	}

	w.n = 0
	switch w.buf {
	case ansi.SeqUp:
		return keyUp
	case ansi.SeqDown:
		return keyDown
	}
	return keyNone
}
