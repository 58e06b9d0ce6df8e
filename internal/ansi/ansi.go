// Package ansi names the escape sequences and key bytes the terminal
// engine emits and recognizes.
package ansi

import "strings"

const esc = "\x1b"

// Cursor and line control sequences.
const (
	EraseLine     = esc + "[2K"
	EraseDown     = esc + "[J"
	CursorUp      = esc + "[1A"
	CursorSave    = esc + "7"
	CursorRestore = esc + "8"
	HideCursor    = esc + "[?25l"
	ShowCursor    = esc + "[?25h"
)

// Input bytes recognized by the prompt engine.
const (
	KeyEscape     byte = 0x1b
	KeyEnter      byte = '\r'
	KeyLineFeed   byte = '\n'
	KeyBackspace  byte = 0x7f
	KeyDelete     byte = 0x08
	KeyEndOfText  byte = 0x03 // ctrl-c
	KeyEndOfInput byte = 0x04 // ctrl-d
)

// Arrow-key CSI sequences as delivered in raw mode.
var (
	SeqUp   = [3]byte{KeyEscape, '[', 'A'}
	SeqDown = [3]byte{KeyEscape, '[', 'B'}
)

// LineSpan reports how many terminal rows text occupies, counting
// embedded line breaks. The empty string still spans one row.
func LineSpan(text string) int {
	return 1 + strings.Count(text, "\n")
}

// EraseLines moves the cursor to column zero and erases n rows upward,
// leaving the cursor at the start of the topmost erased row. n <= 0
// erases nothing.
func EraseLines(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\r")
	b.WriteString(EraseLine)
	for i := 1; i < n; i++ {
		b.WriteString(CursorUp)
		b.WriteString(EraseLine)
	}
	return b.String()
}
