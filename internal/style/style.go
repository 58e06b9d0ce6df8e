// Package style wraps text in ANSI SGR codes.
//
// Every style closes with its own style-specific terminator (bold and
// dim close with 22, foreground colors with 39) rather than a full
// reset, so nested wraps compose without the inner close clobbering
// the outer style. Styling is applied unconditionally; whether to
// style at all is the caller's policy.
package style

import "fmt"

// Style is an immutable pair of SGR open/close sequences. The zero
// value applies no styling.
type Style struct {
	open  string
	close string
}

// New returns a style opening with the given SGR parameter and closing
// with its style-specific terminator.
func New(open, close int) Style {
	return Style{
		open:  fmt.Sprintf("\x1b[%dm", open),
		close: fmt.Sprintf("\x1b[%dm", close),
	}
}

// Wrap surrounds text with the style's open and close sequences. The
// zero style returns text unchanged.
func (s Style) Wrap(text string) string {
	if s.open == "" {
		return text
	}
	return s.open + text + s.close
}

// Wrapf formats according to format and wraps the result.
func (s Style) Wrapf(format string, args ...any) string {
	return s.Wrap(fmt.Sprintf(format, args...))
}

// Compose returns a style that applies all given styles. Opens are
// emitted in argument order, closes in reverse.
func Compose(styles ...Style) Style {
	var c Style
	for _, s := range styles {
		c.open += s.open
		c.close = s.close + c.close
	}
	return c
}

// Attribute styles. Both bold and dim terminate with SGR 22
// (normal intensity).
var (
	Bold = New(1, 22)
	Dim  = New(2, 22)
)

// Foreground colors, all terminating with SGR 39 (default foreground).
var (
	Red         = New(31, 39)
	Green       = New(32, 39)
	Yellow      = New(33, 39)
	Cyan        = New(36, 39)
	DarkGray    = New(90, 39)
	BrightRed   = New(91, 39)
	BrightGreen = New(92, 39)
	BrightCyan  = New(96, 39)
)

// Compound styles used by the semantic output levels.
var (
	BoldYellow     = Compose(Bold, Yellow)
	BoldBrightCyan = Compose(Bold, BrightCyan)
)
