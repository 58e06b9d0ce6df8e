// Package ui is the terminal interaction engine.
//
// A Logger is the single facade callers hold: semantic one-line output
// (info, error, warning, success, alert, detail), a deferred message
// queue, and entry points into the progress indicator and the
// interactive prompts. All output resolves the active stream pair
// through the iostreams package at call time, so scoped overrides
// apply to everything the engine writes.
package ui

import (
	"fmt"
	"sync"

	"github.com/quarrydev/quarry/internal/iostreams"
	"github.com/quarrydev/quarry/internal/style"
	"github.com/quarrydev/quarry/internal/ui/progress"
	"github.com/quarrydev/quarry/internal/ui/prompt"
)

// Logger writes styled, line-oriented user feedback.
type Logger struct {
	mu    sync.Mutex
	queue []string
}

// New returns a Logger resolving streams through iostreams.Current.
func New() *Logger {
	return &Logger{}
}

// Write emits msg without a trailing newline.
func (l *Logger) Write(msg string) {
	fmt.Fprint(iostreams.Current().Out, msg)
}

// Info emits one unstyled line.
func (l *Logger) Info(msg string) {
	fmt.Fprintln(iostreams.Current().Out, msg)
}

// Err emits one bright red line.
func (l *Logger) Err(msg string) {
	fmt.Fprintln(iostreams.Current().Out, style.BrightRed.Wrap(msg))
}

// Warn emits one bold yellow line prefixed with a bracketed tag.
// The tag defaults to "WARN".
func (l *Logger) Warn(msg string, tag ...string) {
	t := "WARN"
	if len(tag) > 0 && tag[0] != "" {
		t = tag[0]
	}
	fmt.Fprintln(iostreams.Current().Out, style.BoldYellow.Wrapf("[%s] %s", t, msg))
}

// Success emits one bright green line.
func (l *Logger) Success(msg string) {
	fmt.Fprintln(iostreams.Current().Out, style.BrightGreen.Wrap(msg))
}

// Alert emits one bold bright cyan line.
func (l *Logger) Alert(msg string) {
	fmt.Fprintln(iostreams.Current().Out, style.BoldBrightCyan.Wrap(msg))
}

// Detail emits one dim gray line.
func (l *Logger) Detail(msg string) {
	fmt.Fprintln(iostreams.Current().Out, style.DarkGray.Wrap(msg))
}

// Delayed enqueues msg without emitting it.
func (l *Logger) Delayed(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.queue = append(l.queue, msg)
}

// Flush drains the deferred queue through sink, defaulting to Info.
// Flushing an empty queue does nothing.
func (l *Logger) Flush(sink ...func(string)) {
	emit := l.Info
	if len(sink) > 0 && sink[0] != nil {
		emit = sink[0]
	}

	l.mu.Lock()
	queued := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, msg := range queued {
		emit(msg)
	}
}

// Progress starts a progress indicator for msg. The caller must
// complete it with exactly one terminal call; further calls are
// no-ops. No other writes may go to the same stream while the
// indicator is live.
func (l *Logger) Progress(msg string) *progress.Progress {
	return progress.Start(msg)
}

// Prompt writes message and reads one line of input, resolving empty
// input (and end of input) to opts.Default. See prompt.Text.
func (l *Logger) Prompt(message string, opts prompt.TextOptions) (string, error) {
	return prompt.Text(iostreams.Current(), message, opts)
}

// Confirm asks a yes/no question. Unrecognized or empty answers
// resolve to def. See prompt.Confirm.
func (l *Logger) Confirm(message string, def bool) (bool, error) {
	return prompt.Confirm(iostreams.Current(), message, def)
}

// ChooseOne renders choices and returns the arrow-key selection.
// See prompt.ChooseOne.
func (l *Logger) ChooseOne(message string, choices []string, def string) (string, error) {
	return prompt.ChooseOne(iostreams.Current(), message, choices, def)
}
