// Package iostreams resolves the input/output streams the terminal
// engine writes to and reads from.
//
// By default every component talks to the real process streams. Tests
// (and embedders) can substitute in-memory streams for a bounded scope
// with [WithOverrides]; overrides nest and are restored LIFO, so a
// nested scope always recovers its parent's streams, not the process
// defaults.
package iostreams

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Streams is a resolved input/output stream pair.
type Streams struct {
	In  io.Reader
	Out io.Writer
}

// System returns the streams bound to the real terminal.
func System() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout}
}

// Interactive reports whether the input stream is attached to a
// terminal and therefore suitable for raw-mode prompts.
func (s Streams) Interactive() bool {
	f, ok := s.In.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var (
	mu    sync.Mutex
	stack []Streams
)

// CanPrompt reports whether interactive prompts can read input: an
// override is active (test or embedder streams drive the input), or
// the real stdin is a terminal.
func CanPrompt() bool {
	mu.Lock()
	overridden := len(stack) > 0
	mu.Unlock()
	return overridden || System().Interactive()
}

// Current resolves the innermost active override, falling back to the
// real terminal streams when none is active.
func Current() Streams {
	mu.Lock()
	defer mu.Unlock()
	if n := len(stack); n > 0 {
		return stack[n-1]
	}
	return System()
}

// Push activates s as the innermost override and returns a restore
// function. A nil In or Out inherits the respective stream from the
// resolution active at push time. The restore function is idempotent
// and pops the frame (and anything pushed above it) so that resolution
// returns to exactly what was active before the push.
func Push(s Streams) (restore func()) {
	mu.Lock()
	defer mu.Unlock()

	if s.In == nil || s.Out == nil {
		cur := System()
		if n := len(stack); n > 0 {
			cur = stack[n-1]
		}
		if s.In == nil {
			s.In = cur.In
		}
		if s.Out == nil {
			s.Out = cur.Out
		}
	}

	depth := len(stack)
	stack = append(stack, s)

	var once sync.Once
	return func() {
		once.Do(func() {
			mu.Lock()
			defer mu.Unlock()
			if len(stack) > depth {
				stack = stack[:depth]
			}
		})
	}
}

// WithOverrides runs body with s active as the innermost stream
// resolution, restoring the previous resolution afterwards even if
// body returns an error or panics.
func WithOverrides(s Streams, body func() error) error {
	restore := Push(s)
	defer restore()
	return body()
}
