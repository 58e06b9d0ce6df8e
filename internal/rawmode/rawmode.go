// Package rawmode provides scoped acquisition of raw terminal input.
//
// A Session disables line buffering and echo on the underlying
// terminal and restores the exact prior mode bits on release. Sessions
// nest: acquiring a file descriptor that is already raw is a no-op,
// and the original pre-nesting state is restored only when the last
// session on that descriptor is released. Callers must release in a
// defer so restoration survives every exit path.
package rawmode

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal reports that the input stream is a real file that is
// not attached to a terminal, so raw mode cannot be acquired. Callers
// that need byte-level input should fall back to plain line reads.
var ErrNotTerminal = errors.New("rawmode: input is not a terminal")

// Session is a handle on raw-mode input.
type Session struct {
	fd       int
	mem      bool
	released bool
}

type holder struct {
	refs  int
	prior *term.State
}

var (
	mu      sync.Mutex
	holders = map[int]*holder{}
)

// Acquire puts the terminal behind in into raw mode.
//
// Non-file readers (in-memory test streams) yield a no-op session so
// byte-oriented prompt logic can run against them unchanged. A real
// file that is not a terminal returns ErrNotTerminal.
func Acquire(in io.Reader) (*Session, error) {
	f, ok := in.(*os.File)
	if !ok {
		return &Session{mem: true}, nil
	}

	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	mu.Lock()
	defer mu.Unlock()

	h := holders[fd]
	if h == nil {
		prior, err := term.MakeRaw(fd)
		if err != nil {
			return nil, fmt.Errorf("enable raw mode: %w", err)
		}
		h = &holder{prior: prior}
		holders[fd] = h
	}
	h.refs++

	return &Session{fd: fd}, nil
}

// Release restores the terminal mode captured by the first acquisition
// once every nested session has been released. Releasing twice, or
// releasing a session on an in-memory stream, does nothing.
func (s *Session) Release() error {
	if s == nil || s.released || s.mem {
		if s != nil {
			s.released = true
		}
		return nil
	}
	s.released = true

	mu.Lock()
	defer mu.Unlock()

	h := holders[s.fd]
	if h == nil {
		return nil
	}
	h.refs--
	if h.refs > 0 {
		return nil
	}
	delete(holders, s.fd)
	if err := term.Restore(s.fd, h.prior); err != nil {
		return fmt.Errorf("restore terminal mode: %w", err)
	}
	return nil
}
