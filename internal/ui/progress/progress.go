// Package progress renders a ticking, redrawing status line with an
// elapsed-time suffix.
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/quarrydev/quarry/internal/ansi"
	"github.com/quarrydev/quarry/internal/iostreams"
	"github.com/quarrydev/quarry/internal/style"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const defaultInterval = 100 * time.Millisecond

// Progress is a live status line. It owns its output stream from Start
// until the first terminal call (Complete, Fail or Cancel); callers
// must not write to the same stream in between.
type Progress struct {
	mu         sync.Mutex
	out        io.Writer
	msg        string
	started    time.Time
	interval   time.Duration
	ticker     *time.Ticker
	done       chan struct{}
	finished   bool
	frame      int
	lastRender string
}

// Option adjusts a Progress before it starts ticking.
type Option func(*Progress)

// WithInterval overrides the tick interval. Tests use this to keep the
// background redraw quiet.
func WithInterval(d time.Duration) Option {
	return func(p *Progress) { p.interval = d }
}

// Start emits msg immediately and begins redrawing it with an elapsed
// time suffix on every tick. The output stream is resolved once, at
// start.
func Start(msg string, opts ...Option) *Progress {
	p := &Progress{
		out:      iostreams.Current().Out,
		msg:      msg,
		started:  time.Now(),
		interval: defaultInterval,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.mu.Lock()
	p.render()
	p.mu.Unlock()

	p.ticker = time.NewTicker(p.interval)
	go p.loop()
	return p
}

func (p *Progress) loop() {
	for {
		select {
		case <-p.done:
			return
		case <-p.ticker.C:
			p.mu.Lock()
			if !p.finished {
				p.frame++
				p.render()
			}
			p.mu.Unlock()
		}
	}
}

// render redraws the indicator's own rows. Callers hold p.mu, so a
// tick can never interleave with a terminal redraw.
func (p *Progress) render() {
	line := fmt.Sprintf("%s %s %s",
		style.BrightCyan.Wrap(frames[p.frame%len(frames)]),
		p.msg,
		style.DarkGray.Wrap(p.elapsed()))
	fmt.Fprint(p.out, ansi.EraseLines(ansi.LineSpan(p.lastRender))+line)
	p.lastRender = line
}

// Update replaces the status message on the next redraw.
func (p *Progress) Update(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished {
		return
	}
	p.msg = msg
	p.render()
}

// Complete finalizes the line with a green check mark. An optional
// update replaces the message on the final line.
func (p *Progress) Complete(update ...string) {
	p.finish(style.BrightGreen.Wrap("✓"), update)
}

// Fail finalizes the line with a red cross.
func (p *Progress) Fail(update ...string) {
	p.finish(style.BrightRed.Wrap("✗"), update)
}

// Cancel finalizes the line with a yellow ring.
func (p *Progress) Cancel(update ...string) {
	p.finish(style.Yellow.Wrap("○"), update)
}

// finish applies the single permitted terminal transition: it stops
// the ticker and redraws the line once with the outcome glyph, the
// final elapsed time and a trailing newline. Any transition after the
// first is a no-op, so guard-based cleanup can call Fail
// unconditionally after Complete already ran.
func (p *Progress) finish(glyph string, update []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished {
		return
	}
	p.finished = true
	p.ticker.Stop()
	close(p.done)

	msg := p.msg
	if len(update) > 0 && update[0] != "" {
		msg = update[0]
	}
	line := fmt.Sprintf("%s %s %s", glyph, msg, style.DarkGray.Wrap(p.elapsed()))
	fmt.Fprint(p.out, ansi.EraseLines(ansi.LineSpan(p.lastRender))+line+"\n")
	p.lastRender = line
}

func (p *Progress) elapsed() string {
	return fmt.Sprintf("(%.1fs)", time.Since(p.started).Seconds())
}
