package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/quarrydev/quarry/internal/iostreams"
)

func testStreams(input string) (iostreams.Streams, *bytes.Buffer) {
	var out bytes.Buffer
	return iostreams.Streams{In: strings.NewReader(input), Out: &out}, &out
}

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		opts  TextOptions
		want  string
	}{
		{"typed answer wins", "Alice\n", TextOptions{Default: "Bob"}, "Alice"},
		{"empty input resolves to default", "\n", TextOptions{Default: "Bob"}, "Bob"},
		{"end of input resolves to default", "", TextOptions{Default: "Bob"}, "Bob"},
		{"end of input without default is empty", "", TextOptions{}, ""},
		{"unterminated input is accepted", "Alice", TextOptions{}, "Alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, _ := testStreams(tt.input)
			got, err := Text(s, "name", tt.opts)
			if err != nil {
				t.Fatalf("Text() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("redraw echoes prompt and answer", func(t *testing.T) {
		t.Parallel()
		s, out := testStreams("Alice\n")
		_, err := Text(s, "name", TextOptions{})
		if err != nil {
			t.Fatalf("Text() error = %v", err)
		}
		got := out.String()
		if !strings.Contains(got, "name") || !strings.Contains(got, "Alice") {
			t.Errorf("redrawn output %q missing prompt or answer", got)
		}
		if !strings.Contains(got, "\x1b[2K") {
			t.Errorf("output %q never erased the prompt line", got)
		}
	})

	t.Run("default is shown as dim hint", func(t *testing.T) {
		t.Parallel()
		s, out := testStreams("\n")
		_, _ = Text(s, "name", TextOptions{Default: "Bob"})
		if !strings.Contains(out.String(), "(Bob)") {
			t.Errorf("output %q missing default hint", out.String())
		}
	})
}

func TestTextHidden(t *testing.T) {
	t.Parallel()

	t.Run("masks the echoed answer", func(t *testing.T) {
		t.Parallel()
		s, out := testStreams("hunter2\r")
		got, err := Text(s, "password", TextOptions{Hidden: true})
		if err != nil {
			t.Fatalf("Text() error = %v", err)
		}
		if got != "hunter2" {
			t.Errorf("Text() = %q, want %q", got, "hunter2")
		}
		rendered := out.String()
		if strings.Contains(rendered, "hunter2") {
			t.Errorf("hidden answer leaked into output: %q", rendered)
		}
		if !strings.Contains(rendered, mask) {
			t.Errorf("output %q missing mask placeholder", rendered)
		}
	})

	t.Run("honors backspace", func(t *testing.T) {
		t.Parallel()
		s, _ := testStreams("abcd\x7f\x7fz\r")
		got, err := Text(s, "secret", TextOptions{Hidden: true})
		if err != nil {
			t.Fatalf("Text() error = %v", err)
		}
		if got != "abz" {
			t.Errorf("Text() = %q, want %q", got, "abz")
		}
	})

	t.Run("end of input resolves to default", func(t *testing.T) {
		t.Parallel()
		s, _ := testStreams("")
		got, err := Text(s, "secret", TextOptions{Hidden: true, Default: "fallback"})
		if err != nil {
			t.Fatalf("Text() error = %v", err)
		}
		if got != "fallback" {
			t.Errorf("Text() = %q, want %q", got, "fallback")
		}
	})
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"immediate enter returns default true", "\n", true, true},
		{"immediate enter returns default false", "\n", false, false},
		{"n overrides default true", "n\n", true, false},
		{"unrecognized token falls back to default", "banana\n", true, true},
		{"yes", "yes\n", false, true},
		{"YEP is case insensitive", "YEP\n", false, true},
		{"yeah", "yeah\n", false, true},
		{"nope", "nope\n", true, false},
		{"end of input returns default", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, _ := testStreams(tt.input)
			got, err := Confirm(s, "proceed?", tt.def)
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q, default=%v) = %v, want %v", tt.input, tt.def, got, tt.want)
			}
		})
	}

	t.Run("echoes Yes or No", func(t *testing.T) {
		t.Parallel()
		s, out := testStreams("y\n")
		_, _ = Confirm(s, "proceed?", false)
		if !strings.Contains(out.String(), "Yes") {
			t.Errorf("output %q missing echoed answer", out.String())
		}
	})
}

func TestChooseOne(t *testing.T) {
	t.Parallel()

	choices := []string{"red", "green", "blue"}

	t.Run("enter confirms the default", func(t *testing.T) {
		t.Parallel()
		s, _ := testStreams("\r")
		got, err := ChooseOne(s, "pick", choices, "green")
		if err != nil {
			t.Fatalf("ChooseOne() error = %v", err)
		}
		if got != "green" {
			t.Errorf("ChooseOne() = %q, want %q", got, "green")
		}
	})

	t.Run("down arrow from default moves to next", func(t *testing.T) {
		t.Parallel()
		s, _ := testStreams("\x1b[B\r")
		got, err := ChooseOne(s, "pick", choices, "green")
		if err != nil {
			t.Fatalf("ChooseOne() error = %v", err)
		}
		if got != "blue" {
			t.Errorf("ChooseOne() = %q, want %q", got, "blue")
		}
	})

	t.Run("up arrow wraps around", func(t *testing.T) {
		t.Parallel()
		s, _ := testStreams("\x1b[A\r")
		got, err := ChooseOne(s, "pick", choices, "red")
		if err != nil {
			t.Fatalf("ChooseOne() error = %v", err)
		}
		if got != "blue" {
			t.Errorf("ChooseOne() = %q, want %q", got, "blue")
		}
	})

	t.Run("down arrow wraps around", func(t *testing.T) {
		t.Parallel()
		s, _ := testStreams("\x1b[B\r")
		got, err := ChooseOne(s, "pick", choices, "blue")
		if err != nil {
			t.Fatalf("ChooseOne() error = %v", err)
		}
		if got != "red" {
			t.Errorf("ChooseOne() = %q, want %q", got, "red")
		}
	})

	t.Run("unknown default starts at first choice", func(t *testing.T) {
		t.Parallel()
		s, _ := testStreams("\r")
		got, err := ChooseOne(s, "pick", choices, "magenta")
		if err != nil {
			t.Fatalf("ChooseOne() error = %v", err)
		}
		if got != "red" {
			t.Errorf("ChooseOne() = %q, want %q", got, "red")
		}
	})

	t.Run("end of input confirms current selection", func(t *testing.T) {
		t.Parallel()
		s, _ := testStreams("\x1b[B")
		got, err := ChooseOne(s, "pick", choices, "red")
		if err != nil {
			t.Fatalf("ChooseOne() error = %v", err)
		}
		if got != "green" {
			t.Errorf("ChooseOne() = %q, want %q", got, "green")
		}
	})

	t.Run("cursor hidden during interaction and shown after", func(t *testing.T) {
		t.Parallel()
		s, out := testStreams("\r")
		_, _ = ChooseOne(s, "pick", choices, "")
		got := out.String()
		if !strings.Contains(got, "\x1b[?25l") || !strings.Contains(got, "\x1b[?25h") {
			t.Errorf("output %q missing cursor hide/show", got)
		}
		if !strings.HasSuffix(got, "\x1b[?25h") {
			t.Errorf("cursor not shown as the final write: %q", got)
		}
	})

	t.Run("final line echoes message and dimmed choice", func(t *testing.T) {
		t.Parallel()
		s, out := testStreams("\r")
		_, _ = ChooseOne(s, "pick", choices, "green")
		if !strings.Contains(out.String(), "pick") || !strings.Contains(out.String(), "green") {
			t.Errorf("final output %q missing confirmation line", out.String())
		}
	})

	t.Run("empty choice list is an error", func(t *testing.T) {
		t.Parallel()
		s, _ := testStreams("\r")
		if _, err := ChooseOne(s, "pick", nil, ""); err != ErrNoChoices {
			t.Errorf("ChooseOne(nil choices) error = %v, want ErrNoChoices", err)
		}
	})
}

func TestKeyWindow(t *testing.T) {
	t.Parallel()

	t.Run("recognizes arrow sequences", func(t *testing.T) {
		t.Parallel()
		var w keyWindow
		seq := []byte{0x1b, '[', 'A'}
		var got key
		for _, b := range seq {
			got = w.feed(b)
		}
		if got != keyUp {
			t.Errorf("feed(up sequence) = %v, want keyUp", got)
		}
	})

	t.Run("enter is recognized as a single byte", func(t *testing.T) {
		t.Parallel()
		var w keyWindow
		if got := w.feed('\r'); got != keyEnter {
			t.Errorf("feed(CR) = %v, want keyEnter", got)
		}
		if got := w.feed('\n'); got != keyEnter {
			t.Errorf("feed(LF) = %v, want keyEnter", got)
		}
	})

	t.Run("clears at capacity without a match", func(t *testing.T) {
		t.Parallel()
		var w keyWindow
		for _, b := range []byte{'x', 'y', 'z'} {
			if got := w.feed(b); got != keyNone {
				t.Fatalf("feed(%q) = %v, want keyNone", b, got)
			}
		}
		// A fresh arrow sequence must match after the clear.
		var got key
		for _, b := range []byte{0x1b, '[', 'B'} {
			got = w.feed(b)
		}
		if got != keyDown {
			t.Errorf("feed(down after clear) = %v, want keyDown", got)
		}
	})

	t.Run("clears after a match", func(t *testing.T) {
		t.Parallel()
		var w keyWindow
		for _, b := range []byte{0x1b, '[', 'A'} {
			w.feed(b)
		}
		var got key
		for _, b := range []byte{0x1b, '[', 'A'} {
			got = w.feed(b)
		}
		if got != keyUp {
			t.Errorf("second sequence after match = %v, want keyUp", got)
		}
	})
}
