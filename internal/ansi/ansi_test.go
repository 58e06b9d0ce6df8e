package ansi

import (
	"strings"
	"testing"
)

func TestLineSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 1},
		{"single line", "pick a color", 1},
		{"two lines", "question\nhint", 2},
		{"trailing newline", "question\n", 2},
		{"three lines", "a\nb\nc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := LineSpan(tt.text); got != tt.want {
				t.Errorf("LineSpan(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestEraseLines(t *testing.T) {
	t.Parallel()

	t.Run("zero erases nothing", func(t *testing.T) {
		t.Parallel()
		if got := EraseLines(0); got != "" {
			t.Errorf("EraseLines(0) = %q, want empty", got)
		}
	})

	t.Run("one line stays on the current row", func(t *testing.T) {
		t.Parallel()
		got := EraseLines(1)
		if got != "\r"+EraseLine {
			t.Errorf("EraseLines(1) = %q", got)
		}
		if strings.Contains(got, CursorUp) {
			t.Error("EraseLines(1) must not move the cursor up")
		}
	})

	t.Run("n lines move up n-1 times", func(t *testing.T) {
		t.Parallel()
		got := EraseLines(3)
		if ups := strings.Count(got, CursorUp); ups != 2 {
			t.Errorf("EraseLines(3) moved up %d times, want 2", ups)
		}
		if erases := strings.Count(got, EraseLine); erases != 3 {
			t.Errorf("EraseLines(3) erased %d lines, want 3", erases)
		}
	})
}
