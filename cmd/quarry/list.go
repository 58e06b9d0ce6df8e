package main

import (
	"fmt"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/quarrydev/quarry/internal/cache"
	"github.com/quarrydev/quarry/internal/ui"
	"github.com/quarrydev/quarry/internal/ui/static"
)

// runList prints the cached bricks, optionally fuzzy-filtered by name.
func runList(c *cache.Cache, filter string) error {
	l := ui.New()

	entries, err := c.List()
	if err != nil {
		return err
	}
	if filter != "" {
		entries = filterEntries(entries, filter)
	}
	if len(entries) == 0 {
		if filter != "" {
			l.Detail(fmt.Sprintf("No cached bricks match %q.", filter))
		} else {
			l.Detail("No bricks cached. Fetch one with 'quarry get'.")
		}
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		rows = append(rows, []string{e.Name, version, e.Source, formatFetched(e.FetchedAt)})
	}
	l.Write(static.RenderTable([]string{"NAME", "VERSION", "SOURCE", "FETCHED"}, rows))
	return nil
}

// entryNames adapts cache entries to the fuzzy matcher.
type entryNames []cache.Entry

func (e entryNames) String(i int) string { return e[i].Name }
func (e entryNames) Len() int            { return len(e) }

// filterEntries keeps the entries whose names fuzzy-match pattern,
// best match first.
func filterEntries(entries []cache.Entry, pattern string) []cache.Entry {
	matches := fuzzy.FindFrom(pattern, entryNames(entries))
	out := make([]cache.Entry, 0, len(matches))
	for _, m := range matches {
		out = append(out, entries[m.Index])
	}
	return out
}

// formatFetched renders a fetch time as a coarse relative age.
func formatFetched(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
