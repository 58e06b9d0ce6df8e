package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quarrydev/quarry/internal/cache"
	"github.com/quarrydev/quarry/internal/config"
	"github.com/quarrydev/quarry/internal/iostreams"
)

// writeTestBrick lays out a brick with a manifest and payload files.
func writeTestBrick(t *testing.T, dir, manifest string, payload map[string]string) {
	t.Helper()
	writeBrick(t, dir, manifest)
	for rel, content := range payload {
		path := filepath.Join(dir, "__brick__", rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRunNew(t *testing.T) {
	brickDir := t.TempDir()
	writeTestBrick(t, brickDir, `
name = "webapp"
description = "A web application"

[vars.name]
prompt = "Project name?"
default = "app"
`, map[string]string{
		"README.md":       "# {{name}}\n",
		"{{name}}/go.sum": "",
	})

	t.Run("generates from local brick with preset vars", func(t *testing.T) {
		out := t.TempDir()
		var buf bytes.Buffer

		err := iostreams.WithOverrides(iostreams.Streams{In: strings.NewReader(""), Out: &buf}, func() error {
			return runNew(context.Background(), &config.Config{}, cache.New(t.TempDir()), newParams{
				ref:      brickDir,
				output:   out,
				varFlags: []string{"name=shop"},
			})
		})
		if err != nil {
			t.Fatalf("runNew() error = %v", err)
		}

		got, err := os.ReadFile(filepath.Join(out, "README.md"))
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "# shop\n" {
			t.Errorf("README.md = %q", got)
		}
		if _, err := os.Stat(filepath.Join(out, "shop", "go.sum")); err != nil {
			t.Errorf("substituted payload path missing: %v", err)
		}
		if !strings.Contains(buf.String(), "Project ready") {
			t.Errorf("missing success line in output: %q", buf.String())
		}
	})

	t.Run("config vars pre-answer prompts", func(t *testing.T) {
		out := t.TempDir()
		var buf bytes.Buffer

		cfg := &config.Config{Vars: map[string]string{"name": "fromconfig"}}
		err := iostreams.WithOverrides(iostreams.Streams{In: strings.NewReader(""), Out: &buf}, func() error {
			return runNew(context.Background(), cfg, cache.New(t.TempDir()), newParams{
				ref:    brickDir,
				output: out,
			})
		})
		if err != nil {
			t.Fatalf("runNew() error = %v", err)
		}
		got, _ := os.ReadFile(filepath.Join(out, "README.md"))
		if string(got) != "# fromconfig\n" {
			t.Errorf("README.md = %q", got)
		}
	})

	t.Run("declined conflict aborts", func(t *testing.T) {
		out := t.TempDir()
		if err := os.WriteFile(filepath.Join(out, "README.md"), []byte("keep"), 0o644); err != nil {
			t.Fatal(err)
		}

		var buf bytes.Buffer
		// "n" declines the overwrite confirmation.
		err := iostreams.WithOverrides(iostreams.Streams{In: strings.NewReader("n\n"), Out: &buf}, func() error {
			return runNew(context.Background(), &config.Config{}, cache.New(t.TempDir()), newParams{
				ref:      brickDir,
				output:   out,
				varFlags: []string{"name=shop"},
			})
		})
		if err != nil {
			t.Fatalf("runNew() error = %v", err)
		}
		got, _ := os.ReadFile(filepath.Join(out, "README.md"))
		if string(got) != "keep" {
			t.Errorf("README.md overwritten after declined confirmation: %q", got)
		}
	})

	t.Run("force overwrites without asking", func(t *testing.T) {
		out := t.TempDir()
		if err := os.WriteFile(filepath.Join(out, "README.md"), []byte("stale"), 0o644); err != nil {
			t.Fatal(err)
		}

		var buf bytes.Buffer
		err := iostreams.WithOverrides(iostreams.Streams{In: strings.NewReader(""), Out: &buf}, func() error {
			return runNew(context.Background(), &config.Config{}, cache.New(t.TempDir()), newParams{
				ref:      brickDir,
				output:   out,
				force:    true,
				varFlags: []string{"name=shop"},
			})
		})
		if err != nil {
			t.Fatalf("runNew() error = %v", err)
		}
		got, _ := os.ReadFile(filepath.Join(out, "README.md"))
		if string(got) != "# shop\n" {
			t.Errorf("README.md = %q, want overwritten content", got)
		}
	})
}

func TestRunGetLocalSource(t *testing.T) {
	src := t.TempDir()
	writeTestBrick(t, src, `
name = "webapp"
version = "1.2.0"
`, map[string]string{"main.go": "package main\n"})

	c := cache.New(t.TempDir())
	var buf bytes.Buffer

	err := iostreams.WithOverrides(iostreams.Streams{In: strings.NewReader(""), Out: &buf}, func() error {
		return runGet(context.Background(), c, getParams{source: src, name: "webapp"})
	})
	if err != nil {
		t.Fatalf("runGet() error = %v", err)
	}

	entry, err := c.Get("webapp")
	if err != nil {
		t.Fatalf("cache entry missing: %v", err)
	}
	if entry.Version != "1.2.0" {
		t.Errorf("entry.Version = %q, want 1.2.0", entry.Version)
	}
	if _, err := os.Stat(filepath.Join(c.BrickDir("webapp"), "__brick__", "main.go")); err != nil {
		t.Errorf("payload not copied: %v", err)
	}
}

func TestRunGetRejectsInvalidBrick(t *testing.T) {
	src := t.TempDir() // empty dir, no manifest
	c := cache.New(t.TempDir())
	var buf bytes.Buffer

	err := iostreams.WithOverrides(iostreams.Streams{In: strings.NewReader(""), Out: &buf}, func() error {
		return runGet(context.Background(), c, getParams{source: src, name: "broken"})
	})
	if err == nil {
		t.Fatal("runGet() accepted a directory without a manifest")
	}
	if _, err := c.Get("broken"); err == nil {
		t.Error("invalid brick was recorded in the index")
	}
	if _, err := os.Stat(c.BrickDir("broken")); !os.IsNotExist(err) {
		t.Error("invalid brick directory was left in the cache")
	}
}

func TestRunList(t *testing.T) {
	c := cache.New(t.TempDir())
	for _, name := range []string{"webapp", "cli-tool", "library"} {
		if err := c.Add(cache.Entry{Name: name, Source: "https://example.com/" + name}); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("lists all bricks", func(t *testing.T) {
		var buf bytes.Buffer
		err := iostreams.WithOverrides(iostreams.Streams{Out: &buf}, func() error {
			return runList(c, "")
		})
		if err != nil {
			t.Fatalf("runList() error = %v", err)
		}
		for _, name := range []string{"webapp", "cli-tool", "library"} {
			if !strings.Contains(buf.String(), name) {
				t.Errorf("output missing %q: %q", name, buf.String())
			}
		}
	})

	t.Run("fuzzy filter", func(t *testing.T) {
		var buf bytes.Buffer
		err := iostreams.WithOverrides(iostreams.Streams{Out: &buf}, func() error {
			return runList(c, "web")
		})
		if err != nil {
			t.Fatalf("runList() error = %v", err)
		}
		if !strings.Contains(buf.String(), "webapp") {
			t.Errorf("filter dropped webapp: %q", buf.String())
		}
		if strings.Contains(buf.String(), "library") {
			t.Errorf("filter kept library: %q", buf.String())
		}
	})

	t.Run("empty cache", func(t *testing.T) {
		var buf bytes.Buffer
		err := iostreams.WithOverrides(iostreams.Streams{Out: &buf}, func() error {
			return runList(cache.New(t.TempDir()), "")
		})
		if err != nil {
			t.Fatalf("runList() error = %v", err)
		}
		if !strings.Contains(buf.String(), "No bricks cached") {
			t.Errorf("missing empty-cache hint: %q", buf.String())
		}
	})
}
