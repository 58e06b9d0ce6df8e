package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/quarrydev/quarry/internal/brick"
	"github.com/quarrydev/quarry/internal/cache"
	"github.com/quarrydev/quarry/internal/git"
	"github.com/quarrydev/quarry/internal/ui"
)

// getParams holds parameters for fetching a brick into the cache.
type getParams struct {
	source string
	ref    string
	name   string
}

// runGet fetches a brick from a git URL or local directory into the
// cache and records it in the index.
func runGet(ctx context.Context, c *cache.Cache, p getParams) error {
	l := ui.New()

	name := p.name
	if name == "" {
		name = inferName(p.source)
	}
	dst := c.BrickDir(name)

	prog := l.Progress(fmt.Sprintf("Fetching %s", name))

	if err := os.RemoveAll(dst); err != nil {
		prog.Fail(fmt.Sprintf("Fetching %s failed", name))
		return fmt.Errorf("clear previous copy: %w", err)
	}
	if err := fetch(ctx, p.source, p.ref, dst); err != nil {
		prog.Fail(fmt.Sprintf("Fetching %s failed", name))
		return err
	}

	manifest, err := brick.LoadManifest(dst)
	if err != nil {
		prog.Fail(fmt.Sprintf("%s is not a valid brick", name))
		_ = os.RemoveAll(dst)
		return err
	}
	if _, err := brick.PayloadDir(dst); err != nil {
		prog.Fail(fmt.Sprintf("%s is not a valid brick", name))
		_ = os.RemoveAll(dst)
		return err
	}

	if err := c.Add(cache.Entry{
		Name:      name,
		Source:    p.source,
		Version:   manifest.Version,
		FetchedAt: time.Now().UTC(),
	}); err != nil {
		return err
	}

	prog.Complete(fmt.Sprintf("Fetched %s", name))
	l.Detail(fmt.Sprintf("Use it with: quarry new %s", name))
	return nil
}

// fetch copies a local brick directory or clones a git source into dst.
func fetch(ctx context.Context, source, ref, dst string) error {
	if info, err := os.Stat(source); err == nil && info.IsDir() {
		if ref != "" {
			return fmt.Errorf("--ref only applies to git sources")
		}
		abs, err := filepath.Abs(source)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dst, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dst, err)
		}
		if err := os.CopyFS(dst, os.DirFS(abs)); err != nil {
			return fmt.Errorf("copy %s: %w", source, err)
		}
		return nil
	}

	if err := git.CheckGit(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	return git.Clone(ctx, source, ref, dst)
}
