package main

import (
	"fmt"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/quarrydev/quarry/internal/brick"
	"github.com/quarrydev/quarry/internal/cache"
	"github.com/quarrydev/quarry/internal/config"
	"github.com/quarrydev/quarry/internal/iostreams"
	"github.com/quarrydev/quarry/internal/ui"
	"github.com/quarrydev/quarry/internal/ui/prompt"
)

// openCache opens the brick cache at the configured location.
func openCache(cfg *config.Config) (*cache.Cache, error) {
	root, err := cfg.ResolveCacheDir()
	if err != nil {
		return nil, err
	}
	return cache.New(root), nil
}

// inferName derives a brick name from its source: the last path segment
// with a trailing .git stripped.
func inferName(source string) string {
	s := strings.TrimSuffix(strings.TrimSuffix(source, "/"), ".git")
	s = strings.ReplaceAll(s, "\\", "/")
	if i := strings.LastIndex(s, ":"); i >= 0 && !strings.Contains(s[i:], "/") {
		// scp-style remote like git@host:brick
		return s[i+1:]
	}
	return path.Base(s)
}

// resolveBrickDir resolves a brick reference to a directory on disk:
// a path to a local brick directory wins, otherwise the reference is
// looked up by name in the cache.
func resolveBrickDir(c *cache.Cache, ref string) (string, error) {
	if abs, err := filepath.Abs(ref); err == nil && brick.IsBrick(abs) {
		return abs, nil
	}
	if _, err := c.Get(ref); err != nil {
		return "", fmt.Errorf("brick %q is not a local directory and not cached (try 'quarry get'): %w", ref, err)
	}
	dir := c.BrickDir(ref)
	if !brick.IsBrick(dir) {
		return "", fmt.Errorf("cached brick %q has no %s (cache may be stale, try 'quarry get' again)", ref, brick.ManifestName)
	}
	return dir, nil
}

// gatherVars collects a value for every variable the manifest declares.
// Preset values (from --var flags and the config's vars table) skip the
// prompt. Without an interactive input the remaining variables resolve
// to their defaults.
func gatherVars(l *ui.Logger, m brick.Manifest, preset map[string]string) (map[string]string, error) {
	vars := make(map[string]string, len(m.Vars))
	interactive := iostreams.CanPrompt()

	for _, name := range m.VarNames() {
		if v, ok := preset[name]; ok {
			vars[name] = v
			continue
		}

		v := m.Vars[name]
		if !interactive {
			vars[name] = v.Default
			continue
		}

		message := v.Prompt
		if message == "" {
			message = name
		}

		switch v.Kind {
		case brick.KindConfirm:
			def, _ := strconv.ParseBool(v.Default)
			answer, err := l.Confirm(message, def)
			if err != nil {
				return nil, fmt.Errorf("prompt %s: %w", name, err)
			}
			vars[name] = strconv.FormatBool(answer)
		case brick.KindChoice:
			answer, err := l.ChooseOne(message, v.Choices, v.Default)
			if err != nil {
				return nil, fmt.Errorf("prompt %s: %w", name, err)
			}
			vars[name] = answer
		case brick.KindSecret:
			answer, err := l.Prompt(message, prompt.TextOptions{Hidden: true})
			if err != nil {
				return nil, fmt.Errorf("prompt %s: %w", name, err)
			}
			vars[name] = answer
		default:
			answer, err := l.Prompt(message, prompt.TextOptions{Default: v.Default})
			if err != nil {
				return nil, fmt.Errorf("prompt %s: %w", name, err)
			}
			vars[name] = answer
		}
	}
	return vars, nil
}

// parseVarFlags parses repeated --var name=value flags.
func parseVarFlags(flags []string) (map[string]string, error) {
	vars := make(map[string]string, len(flags))
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --var %q, expected name=value", f)
		}
		vars[name] = value
	}
	return vars, nil
}
