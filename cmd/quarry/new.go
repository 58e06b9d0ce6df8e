package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/quarrydev/quarry/internal/brick"
	"github.com/quarrydev/quarry/internal/cache"
	"github.com/quarrydev/quarry/internal/config"
	"github.com/quarrydev/quarry/internal/log"
	"github.com/quarrydev/quarry/internal/scaffold"
	"github.com/quarrydev/quarry/internal/ui"
)

// newParams holds parameters for project generation.
type newParams struct {
	ref      string
	output   string
	force    bool
	copyPath bool
	varFlags []string
}

// runNew resolves a brick, gathers its variables and writes the payload
// into the output directory.
func runNew(ctx context.Context, cfg *config.Config, c *cache.Cache, p newParams) error {
	l := ui.New()
	diag := log.FromContext(ctx)

	dir, err := resolveBrickDir(c, p.ref)
	if err != nil {
		return err
	}
	diag.Printf("using brick at %s\n", dir)

	manifest, err := brick.LoadManifest(dir)
	if err != nil {
		return err
	}
	payload, err := brick.PayloadDir(dir)
	if err != nil {
		return err
	}

	preset, err := parseVarFlags(p.varFlags)
	if err != nil {
		return err
	}
	for name, value := range cfg.Vars {
		if _, ok := preset[name]; !ok {
			preset[name] = value
		}
	}

	if manifest.Description != "" {
		l.Detail(manifest.Description)
	}
	diag.Printf("brick declares %s\n", summarizeVars(manifest))
	vars, err := gatherVars(l, manifest, preset)
	if err != nil {
		return err
	}

	// Conflicts are confirmed before any terminal state starts.
	if !p.force {
		conflicts, err := scaffold.Conflicts(payload, p.output, vars)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			l.Warn(fmt.Sprintf("%d existing file(s) would be overwritten:", len(conflicts)))
			for _, c := range conflicts {
				l.Detail("  " + c)
			}
			ok, err := l.Confirm("Overwrite?", false)
			if err != nil {
				return err
			}
			if !ok {
				l.Info("Aborted.")
				return nil
			}
		}
	}

	prog := l.Progress(fmt.Sprintf("Generating %s", manifest.Name))
	res, err := scaffold.Generate(payload, p.output, vars)
	if err != nil {
		prog.Fail(fmt.Sprintf("Generating %s failed", manifest.Name))
		return err
	}
	prog.Complete(fmt.Sprintf("Generated %s (%d files)", manifest.Name, len(res.Files)))

	for _, f := range res.Files {
		l.Delayed("  " + f)
	}
	l.Flush(l.Detail)

	if p.copyPath || cfg.CopyPath {
		if err := clipboard.WriteAll(res.Dir); err != nil {
			l.Warn(fmt.Sprintf("copy path to clipboard: %v", err))
		} else {
			l.Detail("Path copied to clipboard.")
		}
	}

	l.Success(fmt.Sprintf("Project ready in %s", res.Dir))
	return nil
}

// summarizeVars renders the declared variables for diagnostics.
func summarizeVars(m brick.Manifest) string {
	names := m.VarNames()
	if len(names) == 0 {
		return "no variables"
	}
	return strings.Join(names, ", ")
}
