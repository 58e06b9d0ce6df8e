// Package git fetches bricks from git repositories via the git CLI.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/quarrydev/quarry/internal/log"
)

// CheckGit verifies that git is available on PATH.
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is not installed or not in PATH: %w", err)
	}
	return nil
}

// Clone fetches a shallow copy of url at ref into dst. An empty ref
// clones the remote default branch.
func Clone(ctx context.Context, url, ref, dst string) error {
	args := []string{"clone", "--depth", "1"}
	if ref != "" {
		args = append(args, "--branch", ref)
	}
	args = append(args, url, dst)

	done := log.FromContext(ctx).Command("", "git", args...)
	start := time.Now()
	err := run(exec.CommandContext(ctx, "git", args...))
	done(time.Since(start))
	if err != nil {
		return fmt.Errorf("clone %s: %w", url, err)
	}
	return nil
}

// run executes a command, surfacing stderr in the error when it fails.
func run(cmd *exec.Cmd) error {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		return err
	}
	return nil
}
