// Package scaffold writes a brick payload to disk, substituting
// variable placeholders in file paths and contents.
//
// Substitution is deliberately minimal: {{name}} (with or without
// inner spaces) is replaced by the variable's value, nothing more.
package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Result reports what Generate wrote.
type Result struct {
	// Dir is the output directory.
	Dir string
	// Files lists the written files relative to Dir, in walk order.
	Files []string
}

// Substitute replaces {{name}} placeholders in s with the variable
// values. Placeholders for undeclared variables are left untouched.
func Substitute(s string, vars map[string]string) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s = strings.ReplaceAll(s, "{{"+name+"}}", vars[name])
		s = strings.ReplaceAll(s, "{{ "+name+" }}", vars[name])
	}
	return s
}

// Conflicts returns the target paths (relative to dst) that Generate
// would overwrite.
func Conflicts(payload, dst string, vars map[string]string) ([]string, error) {
	var conflicts []string
	err := walkPayload(payload, vars, func(_, target string, _ fs.DirEntry) error {
		if _, err := os.Stat(filepath.Join(dst, target)); err == nil {
			conflicts = append(conflicts, target)
		}
		return nil
	})
	return conflicts, err
}

// Generate writes every payload file into dst, substituting variables
// in both paths and contents. Existing files are overwritten; callers
// are expected to confirm conflicts first.
func Generate(payload, dst string, vars map[string]string) (Result, error) {
	res := Result{Dir: dst}
	err := walkPayload(payload, vars, func(source, target string, d fs.DirEntry) error {
		out := filepath.Join(dst, target)
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(out), err)
		}

		data, err := os.ReadFile(filepath.Join(payload, source))
		if err != nil {
			return fmt.Errorf("read template %s: %w", source, err)
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, []byte(Substitute(string(data), vars)), info.Mode().Perm()); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		res.Files = append(res.Files, target)
		return nil
	})
	return res, err
}

// walkPayload visits every regular payload file with its original and
// variable-substituted relative paths.
func walkPayload(payload string, vars map[string]string, fn func(source, target string, d fs.DirEntry) error) error {
	return filepath.WalkDir(payload, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(payload, path)
		if err != nil {
			return err
		}
		return fn(rel, Substitute(rel, vars), d)
	})
}
