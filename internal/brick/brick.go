// Package brick reads brick template manifests.
//
// A brick is a directory with a brick.toml manifest describing the
// template and its variables, and a __brick__ directory holding the
// payload files to scaffold.
package brick

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

const (
	// ManifestName is the manifest file inside a brick directory.
	ManifestName = "brick.toml"
	// PayloadName is the payload directory inside a brick directory.
	PayloadName = "__brick__"
)

// Kind selects which prompt gathers a variable's value.
type Kind string

const (
	KindText    Kind = "text"
	KindSecret  Kind = "secret"
	KindConfirm Kind = "confirm"
	KindChoice  Kind = "choice"
)

// Variable declares one template variable.
type Variable struct {
	Prompt  string   `toml:"prompt"`
	Kind    Kind     `toml:"kind"`
	Default string   `toml:"default"`
	Choices []string `toml:"choices"`
}

// Manifest is the parsed brick.toml.
type Manifest struct {
	Name        string              `toml:"name"`
	Description string              `toml:"description"`
	Version     string              `toml:"version"`
	Vars        map[string]Variable `toml:"vars"`
}

// VarNames returns the declared variable names in stable order.
func (m Manifest) VarNames() []string {
	names := make([]string, 0, len(m.Vars))
	for name := range m.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadManifest reads and validates the manifest of the brick at dir.
func LoadManifest(dir string) (Manifest, error) {
	path := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read %s: %w", ManifestName, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse %s: %w", ManifestName, err)
	}

	if m.Name == "" {
		return Manifest{}, fmt.Errorf("%s: missing brick name", path)
	}
	for name, v := range m.Vars {
		switch v.Kind {
		case "":
			v.Kind = KindText
			m.Vars[name] = v
		case KindText, KindSecret, KindConfirm:
		case KindChoice:
			if len(v.Choices) == 0 {
				return Manifest{}, fmt.Errorf("%s: variable %q is a choice without choices", path, name)
			}
		default:
			return Manifest{}, fmt.Errorf("%s: variable %q has unknown kind %q", path, name, v.Kind)
		}
	}
	return m, nil
}

// PayloadDir returns the payload directory of the brick at dir.
func PayloadDir(dir string) (string, error) {
	payload := filepath.Join(dir, PayloadName)
	info, err := os.Stat(payload)
	if err != nil {
		return "", fmt.Errorf("brick has no %s directory: %w", PayloadName, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", payload)
	}
	return payload, nil
}

// IsBrick reports whether dir looks like a brick directory.
func IsBrick(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ManifestName))
	return err == nil
}
