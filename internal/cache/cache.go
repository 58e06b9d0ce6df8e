// Package cache tracks fetched bricks on disk.
//
// The cache root holds a bricks/ directory with one subdirectory per
// brick and an index.json recording where each brick came from. Index
// writes go through a temp file and rename so a crash never leaves a
// half-written index.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// ErrNotFound reports a brick that is not in the cache.
var ErrNotFound = errors.New("cache: brick not found")

// Entry records one cached brick.
type Entry struct {
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	Version   string    `json:"version,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

type index struct {
	Bricks map[string]Entry `json:"bricks"`
}

// Cache is a brick cache rooted at a directory.
type Cache struct {
	root string
}

// New returns a cache rooted at root. The directory is created lazily
// on first write.
func New(root string) *Cache {
	return &Cache{root: root}
}

// Dir returns the cache root.
func (c *Cache) Dir() string {
	return c.root
}

// BrickDir returns the directory a brick occupies (or would occupy)
// in the cache.
func (c *Cache) BrickDir(name string) string {
	return filepath.Join(c.root, "bricks", name)
}

func (c *Cache) indexPath() string {
	return filepath.Join(c.root, "index.json")
}

func (c *Cache) load() (index, error) {
	data, err := os.ReadFile(c.indexPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return index{Bricks: map[string]Entry{}}, nil
		}
		return index{}, fmt.Errorf("read cache index: %w", err)
	}
	var idx index
	if err := json.Unmarshal(data, &idx); err != nil {
		return index{}, fmt.Errorf("parse cache index: %w", err)
	}
	if idx.Bricks == nil {
		idx.Bricks = map[string]Entry{}
	}
	return idx, nil
}

func (c *Cache) save(idx index) error {
	if err := os.MkdirAll(c.root, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return err
	}
	tmp := c.indexPath() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cache index: %w", err)
	}
	if err := os.Rename(tmp, c.indexPath()); err != nil {
		return fmt.Errorf("commit cache index: %w", err)
	}
	return nil
}

// Add records a brick in the index.
func (c *Cache) Add(e Entry) error {
	idx, err := c.load()
	if err != nil {
		return err
	}
	idx.Bricks[e.Name] = e
	return c.save(idx)
}

// Get looks up a brick by name.
func (c *Cache) Get(name string) (Entry, error) {
	idx, err := c.load()
	if err != nil {
		return Entry{}, err
	}
	e, ok := idx.Bricks[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return e, nil
}

// List returns all cached bricks sorted by name.
func (c *Cache) List() ([]Entry, error) {
	idx, err := c.load()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(idx.Bricks))
	for _, e := range idx.Bricks {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Remove drops a brick from the index and deletes its directory.
func (c *Cache) Remove(name string) error {
	idx, err := c.load()
	if err != nil {
		return err
	}
	if _, ok := idx.Bricks[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(idx.Bricks, name)
	if err := c.save(idx); err != nil {
		return err
	}
	if err := os.RemoveAll(c.BrickDir(name)); err != nil {
		return fmt.Errorf("remove brick dir: %w", err)
	}
	return nil
}

// Clear deletes every cached brick and the index.
func (c *Cache) Clear() error {
	if err := os.RemoveAll(filepath.Join(c.root, "bricks")); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	if err := os.Remove(c.indexPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear cache index: %w", err)
	}
	return nil
}
