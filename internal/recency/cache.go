// Package recency persists last-used timestamps per project path. The cache
// is advisory ranking data: concurrent writers are not coordinated and the
// last writer wins.
package recency

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/anna-singleton/tps/internal/atomicfile"
)

// DefaultCapacity bounds the number of remembered projects.
const DefaultCapacity = 50

// Cache maps project paths to last-used unix timestamps and writes every
// change through to disk before returning.
type Cache struct {
	path     string
	capacity int
	entries  map[string]int64
}

// Load reads the cache file at path. A missing file yields an empty cache.
// A corrupt or unreadable file also yields an empty, fully usable cache; the
// returned error only describes the degradation so the caller can report it.
func Load(path string, capacity int) (*Cache, error) {
	cache := Blank(path, capacity)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cache, nil
		}
		return cache, fmt.Errorf("read access cache: %w", err)
	}
	entries := make(map[string]int64)
	if err := toml.Unmarshal(data, &entries); err != nil {
		return cache, fmt.Errorf("parse access cache: %w", err)
	}
	cache.entries = entries
	return cache, nil
}

// Blank returns an empty cache. With an empty path the cache is memory-only.
func Blank(path string, capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		path:     path,
		capacity: capacity,
		entries:  make(map[string]int64, capacity),
	}
}

// Get returns the last-used time recorded for path.
func (c *Cache) Get(path string) (time.Time, bool) {
	ts, ok := c.entries[path]
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(ts, 0), true
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Touch records now as the last-used time for path and persists the cache
// before returning, so the very next invocation observes the update. Adding
// a new path over capacity ejects the oldest entries first.
func (c *Cache) Touch(path string, now time.Time) error {
	if _, ok := c.entries[path]; !ok {
		c.ejectOldest(c.capacity - 1)
	}
	c.entries[path] = now.Unix()
	return c.save()
}

func (c *Cache) ejectOldest(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	if len(c.entries) <= capacity {
		return
	}
	type entry struct {
		path string
		ts   int64
	}
	ordered := make([]entry, 0, len(c.entries))
	for path, ts := range c.entries {
		ordered = append(ordered, entry{path: path, ts: ts})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ts > ordered[j].ts })
	for _, old := range ordered[capacity:] {
		delete(c.entries, old.path)
	}
}

func (c *Cache) save() error {
	if c.path == "" {
		return nil
	}
	data, err := toml.Marshal(c.entries)
	if err != nil {
		return fmt.Errorf("encode access cache: %w", err)
	}
	if err := atomicfile.Save(c.path, data, 0o600); err != nil {
		return fmt.Errorf("write access cache: %w", err)
	}
	return nil
}
