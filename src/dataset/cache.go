package dataset

import (
	"crypto/sha256"
	"fmt"
	"os"
	"sync"

	"github.com/mvermaas/LifeExpectancyExplorer/src/logging"
)

// LoadCache memoizes Load per file path, keyed by the SHA-256 of the file
// contents so an edited file is reloaded, not served stale. The cache is
// owned by the caller; Load itself stays a pure function of the file.
// Safe for concurrent use.
type LoadCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	sum [sha256.Size]byte
	ds  *Dataset
}

// NewLoadCache returns an empty cache.
func NewLoadCache() *LoadCache {
	return &LoadCache{entries: make(map[string]cacheEntry)}
}

// Load returns the cached Dataset for path when the file is byte-identical
// to the cached load, otherwise (re)loads and caches it.
func (c *LoadCache) Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	sum := sha256.Sum256(raw)

	c.mu.Lock()
	if e, ok := c.entries[path]; ok && e.sum == sum {
		c.mu.Unlock()
		logging.Debugf("load cache hit for %s", path)
		return e.ds, nil
	}
	c.mu.Unlock()

	ds, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.entries[path] = cacheEntry{sum: sum, ds: ds}
	c.mu.Unlock()
	return ds, nil
}

// Invalidate drops the cached entry for path, if any.
func (c *LoadCache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}
