package simplex

import (
	"sync"

	"github.com/ojrac/opensimplex-go"
)

// Cache memoizes per-seed state that is expensive to build. Entries are
// created on first use and never evicted. Safe for concurrent use.
type Cache[T any] struct {
	build func(seed int64) T

	mu      sync.RWMutex
	entries map[int64]T
}

// NewCache returns an empty cache that fills misses with build.
func NewCache[T any](build func(seed int64) T) *Cache[T] {
	return &Cache[T]{build: build, entries: make(map[int64]T)}
}

// Get returns the entry for seed, building it on a miss.
func (c *Cache[T]) Get(seed int64) T {
	c.mu.RLock()
	v, ok := c.entries[seed]
	c.mu.RUnlock()
	if ok {
		return v
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok = c.entries[seed]; ok {
		return v
	}
	v = c.build(seed)
	c.entries[seed] = v
	return v
}

// Len reports the number of cached seeds.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// DefaultLegacyCache backs Legacy kernels built without their own cache.
var DefaultLegacyCache = NewLegacyCache()

// NewLegacyCache returns a cache of permutation tables for the legacy kernel.
func NewLegacyCache() *Cache[opensimplex.Noise] {
	return NewCache(opensimplex.New)
}
