package cache

import "sync"

// Memory is a thread-safe in-memory stem cache. Entries are never evicted or
// expired: stemmed roots are small, deterministic, and drawn from a finite
// vocabulary, so unbounded growth is the accepted tradeoff. Callers needing
// bounded memory must layer their own policy on top.
type Memory struct {
	mu    sync.RWMutex
	cache map[string]string
}

// NewMemory creates an empty in-memory stem cache.
func NewMemory() *Memory {
	return &Memory{
		cache: make(map[string]string),
	}
}

// Get retrieves a stemmed root from the cache.
func (c *Memory) Get(key string) (string, bool) {
	c.mu.RLock()
	val, ok := c.cache[key]
	c.mu.RUnlock()
	return val, ok
}

// Set stores a stemmed root in the cache. It never fails.
func (c *Memory) Set(key string, value string) error {
	c.mu.Lock()
	c.cache[key] = value
	c.mu.Unlock()
	return nil
}

// Len returns the number of entries in the cache.
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Clear removes all entries from the cache.
func (c *Memory) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]string)
}

// Entries returns a copy of all entries as key-value pairs.
// This is used for cache export.
func (c *Memory) Entries() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[string]string, len(c.cache))
	for key, val := range c.cache {
		result[key] = val
	}
	return result
}

// Verify Memory implements StemCache
var _ StemCache = (*Memory)(nil)
