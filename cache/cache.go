// Package cache provides stem result caching implementations.
package cache

// StemCache is the interface for stem result caching.
type StemCache interface {
	// Get retrieves a cached root. Returns empty string and false if not found.
	Get(key string) (string, bool)

	// Set stores a stemmed root in the cache.
	Set(key string, value string) error
}

// GetOrCompute returns the cached value for key, computing and storing it on a
// miss. Concurrent callers racing on the same missing key may each run compute,
// but because stemming is deterministic every writer stores the same value and
// readers never observe a partial entry. A failed Set only costs a future
// recompute, so the result is returned regardless.
func GetOrCompute(c StemCache, key string, compute func() string) string {
	if val, ok := c.Get(key); ok {
		return val
	}
	val := compute()
	_ = c.Set(key, val)
	return val
}
