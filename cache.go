// cache.go - Per-query result memoization with TTL expiry
package main

import (
	"sync"
	"time"
)

// cacheEntry pairs a fetched result with its expiry time.
type cacheEntry struct {
	result    resultSet
	expiresAt time.Time
}

func (e cacheEntry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// queryCache memoizes fetch results per exact query parameter. Entries
// expire lazily: an expired entry is simply missed on the next lookup
// and overwritten by the fresh result. Nothing is evicted proactively.
type queryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry

	// now is replaceable in tests.
	now func() time.Time
}

func newQueryCache(ttl time.Duration) *queryCache {
	return &queryCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// get returns the cached result for key if present and unexpired.
func (c *queryCache) get(key string) (resultSet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.expired(c.now()) {
		return resultSet{}, false
	}
	return e.result, true
}

// set stores a result for key, replacing any prior entry. Last writer
// for a key wins.
func (c *queryCache) set(key string, rs resultSet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		result:    rs,
		expiresAt: c.now().Add(c.ttl),
	}
}
