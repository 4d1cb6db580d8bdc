// Package github implements the upstream GitHub REST client together with
// its two supporting stores: a TTL response cache and a rate-limit budget
// tracker. Both stores are constructed explicitly and injected; the package
// holds no ambient singletons so tests can use fresh instances.
package github

import (
	"sync"
	"time"
)

// Cache is a TTL-bounded memoization map. Expiry is checked at read time
// only: there is no background sweep, so the map grows with distinct keys
// until process restart. Expired entries are dropped lazily on Get.
//
// Safe for concurrent use.
type Cache[T any] struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry[T]
}

type cacheEntry[T any] struct {
	data  T
	stamp time.Time
}

// NewCache returns an empty cache whose entries stay fresh for ttl.
func NewCache[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry[T]),
	}
}

// Get returns the cached value for key if it is still fresh.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && c.now().Sub(e.stamp) < c.ttl {
		return e.data, true
	}
	if ok {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed it.
		if e2, still := c.entries[key]; still && c.now().Sub(e2.stamp) >= c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
	}
	var zero T
	return zero, false
}

// Set stores value under key, overwriting any previous entry.
func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	c.entries[key] = cacheEntry[T]{data: value, stamp: c.now()}
	c.mu.Unlock()
}

// Len reports the number of stored entries, fresh or not.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
