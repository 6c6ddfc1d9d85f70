// Package cache holds the small in-memory stores the handlers lean on: a
// TTL cache for catalog listings and a transient staging area for the
// "recreate a previous sale" flow.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	mu        sync.Mutex
	value     any
	fetchedAt time.Time
}

// TTLCache caches loaded values per key for a fixed time-to-live. Loads are
// serialized per key but never across keys, so a slow refresh of one listing
// does not stall reads of the others. The clock is injectable so tests can
// expire entries without sleeping.
type TTLCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*entry
}

// New returns a cache using the wall clock.
func New(ttl time.Duration) *TTLCache {
	return NewWithClock(ttl, time.Now)
}

// NewWithClock returns a cache with a caller-supplied clock.
func NewWithClock(ttl time.Duration, now func() time.Time) *TTLCache {
	return &TTLCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]*entry),
	}
}

// GetOrRefresh returns the cached value for key if it is still fresh,
// otherwise calls load and caches its result. A load error is returned
// as-is and nothing is cached. Only the entry for key is locked while load
// runs; other keys stay readable.
func (c *TTLCache) GetOrRefresh(key string, load func() (any, error)) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	c.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.fetchedAt.IsZero() && c.now().Sub(e.fetchedAt) < c.ttl {
		return e.value, nil
	}

	v, err := load()
	if err != nil {
		return nil, err
	}
	e.value = v
	e.fetchedAt = c.now()
	return v, nil
}

// Invalidate drops the entry for key so the next read reloads it.
func (c *TTLCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Reset drops every entry.
func (c *TTLCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}
