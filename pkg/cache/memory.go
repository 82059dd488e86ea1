package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is a bounded in-process cache safe for concurrent use. When
// full, the entry closest to expiry is evicted.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	limit   int
	now     func() time.Time
}

// NewMemoryCache returns a cache holding at most limit entries. A limit of
// zero or less means 1024.
func NewMemoryCache(limit int) *MemoryCache {
	if limit <= 0 {
		limit = 1024
	}
	return &MemoryCache{
		entries: make(map[string]cacheEntry),
		limit:   limit,
		now:     time.Now,
	}
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if entry.expired(c.now()) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return entry.Data, true, nil
}

// Set stores a value in the cache.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.limit {
		c.evictLocked()
	}
	entry := cacheEntry{Data: append([]byte(nil), data...)}
	if ttl > 0 {
		entry.ExpiresAt = c.now().Add(ttl)
	}
	c.entries[key] = entry
	return nil
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Close drops all entries.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	return nil
}

func (c *MemoryCache) evictLocked() {
	var (
		victim string
		oldest time.Time
		found  bool
	)
	for key, entry := range c.entries {
		if entry.ExpiresAt.IsZero() {
			continue
		}
		if !found || entry.ExpiresAt.Before(oldest) {
			victim, oldest, found = key, entry.ExpiresAt, true
		}
	}
	if !found {
		for key := range c.entries {
			victim = key
			break
		}
	}
	delete(c.entries, victim)
}

// Ensure MemoryCache implements Cache.
var _ Cache = (*MemoryCache)(nil)
