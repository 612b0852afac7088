// Package memory holds the process-lifetime stores: the TTL article cache,
// per-user activity, and user accounts. All state is volatile and
// reconstructible from the upstream source after a restart.
package memory

import (
	"sync"
	"time"

	"newshub/internal/domain"
)

type cacheEntry struct {
	articles  []domain.Article
	expiresAt time.Time
}

// Cache maps a cache key to an article list with an expiry instant. It is
// shared between request handlers and the refresh scheduler; all access
// goes through the mutex. Capacity is unbounded: the category set is small
// and fixed, expiry is the only eviction.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached articles for key. An entry whose expiry has passed
// is treated as absent and evicted on the spot, so callers never observe a
// stale list.
func (c *Cache) Get(key string) ([]domain.Article, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.articles, true
}

// Set stores articles under key, replacing any existing entry
// (last-writer-wins). The entry expires ttl from now.
func (c *Cache) Set(key string, articles []domain.Article, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		articles:  articles,
		expiresAt: c.now().Add(ttl),
	}
}

// Len reports the number of live entries, expired ones included until a Get
// evicts them.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
