package websearch

import (
	"sync"
	"time"
)

type cacheEntry struct {
	results     []Result
	expiration  time.Time
	accessCount int64
}

// Cache is a TTL cache for search results keyed by query. Custom Search
// quota is small; repeat lookups for the same item should not burn it.
type Cache struct {
	mu      sync.Mutex
	data    map[string]*cacheEntry
	ttl     time.Duration
	maxSize int
}

func NewCache(ttl time.Duration, maxSize int) *Cache {
	return &Cache{
		data:    make(map[string]*cacheEntry),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

func (c *Cache) Get(key string) ([]Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.data[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiration) {
		delete(c.data, key)
		return nil, false
	}
	entry.accessCount++
	return entry.results, true
}

func (c *Cache) Set(key string, results []Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Replacing an existing key never grows the map, so it must not evict.
	if _, exists := c.data[key]; !exists && c.maxSize > 0 && len(c.data) >= c.maxSize {
		c.evictLFU()
	}
	c.data[key] = &cacheEntry{
		results:     results,
		expiration:  time.Now().Add(c.ttl),
		accessCount: 1,
	}
}

// evictLFU removes the least-accessed entry. Caller holds the lock.
func (c *Cache) evictLFU() {
	var victim string
	var count int64 = -1
	for key, entry := range c.data {
		if count == -1 || entry.accessCount < count {
			victim = key
			count = entry.accessCount
		}
	}
	if victim != "" {
		delete(c.data, victim)
	}
}
