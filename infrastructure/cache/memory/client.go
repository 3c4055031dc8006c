// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Provides per-key TTLs with a janitor that sweeps expired entries

package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"scripture-tags/core/interfaces"
)

// DefaultCleanupInterval is how often expired items are swept
const DefaultCleanupInterval = 10 * time.Minute

// MemoryCache implements the Cache interface using in-memory storage
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithCleanup(DefaultCleanupInterval)
}

// NewMemoryCacheWithCleanup creates a cache that sweeps expired items at the given interval
func NewMemoryCacheWithCleanup(interval time.Duration) *MemoryCache {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &MemoryCache{
		items: gocache.New(gocache.NoExpiration, interval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, ok := c.items.Get(key)
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}

	stored := value.([]byte)
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL. A zero TTL never expires.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	expiration := ttl
	if ttl <= 0 {
		expiration = gocache.NoExpiration
	}
	c.items.Set(key, valueCopy, expiration)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.items.Delete(key)
	return nil
}

// Len returns the number of stored items, including expired ones not yet swept
func (c *MemoryCache) Len() int {
	return c.items.ItemCount()
}

// Clear removes every item
func (c *MemoryCache) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.items.Flush()
	return nil
}

// Stats returns cache statistics
func (c *MemoryCache) Stats() (map[string]interface{}, error) {
	return map[string]interface{}{
		"total_entries": c.items.ItemCount(),
	}, nil
}
