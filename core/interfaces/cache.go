// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
// Any other error from Get is a backend failure.
var ErrCacheMiss = errors.New("cache: key not found")

// MaxValueSize is the largest value every backend must be able to store
const MaxValueSize = 5 << 20

// Cache defines the interface for cache operations.
// Implementations can be Redis, SQLite, in-memory, or any other caching solution.
//
// Example usage:
//
//	cache := someCache // implements Cache interface
//	
//	// Store a value
//	err := cache.Set(ctx, "getBible-kjv-John 3:16", payload, 30*24*time.Hour)
//
//	// Retrieve a value
//	data, err := cache.Get(ctx, "getBible-kjv-John 3:16")
//	if errors.Is(err, interfaces.ErrCacheMiss) {
//		// fetch from the API
//	}
//
//	// Delete a value
//	err = cache.Delete(ctx, "getBible-kjv-John 3:16")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte, ErrCacheMiss if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}