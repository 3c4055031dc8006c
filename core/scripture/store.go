// ABOUTME: Scripture payload store wrapping the cache backend with a timestamped envelope
// ABOUTME: Entries older than the TTL are treated as misses on read and never evicted here

package scripture

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	coreerrors "scripture-tags/core/errors"
	"scripture-tags/core/interfaces"
)

const (
	// KeyPrefix namespaces scripture entries in a shared cache
	KeyPrefix = "getBible"

	// TTL is how long a fetched payload stays valid
	TTL = 30 * 24 * time.Hour
)

// entry is the value written to the cache backend
type entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// Store reads and writes scripture payloads keyed by translation and reference
type Store struct {
	cache  interfaces.Cache
	logger interfaces.Logger
	ttl    time.Duration
	now    func() time.Time
}

// NewStore creates a store over the given cache backend
func NewStore(cache interfaces.Cache, logger interfaces.Logger) *Store {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Store{
		cache:  cache,
		logger: logger,
		ttl:    TTL,
		now:    time.Now,
	}
}

// Key builds the cache key for a translation and raw reference string
func Key(translation, reference string) string {
	return KeyPrefix + "-" + translation + "-" + reference
}

// Get returns the payload and true on a fresh hit.
// A miss or a stale entry returns false with a nil error.
func (s *Store) Get(ctx context.Context, translation, reference string) ([]byte, bool, error) {
	if s.cache == nil {
		return nil, false, nil
	}
	key := Key(translation, reference)

	raw, err := s.cache.Get(ctx, key)
	if errors.Is(err, interfaces.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		s.logger.Error("Failed to read scripture cache", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil, false, &coreerrors.CacheError{Op: "get", Key: key, Err: err}
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		s.logger.Error("Failed to decode scripture cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil, false, &coreerrors.CacheError{Op: "decode", Key: key, Err: err}
	}

	age := s.now().Sub(time.UnixMilli(e.Timestamp))
	if age >= s.ttl {
		s.logger.Debug("Ignoring stale scripture cache entry", map[string]interface{}{
			"key": key,
			"age": age.String(),
		})
		return nil, false, nil
	}

	return e.Data, true, nil
}

// Set writes the payload with the current timestamp. The backend entry never
// expires; only the envelope timestamp decides freshness.
func (s *Store) Set(ctx context.Context, translation, reference string, data []byte) error {
	if s.cache == nil {
		return nil
	}
	key := Key(translation, reference)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entry{Data: data, Timestamp: s.now().UnixMilli()}); err != nil {
		return &coreerrors.CacheError{Op: "encode", Key: key, Err: err}
	}
	value := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	if err := s.cache.Set(ctx, key, value, 0); err != nil {
		s.logger.Error("Failed to write scripture cache", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return &coreerrors.CacheError{Op: "set", Key: key, Err: err}
	}
	return nil
}
