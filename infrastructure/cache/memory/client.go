// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Thread-safe with per-entry TTL and periodic expired-item sweeping

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const sweepInterval = 10 * time.Minute

// MemoryCache implements the Cache interface using an in-process store
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache. defaultTTL applies when
// Set is called with a zero TTL; zero means no expiration.
func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	expiration := defaultTTL
	if expiration <= 0 {
		expiration = gocache.NoExpiration
	}
	return &MemoryCache{
		store: gocache.New(expiration, sweepInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, found := c.store.Get(key)
	if !found {
		return nil, errors.New("key not found")
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, errors.New("key not found")
	}

	// Copy so callers cannot mutate the cached entry.
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a value in the cache with the given TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	if ttl <= 0 {
		c.store.Set(key, stored, gocache.DefaultExpiration)
		return nil
	}
	c.store.Set(key, stored, ttl)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.store.Delete(key)
	return nil
}
