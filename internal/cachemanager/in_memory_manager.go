package cachemanager

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/zjrosen/formkit/internal/log"
)

const (
	// NoExpiration keeps entries until they are deleted or flushed.
	NoExpiration = gocache.NoExpiration
	// DefaultCleanupInterval is how often expired entries are purged.
	DefaultCleanupInterval = 30 * time.Minute
)

// InMemoryCacheManager is a CacheManager backed by go-cache.
type InMemoryCacheManager[V any] struct {
	useCase string
	cache   *gocache.Cache
}

// NewInMemoryCacheManager creates a cache. useCase names it in log entries.
func NewInMemoryCacheManager[V any](useCase string, defaultExpiration, cleanupInterval time.Duration) *InMemoryCacheManager[V] {
	return &InMemoryCacheManager[V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves an item from the cache by its key
func (c *InMemoryCacheManager[V]) Get(key string) (V, bool) {
	var zeroValue V

	value, found := c.cache.Get(key)
	if !found {
		return zeroValue, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "cache", c.useCase, "key", key)
		return zeroValue, false
	}
	return v, true
}

// Set stores value under key. A ttl of 0 uses the cache default.
func (c *InMemoryCacheManager[V]) Set(key string, value V, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}

// Delete removes the given keys.
func (c *InMemoryCacheManager[V]) Delete(keys ...string) {
	for _, key := range keys {
		c.cache.Delete(key)
	}
}

// Flush removes every item.
func (c *InMemoryCacheManager[V]) Flush() {
	c.cache.Flush()
}
