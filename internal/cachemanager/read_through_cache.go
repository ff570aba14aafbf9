package cachemanager

import (
	"sync"
	"time"

	"github.com/zjrosen/formkit/internal/log"
)

// ReadThroughCache builds missing values with fn and stores them.
type ReadThroughCache[V any, I any] struct {
	mu    sync.Mutex
	cache CacheManager[V]
	fn    func(input I) (V, error)
	ttl   time.Duration
}

func NewReadThroughCache[V any, I any](cache CacheManager[V], fn func(input I) (V, error), ttl time.Duration) *ReadThroughCache[V, I] {
	return &ReadThroughCache[V, I]{cache: cache, fn: fn, ttl: ttl}
}

// Get returns the cached value for key, building it from input on a miss.
// Failed builds are not cached.
func (r *ReadThroughCache[V, I]) Get(key string, input I) (V, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if value, ok := r.cache.Get(key); ok {
		return value, nil
	}

	value, err := r.fn(input)
	if err != nil {
		return value, err
	}

	log.Debug(log.CatCache, "cache fill", "key", key)
	r.cache.Set(key, value, r.ttl)
	return value, nil
}
