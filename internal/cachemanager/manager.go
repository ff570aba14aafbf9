// Package cachemanager memoizes values that are expensive to build, such as
// message printers, behind a small generic interface.
package cachemanager

import "time"

type CacheManager[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V, ttl time.Duration)
	Delete(keys ...string)
	Flush()
}
