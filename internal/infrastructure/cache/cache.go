// Package cache provides the candidate-search cache: an in-memory
// TTL+LRU store by default and a redis-backed store when configured.
package cache

import "context"

// Store is a string-keyed byte cache with a fixed TTL, consumed by the
// caching candidate provider. Get returns common.ErrCacheMiss (or
// common.ErrCacheDisabled) when the value is absent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
