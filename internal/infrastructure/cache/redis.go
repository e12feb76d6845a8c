package cache

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"meal-plan-engine/internal/infrastructure/config"
	"meal-plan-engine/internal/pkg/common"
)

// Redis is the redis-backed store, used when multiple instances need to
// share one candidate cache.
type Redis struct {
	client *redis.Client
	cfg    config.CacheConfig
}

// NewRedis connects to redis and verifies the connection.
func NewRedis(cacheCfg config.CacheConfig, redisCfg config.RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr: redisCfg.Addr,
		DB:   redisCfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Redis{
		client: client,
		cfg:    cacheCfg,
	}, nil
}

// Get returns the cached value for key, or ErrCacheMiss.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	if !r.cfg.Enabled {
		return nil, common.ErrCacheDisabled
	}

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, common.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}
	return data, nil
}

// Set stores value under key with the configured TTL.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if !r.cfg.Enabled {
		return nil
	}

	if err := r.client.Set(ctx, key, value, r.cfg.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Close releases the redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
