package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meal-plan-engine/internal/infrastructure/config"
	"meal-plan-engine/internal/pkg/common"
)

func memoryConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:         true,
		MaxSize:         2,
		TTL:             50 * time.Millisecond,
		CleanupInterval: time.Hour, // cleanup driven manually in tests
	}
}

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory(memoryConfig())
	defer m.Close()
	ctx := context.Background()

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	require.NoError(t, m.Set(ctx, "k", []byte("v")))
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryTTLExpiry(t *testing.T) {
	m := NewMemory(memoryConfig())
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v")))
	time.Sleep(60 * time.Millisecond)

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
}

func TestMemoryLRUEviction(t *testing.T) {
	cfg := memoryConfig()
	cfg.TTL = time.Hour
	m := NewMemory(cfg)
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", []byte("1")))
	require.NoError(t, m.Set(ctx, "b", []byte("2")))

	// touch "a" so "b" becomes the eviction candidate
	_, err := m.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "c", []byte("3")))

	_, err = m.Get(ctx, "a")
	assert.NoError(t, err)
	_, err = m.Get(ctx, "b")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
}

func TestMemoryDisabled(t *testing.T) {
	cfg := memoryConfig()
	cfg.Enabled = false
	m := NewMemory(cfg)
	defer m.Close()
	ctx := context.Background()

	assert.NoError(t, m.Set(ctx, "k", []byte("v")))
	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, common.ErrCacheDisabled)
}

func TestMemoryStats(t *testing.T) {
	m := NewMemory(memoryConfig())
	defer m.Close()
	ctx := context.Background()

	_, _ = m.Get(ctx, "missing")
	require.NoError(t, m.Set(ctx, "k", []byte("v")))
	_, _ = m.Get(ctx, "k")

	stats := m.Stats()
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
	assert.Equal(t, 1, stats["size"])
}
