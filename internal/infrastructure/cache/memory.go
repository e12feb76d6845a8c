package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"meal-plan-engine/internal/infrastructure/config"
	"meal-plan-engine/internal/pkg/common"
)

// Memory is the default in-process store: TTL expiry, LRU eviction when
// full, and hit/miss statistics.
type Memory struct {
	cfg   config.CacheConfig
	mu    sync.RWMutex
	store map[string]memoryEntry
	stats memoryStats
	stop  chan struct{}
}

type memoryEntry struct {
	value       []byte
	expiresAt   time.Time
	lastAccess  time.Time
	accessCount int
}

type memoryStats struct {
	hits      int64
	misses    int64
	evictions int64
}

// NewMemory creates the in-memory store and starts its cleanup loop.
func NewMemory(cfg config.CacheConfig) *Memory {
	m := &Memory{
		cfg:   cfg,
		store: make(map[string]memoryEntry),
		stop:  make(chan struct{}),
	}

	go m.startCleanup()

	common.LogInfo("memory cache initialized",
		zap.Int("max_size", cfg.MaxSize),
		zap.Duration("ttl", cfg.TTL),
		zap.Duration("cleanup_interval", cfg.CleanupInterval),
	)

	return m
}

// Get returns the cached value for key, or ErrCacheMiss.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	if !m.cfg.Enabled {
		return nil, common.ErrCacheDisabled
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.store[key]
	if !exists {
		m.stats.misses++
		return nil, common.ErrCacheMiss
	}
	if time.Now().After(entry.expiresAt) {
		delete(m.store, key)
		m.stats.evictions++
		m.stats.misses++
		return nil, common.ErrCacheMiss
	}

	entry.lastAccess = time.Now()
	entry.accessCount++
	m.store[key] = entry
	m.stats.hits++
	return entry.value, nil
}

// Set stores value under key, evicting expired and then least-recently
// used entries when the store is full.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	if !m.cfg.Enabled {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.store) >= m.cfg.MaxSize {
		m.cleanupLocked()
		if len(m.store) >= m.cfg.MaxSize {
			m.evictLRULocked()
		}
		if len(m.store) >= m.cfg.MaxSize {
			common.LogWarn("cache full", zap.Int("size", len(m.store)))
			return common.ErrCacheFull
		}
	}

	now := time.Now()
	m.store[key] = memoryEntry{
		value:      value,
		expiresAt:  now.Add(m.cfg.TTL),
		lastAccess: now,
	}
	return nil
}

func (m *Memory) startCleanup() {
	ticker := time.NewTicker(m.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mu.Lock()
			m.cleanupLocked()
			m.mu.Unlock()
		case <-m.stop:
			return
		}
	}
}

func (m *Memory) cleanupLocked() {
	now := time.Now()
	for key, entry := range m.store {
		if now.After(entry.expiresAt) {
			delete(m.store, key)
			m.stats.evictions++
		}
	}
}

func (m *Memory) evictLRULocked() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestAccessCount int

	for key, entry := range m.store {
		if oldestKey == "" ||
			entry.accessCount < lowestAccessCount ||
			(entry.accessCount == lowestAccessCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestAccessCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
	}
}

// Stats reports cache counters for the health endpoint.
func (m *Memory) Stats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := m.stats.hits + m.stats.misses
	ratio := 0.0
	if total > 0 {
		ratio = float64(m.stats.hits) / float64(total)
	}
	return map[string]interface{}{
		"size":      len(m.store),
		"max_size":  m.cfg.MaxSize,
		"hits":      m.stats.hits,
		"misses":    m.stats.misses,
		"evictions": m.stats.evictions,
		"hit_ratio": ratio,
	}
}

// Close stops the cleanup loop and drops all entries.
func (m *Memory) Close() error {
	close(m.stop)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.store = make(map[string]memoryEntry)

	common.LogInfo("memory cache closed",
		zap.Int64("hits", m.stats.hits),
		zap.Int64("misses", m.stats.misses),
		zap.Int64("evictions", m.stats.evictions),
	)
	return nil
}
