package provider

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"meal-plan-engine/internal/core/mealplan"
	"meal-plan-engine/internal/infrastructure/cache"
	"meal-plan-engine/internal/pkg/common"
)

// Cached decorates a CandidateProvider with a cache.Store. Cache
// failures are never fatal: a broken cache degrades to pass-through.
type Cached struct {
	inner mealplan.CandidateProvider
	store cache.Store
}

// NewCached wraps inner with the given store.
func NewCached(inner mealplan.CandidateProvider, store cache.Store) *Cached {
	return &Cached{
		inner: inner,
		store: store,
	}
}

// Search serves the filter from cache when possible, falling through to
// the inner provider and caching its result.
func (c *Cached) Search(ctx context.Context, filter mealplan.CandidateFilter) ([]common.Recipe, error) {
	key, err := filterKey(filter)
	if err != nil {
		return c.inner.Search(ctx, filter)
	}

	if data, err := c.store.Get(ctx, key); err == nil {
		var recipes []common.Recipe
		if err := json.Unmarshal(data, &recipes); err == nil {
			common.LogCacheHit("candidate_search", key)
			return recipes, nil
		}
	}
	common.LogCacheMiss("candidate_search", key)

	recipes, err := c.inner.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(recipes); err == nil {
		_ = c.store.Set(ctx, key, data)
	}

	return recipes, nil
}

// filterKey derives a stable cache key from the canonical JSON encoding
// of the filter.
func filterKey(filter mealplan.CandidateFilter) (string, error) {
	data, err := json.Marshal(filter)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("candidates:%s", hex.EncodeToString(sum[:])), nil
}
