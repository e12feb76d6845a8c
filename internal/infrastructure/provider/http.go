// Package provider contains the recipe candidate provider adapters: an
// HTTP client for the recipe catalog service and a caching decorator.
package provider

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"meal-plan-engine/internal/core/mealplan"
	"meal-plan-engine/internal/infrastructure/config"
	"meal-plan-engine/internal/pkg/common"
)

// HTTPProvider implements mealplan.CandidateProvider against the recipe
// catalog's search endpoint.
type HTTPProvider struct {
	cfg    config.ProviderConfig
	client *resty.Client
}

// NewHTTPProvider creates the catalog client.
func NewHTTPProvider(cfg config.ProviderConfig) *HTTPProvider {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount)
	if cfg.APIKey != "" {
		client.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey))
	}

	return &HTTPProvider{
		cfg:    cfg,
		client: client,
	}
}

// searchResponse is the catalog's search payload.
type searchResponse struct {
	Recipes []common.Recipe `json:"recipes"`
}

// Search queries the catalog for recipes matching the filter. An empty
// result list is returned as-is; deciding whether that is fatal belongs
// to the assembler.
func (p *HTTPProvider) Search(ctx context.Context, filter mealplan.CandidateFilter) ([]common.Recipe, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(filter).
		Post("/api/v1/recipes/search")

	if err != nil {
		return nil, fmt.Errorf("failed to reach recipe catalog: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("recipe catalog returned error",
			zap.Int("status", resp.StatusCode()),
			zap.String("meal_type", string(filter.MealType)),
		)
		return nil, fmt.Errorf("recipe catalog returned status %d", resp.StatusCode())
	}

	var result searchResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse catalog response: %w", err)
	}

	return result.Recipes, nil
}
