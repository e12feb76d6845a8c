package api

import (
	"context"
	"net/http"
	"time"

	"meal-plan-engine/internal/api/handlers/health"
	planHandler "meal-plan-engine/internal/api/handlers/plan"
	"meal-plan-engine/internal/api/middleware"
	"meal-plan-engine/internal/core/mealplan"
	"meal-plan-engine/internal/infrastructure/cache"
	"meal-plan-engine/internal/infrastructure/config"
	"meal-plan-engine/internal/infrastructure/provider"
	"meal-plan-engine/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	timeoutDuration = 60 * time.Second
	// plan requests are small JSON documents
	maxBodySize = 1 << 20
)

// SetupRouter wires the middleware chain, the candidate provider, the
// engine service, and the HTTP handlers.
func SetupRouter(cfg *config.Config, store cache.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	// candidate provider, optionally wrapped with the search cache
	var candidates mealplan.CandidateProvider = provider.NewHTTPProvider(cfg.Provider)
	if cfg.Cache.Enabled && store != nil {
		candidates = provider.NewCached(candidates, store)
	}

	engine := mealplan.NewService(candidates, nil, mealplan.Config{
		CandidateLimit:   cfg.Engine.CandidateLimit,
		CalorieTolerance: cfg.Engine.CalorieTolerance,
	})

	common.LogInfo("Engine service initialized",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("provider_base_url", cfg.Provider.BaseURL),
		zap.Int("candidate_limit", cfg.Engine.CandidateLimit),
	)

	// per-request timeout plus context wiring for the handlers
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Set("config", cfg)
		if stats, ok := store.(health.CacheStats); ok {
			c.Set("cache_stats", stats)
		}

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeGatewayTimeout,
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	api := router.Group("/api/v1")
	{
		plans := api.Group("/plans")
		{
			handler := planHandler.NewHandler(engine)
			plans.POST("/generate", handler.HandleGenerate)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
