package mealplan

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"meal-plan-engine/internal/core/mealprep"
	"meal-plan-engine/internal/pkg/common"
)

// CandidateFilter describes one candidate search against the provider.
type CandidateFilter struct {
	MealType    common.MealType `json:"mealType,omitempty"`
	DietaryTags []string        `json:"dietaryTags,omitempty"`
	MinCalories float64         `json:"minCalories,omitempty"`
	MaxCalories float64         `json:"maxCalories,omitempty"`
	Limit       int             `json:"limit,omitempty"`
}

// CandidateProvider is the external recipe source. An empty result for a
// required slot is an assembly failure, never "use any recipe".
type CandidateProvider interface {
	Search(ctx context.Context, filter CandidateFilter) ([]common.Recipe, error)
}

// PlanStore receives finished plans as opaque payloads. Implementations
// live in the host application; the engine knows nothing about storage
// format or identifiers.
type PlanStore interface {
	SavePlan(ctx context.Context, plan *common.MealPlan) error
}

// DocumentExporter renders a finished plan for download or email.
// Implementations live outside the engine.
type DocumentExporter interface {
	Export(ctx context.Context, plan *common.MealPlan) ([]byte, error)
}

// Config holds the engine tunables the host wires from its own config
// layer.
type Config struct {
	// CandidateLimit caps how many recipes are fetched per meal type.
	CandidateLimit int
	// CalorieTolerance widens the provider calorie-range filter around the
	// per-meal share (0.5 means ±50%).
	CalorieTolerance float64
}

const (
	defaultCandidateLimit   = 50
	defaultCalorieTolerance = 0.5
)

// Service is the meal plan assembly and prep-consolidation engine. One
// Generate call is a pure compute pipeline over candidates fetched once
// up front; concurrent calls share no mutable state.
type Service struct {
	provider CandidateProvider
	store    PlanStore // optional
	cfg      Config
}

// NewService creates the engine service. store may be nil when the host
// handles persistence itself.
func NewService(provider CandidateProvider, store PlanStore, cfg Config) *Service {
	if cfg.CandidateLimit <= 0 {
		cfg.CandidateLimit = defaultCandidateLimit
	}
	if cfg.CalorieTolerance <= 0 {
		cfg.CalorieTolerance = defaultCalorieTolerance
	}
	return &Service{
		provider: provider,
		store:    store,
		cfg:      cfg,
	}
}

// Generate validates the request, fetches candidates, assembles the plan
// and, unless generateMealPrep was explicitly false, attaches the
// start-of-week prep plan. Fatal errors (validation, unfillable slot,
// provider failure) abort the generation; malformed per-ingredient data
// never does.
func (s *Service) Generate(ctx context.Context, req common.MealPlanRequest) (*common.MealPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pool, err := s.fetchCandidates(ctx, req)
	if err != nil {
		return nil, err
	}

	slots, nutrition, err := Assemble(req, pool)
	if err != nil {
		return nil, err
	}

	plan := &common.MealPlan{
		ID:                 common.GenerateUUID(),
		Meals:              slots,
		Days:               req.Days,
		MealsPerDay:        req.MealsPerDay,
		DailyCalorieTarget: req.DailyCalorieTarget,
		FitnessGoal:        req.FitnessGoal,
		DailyNutrition:     nutrition,
	}

	if req.WantsMealPrep() && hasAnyRecipe(slots) {
		plan.StartOfWeekMealPrep = mealprep.BuildPlan(slots)
	}

	common.LogInfo("meal plan generated",
		zap.String("plan_id", plan.ID),
		zap.Int("days", req.Days),
		zap.Int("meals_per_day", req.MealsPerDay),
		zap.Bool("meal_prep", plan.StartOfWeekMealPrep != nil),
	)

	if s.store != nil {
		if err := s.store.SavePlan(ctx, plan); err != nil {
			return nil, fmt.Errorf("failed to persist meal plan: %w", err)
		}
	}

	return plan, nil
}

// fetchCandidates queries the provider once per distinct slot type and
// merges the results into one pool. A provider error is fatal; an empty
// result set is left for the assembler to report against the concrete
// slot it cannot fill.
func (s *Service) fetchCandidates(ctx context.Context, req common.MealPlanRequest) ([]common.Recipe, error) {
	perMealShare := req.DailyCalorieTarget / float64(req.MealsPerDay)

	var pool []common.Recipe
	seen := make(map[string]bool)
	for _, mealType := range RequiredMealTypes(req.MealsPerDay) {
		filter := CandidateFilter{
			MealType:    mealType,
			DietaryTags: req.DietaryTags,
			MinCalories: perMealShare * (1 - s.cfg.CalorieTolerance),
			MaxCalories: perMealShare * (1 + s.cfg.CalorieTolerance),
			Limit:       s.cfg.CandidateLimit,
		}

		recipes, err := s.provider.Search(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("candidate search for %s failed: %w", mealType, err)
		}

		common.LogDebug("candidate search completed",
			zap.String("meal_type", string(mealType)),
			zap.Int("results", len(recipes)),
		)

		for _, r := range recipes {
			if !seen[r.ID] {
				seen[r.ID] = true
				pool = append(pool, r)
			}
		}
	}
	return pool, nil
}

func hasAnyRecipe(slots []common.MealSlot) bool {
	for _, s := range slots {
		if s.Recipe != nil {
			return true
		}
	}
	return false
}
