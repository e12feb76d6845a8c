// Package mealplan assembles multi-day meal plans from a pool of
// candidate recipes under calorie, meal-type, and dietary-tag
// constraints.
package mealplan

import (
	"math"
	"sort"

	"meal-plan-engine/internal/pkg/common"
)

// MealTypeForSlot maps a 1-based meal number onto its slot type. Plans
// with three or more meals a day run breakfast, lunch, dinner and then
// snacks; two-meal days are breakfast and dinner; single-meal days are
// dinner.
func MealTypeForSlot(mealNumber, mealsPerDay int) common.MealType {
	switch {
	case mealsPerDay == 1:
		return common.MealTypeDinner
	case mealsPerDay == 2:
		if mealNumber == 1 {
			return common.MealTypeBreakfast
		}
		return common.MealTypeDinner
	default:
		switch mealNumber {
		case 1:
			return common.MealTypeBreakfast
		case 2:
			return common.MealTypeLunch
		case 3:
			return common.MealTypeDinner
		default:
			return common.MealTypeSnack
		}
	}
}

// RequiredMealTypes lists the distinct slot types a request needs, in
// slot order.
func RequiredMealTypes(mealsPerDay int) []common.MealType {
	seen := make(map[common.MealType]bool)
	var types []common.MealType
	for meal := 1; meal <= mealsPerDay; meal++ {
		t := MealTypeForSlot(meal, mealsPerDay)
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	return types
}

// Assemble fills every (day, meal) slot of the request from the
// candidate pool. Selection is fully deterministic: for each slot the
// admissible candidates are ranked by use count (variety), then by
// distance to the slot's remaining calorie share, then by recipe ID.
// Meal-type and dietary-tag constraints are hard; the calorie target is
// approximated greedily and surfaced as a per-day deviation diagnostic.
func Assemble(req common.MealPlanRequest, pool []common.Recipe) ([]common.MealSlot, []common.DayNutrition, error) {
	useCount := make(map[string]int)
	slots := make([]common.MealSlot, 0, req.Days*req.MealsPerDay)
	nutrition := make([]common.DayNutrition, 0, req.Days)

	for day := 1; day <= req.Days; day++ {
		dayTotal := common.DayNutrition{Day: day}
		remaining := req.DailyCalorieTarget

		for meal := 1; meal <= req.MealsPerDay; meal++ {
			slotType := MealTypeForSlot(meal, req.MealsPerDay)
			slotTarget := remaining / float64(req.MealsPerDay-meal+1)

			picked := pickRecipe(pool, slotType, req.DietaryTags, slotTarget, useCount)
			if picked == nil {
				return nil, nil, common.NewInsufficientCandidatesError(day, meal, slotType)
			}

			useCount[picked.ID]++
			remaining -= picked.CaloriesKcal
			dayTotal.CaloriesKcal += picked.CaloriesKcal
			dayTotal.ProteinGrams += picked.ProteinGrams
			dayTotal.CarbsGrams += picked.CarbsGrams
			dayTotal.FatGrams += picked.FatGrams

			slots = append(slots, common.MealSlot{
				Day:        day,
				MealNumber: meal,
				MealType:   slotType,
				Recipe:     picked,
			})
		}

		dayTotal.Deviation = dayTotal.CaloriesKcal - req.DailyCalorieTarget
		nutrition = append(nutrition, dayTotal)
	}

	return slots, nutrition, nil
}

// pickRecipe returns the best admissible candidate for a slot, or nil
// when the pool cannot satisfy the slot's hard constraints.
func pickRecipe(pool []common.Recipe, slotType common.MealType, requiredTags []string, slotTarget float64, useCount map[string]int) *common.Recipe {
	var admissible []*common.Recipe
	for i := range pool {
		r := &pool[i]
		if !r.ServesMealType(slotType) {
			continue
		}
		if !hasAllTags(r, requiredTags) {
			continue
		}
		admissible = append(admissible, r)
	}
	if len(admissible) == 0 {
		return nil
	}

	sort.Slice(admissible, func(i, j int) bool {
		a, b := admissible[i], admissible[j]
		if useCount[a.ID] != useCount[b.ID] {
			return useCount[a.ID] < useCount[b.ID]
		}
		da := math.Abs(a.CaloriesKcal - slotTarget)
		db := math.Abs(b.CaloriesKcal - slotTarget)
		if da != db {
			return da < db
		}
		return a.ID < b.ID
	})

	// copy so the plan never aliases the shared pool
	chosen := *admissible[0]
	return &chosen
}

func hasAllTags(r *common.Recipe, tags []string) bool {
	for _, tag := range tags {
		if !r.HasDietaryTag(tag) {
			return false
		}
	}
	return true
}
