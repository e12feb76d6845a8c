package mealprep

import (
	"meal-plan-engine/internal/core/ingredient"
	"meal-plan-engine/internal/pkg/common"
)

// categoryAction describes the prep step emitted for one category: the
// instruction text, a base duration, and an additive per-item duration.
// Times are minutes and every emitted step is always > 0 minutes.
type categoryAction struct {
	instruction string
	baseMinutes int
	perItem     int
}

var categoryActions = map[ingredient.Category]categoryAction{
	ingredient.CategoryVegetable: {"Wash and chop vegetables", 10, 3},
	ingredient.CategoryProtein:   {"Cook and portion proteins", 20, 5},
	ingredient.CategoryGrain:     {"Cook grains in bulk", 15, 4},
	ingredient.CategoryDairy:     {"Portion dairy into containers", 5, 1},
	ingredient.CategoryOther:     {"Measure and portion remaining items", 5, 2},
}

// finalStep closes every schedule, whether or not any category step was
// emitted before it.
var finalStep = categoryAction{
	instruction: "Label all containers and store prepped food according to the storage instructions",
	baseMinutes: 10,
}

// Schedule converts a shopping list into the ordered preparation
// schedule: one step per non-empty category in fixed priority order,
// numbered contiguously from 1, closed by the storage/cleanup step. The
// final step is present even for an empty list, so the result is never
// empty.
func Schedule(items []common.ShoppingListItem) []common.PrepStep {
	byCategory := make(map[ingredient.Category][]string)
	for _, item := range items {
		cat := ingredient.Categorize(item.Ingredient)
		byCategory[cat] = append(byCategory[cat], item.Ingredient)
	}

	var steps []common.PrepStep
	for _, cat := range ingredient.CategoryOrder {
		names := byCategory[cat]
		if len(names) == 0 {
			continue
		}
		action := categoryActions[cat]
		steps = append(steps, common.PrepStep{
			Step:          len(steps) + 1,
			Instruction:   action.instruction,
			EstimatedTime: action.baseMinutes + action.perItem*len(names),
			Ingredients:   names,
		})
	}

	steps = append(steps, common.PrepStep{
		Step:          len(steps) + 1,
		Instruction:   finalStep.instruction,
		EstimatedTime: finalStep.baseMinutes,
		Ingredients:   []string{},
	})

	return steps
}

// TotalPrepTime sums the step durations. The total is always derived
// from the step list itself so it cannot drift from the schedule.
func TotalPrepTime(steps []common.PrepStep) int {
	total := 0
	for _, s := range steps {
		total += s.EstimatedTime
	}
	return total
}
