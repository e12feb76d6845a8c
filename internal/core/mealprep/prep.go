package mealprep

import (
	"meal-plan-engine/internal/pkg/common"
)

// BuildPlan runs the full prep pipeline over the assembled slots:
// consolidation first, then the scheduler and the storage advisor
// independently over the same consolidated list. Degraded inputs (no
// meals, recipes without ingredients) still produce a structurally valid
// plan with an empty shopping list and the final storage step.
func BuildPlan(slots []common.MealSlot) *common.MealPrepPlan {
	shoppingList := Consolidate(slots)
	steps := Schedule(shoppingList)
	return &common.MealPrepPlan{
		ShoppingList:        shoppingList,
		PrepSteps:           steps,
		StorageInstructions: Advise(shoppingList),
		TotalPrepTime:       TotalPrepTime(steps),
	}
}
