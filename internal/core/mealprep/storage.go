package mealprep

import (
	"meal-plan-engine/internal/core/ingredient"
	"meal-plan-engine/internal/pkg/common"
)

// storageRule maps a category onto a storage method and shelf life.
type storageRule struct {
	method   string
	duration string
}

var storageRules = map[ingredient.Category]storageRule{
	ingredient.CategoryProtein:   {"Refrigerate in sealed container", "3-4 days"},
	ingredient.CategoryVegetable: {"Refrigerate in crisper drawer", "5-7 days"},
	ingredient.CategoryGrain:     {"Refrigerate once cooked", "5-6 days"},
	ingredient.CategoryDairy:     {"Refrigerate", "7 days"},
}

// pantryRule is the fallback for uncategorizable items; advising never
// fails.
var pantryRule = storageRule{"Store in pantry", "1-2 weeks"}

// Advise produces one storage instruction per shopping-list item, in the
// same order and with the same cardinality as the input. Method and
// duration are always non-empty.
func Advise(items []common.ShoppingListItem) []common.StorageInstruction {
	instructions := make([]common.StorageInstruction, 0, len(items))
	for _, item := range items {
		rule, ok := storageRules[ingredient.Categorize(item.Ingredient)]
		if !ok {
			rule = pantryRule
		}
		instructions = append(instructions, common.StorageInstruction{
			Ingredient: item.Ingredient,
			Method:     rule.method,
			Duration:   rule.duration,
		})
	}
	return instructions
}
