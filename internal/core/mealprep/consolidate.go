// Package mealprep derives the start-of-week prep artifacts from an
// assembled set of meal slots: the consolidated shopping list, the
// ordered preparation schedule, and per-item storage guidance.
package mealprep

import (
	"strings"

	"meal-plan-engine/internal/core/ingredient"
	"meal-plan-engine/internal/pkg/common"
)

// fallbackAmount is shown when none of an item's contributions carried a
// parseable quantity. The item stays visible rather than disappearing or
// showing "0".
const fallbackAmount = "1"

// groupAccumulator collects the contributions of one (normalized name,
// normalized unit) group during consolidation.
type groupAccumulator struct {
	displayName string
	displayUnit string
	total       float64
	anyKnown    bool
	recipes     []string
	recipeSeen  map[string]bool
}

// Consolidate merges ingredient usage across every slot into one
// shopping list. A recipe repeated across slots contributes once per
// occurrence, so repeated meals multiply ingredient demand. The output
// is deterministic for a given slot order: items appear in first-seen
// order, as does every provenance list.
func Consolidate(slots []common.MealSlot) []common.ShoppingListItem {
	groups := make(map[[2]string]*groupAccumulator)
	var order [][2]string

	for _, slot := range slots {
		if slot.Recipe == nil {
			continue
		}
		for _, ing := range slot.Recipe.Ingredients {
			name := ingredient.NormalizeName(ing.Name)
			if name == "" {
				continue
			}
			key := [2]string{name, ingredient.NormalizeUnit(ing.Unit)}

			acc, ok := groups[key]
			if !ok {
				acc = &groupAccumulator{
					displayName: strings.TrimSpace(ing.Name),
					displayUnit: strings.TrimSpace(ing.Unit),
					recipeSeen:  make(map[string]bool),
				}
				groups[key] = acc
				order = append(order, key)
			}

			if amt := ingredient.ParseAmount(ing.Amount); amt.Known {
				acc.total += amt.Value
				acc.anyKnown = true
			}
			if !acc.recipeSeen[slot.Recipe.Name] {
				acc.recipeSeen[slot.Recipe.Name] = true
				acc.recipes = append(acc.recipes, slot.Recipe.Name)
			}
		}
	}

	items := make([]common.ShoppingListItem, 0, len(order))
	for _, key := range order {
		acc := groups[key]
		total := fallbackAmount
		if acc.anyKnown {
			total = ingredient.FormatAmount(acc.total)
		}
		items = append(items, common.ShoppingListItem{
			Ingredient:    acc.displayName,
			TotalAmount:   total,
			Unit:          acc.displayUnit,
			UsedInRecipes: acc.recipes,
		})
	}
	return items
}
