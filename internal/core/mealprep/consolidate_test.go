package mealprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meal-plan-engine/internal/pkg/common"
)

func slotWithRecipe(day, meal int, r *common.Recipe) common.MealSlot {
	return common.MealSlot{Day: day, MealNumber: meal, MealType: common.MealTypeBreakfast, Recipe: r}
}

func TestConsolidateSumsMatchingNameAndUnit(t *testing.T) {
	oats := &common.Recipe{
		Name: "Blueberry Oats",
		Ingredients: []common.Ingredient{
			{Name: "Blueberries", Amount: "100", Unit: "g"},
		},
	}
	pancakes := &common.Recipe{
		Name: "Protein Pancakes",
		Ingredients: []common.Ingredient{
			{Name: "blueberries", Amount: "150", Unit: "G"},
		},
	}

	items := Consolidate([]common.MealSlot{
		slotWithRecipe(1, 1, oats),
		slotWithRecipe(2, 1, pancakes),
	})

	require.Len(t, items, 1)
	assert.Equal(t, "Blueberries", items[0].Ingredient)
	assert.Equal(t, "250", items[0].TotalAmount)
	assert.Equal(t, "g", items[0].Unit)
	assert.Equal(t, []string{"Blueberry Oats", "Protein Pancakes"}, items[0].UsedInRecipes)
}

func TestConsolidateKeepsDifferentUnitsSeparate(t *testing.T) {
	r1 := &common.Recipe{
		Name: "Smoothie",
		Ingredients: []common.Ingredient{
			{Name: "Almond Milk", Amount: "250", Unit: "ml"},
		},
	}
	r2 := &common.Recipe{
		Name: "Overnight Oats",
		Ingredients: []common.Ingredient{
			{Name: "Almond Milk", Amount: "300", Unit: "ml"},
			{Name: "Almond Milk", Amount: "1", Unit: "cup"},
		},
	}

	items := Consolidate([]common.MealSlot{
		slotWithRecipe(1, 1, r1),
		slotWithRecipe(1, 2, r2),
	})

	require.Len(t, items, 2)
	assert.Equal(t, "550", items[0].TotalAmount)
	assert.Equal(t, "ml", items[0].Unit)
	assert.Equal(t, []string{"Smoothie", "Overnight Oats"}, items[0].UsedInRecipes)
	assert.Equal(t, "1", items[1].TotalAmount)
	assert.Equal(t, "cup", items[1].Unit)
}

func TestConsolidateRepeatedSlotsMultiplyDemand(t *testing.T) {
	r := &common.Recipe{
		Name: "Rice Bowl",
		Ingredients: []common.Ingredient{
			{Name: "Brown Rice", Amount: "90", Unit: "g"},
		},
	}

	items := Consolidate([]common.MealSlot{
		slotWithRecipe(1, 1, r),
		slotWithRecipe(2, 1, r),
		slotWithRecipe(3, 1, r),
	})

	require.Len(t, items, 1)
	assert.Equal(t, "270", items[0].TotalAmount)
	// provenance is deduplicated even though the recipe appears three times
	assert.Equal(t, []string{"Rice Bowl"}, items[0].UsedInRecipes)
}

func TestConsolidateUnparseableAmountsStayVisible(t *testing.T) {
	r := &common.Recipe{
		Name: "Seasoned Chicken",
		Ingredients: []common.Ingredient{
			{Name: "Paprika", Amount: "a pinch", Unit: "tsp"},
			{Name: "Chicken Breast", Amount: "-200", Unit: "g"},
			{Name: "Olive Oil", Amount: "15", Unit: "ml"},
		},
	}

	items := Consolidate([]common.MealSlot{slotWithRecipe(1, 1, r)})

	require.Len(t, items, 3)
	assert.Equal(t, "1", items[0].TotalAmount) // unparseable, fallback shown
	assert.Equal(t, "1", items[1].TotalAmount) // negative treated as unset
	assert.Equal(t, "15", items[2].TotalAmount)
}

func TestConsolidateDegradedInputs(t *testing.T) {
	assert.Empty(t, Consolidate(nil))
	assert.Empty(t, Consolidate([]common.MealSlot{{Day: 1, MealNumber: 1}}))
	assert.Empty(t, Consolidate([]common.MealSlot{
		slotWithRecipe(1, 1, &common.Recipe{Name: "Water Fast"}),
	}))
}

func TestConsolidateIsIdempotent(t *testing.T) {
	slots := []common.MealSlot{
		slotWithRecipe(1, 1, &common.Recipe{
			Name: "Salad",
			Ingredients: []common.Ingredient{
				{Name: "Spinach", Amount: "80", Unit: "g"},
				{Name: "Feta Cheese", Amount: "30", Unit: "g"},
			},
		}),
		slotWithRecipe(1, 2, &common.Recipe{
			Name: "Omelette",
			Ingredients: []common.Ingredient{
				{Name: "Spinach", Amount: "40", Unit: "g"},
				{Name: "Eggs", Amount: "3", Unit: ""},
			},
		}),
	}

	first := Consolidate(slots)
	second := Consolidate(slots)
	assert.Equal(t, first, second)
}
