package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meal-plan-engine/internal/pkg/common"
)

func recipe(id, name string, cal float64, mealTypes []string, tags ...string) common.Recipe {
	return common.Recipe{
		ID:           id,
		Name:         name,
		CaloriesKcal: cal,
		MealTypes:    mealTypes,
		DietaryTags:  tags,
	}
}

func allMealsPool() []common.Recipe {
	all := []string{"breakfast", "lunch", "dinner", "snack"}
	return []common.Recipe{
		recipe("r1", "Oatmeal", 400, all),
		recipe("r2", "Chicken Bowl", 600, all),
		recipe("r3", "Salmon Plate", 550, all),
		recipe("r4", "Veggie Wrap", 450, all),
	}
}

func TestMealTypeForSlot(t *testing.T) {
	assert.Equal(t, common.MealTypeDinner, MealTypeForSlot(1, 1))
	assert.Equal(t, common.MealTypeBreakfast, MealTypeForSlot(1, 2))
	assert.Equal(t, common.MealTypeDinner, MealTypeForSlot(2, 2))
	assert.Equal(t, common.MealTypeBreakfast, MealTypeForSlot(1, 3))
	assert.Equal(t, common.MealTypeLunch, MealTypeForSlot(2, 3))
	assert.Equal(t, common.MealTypeDinner, MealTypeForSlot(3, 3))
	assert.Equal(t, common.MealTypeSnack, MealTypeForSlot(4, 4))
	assert.Equal(t, common.MealTypeSnack, MealTypeForSlot(5, 5))
}

func TestRequiredMealTypes(t *testing.T) {
	assert.Equal(t, []common.MealType{common.MealTypeDinner}, RequiredMealTypes(1))
	assert.Equal(t,
		[]common.MealType{common.MealTypeBreakfast, common.MealTypeLunch, common.MealTypeDinner, common.MealTypeSnack},
		RequiredMealTypes(5))
}

func TestAssembleFillsEverySlot(t *testing.T) {
	req := common.MealPlanRequest{Days: 3, MealsPerDay: 3, DailyCalorieTarget: 1500}

	slots, nutrition, err := Assemble(req, allMealsPool())
	require.NoError(t, err)

	require.Len(t, slots, 9)
	for _, slot := range slots {
		require.NotNil(t, slot.Recipe, "day %d meal %d left unfilled", slot.Day, slot.MealNumber)
		assert.True(t, slot.Recipe.ServesMealType(slot.MealType))
	}
	require.Len(t, nutrition, 3)
	for _, day := range nutrition {
		assert.InDelta(t, day.CaloriesKcal-req.DailyCalorieTarget, day.Deviation, 1e-9)
	}
}

func TestAssembleIsDeterministic(t *testing.T) {
	req := common.MealPlanRequest{Days: 5, MealsPerDay: 4, DailyCalorieTarget: 2200}

	first, _, err := Assemble(req, allMealsPool())
	require.NoError(t, err)
	second, _, err := Assemble(req, allMealsPool())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssemblePrefersVariety(t *testing.T) {
	req := common.MealPlanRequest{Days: 1, MealsPerDay: 3, DailyCalorieTarget: 1500}

	slots, _, err := Assemble(req, allMealsPool())
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, slot := range slots {
		seen[slot.Recipe.ID]++
	}
	// with four candidates and three slots no recipe should repeat
	for id, n := range seen {
		assert.Equal(t, 1, n, "recipe %s repeated within a day", id)
	}
}

func TestAssembleDietaryTagsAreHardConstraints(t *testing.T) {
	all := []string{"breakfast", "lunch", "dinner"}
	pool := []common.Recipe{
		recipe("r1", "Tofu Scramble", 450, all, "vegan", "gluten-free"),
		recipe("r2", "Bacon Omelette", 500, all),
		recipe("r3", "Lentil Curry", 520, all, "vegan"),
	}
	req := common.MealPlanRequest{
		Days: 2, MealsPerDay: 3, DailyCalorieTarget: 1400,
		DietaryTags: []string{"vegan"},
	}

	slots, _, err := Assemble(req, pool)
	require.NoError(t, err)

	for _, slot := range slots {
		assert.NotEqual(t, "r2", slot.Recipe.ID, "untagged recipe must never be selected")
	}
}

func TestAssembleInsufficientCandidates(t *testing.T) {
	pool := []common.Recipe{
		recipe("r1", "Oatmeal", 400, []string{"breakfast"}),
	}
	req := common.MealPlanRequest{Days: 1, MealsPerDay: 3, DailyCalorieTarget: 1500}

	_, _, err := Assemble(req, pool)
	require.Error(t, err)
	require.True(t, common.IsInsufficientCandidates(err))

	var icErr *common.InsufficientCandidatesError
	require.ErrorAs(t, err, &icErr)
	assert.Equal(t, 1, icErr.Day)
	assert.Equal(t, 2, icErr.MealNumber)
	assert.Equal(t, common.MealTypeLunch, icErr.MealType)
}

func TestAssemblePicksNearestCalories(t *testing.T) {
	pool := []common.Recipe{
		recipe("r1", "Light Dinner", 300, []string{"dinner"}),
		recipe("r2", "Hearty Dinner", 700, []string{"dinner"}),
	}
	req := common.MealPlanRequest{Days: 1, MealsPerDay: 1, DailyCalorieTarget: 650}

	slots, nutrition, err := Assemble(req, pool)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "r2", slots[0].Recipe.ID)
	assert.InDelta(t, 50, nutrition[0].Deviation, 1e-9)
}
