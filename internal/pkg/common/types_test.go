package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWantsMealPrepDefaultsToTrue(t *testing.T) {
	var req MealPlanRequest
	assert.True(t, req.WantsMealPrep(), "omitted generateMealPrep must default to true")

	on := true
	req.GenerateMealPrep = &on
	assert.True(t, req.WantsMealPrep())

	off := false
	req.GenerateMealPrep = &off
	assert.False(t, req.WantsMealPrep())
}

func TestWantsMealPrepOmittedFieldSurvivesJSON(t *testing.T) {
	var req MealPlanRequest
	err := ParseJSON(`{"days": 3, "mealsPerDay": 3, "dailyCalorieTarget": 1800}`, &req)
	assert.NoError(t, err)
	assert.Nil(t, req.GenerateMealPrep)
	assert.True(t, req.WantsMealPrep())

	err = ParseJSON(`{"days": 3, "mealsPerDay": 3, "dailyCalorieTarget": 1800, "generateMealPrep": false}`, &req)
	assert.NoError(t, err)
	assert.False(t, req.WantsMealPrep())
}

func TestMealPlanRequestValidate(t *testing.T) {
	valid := MealPlanRequest{Days: 7, MealsPerDay: 3, DailyCalorieTarget: 2000}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		req  MealPlanRequest
	}{
		{"zero days", MealPlanRequest{Days: 0, MealsPerDay: 3, DailyCalorieTarget: 2000}},
		{"negative days", MealPlanRequest{Days: -1, MealsPerDay: 3, DailyCalorieTarget: 2000}},
		{"zero meals", MealPlanRequest{Days: 7, MealsPerDay: 0, DailyCalorieTarget: 2000}},
		{"missing calorie target", MealPlanRequest{Days: 7, MealsPerDay: 3}},
		{"negative calorie target", MealPlanRequest{Days: 7, MealsPerDay: 3, DailyCalorieTarget: -100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			assert.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestRecipeServesMealType(t *testing.T) {
	r := Recipe{MealTypes: []string{"Breakfast", "snack"}}
	assert.True(t, r.ServesMealType(MealTypeBreakfast))
	assert.True(t, r.ServesMealType(MealTypeSnack))
	assert.False(t, r.ServesMealType(MealTypeDinner))
}

func TestRecipeHasDietaryTag(t *testing.T) {
	r := Recipe{DietaryTags: []string{"Vegan", "gluten-free"}}
	assert.True(t, r.HasDietaryTag("vegan"))
	assert.True(t, r.HasDietaryTag("Gluten-Free"))
	assert.False(t, r.HasDietaryTag("keto"))
}

func TestValidMealType(t *testing.T) {
	assert.True(t, ValidMealType("breakfast"))
	assert.True(t, ValidMealType(" Dinner "))
	assert.False(t, ValidMealType("brunch"))
	assert.False(t, ValidMealType(""))
}

func TestErrorHelpers(t *testing.T) {
	vErr := NewValidationError("bad input")
	assert.True(t, IsValidationError(vErr))
	assert.False(t, IsInsufficientCandidates(vErr))

	icErr := NewInsufficientCandidatesError(2, 3, MealTypeDinner)
	assert.True(t, IsInsufficientCandidates(icErr))
	assert.False(t, IsValidationError(icErr))
	assert.Contains(t, icErr.Error(), "day 2")
	assert.Contains(t, icErr.Error(), "dinner")
}
