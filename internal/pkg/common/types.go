package common

import (
	"fmt"
	"strings"
)

// MealType is the slot classification a recipe can serve.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// ValidMealType reports whether s is one of the known meal types.
func ValidMealType(s string) bool {
	switch MealType(strings.ToLower(strings.TrimSpace(s))) {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// Ingredient is a single recipe ingredient. Amount is untrusted external
// input and may be empty, zero, or non-numeric; it is parsed at the point
// of use, never coerced here.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// Recipe is an immutable candidate fetched from the provider.
type Recipe struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	CaloriesKcal    float64      `json:"caloriesKcal"`
	ProteinGrams    float64      `json:"proteinGrams"`
	CarbsGrams      float64      `json:"carbsGrams"`
	FatGrams        float64      `json:"fatGrams"`
	PrepTimeMinutes int          `json:"prepTimeMinutes"`
	CookTimeMinutes int          `json:"cookTimeMinutes"`
	Servings        int          `json:"servings"`
	MealTypes       []string     `json:"mealTypes"`
	DietaryTags     []string     `json:"dietaryTags,omitempty"`
	Ingredients     []Ingredient `json:"ingredients"`
}

// ServesMealType reports whether the recipe can fill a slot of type t.
// Matching is case-insensitive.
func (r Recipe) ServesMealType(t MealType) bool {
	for _, mt := range r.MealTypes {
		if strings.EqualFold(mt, string(t)) {
			return true
		}
	}
	return false
}

// HasDietaryTag reports whether the recipe carries the given tag,
// case-insensitively.
func (r Recipe) HasDietaryTag(tag string) bool {
	for _, t := range r.DietaryTags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// MealSlot is one (day, meal number) position of a plan. Recipe is nil
// only transiently while assembly is in progress; a returned plan never
// contains a nil recipe.
type MealSlot struct {
	Day        int      `json:"day"`
	MealNumber int      `json:"mealNumber"`
	MealType   MealType `json:"mealType"`
	Recipe     *Recipe  `json:"recipe"`
}

// MealPlanRequest describes one generation request. GenerateMealPrep is a
// pointer so that an omitted field defaults to true; only an explicit
// false disables the prep plan.
type MealPlanRequest struct {
	Days               int      `json:"days"`
	MealsPerDay        int      `json:"mealsPerDay"`
	DailyCalorieTarget float64  `json:"dailyCalorieTarget"`
	FitnessGoal        string   `json:"fitnessGoal,omitempty"`
	DietaryTags        []string `json:"dietaryTags,omitempty"`
	GenerateMealPrep   *bool    `json:"generateMealPrep,omitempty"`
}

// WantsMealPrep reports whether a prep plan should be built. Absence of
// generateMealPrep is not the same as false.
func (r MealPlanRequest) WantsMealPrep() bool {
	return r.GenerateMealPrep == nil || *r.GenerateMealPrep
}

// Validate rejects malformed requests before any candidate fetch.
func (r MealPlanRequest) Validate() error {
	if r.Days < 1 {
		return NewValidationError(fmt.Sprintf("days must be at least 1, got %d", r.Days))
	}
	if r.MealsPerDay < 1 {
		return NewValidationError(fmt.Sprintf("mealsPerDay must be at least 1, got %d", r.MealsPerDay))
	}
	if r.DailyCalorieTarget <= 0 {
		return NewValidationError("dailyCalorieTarget is required and must be positive")
	}
	return nil
}

// DayNutrition is a per-day diagnostic summary. Deviation is the signed
// distance of the day's calories from the daily target; it is reported,
// never enforced.
type DayNutrition struct {
	Day          int     `json:"day"`
	CaloriesKcal float64 `json:"caloriesKcal"`
	ProteinGrams float64 `json:"proteinGrams"`
	CarbsGrams   float64 `json:"carbsGrams"`
	FatGrams     float64 `json:"fatGrams"`
	Deviation    float64 `json:"deviation"`
}

// MealPlan is the finished artifact handed to the persistence and export
// collaborators. StartOfWeekMealPrep is present iff the request asked for
// it and at least one meal carries a recipe.
type MealPlan struct {
	ID                  string         `json:"id"`
	Meals               []MealSlot     `json:"meals"`
	Days                int            `json:"days"`
	MealsPerDay         int            `json:"mealsPerDay"`
	DailyCalorieTarget  float64        `json:"dailyCalorieTarget"`
	FitnessGoal         string         `json:"fitnessGoal,omitempty"`
	DailyNutrition      []DayNutrition `json:"dailyNutrition,omitempty"`
	StartOfWeekMealPrep *MealPrepPlan  `json:"startOfWeekMealPrep,omitempty"`
}

// ShoppingListItem is one consolidated ingredient line. There is exactly
// one item per distinct (normalized name, normalized unit) pair and
// UsedInRecipes preserves first-seen order without duplicates.
type ShoppingListItem struct {
	Ingredient    string   `json:"ingredient"`
	TotalAmount   string   `json:"totalAmount"`
	Unit          string   `json:"unit"`
	UsedInRecipes []string `json:"usedInRecipes"`
}

// PrepStep is one entry of the ordered preparation schedule. Step numbers
// are 1-based and contiguous; the final step is always storage/cleanup.
type PrepStep struct {
	Step          int      `json:"step"`
	Instruction   string   `json:"instruction"`
	EstimatedTime int      `json:"estimatedTime"`
	Ingredients   []string `json:"ingredients"`
}

// StorageInstruction tells how to keep one consolidated ingredient.
type StorageInstruction struct {
	Ingredient string `json:"ingredient"`
	Method     string `json:"method"`
	Duration   string `json:"duration"`
}

// MealPrepPlan is the start-of-week prep artifact derived from the
// assembled meals: shopping list, ordered prep schedule, and per-item
// storage guidance. TotalPrepTime is always the sum of the step times.
type MealPrepPlan struct {
	ShoppingList        []ShoppingListItem   `json:"shoppingList"`
	PrepSteps           []PrepStep           `json:"prepSteps"`
	StorageInstructions []StorageInstruction `json:"storageInstructions"`
	TotalPrepTime       int                  `json:"totalPrepTime"`
}
