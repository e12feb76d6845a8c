package ingredient

import "strings"

// Category is the prep/storage classification of an ingredient.
type Category string

const (
	CategoryVegetable Category = "vegetable"
	CategoryProtein   Category = "protein"
	CategoryGrain     Category = "grain"
	CategoryDairy     Category = "dairy"
	CategoryOther     Category = "other"
)

// categoryRule pairs a category with the keywords that select it.
type categoryRule struct {
	category Category
	keywords []string
}

// categoryRules is evaluated top to bottom; the first keyword contained
// in the lowercased name wins. Order is part of the contract: a name
// matching both "chicken" and "rice" is a protein only if the protein
// rule comes first, so vegetable → protein → grain → dairy is fixed.
var categoryRules = []categoryRule{
	{
		category: CategoryVegetable,
		keywords: []string{
			"broccoli", "spinach", "kale", "lettuce", "carrot", "pepper",
			"tomato", "cucumber", "zucchini", "onion", "garlic", "celery",
			"asparagus", "cauliflower", "cabbage", "mushroom", "avocado",
			"sweet potato", "green bean", "pea", "squash", "beet",
		},
	},
	{
		category: CategoryProtein,
		keywords: []string{
			"chicken", "beef", "pork", "turkey", "lamb", "fish", "salmon",
			"tuna", "cod", "shrimp", "egg", "tofu", "tempeh", "lentil",
			"chickpea", "black bean", "kidney bean", "protein powder",
		},
	},
	{
		category: CategoryGrain,
		keywords: []string{
			"rice", "quinoa", "oat", "pasta", "noodle", "bread", "tortilla",
			"couscous", "barley", "buckwheat", "farro", "wheat", "cereal",
			"flour", "granola",
		},
	},
	{
		category: CategoryDairy,
		keywords: []string{
			"milk", "yogurt", "cheese", "butter", "cream", "kefir",
			"cottage", "whey",
		},
	},
}

// Categorize classifies an ingredient name by substring containment over
// the ordered rule table. Empty and unmatched names fall through to
// CategoryOther. Pure function.
func Categorize(name string) Category {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

// CategoryOrder is the fixed priority used for prep scheduling.
var CategoryOrder = []Category{
	CategoryVegetable,
	CategoryProtein,
	CategoryGrain,
	CategoryDairy,
	CategoryOther,
}
