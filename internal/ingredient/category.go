package ingredient

import "strings"

// Shopping categories. The order of CategoryOrder is the display order of
// a generated list.
const (
	CategoryProduce = "produce"
	CategoryMeat    = "meat"
	CategoryDairy   = "dairy"
	CategoryPantry  = "pantry"
	CategoryOther   = "other"
)

// CategoryOrder fixes the category sequence used when sorting output.
var CategoryOrder = []string{CategoryProduce, CategoryMeat, CategoryDairy, CategoryPantry, CategoryOther}

type categoryRule struct {
	match    string
	category string
}

var exactCategories = map[string]string{
	"egg": CategoryDairy,
}

// Substring rules, checked in order. Compound pantry names come before
// the meat/produce words they contain ("chicken broth" is pantry, not
// meat; "black pepper" is pantry, not produce).
var categoryRules = []categoryRule{
	{"broth", CategoryPantry},
	{"stock", CategoryPantry},
	{"black pepper", CategoryPantry},
	{"soy sauce", CategoryPantry},
	{"oil", CategoryPantry},
	{"vinegar", CategoryPantry},
	{"flour", CategoryPantry},
	{"sugar", CategoryPantry},
	{"salt", CategoryPantry},
	{"rice", CategoryPantry},
	{"pasta", CategoryPantry},
	{"noodle", CategoryPantry},
	{"bean", CategoryPantry},
	{"lentil", CategoryPantry},
	{"oat", CategoryPantry},
	{"honey", CategoryPantry},
	{"cumin", CategoryPantry},
	{"paprika", CategoryPantry},
	{"cinnamon", CategoryPantry},
	{"oregano", CategoryPantry},
	{"vanilla", CategoryPantry},
	{"baking", CategoryPantry},
	{"bread", CategoryPantry},

	{"milk", CategoryDairy},
	{"cheese", CategoryDairy},
	{"butter", CategoryDairy},
	{"yogurt", CategoryDairy},
	{"cream", CategoryDairy},
	{"egg", CategoryDairy},

	{"chicken", CategoryMeat},
	{"beef", CategoryMeat},
	{"pork", CategoryMeat},
	{"turkey", CategoryMeat},
	{"bacon", CategoryMeat},
	{"sausage", CategoryMeat},
	{"ham", CategoryMeat},
	{"fish", CategoryMeat},
	{"salmon", CategoryMeat},
	{"tuna", CategoryMeat},
	{"shrimp", CategoryMeat},

	{"apple", CategoryProduce},
	{"banana", CategoryProduce},
	{"orange", CategoryProduce},
	{"berr", CategoryProduce},
	{"lemon", CategoryProduce},
	{"lime", CategoryProduce},
	{"onion", CategoryProduce},
	{"garlic", CategoryProduce},
	{"tomato", CategoryProduce},
	{"potato", CategoryProduce},
	{"carrot", CategoryProduce},
	{"lettuce", CategoryProduce},
	{"spinach", CategoryProduce},
	{"kale", CategoryProduce},
	{"broccoli", CategoryProduce},
	{"pepper", CategoryProduce},
	{"cucumber", CategoryProduce},
	{"celery", CategoryProduce},
	{"mushroom", CategoryProduce},
	{"avocado", CategoryProduce},
	{"zucchini", CategoryProduce},
	{"cilantro", CategoryProduce},
	{"parsley", CategoryProduce},
	{"basil", CategoryProduce},
	{"ginger", CategoryProduce},
}

// Categorize maps a normalized ingredient name to a shopping category.
// Exact matches win, then the first substring rule; anything unmatched is
// CategoryOther. Never fails.
func Categorize(name string) string {
	if cat, ok := exactCategories[name]; ok {
		return cat
	}
	for _, rule := range categoryRules {
		if strings.Contains(name, rule.match) {
			return rule.category
		}
	}
	return CategoryOther
}
