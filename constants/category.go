package constants

import "strings"

// Category classifies a recipe sheet on the menu.
type Category string

const (
	CategoryEntree         Category = "Entrée"
	CategoryPlat           Category = "Plat"
	CategoryDessert        Category = "Dessert"
	CategoryAccompagnement Category = "Accompagnement"
	CategorySauce          Category = "Sauce"
)

var allCategories = []Category{
	CategoryEntree,
	CategoryPlat,
	CategoryDessert,
	CategoryAccompagnement,
	CategorySauce,
}

func CategoriesAsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// CanonicalizeCategory maps free-form input to a known category.
// Unknown input falls back to Plat, the menu default.
func CanonicalizeCategory(input string) (Category, bool) {
	if input == "" {
		return CategoryPlat, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]Category{
		"entree":         CategoryEntree,
		"starter":        CategoryEntree,
		"main":           CategoryPlat,
		"plat principal": CategoryPlat,
		"garniture":      CategoryAccompagnement,
		"side":           CategoryAccompagnement,
	}
	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}
	return CategoryPlat, false
}
