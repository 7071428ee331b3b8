package parse

import (
	"strings"

	"github.com/cuisinehq/mercuriale/constants"
)

// TagAllergens returns the allergens whose keywords appear in the ingredient
// name. Matching is case- and diacritic-insensitive keyword containment over
// the fixed 14-item lexicon; there is no negation logic. The result is
// deterministic (lexicon order) and free of duplicates.
func TagAllergens(name string) []string {
	folded := Fold(name)

	var out []string
	for _, allergen := range constants.AllergensAsStringSlice() {
		for _, kw := range constants.AllergenKeywords[constants.Allergen(allergen)] {
			if strings.Contains(folded, kw) {
				out = append(out, allergen)
				break
			}
		}
	}
	return out
}
