package entity

// ParsedRecord is the transient output of the price-list record parser.
// Quantity is nil when the source line carried no quantity at all; that is
// not the same as an explicit zero and downstream stock initialization
// depends on the distinction.
type ParsedRecord struct {
	Name       string   `json:"name"`
	Quantity   *float64 `json:"quantity,omitempty"`
	Unit       string   `json:"unit"`
	UnitPrice  float64  `json:"unit_price"`
	Allergens  []string `json:"allergens,omitempty"`
	Confidence float32  `json:"confidence"`
}

// ParsedIngredient is one ingredient line recovered from a fiche document.
type ParsedIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// ParsedRecipe is the transient output of the recipe section parser.
type ParsedRecipe struct {
	Name         string             `json:"name"`
	Portions     int                `json:"portions"`
	Ingredients  []ParsedIngredient `json:"ingredients"`
	Instructions string             `json:"instructions"`
	Confidence   float32            `json:"confidence"`
}

// PriceMatch pairs a parsed record with the catalog entry it collides with.
type PriceMatch struct {
	Existing      CatalogEntry `json:"existing"`
	Incoming      ParsedRecord `json:"incoming"`
	PriceDiff     float64      `json:"price_diff"`
	PercentChange float64      `json:"percent_change"` // non-finite when the old price is 0
}

// RecipeMatch pairs a parsed recipe with a similarly-named existing sheet.
type RecipeMatch struct {
	Existing   RecipeSheet `json:"existing"`
	Similarity float64     `json:"similarity"`
}
