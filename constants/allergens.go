package constants

// Allergen is one of the 14 regulatory allergens (EU 1169/2011 annex II).
type Allergen string

const (
	AllergenGluten     Allergen = "Gluten"
	AllergenCrustaces  Allergen = "Crustacés"
	AllergenOeufs      Allergen = "Œufs"
	AllergenPoissons   Allergen = "Poissons"
	AllergenArachides  Allergen = "Arachides"
	AllergenSoja       Allergen = "Soja"
	AllergenLait       Allergen = "Lait"
	AllergenFruitsCoq  Allergen = "Fruits à coque"
	AllergenCeleri     Allergen = "Céleri"
	AllergenMoutarde   Allergen = "Moutarde"
	AllergenSesame     Allergen = "Sésame"
	AllergenSulfites   Allergen = "Sulfites"
	AllergenLupin      Allergen = "Lupin"
	AllergenMollusques Allergen = "Mollusques"
)

var allAllergens = []Allergen{
	AllergenGluten, AllergenCrustaces, AllergenOeufs, AllergenPoissons,
	AllergenArachides, AllergenSoja, AllergenLait, AllergenFruitsCoq,
	AllergenCeleri, AllergenMoutarde, AllergenSesame, AllergenSulfites,
	AllergenLupin, AllergenMollusques,
}

// AllergenKeywords maps each allergen to the ingredient-name keywords that
// imply it. Keywords are stored diacritic-folded lowercase; the tagger folds
// the candidate name the same way before the containment check.
var AllergenKeywords = map[Allergen][]string{
	AllergenGluten:     {"farine", "pain", "pate", "ble", "semoule", "orge", "seigle"},
	AllergenCrustaces:  {"crevette", "crabe", "homard", "langoustine", "ecrevisse"},
	AllergenOeufs:      {"oeuf", "mayonnaise"},
	AllergenPoissons:   {"poisson", "saumon", "cabillaud", "thon", "anchois"},
	AllergenArachides:  {"arachide", "cacahuete"},
	AllergenSoja:       {"soja", "tofu"},
	AllergenLait:       {"lait", "creme", "fromage", "beurre", "yaourt"},
	AllergenFruitsCoq:  {"noix", "noisette", "amande", "pistache", "cajou"},
	AllergenCeleri:     {"celeri"},
	AllergenMoutarde:   {"moutarde"},
	AllergenSesame:     {"sesame", "tahini"},
	AllergenSulfites:   {"sulfite", "vin blanc", "vinaigre"},
	AllergenLupin:      {"lupin"},
	AllergenMollusques: {"moule", "huitre", "calamar", "encornet", "escargot"},
}

// AllergensAsStringSlice returns the lexicon for enum validation.
func AllergensAsStringSlice() []string {
	out := make([]string, len(allAllergens))
	for i, a := range allAllergens {
		out[i] = string(a)
	}
	return out
}
