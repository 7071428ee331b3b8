package constants

import "strings"

// Unit is the canonical unit vocabulary for catalog entries and recipe lines.
type Unit string

const (
	UnitGram     Unit = "g"
	UnitKilogram Unit = "kg"
	UnitMillilit Unit = "ml"
	UnitCentilit Unit = "cl"
	UnitLitre    Unit = "L"
	UnitPiece    Unit = "pièce"
	UnitUnit     Unit = "unité"
	UnitBunch    Unit = "botte"
	UnitDozen    Unit = "douzaine"
	UnitTbsp     Unit = "c.à.s"
	UnitTsp      Unit = "c.à.c"
)

var allUnits = []Unit{
	UnitGram, UnitKilogram,
	UnitMillilit, UnitCentilit, UnitLitre,
	UnitPiece, UnitUnit, UnitBunch, UnitDozen,
	UnitTbsp, UnitTsp,
}

// unitSynonyms maps lowercased raw tokens to their canonical form.
// Tokens already canonical (g, kg, ml, cl, botte, douzaine) map to themselves
// through the fallthrough in NormalizeUnit.
var unitSynonyms = map[string]Unit{
	"l":          UnitLitre,
	"litre":      UnitLitre,
	"litres":     UnitLitre,
	"kilo":       UnitKilogram,
	"kilos":      UnitKilogram,
	"kilogramme": UnitKilogram,
	"gramme":     UnitGram,
	"grammes":    UnitGram,
	"piece":      UnitPiece,
	"pièce":      UnitPiece,
	"pieces":     UnitPiece,
	"pièces":     UnitPiece,
	"unite":      UnitUnit,
	"unité":      UnitUnit,
	"c.à.s":      UnitTbsp,
	"cas":        UnitTbsp,
	"cs":         UnitTbsp,
	"c.à.c":      UnitTsp,
	"cac":        UnitTsp,
	"cc":         UnitTsp,
}

// NormalizeUnit maps a raw unit token to its canonical spelling.
// Unknown tokens are returned unchanged, never dropped.
func NormalizeUnit(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return string(UnitUnit)
	}
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", ".")
	if u, ok := unitSynonyms[key]; ok {
		return string(u)
	}
	for _, u := range allUnits {
		if key == strings.ToLower(string(u)) {
			return string(u)
		}
	}
	return raw
}

// UnitsAsStringSlice returns the canonical vocabulary for enum validation.
func UnitsAsStringSlice() []string {
	out := make([]string, len(allUnits))
	for i, u := range allUnits {
		out[i] = string(u)
	}
	return out
}

// UnitTokenPattern is the alternation used by the record parser patterns.
// Longer tokens first so the regex engine does not stop at a prefix.
const UnitTokenPattern = `kg|g|ml|cl|l|pièce|piece|unité|unite|botte|douzaine`
