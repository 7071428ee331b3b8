// Package match compares freshly parsed records against an existing catalog
// snapshot. The snapshot is supplied by the caller and never mutated; each
// import run is a pure function of its own inputs.
package match

import (
	"math"
	"strconv"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/cuisinehq/mercuriale/internal/entity"
	"github.com/cuisinehq/mercuriale/internal/parse"
)

// RecipeSimilarityThreshold declares a duplicate when exceeded (strictly).
const RecipeSimilarityThreshold = 0.80

// PriceListResolution partitions an import run: every incoming record lands
// in exactly one of the two sets.
type PriceListResolution struct {
	ToAdd      []entity.ParsedRecord
	Duplicates []entity.PriceMatch
}

// ResolvePriceList matches parsed records against existing entries by exact
// case-insensitive name equality and computes the price delta for matches.
// An empty snapshot degenerates safely to "all new".
func ResolvePriceList(existing []entity.CatalogEntry, incoming []entity.ParsedRecord) PriceListResolution {
	var res PriceListResolution
	for _, rec := range incoming {
		match, ok := findByName(existing, rec.Name)
		if !ok {
			res.ToAdd = append(res.ToAdd, rec)
			continue
		}
		res.Duplicates = append(res.Duplicates, entity.PriceMatch{
			Existing:      match,
			Incoming:      rec,
			PriceDiff:     rec.UnitPrice - match.UnitPrice,
			PercentChange: PercentChange(match.UnitPrice, rec.UnitPrice),
		})
	}
	return res
}

func findByName(existing []entity.CatalogEntry, name string) (entity.CatalogEntry, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, e := range existing {
		if strings.ToLower(strings.TrimSpace(e.Name)) == needle {
			return e, true
		}
	}
	return entity.CatalogEntry{}, false
}

// PercentChange is (new-old)/old*100. When the old price is 0 the result is
// not a finite number; callers must render it with FormatPercent instead of
// dividing on their own.
func PercentChange(oldPrice, newPrice float64) float64 {
	return (newPrice - oldPrice) / oldPrice * 100
}

// FormatPercent renders a percent change, or "n/a" when it is not finite.
func FormatPercent(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return "n/a"
	}
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}

// ResolveRecipe returns every existing sheet whose name is similar enough to
// the parsed recipe to be a duplicate candidate, most similar first in
// snapshot order. An empty result means the recipe is new.
func ResolveRecipe(existing []entity.RecipeSheet, incoming entity.ParsedRecipe) []entity.RecipeMatch {
	var out []entity.RecipeMatch
	for _, sheet := range existing {
		s := Similarity(sheet.Name, incoming.Name)
		if s > RecipeSimilarityThreshold {
			out = append(out, entity.RecipeMatch{Existing: sheet, Similarity: s})
		}
	}
	return out
}

// Similarity is the normalized Levenshtein ratio on folded, trimmed names:
// (maxLen - editDistance) / maxLen, in [0,1].
func Similarity(a, b string) float64 {
	s1 := strings.TrimSpace(parse.Fold(a))
	s2 := strings.TrimSpace(parse.Fold(b))
	if s1 == s2 {
		return 1.0
	}

	maxLen := len([]rune(s1))
	if l2 := len([]rune(s2)); l2 > maxLen {
		maxLen = l2
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.Distance(s1, s2, nil)
	return float64(maxLen-dist) / float64(maxLen)
}
