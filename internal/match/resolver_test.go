package match

import (
	"math"
	"testing"

	"github.com/cuisinehq/mercuriale/internal/entity"
)

func snapshot(names ...string) []entity.CatalogEntry {
	out := make([]entity.CatalogEntry, len(names))
	for i, n := range names {
		out[i] = entity.CatalogEntry{Name: n, UnitPrice: 2.00}
	}
	return out
}

func TestResolvePriceList_Partition(t *testing.T) {
	existing := snapshot("Tomates grappe", "Carottes fanes")
	incoming := []entity.ParsedRecord{
		{Name: "tomates grappe", UnitPrice: 2.50}, // case-insensitive duplicate
		{Name: "Poireaux", UnitPrice: 1.80},       // new
	}

	res := ResolvePriceList(existing, incoming)
	if len(res.ToAdd) != 1 || res.ToAdd[0].Name != "Poireaux" {
		t.Errorf("to_add = %+v", res.ToAdd)
	}
	if len(res.Duplicates) != 1 {
		t.Fatalf("duplicates = %+v", res.Duplicates)
	}

	d := res.Duplicates[0]
	if d.Existing.Name != "Tomates grappe" {
		t.Errorf("matched entry = %q", d.Existing.Name)
	}
	if math.Abs(d.PriceDiff-0.50) > 1e-9 {
		t.Errorf("price diff = %v, want 0.50", d.PriceDiff)
	}
	if math.Abs(d.PercentChange-25.0) > 1e-9 {
		t.Errorf("percent change = %v, want 25", d.PercentChange)
	}
}

func TestResolvePriceList_EmptySnapshot(t *testing.T) {
	incoming := []entity.ParsedRecord{{Name: "Poireaux", UnitPrice: 1.80}}

	res := ResolvePriceList(nil, incoming)
	if len(res.ToAdd) != 1 || len(res.Duplicates) != 0 {
		t.Errorf("everything should be new: %+v", res)
	}
}

func TestFormatPercent_OldPriceZero(t *testing.T) {
	p := PercentChange(0, 2.50)
	if !math.IsInf(p, 1) {
		t.Fatalf("expected +Inf, got %v", p)
	}
	if got := FormatPercent(p); got != "n/a" {
		t.Errorf("FormatPercent = %q, want n/a", got)
	}
	if got := FormatPercent(PercentChange(0, 0)); got != "n/a" {
		t.Errorf("0 -> 0 should render n/a, got %q", got)
	}
}

func TestFormatPercent_Finite(t *testing.T) {
	if got := FormatPercent(PercentChange(2.00, 2.50)); got != "25.0%" {
		t.Errorf("got %q, want 25.0%%", got)
	}
	if got := FormatPercent(PercentChange(2.00, 1.50)); got != "-25.0%" {
		t.Errorf("got %q, want -25.0%%", got)
	}
}

func TestSimilarity(t *testing.T) {
	if s := Similarity("Tarte aux pommes", "tarte aux pommes"); s != 1.0 {
		t.Errorf("case fold should be exact: %v", s)
	}
	// one edit over 16 runes: 15/16
	if s := Similarity("Tarte aux pommes", "Tarte aux pomme"); math.Abs(s-15.0/16.0) > 1e-9 {
		t.Errorf("similarity = %v, want %v", s, 15.0/16.0)
	}
	if s := Similarity("Tarte aux pommes", "Soupe de poisson"); s > RecipeSimilarityThreshold {
		t.Errorf("unrelated names should stay under threshold: %v", s)
	}
}

func TestResolveRecipe_ThresholdIsStrict(t *testing.T) {
	existing := []entity.RecipeSheet{
		{Name: "Tarte aux pommes"},
		{Name: "Blanquette de veau"},
	}

	matches := ResolveRecipe(existing, entity.ParsedRecipe{Name: "Tarte aux pomme"})
	if len(matches) != 1 {
		t.Fatalf("matches = %+v", matches)
	}
	if matches[0].Existing.Name != "Tarte aux pommes" {
		t.Errorf("matched %q", matches[0].Existing.Name)
	}
	if matches[0].Similarity <= RecipeSimilarityThreshold {
		t.Errorf("similarity %v should exceed threshold", matches[0].Similarity)
	}

	// exactly at the threshold is not a duplicate
	if got := ResolveRecipe([]entity.RecipeSheet{{Name: "abcde"}}, entity.ParsedRecipe{Name: "abcdx"}); got != nil {
		t.Errorf("4/5 = 0.8 must not match strictly-greater threshold: %+v", got)
	}
}
