package parse

import (
	"testing"
)

func TestTagAllergens_DiacriticAndLigatureFolding(t *testing.T) {
	got := TagAllergens("Œufs frais de poule")
	if len(got) != 1 || got[0] != "Œufs" {
		t.Errorf("got %v, want [Œufs]", got)
	}

	got = TagAllergens("CRÈME ÉPAISSE")
	if len(got) != 1 || got[0] != "Lait" {
		t.Errorf("got %v, want [Lait]", got)
	}
}

func TestTagAllergens_MultipleHits(t *testing.T) {
	got := TagAllergens("Pâte à tarte au beurre")
	want := map[string]bool{"Gluten": true, "Lait": true}
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 allergens", got)
	}
	for _, a := range got {
		if !want[a] {
			t.Errorf("unexpected allergen %q in %v", a, got)
		}
	}
}

func TestTagAllergens_NoDuplicatesPerAllergen(t *testing.T) {
	// two keywords of the same allergen must tag it once
	got := TagAllergens("Saumon et thon")
	if len(got) != 1 || got[0] != "Poissons" {
		t.Errorf("got %v, want [Poissons]", got)
	}
}

func TestTagAllergens_NoHit(t *testing.T) {
	if got := TagAllergens("Courgettes bio"); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

func TestFold(t *testing.T) {
	cases := map[string]string{
		"Œuf":        "oeuf",
		"CÉLERI":     "celeri",
		"crème":      "creme",
		"Bœuf haché": "boeuf hache",
	}
	for in, want := range cases {
		if got := Fold(in); got != want {
			t.Errorf("Fold(%q) = %q, want %q", in, got, want)
		}
	}
}
