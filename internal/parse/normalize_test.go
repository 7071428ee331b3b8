package parse

import (
	"strings"
	"testing"
)

func TestNormalizeLines_SplitsAtCurrencyBoundary(t *testing.T) {
	raw := "Tomates grappe kg 2,50 € Carottes fanes kg 1,20 €"

	lines := NormalizeLines(raw)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "Tomates grappe kg 2,50 €" {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "Carottes fanes kg 1,20 €" {
		t.Errorf("unexpected second line: %q", lines[1])
	}
}

func TestNormalizeLines_Idempotent(t *testing.T) {
	raw := "Tomates kg 2,50 € Carottes kg 1,20 € Poireaux botte 1,80 €"

	first := NormalizeLines(raw)
	second := NormalizeLines(strings.Join(first, "\n"))

	if len(first) != len(second) {
		t.Fatalf("line count changed on second pass: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("line %d changed: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestNormalizeLines_DropsShortFragments(t *testing.T) {
	raw := "ab\n   \nTomates kg 2,50 €\n€\nxyz"

	lines := NormalizeLines(raw)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %v", len(lines), lines)
	}
}

func TestNormalizeLines_NoBoundaryInsideLowercase(t *testing.T) {
	// "€ de" must not split: the token after the amount is not capitalized.
	raw := "Plateau de fromages 12,00 € de quoi servir huit couverts"

	lines := NormalizeLines(raw)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %v", len(lines), lines)
	}
}
