package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/cuisinehq/mercuriale/internal/common"
)

func TestRecipeParse_FullDocument(t *testing.T) {
	lines := []string{
		"Quiche lorraine",
		"Ingrédients pour 6 personnes",
		"200 g lardons fumés",
		"3 oeufs",
		"Farine 250 g",
		"Préparation",
		"Préchauffer le four à 180 degrés.",
		"Mélanger les oeufs et la crème, verser sur la pâte.",
	}

	recipe, err := NewRecipeParser().Parse(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recipe.Name != "Quiche lorraine" {
		t.Errorf("name = %q", recipe.Name)
	}
	if recipe.Portions != 6 {
		t.Errorf("portions = %d, want 6", recipe.Portions)
	}
	if len(recipe.Ingredients) != 3 {
		t.Fatalf("ingredients = %d, want 3: %+v", len(recipe.Ingredients), recipe.Ingredients)
	}
	if recipe.Ingredients[0].Name != "lardons fumés" || recipe.Ingredients[0].Quantity != 200 || recipe.Ingredients[0].Unit != "g" {
		t.Errorf("first ingredient = %+v", recipe.Ingredients[0])
	}
	// quantity-first with no unit defaults to unité
	if recipe.Ingredients[1].Unit != "unité" {
		t.Errorf("oeufs unit = %q, want unité", recipe.Ingredients[1].Unit)
	}
	if !strings.Contains(recipe.Instructions, "Préchauffer") {
		t.Errorf("instructions missing step: %q", recipe.Instructions)
	}
}

func TestRecipeParse_DefaultPortions(t *testing.T) {
	lines := []string{
		"Salade verte",
		"Ingrédients",
		"2 pièce laitue",
	}

	recipe, err := NewRecipeParser().Parse(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recipe.Portions != 4 {
		t.Errorf("portions = %d, want default 4", recipe.Portions)
	}
}

func TestRecipeParse_NoRevertAfterInstructions(t *testing.T) {
	lines := []string{
		"Boeuf bourguignon",
		"Ingrédients",
		"800 g paleron de boeuf",
		"Préparation",
		"Saisir la viande sur toutes ses faces.",
		"Ingrédients de la garniture", // stray header must not reopen the list
		"200 g champignons de Paris",
	}

	recipe, err := NewRecipeParser().Parse(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recipe.Ingredients) != 1 {
		t.Errorf("ingredients = %d, want 1 (no state reversion)", len(recipe.Ingredients))
	}
	if !strings.Contains(recipe.Instructions, "champignons") {
		t.Errorf("post-reversion line should land in instructions: %q", recipe.Instructions)
	}
}

func TestRecipeParse_IncompleteWithoutIngredients(t *testing.T) {
	lines := []string{
		"Tarte aux pommes",
		"Préparation",
		"Étaler la pâte dans le moule.",
	}

	_, err := NewRecipeParser().Parse(lines)
	if !errors.Is(err, common.ErrRecipeIncomplete) {
		t.Fatalf("expected ErrRecipeIncomplete, got %v", err)
	}
}

func TestRecipeParse_IncompleteWithoutName(t *testing.T) {
	lines := []string{
		"12345",
		"Ingrédients",
		"200 g beurre",
	}

	_, err := NewRecipeParser().Parse(lines)
	if !errors.Is(err, common.ErrRecipeIncomplete) {
		t.Fatalf("expected ErrRecipeIncomplete, got %v", err)
	}
}

func TestParseIngredientLine_BothOrderings(t *testing.T) {
	qtyFirst, ok := ParseIngredientLine("250 g farine de blé")
	if !ok {
		t.Fatal("quantity-first form should match")
	}
	if qtyFirst.Name != "farine de blé" || qtyFirst.Quantity != 250 || qtyFirst.Unit != "g" {
		t.Errorf("qty-first = %+v", qtyFirst)
	}

	nameFirst, ok := ParseIngredientLine("Crème fraîche 20 cl")
	if !ok {
		t.Fatal("name-first form should match")
	}
	if nameFirst.Name != "Crème fraîche" || nameFirst.Quantity != 20 || nameFirst.Unit != "cl" {
		t.Errorf("name-first = %+v", nameFirst)
	}
}

func TestParseIngredientLine_NoMatch(t *testing.T) {
	if _, ok := ParseIngredientLine("selon votre goût"); ok {
		t.Error("prose line must not match")
	}
}
