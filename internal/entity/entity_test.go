package entity

import "testing"

func TestCatalogEntryLevel(t *testing.T) {
	e := CatalogEntry{CriticalStock: 2, MinStock: 5, MaxStock: 20}

	cases := []struct {
		stock float64
		want  StockLevel
	}{
		{10, StockOK},
		{5, StockLow},
		{3, StockLow},
		{2, StockCritical},
		{0, StockCritical},
	}
	for _, c := range cases {
		e.CurrentStock = c.stock
		if got := e.Level(); got != c.want {
			t.Errorf("stock %v: level = %q, want %q", c.stock, got, c.want)
		}
	}
}

func TestRecipeSheetCostAndMargin(t *testing.T) {
	r := RecipeSheet{
		Lines: []RecipeLine{
			{Name: "farine", Quantity: 0.25, Unit: "kg", UnitPrice: 0.85},
			{Name: "beurre", Quantity: 0.125, Unit: "kg", UnitPrice: 8.90},
		},
		Cost:      1.33,
		SalePrice: 1.00,
	}

	want := 0.25*0.85 + 0.125*8.90
	if got := r.LineCost(); got != want {
		t.Errorf("line cost = %v, want %v", got, want)
	}

	// selling under cost is a valid, visible state
	if got := r.Margin(); got >= 0 {
		t.Errorf("margin = %v, want negative", got)
	}
}

func TestRecipeSheetMarginPercent_ZeroSalePrice(t *testing.T) {
	r := RecipeSheet{Cost: 4.20}
	if got := r.MarginPercent(); got != 0 {
		t.Errorf("margin percent = %v, want 0 when unset", got)
	}
}

func TestStockMovementSigned(t *testing.T) {
	in := StockMovement{Direction: MovementIn, Quantity: 3}
	out := StockMovement{Direction: MovementOut, Quantity: 3}

	if in.Signed() != 3 {
		t.Errorf("in = %v", in.Signed())
	}
	if out.Signed() != -3 {
		t.Errorf("out = %v", out.Signed())
	}
}
