package parse

import (
	"testing"

	"github.com/cuisinehq/mercuriale/internal/entity"
)

func TestParseLine_QuantityUnitPriceAndTotal(t *testing.T) {
	p := NewRecordParser()

	rec, ok := p.ParseLine("Tomates grappe 5 kg 2,50 € 12,50 €")
	if !ok {
		t.Fatal("expected a match")
	}
	if rec.Name != "Tomates grappe" {
		t.Errorf("name = %q", rec.Name)
	}
	if rec.Quantity == nil || *rec.Quantity != 5 {
		t.Errorf("quantity = %v, want 5", rec.Quantity)
	}
	if rec.Unit != "kg" {
		t.Errorf("unit = %q", rec.Unit)
	}
	// the trailing 12,50 is the line total, not the unit price
	if rec.UnitPrice != 2.50 {
		t.Errorf("unit price = %v, want 2.50", rec.UnitPrice)
	}
}

func TestParseLine_NoQuantity(t *testing.T) {
	p := NewRecordParser()

	rec, ok := p.ParseLine("Farine T55 kg 0,85 €")
	if !ok {
		t.Fatal("expected a match")
	}
	if rec.Name != "Farine T55" {
		t.Errorf("name = %q", rec.Name)
	}
	if rec.Quantity != nil {
		t.Errorf("quantity should stay absent, got %v", *rec.Quantity)
	}
	if rec.UnitPrice != 0.85 {
		t.Errorf("unit price = %v", rec.UnitPrice)
	}
}

func TestParseLine_DecimalSeparatorEquivalence(t *testing.T) {
	p := NewRecordParser()

	comma, ok := p.ParseLine("Beurre doux kg 8,90 €")
	if !ok {
		t.Fatal("comma form should match")
	}
	period, ok := p.ParseLine("Beurre doux kg 8.90 €")
	if !ok {
		t.Fatal("period form should match")
	}
	if comma.UnitPrice != period.UnitPrice {
		t.Errorf("prices differ: %v vs %v", comma.UnitPrice, period.UnitPrice)
	}
}

func TestParseLine_RejectsTotalsAndHeaders(t *testing.T) {
	p := NewRecordParser()

	if _, ok := p.ParseLine("TOTAL HT 184,20 €"); ok {
		t.Error("total line must not produce a record")
	}
	if !IsHeaderLine("Produit Unité Prix unitaire") {
		t.Error("column header not detected")
	}
}

func TestParseLine_PriceBounds(t *testing.T) {
	p := NewRecordParser()

	if _, ok := p.ParseLine("Truffe noire kg 1200,00 €"); ok {
		t.Error("price above bound must be rejected")
	}
	if _, ok := p.ParseLine("Persil botte 0,00 €"); ok {
		t.Error("zero price must be rejected")
	}
}

func TestParseLine_EmbeddedProductInBoilerplate(t *testing.T) {
	p := NewRecordParser()

	rec, ok := p.ParseLine("METRO Cash & Carry Tomates rondes 5 kg 2,10 €")
	if !ok {
		t.Fatal("embedded product cell should be recovered")
	}
	if rec.Name != "Tomates rondes" {
		t.Errorf("name = %q", rec.Name)
	}
	if rec.UnitPrice != 2.10 {
		t.Errorf("unit price = %v", rec.UnitPrice)
	}

	// An uppercased unit must not drag the name match into the vendor text.
	rec, ok = p.ParseLine("Restaurant Chez Paul Courgettes 3 KG 1,80 €")
	if !ok {
		t.Fatal("embedded product cell should be recovered")
	}
	if rec.Name != "Courgettes" {
		t.Errorf("name = %q", rec.Name)
	}
	if rec.Unit != "kg" {
		t.Errorf("unit = %q", rec.Unit)
	}
}

func TestParseLine_BoilerplateWithoutProduct(t *testing.T) {
	p := NewRecordParser()

	if _, ok := p.ParseLine("Facture client n° 20250817"); ok {
		t.Error("pure boilerplate must not produce a record")
	}
}

func TestParseLine_UnitSynonymNormalized(t *testing.T) {
	p := NewRecordParser()

	rec, ok := p.ParseLine("Salade batavia 3 piece 1,10 €")
	if !ok {
		t.Fatal("expected a match")
	}
	if rec.Unit != "pièce" {
		t.Errorf("unit = %q, want pièce", rec.Unit)
	}
}

func TestParseLine_NoMatchIsNotAnError(t *testing.T) {
	p := NewRecordParser()

	rec, ok := p.ParseLine("quelques notes manuscrites sans prix 123")
	if ok {
		t.Fatalf("unexpected match: %+v", rec)
	}
}

func TestNewRecordParser_ExtraMatcherRunsFirst(t *testing.T) {
	custom := func(line string) (*entity.ParsedRecord, bool) {
		if line == "SPECIAL" {
			return &entity.ParsedRecord{Name: "Spécial", Unit: "unité", UnitPrice: 1}, true
		}
		return nil, false
	}
	p := NewRecordParser(custom)

	rec, ok := p.ParseLine("SPECIAL 1 kg 1,00 €")
	if !ok {
		t.Fatal("expected a match")
	}
	// whitespace-collapsed line no longer equals "SPECIAL"; the built-in
	// cascade handles it, proving injection does not shadow the defaults
	if rec.Name != "SPECIAL" {
		t.Errorf("name = %q", rec.Name)
	}
}
