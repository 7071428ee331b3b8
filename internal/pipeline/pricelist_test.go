package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuisinehq/mercuriale/internal/common"
	"github.com/cuisinehq/mercuriale/internal/entity"
	"github.com/cuisinehq/mercuriale/internal/extract"
)

// stubExtractor returns canned text instead of running the OCR stack.
type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(_ context.Context, _ string, _ extract.ProgressFunc) (extract.TextExtractionResult, error) {
	if s.err != nil {
		return extract.TextExtractionResult{}, s.err
	}
	return extract.TextExtractionResult{
		Text:       s.text,
		Pages:      1,
		SourceType: "PDF",
		Method:     "pdf-text",
		Confidence: 0.9,
	}, nil
}

func TestPriceListRun_EndToEnd(t *testing.T) {
	text := "Produit Unité Prix unitaire\n" +
		"Tomates grappe 5 kg 2,50 € 12,50 €\n" +
		"Farine T55 kg 0,85 €\n" +
		"gribouillis illisible\n" +
		"TOTAL 13,35 €"
	snapshot := []entity.CatalogEntry{{Name: "Farine T55", UnitPrice: 0.80}}

	imp := NewPriceListImporter(&stubExtractor{text: text}, nil, nil)
	res, err := imp.Run(context.Background(), "mercuriale.pdf", snapshot, nil)
	require.NoError(t, err)

	require.Len(t, res.Records, 2)
	require.Len(t, res.ToAdd, 1)
	assert.Equal(t, "Tomates grappe", res.ToAdd[0].Name)

	require.Len(t, res.Duplicates, 1)
	d := res.Duplicates[0]
	assert.Equal(t, "Farine T55", d.Existing.Name)
	assert.InDelta(t, 0.05, d.PriceDiff, 1e-9)

	// the header is skipped outright; the gibberish and total lines are misses
	assert.Equal(t, 2, res.UnmatchedLines)
	assert.Equal(t, "pdf-text", res.Method)
	assert.InDelta(t, 0.9, res.Confidence, 1e-6)
}

func TestPriceListRun_AllergensTagged(t *testing.T) {
	text := "Beurre doux kg 8,90 €\nFarine de blé kg 0,85 €"

	imp := NewPriceListImporter(&stubExtractor{text: text}, nil, nil)
	res, err := imp.Run(context.Background(), "mercuriale.pdf", nil, nil)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)

	assert.Equal(t, []string{"Lait"}, res.Records[0].Allergens)
	assert.Equal(t, []string{"Gluten"}, res.Records[1].Allergens)
}

func TestPriceListRun_TooShort(t *testing.T) {
	imp := NewPriceListImporter(&stubExtractor{text: "  \n ab "}, nil, nil)

	_, err := imp.Run(context.Background(), "empty.pdf", nil, nil)
	require.ErrorIs(t, err, common.ErrExtractionFailed)
}

func TestPriceListRun_NoRecordsDetected(t *testing.T) {
	text := "ceci est une page de texte parfaitement lisible mais sans aucune ligne produit"

	imp := NewPriceListImporter(&stubExtractor{text: text}, nil, nil)
	_, err := imp.Run(context.Background(), "letter.pdf", nil, nil)
	require.ErrorIs(t, err, common.ErrNoRecordsDetected)
}

func TestPriceListRun_ExtractionErrorPassthrough(t *testing.T) {
	imp := NewPriceListImporter(&stubExtractor{err: common.ErrUnsupportedDocument}, nil, nil)

	_, err := imp.Run(context.Background(), "broken.pdf", nil, nil)
	require.ErrorIs(t, err, common.ErrUnsupportedDocument)
}
