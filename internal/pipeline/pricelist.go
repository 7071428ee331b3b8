// Package pipeline wires acquisition, normalization, parsing and duplicate
// resolution into the two import flows. Each run is a pure function of its
// input document plus the caller-supplied catalog snapshot; candidates are
// returned for review and nothing is persisted here.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cuisinehq/mercuriale/internal/common"
	"github.com/cuisinehq/mercuriale/internal/entity"
	"github.com/cuisinehq/mercuriale/internal/extract"
	"github.com/cuisinehq/mercuriale/internal/match"
	"github.com/cuisinehq/mercuriale/internal/parse"
)

// MinTextLength is the "empty or unreadable" threshold: extractions shorter
// than this are an ExtractionFailed, not a crash.
const MinTextLength = 20

// PriceListResult is the candidate set handed back for review/commit.
type PriceListResult struct {
	Records        []entity.ParsedRecord
	ToAdd          []entity.ParsedRecord
	Duplicates     []entity.PriceMatch
	UnmatchedLines int
	Text           string
	Method         string
	Pages          int
	Confidence     float32
}

type PriceListImporter struct {
	extractor extract.TextExtractor
	parser    *parse.RecordParser
	logger    *slog.Logger
}

func NewPriceListImporter(tx extract.TextExtractor, parser *parse.RecordParser, logger *slog.Logger) *PriceListImporter {
	if logger == nil {
		logger = slog.Default()
	}
	if parser == nil {
		parser = parse.NewRecordParser()
	}
	return &PriceListImporter{extractor: tx, parser: parser, logger: logger}
}

// Run executes the price-list flow: acquire -> normalize -> parse -> tag ->
// resolve against the snapshot. The snapshot is never mutated.
func (p *PriceListImporter) Run(ctx context.Context, path string, snapshot []entity.CatalogEntry, progress extract.ProgressFunc) (PriceListResult, error) {
	var res PriceListResult

	ext, err := p.extractor.Extract(ctx, path, progress)
	if err != nil {
		return res, err
	}
	if len(strings.TrimSpace(ext.Text)) < MinTextLength {
		p.logger.Warn("extraction too short", "path", path, "bytes", len(ext.Text))
		return res, fmt.Errorf("%w: %d chars extracted", common.ErrExtractionFailed, len(ext.Text))
	}
	res.Text = ext.Text
	res.Method = ext.Method
	res.Pages = ext.Pages
	res.Confidence = ext.Confidence

	lines := parse.NormalizeLines(ext.Text)
	p.logger.Debug("normalized lines", "count", len(lines))

	for _, line := range lines {
		if parse.IsHeaderLine(line) {
			continue
		}
		rec, ok := p.parser.ParseLine(line)
		if !ok {
			res.UnmatchedLines++
			continue
		}
		rec.Allergens = parse.TagAllergens(rec.Name)
		// Confidence is a pipeline-level placeholder carried over from
		// acquisition; the pattern matchers do not score.
		rec.Confidence = ext.Confidence
		res.Records = append(res.Records, *rec)
	}

	if len(res.Records) == 0 {
		return res, common.ErrNoRecordsDetected
	}

	resolution := match.ResolvePriceList(snapshot, res.Records)
	res.ToAdd = resolution.ToAdd
	res.Duplicates = resolution.Duplicates

	p.logger.Info("price list parsed",
		"records", len(res.Records),
		"to_add", len(res.ToAdd),
		"duplicates", len(res.Duplicates),
		"unmatched_lines", res.UnmatchedLines,
	)
	return res, nil
}
