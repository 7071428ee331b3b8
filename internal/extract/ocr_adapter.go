package extract

import (
	"context"
	"log/slog"

	"github.com/cuisinehq/mercuriale/internal/ocr"
)

// OCRAdapter bridges the ocr package to the TextExtractor seam the import
// pipelines consume.
type OCRAdapter struct {
	e      *ocr.Extractor
	logger *slog.Logger
}

func NewOCRAdapter(e *ocr.Extractor, logger *slog.Logger) *OCRAdapter {
	return &OCRAdapter{e: e, logger: logger}
}

func (a *OCRAdapter) Extract(ctx context.Context, path string, progress ProgressFunc) (TextExtractionResult, error) {
	r, err := a.e.Extract(ctx, path, ocr.ProgressFunc(progress))
	if err == nil {
		a.logger.Debug("text extracted",
			"path", path,
			"method", r.Method,
			"pages", r.Pages,
			"chars", len(r.Text),
			"confidence", r.Confidence)
	}
	return TextExtractionResult{
		Text:       r.Text,
		Pages:      r.Pages,
		SourceType: r.SourceType,
		Method:     r.Method,
		Language:   r.Language,
		Duration:   r.Duration,
		Warnings:   r.Warnings,
		Confidence: r.Confidence,
	}, err
}
