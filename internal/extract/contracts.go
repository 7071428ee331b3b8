package extract

import (
	"context"
	"time"
)

// ProgressFunc mirrors the acquisition progress callback at the interface
// boundary so consumers do not depend on the ocr package.
type ProgressFunc func(stage string, fraction float64)

// TextExtractor is stage 1 of an import: document -> raw text.
type TextExtractor interface {
	Extract(ctx context.Context, path string, progress ProgressFunc) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // "PDF" | "IMAGE"
	Method     string // "pdf-text" | "pdf-fallback" | "pdf-ocr" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}
