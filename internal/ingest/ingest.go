package ingest

import (
	"context"
	"time"
)

// IngestionResult summarizes registering one document.
type IngestionResult struct {
	SourcePath   string
	FileID       string
	Deduplicated bool
	HashHex      string
	FileExt      string
	UploadedAt   time.Time
	Err          string
}

// DirStats aggregates a directory walk.
type DirStats struct {
	Scanned      int32
	Matched      int32
	Succeeded    int32
	Deduplicated int32
	Failed       int32
}

type Ingestor interface {
	IngestPath(ctx context.Context, path string) (IngestionResult, error)
	IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]IngestionResult, DirStats, error)
}
