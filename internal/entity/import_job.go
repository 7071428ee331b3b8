package entity

import (
	"time"

	"github.com/google/uuid"
)

// ImportFile is a registered source document (PDF or image).
type ImportFile struct {
	ID          uuid.UUID `json:"id"`
	SourcePath  string    `json:"source_path"`
	ContentHash []byte    `json:"content_hash"`
	Filename    string    `json:"filename"`
	FileExt     string    `json:"file_ext"`
	FileSize    int64     `json:"file_size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// ImportJob tracks one pipeline run over an ImportFile.
type ImportJob struct {
	ID           uuid.UUID  `json:"id"`
	FileID       uuid.UUID  `json:"file_id"`
	Format       string     `json:"format"`
	Mode         string     `json:"mode"`
	Status       string     `json:"status"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	ExtractedTxt *string    `json:"extracted_text,omitempty"`
	Method       *string    `json:"method,omitempty"`
	Confidence   *float32   `json:"confidence,omitempty"`
}
