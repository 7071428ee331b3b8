package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cuisinehq/mercuriale/gen/ent"
	entfile "github.com/cuisinehq/mercuriale/gen/ent/importfile"
)

type ImportFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.ImportFile, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.ImportFile, error)
	Create(ctx context.Context, sourcePath, filename, ext string, size int64, hash []byte, uploadedAt time.Time) (*ent.ImportFile, error)
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int64, hash []byte, uploadedAt time.Time) (*ent.ImportFile, bool, error)
}

type importFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewImportFileRepository(entc *ent.Client, logger *slog.Logger) ImportFileRepository {
	return &importFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *importFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.ImportFile, error) {
	return r.ent.ImportFile.Get(ctx, id)
}

func (r *importFileRepo) GetByHash(ctx context.Context, hash []byte) (*ent.ImportFile, error) {
	row, err := r.ent.ImportFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *importFileRepo) Create(ctx context.Context, sourcePath, filename, ext string, size int64, hash []byte, uploadedAt time.Time) (*ent.ImportFile, error) {
	row, err := r.ent.ImportFile.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create import file", "source_path", sourcePath, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash returns the existing row when the same document bytes were
// registered before. The boolean reports whether it was a duplicate.
func (r *importFileRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int64, hash []byte, uploadedAt time.Time) (*ent.ImportFile, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		r.logger.Info("import file already registered", "file_id", existing.ID, "filename", filename)
		return existing, true, nil
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}
