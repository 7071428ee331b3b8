package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cuisinehq/mercuriale/constants"
	"github.com/cuisinehq/mercuriale/gen/ent"
)

type ImportJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, format string, mode constants.ImportMode) (*ent.ImportJob, error)
	FinishText(ctx context.Context, jobID uuid.UUID, text, method string, confidence float32) error
	FinishParse(ctx context.Context, jobID uuid.UUID) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type importJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewImportJobRepository(entc *ent.Client, log *slog.Logger) ImportJobRepository {
	return &importJobRepo{ent: entc, log: log}
}

func (r *importJobRepo) Start(ctx context.Context, fileID uuid.UUID, format string, mode constants.ImportMode) (*ent.ImportJob, error) {
	job, err := r.ent.ImportJob.
		Create().
		SetFileID(fileID).
		SetFormat(format).
		SetMode(string(mode)).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("import_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("import_job started", "job_id", job.ID, "file_id", fileID, "format", format, "mode", mode)
	return job, nil
}

func (r *importJobRepo) FinishText(ctx context.Context, jobID uuid.UUID, text, method string, confidence float32) error {
	_, err := r.ent.ImportJob.
		UpdateOneID(jobID).
		SetExtractedText(text).
		SetMethod(method).
		SetConfidence(confidence).
		SetStatus(string(constants.JobStatusTextOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("import_job finish(TEXT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("import_job text extracted", "job_id", jobID, "method", method)
	return nil
}

func (r *importJobRepo) FinishParse(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ImportJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParseOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("import_job finish(PARSE_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("import_job finished (PARSE_OK)", "job_id", jobID)
	return nil
}

func (r *importJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ImportJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("import_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("import_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
