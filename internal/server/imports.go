package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cuisinehq/mercuriale/constants"
	mercurialepb "github.com/cuisinehq/mercuriale/gen/proto/mercuriale/v1"
	"github.com/cuisinehq/mercuriale/internal/common"
	"github.com/cuisinehq/mercuriale/internal/entity"
	"github.com/cuisinehq/mercuriale/internal/ingest"
	"github.com/cuisinehq/mercuriale/internal/pipeline"
	"github.com/cuisinehq/mercuriale/internal/repository"
	"github.com/cuisinehq/mercuriale/internal/utils"
)

type ImportService struct {
	mercurialepb.UnimplementedImportServiceServer
	ingestor       ingest.Ingestor
	filesRepo      repository.ImportFileRepository
	jobRepo        repository.ImportJobRepository
	catalogRepo    repository.CatalogRepository
	recipeRepo     repository.RecipeRepository
	priceImporter  *pipeline.PriceListImporter
	recipeImporter *pipeline.RecipeImporter
	extractTimeout time.Duration
	logger         *slog.Logger
}

func NewImportService(
	ingestor ingest.Ingestor,
	filesRepo repository.ImportFileRepository,
	jobRepo repository.ImportJobRepository,
	catalogRepo repository.CatalogRepository,
	recipeRepo repository.RecipeRepository,
	priceImporter *pipeline.PriceListImporter,
	recipeImporter *pipeline.RecipeImporter,
	extractTimeout time.Duration,
	logger *slog.Logger,
) *ImportService {
	if extractTimeout <= 0 {
		extractTimeout = 2 * time.Minute
	}
	return &ImportService{
		ingestor:       ingestor,
		filesRepo:      filesRepo,
		jobRepo:        jobRepo,
		catalogRepo:    catalogRepo,
		recipeRepo:     recipeRepo,
		priceImporter:  priceImporter,
		recipeImporter: recipeImporter,
		extractTimeout: extractTimeout,
		logger:         logger,
	}
}

func (s *ImportService) IngestFile(ctx context.Context, req *mercurialepb.IngestFileRequest) (*mercurialepb.IngestResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file ingest", "path", path)
	r, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "file_id", r.FileID, "deduplicated", r.Deduplicated)

	return &mercurialepb.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
	}, nil
}

func (s *ImportService) ImportPriceList(ctx context.Context, req *mercurialepb.ImportPriceListRequest) (*mercurialepb.ImportPriceListResponse, error) {
	file, format, err := s.resolveFile(ctx, req.GetFileId())
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.Start(ctx, file.ID, format, constants.ModePriceList)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "start job: %v", err)
	}

	snapshot, err := s.catalogSnapshot(ctx)
	if err != nil {
		_ = s.jobRepo.FinishFailure(ctx, job.ID, err.Error())
		return nil, status.Errorf(codes.Internal, "catalog snapshot: %v", err)
	}

	runCtx, cancel := common.WithTimeout(ctx, s.extractTimeout)
	defer cancel()
	res, err := s.priceImporter.Run(runCtx, file.SourcePath, snapshot, nil)
	if err != nil {
		_ = s.jobRepo.FinishFailure(ctx, job.ID, err.Error())
		return nil, common.ImportStatusError(err)
	}

	if err := s.jobRepo.FinishText(ctx, job.ID, res.Text, res.Method, res.Confidence); err != nil {
		return nil, status.Errorf(codes.Internal, "record extraction: %v", err)
	}
	if err := s.jobRepo.FinishParse(ctx, job.ID); err != nil {
		return nil, status.Errorf(codes.Internal, "record parse: %v", err)
	}

	out := &mercurialepb.ImportPriceListResponse{
		JobId:          job.ID.String(),
		UnmatchedLines: int32(res.UnmatchedLines),
		Method:         res.Method,
		Pages:          int32(res.Pages),
		Confidence:     res.Confidence,
	}
	for i := range res.ToAdd {
		out.Records = append(out.Records, utils.ToPBParsedRecord(&res.ToAdd[i]))
	}
	for i := range res.Duplicates {
		out.Duplicates = append(out.Duplicates, utils.ToPBPriceMatch(&res.Duplicates[i]))
	}
	return out, nil
}

func (s *ImportService) ImportRecipe(ctx context.Context, req *mercurialepb.ImportRecipeRequest) (*mercurialepb.ImportRecipeResponse, error) {
	file, format, err := s.resolveFile(ctx, req.GetFileId())
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.Start(ctx, file.ID, format, constants.ModeRecipe)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "start job: %v", err)
	}

	sheets, err := s.recipeRepo.List(ctx)
	if err != nil {
		_ = s.jobRepo.FinishFailure(ctx, job.ID, err.Error())
		return nil, status.Errorf(codes.Internal, "recipe snapshot: %v", err)
	}
	snapshot := make([]entity.RecipeSheet, len(sheets))
	for i, sh := range sheets {
		snapshot[i] = *sh
	}

	runCtx, cancel := common.WithTimeout(ctx, s.extractTimeout)
	defer cancel()
	res, err := s.recipeImporter.Run(runCtx, file.SourcePath, snapshot, nil)
	if err != nil {
		_ = s.jobRepo.FinishFailure(ctx, job.ID, err.Error())
		return nil, common.ImportStatusError(err)
	}

	if err := s.jobRepo.FinishText(ctx, job.ID, res.Text, res.Method, res.Confidence); err != nil {
		return nil, status.Errorf(codes.Internal, "record extraction: %v", err)
	}
	if err := s.jobRepo.FinishParse(ctx, job.ID); err != nil {
		return nil, status.Errorf(codes.Internal, "record parse: %v", err)
	}

	out := &mercurialepb.ImportRecipeResponse{
		JobId:      job.ID.String(),
		Recipe:     utils.ToPBParsedRecipe(&res.Recipe),
		Method:     res.Method,
		Pages:      int32(res.Pages),
		Confidence: res.Confidence,
	}
	for i := range res.Duplicates {
		out.Duplicates = append(out.Duplicates, utils.ToPBRecipeMatch(&res.Duplicates[i]))
	}
	return out, nil
}

// CommitPriceList persists a reviewed candidate set. The records payload may
// have been hand-edited between review and commit, so it is validated against
// the records schema before anything is written.
func (s *ImportService) CommitPriceList(ctx context.Context, req *mercurialepb.CommitPriceListRequest) (*mercurialepb.CommitPriceListResponse, error) {
	out := &mercurialepb.CommitPriceListResponse{}

	if raw := strings.TrimSpace(req.GetRecordsJson()); raw != "" {
		schema := pipeline.BuildRecordsJSONSchema()
		if err := pipeline.ValidateJSONAgainstSchema(schema, []byte(raw)); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "records payload: %v", err)
		}

		var records []*entity.ParsedRecord
		if err := json.Unmarshal([]byte(raw), &records); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "records payload: %v", err)
		}

		created, err := s.catalogRepo.BulkCreateFromRecords(ctx, records)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "create entries: %v", err)
		}
		out.Created = int32(created)
	}

	for _, u := range req.GetUpdates() {
		id, err := uuid.Parse(strings.TrimSpace(u.GetEntryId()))
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "update entry_id must be a UUID")
		}
		if u.GetUnitPrice() <= 0 {
			return nil, status.Error(codes.InvalidArgument, "update unit_price must be positive")
		}
		if _, err := s.catalogRepo.UpdatePrice(ctx, id, u.GetUnitPrice()); err != nil {
			return nil, repoError(err, "entry")
		}
		out.Updated++
	}

	s.logger.Info("price list committed", "created", out.Created, "updated", out.Updated)
	return out, nil
}

func (s *ImportService) resolveFile(ctx context.Context, rawID string) (*entity.ImportFile, string, error) {
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return nil, "", status.Error(codes.InvalidArgument, "file_id is required")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, "", status.Error(codes.InvalidArgument, "file_id must be a UUID")
	}

	row, err := s.filesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", status.Error(codes.NotFound, "file not found")
	}
	file := utils.ToImportFile(row)

	format := constants.MapExtToFormat(file.FileExt)
	if format == "" {
		return nil, "", common.ImportStatusError(common.ErrUnsupportedFormat)
	}
	return file, format, nil
}

func (s *ImportService) catalogSnapshot(ctx context.Context) ([]entity.CatalogEntry, error) {
	entries, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	snapshot := make([]entity.CatalogEntry, len(entries))
	for i, e := range entries {
		snapshot[i] = *e
	}
	return snapshot, nil
}
