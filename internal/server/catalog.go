package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	mercurialepb "github.com/cuisinehq/mercuriale/gen/proto/mercuriale/v1"
	"github.com/cuisinehq/mercuriale/internal/common"
	"github.com/cuisinehq/mercuriale/internal/entity"
	"github.com/cuisinehq/mercuriale/internal/export"
	"github.com/cuisinehq/mercuriale/internal/repository"
	"github.com/cuisinehq/mercuriale/internal/utils"
)

type CatalogService struct {
	mercurialepb.UnimplementedCatalogServiceServer
	catalogRepo repository.CatalogRepository
	stockRepo   repository.StockRepository
	exportSvc   *export.Service
	logger      *slog.Logger
}

func NewCatalogService(catalogRepo repository.CatalogRepository, stockRepo repository.StockRepository, exportSvc *export.Service, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		stockRepo:   stockRepo,
		exportSvc:   exportSvc,
		logger:      logger,
	}
}

func (s *CatalogService) ListEntries(ctx context.Context, _ *mercurialepb.ListEntriesRequest) (*mercurialepb.ListEntriesResponse, error) {
	entries, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list entries: %v", err)
	}

	out := make([]*mercurialepb.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, utils.ToPBCatalogEntry(e))
	}
	return &mercurialepb.ListEntriesResponse{Entries: out}, nil
}

func (s *CatalogService) GetEntry(ctx context.Context, req *mercurialepb.GetEntryRequest) (*mercurialepb.CatalogEntry, error) {
	id, err := parseEntryID(req.GetEntryId())
	if err != nil {
		return nil, err
	}
	entry, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "entry")
	}
	return utils.ToPBCatalogEntry(entry), nil
}

func (s *CatalogService) CreateEntry(ctx context.Context, req *mercurialepb.CreateEntryRequest) (*mercurialepb.CatalogEntry, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	if req.GetUnitPrice() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "unit_price must be positive")
	}

	entry, err := s.catalogRepo.Create(ctx, &repository.CreateEntryRequest{
		Name:          name,
		Unit:          req.GetUnit(),
		UnitPrice:     req.GetUnitPrice(),
		Allergens:     req.GetAllergens(),
		CurrentStock:  req.GetCurrentStock(),
		MinStock:      req.GetMinStock(),
		CriticalStock: req.GetCriticalStock(),
		MaxStock:      req.GetMaxStock(),
	})
	if err != nil {
		return nil, repoError(err, "entry")
	}
	s.logger.Info("catalog entry created", "entry_id", entry.ID, "name", entry.Name)
	return utils.ToPBCatalogEntry(entry), nil
}

func (s *CatalogService) UpdatePrice(ctx context.Context, req *mercurialepb.UpdatePriceRequest) (*mercurialepb.CatalogEntry, error) {
	id, err := parseEntryID(req.GetEntryId())
	if err != nil {
		return nil, err
	}
	if req.GetUnitPrice() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "unit_price must be positive")
	}
	entry, err := s.catalogRepo.UpdatePrice(ctx, id, req.GetUnitPrice())
	if err != nil {
		return nil, repoError(err, "entry")
	}
	return utils.ToPBCatalogEntry(entry), nil
}

func (s *CatalogService) SetThresholds(ctx context.Context, req *mercurialepb.SetThresholdsRequest) (*mercurialepb.CatalogEntry, error) {
	id, err := parseEntryID(req.GetEntryId())
	if err != nil {
		return nil, err
	}
	entry, err := s.catalogRepo.SetThresholds(ctx, id, req.GetCriticalStock(), req.GetMinStock(), req.GetMaxStock())
	if err != nil {
		return nil, repoError(err, "entry")
	}
	return utils.ToPBCatalogEntry(entry), nil
}

func (s *CatalogService) DeleteEntry(ctx context.Context, req *mercurialepb.DeleteEntryRequest) (*mercurialepb.DeleteEntryResponse, error) {
	id, err := parseEntryID(req.GetEntryId())
	if err != nil {
		return nil, err
	}
	if err := s.catalogRepo.Delete(ctx, id); err != nil {
		return nil, repoError(err, "entry")
	}
	s.logger.Info("catalog entry deleted", "entry_id", id)
	return &mercurialepb.DeleteEntryResponse{}, nil
}

func (s *CatalogService) RecordMovement(ctx context.Context, req *mercurialepb.RecordMovementRequest) (*mercurialepb.StockMovement, error) {
	id, err := parseEntryID(req.GetEntryId())
	if err != nil {
		return nil, err
	}
	direction := entity.MovementDirection(req.GetDirection())
	if direction != entity.MovementIn && direction != entity.MovementOut {
		return nil, status.Error(codes.InvalidArgument, "direction must be IN or OUT")
	}

	movement, err := s.stockRepo.RecordMovement(ctx, id, direction, req.GetQuantity(), req.GetReason())
	if err != nil {
		return nil, repoError(err, "entry")
	}
	return utils.ToPBStockMovement(movement), nil
}

func (s *CatalogService) ListMovements(ctx context.Context, req *mercurialepb.ListMovementsRequest) (*mercurialepb.ListMovementsResponse, error) {
	id, err := parseEntryID(req.GetEntryId())
	if err != nil {
		return nil, err
	}
	movements, err := s.stockRepo.ListMovements(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list movements: %v", err)
	}

	out := make([]*mercurialepb.StockMovement, 0, len(movements))
	for _, m := range movements {
		out = append(out, utils.ToPBStockMovement(m))
	}
	return &mercurialepb.ListMovementsResponse{Movements: out}, nil
}

func (s *CatalogService) ExportCatalog(ctx context.Context, req *mercurialepb.ExportCatalogRequest) (*mercurialepb.ExportCatalogResponse, error) {
	data, rows, err := s.exportSvc.ExportCatalogXLSX(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}

	outDir := strings.TrimSpace(req.GetOutPath())
	if outDir == "" {
		outDir = "."
	}
	path := filepath.Join(outDir, fmt.Sprintf("mercuriale-%s.xlsx", time.Now().UTC().Format("20060102")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, status.Errorf(codes.Internal, "write export: %v", err)
	}

	s.logger.Info("catalog exported", "path", path, "rows", rows)
	return &mercurialepb.ExportCatalogResponse{Path: path, RowCount: int32(rows)}, nil
}

func parseEntryID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "entry_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "entry_id must be a UUID")
	}
	return id, nil
}

// repoError maps repository sentinels to gRPC statuses.
func repoError(err error, what string) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s not found", what)
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Errorf(codes.Internal, "%s: %v", what, err)
	}
}
