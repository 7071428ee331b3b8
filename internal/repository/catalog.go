package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cuisinehq/mercuriale/gen/ent"
	"github.com/cuisinehq/mercuriale/gen/ent/catalogentry"
	"github.com/cuisinehq/mercuriale/internal/common"
	"github.com/cuisinehq/mercuriale/internal/entity"
	"github.com/cuisinehq/mercuriale/internal/utils"
)

// CreateEntryRequest wraps parameters for creating a catalog entry.
type CreateEntryRequest struct {
	Name          string
	Unit          string
	UnitPrice     float64
	Allergens     []string
	CurrentStock  float64
	MinStock      float64
	CriticalStock float64
	MaxStock      float64
}

type CatalogRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CatalogEntry, error)
	GetByName(ctx context.Context, name string) (*entity.CatalogEntry, error)
	List(ctx context.Context) ([]*entity.CatalogEntry, error)
	Create(ctx context.Context, req *CreateEntryRequest) (*entity.CatalogEntry, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, unitPrice float64) (*entity.CatalogEntry, error)
	SetThresholds(ctx context.Context, id uuid.UUID, critical, min, max float64) (*entity.CatalogEntry, error)
	BulkCreateFromRecords(ctx context.Context, records []*entity.ParsedRecord) (int, error)
	UpdatePricesFromMatches(ctx context.Context, matches []*entity.PriceMatch) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type catalogRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewCatalogRepository(entc *ent.Client, logger *slog.Logger) CatalogRepository {
	return &catalogRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *catalogRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CatalogEntry, error) {
	row, err := r.ent.CatalogEntry.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToCatalogEntry(row), nil
}

func (r *catalogRepo) GetByName(ctx context.Context, name string) (*entity.CatalogEntry, error) {
	row, err := r.ent.CatalogEntry.Query().
		Where(catalogentry.NameEqualFold(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToCatalogEntry(row), nil
}

func (r *catalogRepo) List(ctx context.Context) ([]*entity.CatalogEntry, error) {
	rows, err := r.ent.CatalogEntry.Query().
		Order(catalogentry.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list catalog entries", "error", err)
		return nil, err
	}

	result := make([]*entity.CatalogEntry, len(rows))
	for i, row := range rows {
		result[i] = utils.ToCatalogEntry(row)
	}
	return result, nil
}

func (r *catalogRepo) Create(ctx context.Context, req *CreateEntryRequest) (*entity.CatalogEntry, error) {
	if err := validateThresholds(req.CriticalStock, req.MinStock, req.MaxStock); err != nil {
		return nil, err
	}
	row, err := r.ent.CatalogEntry.Create().
		SetName(req.Name).
		SetUnit(req.Unit).
		SetUnitPrice(req.UnitPrice).
		SetAllergens(req.Allergens).
		SetCurrentStock(req.CurrentStock).
		SetMinStock(req.MinStock).
		SetCriticalStock(req.CriticalStock).
		SetMaxStock(req.MaxStock).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create catalog entry", "name", req.Name, "error", err)
		return nil, err
	}
	return utils.ToCatalogEntry(row), nil
}

func (r *catalogRepo) UpdatePrice(ctx context.Context, id uuid.UUID, unitPrice float64) (*entity.CatalogEntry, error) {
	row, err := r.ent.CatalogEntry.UpdateOneID(id).
		SetUnitPrice(unitPrice).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to update price", "entry_id", id, "error", err)
		return nil, err
	}
	return utils.ToCatalogEntry(row), nil
}

func (r *catalogRepo) SetThresholds(ctx context.Context, id uuid.UUID, critical, min, max float64) (*entity.CatalogEntry, error) {
	if err := validateThresholds(critical, min, max); err != nil {
		return nil, err
	}
	row, err := r.ent.CatalogEntry.UpdateOneID(id).
		SetCriticalStock(critical).
		SetMinStock(min).
		SetMaxStock(max).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to set thresholds", "entry_id", id, "error", err)
		return nil, err
	}
	return utils.ToCatalogEntry(row), nil
}

// BulkCreateFromRecords inserts the reviewed additions of a price-list import.
// A nil quantity initializes current stock to zero.
func (r *catalogRepo) BulkCreateFromRecords(ctx context.Context, records []*entity.ParsedRecord) (int, error) {
	builders := make([]*ent.CatalogEntryCreate, len(records))
	for i, rec := range records {
		var stock float64
		if rec.Quantity != nil {
			stock = *rec.Quantity
		}
		builders[i] = r.ent.CatalogEntry.Create().
			SetName(rec.Name).
			SetUnit(rec.Unit).
			SetUnitPrice(rec.UnitPrice).
			SetAllergens(rec.Allergens).
			SetCurrentStock(stock)
	}
	rows, err := r.ent.CatalogEntry.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("bulk create failed", "count", len(records), "error", err)
		return 0, err
	}
	r.logger.Info("catalog entries created from import", "count", len(rows))
	return len(rows), nil
}

// UpdatePricesFromMatches applies the accepted duplicate resolutions of a
// price-list import: each match overwrites the existing entry's price.
func (r *catalogRepo) UpdatePricesFromMatches(ctx context.Context, matches []*entity.PriceMatch) (int, error) {
	updated := 0
	for _, m := range matches {
		_, err := r.ent.CatalogEntry.UpdateOneID(m.Existing.ID).
			SetUnitPrice(m.Incoming.UnitPrice).
			Save(ctx)
		if err != nil {
			r.logger.Error("price update failed", "entry_id", m.Existing.ID, "error", err)
			return updated, err
		}
		updated++
	}
	return updated, nil
}

func (r *catalogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.ent.CatalogEntry.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to delete catalog entry", "entry_id", id, "error", err)
		return err
	}
	return nil
}

// validateThresholds enforces critical < min < max. A zero triple is
// accepted so entries can exist before thresholds are configured.
func validateThresholds(critical, min, max float64) error {
	if critical == 0 && min == 0 && max == 0 {
		return nil
	}
	if !(critical < min && min < max) {
		return fmt.Errorf("%w: thresholds must satisfy critical < min < max", common.ErrValidation)
	}
	return nil
}
