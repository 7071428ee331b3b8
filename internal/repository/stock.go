package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cuisinehq/mercuriale/gen/ent"
	"github.com/cuisinehq/mercuriale/gen/ent/stockmovement"
	"github.com/cuisinehq/mercuriale/internal/common"
	"github.com/cuisinehq/mercuriale/internal/entity"
	"github.com/cuisinehq/mercuriale/internal/utils"
)

type StockRepository interface {
	RecordMovement(ctx context.Context, entryID uuid.UUID, direction entity.MovementDirection, quantity float64, reason string) (*entity.StockMovement, error)
	ListMovements(ctx context.Context, entryID uuid.UUID) ([]*entity.StockMovement, error)
}

type stockRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewStockRepository(entc *ent.Client, logger *slog.Logger) StockRepository {
	return &stockRepo{
		ent:    entc,
		logger: logger,
	}
}

// RecordMovement appends a ledger row and adjusts the entry's current stock
// in one transaction. Outgoing movements floor the stock at zero rather than
// failing: a sale of more than the tracked quantity means the tracking was
// stale, not that the sale did not happen.
func (r *stockRepo) RecordMovement(ctx context.Context, entryID uuid.UUID, direction entity.MovementDirection, quantity float64, reason string) (*entity.StockMovement, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", common.ErrValidation)
	}

	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := tx.CatalogEntry.Get(ctx, entryID)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	newStock := entry.CurrentStock
	if direction == entity.MovementOut {
		newStock -= quantity
		if newStock < 0 {
			newStock = 0
		}
	} else {
		newStock += quantity
	}

	row, err := tx.StockMovement.Create().
		SetEntryID(entryID).
		SetDirection(stockmovement.Direction(direction)).
		SetQuantity(quantity).
		SetReason(reason).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to record movement", "entry_id", entryID, "error", err)
		return nil, err
	}

	if _, err := tx.CatalogEntry.UpdateOneID(entryID).
		SetCurrentStock(newStock).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to adjust stock", "entry_id", entryID, "error", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	r.logger.Info("stock movement recorded",
		"entry_id", entryID, "direction", direction, "quantity", quantity, "stock", newStock)
	return utils.ToStockMovement(row), nil
}

func (r *stockRepo) ListMovements(ctx context.Context, entryID uuid.UUID) ([]*entity.StockMovement, error) {
	rows, err := r.ent.StockMovement.Query().
		Where(stockmovement.EntryID(entryID)).
		Order(stockmovement.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list movements", "entry_id", entryID, "error", err)
		return nil, err
	}

	result := make([]*entity.StockMovement, len(rows))
	for i, row := range rows {
		result[i] = utils.ToStockMovement(row)
	}
	return result, nil
}
