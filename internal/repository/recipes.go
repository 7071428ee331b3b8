package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cuisinehq/mercuriale/constants"
	"github.com/cuisinehq/mercuriale/gen/ent"
	"github.com/cuisinehq/mercuriale/gen/ent/recipesheet"
	"github.com/cuisinehq/mercuriale/internal/common"
	"github.com/cuisinehq/mercuriale/internal/entity"
	"github.com/cuisinehq/mercuriale/internal/utils"
)

// CreateRecipeRequest wraps parameters for creating a recipe sheet.
type CreateRecipeRequest struct {
	Name         string
	Portions     int
	Category     string
	Lines        []entity.RecipeLine
	Instructions string
	SalePrice    float64
}

type RecipeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.RecipeSheet, error)
	List(ctx context.Context) ([]*entity.RecipeSheet, error)
	Create(ctx context.Context, req *CreateRecipeRequest) (*entity.RecipeSheet, error)
	Update(ctx context.Context, id uuid.UUID, req *CreateRecipeRequest) (*entity.RecipeSheet, error)
	SetSalePrice(ctx context.Context, id uuid.UUID, salePrice float64) (*entity.RecipeSheet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type recipeRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewRecipeRepository(entc *ent.Client, logger *slog.Logger) RecipeRepository {
	return &recipeRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *recipeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.RecipeSheet, error) {
	row, err := r.ent.RecipeSheet.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToRecipeSheet(row), nil
}

func (r *recipeRepo) List(ctx context.Context) ([]*entity.RecipeSheet, error) {
	rows, err := r.ent.RecipeSheet.Query().
		Order(recipesheet.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list recipe sheets", "error", err)
		return nil, err
	}

	result := make([]*entity.RecipeSheet, len(rows))
	for i, row := range rows {
		result[i] = utils.ToRecipeSheet(row)
	}
	return result, nil
}

func (r *recipeRepo) Create(ctx context.Context, req *CreateRecipeRequest) (*entity.RecipeSheet, error) {
	category, _ := constants.CanonicalizeCategory(req.Category)
	sheet := &entity.RecipeSheet{Lines: req.Lines}
	row, err := r.ent.RecipeSheet.Create().
		SetName(req.Name).
		SetPortions(portionsOrDefault(req.Portions)).
		SetCategory(recipesheet.Category(category)).
		SetLines(req.Lines).
		SetInstructions(req.Instructions).
		SetCost(sheet.LineCost()).
		SetSalePrice(req.SalePrice).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create recipe sheet", "name", req.Name, "error", err)
		return nil, err
	}
	return utils.ToRecipeSheet(row), nil
}

func (r *recipeRepo) Update(ctx context.Context, id uuid.UUID, req *CreateRecipeRequest) (*entity.RecipeSheet, error) {
	category, _ := constants.CanonicalizeCategory(req.Category)
	sheet := &entity.RecipeSheet{Lines: req.Lines}
	row, err := r.ent.RecipeSheet.UpdateOneID(id).
		SetName(req.Name).
		SetPortions(portionsOrDefault(req.Portions)).
		SetCategory(recipesheet.Category(category)).
		SetLines(req.Lines).
		SetInstructions(req.Instructions).
		SetCost(sheet.LineCost()).
		SetSalePrice(req.SalePrice).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to update recipe sheet", "recipe_id", id, "error", err)
		return nil, err
	}
	return utils.ToRecipeSheet(row), nil
}

func (r *recipeRepo) SetSalePrice(ctx context.Context, id uuid.UUID, salePrice float64) (*entity.RecipeSheet, error) {
	row, err := r.ent.RecipeSheet.UpdateOneID(id).
		SetSalePrice(salePrice).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToRecipeSheet(row), nil
}

func (r *recipeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.ent.RecipeSheet.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to delete recipe sheet", "recipe_id", id, "error", err)
		return err
	}
	return nil
}

func portionsOrDefault(p int) int {
	if p <= 0 {
		return 4
	}
	return p
}
