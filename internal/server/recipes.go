package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	mercurialepb "github.com/cuisinehq/mercuriale/gen/proto/mercuriale/v1"
	"github.com/cuisinehq/mercuriale/internal/common"
	"github.com/cuisinehq/mercuriale/internal/entity"
	"github.com/cuisinehq/mercuriale/internal/repository"
	"github.com/cuisinehq/mercuriale/internal/utils"
)

type RecipeService struct {
	mercurialepb.UnimplementedRecipeServiceServer
	recipeRepo  repository.RecipeRepository
	catalogRepo repository.CatalogRepository
	stockRepo   repository.StockRepository
	logger      *slog.Logger
}

func NewRecipeService(recipeRepo repository.RecipeRepository, catalogRepo repository.CatalogRepository, stockRepo repository.StockRepository, logger *slog.Logger) *RecipeService {
	return &RecipeService{
		recipeRepo:  recipeRepo,
		catalogRepo: catalogRepo,
		stockRepo:   stockRepo,
		logger:      logger,
	}
}

func (s *RecipeService) ListRecipes(ctx context.Context, _ *mercurialepb.ListRecipesRequest) (*mercurialepb.ListRecipesResponse, error) {
	recipes, err := s.recipeRepo.List(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list recipes: %v", err)
	}

	out := make([]*mercurialepb.RecipeSheet, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, utils.ToPBRecipeSheet(r))
	}
	return &mercurialepb.ListRecipesResponse{Recipes: out}, nil
}

func (s *RecipeService) GetRecipe(ctx context.Context, req *mercurialepb.GetRecipeRequest) (*mercurialepb.RecipeSheet, error) {
	id, err := parseRecipeID(req.GetRecipeId())
	if err != nil {
		return nil, err
	}
	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "recipe")
	}
	return utils.ToPBRecipeSheet(recipe), nil
}

func (s *RecipeService) CreateRecipe(ctx context.Context, req *mercurialepb.CreateRecipeRequest) (*mercurialepb.RecipeSheet, error) {
	createReq, err := recipeRequest(req)
	if err != nil {
		return nil, err
	}
	recipe, err := s.recipeRepo.Create(ctx, createReq)
	if err != nil {
		return nil, repoError(err, "recipe")
	}
	s.logger.Info("recipe created", "recipe_id", recipe.ID, "name", recipe.Name)
	return utils.ToPBRecipeSheet(recipe), nil
}

func (s *RecipeService) UpdateRecipe(ctx context.Context, req *mercurialepb.UpdateRecipeRequest) (*mercurialepb.RecipeSheet, error) {
	id, err := parseRecipeID(req.GetRecipeId())
	if err != nil {
		return nil, err
	}
	updateReq, err := recipeRequest(req.GetRecipe())
	if err != nil {
		return nil, err
	}
	recipe, err := s.recipeRepo.Update(ctx, id, updateReq)
	if err != nil {
		return nil, repoError(err, "recipe")
	}
	return utils.ToPBRecipeSheet(recipe), nil
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, req *mercurialepb.DeleteRecipeRequest) (*mercurialepb.DeleteRecipeResponse, error) {
	id, err := parseRecipeID(req.GetRecipeId())
	if err != nil {
		return nil, err
	}
	if err := s.recipeRepo.Delete(ctx, id); err != nil {
		return nil, repoError(err, "recipe")
	}
	s.logger.Info("recipe deleted", "recipe_id", id)
	return &mercurialepb.DeleteRecipeResponse{}, nil
}

// RecordSale deducts the ingredients of the sold portions from the catalog.
// Lines naming an ingredient absent from the catalog are reported as skipped
// rather than failing the sale.
func (s *RecipeService) RecordSale(ctx context.Context, req *mercurialepb.RecordSaleRequest) (*mercurialepb.RecordSaleResponse, error) {
	id, err := parseRecipeID(req.GetRecipeId())
	if err != nil {
		return nil, err
	}
	sold := int(req.GetPortionsSold())
	if sold <= 0 {
		return nil, status.Error(codes.InvalidArgument, "portions_sold must be positive")
	}

	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "recipe")
	}

	resp := &mercurialepb.RecordSaleResponse{}
	reason := fmt.Sprintf("vente: %s", recipe.Name)
	for _, line := range recipe.Lines {
		entry, err := s.catalogRepo.GetByName(ctx, line.Name)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				s.logger.Warn("sale line skipped, not in catalog", "recipe_id", id, "ingredient", line.Name)
				resp.Skipped = append(resp.Skipped, line.Name)
				continue
			}
			return nil, status.Errorf(codes.Internal, "lookup %q: %v", line.Name, err)
		}

		qty := line.Quantity * float64(sold) / float64(recipe.Portions)
		if qty <= 0 {
			resp.Skipped = append(resp.Skipped, line.Name)
			continue
		}
		if _, err := s.stockRepo.RecordMovement(ctx, entry.ID, entity.MovementOut, qty, reason); err != nil {
			return nil, status.Errorf(codes.Internal, "deduct %q: %v", line.Name, err)
		}
		resp.Deducted = append(resp.Deducted, line.Name)
	}

	s.logger.Info("sale recorded",
		"recipe_id", id, "portions_sold", sold,
		"deducted", len(resp.Deducted), "skipped", len(resp.Skipped),
	)
	return resp, nil
}

func recipeRequest(req *mercurialepb.CreateRecipeRequest) (*repository.CreateRecipeRequest, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "recipe is required")
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	return &repository.CreateRecipeRequest{
		Name:         name,
		Portions:     int(req.GetPortions()),
		Category:     req.GetCategory(),
		Lines:        utils.FromPBRecipeLines(req.GetLines()),
		Instructions: req.GetInstructions(),
		SalePrice:    req.GetSalePrice(),
	}, nil
}

func parseRecipeID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "recipe_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "recipe_id must be a UUID")
	}
	return id, nil
}
