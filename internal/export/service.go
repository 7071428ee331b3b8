package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cuisinehq/mercuriale/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	catalogRepo repository.CatalogRepository
	recipeRepo  repository.RecipeRepository
	logger      *slog.Logger
}

func NewService(catalogRepo repository.CatalogRepository, recipeRepo repository.RecipeRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{catalogRepo: catalogRepo, recipeRepo: recipeRepo, logger: logger}
}

// ExportCatalogXLSX returns an XLSX workbook (as bytes) of the full catalog,
// ordered by name, with the stock level computed per row.
func (s *Service) ExportCatalogXLSX(ctx context.Context) ([]byte, int, error) {
	start := time.Now()

	entries, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query catalog: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Mercuriale"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, 0, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Produit",
		"Unité",
		"Prix unitaire (€)",
		"Allergènes",
		"Stock actuel",
		"Stock minimum",
		"Stock critique",
		"Stock maximum",
		"Niveau",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, e := range entries {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, e.Name)
		write(2, e.Unit)
		write(3, e.UnitPrice)
		write(4, strings.Join(e.Allergens, ", "))
		write(5, e.CurrentStock)
		write(6, e.MinStock)
		write(7, e.CriticalStock)
		write(8, e.MaxStock)
		write(9, string(e.Level()))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32) // name
	_ = f.SetColWidth(sheet, "B", "C", 16)
	_ = f.SetColWidth(sheet, "D", "D", 40) // allergens
	_ = f.SetColWidth(sheet, "E", "H", 14)
	_ = f.SetColWidth(sheet, "I", "I", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.catalog.ok",
		"rows", len(entries),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), len(entries), nil
}

// ExportRecipeCostXLSX returns an XLSX workbook of all recipe sheets with
// their cost, sale price and margin. Negative margins are written as-is.
func (s *Service) ExportRecipeCostXLSX(ctx context.Context) ([]byte, int, error) {
	start := time.Now()

	recipes, err := s.recipeRepo.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query recipes: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Fiches techniques"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, 0, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Fiche",
		"Catégorie",
		"Portions",
		"Coût matière (€)",
		"Prix de vente (€)",
		"Marge (€)",
		"Marge (%)",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recipes {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Name)
		write(2, r.Category)
		write(3, r.Portions)
		write(4, r.Cost)
		write(5, r.SalePrice)
		write(6, r.Margin())
		if r.SalePrice == 0 {
			write(7, "n/a")
		} else {
			write(7, fmt.Sprintf("%.1f%%", r.MarginPercent()))
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32)
	_ = f.SetColWidth(sheet, "B", "B", 18)
	_ = f.SetColWidth(sheet, "C", "G", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.recipes.ok",
		"rows", len(recipes),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), len(recipes), nil
}
