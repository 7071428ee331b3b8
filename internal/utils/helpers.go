package utils

import (
	"time"

	"github.com/cuisinehq/mercuriale/gen/ent"
	mercurialepb "github.com/cuisinehq/mercuriale/gen/proto/mercuriale/v1"
	"github.com/cuisinehq/mercuriale/internal/entity"
	"github.com/cuisinehq/mercuriale/internal/match"
)

func ToCatalogEntry(e *ent.CatalogEntry) *entity.CatalogEntry {
	return &entity.CatalogEntry{
		ID:            e.ID,
		Name:          e.Name,
		Unit:          e.Unit,
		UnitPrice:     e.UnitPrice,
		Allergens:     e.Allergens,
		CurrentStock:  e.CurrentStock,
		MinStock:      e.MinStock,
		CriticalStock: e.CriticalStock,
		MaxStock:      e.MaxStock,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToRecipeSheet(e *ent.RecipeSheet) *entity.RecipeSheet {
	return &entity.RecipeSheet{
		ID:           e.ID,
		Name:         e.Name,
		Portions:     e.Portions,
		Category:     string(e.Category),
		Lines:        e.Lines,
		Instructions: e.Instructions,
		Cost:         e.Cost,
		SalePrice:    e.SalePrice,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToStockMovement(e *ent.StockMovement) *entity.StockMovement {
	return &entity.StockMovement{
		ID:        e.ID,
		EntryID:   e.EntryID,
		Direction: entity.MovementDirection(e.Direction),
		Quantity:  e.Quantity,
		Reason:    e.Reason,
		CreatedAt: e.CreatedAt,
	}
}

func ToImportFile(e *ent.ImportFile) *entity.ImportFile {
	return &entity.ImportFile{
		ID:          e.ID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
	}
}

func ToImportJob(e *ent.ImportJob) *entity.ImportJob {
	return &entity.ImportJob{
		ID:           e.ID,
		FileID:       e.FileID,
		Format:       e.Format,
		Mode:         e.Mode,
		Status:       e.Status,
		StartedAt:    e.StartedAt,
		FinishedAt:   e.FinishedAt,
		ErrorMessage: e.ErrorMessage,
		ExtractedTxt: e.ExtractedText,
		Method:       e.Method,
		Confidence:   e.Confidence,
	}
}

func ToPBCatalogEntry(e *entity.CatalogEntry) *mercurialepb.CatalogEntry {
	return &mercurialepb.CatalogEntry{
		Id:            e.ID.String(),
		Name:          e.Name,
		Unit:          e.Unit,
		UnitPrice:     e.UnitPrice,
		Allergens:     e.Allergens,
		CurrentStock:  e.CurrentStock,
		MinStock:      e.MinStock,
		CriticalStock: e.CriticalStock,
		MaxStock:      e.MaxStock,
		StockLevel:    string(e.Level()),
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBRecipeSheet(e *entity.RecipeSheet) *mercurialepb.RecipeSheet {
	lines := make([]*mercurialepb.RecipeLine, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = &mercurialepb.RecipeLine{
			Name:      l.Name,
			Quantity:  l.Quantity,
			Unit:      l.Unit,
			UnitPrice: l.UnitPrice,
		}
	}
	return &mercurialepb.RecipeSheet{
		Id:           e.ID.String(),
		Name:         e.Name,
		Portions:     int32(e.Portions),
		Category:     e.Category,
		Lines:        lines,
		Instructions: e.Instructions,
		Cost:         e.Cost,
		SalePrice:    e.SalePrice,
		CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBStockMovement(m *entity.StockMovement) *mercurialepb.StockMovement {
	return &mercurialepb.StockMovement{
		Id:        m.ID.String(),
		EntryId:   m.EntryID.String(),
		Direction: string(m.Direction),
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBParsedRecord(r *entity.ParsedRecord) *mercurialepb.ParsedRecord {
	return &mercurialepb.ParsedRecord{
		Name:       r.Name,
		Quantity:   r.Quantity,
		Unit:       r.Unit,
		UnitPrice:  r.UnitPrice,
		Allergens:  r.Allergens,
		Confidence: r.Confidence,
	}
}

func ToPBParsedRecipe(r *entity.ParsedRecipe) *mercurialepb.ParsedRecipe {
	ingredients := make([]*mercurialepb.ParsedIngredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = &mercurialepb.ParsedIngredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		}
	}
	return &mercurialepb.ParsedRecipe{
		Name:         r.Name,
		Portions:     int32(r.Portions),
		Ingredients:  ingredients,
		Instructions: r.Instructions,
		Confidence:   r.Confidence,
	}
}

func ToPBPriceMatch(m *entity.PriceMatch) *mercurialepb.PriceMatch {
	return &mercurialepb.PriceMatch{
		Existing:      ToPBCatalogEntry(&m.Existing),
		Incoming:      ToPBParsedRecord(&m.Incoming),
		PriceDiff:     m.PriceDiff,
		PercentChange: match.FormatPercent(m.PercentChange),
	}
}

func ToPBRecipeMatch(m *entity.RecipeMatch) *mercurialepb.RecipeMatch {
	return &mercurialepb.RecipeMatch{
		Existing:   ToPBRecipeSheet(&m.Existing),
		Similarity: m.Similarity,
	}
}

func FromPBRecipeLines(lines []*mercurialepb.RecipeLine) []entity.RecipeLine {
	out := make([]entity.RecipeLine, len(lines))
	for i, l := range lines {
		out[i] = entity.RecipeLine{
			Name:      l.GetName(),
			Quantity:  l.GetQuantity(),
			Unit:      l.GetUnit(),
			UnitPrice: l.GetUnitPrice(),
		}
	}
	return out
}
