package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecipeLine is one ingredient row on a fiche technique. UnitPrice is a
// snapshot taken when the line was added, not a live catalog lookup.
type RecipeLine struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
}

// RecipeSheet represents a fiche technique for data transfer between layers.
type RecipeSheet struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Portions     int          `json:"portions"`
	Category     string       `json:"category"`
	Lines        []RecipeLine `json:"lines"`
	Instructions string       `json:"instructions"`
	Cost         float64      `json:"cost"`
	SalePrice    float64      `json:"sale_price"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// LineCost returns the summed cost of all ingredient lines.
func (r *RecipeSheet) LineCost() float64 {
	var total float64
	for _, l := range r.Lines {
		total += l.Quantity * l.UnitPrice
	}
	return total
}

// Margin is sale price minus cost. Zero and negative margins are valid
// values and must be displayed, not clamped.
func (r *RecipeSheet) Margin() float64 {
	return r.SalePrice - r.Cost
}

// MarginPercent returns the margin as a percentage of the sale price.
// Returns 0 when the sale price is 0.
func (r *RecipeSheet) MarginPercent() float64 {
	if r.SalePrice == 0 {
		return 0
	}
	return (r.SalePrice - r.Cost) / r.SalePrice * 100
}
