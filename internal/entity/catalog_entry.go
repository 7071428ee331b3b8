package entity

import (
	"time"

	"github.com/google/uuid"
)

// CatalogEntry represents one mercuriale row for data transfer between layers.
type CatalogEntry struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Unit          string    `json:"unit"`
	UnitPrice     float64   `json:"unit_price"`
	Allergens     []string  `json:"allergens,omitempty"`
	CurrentStock  float64   `json:"current_stock"`
	MinStock      float64   `json:"min_stock"`
	CriticalStock float64   `json:"critical_stock"`
	MaxStock      float64   `json:"max_stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StockLevel classifies the current stock against the entry thresholds.
type StockLevel string

const (
	StockOK       StockLevel = "OK"
	StockLow      StockLevel = "LOW"
	StockCritical StockLevel = "CRITICAL"
)

// Level reports where the current stock sits relative to the thresholds.
func (e *CatalogEntry) Level() StockLevel {
	switch {
	case e.CurrentStock <= e.CriticalStock:
		return StockCritical
	case e.CurrentStock <= e.MinStock:
		return StockLow
	default:
		return StockOK
	}
}
