package entity

import (
	"time"

	"github.com/google/uuid"
)

// MovementDirection is the sign of a stock movement.
type MovementDirection string

const (
	MovementIn  MovementDirection = "IN"
	MovementOut MovementDirection = "OUT"
)

// StockMovement is one appended ledger row adjusting an entry's stock.
type StockMovement struct {
	ID        uuid.UUID         `json:"id"`
	EntryID   uuid.UUID         `json:"entry_id"`
	Direction MovementDirection `json:"direction"`
	Quantity  float64           `json:"quantity"`
	Reason    string            `json:"reason"`
	CreatedAt time.Time         `json:"created_at"`
}

// Signed returns the quantity with its direction applied.
func (m *StockMovement) Signed() float64 {
	if m.Direction == MovementOut {
		return -m.Quantity
	}
	return m.Quantity
}
