// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cuisinehq/mercuriale/gen/ent/stockmovement"
	"github.com/google/uuid"
)

// StockMovement is the model entity for the StockMovement schema.
type StockMovement struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EntryID holds the value of the "entry_id" field.
	EntryID uuid.UUID `json:"entry_id,omitempty"`
	// Direction holds the value of the "direction" field.
	Direction stockmovement.Direction `json:"direction,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity float64 `json:"quantity,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StockMovement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stockmovement.FieldQuantity:
			values[i] = new(sql.NullFloat64)
		case stockmovement.FieldDirection, stockmovement.FieldReason:
			values[i] = new(sql.NullString)
		case stockmovement.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case stockmovement.FieldID, stockmovement.FieldEntryID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StockMovement fields.
func (_m *StockMovement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stockmovement.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case stockmovement.FieldEntryID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field entry_id", values[i])
			} else if value != nil {
				_m.EntryID = *value
			}
		case stockmovement.FieldDirection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field direction", values[i])
			} else if value.Valid {
				_m.Direction = stockmovement.Direction(value.String)
			}
		case stockmovement.FieldQuantity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = value.Float64
			}
		case stockmovement.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case stockmovement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StockMovement.
// This includes values selected through modifiers, order, etc.
func (_m *StockMovement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StockMovement.
// Note that you need to call StockMovement.Unwrap() before calling this method if this StockMovement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StockMovement) Update() *StockMovementUpdateOne {
	return NewStockMovementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StockMovement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StockMovement) Unwrap() *StockMovement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StockMovement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StockMovement) String() string {
	var builder strings.Builder
	builder.WriteString("StockMovement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("entry_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntryID))
	builder.WriteString(", ")
	builder.WriteString("direction=")
	builder.WriteString(fmt.Sprintf("%v", _m.Direction))
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StockMovements is a parsable slice of StockMovement.
type StockMovements []*StockMovement
