// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cuisinehq/mercuriale/gen/ent/catalogentry"
	"github.com/google/uuid"
)

// CatalogEntry is the model entity for the CatalogEntry schema.
type CatalogEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// UnitPrice holds the value of the "unit_price" field.
	UnitPrice float64 `json:"unit_price,omitempty"`
	// Allergens holds the value of the "allergens" field.
	Allergens []string `json:"allergens,omitempty"`
	// CurrentStock holds the value of the "current_stock" field.
	CurrentStock float64 `json:"current_stock,omitempty"`
	// MinStock holds the value of the "min_stock" field.
	MinStock float64 `json:"min_stock,omitempty"`
	// CriticalStock holds the value of the "critical_stock" field.
	CriticalStock float64 `json:"critical_stock,omitempty"`
	// MaxStock holds the value of the "max_stock" field.
	MaxStock float64 `json:"max_stock,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CatalogEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case catalogentry.FieldAllergens:
			values[i] = new([]byte)
		case catalogentry.FieldUnitPrice, catalogentry.FieldCurrentStock, catalogentry.FieldMinStock, catalogentry.FieldCriticalStock, catalogentry.FieldMaxStock:
			values[i] = new(sql.NullFloat64)
		case catalogentry.FieldName, catalogentry.FieldUnit:
			values[i] = new(sql.NullString)
		case catalogentry.FieldCreatedAt, catalogentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case catalogentry.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CatalogEntry fields.
func (_m *CatalogEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case catalogentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case catalogentry.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case catalogentry.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case catalogentry.FieldUnitPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_price", values[i])
			} else if value.Valid {
				_m.UnitPrice = value.Float64
			}
		case catalogentry.FieldAllergens:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allergens", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Allergens); err != nil {
					return fmt.Errorf("unmarshal field allergens: %w", err)
				}
			}
		case catalogentry.FieldCurrentStock:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field current_stock", values[i])
			} else if value.Valid {
				_m.CurrentStock = value.Float64
			}
		case catalogentry.FieldMinStock:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field min_stock", values[i])
			} else if value.Valid {
				_m.MinStock = value.Float64
			}
		case catalogentry.FieldCriticalStock:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field critical_stock", values[i])
			} else if value.Valid {
				_m.CriticalStock = value.Float64
			}
		case catalogentry.FieldMaxStock:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_stock", values[i])
			} else if value.Valid {
				_m.MaxStock = value.Float64
			}
		case catalogentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case catalogentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CatalogEntry.
// This includes values selected through modifiers, order, etc.
func (_m *CatalogEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CatalogEntry.
// Note that you need to call CatalogEntry.Unwrap() before calling this method if this CatalogEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CatalogEntry) Update() *CatalogEntryUpdateOne {
	return NewCatalogEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CatalogEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CatalogEntry) Unwrap() *CatalogEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CatalogEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CatalogEntry) String() string {
	var builder strings.Builder
	builder.WriteString("CatalogEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteString(", ")
	builder.WriteString("unit_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitPrice))
	builder.WriteString(", ")
	builder.WriteString("allergens=")
	builder.WriteString(fmt.Sprintf("%v", _m.Allergens))
	builder.WriteString(", ")
	builder.WriteString("current_stock=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStock))
	builder.WriteString(", ")
	builder.WriteString("min_stock=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinStock))
	builder.WriteString(", ")
	builder.WriteString("critical_stock=")
	builder.WriteString(fmt.Sprintf("%v", _m.CriticalStock))
	builder.WriteString(", ")
	builder.WriteString("max_stock=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxStock))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CatalogEntries is a parsable slice of CatalogEntry.
type CatalogEntries []*CatalogEntry
