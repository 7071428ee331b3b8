// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cuisinehq/mercuriale/gen/ent/recipesheet"
	"github.com/cuisinehq/mercuriale/internal/entity"
	"github.com/google/uuid"
)

// RecipeSheet is the model entity for the RecipeSheet schema.
type RecipeSheet struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Portions holds the value of the "portions" field.
	Portions int `json:"portions,omitempty"`
	// Category holds the value of the "category" field.
	Category recipesheet.Category `json:"category,omitempty"`
	// Lines holds the value of the "lines" field.
	Lines []entity.RecipeLine `json:"lines,omitempty"`
	// Instructions holds the value of the "instructions" field.
	Instructions string `json:"instructions,omitempty"`
	// Cost holds the value of the "cost" field.
	Cost float64 `json:"cost,omitempty"`
	// SalePrice holds the value of the "sale_price" field.
	SalePrice float64 `json:"sale_price,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecipeSheet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recipesheet.FieldLines:
			values[i] = new([]byte)
		case recipesheet.FieldCost, recipesheet.FieldSalePrice:
			values[i] = new(sql.NullFloat64)
		case recipesheet.FieldPortions:
			values[i] = new(sql.NullInt64)
		case recipesheet.FieldName, recipesheet.FieldCategory, recipesheet.FieldInstructions:
			values[i] = new(sql.NullString)
		case recipesheet.FieldCreatedAt, recipesheet.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case recipesheet.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecipeSheet fields.
func (_m *RecipeSheet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recipesheet.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case recipesheet.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case recipesheet.FieldPortions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field portions", values[i])
			} else if value.Valid {
				_m.Portions = int(value.Int64)
			}
		case recipesheet.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = recipesheet.Category(value.String)
			}
		case recipesheet.FieldLines:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field lines", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Lines); err != nil {
					return fmt.Errorf("unmarshal field lines: %w", err)
				}
			}
		case recipesheet.FieldInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instructions", values[i])
			} else if value.Valid {
				_m.Instructions = value.String
			}
		case recipesheet.FieldCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost", values[i])
			} else if value.Valid {
				_m.Cost = value.Float64
			}
		case recipesheet.FieldSalePrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sale_price", values[i])
			} else if value.Valid {
				_m.SalePrice = value.Float64
			}
		case recipesheet.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case recipesheet.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RecipeSheet.
// This includes values selected through modifiers, order, etc.
func (_m *RecipeSheet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RecipeSheet.
// Note that you need to call RecipeSheet.Unwrap() before calling this method if this RecipeSheet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RecipeSheet) Update() *RecipeSheetUpdateOne {
	return NewRecipeSheetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RecipeSheet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RecipeSheet) Unwrap() *RecipeSheet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RecipeSheet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RecipeSheet) String() string {
	var builder strings.Builder
	builder.WriteString("RecipeSheet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("portions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Portions))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", _m.Category))
	builder.WriteString(", ")
	builder.WriteString("lines=")
	builder.WriteString(fmt.Sprintf("%v", _m.Lines))
	builder.WriteString(", ")
	builder.WriteString("instructions=")
	builder.WriteString(_m.Instructions)
	builder.WriteString(", ")
	builder.WriteString("cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cost))
	builder.WriteString(", ")
	builder.WriteString("sale_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.SalePrice))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RecipeSheets is a parsable slice of RecipeSheet.
type RecipeSheets []*RecipeSheet
