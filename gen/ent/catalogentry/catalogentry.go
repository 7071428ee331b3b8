// Code generated by ent, DO NOT EDIT.

package catalogentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the catalogentry type in the database.
	Label = "catalog_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldUnitPrice holds the string denoting the unit_price field in the database.
	FieldUnitPrice = "unit_price"
	// FieldAllergens holds the string denoting the allergens field in the database.
	FieldAllergens = "allergens"
	// FieldCurrentStock holds the string denoting the current_stock field in the database.
	FieldCurrentStock = "current_stock"
	// FieldMinStock holds the string denoting the min_stock field in the database.
	FieldMinStock = "min_stock"
	// FieldCriticalStock holds the string denoting the critical_stock field in the database.
	FieldCriticalStock = "critical_stock"
	// FieldMaxStock holds the string denoting the max_stock field in the database.
	FieldMaxStock = "max_stock"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the catalogentry in the database.
	Table = "catalog_entries"
)

// Columns holds all SQL columns for catalogentry fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldUnit,
	FieldUnitPrice,
	FieldAllergens,
	FieldCurrentStock,
	FieldMinStock,
	FieldCriticalStock,
	FieldMaxStock,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	UnitValidator func(string) error
	// UnitPriceValidator is a validator for the "unit_price" field. It is called by the builders before save.
	UnitPriceValidator func(float64) error
	// DefaultCurrentStock holds the default value on creation for the "current_stock" field.
	DefaultCurrentStock float64
	// CurrentStockValidator is a validator for the "current_stock" field. It is called by the builders before save.
	CurrentStockValidator func(float64) error
	// DefaultMinStock holds the default value on creation for the "min_stock" field.
	DefaultMinStock float64
	// MinStockValidator is a validator for the "min_stock" field. It is called by the builders before save.
	MinStockValidator func(float64) error
	// DefaultCriticalStock holds the default value on creation for the "critical_stock" field.
	DefaultCriticalStock float64
	// CriticalStockValidator is a validator for the "critical_stock" field. It is called by the builders before save.
	CriticalStockValidator func(float64) error
	// DefaultMaxStock holds the default value on creation for the "max_stock" field.
	DefaultMaxStock float64
	// MaxStockValidator is a validator for the "max_stock" field. It is called by the builders before save.
	MaxStockValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CatalogEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByUnitPrice orders the results by the unit_price field.
func ByUnitPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitPrice, opts...).ToFunc()
}

// ByCurrentStock orders the results by the current_stock field.
func ByCurrentStock(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStock, opts...).ToFunc()
}

// ByMinStock orders the results by the min_stock field.
func ByMinStock(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinStock, opts...).ToFunc()
}

// ByCriticalStock orders the results by the critical_stock field.
func ByCriticalStock(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCriticalStock, opts...).ToFunc()
}

// ByMaxStock orders the results by the max_stock field.
func ByMaxStock(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxStock, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
