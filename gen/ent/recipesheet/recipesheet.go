// Code generated by ent, DO NOT EDIT.

package recipesheet

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the recipesheet type in the database.
	Label = "recipe_sheet"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPortions holds the string denoting the portions field in the database.
	FieldPortions = "portions"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldLines holds the string denoting the lines field in the database.
	FieldLines = "lines"
	// FieldInstructions holds the string denoting the instructions field in the database.
	FieldInstructions = "instructions"
	// FieldCost holds the string denoting the cost field in the database.
	FieldCost = "cost"
	// FieldSalePrice holds the string denoting the sale_price field in the database.
	FieldSalePrice = "sale_price"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the recipesheet in the database.
	Table = "recipe_sheets"
)

// Columns holds all SQL columns for recipesheet fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldPortions,
	FieldCategory,
	FieldLines,
	FieldInstructions,
	FieldCost,
	FieldSalePrice,
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
	// DefaultPortions holds the default value on creation for the "portions" field.
	DefaultPortions int
	// PortionsValidator is a validator for the "portions" field. It is called by the builders before save.
	PortionsValidator func(int) error
	// DefaultCost holds the default value on creation for the "cost" field.
	DefaultCost float64
	// CostValidator is a validator for the "cost" field. It is called by the builders before save.
	CostValidator func(float64) error
	// DefaultSalePrice holds the default value on creation for the "sale_price" field.
	DefaultSalePrice float64
	// SalePriceValidator is a validator for the "sale_price" field. It is called by the builders before save.
	SalePriceValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Category defines the type for the "category" enum field.
type Category string

// CategoryPlat is the default value of the Category enum.
const DefaultCategory = CategoryPlat

// Category values.
const (
	CategoryEntrée         Category = "Entrée"
	CategoryPlat           Category = "Plat"
	CategoryDessert        Category = "Dessert"
	CategoryAccompagnement Category = "Accompagnement"
	CategorySauce          Category = "Sauce"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryEntrée, CategoryPlat, CategoryDessert, CategoryAccompagnement, CategorySauce:
		return nil
	default:
		return fmt.Errorf("recipesheet: invalid enum value for category field: %q", c)
	}
}

// OrderOption defines the ordering options for the RecipeSheet queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPortions orders the results by the portions field.
func ByPortions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPortions, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByInstructions orders the results by the instructions field.
func ByInstructions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstructions, opts...).ToFunc()
}

// ByCost orders the results by the cost field.
func ByCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCost, opts...).ToFunc()
}

// BySalePrice orders the results by the sale_price field.
func BySalePrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSalePrice, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
