// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CatalogEntry is the predicate function for catalogentry builders.
type CatalogEntry func(*sql.Selector)

// ImportFile is the predicate function for importfile builders.
type ImportFile func(*sql.Selector)

// ImportJob is the predicate function for importjob builders.
type ImportJob func(*sql.Selector)

// RecipeSheet is the predicate function for recipesheet builders.
type RecipeSheet func(*sql.Selector)

// StockMovement is the predicate function for stockmovement builders.
type StockMovement func(*sql.Selector)
