// Code generated by ent, DO NOT EDIT.

package catalogentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cuisinehq/mercuriale/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldName, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldUnit, v))
}

// UnitPrice applies equality check predicate on the "unit_price" field. It's identical to UnitPriceEQ.
func UnitPrice(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldUnitPrice, v))
}

// CurrentStock applies equality check predicate on the "current_stock" field. It's identical to CurrentStockEQ.
func CurrentStock(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldCurrentStock, v))
}

// MinStock applies equality check predicate on the "min_stock" field. It's identical to MinStockEQ.
func MinStock(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldMinStock, v))
}

// CriticalStock applies equality check predicate on the "critical_stock" field. It's identical to CriticalStockEQ.
func CriticalStock(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldCriticalStock, v))
}

// MaxStock applies equality check predicate on the "max_stock" field. It's identical to MaxStockEQ.
func MaxStock(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldMaxStock, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContainsFold(FieldName, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContainsFold(FieldUnit, v))
}

// UnitPriceEQ applies the EQ predicate on the "unit_price" field.
func UnitPriceEQ(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldUnitPrice, v))
}

// UnitPriceNEQ applies the NEQ predicate on the "unit_price" field.
func UnitPriceNEQ(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldUnitPrice, v))
}

// UnitPriceIn applies the In predicate on the "unit_price" field.
func UnitPriceIn(vs ...float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldUnitPrice, vs...))
}

// UnitPriceNotIn applies the NotIn predicate on the "unit_price" field.
func UnitPriceNotIn(vs ...float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldUnitPrice, vs...))
}

// UnitPriceGT applies the GT predicate on the "unit_price" field.
func UnitPriceGT(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldUnitPrice, v))
}

// UnitPriceGTE applies the GTE predicate on the "unit_price" field.
func UnitPriceGTE(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldUnitPrice, v))
}

// UnitPriceLT applies the LT predicate on the "unit_price" field.
func UnitPriceLT(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldUnitPrice, v))
}

// UnitPriceLTE applies the LTE predicate on the "unit_price" field.
func UnitPriceLTE(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldUnitPrice, v))
}

// AllergensIsNil applies the IsNil predicate on the "allergens" field.
func AllergensIsNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIsNull(FieldAllergens))
}

// AllergensNotNil applies the NotNil predicate on the "allergens" field.
func AllergensNotNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotNull(FieldAllergens))
}

// CurrentStockEQ applies the EQ predicate on the "current_stock" field.
func CurrentStockEQ(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldCurrentStock, v))
}

// CurrentStockNEQ applies the NEQ predicate on the "current_stock" field.
func CurrentStockNEQ(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldCurrentStock, v))
}

// CurrentStockIn applies the In predicate on the "current_stock" field.
func CurrentStockIn(vs ...float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldCurrentStock, vs...))
}

// CurrentStockNotIn applies the NotIn predicate on the "current_stock" field.
func CurrentStockNotIn(vs ...float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldCurrentStock, vs...))
}

// CurrentStockGT applies the GT predicate on the "current_stock" field.
func CurrentStockGT(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldCurrentStock, v))
}

// CurrentStockGTE applies the GTE predicate on the "current_stock" field.
func CurrentStockGTE(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldCurrentStock, v))
}

// CurrentStockLT applies the LT predicate on the "current_stock" field.
func CurrentStockLT(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldCurrentStock, v))
}

// CurrentStockLTE applies the LTE predicate on the "current_stock" field.
func CurrentStockLTE(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldCurrentStock, v))
}

// MinStockEQ applies the EQ predicate on the "min_stock" field.
func MinStockEQ(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldMinStock, v))
}

// MinStockNEQ applies the NEQ predicate on the "min_stock" field.
func MinStockNEQ(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldMinStock, v))
}

// MinStockIn applies the In predicate on the "min_stock" field.
func MinStockIn(vs ...float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldMinStock, vs...))
}

// MinStockNotIn applies the NotIn predicate on the "min_stock" field.
func MinStockNotIn(vs ...float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldMinStock, vs...))
}

// MinStockGT applies the GT predicate on the "min_stock" field.
func MinStockGT(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldMinStock, v))
}

// MinStockGTE applies the GTE predicate on the "min_stock" field.
func MinStockGTE(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldMinStock, v))
}

// MinStockLT applies the LT predicate on the "min_stock" field.
func MinStockLT(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldMinStock, v))
}

// MinStockLTE applies the LTE predicate on the "min_stock" field.
func MinStockLTE(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldMinStock, v))
}

// CriticalStockEQ applies the EQ predicate on the "critical_stock" field.
func CriticalStockEQ(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldCriticalStock, v))
}

// CriticalStockNEQ applies the NEQ predicate on the "critical_stock" field.
func CriticalStockNEQ(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldCriticalStock, v))
}

// CriticalStockIn applies the In predicate on the "critical_stock" field.
func CriticalStockIn(vs ...float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldCriticalStock, vs...))
}

// CriticalStockNotIn applies the NotIn predicate on the "critical_stock" field.
func CriticalStockNotIn(vs ...float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldCriticalStock, vs...))
}

// CriticalStockGT applies the GT predicate on the "critical_stock" field.
func CriticalStockGT(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldCriticalStock, v))
}

// CriticalStockGTE applies the GTE predicate on the "critical_stock" field.
func CriticalStockGTE(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldCriticalStock, v))
}

// CriticalStockLT applies the LT predicate on the "critical_stock" field.
func CriticalStockLT(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldCriticalStock, v))
}

// CriticalStockLTE applies the LTE predicate on the "critical_stock" field.
func CriticalStockLTE(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldCriticalStock, v))
}

// MaxStockEQ applies the EQ predicate on the "max_stock" field.
func MaxStockEQ(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldMaxStock, v))
}

// MaxStockNEQ applies the NEQ predicate on the "max_stock" field.
func MaxStockNEQ(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldMaxStock, v))
}

// MaxStockIn applies the In predicate on the "max_stock" field.
func MaxStockIn(vs ...float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldMaxStock, vs...))
}

// MaxStockNotIn applies the NotIn predicate on the "max_stock" field.
func MaxStockNotIn(vs ...float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldMaxStock, vs...))
}

// MaxStockGT applies the GT predicate on the "max_stock" field.
func MaxStockGT(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldMaxStock, v))
}

// MaxStockGTE applies the GTE predicate on the "max_stock" field.
func MaxStockGTE(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldMaxStock, v))
}

// MaxStockLT applies the LT predicate on the "max_stock" field.
func MaxStockLT(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldMaxStock, v))
}

// MaxStockLTE applies the LTE predicate on the "max_stock" field.
func MaxStockLTE(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldMaxStock, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CatalogEntry) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CatalogEntry) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CatalogEntry) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.NotPredicates(p))
}
