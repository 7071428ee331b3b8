// Code generated by ent, DO NOT EDIT.

package recipesheet

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cuisinehq/mercuriale/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEQ(FieldName, v))
}

// Portions applies equality check predicate on the "portions" field. It's identical to PortionsEQ.
func Portions(v int) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEQ(FieldPortions, v))
}

// Instructions applies equality check predicate on the "instructions" field. It's identical to InstructionsEQ.
func Instructions(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEQ(FieldInstructions, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEQ(FieldCost, v))
}

// SalePrice applies equality check predicate on the "sale_price" field. It's identical to SalePriceEQ.
func SalePrice(v float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEQ(FieldSalePrice, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldContainsFold(FieldName, v))
}

// PortionsEQ applies the EQ predicate on the "portions" field.
func PortionsEQ(v int) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEQ(FieldPortions, v))
}

// PortionsNEQ applies the NEQ predicate on the "portions" field.
func PortionsNEQ(v int) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNEQ(FieldPortions, v))
}

// PortionsIn applies the In predicate on the "portions" field.
func PortionsIn(vs ...int) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldIn(FieldPortions, vs...))
}

// PortionsNotIn applies the NotIn predicate on the "portions" field.
func PortionsNotIn(vs ...int) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNotIn(FieldPortions, vs...))
}

// PortionsGT applies the GT predicate on the "portions" field.
func PortionsGT(v int) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldGT(FieldPortions, v))
}

// PortionsGTE applies the GTE predicate on the "portions" field.
func PortionsGTE(v int) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldGTE(FieldPortions, v))
}

// PortionsLT applies the LT predicate on the "portions" field.
func PortionsLT(v int) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldLT(FieldPortions, v))
}

// PortionsLTE applies the LTE predicate on the "portions" field.
func PortionsLTE(v int) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldLTE(FieldPortions, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNotIn(FieldCategory, vs...))
}

// LinesIsNil applies the IsNil predicate on the "lines" field.
func LinesIsNil() predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldIsNull(FieldLines))
}

// LinesNotNil applies the NotNil predicate on the "lines" field.
func LinesNotNil() predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNotNull(FieldLines))
}

// InstructionsEQ applies the EQ predicate on the "instructions" field.
func InstructionsEQ(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEQ(FieldInstructions, v))
}

// InstructionsNEQ applies the NEQ predicate on the "instructions" field.
func InstructionsNEQ(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNEQ(FieldInstructions, v))
}

// InstructionsIn applies the In predicate on the "instructions" field.
func InstructionsIn(vs ...string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldIn(FieldInstructions, vs...))
}

// InstructionsNotIn applies the NotIn predicate on the "instructions" field.
func InstructionsNotIn(vs ...string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNotIn(FieldInstructions, vs...))
}

// InstructionsGT applies the GT predicate on the "instructions" field.
func InstructionsGT(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldGT(FieldInstructions, v))
}

// InstructionsGTE applies the GTE predicate on the "instructions" field.
func InstructionsGTE(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldGTE(FieldInstructions, v))
}

// InstructionsLT applies the LT predicate on the "instructions" field.
func InstructionsLT(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldLT(FieldInstructions, v))
}

// InstructionsLTE applies the LTE predicate on the "instructions" field.
func InstructionsLTE(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldLTE(FieldInstructions, v))
}

// InstructionsContains applies the Contains predicate on the "instructions" field.
func InstructionsContains(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldContains(FieldInstructions, v))
}

// InstructionsHasPrefix applies the HasPrefix predicate on the "instructions" field.
func InstructionsHasPrefix(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldHasPrefix(FieldInstructions, v))
}

// InstructionsHasSuffix applies the HasSuffix predicate on the "instructions" field.
func InstructionsHasSuffix(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldHasSuffix(FieldInstructions, v))
}

// InstructionsIsNil applies the IsNil predicate on the "instructions" field.
func InstructionsIsNil() predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldIsNull(FieldInstructions))
}

// InstructionsNotNil applies the NotNil predicate on the "instructions" field.
func InstructionsNotNil() predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNotNull(FieldInstructions))
}

// InstructionsEqualFold applies the EqualFold predicate on the "instructions" field.
func InstructionsEqualFold(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEqualFold(FieldInstructions, v))
}

// InstructionsContainsFold applies the ContainsFold predicate on the "instructions" field.
func InstructionsContainsFold(v string) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldContainsFold(FieldInstructions, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldLTE(FieldCost, v))
}

// SalePriceEQ applies the EQ predicate on the "sale_price" field.
func SalePriceEQ(v float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEQ(FieldSalePrice, v))
}

// SalePriceNEQ applies the NEQ predicate on the "sale_price" field.
func SalePriceNEQ(v float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNEQ(FieldSalePrice, v))
}

// SalePriceIn applies the In predicate on the "sale_price" field.
func SalePriceIn(vs ...float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldIn(FieldSalePrice, vs...))
}

// SalePriceNotIn applies the NotIn predicate on the "sale_price" field.
func SalePriceNotIn(vs ...float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNotIn(FieldSalePrice, vs...))
}

// SalePriceGT applies the GT predicate on the "sale_price" field.
func SalePriceGT(v float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldGT(FieldSalePrice, v))
}

// SalePriceGTE applies the GTE predicate on the "sale_price" field.
func SalePriceGTE(v float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldGTE(FieldSalePrice, v))
}

// SalePriceLT applies the LT predicate on the "sale_price" field.
func SalePriceLT(v float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldLT(FieldSalePrice, v))
}

// SalePriceLTE applies the LTE predicate on the "sale_price" field.
func SalePriceLTE(v float64) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldLTE(FieldSalePrice, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RecipeSheet) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RecipeSheet) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RecipeSheet) predicate.RecipeSheet {
	return predicate.RecipeSheet(sql.NotPredicates(p))
}
