// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/cuisinehq/mercuriale/gen/ent/predicate"
	"github.com/cuisinehq/mercuriale/gen/ent/recipesheet"
	"github.com/cuisinehq/mercuriale/internal/entity"
)

// RecipeSheetUpdate is the builder for updating RecipeSheet entities.
type RecipeSheetUpdate struct {
	config
	hooks    []Hook
	mutation *RecipeSheetMutation
}

// Where appends a list predicates to the RecipeSheetUpdate builder.
func (_u *RecipeSheetUpdate) Where(ps ...predicate.RecipeSheet) *RecipeSheetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *RecipeSheetUpdate) SetName(v string) *RecipeSheetUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RecipeSheetUpdate) SetNillableName(v *string) *RecipeSheetUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPortions sets the "portions" field.
func (_u *RecipeSheetUpdate) SetPortions(v int) *RecipeSheetUpdate {
	_u.mutation.ResetPortions()
	_u.mutation.SetPortions(v)
	return _u
}

// SetNillablePortions sets the "portions" field if the given value is not nil.
func (_u *RecipeSheetUpdate) SetNillablePortions(v *int) *RecipeSheetUpdate {
	if v != nil {
		_u.SetPortions(*v)
	}
	return _u
}

// AddPortions adds value to the "portions" field.
func (_u *RecipeSheetUpdate) AddPortions(v int) *RecipeSheetUpdate {
	_u.mutation.AddPortions(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *RecipeSheetUpdate) SetCategory(v recipesheet.Category) *RecipeSheetUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RecipeSheetUpdate) SetNillableCategory(v *recipesheet.Category) *RecipeSheetUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLines sets the "lines" field.
func (_u *RecipeSheetUpdate) SetLines(v []entity.RecipeLine) *RecipeSheetUpdate {
	_u.mutation.SetLines(v)
	return _u
}

// AppendLines appends value to the "lines" field.
func (_u *RecipeSheetUpdate) AppendLines(v []entity.RecipeLine) *RecipeSheetUpdate {
	_u.mutation.AppendLines(v)
	return _u
}

// ClearLines clears the value of the "lines" field.
func (_u *RecipeSheetUpdate) ClearLines() *RecipeSheetUpdate {
	_u.mutation.ClearLines()
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *RecipeSheetUpdate) SetInstructions(v string) *RecipeSheetUpdate {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *RecipeSheetUpdate) SetNillableInstructions(v *string) *RecipeSheetUpdate {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *RecipeSheetUpdate) ClearInstructions() *RecipeSheetUpdate {
	_u.mutation.ClearInstructions()
	return _u
}

// SetCost sets the "cost" field.
func (_u *RecipeSheetUpdate) SetCost(v float64) *RecipeSheetUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *RecipeSheetUpdate) SetNillableCost(v *float64) *RecipeSheetUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *RecipeSheetUpdate) AddCost(v float64) *RecipeSheetUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// SetSalePrice sets the "sale_price" field.
func (_u *RecipeSheetUpdate) SetSalePrice(v float64) *RecipeSheetUpdate {
	_u.mutation.ResetSalePrice()
	_u.mutation.SetSalePrice(v)
	return _u
}

// SetNillableSalePrice sets the "sale_price" field if the given value is not nil.
func (_u *RecipeSheetUpdate) SetNillableSalePrice(v *float64) *RecipeSheetUpdate {
	if v != nil {
		_u.SetSalePrice(*v)
	}
	return _u
}

// AddSalePrice adds value to the "sale_price" field.
func (_u *RecipeSheetUpdate) AddSalePrice(v float64) *RecipeSheetUpdate {
	_u.mutation.AddSalePrice(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecipeSheetUpdate) SetUpdatedAt(v time.Time) *RecipeSheetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RecipeSheetMutation object of the builder.
func (_u *RecipeSheetUpdate) Mutation() *RecipeSheetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecipeSheetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecipeSheetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecipeSheetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecipeSheetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecipeSheetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recipesheet.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecipeSheetUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := recipesheet.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RecipeSheet.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Portions(); ok {
		if err := recipesheet.PortionsValidator(v); err != nil {
			return &ValidationError{Name: "portions", err: fmt.Errorf(`ent: validator failed for field "RecipeSheet.portions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := recipesheet.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "RecipeSheet.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cost(); ok {
		if err := recipesheet.CostValidator(v); err != nil {
			return &ValidationError{Name: "cost", err: fmt.Errorf(`ent: validator failed for field "RecipeSheet.cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SalePrice(); ok {
		if err := recipesheet.SalePriceValidator(v); err != nil {
			return &ValidationError{Name: "sale_price", err: fmt.Errorf(`ent: validator failed for field "RecipeSheet.sale_price": %w`, err)}
		}
	}
	return nil
}

func (_u *RecipeSheetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recipesheet.Table, recipesheet.Columns, sqlgraph.NewFieldSpec(recipesheet.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(recipesheet.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Portions(); ok {
		_spec.SetField(recipesheet.FieldPortions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPortions(); ok {
		_spec.AddField(recipesheet.FieldPortions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(recipesheet.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Lines(); ok {
		_spec.SetField(recipesheet.FieldLines, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLines(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recipesheet.FieldLines, value)
		})
	}
	if _u.mutation.LinesCleared() {
		_spec.ClearField(recipesheet.FieldLines, field.TypeJSON)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(recipesheet.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(recipesheet.FieldInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(recipesheet.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(recipesheet.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SalePrice(); ok {
		_spec.SetField(recipesheet.FieldSalePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSalePrice(); ok {
		_spec.AddField(recipesheet.FieldSalePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recipesheet.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recipesheet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecipeSheetUpdateOne is the builder for updating a single RecipeSheet entity.
type RecipeSheetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecipeSheetMutation
}

// SetName sets the "name" field.
func (_u *RecipeSheetUpdateOne) SetName(v string) *RecipeSheetUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RecipeSheetUpdateOne) SetNillableName(v *string) *RecipeSheetUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPortions sets the "portions" field.
func (_u *RecipeSheetUpdateOne) SetPortions(v int) *RecipeSheetUpdateOne {
	_u.mutation.ResetPortions()
	_u.mutation.SetPortions(v)
	return _u
}

// SetNillablePortions sets the "portions" field if the given value is not nil.
func (_u *RecipeSheetUpdateOne) SetNillablePortions(v *int) *RecipeSheetUpdateOne {
	if v != nil {
		_u.SetPortions(*v)
	}
	return _u
}

// AddPortions adds value to the "portions" field.
func (_u *RecipeSheetUpdateOne) AddPortions(v int) *RecipeSheetUpdateOne {
	_u.mutation.AddPortions(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *RecipeSheetUpdateOne) SetCategory(v recipesheet.Category) *RecipeSheetUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RecipeSheetUpdateOne) SetNillableCategory(v *recipesheet.Category) *RecipeSheetUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLines sets the "lines" field.
func (_u *RecipeSheetUpdateOne) SetLines(v []entity.RecipeLine) *RecipeSheetUpdateOne {
	_u.mutation.SetLines(v)
	return _u
}

// AppendLines appends value to the "lines" field.
func (_u *RecipeSheetUpdateOne) AppendLines(v []entity.RecipeLine) *RecipeSheetUpdateOne {
	_u.mutation.AppendLines(v)
	return _u
}

// ClearLines clears the value of the "lines" field.
func (_u *RecipeSheetUpdateOne) ClearLines() *RecipeSheetUpdateOne {
	_u.mutation.ClearLines()
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *RecipeSheetUpdateOne) SetInstructions(v string) *RecipeSheetUpdateOne {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *RecipeSheetUpdateOne) SetNillableInstructions(v *string) *RecipeSheetUpdateOne {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *RecipeSheetUpdateOne) ClearInstructions() *RecipeSheetUpdateOne {
	_u.mutation.ClearInstructions()
	return _u
}

// SetCost sets the "cost" field.
func (_u *RecipeSheetUpdateOne) SetCost(v float64) *RecipeSheetUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *RecipeSheetUpdateOne) SetNillableCost(v *float64) *RecipeSheetUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *RecipeSheetUpdateOne) AddCost(v float64) *RecipeSheetUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// SetSalePrice sets the "sale_price" field.
func (_u *RecipeSheetUpdateOne) SetSalePrice(v float64) *RecipeSheetUpdateOne {
	_u.mutation.ResetSalePrice()
	_u.mutation.SetSalePrice(v)
	return _u
}

// SetNillableSalePrice sets the "sale_price" field if the given value is not nil.
func (_u *RecipeSheetUpdateOne) SetNillableSalePrice(v *float64) *RecipeSheetUpdateOne {
	if v != nil {
		_u.SetSalePrice(*v)
	}
	return _u
}

// AddSalePrice adds value to the "sale_price" field.
func (_u *RecipeSheetUpdateOne) AddSalePrice(v float64) *RecipeSheetUpdateOne {
	_u.mutation.AddSalePrice(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecipeSheetUpdateOne) SetUpdatedAt(v time.Time) *RecipeSheetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RecipeSheetMutation object of the builder.
func (_u *RecipeSheetUpdateOne) Mutation() *RecipeSheetMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecipeSheetUpdate builder.
func (_u *RecipeSheetUpdateOne) Where(ps ...predicate.RecipeSheet) *RecipeSheetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecipeSheetUpdateOne) Select(field string, fields ...string) *RecipeSheetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecipeSheet entity.
func (_u *RecipeSheetUpdateOne) Save(ctx context.Context) (*RecipeSheet, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecipeSheetUpdateOne) SaveX(ctx context.Context) *RecipeSheet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecipeSheetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecipeSheetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecipeSheetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recipesheet.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecipeSheetUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := recipesheet.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RecipeSheet.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Portions(); ok {
		if err := recipesheet.PortionsValidator(v); err != nil {
			return &ValidationError{Name: "portions", err: fmt.Errorf(`ent: validator failed for field "RecipeSheet.portions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := recipesheet.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "RecipeSheet.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cost(); ok {
		if err := recipesheet.CostValidator(v); err != nil {
			return &ValidationError{Name: "cost", err: fmt.Errorf(`ent: validator failed for field "RecipeSheet.cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SalePrice(); ok {
		if err := recipesheet.SalePriceValidator(v); err != nil {
			return &ValidationError{Name: "sale_price", err: fmt.Errorf(`ent: validator failed for field "RecipeSheet.sale_price": %w`, err)}
		}
	}
	return nil
}

func (_u *RecipeSheetUpdateOne) sqlSave(ctx context.Context) (_node *RecipeSheet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recipesheet.Table, recipesheet.Columns, sqlgraph.NewFieldSpec(recipesheet.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecipeSheet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recipesheet.FieldID)
		for _, f := range fields {
			if !recipesheet.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recipesheet.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(recipesheet.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Portions(); ok {
		_spec.SetField(recipesheet.FieldPortions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPortions(); ok {
		_spec.AddField(recipesheet.FieldPortions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(recipesheet.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Lines(); ok {
		_spec.SetField(recipesheet.FieldLines, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLines(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recipesheet.FieldLines, value)
		})
	}
	if _u.mutation.LinesCleared() {
		_spec.ClearField(recipesheet.FieldLines, field.TypeJSON)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(recipesheet.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(recipesheet.FieldInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(recipesheet.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(recipesheet.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SalePrice(); ok {
		_spec.SetField(recipesheet.FieldSalePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSalePrice(); ok {
		_spec.AddField(recipesheet.FieldSalePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recipesheet.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &RecipeSheet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recipesheet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
