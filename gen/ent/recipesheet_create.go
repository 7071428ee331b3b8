// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cuisinehq/mercuriale/gen/ent/recipesheet"
	"github.com/cuisinehq/mercuriale/internal/entity"
	"github.com/google/uuid"
)

// RecipeSheetCreate is the builder for creating a RecipeSheet entity.
type RecipeSheetCreate struct {
	config
	mutation *RecipeSheetMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *RecipeSheetCreate) SetName(v string) *RecipeSheetCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPortions sets the "portions" field.
func (_c *RecipeSheetCreate) SetPortions(v int) *RecipeSheetCreate {
	_c.mutation.SetPortions(v)
	return _c
}

// SetNillablePortions sets the "portions" field if the given value is not nil.
func (_c *RecipeSheetCreate) SetNillablePortions(v *int) *RecipeSheetCreate {
	if v != nil {
		_c.SetPortions(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *RecipeSheetCreate) SetCategory(v recipesheet.Category) *RecipeSheetCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *RecipeSheetCreate) SetNillableCategory(v *recipesheet.Category) *RecipeSheetCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetLines sets the "lines" field.
func (_c *RecipeSheetCreate) SetLines(v []entity.RecipeLine) *RecipeSheetCreate {
	_c.mutation.SetLines(v)
	return _c
}

// SetInstructions sets the "instructions" field.
func (_c *RecipeSheetCreate) SetInstructions(v string) *RecipeSheetCreate {
	_c.mutation.SetInstructions(v)
	return _c
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_c *RecipeSheetCreate) SetNillableInstructions(v *string) *RecipeSheetCreate {
	if v != nil {
		_c.SetInstructions(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *RecipeSheetCreate) SetCost(v float64) *RecipeSheetCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *RecipeSheetCreate) SetNillableCost(v *float64) *RecipeSheetCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetSalePrice sets the "sale_price" field.
func (_c *RecipeSheetCreate) SetSalePrice(v float64) *RecipeSheetCreate {
	_c.mutation.SetSalePrice(v)
	return _c
}

// SetNillableSalePrice sets the "sale_price" field if the given value is not nil.
func (_c *RecipeSheetCreate) SetNillableSalePrice(v *float64) *RecipeSheetCreate {
	if v != nil {
		_c.SetSalePrice(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecipeSheetCreate) SetCreatedAt(v time.Time) *RecipeSheetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecipeSheetCreate) SetNillableCreatedAt(v *time.Time) *RecipeSheetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RecipeSheetCreate) SetUpdatedAt(v time.Time) *RecipeSheetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RecipeSheetCreate) SetNillableUpdatedAt(v *time.Time) *RecipeSheetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecipeSheetCreate) SetID(v uuid.UUID) *RecipeSheetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RecipeSheetCreate) SetNillableID(v *uuid.UUID) *RecipeSheetCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RecipeSheetMutation object of the builder.
func (_c *RecipeSheetCreate) Mutation() *RecipeSheetMutation {
	return _c.mutation
}

// Save creates the RecipeSheet in the database.
func (_c *RecipeSheetCreate) Save(ctx context.Context) (*RecipeSheet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecipeSheetCreate) SaveX(ctx context.Context) *RecipeSheet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecipeSheetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecipeSheetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecipeSheetCreate) defaults() {
	if _, ok := _c.mutation.Portions(); !ok {
		v := recipesheet.DefaultPortions
		_c.mutation.SetPortions(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := recipesheet.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Cost(); !ok {
		v := recipesheet.DefaultCost
		_c.mutation.SetCost(v)
	}
	if _, ok := _c.mutation.SalePrice(); !ok {
		v := recipesheet.DefaultSalePrice
		_c.mutation.SetSalePrice(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recipesheet.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := recipesheet.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := recipesheet.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecipeSheetCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "RecipeSheet.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := recipesheet.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RecipeSheet.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Portions(); !ok {
		return &ValidationError{Name: "portions", err: errors.New(`ent: missing required field "RecipeSheet.portions"`)}
	}
	if v, ok := _c.mutation.Portions(); ok {
		if err := recipesheet.PortionsValidator(v); err != nil {
			return &ValidationError{Name: "portions", err: fmt.Errorf(`ent: validator failed for field "RecipeSheet.portions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "RecipeSheet.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := recipesheet.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "RecipeSheet.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "RecipeSheet.cost"`)}
	}
	if v, ok := _c.mutation.Cost(); ok {
		if err := recipesheet.CostValidator(v); err != nil {
			return &ValidationError{Name: "cost", err: fmt.Errorf(`ent: validator failed for field "RecipeSheet.cost": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SalePrice(); !ok {
		return &ValidationError{Name: "sale_price", err: errors.New(`ent: missing required field "RecipeSheet.sale_price"`)}
	}
	if v, ok := _c.mutation.SalePrice(); ok {
		if err := recipesheet.SalePriceValidator(v); err != nil {
			return &ValidationError{Name: "sale_price", err: fmt.Errorf(`ent: validator failed for field "RecipeSheet.sale_price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RecipeSheet.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RecipeSheet.updated_at"`)}
	}
	return nil
}

func (_c *RecipeSheetCreate) sqlSave(ctx context.Context) (*RecipeSheet, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecipeSheetCreate) createSpec() (*RecipeSheet, *sqlgraph.CreateSpec) {
	var (
		_node = &RecipeSheet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recipesheet.Table, sqlgraph.NewFieldSpec(recipesheet.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(recipesheet.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Portions(); ok {
		_spec.SetField(recipesheet.FieldPortions, field.TypeInt, value)
		_node.Portions = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(recipesheet.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Lines(); ok {
		_spec.SetField(recipesheet.FieldLines, field.TypeJSON, value)
		_node.Lines = value
	}
	if value, ok := _c.mutation.Instructions(); ok {
		_spec.SetField(recipesheet.FieldInstructions, field.TypeString, value)
		_node.Instructions = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(recipesheet.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.SalePrice(); ok {
		_spec.SetField(recipesheet.FieldSalePrice, field.TypeFloat64, value)
		_node.SalePrice = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recipesheet.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(recipesheet.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// RecipeSheetCreateBulk is the builder for creating many RecipeSheet entities in bulk.
type RecipeSheetCreateBulk struct {
	config
	err      error
	builders []*RecipeSheetCreate
}

// Save creates the RecipeSheet entities in the database.
func (_c *RecipeSheetCreateBulk) Save(ctx context.Context) ([]*RecipeSheet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecipeSheet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecipeSheetMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RecipeSheetCreateBulk) SaveX(ctx context.Context) []*RecipeSheet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecipeSheetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecipeSheetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
