// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cuisinehq/mercuriale/gen/ent/stockmovement"
	"github.com/google/uuid"
)

// StockMovementCreate is the builder for creating a StockMovement entity.
type StockMovementCreate struct {
	config
	mutation *StockMovementMutation
	hooks    []Hook
}

// SetEntryID sets the "entry_id" field.
func (_c *StockMovementCreate) SetEntryID(v uuid.UUID) *StockMovementCreate {
	_c.mutation.SetEntryID(v)
	return _c
}

// SetDirection sets the "direction" field.
func (_c *StockMovementCreate) SetDirection(v stockmovement.Direction) *StockMovementCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *StockMovementCreate) SetQuantity(v float64) *StockMovementCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *StockMovementCreate) SetReason(v string) *StockMovementCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *StockMovementCreate) SetNillableReason(v *string) *StockMovementCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StockMovementCreate) SetCreatedAt(v time.Time) *StockMovementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StockMovementCreate) SetNillableCreatedAt(v *time.Time) *StockMovementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StockMovementCreate) SetID(v uuid.UUID) *StockMovementCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StockMovementCreate) SetNillableID(v *uuid.UUID) *StockMovementCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the StockMovementMutation object of the builder.
func (_c *StockMovementCreate) Mutation() *StockMovementMutation {
	return _c.mutation
}

// Save creates the StockMovement in the database.
func (_c *StockMovementCreate) Save(ctx context.Context) (*StockMovement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StockMovementCreate) SaveX(ctx context.Context) *StockMovement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StockMovementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StockMovementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StockMovementCreate) defaults() {
	if _, ok := _c.mutation.Reason(); !ok {
		v := stockmovement.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stockmovement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := stockmovement.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StockMovementCreate) check() error {
	if _, ok := _c.mutation.EntryID(); !ok {
		return &ValidationError{Name: "entry_id", err: errors.New(`ent: missing required field "StockMovement.entry_id"`)}
	}
	if _, ok := _c.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "StockMovement.direction"`)}
	}
	if v, ok := _c.mutation.Direction(); ok {
		if err := stockmovement.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "StockMovement.direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "StockMovement.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := stockmovement.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "StockMovement.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "StockMovement.reason"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StockMovement.created_at"`)}
	}
	return nil
}

func (_c *StockMovementCreate) sqlSave(ctx context.Context) (*StockMovement, error) {
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

func (_c *StockMovementCreate) createSpec() (*StockMovement, *sqlgraph.CreateSpec) {
	var (
		_node = &StockMovement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stockmovement.Table, sqlgraph.NewFieldSpec(stockmovement.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.EntryID(); ok {
		_spec.SetField(stockmovement.FieldEntryID, field.TypeUUID, value)
		_node.EntryID = value
	}
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(stockmovement.FieldDirection, field.TypeEnum, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(stockmovement.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(stockmovement.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stockmovement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StockMovementCreateBulk is the builder for creating many StockMovement entities in bulk.
type StockMovementCreateBulk struct {
	config
	err      error
	builders []*StockMovementCreate
}

// Save creates the StockMovement entities in the database.
func (_c *StockMovementCreateBulk) Save(ctx context.Context) ([]*StockMovement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StockMovement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StockMovementMutation)
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
func (_c *StockMovementCreateBulk) SaveX(ctx context.Context) []*StockMovement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StockMovementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StockMovementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
