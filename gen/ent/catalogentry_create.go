// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cuisinehq/mercuriale/gen/ent/catalogentry"
	"github.com/google/uuid"
)

// CatalogEntryCreate is the builder for creating a CatalogEntry entity.
type CatalogEntryCreate struct {
	config
	mutation *CatalogEntryMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *CatalogEntryCreate) SetName(v string) *CatalogEntryCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *CatalogEntryCreate) SetUnit(v string) *CatalogEntryCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *CatalogEntryCreate) SetUnitPrice(v float64) *CatalogEntryCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetAllergens sets the "allergens" field.
func (_c *CatalogEntryCreate) SetAllergens(v []string) *CatalogEntryCreate {
	_c.mutation.SetAllergens(v)
	return _c
}

// SetCurrentStock sets the "current_stock" field.
func (_c *CatalogEntryCreate) SetCurrentStock(v float64) *CatalogEntryCreate {
	_c.mutation.SetCurrentStock(v)
	return _c
}

// SetNillableCurrentStock sets the "current_stock" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableCurrentStock(v *float64) *CatalogEntryCreate {
	if v != nil {
		_c.SetCurrentStock(*v)
	}
	return _c
}

// SetMinStock sets the "min_stock" field.
func (_c *CatalogEntryCreate) SetMinStock(v float64) *CatalogEntryCreate {
	_c.mutation.SetMinStock(v)
	return _c
}

// SetNillableMinStock sets the "min_stock" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableMinStock(v *float64) *CatalogEntryCreate {
	if v != nil {
		_c.SetMinStock(*v)
	}
	return _c
}

// SetCriticalStock sets the "critical_stock" field.
func (_c *CatalogEntryCreate) SetCriticalStock(v float64) *CatalogEntryCreate {
	_c.mutation.SetCriticalStock(v)
	return _c
}

// SetNillableCriticalStock sets the "critical_stock" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableCriticalStock(v *float64) *CatalogEntryCreate {
	if v != nil {
		_c.SetCriticalStock(*v)
	}
	return _c
}

// SetMaxStock sets the "max_stock" field.
func (_c *CatalogEntryCreate) SetMaxStock(v float64) *CatalogEntryCreate {
	_c.mutation.SetMaxStock(v)
	return _c
}

// SetNillableMaxStock sets the "max_stock" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableMaxStock(v *float64) *CatalogEntryCreate {
	if v != nil {
		_c.SetMaxStock(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CatalogEntryCreate) SetCreatedAt(v time.Time) *CatalogEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableCreatedAt(v *time.Time) *CatalogEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CatalogEntryCreate) SetUpdatedAt(v time.Time) *CatalogEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableUpdatedAt(v *time.Time) *CatalogEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CatalogEntryCreate) SetID(v uuid.UUID) *CatalogEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableID(v *uuid.UUID) *CatalogEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CatalogEntryMutation object of the builder.
func (_c *CatalogEntryCreate) Mutation() *CatalogEntryMutation {
	return _c.mutation
}

// Save creates the CatalogEntry in the database.
func (_c *CatalogEntryCreate) Save(ctx context.Context) (*CatalogEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CatalogEntryCreate) SaveX(ctx context.Context) *CatalogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CatalogEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CatalogEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CatalogEntryCreate) defaults() {
	if _, ok := _c.mutation.CurrentStock(); !ok {
		v := catalogentry.DefaultCurrentStock
		_c.mutation.SetCurrentStock(v)
	}
	if _, ok := _c.mutation.MinStock(); !ok {
		v := catalogentry.DefaultMinStock
		_c.mutation.SetMinStock(v)
	}
	if _, ok := _c.mutation.CriticalStock(); !ok {
		v := catalogentry.DefaultCriticalStock
		_c.mutation.SetCriticalStock(v)
	}
	if _, ok := _c.mutation.MaxStock(); !ok {
		v := catalogentry.DefaultMaxStock
		_c.mutation.SetMaxStock(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := catalogentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := catalogentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := catalogentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CatalogEntryCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "CatalogEntry.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := catalogentry.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "CatalogEntry.unit"`)}
	}
	if v, ok := _c.mutation.Unit(); ok {
		if err := catalogentry.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.unit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`ent: missing required field "CatalogEntry.unit_price"`)}
	}
	if v, ok := _c.mutation.UnitPrice(); ok {
		if err := catalogentry.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.unit_price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentStock(); !ok {
		return &ValidationError{Name: "current_stock", err: errors.New(`ent: missing required field "CatalogEntry.current_stock"`)}
	}
	if v, ok := _c.mutation.CurrentStock(); ok {
		if err := catalogentry.CurrentStockValidator(v); err != nil {
			return &ValidationError{Name: "current_stock", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.current_stock": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinStock(); !ok {
		return &ValidationError{Name: "min_stock", err: errors.New(`ent: missing required field "CatalogEntry.min_stock"`)}
	}
	if v, ok := _c.mutation.MinStock(); ok {
		if err := catalogentry.MinStockValidator(v); err != nil {
			return &ValidationError{Name: "min_stock", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.min_stock": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CriticalStock(); !ok {
		return &ValidationError{Name: "critical_stock", err: errors.New(`ent: missing required field "CatalogEntry.critical_stock"`)}
	}
	if v, ok := _c.mutation.CriticalStock(); ok {
		if err := catalogentry.CriticalStockValidator(v); err != nil {
			return &ValidationError{Name: "critical_stock", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.critical_stock": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxStock(); !ok {
		return &ValidationError{Name: "max_stock", err: errors.New(`ent: missing required field "CatalogEntry.max_stock"`)}
	}
	if v, ok := _c.mutation.MaxStock(); ok {
		if err := catalogentry.MaxStockValidator(v); err != nil {
			return &ValidationError{Name: "max_stock", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.max_stock": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CatalogEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CatalogEntry.updated_at"`)}
	}
	return nil
}

func (_c *CatalogEntryCreate) sqlSave(ctx context.Context) (*CatalogEntry, error) {
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

func (_c *CatalogEntryCreate) createSpec() (*CatalogEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &CatalogEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(catalogentry.Table, sqlgraph.NewFieldSpec(catalogentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(catalogentry.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(catalogentry.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(catalogentry.FieldUnitPrice, field.TypeFloat64, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.Allergens(); ok {
		_spec.SetField(catalogentry.FieldAllergens, field.TypeJSON, value)
		_node.Allergens = value
	}
	if value, ok := _c.mutation.CurrentStock(); ok {
		_spec.SetField(catalogentry.FieldCurrentStock, field.TypeFloat64, value)
		_node.CurrentStock = value
	}
	if value, ok := _c.mutation.MinStock(); ok {
		_spec.SetField(catalogentry.FieldMinStock, field.TypeFloat64, value)
		_node.MinStock = value
	}
	if value, ok := _c.mutation.CriticalStock(); ok {
		_spec.SetField(catalogentry.FieldCriticalStock, field.TypeFloat64, value)
		_node.CriticalStock = value
	}
	if value, ok := _c.mutation.MaxStock(); ok {
		_spec.SetField(catalogentry.FieldMaxStock, field.TypeFloat64, value)
		_node.MaxStock = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(catalogentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(catalogentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CatalogEntryCreateBulk is the builder for creating many CatalogEntry entities in bulk.
type CatalogEntryCreateBulk struct {
	config
	err      error
	builders []*CatalogEntryCreate
}

// Save creates the CatalogEntry entities in the database.
func (_c *CatalogEntryCreateBulk) Save(ctx context.Context) ([]*CatalogEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CatalogEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CatalogEntryMutation)
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
func (_c *CatalogEntryCreateBulk) SaveX(ctx context.Context) []*CatalogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CatalogEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CatalogEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
