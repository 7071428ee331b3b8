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
	"github.com/cuisinehq/mercuriale/gen/ent/catalogentry"
	"github.com/cuisinehq/mercuriale/gen/ent/predicate"
)

// CatalogEntryUpdate is the builder for updating CatalogEntry entities.
type CatalogEntryUpdate struct {
	config
	hooks    []Hook
	mutation *CatalogEntryMutation
}

// Where appends a list predicates to the CatalogEntryUpdate builder.
func (_u *CatalogEntryUpdate) Where(ps ...predicate.CatalogEntry) *CatalogEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CatalogEntryUpdate) SetName(v string) *CatalogEntryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableName(v *string) *CatalogEntryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *CatalogEntryUpdate) SetUnit(v string) *CatalogEntryUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableUnit(v *string) *CatalogEntryUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *CatalogEntryUpdate) SetUnitPrice(v float64) *CatalogEntryUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableUnitPrice(v *float64) *CatalogEntryUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *CatalogEntryUpdate) AddUnitPrice(v float64) *CatalogEntryUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetAllergens sets the "allergens" field.
func (_u *CatalogEntryUpdate) SetAllergens(v []string) *CatalogEntryUpdate {
	_u.mutation.SetAllergens(v)
	return _u
}

// AppendAllergens appends value to the "allergens" field.
func (_u *CatalogEntryUpdate) AppendAllergens(v []string) *CatalogEntryUpdate {
	_u.mutation.AppendAllergens(v)
	return _u
}

// ClearAllergens clears the value of the "allergens" field.
func (_u *CatalogEntryUpdate) ClearAllergens() *CatalogEntryUpdate {
	_u.mutation.ClearAllergens()
	return _u
}

// SetCurrentStock sets the "current_stock" field.
func (_u *CatalogEntryUpdate) SetCurrentStock(v float64) *CatalogEntryUpdate {
	_u.mutation.ResetCurrentStock()
	_u.mutation.SetCurrentStock(v)
	return _u
}

// SetNillableCurrentStock sets the "current_stock" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableCurrentStock(v *float64) *CatalogEntryUpdate {
	if v != nil {
		_u.SetCurrentStock(*v)
	}
	return _u
}

// AddCurrentStock adds value to the "current_stock" field.
func (_u *CatalogEntryUpdate) AddCurrentStock(v float64) *CatalogEntryUpdate {
	_u.mutation.AddCurrentStock(v)
	return _u
}

// SetMinStock sets the "min_stock" field.
func (_u *CatalogEntryUpdate) SetMinStock(v float64) *CatalogEntryUpdate {
	_u.mutation.ResetMinStock()
	_u.mutation.SetMinStock(v)
	return _u
}

// SetNillableMinStock sets the "min_stock" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableMinStock(v *float64) *CatalogEntryUpdate {
	if v != nil {
		_u.SetMinStock(*v)
	}
	return _u
}

// AddMinStock adds value to the "min_stock" field.
func (_u *CatalogEntryUpdate) AddMinStock(v float64) *CatalogEntryUpdate {
	_u.mutation.AddMinStock(v)
	return _u
}

// SetCriticalStock sets the "critical_stock" field.
func (_u *CatalogEntryUpdate) SetCriticalStock(v float64) *CatalogEntryUpdate {
	_u.mutation.ResetCriticalStock()
	_u.mutation.SetCriticalStock(v)
	return _u
}

// SetNillableCriticalStock sets the "critical_stock" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableCriticalStock(v *float64) *CatalogEntryUpdate {
	if v != nil {
		_u.SetCriticalStock(*v)
	}
	return _u
}

// AddCriticalStock adds value to the "critical_stock" field.
func (_u *CatalogEntryUpdate) AddCriticalStock(v float64) *CatalogEntryUpdate {
	_u.mutation.AddCriticalStock(v)
	return _u
}

// SetMaxStock sets the "max_stock" field.
func (_u *CatalogEntryUpdate) SetMaxStock(v float64) *CatalogEntryUpdate {
	_u.mutation.ResetMaxStock()
	_u.mutation.SetMaxStock(v)
	return _u
}

// SetNillableMaxStock sets the "max_stock" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableMaxStock(v *float64) *CatalogEntryUpdate {
	if v != nil {
		_u.SetMaxStock(*v)
	}
	return _u
}

// AddMaxStock adds value to the "max_stock" field.
func (_u *CatalogEntryUpdate) AddMaxStock(v float64) *CatalogEntryUpdate {
	_u.mutation.AddMaxStock(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CatalogEntryUpdate) SetUpdatedAt(v time.Time) *CatalogEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CatalogEntryMutation object of the builder.
func (_u *CatalogEntryUpdate) Mutation() *CatalogEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CatalogEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CatalogEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CatalogEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CatalogEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CatalogEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := catalogentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CatalogEntryUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := catalogentry.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := catalogentry.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := catalogentry.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStock(); ok {
		if err := catalogentry.CurrentStockValidator(v); err != nil {
			return &ValidationError{Name: "current_stock", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.current_stock": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinStock(); ok {
		if err := catalogentry.MinStockValidator(v); err != nil {
			return &ValidationError{Name: "min_stock", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.min_stock": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CriticalStock(); ok {
		if err := catalogentry.CriticalStockValidator(v); err != nil {
			return &ValidationError{Name: "critical_stock", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.critical_stock": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxStock(); ok {
		if err := catalogentry.MaxStockValidator(v); err != nil {
			return &ValidationError{Name: "max_stock", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.max_stock": %w`, err)}
		}
	}
	return nil
}

func (_u *CatalogEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(catalogentry.Table, catalogentry.Columns, sqlgraph.NewFieldSpec(catalogentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(catalogentry.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(catalogentry.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(catalogentry.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(catalogentry.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Allergens(); ok {
		_spec.SetField(catalogentry.FieldAllergens, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergens(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, catalogentry.FieldAllergens, value)
		})
	}
	if _u.mutation.AllergensCleared() {
		_spec.ClearField(catalogentry.FieldAllergens, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentStock(); ok {
		_spec.SetField(catalogentry.FieldCurrentStock, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentStock(); ok {
		_spec.AddField(catalogentry.FieldCurrentStock, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MinStock(); ok {
		_spec.SetField(catalogentry.FieldMinStock, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinStock(); ok {
		_spec.AddField(catalogentry.FieldMinStock, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CriticalStock(); ok {
		_spec.SetField(catalogentry.FieldCriticalStock, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCriticalStock(); ok {
		_spec.AddField(catalogentry.FieldCriticalStock, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxStock(); ok {
		_spec.SetField(catalogentry.FieldMaxStock, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxStock(); ok {
		_spec.AddField(catalogentry.FieldMaxStock, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(catalogentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{catalogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CatalogEntryUpdateOne is the builder for updating a single CatalogEntry entity.
type CatalogEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CatalogEntryMutation
}

// SetName sets the "name" field.
func (_u *CatalogEntryUpdateOne) SetName(v string) *CatalogEntryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableName(v *string) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *CatalogEntryUpdateOne) SetUnit(v string) *CatalogEntryUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableUnit(v *string) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *CatalogEntryUpdateOne) SetUnitPrice(v float64) *CatalogEntryUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableUnitPrice(v *float64) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *CatalogEntryUpdateOne) AddUnitPrice(v float64) *CatalogEntryUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetAllergens sets the "allergens" field.
func (_u *CatalogEntryUpdateOne) SetAllergens(v []string) *CatalogEntryUpdateOne {
	_u.mutation.SetAllergens(v)
	return _u
}

// AppendAllergens appends value to the "allergens" field.
func (_u *CatalogEntryUpdateOne) AppendAllergens(v []string) *CatalogEntryUpdateOne {
	_u.mutation.AppendAllergens(v)
	return _u
}

// ClearAllergens clears the value of the "allergens" field.
func (_u *CatalogEntryUpdateOne) ClearAllergens() *CatalogEntryUpdateOne {
	_u.mutation.ClearAllergens()
	return _u
}

// SetCurrentStock sets the "current_stock" field.
func (_u *CatalogEntryUpdateOne) SetCurrentStock(v float64) *CatalogEntryUpdateOne {
	_u.mutation.ResetCurrentStock()
	_u.mutation.SetCurrentStock(v)
	return _u
}

// SetNillableCurrentStock sets the "current_stock" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableCurrentStock(v *float64) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetCurrentStock(*v)
	}
	return _u
}

// AddCurrentStock adds value to the "current_stock" field.
func (_u *CatalogEntryUpdateOne) AddCurrentStock(v float64) *CatalogEntryUpdateOne {
	_u.mutation.AddCurrentStock(v)
	return _u
}

// SetMinStock sets the "min_stock" field.
func (_u *CatalogEntryUpdateOne) SetMinStock(v float64) *CatalogEntryUpdateOne {
	_u.mutation.ResetMinStock()
	_u.mutation.SetMinStock(v)
	return _u
}

// SetNillableMinStock sets the "min_stock" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableMinStock(v *float64) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetMinStock(*v)
	}
	return _u
}

// AddMinStock adds value to the "min_stock" field.
func (_u *CatalogEntryUpdateOne) AddMinStock(v float64) *CatalogEntryUpdateOne {
	_u.mutation.AddMinStock(v)
	return _u
}

// SetCriticalStock sets the "critical_stock" field.
func (_u *CatalogEntryUpdateOne) SetCriticalStock(v float64) *CatalogEntryUpdateOne {
	_u.mutation.ResetCriticalStock()
	_u.mutation.SetCriticalStock(v)
	return _u
}

// SetNillableCriticalStock sets the "critical_stock" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableCriticalStock(v *float64) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetCriticalStock(*v)
	}
	return _u
}

// AddCriticalStock adds value to the "critical_stock" field.
func (_u *CatalogEntryUpdateOne) AddCriticalStock(v float64) *CatalogEntryUpdateOne {
	_u.mutation.AddCriticalStock(v)
	return _u
}

// SetMaxStock sets the "max_stock" field.
func (_u *CatalogEntryUpdateOne) SetMaxStock(v float64) *CatalogEntryUpdateOne {
	_u.mutation.ResetMaxStock()
	_u.mutation.SetMaxStock(v)
	return _u
}

// SetNillableMaxStock sets the "max_stock" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableMaxStock(v *float64) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetMaxStock(*v)
	}
	return _u
}

// AddMaxStock adds value to the "max_stock" field.
func (_u *CatalogEntryUpdateOne) AddMaxStock(v float64) *CatalogEntryUpdateOne {
	_u.mutation.AddMaxStock(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CatalogEntryUpdateOne) SetUpdatedAt(v time.Time) *CatalogEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CatalogEntryMutation object of the builder.
func (_u *CatalogEntryUpdateOne) Mutation() *CatalogEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the CatalogEntryUpdate builder.
func (_u *CatalogEntryUpdateOne) Where(ps ...predicate.CatalogEntry) *CatalogEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CatalogEntryUpdateOne) Select(field string, fields ...string) *CatalogEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CatalogEntry entity.
func (_u *CatalogEntryUpdateOne) Save(ctx context.Context) (*CatalogEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CatalogEntryUpdateOne) SaveX(ctx context.Context) *CatalogEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CatalogEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CatalogEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CatalogEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := catalogentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CatalogEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := catalogentry.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := catalogentry.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := catalogentry.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStock(); ok {
		if err := catalogentry.CurrentStockValidator(v); err != nil {
			return &ValidationError{Name: "current_stock", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.current_stock": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinStock(); ok {
		if err := catalogentry.MinStockValidator(v); err != nil {
			return &ValidationError{Name: "min_stock", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.min_stock": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CriticalStock(); ok {
		if err := catalogentry.CriticalStockValidator(v); err != nil {
			return &ValidationError{Name: "critical_stock", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.critical_stock": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxStock(); ok {
		if err := catalogentry.MaxStockValidator(v); err != nil {
			return &ValidationError{Name: "max_stock", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.max_stock": %w`, err)}
		}
	}
	return nil
}

func (_u *CatalogEntryUpdateOne) sqlSave(ctx context.Context) (_node *CatalogEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(catalogentry.Table, catalogentry.Columns, sqlgraph.NewFieldSpec(catalogentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CatalogEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, catalogentry.FieldID)
		for _, f := range fields {
			if !catalogentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != catalogentry.FieldID {
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
		_spec.SetField(catalogentry.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(catalogentry.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(catalogentry.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(catalogentry.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Allergens(); ok {
		_spec.SetField(catalogentry.FieldAllergens, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergens(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, catalogentry.FieldAllergens, value)
		})
	}
	if _u.mutation.AllergensCleared() {
		_spec.ClearField(catalogentry.FieldAllergens, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentStock(); ok {
		_spec.SetField(catalogentry.FieldCurrentStock, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentStock(); ok {
		_spec.AddField(catalogentry.FieldCurrentStock, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MinStock(); ok {
		_spec.SetField(catalogentry.FieldMinStock, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinStock(); ok {
		_spec.AddField(catalogentry.FieldMinStock, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CriticalStock(); ok {
		_spec.SetField(catalogentry.FieldCriticalStock, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCriticalStock(); ok {
		_spec.AddField(catalogentry.FieldCriticalStock, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxStock(); ok {
		_spec.SetField(catalogentry.FieldMaxStock, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxStock(); ok {
		_spec.AddField(catalogentry.FieldMaxStock, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(catalogentry.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CatalogEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{catalogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
