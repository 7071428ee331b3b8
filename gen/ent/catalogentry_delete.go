// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cuisinehq/mercuriale/gen/ent/catalogentry"
	"github.com/cuisinehq/mercuriale/gen/ent/predicate"
)

// CatalogEntryDelete is the builder for deleting a CatalogEntry entity.
type CatalogEntryDelete struct {
	config
	hooks    []Hook
	mutation *CatalogEntryMutation
}

// Where appends a list predicates to the CatalogEntryDelete builder.
func (_d *CatalogEntryDelete) Where(ps ...predicate.CatalogEntry) *CatalogEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CatalogEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CatalogEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CatalogEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(catalogentry.Table, sqlgraph.NewFieldSpec(catalogentry.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CatalogEntryDeleteOne is the builder for deleting a single CatalogEntry entity.
type CatalogEntryDeleteOne struct {
	_d *CatalogEntryDelete
}

// Where appends a list predicates to the CatalogEntryDelete builder.
func (_d *CatalogEntryDeleteOne) Where(ps ...predicate.CatalogEntry) *CatalogEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CatalogEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{catalogentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CatalogEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
