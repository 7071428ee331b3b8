// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cuisinehq/mercuriale/gen/ent/predicate"
	"github.com/cuisinehq/mercuriale/gen/ent/recipesheet"
)

// RecipeSheetDelete is the builder for deleting a RecipeSheet entity.
type RecipeSheetDelete struct {
	config
	hooks    []Hook
	mutation *RecipeSheetMutation
}

// Where appends a list predicates to the RecipeSheetDelete builder.
func (_d *RecipeSheetDelete) Where(ps ...predicate.RecipeSheet) *RecipeSheetDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RecipeSheetDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RecipeSheetDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RecipeSheetDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(recipesheet.Table, sqlgraph.NewFieldSpec(recipesheet.FieldID, field.TypeUUID))
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

// RecipeSheetDeleteOne is the builder for deleting a single RecipeSheet entity.
type RecipeSheetDeleteOne struct {
	_d *RecipeSheetDelete
}

// Where appends a list predicates to the RecipeSheetDelete builder.
func (_d *RecipeSheetDeleteOne) Where(ps ...predicate.RecipeSheet) *RecipeSheetDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RecipeSheetDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{recipesheet.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RecipeSheetDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
