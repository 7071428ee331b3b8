// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cuisinehq/mercuriale/gen/ent/importjob"
	"github.com/google/uuid"
)

// ImportJobCreate is the builder for creating a ImportJob entity.
type ImportJobCreate struct {
	config
	mutation *ImportJobMutation
	hooks    []Hook
}

// SetFileID sets the "file_id" field.
func (_c *ImportJobCreate) SetFileID(v uuid.UUID) *ImportJobCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *ImportJobCreate) SetFormat(v string) *ImportJobCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *ImportJobCreate) SetMode(v string) *ImportJobCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ImportJobCreate) SetStatus(v string) *ImportJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ImportJobCreate) SetStartedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableStartedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ImportJobCreate) SetFinishedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableFinishedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ImportJobCreate) SetErrorMessage(v string) *ImportJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableErrorMessage(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetExtractedText sets the "extracted_text" field.
func (_c *ImportJobCreate) SetExtractedText(v string) *ImportJobCreate {
	_c.mutation.SetExtractedText(v)
	return _c
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableExtractedText(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetExtractedText(*v)
	}
	return _c
}

// SetMethod sets the "method" field.
func (_c *ImportJobCreate) SetMethod(v string) *ImportJobCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableMethod(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetMethod(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ImportJobCreate) SetConfidence(v float32) *ImportJobCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableConfidence(v *float32) *ImportJobCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ImportJobCreate) SetID(v uuid.UUID) *ImportJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableID(v *uuid.UUID) *ImportJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ImportJobMutation object of the builder.
func (_c *ImportJobCreate) Mutation() *ImportJobMutation {
	return _c.mutation
}

// Save creates the ImportJob in the database.
func (_c *ImportJobCreate) Save(ctx context.Context) (*ImportJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImportJobCreate) SaveX(ctx context.Context) *ImportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImportJobCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := importjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := importjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImportJobCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "ImportJob.file_id"`)}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "ImportJob.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := importjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ImportJob.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "ImportJob.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := importjob.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ImportJob.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ImportJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ImportJob.started_at"`)}
	}
	return nil
}

func (_c *ImportJobCreate) sqlSave(ctx context.Context) (*ImportJob, error) {
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

func (_c *ImportJobCreate) createSpec() (*ImportJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ImportJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(importjob.Table, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FileID(); ok {
		_spec.SetField(importjob.FieldFileID, field.TypeUUID, value)
		_node.FileID = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(importjob.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(importjob.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(importjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ExtractedText(); ok {
		_spec.SetField(importjob.FieldExtractedText, field.TypeString, value)
		_node.ExtractedText = &value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(importjob.FieldMethod, field.TypeString, value)
		_node.Method = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(importjob.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = &value
	}
	return _node, _spec
}

// ImportJobCreateBulk is the builder for creating many ImportJob entities in bulk.
type ImportJobCreateBulk struct {
	config
	err      error
	builders []*ImportJobCreate
}

// Save creates the ImportJob entities in the database.
func (_c *ImportJobCreateBulk) Save(ctx context.Context) ([]*ImportJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImportJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImportJobMutation)
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
func (_c *ImportJobCreateBulk) SaveX(ctx context.Context) []*ImportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
