// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cuisinehq/mercuriale/gen/ent/importjob"
	"github.com/cuisinehq/mercuriale/gen/ent/predicate"
	"github.com/google/uuid"
)

// ImportJobUpdate is the builder for updating ImportJob entities.
type ImportJobUpdate struct {
	config
	hooks    []Hook
	mutation *ImportJobMutation
}

// Where appends a list predicates to the ImportJobUpdate builder.
func (_u *ImportJobUpdate) Where(ps ...predicate.ImportJob) *ImportJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *ImportJobUpdate) SetFileID(v uuid.UUID) *ImportJobUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFileID(v *uuid.UUID) *ImportJobUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ImportJobUpdate) SetFormat(v string) *ImportJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFormat(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ImportJobUpdate) SetMode(v string) *ImportJobUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableMode(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportJobUpdate) SetStatus(v string) *ImportJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableStatus(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ImportJobUpdate) SetStartedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableStartedAt(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ImportJobUpdate) SetFinishedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFinishedAt(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ImportJobUpdate) ClearFinishedAt() *ImportJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportJobUpdate) SetErrorMessage(v string) *ImportJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableErrorMessage(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportJobUpdate) ClearErrorMessage() *ImportJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *ImportJobUpdate) SetExtractedText(v string) *ImportJobUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableExtractedText(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *ImportJobUpdate) ClearExtractedText() *ImportJobUpdate {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetMethod sets the "method" field.
func (_u *ImportJobUpdate) SetMethod(v string) *ImportJobUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableMethod(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// ClearMethod clears the value of the "method" field.
func (_u *ImportJobUpdate) ClearMethod() *ImportJobUpdate {
	_u.mutation.ClearMethod()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ImportJobUpdate) SetConfidence(v float32) *ImportJobUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableConfidence(v *float32) *ImportJobUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ImportJobUpdate) AddConfidence(v float32) *ImportJobUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ImportJobUpdate) ClearConfidence() *ImportJobUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// Mutation returns the ImportJobMutation object of the builder.
func (_u *ImportJobUpdate) Mutation() *ImportJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImportJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImportJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportJobUpdate) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := importjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ImportJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := importjob.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ImportJob.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ImportJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importjob.Table, importjob.Columns, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileID(); ok {
		_spec.SetField(importjob.FieldFileID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(importjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(importjob.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(importjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(importjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(importjob.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(importjob.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(importjob.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.MethodCleared() {
		_spec.ClearField(importjob.FieldMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(importjob.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(importjob.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(importjob.FieldConfidence, field.TypeFloat32)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImportJobUpdateOne is the builder for updating a single ImportJob entity.
type ImportJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImportJobMutation
}

// SetFileID sets the "file_id" field.
func (_u *ImportJobUpdateOne) SetFileID(v uuid.UUID) *ImportJobUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFileID(v *uuid.UUID) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ImportJobUpdateOne) SetFormat(v string) *ImportJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFormat(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ImportJobUpdateOne) SetMode(v string) *ImportJobUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableMode(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportJobUpdateOne) SetStatus(v string) *ImportJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableStatus(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ImportJobUpdateOne) SetStartedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableStartedAt(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ImportJobUpdateOne) SetFinishedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ImportJobUpdateOne) ClearFinishedAt() *ImportJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportJobUpdateOne) SetErrorMessage(v string) *ImportJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableErrorMessage(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportJobUpdateOne) ClearErrorMessage() *ImportJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *ImportJobUpdateOne) SetExtractedText(v string) *ImportJobUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableExtractedText(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *ImportJobUpdateOne) ClearExtractedText() *ImportJobUpdateOne {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetMethod sets the "method" field.
func (_u *ImportJobUpdateOne) SetMethod(v string) *ImportJobUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableMethod(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// ClearMethod clears the value of the "method" field.
func (_u *ImportJobUpdateOne) ClearMethod() *ImportJobUpdateOne {
	_u.mutation.ClearMethod()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ImportJobUpdateOne) SetConfidence(v float32) *ImportJobUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableConfidence(v *float32) *ImportJobUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ImportJobUpdateOne) AddConfidence(v float32) *ImportJobUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ImportJobUpdateOne) ClearConfidence() *ImportJobUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// Mutation returns the ImportJobMutation object of the builder.
func (_u *ImportJobUpdateOne) Mutation() *ImportJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ImportJobUpdate builder.
func (_u *ImportJobUpdateOne) Where(ps ...predicate.ImportJob) *ImportJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImportJobUpdateOne) Select(field string, fields ...string) *ImportJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImportJob entity.
func (_u *ImportJobUpdateOne) Save(ctx context.Context) (*ImportJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportJobUpdateOne) SaveX(ctx context.Context) *ImportJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImportJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportJobUpdateOne) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := importjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ImportJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := importjob.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ImportJob.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ImportJobUpdateOne) sqlSave(ctx context.Context) (_node *ImportJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importjob.Table, importjob.Columns, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImportJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importjob.FieldID)
		for _, f := range fields {
			if !importjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != importjob.FieldID {
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
	if value, ok := _u.mutation.FileID(); ok {
		_spec.SetField(importjob.FieldFileID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(importjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(importjob.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(importjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(importjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(importjob.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(importjob.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(importjob.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.MethodCleared() {
		_spec.ClearField(importjob.FieldMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(importjob.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(importjob.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(importjob.FieldConfidence, field.TypeFloat32)
	}
	_node = &ImportJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
