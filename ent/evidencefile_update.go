// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/caseops/inquest/ent/evidencefile"
	"github.com/caseops/inquest/ent/predicate"
)

// EvidenceFileUpdate is the builder for updating EvidenceFile entities.
type EvidenceFileUpdate struct {
	config
	hooks    []Hook
	mutation *EvidenceFileMutation
}

// Where appends a list predicates to the EvidenceFileUpdate builder.
func (_u *EvidenceFileUpdate) Where(ps ...predicate.EvidenceFile) *EvidenceFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *EvidenceFileUpdate) SetFilename(v string) *EvidenceFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *EvidenceFileUpdate) SetNillableFilename(v *string) *EvidenceFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *EvidenceFileUpdate) SetContentType(v string) *EvidenceFileUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *EvidenceFileUpdate) SetNillableContentType(v *string) *EvidenceFileUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *EvidenceFileUpdate) SetStoragePath(v string) *EvidenceFileUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *EvidenceFileUpdate) SetNillableStoragePath(v *string) *EvidenceFileUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *EvidenceFileUpdate) SetSizeBytes(v int64) *EvidenceFileUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *EvidenceFileUpdate) SetNillableSizeBytes(v *int64) *EvidenceFileUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *EvidenceFileUpdate) AddSizeBytes(v int64) *EvidenceFileUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetEvidenceID sets the "evidence_id" field.
func (_u *EvidenceFileUpdate) SetEvidenceID(v string) *EvidenceFileUpdate {
	_u.mutation.SetEvidenceID(v)
	return _u
}

// SetNillableEvidenceID sets the "evidence_id" field if the given value is not nil.
func (_u *EvidenceFileUpdate) SetNillableEvidenceID(v *string) *EvidenceFileUpdate {
	if v != nil {
		_u.SetEvidenceID(*v)
	}
	return _u
}

// ClearEvidenceID clears the value of the "evidence_id" field.
func (_u *EvidenceFileUpdate) ClearEvidenceID() *EvidenceFileUpdate {
	_u.mutation.ClearEvidenceID()
	return _u
}

// SetContentSummary sets the "content_summary" field.
func (_u *EvidenceFileUpdate) SetContentSummary(v string) *EvidenceFileUpdate {
	_u.mutation.SetContentSummary(v)
	return _u
}

// SetNillableContentSummary sets the "content_summary" field if the given value is not nil.
func (_u *EvidenceFileUpdate) SetNillableContentSummary(v *string) *EvidenceFileUpdate {
	if v != nil {
		_u.SetContentSummary(*v)
	}
	return _u
}

// ClearContentSummary clears the value of the "content_summary" field.
func (_u *EvidenceFileUpdate) ClearContentSummary() *EvidenceFileUpdate {
	_u.mutation.ClearContentSummary()
	return _u
}

// Mutation returns the EvidenceFileMutation object of the builder.
func (_u *EvidenceFileUpdate) Mutation() *EvidenceFileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvidenceFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvidenceFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceFileUpdate) check() error {
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvidenceFile.case"`)
	}
	return nil
}

func (_u *EvidenceFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidencefile.Table, evidencefile.Columns, sqlgraph.NewFieldSpec(evidencefile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(evidencefile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(evidencefile.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(evidencefile.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(evidencefile.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(evidencefile.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EvidenceID(); ok {
		_spec.SetField(evidencefile.FieldEvidenceID, field.TypeString, value)
	}
	if _u.mutation.EvidenceIDCleared() {
		_spec.ClearField(evidencefile.FieldEvidenceID, field.TypeString)
	}
	if value, ok := _u.mutation.ContentSummary(); ok {
		_spec.SetField(evidencefile.FieldContentSummary, field.TypeString, value)
	}
	if _u.mutation.ContentSummaryCleared() {
		_spec.ClearField(evidencefile.FieldContentSummary, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidencefile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvidenceFileUpdateOne is the builder for updating a single EvidenceFile entity.
type EvidenceFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvidenceFileMutation
}

// SetFilename sets the "filename" field.
func (_u *EvidenceFileUpdateOne) SetFilename(v string) *EvidenceFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *EvidenceFileUpdateOne) SetNillableFilename(v *string) *EvidenceFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *EvidenceFileUpdateOne) SetContentType(v string) *EvidenceFileUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *EvidenceFileUpdateOne) SetNillableContentType(v *string) *EvidenceFileUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *EvidenceFileUpdateOne) SetStoragePath(v string) *EvidenceFileUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *EvidenceFileUpdateOne) SetNillableStoragePath(v *string) *EvidenceFileUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *EvidenceFileUpdateOne) SetSizeBytes(v int64) *EvidenceFileUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *EvidenceFileUpdateOne) SetNillableSizeBytes(v *int64) *EvidenceFileUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *EvidenceFileUpdateOne) AddSizeBytes(v int64) *EvidenceFileUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetEvidenceID sets the "evidence_id" field.
func (_u *EvidenceFileUpdateOne) SetEvidenceID(v string) *EvidenceFileUpdateOne {
	_u.mutation.SetEvidenceID(v)
	return _u
}

// SetNillableEvidenceID sets the "evidence_id" field if the given value is not nil.
func (_u *EvidenceFileUpdateOne) SetNillableEvidenceID(v *string) *EvidenceFileUpdateOne {
	if v != nil {
		_u.SetEvidenceID(*v)
	}
	return _u
}

// ClearEvidenceID clears the value of the "evidence_id" field.
func (_u *EvidenceFileUpdateOne) ClearEvidenceID() *EvidenceFileUpdateOne {
	_u.mutation.ClearEvidenceID()
	return _u
}

// SetContentSummary sets the "content_summary" field.
func (_u *EvidenceFileUpdateOne) SetContentSummary(v string) *EvidenceFileUpdateOne {
	_u.mutation.SetContentSummary(v)
	return _u
}

// SetNillableContentSummary sets the "content_summary" field if the given value is not nil.
func (_u *EvidenceFileUpdateOne) SetNillableContentSummary(v *string) *EvidenceFileUpdateOne {
	if v != nil {
		_u.SetContentSummary(*v)
	}
	return _u
}

// ClearContentSummary clears the value of the "content_summary" field.
func (_u *EvidenceFileUpdateOne) ClearContentSummary() *EvidenceFileUpdateOne {
	_u.mutation.ClearContentSummary()
	return _u
}

// Mutation returns the EvidenceFileMutation object of the builder.
func (_u *EvidenceFileUpdateOne) Mutation() *EvidenceFileMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvidenceFileUpdate builder.
func (_u *EvidenceFileUpdateOne) Where(ps ...predicate.EvidenceFile) *EvidenceFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvidenceFileUpdateOne) Select(field string, fields ...string) *EvidenceFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvidenceFile entity.
func (_u *EvidenceFileUpdateOne) Save(ctx context.Context) (*EvidenceFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceFileUpdateOne) SaveX(ctx context.Context) *EvidenceFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvidenceFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceFileUpdateOne) check() error {
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvidenceFile.case"`)
	}
	return nil
}

func (_u *EvidenceFileUpdateOne) sqlSave(ctx context.Context) (_node *EvidenceFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidencefile.Table, evidencefile.Columns, sqlgraph.NewFieldSpec(evidencefile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvidenceFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evidencefile.FieldID)
		for _, f := range fields {
			if !evidencefile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evidencefile.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(evidencefile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(evidencefile.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(evidencefile.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(evidencefile.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(evidencefile.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EvidenceID(); ok {
		_spec.SetField(evidencefile.FieldEvidenceID, field.TypeString, value)
	}
	if _u.mutation.EvidenceIDCleared() {
		_spec.ClearField(evidencefile.FieldEvidenceID, field.TypeString)
	}
	if value, ok := _u.mutation.ContentSummary(); ok {
		_spec.SetField(evidencefile.FieldContentSummary, field.TypeString, value)
	}
	if _u.mutation.ContentSummaryCleared() {
		_spec.ClearField(evidencefile.FieldContentSummary, field.TypeString)
	}
	_node = &EvidenceFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidencefile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
