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
	"github.com/caseops/inquest/ent/casereport"
	"github.com/caseops/inquest/ent/predicate"
)

// CaseReportUpdate is the builder for updating CaseReport entities.
type CaseReportUpdate struct {
	config
	hooks    []Hook
	mutation *CaseReportMutation
}

// Where appends a list predicates to the CaseReportUpdate builder.
func (_u *CaseReportUpdate) Where(ps ...predicate.CaseReport) *CaseReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *CaseReportUpdate) SetType(v casereport.Type) *CaseReportUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *CaseReportUpdate) SetNillableType(v *casereport.Type) *CaseReportUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CaseReportUpdate) SetTitle(v string) *CaseReportUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CaseReportUpdate) SetNillableTitle(v *string) *CaseReportUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CaseReportUpdate) ClearTitle() *CaseReportUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetContent sets the "content" field.
func (_u *CaseReportUpdate) SetContent(v string) *CaseReportUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CaseReportUpdate) SetNillableContent(v *string) *CaseReportUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *CaseReportUpdate) ClearContent() *CaseReportUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetFormat sets the "format" field.
func (_u *CaseReportUpdate) SetFormat(v string) *CaseReportUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *CaseReportUpdate) SetNillableFormat(v *string) *CaseReportUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CaseReportUpdate) SetStatus(v casereport.Status) *CaseReportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CaseReportUpdate) SetNillableStatus(v *casereport.Status) *CaseReportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *CaseReportUpdate) SetVersion(v int) *CaseReportUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CaseReportUpdate) SetNillableVersion(v *int) *CaseReportUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CaseReportUpdate) AddVersion(v int) *CaseReportUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIsCurrent sets the "is_current" field.
func (_u *CaseReportUpdate) SetIsCurrent(v bool) *CaseReportUpdate {
	_u.mutation.SetIsCurrent(v)
	return _u
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_u *CaseReportUpdate) SetNillableIsCurrent(v *bool) *CaseReportUpdate {
	if v != nil {
		_u.SetIsCurrent(*v)
	}
	return _u
}

// SetLinkedToClosure sets the "linked_to_closure" field.
func (_u *CaseReportUpdate) SetLinkedToClosure(v bool) *CaseReportUpdate {
	_u.mutation.SetLinkedToClosure(v)
	return _u
}

// SetNillableLinkedToClosure sets the "linked_to_closure" field if the given value is not nil.
func (_u *CaseReportUpdate) SetNillableLinkedToClosure(v *bool) *CaseReportUpdate {
	if v != nil {
		_u.SetLinkedToClosure(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CaseReportUpdate) SetErrorMessage(v string) *CaseReportUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CaseReportUpdate) SetNillableErrorMessage(v *string) *CaseReportUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CaseReportUpdate) ClearErrorMessage() *CaseReportUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *CaseReportUpdate) SetPodID(v string) *CaseReportUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *CaseReportUpdate) SetNillablePodID(v *string) *CaseReportUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *CaseReportUpdate) ClearPodID() *CaseReportUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (_u *CaseReportUpdate) SetGenerationTimeMs(v int64) *CaseReportUpdate {
	_u.mutation.ResetGenerationTimeMs()
	_u.mutation.SetGenerationTimeMs(v)
	return _u
}

// SetNillableGenerationTimeMs sets the "generation_time_ms" field if the given value is not nil.
func (_u *CaseReportUpdate) SetNillableGenerationTimeMs(v *int64) *CaseReportUpdate {
	if v != nil {
		_u.SetGenerationTimeMs(*v)
	}
	return _u
}

// AddGenerationTimeMs adds value to the "generation_time_ms" field.
func (_u *CaseReportUpdate) AddGenerationTimeMs(v int64) *CaseReportUpdate {
	_u.mutation.AddGenerationTimeMs(v)
	return _u
}

// ClearGenerationTimeMs clears the value of the "generation_time_ms" field.
func (_u *CaseReportUpdate) ClearGenerationTimeMs() *CaseReportUpdate {
	_u.mutation.ClearGenerationTimeMs()
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *CaseReportUpdate) SetGeneratedAt(v time.Time) *CaseReportUpdate {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *CaseReportUpdate) SetNillableGeneratedAt(v *time.Time) *CaseReportUpdate {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// ClearGeneratedAt clears the value of the "generated_at" field.
func (_u *CaseReportUpdate) ClearGeneratedAt() *CaseReportUpdate {
	_u.mutation.ClearGeneratedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CaseReportUpdate) SetUpdatedAt(v time.Time) *CaseReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CaseReportMutation object of the builder.
func (_u *CaseReportUpdate) Mutation() *CaseReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaseReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaseReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CaseReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := casereport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseReportUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := casereport.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "CaseReport.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := casereport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CaseReport.status": %w`, err)}
		}
	}
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaseReport.case"`)
	}
	return nil
}

func (_u *CaseReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(casereport.Table, casereport.Columns, sqlgraph.NewFieldSpec(casereport.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(casereport.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(casereport.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(casereport.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(casereport.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(casereport.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(casereport.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(casereport.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(casereport.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(casereport.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsCurrent(); ok {
		_spec.SetField(casereport.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LinkedToClosure(); ok {
		_spec.SetField(casereport.FieldLinkedToClosure, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(casereport.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(casereport.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(casereport.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(casereport.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.GenerationTimeMs(); ok {
		_spec.SetField(casereport.FieldGenerationTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGenerationTimeMs(); ok {
		_spec.AddField(casereport.FieldGenerationTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.GenerationTimeMsCleared() {
		_spec.ClearField(casereport.FieldGenerationTimeMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(casereport.FieldGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.GeneratedAtCleared() {
		_spec.ClearField(casereport.FieldGeneratedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(casereport.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{casereport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaseReportUpdateOne is the builder for updating a single CaseReport entity.
type CaseReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaseReportMutation
}

// SetType sets the "type" field.
func (_u *CaseReportUpdateOne) SetType(v casereport.Type) *CaseReportUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *CaseReportUpdateOne) SetNillableType(v *casereport.Type) *CaseReportUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CaseReportUpdateOne) SetTitle(v string) *CaseReportUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CaseReportUpdateOne) SetNillableTitle(v *string) *CaseReportUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CaseReportUpdateOne) ClearTitle() *CaseReportUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetContent sets the "content" field.
func (_u *CaseReportUpdateOne) SetContent(v string) *CaseReportUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CaseReportUpdateOne) SetNillableContent(v *string) *CaseReportUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *CaseReportUpdateOne) ClearContent() *CaseReportUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetFormat sets the "format" field.
func (_u *CaseReportUpdateOne) SetFormat(v string) *CaseReportUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *CaseReportUpdateOne) SetNillableFormat(v *string) *CaseReportUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CaseReportUpdateOne) SetStatus(v casereport.Status) *CaseReportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CaseReportUpdateOne) SetNillableStatus(v *casereport.Status) *CaseReportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *CaseReportUpdateOne) SetVersion(v int) *CaseReportUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CaseReportUpdateOne) SetNillableVersion(v *int) *CaseReportUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CaseReportUpdateOne) AddVersion(v int) *CaseReportUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIsCurrent sets the "is_current" field.
func (_u *CaseReportUpdateOne) SetIsCurrent(v bool) *CaseReportUpdateOne {
	_u.mutation.SetIsCurrent(v)
	return _u
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_u *CaseReportUpdateOne) SetNillableIsCurrent(v *bool) *CaseReportUpdateOne {
	if v != nil {
		_u.SetIsCurrent(*v)
	}
	return _u
}

// SetLinkedToClosure sets the "linked_to_closure" field.
func (_u *CaseReportUpdateOne) SetLinkedToClosure(v bool) *CaseReportUpdateOne {
	_u.mutation.SetLinkedToClosure(v)
	return _u
}

// SetNillableLinkedToClosure sets the "linked_to_closure" field if the given value is not nil.
func (_u *CaseReportUpdateOne) SetNillableLinkedToClosure(v *bool) *CaseReportUpdateOne {
	if v != nil {
		_u.SetLinkedToClosure(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CaseReportUpdateOne) SetErrorMessage(v string) *CaseReportUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CaseReportUpdateOne) SetNillableErrorMessage(v *string) *CaseReportUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CaseReportUpdateOne) ClearErrorMessage() *CaseReportUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *CaseReportUpdateOne) SetPodID(v string) *CaseReportUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *CaseReportUpdateOne) SetNillablePodID(v *string) *CaseReportUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *CaseReportUpdateOne) ClearPodID() *CaseReportUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (_u *CaseReportUpdateOne) SetGenerationTimeMs(v int64) *CaseReportUpdateOne {
	_u.mutation.ResetGenerationTimeMs()
	_u.mutation.SetGenerationTimeMs(v)
	return _u
}

// SetNillableGenerationTimeMs sets the "generation_time_ms" field if the given value is not nil.
func (_u *CaseReportUpdateOne) SetNillableGenerationTimeMs(v *int64) *CaseReportUpdateOne {
	if v != nil {
		_u.SetGenerationTimeMs(*v)
	}
	return _u
}

// AddGenerationTimeMs adds value to the "generation_time_ms" field.
func (_u *CaseReportUpdateOne) AddGenerationTimeMs(v int64) *CaseReportUpdateOne {
	_u.mutation.AddGenerationTimeMs(v)
	return _u
}

// ClearGenerationTimeMs clears the value of the "generation_time_ms" field.
func (_u *CaseReportUpdateOne) ClearGenerationTimeMs() *CaseReportUpdateOne {
	_u.mutation.ClearGenerationTimeMs()
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *CaseReportUpdateOne) SetGeneratedAt(v time.Time) *CaseReportUpdateOne {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *CaseReportUpdateOne) SetNillableGeneratedAt(v *time.Time) *CaseReportUpdateOne {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// ClearGeneratedAt clears the value of the "generated_at" field.
func (_u *CaseReportUpdateOne) ClearGeneratedAt() *CaseReportUpdateOne {
	_u.mutation.ClearGeneratedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CaseReportUpdateOne) SetUpdatedAt(v time.Time) *CaseReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CaseReportMutation object of the builder.
func (_u *CaseReportUpdateOne) Mutation() *CaseReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the CaseReportUpdate builder.
func (_u *CaseReportUpdateOne) Where(ps ...predicate.CaseReport) *CaseReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaseReportUpdateOne) Select(field string, fields ...string) *CaseReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaseReport entity.
func (_u *CaseReportUpdateOne) Save(ctx context.Context) (*CaseReport, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseReportUpdateOne) SaveX(ctx context.Context) *CaseReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaseReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CaseReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := casereport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseReportUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := casereport.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "CaseReport.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := casereport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CaseReport.status": %w`, err)}
		}
	}
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaseReport.case"`)
	}
	return nil
}

func (_u *CaseReportUpdateOne) sqlSave(ctx context.Context) (_node *CaseReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(casereport.Table, casereport.Columns, sqlgraph.NewFieldSpec(casereport.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaseReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, casereport.FieldID)
		for _, f := range fields {
			if !casereport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != casereport.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(casereport.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(casereport.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(casereport.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(casereport.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(casereport.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(casereport.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(casereport.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(casereport.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(casereport.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsCurrent(); ok {
		_spec.SetField(casereport.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LinkedToClosure(); ok {
		_spec.SetField(casereport.FieldLinkedToClosure, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(casereport.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(casereport.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(casereport.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(casereport.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.GenerationTimeMs(); ok {
		_spec.SetField(casereport.FieldGenerationTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGenerationTimeMs(); ok {
		_spec.AddField(casereport.FieldGenerationTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.GenerationTimeMsCleared() {
		_spec.ClearField(casereport.FieldGenerationTimeMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(casereport.FieldGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.GeneratedAtCleared() {
		_spec.ClearField(casereport.FieldGeneratedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(casereport.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CaseReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{casereport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
