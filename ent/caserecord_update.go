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
	"github.com/caseops/inquest/ent/casemessage"
	"github.com/caseops/inquest/ent/caserecord"
	"github.com/caseops/inquest/ent/casereport"
	"github.com/caseops/inquest/ent/evidencefile"
	"github.com/caseops/inquest/ent/predicate"
)

// CaseRecordUpdate is the builder for updating CaseRecord entities.
type CaseRecordUpdate struct {
	config
	hooks    []Hook
	mutation *CaseRecordMutation
}

// Where appends a list predicates to the CaseRecordUpdate builder.
func (_u *CaseRecordUpdate) Where(ps ...predicate.CaseRecord) *CaseRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CaseRecordUpdate) SetTitle(v string) *CaseRecordUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableTitle(v *string) *CaseRecordUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CaseRecordUpdate) SetDescription(v string) *CaseRecordUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableDescription(v *string) *CaseRecordUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CaseRecordUpdate) ClearDescription() *CaseRecordUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CaseRecordUpdate) SetStatus(v caserecord.Status) *CaseRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableStatus(v *caserecord.Status) *CaseRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *CaseRecordUpdate) SetPriority(v caserecord.Priority) *CaseRecordUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillablePriority(v *caserecord.Priority) *CaseRecordUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *CaseRecordUpdate) SetTags(v []string) *CaseRecordUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *CaseRecordUpdate) AppendTags(v []string) *CaseRecordUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *CaseRecordUpdate) ClearTags() *CaseRecordUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CaseRecordUpdate) SetMetadata(v map[string]interface{}) *CaseRecordUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CaseRecordUpdate) ClearMetadata() *CaseRecordUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CaseRecordUpdate) SetUpdatedAt(v time.Time) *CaseRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *CaseRecordUpdate) SetResolvedAt(v time.Time) *CaseRecordUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableResolvedAt(v *time.Time) *CaseRecordUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *CaseRecordUpdate) ClearResolvedAt() *CaseRecordUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *CaseRecordUpdate) SetResolvedBy(v string) *CaseRecordUpdate {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableResolvedBy(v *string) *CaseRecordUpdate {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *CaseRecordUpdate) ClearResolvedBy() *CaseRecordUpdate {
	_u.mutation.ClearResolvedBy()
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *CaseRecordUpdate) SetClosedAt(v time.Time) *CaseRecordUpdate {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableClosedAt(v *time.Time) *CaseRecordUpdate {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *CaseRecordUpdate) ClearClosedAt() *CaseRecordUpdate {
	_u.mutation.ClearClosedAt()
	return _u
}

// SetClosedBy sets the "closed_by" field.
func (_u *CaseRecordUpdate) SetClosedBy(v string) *CaseRecordUpdate {
	_u.mutation.SetClosedBy(v)
	return _u
}

// SetNillableClosedBy sets the "closed_by" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableClosedBy(v *string) *CaseRecordUpdate {
	if v != nil {
		_u.SetClosedBy(*v)
	}
	return _u
}

// ClearClosedBy clears the value of the "closed_by" field.
func (_u *CaseRecordUpdate) ClearClosedBy() *CaseRecordUpdate {
	_u.mutation.ClearClosedBy()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CaseRecordUpdate) SetDeletedAt(v time.Time) *CaseRecordUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableDeletedAt(v *time.Time) *CaseRecordUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CaseRecordUpdate) ClearDeletedAt() *CaseRecordUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddMessageIDs adds the "messages" edge to the CaseMessage entity by IDs.
func (_u *CaseRecordUpdate) AddMessageIDs(ids ...string) *CaseRecordUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the CaseMessage entity.
func (_u *CaseRecordUpdate) AddMessages(v ...*CaseMessage) *CaseRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the CaseReport entity by IDs.
func (_u *CaseRecordUpdate) AddReportIDs(ids ...string) *CaseRecordUpdate {
	_u.mutation.AddReportIDs(ids...)
	return _u
}

// AddReports adds the "reports" edges to the CaseReport entity.
func (_u *CaseRecordUpdate) AddReports(v ...*CaseReport) *CaseRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportIDs(ids...)
}

// AddEvidenceFileIDs adds the "evidence_files" edge to the EvidenceFile entity by IDs.
func (_u *CaseRecordUpdate) AddEvidenceFileIDs(ids ...string) *CaseRecordUpdate {
	_u.mutation.AddEvidenceFileIDs(ids...)
	return _u
}

// AddEvidenceFiles adds the "evidence_files" edges to the EvidenceFile entity.
func (_u *CaseRecordUpdate) AddEvidenceFiles(v ...*EvidenceFile) *CaseRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceFileIDs(ids...)
}

// Mutation returns the CaseRecordMutation object of the builder.
func (_u *CaseRecordUpdate) Mutation() *CaseRecordMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the CaseMessage entity.
func (_u *CaseRecordUpdate) ClearMessages() *CaseRecordUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to CaseMessage entities by IDs.
func (_u *CaseRecordUpdate) RemoveMessageIDs(ids ...string) *CaseRecordUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to CaseMessage entities.
func (_u *CaseRecordUpdate) RemoveMessages(v ...*CaseMessage) *CaseRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearReports clears all "reports" edges to the CaseReport entity.
func (_u *CaseRecordUpdate) ClearReports() *CaseRecordUpdate {
	_u.mutation.ClearReports()
	return _u
}

// RemoveReportIDs removes the "reports" edge to CaseReport entities by IDs.
func (_u *CaseRecordUpdate) RemoveReportIDs(ids ...string) *CaseRecordUpdate {
	_u.mutation.RemoveReportIDs(ids...)
	return _u
}

// RemoveReports removes "reports" edges to CaseReport entities.
func (_u *CaseRecordUpdate) RemoveReports(v ...*CaseReport) *CaseRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportIDs(ids...)
}

// ClearEvidenceFiles clears all "evidence_files" edges to the EvidenceFile entity.
func (_u *CaseRecordUpdate) ClearEvidenceFiles() *CaseRecordUpdate {
	_u.mutation.ClearEvidenceFiles()
	return _u
}

// RemoveEvidenceFileIDs removes the "evidence_files" edge to EvidenceFile entities by IDs.
func (_u *CaseRecordUpdate) RemoveEvidenceFileIDs(ids ...string) *CaseRecordUpdate {
	_u.mutation.RemoveEvidenceFileIDs(ids...)
	return _u
}

// RemoveEvidenceFiles removes "evidence_files" edges to EvidenceFile entities.
func (_u *CaseRecordUpdate) RemoveEvidenceFiles(v ...*EvidenceFile) *CaseRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceFileIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaseRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaseRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CaseRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := caserecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := caserecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CaseRecord.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := caserecord.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "CaseRecord.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *CaseRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caserecord.Table, caserecord.Columns, sqlgraph.NewFieldSpec(caserecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(caserecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(caserecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(caserecord.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(caserecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(caserecord.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(caserecord.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, caserecord.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(caserecord.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(caserecord.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(caserecord.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(caserecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(caserecord.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(caserecord.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(caserecord.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(caserecord.FieldResolvedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(caserecord.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(caserecord.FieldClosedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClosedBy(); ok {
		_spec.SetField(caserecord.FieldClosedBy, field.TypeString, value)
	}
	if _u.mutation.ClosedByCleared() {
		_spec.ClearField(caserecord.FieldClosedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(caserecord.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(caserecord.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.MessagesTable,
			Columns: []string{caserecord.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casemessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.MessagesTable,
			Columns: []string{caserecord.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casemessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.MessagesTable,
			Columns: []string{caserecord.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casemessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.ReportsTable,
			Columns: []string{caserecord.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casereport.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportsIDs(); len(nodes) > 0 && !_u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.ReportsTable,
			Columns: []string{caserecord.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casereport.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.ReportsTable,
			Columns: []string{caserecord.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casereport.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvidenceFilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.EvidenceFilesTable,
			Columns: []string{caserecord.EvidenceFilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencefile.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceFilesIDs(); len(nodes) > 0 && !_u.mutation.EvidenceFilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.EvidenceFilesTable,
			Columns: []string{caserecord.EvidenceFilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencefile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceFilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.EvidenceFilesTable,
			Columns: []string{caserecord.EvidenceFilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencefile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caserecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaseRecordUpdateOne is the builder for updating a single CaseRecord entity.
type CaseRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaseRecordMutation
}

// SetTitle sets the "title" field.
func (_u *CaseRecordUpdateOne) SetTitle(v string) *CaseRecordUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableTitle(v *string) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CaseRecordUpdateOne) SetDescription(v string) *CaseRecordUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableDescription(v *string) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CaseRecordUpdateOne) ClearDescription() *CaseRecordUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CaseRecordUpdateOne) SetStatus(v caserecord.Status) *CaseRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableStatus(v *caserecord.Status) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *CaseRecordUpdateOne) SetPriority(v caserecord.Priority) *CaseRecordUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillablePriority(v *caserecord.Priority) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *CaseRecordUpdateOne) SetTags(v []string) *CaseRecordUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *CaseRecordUpdateOne) AppendTags(v []string) *CaseRecordUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *CaseRecordUpdateOne) ClearTags() *CaseRecordUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CaseRecordUpdateOne) SetMetadata(v map[string]interface{}) *CaseRecordUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CaseRecordUpdateOne) ClearMetadata() *CaseRecordUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CaseRecordUpdateOne) SetUpdatedAt(v time.Time) *CaseRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *CaseRecordUpdateOne) SetResolvedAt(v time.Time) *CaseRecordUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableResolvedAt(v *time.Time) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *CaseRecordUpdateOne) ClearResolvedAt() *CaseRecordUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *CaseRecordUpdateOne) SetResolvedBy(v string) *CaseRecordUpdateOne {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableResolvedBy(v *string) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *CaseRecordUpdateOne) ClearResolvedBy() *CaseRecordUpdateOne {
	_u.mutation.ClearResolvedBy()
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *CaseRecordUpdateOne) SetClosedAt(v time.Time) *CaseRecordUpdateOne {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableClosedAt(v *time.Time) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *CaseRecordUpdateOne) ClearClosedAt() *CaseRecordUpdateOne {
	_u.mutation.ClearClosedAt()
	return _u
}

// SetClosedBy sets the "closed_by" field.
func (_u *CaseRecordUpdateOne) SetClosedBy(v string) *CaseRecordUpdateOne {
	_u.mutation.SetClosedBy(v)
	return _u
}

// SetNillableClosedBy sets the "closed_by" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableClosedBy(v *string) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetClosedBy(*v)
	}
	return _u
}

// ClearClosedBy clears the value of the "closed_by" field.
func (_u *CaseRecordUpdateOne) ClearClosedBy() *CaseRecordUpdateOne {
	_u.mutation.ClearClosedBy()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CaseRecordUpdateOne) SetDeletedAt(v time.Time) *CaseRecordUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableDeletedAt(v *time.Time) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CaseRecordUpdateOne) ClearDeletedAt() *CaseRecordUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddMessageIDs adds the "messages" edge to the CaseMessage entity by IDs.
func (_u *CaseRecordUpdateOne) AddMessageIDs(ids ...string) *CaseRecordUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the CaseMessage entity.
func (_u *CaseRecordUpdateOne) AddMessages(v ...*CaseMessage) *CaseRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the CaseReport entity by IDs.
func (_u *CaseRecordUpdateOne) AddReportIDs(ids ...string) *CaseRecordUpdateOne {
	_u.mutation.AddReportIDs(ids...)
	return _u
}

// AddReports adds the "reports" edges to the CaseReport entity.
func (_u *CaseRecordUpdateOne) AddReports(v ...*CaseReport) *CaseRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportIDs(ids...)
}

// AddEvidenceFileIDs adds the "evidence_files" edge to the EvidenceFile entity by IDs.
func (_u *CaseRecordUpdateOne) AddEvidenceFileIDs(ids ...string) *CaseRecordUpdateOne {
	_u.mutation.AddEvidenceFileIDs(ids...)
	return _u
}

// AddEvidenceFiles adds the "evidence_files" edges to the EvidenceFile entity.
func (_u *CaseRecordUpdateOne) AddEvidenceFiles(v ...*EvidenceFile) *CaseRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceFileIDs(ids...)
}

// Mutation returns the CaseRecordMutation object of the builder.
func (_u *CaseRecordUpdateOne) Mutation() *CaseRecordMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the CaseMessage entity.
func (_u *CaseRecordUpdateOne) ClearMessages() *CaseRecordUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to CaseMessage entities by IDs.
func (_u *CaseRecordUpdateOne) RemoveMessageIDs(ids ...string) *CaseRecordUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to CaseMessage entities.
func (_u *CaseRecordUpdateOne) RemoveMessages(v ...*CaseMessage) *CaseRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearReports clears all "reports" edges to the CaseReport entity.
func (_u *CaseRecordUpdateOne) ClearReports() *CaseRecordUpdateOne {
	_u.mutation.ClearReports()
	return _u
}

// RemoveReportIDs removes the "reports" edge to CaseReport entities by IDs.
func (_u *CaseRecordUpdateOne) RemoveReportIDs(ids ...string) *CaseRecordUpdateOne {
	_u.mutation.RemoveReportIDs(ids...)
	return _u
}

// RemoveReports removes "reports" edges to CaseReport entities.
func (_u *CaseRecordUpdateOne) RemoveReports(v ...*CaseReport) *CaseRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportIDs(ids...)
}

// ClearEvidenceFiles clears all "evidence_files" edges to the EvidenceFile entity.
func (_u *CaseRecordUpdateOne) ClearEvidenceFiles() *CaseRecordUpdateOne {
	_u.mutation.ClearEvidenceFiles()
	return _u
}

// RemoveEvidenceFileIDs removes the "evidence_files" edge to EvidenceFile entities by IDs.
func (_u *CaseRecordUpdateOne) RemoveEvidenceFileIDs(ids ...string) *CaseRecordUpdateOne {
	_u.mutation.RemoveEvidenceFileIDs(ids...)
	return _u
}

// RemoveEvidenceFiles removes "evidence_files" edges to EvidenceFile entities.
func (_u *CaseRecordUpdateOne) RemoveEvidenceFiles(v ...*EvidenceFile) *CaseRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceFileIDs(ids...)
}

// Where appends a list predicates to the CaseRecordUpdate builder.
func (_u *CaseRecordUpdateOne) Where(ps ...predicate.CaseRecord) *CaseRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaseRecordUpdateOne) Select(field string, fields ...string) *CaseRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaseRecord entity.
func (_u *CaseRecordUpdateOne) Save(ctx context.Context) (*CaseRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseRecordUpdateOne) SaveX(ctx context.Context) *CaseRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaseRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CaseRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := caserecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := caserecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CaseRecord.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := caserecord.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "CaseRecord.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *CaseRecordUpdateOne) sqlSave(ctx context.Context) (_node *CaseRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caserecord.Table, caserecord.Columns, sqlgraph.NewFieldSpec(caserecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaseRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, caserecord.FieldID)
		for _, f := range fields {
			if !caserecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != caserecord.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(caserecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(caserecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(caserecord.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(caserecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(caserecord.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(caserecord.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, caserecord.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(caserecord.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(caserecord.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(caserecord.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(caserecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(caserecord.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(caserecord.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(caserecord.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(caserecord.FieldResolvedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(caserecord.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(caserecord.FieldClosedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClosedBy(); ok {
		_spec.SetField(caserecord.FieldClosedBy, field.TypeString, value)
	}
	if _u.mutation.ClosedByCleared() {
		_spec.ClearField(caserecord.FieldClosedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(caserecord.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(caserecord.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.MessagesTable,
			Columns: []string{caserecord.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casemessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.MessagesTable,
			Columns: []string{caserecord.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casemessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.MessagesTable,
			Columns: []string{caserecord.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casemessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.ReportsTable,
			Columns: []string{caserecord.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casereport.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportsIDs(); len(nodes) > 0 && !_u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.ReportsTable,
			Columns: []string{caserecord.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casereport.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.ReportsTable,
			Columns: []string{caserecord.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casereport.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvidenceFilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.EvidenceFilesTable,
			Columns: []string{caserecord.EvidenceFilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencefile.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceFilesIDs(); len(nodes) > 0 && !_u.mutation.EvidenceFilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.EvidenceFilesTable,
			Columns: []string{caserecord.EvidenceFilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencefile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceFilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.EvidenceFilesTable,
			Columns: []string{caserecord.EvidenceFilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencefile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CaseRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caserecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
