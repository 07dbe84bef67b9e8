// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/caseops/inquest/ent/casemessage"
	"github.com/caseops/inquest/ent/caserecord"
	"github.com/caseops/inquest/ent/casereport"
	"github.com/caseops/inquest/ent/evidencefile"
)

// CaseRecordCreate is the builder for creating a CaseRecord entity.
type CaseRecordCreate struct {
	config
	mutation *CaseRecordMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *CaseRecordCreate) SetOwnerID(v string) *CaseRecordCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CaseRecordCreate) SetTitle(v string) *CaseRecordCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CaseRecordCreate) SetDescription(v string) *CaseRecordCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableDescription(v *string) *CaseRecordCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CaseRecordCreate) SetStatus(v caserecord.Status) *CaseRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableStatus(v *caserecord.Status) *CaseRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *CaseRecordCreate) SetPriority(v caserecord.Priority) *CaseRecordCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillablePriority(v *caserecord.Priority) *CaseRecordCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *CaseRecordCreate) SetTags(v []string) *CaseRecordCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *CaseRecordCreate) SetMetadata(v map[string]interface{}) *CaseRecordCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CaseRecordCreate) SetCreatedAt(v time.Time) *CaseRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableCreatedAt(v *time.Time) *CaseRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CaseRecordCreate) SetUpdatedAt(v time.Time) *CaseRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableUpdatedAt(v *time.Time) *CaseRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *CaseRecordCreate) SetResolvedAt(v time.Time) *CaseRecordCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableResolvedAt(v *time.Time) *CaseRecordCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetResolvedBy sets the "resolved_by" field.
func (_c *CaseRecordCreate) SetResolvedBy(v string) *CaseRecordCreate {
	_c.mutation.SetResolvedBy(v)
	return _c
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableResolvedBy(v *string) *CaseRecordCreate {
	if v != nil {
		_c.SetResolvedBy(*v)
	}
	return _c
}

// SetClosedAt sets the "closed_at" field.
func (_c *CaseRecordCreate) SetClosedAt(v time.Time) *CaseRecordCreate {
	_c.mutation.SetClosedAt(v)
	return _c
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableClosedAt(v *time.Time) *CaseRecordCreate {
	if v != nil {
		_c.SetClosedAt(*v)
	}
	return _c
}

// SetClosedBy sets the "closed_by" field.
func (_c *CaseRecordCreate) SetClosedBy(v string) *CaseRecordCreate {
	_c.mutation.SetClosedBy(v)
	return _c
}

// SetNillableClosedBy sets the "closed_by" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableClosedBy(v *string) *CaseRecordCreate {
	if v != nil {
		_c.SetClosedBy(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *CaseRecordCreate) SetDeletedAt(v time.Time) *CaseRecordCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableDeletedAt(v *time.Time) *CaseRecordCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CaseRecordCreate) SetID(v string) *CaseRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMessageIDs adds the "messages" edge to the CaseMessage entity by IDs.
func (_c *CaseRecordCreate) AddMessageIDs(ids ...string) *CaseRecordCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the CaseMessage entity.
func (_c *CaseRecordCreate) AddMessages(v ...*CaseMessage) *CaseRecordCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the CaseReport entity by IDs.
func (_c *CaseRecordCreate) AddReportIDs(ids ...string) *CaseRecordCreate {
	_c.mutation.AddReportIDs(ids...)
	return _c
}

// AddReports adds the "reports" edges to the CaseReport entity.
func (_c *CaseRecordCreate) AddReports(v ...*CaseReport) *CaseRecordCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReportIDs(ids...)
}

// AddEvidenceFileIDs adds the "evidence_files" edge to the EvidenceFile entity by IDs.
func (_c *CaseRecordCreate) AddEvidenceFileIDs(ids ...string) *CaseRecordCreate {
	_c.mutation.AddEvidenceFileIDs(ids...)
	return _c
}

// AddEvidenceFiles adds the "evidence_files" edges to the EvidenceFile entity.
func (_c *CaseRecordCreate) AddEvidenceFiles(v ...*EvidenceFile) *CaseRecordCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvidenceFileIDs(ids...)
}

// Mutation returns the CaseRecordMutation object of the builder.
func (_c *CaseRecordCreate) Mutation() *CaseRecordMutation {
	return _c.mutation
}

// Save creates the CaseRecord in the database.
func (_c *CaseRecordCreate) Save(ctx context.Context) (*CaseRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaseRecordCreate) SaveX(ctx context.Context) *CaseRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CaseRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := caserecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := caserecord.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := caserecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := caserecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaseRecordCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "CaseRecord.owner_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CaseRecord.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CaseRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := caserecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CaseRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "CaseRecord.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := caserecord.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "CaseRecord.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CaseRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CaseRecord.updated_at"`)}
	}
	return nil
}

func (_c *CaseRecordCreate) sqlSave(ctx context.Context) (*CaseRecord, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CaseRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CaseRecordCreate) createSpec() (*CaseRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &CaseRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(caserecord.Table, sqlgraph.NewFieldSpec(caserecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(caserecord.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(caserecord.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(caserecord.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(caserecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(caserecord.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(caserecord.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(caserecord.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(caserecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(caserecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(caserecord.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.ResolvedBy(); ok {
		_spec.SetField(caserecord.FieldResolvedBy, field.TypeString, value)
		_node.ResolvedBy = &value
	}
	if value, ok := _c.mutation.ClosedAt(); ok {
		_spec.SetField(caserecord.FieldClosedAt, field.TypeTime, value)
		_node.ClosedAt = &value
	}
	if value, ok := _c.mutation.ClosedBy(); ok {
		_spec.SetField(caserecord.FieldClosedBy, field.TypeString, value)
		_node.ClosedBy = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(caserecord.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReportsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvidenceFilesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CaseRecordCreateBulk is the builder for creating many CaseRecord entities in bulk.
type CaseRecordCreateBulk struct {
	config
	err      error
	builders []*CaseRecordCreate
}

// Save creates the CaseRecord entities in the database.
func (_c *CaseRecordCreateBulk) Save(ctx context.Context) ([]*CaseRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaseRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaseRecordMutation)
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
func (_c *CaseRecordCreateBulk) SaveX(ctx context.Context) []*CaseRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
