// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/caseops/inquest/ent/caserecord"
	"github.com/caseops/inquest/ent/evidencefile"
)

// EvidenceFileCreate is the builder for creating a EvidenceFile entity.
type EvidenceFileCreate struct {
	config
	mutation *EvidenceFileMutation
	hooks    []Hook
}

// SetCaseID sets the "case_id" field.
func (_c *EvidenceFileCreate) SetCaseID(v string) *EvidenceFileCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *EvidenceFileCreate) SetFilename(v string) *EvidenceFileCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *EvidenceFileCreate) SetContentType(v string) *EvidenceFileCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetStoragePath sets the "storage_path" field.
func (_c *EvidenceFileCreate) SetStoragePath(v string) *EvidenceFileCreate {
	_c.mutation.SetStoragePath(v)
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *EvidenceFileCreate) SetSizeBytes(v int64) *EvidenceFileCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetEvidenceID sets the "evidence_id" field.
func (_c *EvidenceFileCreate) SetEvidenceID(v string) *EvidenceFileCreate {
	_c.mutation.SetEvidenceID(v)
	return _c
}

// SetNillableEvidenceID sets the "evidence_id" field if the given value is not nil.
func (_c *EvidenceFileCreate) SetNillableEvidenceID(v *string) *EvidenceFileCreate {
	if v != nil {
		_c.SetEvidenceID(*v)
	}
	return _c
}

// SetContentSummary sets the "content_summary" field.
func (_c *EvidenceFileCreate) SetContentSummary(v string) *EvidenceFileCreate {
	_c.mutation.SetContentSummary(v)
	return _c
}

// SetNillableContentSummary sets the "content_summary" field if the given value is not nil.
func (_c *EvidenceFileCreate) SetNillableContentSummary(v *string) *EvidenceFileCreate {
	if v != nil {
		_c.SetContentSummary(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvidenceFileCreate) SetCreatedAt(v time.Time) *EvidenceFileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvidenceFileCreate) SetNillableCreatedAt(v *time.Time) *EvidenceFileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvidenceFileCreate) SetID(v string) *EvidenceFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCase sets the "case" edge to the CaseRecord entity.
func (_c *EvidenceFileCreate) SetCase(v *CaseRecord) *EvidenceFileCreate {
	return _c.SetCaseID(v.ID)
}

// Mutation returns the EvidenceFileMutation object of the builder.
func (_c *EvidenceFileCreate) Mutation() *EvidenceFileMutation {
	return _c.mutation
}

// Save creates the EvidenceFile in the database.
func (_c *EvidenceFileCreate) Save(ctx context.Context) (*EvidenceFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvidenceFileCreate) SaveX(ctx context.Context) *EvidenceFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvidenceFileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evidencefile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvidenceFileCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "EvidenceFile.case_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "EvidenceFile.filename"`)}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "EvidenceFile.content_type"`)}
	}
	if _, ok := _c.mutation.StoragePath(); !ok {
		return &ValidationError{Name: "storage_path", err: errors.New(`ent: missing required field "EvidenceFile.storage_path"`)}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "EvidenceFile.size_bytes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EvidenceFile.created_at"`)}
	}
	if len(_c.mutation.CaseIDs()) == 0 {
		return &ValidationError{Name: "case", err: errors.New(`ent: missing required edge "EvidenceFile.case"`)}
	}
	return nil
}

func (_c *EvidenceFileCreate) sqlSave(ctx context.Context) (*EvidenceFile, error) {
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
			return nil, fmt.Errorf("unexpected EvidenceFile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvidenceFileCreate) createSpec() (*EvidenceFile, *sqlgraph.CreateSpec) {
	var (
		_node = &EvidenceFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evidencefile.Table, sqlgraph.NewFieldSpec(evidencefile.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(evidencefile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(evidencefile.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.StoragePath(); ok {
		_spec.SetField(evidencefile.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(evidencefile.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.EvidenceID(); ok {
		_spec.SetField(evidencefile.FieldEvidenceID, field.TypeString, value)
		_node.EvidenceID = &value
	}
	if value, ok := _c.mutation.ContentSummary(); ok {
		_spec.SetField(evidencefile.FieldContentSummary, field.TypeString, value)
		_node.ContentSummary = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evidencefile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evidencefile.CaseTable,
			Columns: []string{evidencefile.CaseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caserecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CaseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EvidenceFileCreateBulk is the builder for creating many EvidenceFile entities in bulk.
type EvidenceFileCreateBulk struct {
	config
	err      error
	builders []*EvidenceFileCreate
}

// Save creates the EvidenceFile entities in the database.
func (_c *EvidenceFileCreateBulk) Save(ctx context.Context) ([]*EvidenceFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvidenceFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvidenceFileMutation)
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
func (_c *EvidenceFileCreateBulk) SaveX(ctx context.Context) []*EvidenceFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
