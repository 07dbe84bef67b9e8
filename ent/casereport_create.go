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
	"github.com/caseops/inquest/ent/casereport"
)

// CaseReportCreate is the builder for creating a CaseReport entity.
type CaseReportCreate struct {
	config
	mutation *CaseReportMutation
	hooks    []Hook
}

// SetCaseID sets the "case_id" field.
func (_c *CaseReportCreate) SetCaseID(v string) *CaseReportCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *CaseReportCreate) SetType(v casereport.Type) *CaseReportCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CaseReportCreate) SetTitle(v string) *CaseReportCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *CaseReportCreate) SetNillableTitle(v *string) *CaseReportCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *CaseReportCreate) SetContent(v string) *CaseReportCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *CaseReportCreate) SetNillableContent(v *string) *CaseReportCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetFormat sets the "format" field.
func (_c *CaseReportCreate) SetFormat(v string) *CaseReportCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_c *CaseReportCreate) SetNillableFormat(v *string) *CaseReportCreate {
	if v != nil {
		_c.SetFormat(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CaseReportCreate) SetStatus(v casereport.Status) *CaseReportCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CaseReportCreate) SetNillableStatus(v *casereport.Status) *CaseReportCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *CaseReportCreate) SetVersion(v int) *CaseReportCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetIsCurrent sets the "is_current" field.
func (_c *CaseReportCreate) SetIsCurrent(v bool) *CaseReportCreate {
	_c.mutation.SetIsCurrent(v)
	return _c
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_c *CaseReportCreate) SetNillableIsCurrent(v *bool) *CaseReportCreate {
	if v != nil {
		_c.SetIsCurrent(*v)
	}
	return _c
}

// SetLinkedToClosure sets the "linked_to_closure" field.
func (_c *CaseReportCreate) SetLinkedToClosure(v bool) *CaseReportCreate {
	_c.mutation.SetLinkedToClosure(v)
	return _c
}

// SetNillableLinkedToClosure sets the "linked_to_closure" field if the given value is not nil.
func (_c *CaseReportCreate) SetNillableLinkedToClosure(v *bool) *CaseReportCreate {
	if v != nil {
		_c.SetLinkedToClosure(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CaseReportCreate) SetErrorMessage(v string) *CaseReportCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *CaseReportCreate) SetNillableErrorMessage(v *string) *CaseReportCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *CaseReportCreate) SetPodID(v string) *CaseReportCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *CaseReportCreate) SetNillablePodID(v *string) *CaseReportCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (_c *CaseReportCreate) SetGenerationTimeMs(v int64) *CaseReportCreate {
	_c.mutation.SetGenerationTimeMs(v)
	return _c
}

// SetNillableGenerationTimeMs sets the "generation_time_ms" field if the given value is not nil.
func (_c *CaseReportCreate) SetNillableGenerationTimeMs(v *int64) *CaseReportCreate {
	if v != nil {
		_c.SetGenerationTimeMs(*v)
	}
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *CaseReportCreate) SetGeneratedAt(v time.Time) *CaseReportCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *CaseReportCreate) SetNillableGeneratedAt(v *time.Time) *CaseReportCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CaseReportCreate) SetCreatedAt(v time.Time) *CaseReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CaseReportCreate) SetNillableCreatedAt(v *time.Time) *CaseReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CaseReportCreate) SetUpdatedAt(v time.Time) *CaseReportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CaseReportCreate) SetNillableUpdatedAt(v *time.Time) *CaseReportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CaseReportCreate) SetID(v string) *CaseReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCase sets the "case" edge to the CaseRecord entity.
func (_c *CaseReportCreate) SetCase(v *CaseRecord) *CaseReportCreate {
	return _c.SetCaseID(v.ID)
}

// Mutation returns the CaseReportMutation object of the builder.
func (_c *CaseReportCreate) Mutation() *CaseReportMutation {
	return _c.mutation
}

// Save creates the CaseReport in the database.
func (_c *CaseReportCreate) Save(ctx context.Context) (*CaseReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaseReportCreate) SaveX(ctx context.Context) *CaseReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CaseReportCreate) defaults() {
	if _, ok := _c.mutation.Format(); !ok {
		v := casereport.DefaultFormat
		_c.mutation.SetFormat(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := casereport.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsCurrent(); !ok {
		v := casereport.DefaultIsCurrent
		_c.mutation.SetIsCurrent(v)
	}
	if _, ok := _c.mutation.LinkedToClosure(); !ok {
		v := casereport.DefaultLinkedToClosure
		_c.mutation.SetLinkedToClosure(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := casereport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := casereport.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaseReportCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "CaseReport.case_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "CaseReport.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := casereport.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "CaseReport.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "CaseReport.format"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CaseReport.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := casereport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CaseReport.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "CaseReport.version"`)}
	}
	if _, ok := _c.mutation.IsCurrent(); !ok {
		return &ValidationError{Name: "is_current", err: errors.New(`ent: missing required field "CaseReport.is_current"`)}
	}
	if _, ok := _c.mutation.LinkedToClosure(); !ok {
		return &ValidationError{Name: "linked_to_closure", err: errors.New(`ent: missing required field "CaseReport.linked_to_closure"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CaseReport.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CaseReport.updated_at"`)}
	}
	if len(_c.mutation.CaseIDs()) == 0 {
		return &ValidationError{Name: "case", err: errors.New(`ent: missing required edge "CaseReport.case"`)}
	}
	return nil
}

func (_c *CaseReportCreate) sqlSave(ctx context.Context) (*CaseReport, error) {
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
			return nil, fmt.Errorf("unexpected CaseReport.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CaseReportCreate) createSpec() (*CaseReport, *sqlgraph.CreateSpec) {
	var (
		_node = &CaseReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(casereport.Table, sqlgraph.NewFieldSpec(casereport.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(casereport.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(casereport.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(casereport.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(casereport.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(casereport.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(casereport.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.IsCurrent(); ok {
		_spec.SetField(casereport.FieldIsCurrent, field.TypeBool, value)
		_node.IsCurrent = value
	}
	if value, ok := _c.mutation.LinkedToClosure(); ok {
		_spec.SetField(casereport.FieldLinkedToClosure, field.TypeBool, value)
		_node.LinkedToClosure = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(casereport.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(casereport.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.GenerationTimeMs(); ok {
		_spec.SetField(casereport.FieldGenerationTimeMs, field.TypeInt64, value)
		_node.GenerationTimeMs = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(casereport.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(casereport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(casereport.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   casereport.CaseTable,
			Columns: []string{casereport.CaseColumn},
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

// CaseReportCreateBulk is the builder for creating many CaseReport entities in bulk.
type CaseReportCreateBulk struct {
	config
	err      error
	builders []*CaseReportCreate
}

// Save creates the CaseReport entities in the database.
func (_c *CaseReportCreateBulk) Save(ctx context.Context) ([]*CaseReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaseReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaseReportMutation)
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
func (_c *CaseReportCreateBulk) SaveX(ctx context.Context) []*CaseReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
