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
)

// CaseMessageCreate is the builder for creating a CaseMessage entity.
type CaseMessageCreate struct {
	config
	mutation *CaseMessageMutation
	hooks    []Hook
}

// SetCaseID sets the "case_id" field.
func (_c *CaseMessageCreate) SetCaseID(v string) *CaseMessageCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *CaseMessageCreate) SetRole(v casemessage.Role) *CaseMessageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *CaseMessageCreate) SetContent(v string) *CaseMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetTurnNumber sets the "turn_number" field.
func (_c *CaseMessageCreate) SetTurnNumber(v int) *CaseMessageCreate {
	_c.mutation.SetTurnNumber(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CaseMessageCreate) SetCreatedAt(v time.Time) *CaseMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CaseMessageCreate) SetNillableCreatedAt(v *time.Time) *CaseMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CaseMessageCreate) SetID(v string) *CaseMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCase sets the "case" edge to the CaseRecord entity.
func (_c *CaseMessageCreate) SetCase(v *CaseRecord) *CaseMessageCreate {
	return _c.SetCaseID(v.ID)
}

// Mutation returns the CaseMessageMutation object of the builder.
func (_c *CaseMessageCreate) Mutation() *CaseMessageMutation {
	return _c.mutation
}

// Save creates the CaseMessage in the database.
func (_c *CaseMessageCreate) Save(ctx context.Context) (*CaseMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaseMessageCreate) SaveX(ctx context.Context) *CaseMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CaseMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := casemessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaseMessageCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "CaseMessage.case_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "CaseMessage.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := casemessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "CaseMessage.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "CaseMessage.content"`)}
	}
	if _, ok := _c.mutation.TurnNumber(); !ok {
		return &ValidationError{Name: "turn_number", err: errors.New(`ent: missing required field "CaseMessage.turn_number"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CaseMessage.created_at"`)}
	}
	if len(_c.mutation.CaseIDs()) == 0 {
		return &ValidationError{Name: "case", err: errors.New(`ent: missing required edge "CaseMessage.case"`)}
	}
	return nil
}

func (_c *CaseMessageCreate) sqlSave(ctx context.Context) (*CaseMessage, error) {
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
			return nil, fmt.Errorf("unexpected CaseMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CaseMessageCreate) createSpec() (*CaseMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &CaseMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(casemessage.Table, sqlgraph.NewFieldSpec(casemessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(casemessage.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(casemessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.TurnNumber(); ok {
		_spec.SetField(casemessage.FieldTurnNumber, field.TypeInt, value)
		_node.TurnNumber = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(casemessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   casemessage.CaseTable,
			Columns: []string{casemessage.CaseColumn},
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

// CaseMessageCreateBulk is the builder for creating many CaseMessage entities in bulk.
type CaseMessageCreateBulk struct {
	config
	err      error
	builders []*CaseMessageCreate
}

// Save creates the CaseMessage entities in the database.
func (_c *CaseMessageCreateBulk) Save(ctx context.Context) ([]*CaseMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaseMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaseMessageMutation)
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
func (_c *CaseMessageCreateBulk) SaveX(ctx context.Context) []*CaseMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
