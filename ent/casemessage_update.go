// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/caseops/inquest/ent/casemessage"
	"github.com/caseops/inquest/ent/predicate"
)

// CaseMessageUpdate is the builder for updating CaseMessage entities.
type CaseMessageUpdate struct {
	config
	hooks    []Hook
	mutation *CaseMessageMutation
}

// Where appends a list predicates to the CaseMessageUpdate builder.
func (_u *CaseMessageUpdate) Where(ps ...predicate.CaseMessage) *CaseMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *CaseMessageUpdate) SetRole(v casemessage.Role) *CaseMessageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *CaseMessageUpdate) SetNillableRole(v *casemessage.Role) *CaseMessageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *CaseMessageUpdate) SetContent(v string) *CaseMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CaseMessageUpdate) SetNillableContent(v *string) *CaseMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTurnNumber sets the "turn_number" field.
func (_u *CaseMessageUpdate) SetTurnNumber(v int) *CaseMessageUpdate {
	_u.mutation.ResetTurnNumber()
	_u.mutation.SetTurnNumber(v)
	return _u
}

// SetNillableTurnNumber sets the "turn_number" field if the given value is not nil.
func (_u *CaseMessageUpdate) SetNillableTurnNumber(v *int) *CaseMessageUpdate {
	if v != nil {
		_u.SetTurnNumber(*v)
	}
	return _u
}

// AddTurnNumber adds value to the "turn_number" field.
func (_u *CaseMessageUpdate) AddTurnNumber(v int) *CaseMessageUpdate {
	_u.mutation.AddTurnNumber(v)
	return _u
}

// Mutation returns the CaseMessageMutation object of the builder.
func (_u *CaseMessageUpdate) Mutation() *CaseMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaseMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaseMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseMessageUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := casemessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "CaseMessage.role": %w`, err)}
		}
	}
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaseMessage.case"`)
	}
	return nil
}

func (_u *CaseMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(casemessage.Table, casemessage.Columns, sqlgraph.NewFieldSpec(casemessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(casemessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(casemessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TurnNumber(); ok {
		_spec.SetField(casemessage.FieldTurnNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnNumber(); ok {
		_spec.AddField(casemessage.FieldTurnNumber, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{casemessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaseMessageUpdateOne is the builder for updating a single CaseMessage entity.
type CaseMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaseMessageMutation
}

// SetRole sets the "role" field.
func (_u *CaseMessageUpdateOne) SetRole(v casemessage.Role) *CaseMessageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *CaseMessageUpdateOne) SetNillableRole(v *casemessage.Role) *CaseMessageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *CaseMessageUpdateOne) SetContent(v string) *CaseMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CaseMessageUpdateOne) SetNillableContent(v *string) *CaseMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTurnNumber sets the "turn_number" field.
func (_u *CaseMessageUpdateOne) SetTurnNumber(v int) *CaseMessageUpdateOne {
	_u.mutation.ResetTurnNumber()
	_u.mutation.SetTurnNumber(v)
	return _u
}

// SetNillableTurnNumber sets the "turn_number" field if the given value is not nil.
func (_u *CaseMessageUpdateOne) SetNillableTurnNumber(v *int) *CaseMessageUpdateOne {
	if v != nil {
		_u.SetTurnNumber(*v)
	}
	return _u
}

// AddTurnNumber adds value to the "turn_number" field.
func (_u *CaseMessageUpdateOne) AddTurnNumber(v int) *CaseMessageUpdateOne {
	_u.mutation.AddTurnNumber(v)
	return _u
}

// Mutation returns the CaseMessageMutation object of the builder.
func (_u *CaseMessageUpdateOne) Mutation() *CaseMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the CaseMessageUpdate builder.
func (_u *CaseMessageUpdateOne) Where(ps ...predicate.CaseMessage) *CaseMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaseMessageUpdateOne) Select(field string, fields ...string) *CaseMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaseMessage entity.
func (_u *CaseMessageUpdateOne) Save(ctx context.Context) (*CaseMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseMessageUpdateOne) SaveX(ctx context.Context) *CaseMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaseMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := casemessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "CaseMessage.role": %w`, err)}
		}
	}
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaseMessage.case"`)
	}
	return nil
}

func (_u *CaseMessageUpdateOne) sqlSave(ctx context.Context) (_node *CaseMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(casemessage.Table, casemessage.Columns, sqlgraph.NewFieldSpec(casemessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaseMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, casemessage.FieldID)
		for _, f := range fields {
			if !casemessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != casemessage.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(casemessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(casemessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TurnNumber(); ok {
		_spec.SetField(casemessage.FieldTurnNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnNumber(); ok {
		_spec.AddField(casemessage.FieldTurnNumber, field.TypeInt, value)
	}
	_node = &CaseMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{casemessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
