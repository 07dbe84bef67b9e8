// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/caseops/inquest/ent/casemessage"
	"github.com/caseops/inquest/ent/caserecord"
	"github.com/caseops/inquest/ent/casereport"
	"github.com/caseops/inquest/ent/evidencefile"
	"github.com/caseops/inquest/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCaseMessage  = "CaseMessage"
	TypeCaseRecord   = "CaseRecord"
	TypeCaseReport   = "CaseReport"
	TypeEvidenceFile = "EvidenceFile"
)

// CaseMessageMutation represents an operation that mutates the CaseMessage nodes in the graph.
type CaseMessageMutation struct {
	config
	op             Op
	typ            string
	id             *string
	role           *casemessage.Role
	content        *string
	turn_number    *int
	addturn_number *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	_case          *string
	cleared_case   bool
	done           bool
	oldValue       func(context.Context) (*CaseMessage, error)
	predicates     []predicate.CaseMessage
}

var _ ent.Mutation = (*CaseMessageMutation)(nil)

// casemessageOption allows management of the mutation configuration using functional options.
type casemessageOption func(*CaseMessageMutation)

// newCaseMessageMutation creates new mutation for the CaseMessage entity.
func newCaseMessageMutation(c config, op Op, opts ...casemessageOption) *CaseMessageMutation {
	m := &CaseMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeCaseMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCaseMessageID sets the ID field of the mutation.
func withCaseMessageID(id string) casemessageOption {
	return func(m *CaseMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *CaseMessage
		)
		m.oldValue = func(ctx context.Context) (*CaseMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CaseMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCaseMessage sets the old CaseMessage of the mutation.
func withCaseMessage(node *CaseMessage) casemessageOption {
	return func(m *CaseMessageMutation) {
		m.oldValue = func(context.Context) (*CaseMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CaseMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CaseMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CaseMessage entities.
func (m *CaseMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CaseMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CaseMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CaseMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *CaseMessageMutation) SetCaseID(s string) {
	m._case = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *CaseMessageMutation) CaseID() (r string, exists bool) {
	v := m._case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the CaseMessage entity.
// If the CaseMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseMessageMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *CaseMessageMutation) ResetCaseID() {
	m._case = nil
}

// SetRole sets the "role" field.
func (m *CaseMessageMutation) SetRole(c casemessage.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *CaseMessageMutation) Role() (r casemessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the CaseMessage entity.
// If the CaseMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseMessageMutation) OldRole(ctx context.Context) (v casemessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *CaseMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *CaseMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *CaseMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the CaseMessage entity.
// If the CaseMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *CaseMessageMutation) ResetContent() {
	m.content = nil
}

// SetTurnNumber sets the "turn_number" field.
func (m *CaseMessageMutation) SetTurnNumber(i int) {
	m.turn_number = &i
	m.addturn_number = nil
}

// TurnNumber returns the value of the "turn_number" field in the mutation.
func (m *CaseMessageMutation) TurnNumber() (r int, exists bool) {
	v := m.turn_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnNumber returns the old "turn_number" field's value of the CaseMessage entity.
// If the CaseMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseMessageMutation) OldTurnNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnNumber: %w", err)
	}
	return oldValue.TurnNumber, nil
}

// AddTurnNumber adds i to the "turn_number" field.
func (m *CaseMessageMutation) AddTurnNumber(i int) {
	if m.addturn_number != nil {
		*m.addturn_number += i
	} else {
		m.addturn_number = &i
	}
}

// AddedTurnNumber returns the value that was added to the "turn_number" field in this mutation.
func (m *CaseMessageMutation) AddedTurnNumber() (r int, exists bool) {
	v := m.addturn_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnNumber resets all changes to the "turn_number" field.
func (m *CaseMessageMutation) ResetTurnNumber() {
	m.turn_number = nil
	m.addturn_number = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CaseMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CaseMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CaseMessage entity.
// If the CaseMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CaseMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCase clears the "case" edge to the CaseRecord entity.
func (m *CaseMessageMutation) ClearCase() {
	m.cleared_case = true
	m.clearedFields[casemessage.FieldCaseID] = struct{}{}
}

// CaseCleared reports if the "case" edge to the CaseRecord entity was cleared.
func (m *CaseMessageMutation) CaseCleared() bool {
	return m.cleared_case
}

// CaseIDs returns the "case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CaseID instead. It exists only for internal usage by the builders.
func (m *CaseMessageMutation) CaseIDs() (ids []string) {
	if id := m._case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCase resets all changes to the "case" edge.
func (m *CaseMessageMutation) ResetCase() {
	m._case = nil
	m.cleared_case = false
}

// Where appends a list predicates to the CaseMessageMutation builder.
func (m *CaseMessageMutation) Where(ps ...predicate.CaseMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CaseMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CaseMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CaseMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CaseMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CaseMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CaseMessage).
func (m *CaseMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CaseMessageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m._case != nil {
		fields = append(fields, casemessage.FieldCaseID)
	}
	if m.role != nil {
		fields = append(fields, casemessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, casemessage.FieldContent)
	}
	if m.turn_number != nil {
		fields = append(fields, casemessage.FieldTurnNumber)
	}
	if m.created_at != nil {
		fields = append(fields, casemessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CaseMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case casemessage.FieldCaseID:
		return m.CaseID()
	case casemessage.FieldRole:
		return m.Role()
	case casemessage.FieldContent:
		return m.Content()
	case casemessage.FieldTurnNumber:
		return m.TurnNumber()
	case casemessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CaseMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case casemessage.FieldCaseID:
		return m.OldCaseID(ctx)
	case casemessage.FieldRole:
		return m.OldRole(ctx)
	case casemessage.FieldContent:
		return m.OldContent(ctx)
	case casemessage.FieldTurnNumber:
		return m.OldTurnNumber(ctx)
	case casemessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CaseMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case casemessage.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case casemessage.FieldRole:
		v, ok := value.(casemessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case casemessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case casemessage.FieldTurnNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnNumber(v)
		return nil
	case casemessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CaseMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CaseMessageMutation) AddedFields() []string {
	var fields []string
	if m.addturn_number != nil {
		fields = append(fields, casemessage.FieldTurnNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CaseMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case casemessage.FieldTurnNumber:
		return m.AddedTurnNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case casemessage.FieldTurnNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnNumber(v)
		return nil
	}
	return fmt.Errorf("unknown CaseMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CaseMessageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CaseMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CaseMessageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CaseMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CaseMessageMutation) ResetField(name string) error {
	switch name {
	case casemessage.FieldCaseID:
		m.ResetCaseID()
		return nil
	case casemessage.FieldRole:
		m.ResetRole()
		return nil
	case casemessage.FieldContent:
		m.ResetContent()
		return nil
	case casemessage.FieldTurnNumber:
		m.ResetTurnNumber()
		return nil
	case casemessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CaseMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CaseMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._case != nil {
		edges = append(edges, casemessage.EdgeCase)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CaseMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case casemessage.EdgeCase:
		if id := m._case; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CaseMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CaseMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CaseMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_case {
		edges = append(edges, casemessage.EdgeCase)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CaseMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case casemessage.EdgeCase:
		return m.cleared_case
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CaseMessageMutation) ClearEdge(name string) error {
	switch name {
	case casemessage.EdgeCase:
		m.ClearCase()
		return nil
	}
	return fmt.Errorf("unknown CaseMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CaseMessageMutation) ResetEdge(name string) error {
	switch name {
	case casemessage.EdgeCase:
		m.ResetCase()
		return nil
	}
	return fmt.Errorf("unknown CaseMessage edge %s", name)
}

// CaseRecordMutation represents an operation that mutates the CaseRecord nodes in the graph.
type CaseRecordMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	owner_id              *string
	title                 *string
	description           *string
	status                *caserecord.Status
	priority              *caserecord.Priority
	tags                  *[]string
	appendtags            []string
	metadata              *map[string]interface{}
	created_at            *time.Time
	updated_at            *time.Time
	resolved_at           *time.Time
	resolved_by           *string
	closed_at             *time.Time
	closed_by             *string
	deleted_at            *time.Time
	clearedFields         map[string]struct{}
	messages              map[string]struct{}
	removedmessages       map[string]struct{}
	clearedmessages       bool
	reports               map[string]struct{}
	removedreports        map[string]struct{}
	clearedreports        bool
	evidence_files        map[string]struct{}
	removedevidence_files map[string]struct{}
	clearedevidence_files bool
	done                  bool
	oldValue              func(context.Context) (*CaseRecord, error)
	predicates            []predicate.CaseRecord
}

var _ ent.Mutation = (*CaseRecordMutation)(nil)

// caserecordOption allows management of the mutation configuration using functional options.
type caserecordOption func(*CaseRecordMutation)

// newCaseRecordMutation creates new mutation for the CaseRecord entity.
func newCaseRecordMutation(c config, op Op, opts ...caserecordOption) *CaseRecordMutation {
	m := &CaseRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeCaseRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCaseRecordID sets the ID field of the mutation.
func withCaseRecordID(id string) caserecordOption {
	return func(m *CaseRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *CaseRecord
		)
		m.oldValue = func(ctx context.Context) (*CaseRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CaseRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCaseRecord sets the old CaseRecord of the mutation.
func withCaseRecord(node *CaseRecord) caserecordOption {
	return func(m *CaseRecordMutation) {
		m.oldValue = func(context.Context) (*CaseRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CaseRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CaseRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CaseRecord entities.
func (m *CaseRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CaseRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CaseRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CaseRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *CaseRecordMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *CaseRecordMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *CaseRecordMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetTitle sets the "title" field.
func (m *CaseRecordMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CaseRecordMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CaseRecordMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *CaseRecordMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CaseRecordMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CaseRecordMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[caserecord.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CaseRecordMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[caserecord.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CaseRecordMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, caserecord.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *CaseRecordMutation) SetStatus(c caserecord.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CaseRecordMutation) Status() (r caserecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldStatus(ctx context.Context) (v caserecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CaseRecordMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *CaseRecordMutation) SetPriority(c caserecord.Priority) {
	m.priority = &c
}

// Priority returns the value of the "priority" field in the mutation.
func (m *CaseRecordMutation) Priority() (r caserecord.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldPriority(ctx context.Context) (v caserecord.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *CaseRecordMutation) ResetPriority() {
	m.priority = nil
}

// SetTags sets the "tags" field.
func (m *CaseRecordMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *CaseRecordMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *CaseRecordMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *CaseRecordMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *CaseRecordMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[caserecord.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *CaseRecordMutation) TagsCleared() bool {
	_, ok := m.clearedFields[caserecord.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *CaseRecordMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, caserecord.FieldTags)
}

// SetMetadata sets the "metadata" field.
func (m *CaseRecordMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *CaseRecordMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *CaseRecordMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[caserecord.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *CaseRecordMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[caserecord.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *CaseRecordMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, caserecord.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *CaseRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CaseRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CaseRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CaseRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CaseRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CaseRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *CaseRecordMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *CaseRecordMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *CaseRecordMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[caserecord.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *CaseRecordMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[caserecord.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *CaseRecordMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, caserecord.FieldResolvedAt)
}

// SetResolvedBy sets the "resolved_by" field.
func (m *CaseRecordMutation) SetResolvedBy(s string) {
	m.resolved_by = &s
}

// ResolvedBy returns the value of the "resolved_by" field in the mutation.
func (m *CaseRecordMutation) ResolvedBy() (r string, exists bool) {
	v := m.resolved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedBy returns the old "resolved_by" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldResolvedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedBy: %w", err)
	}
	return oldValue.ResolvedBy, nil
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (m *CaseRecordMutation) ClearResolvedBy() {
	m.resolved_by = nil
	m.clearedFields[caserecord.FieldResolvedBy] = struct{}{}
}

// ResolvedByCleared returns if the "resolved_by" field was cleared in this mutation.
func (m *CaseRecordMutation) ResolvedByCleared() bool {
	_, ok := m.clearedFields[caserecord.FieldResolvedBy]
	return ok
}

// ResetResolvedBy resets all changes to the "resolved_by" field.
func (m *CaseRecordMutation) ResetResolvedBy() {
	m.resolved_by = nil
	delete(m.clearedFields, caserecord.FieldResolvedBy)
}

// SetClosedAt sets the "closed_at" field.
func (m *CaseRecordMutation) SetClosedAt(t time.Time) {
	m.closed_at = &t
}

// ClosedAt returns the value of the "closed_at" field in the mutation.
func (m *CaseRecordMutation) ClosedAt() (r time.Time, exists bool) {
	v := m.closed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedAt returns the old "closed_at" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldClosedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedAt: %w", err)
	}
	return oldValue.ClosedAt, nil
}

// ClearClosedAt clears the value of the "closed_at" field.
func (m *CaseRecordMutation) ClearClosedAt() {
	m.closed_at = nil
	m.clearedFields[caserecord.FieldClosedAt] = struct{}{}
}

// ClosedAtCleared returns if the "closed_at" field was cleared in this mutation.
func (m *CaseRecordMutation) ClosedAtCleared() bool {
	_, ok := m.clearedFields[caserecord.FieldClosedAt]
	return ok
}

// ResetClosedAt resets all changes to the "closed_at" field.
func (m *CaseRecordMutation) ResetClosedAt() {
	m.closed_at = nil
	delete(m.clearedFields, caserecord.FieldClosedAt)
}

// SetClosedBy sets the "closed_by" field.
func (m *CaseRecordMutation) SetClosedBy(s string) {
	m.closed_by = &s
}

// ClosedBy returns the value of the "closed_by" field in the mutation.
func (m *CaseRecordMutation) ClosedBy() (r string, exists bool) {
	v := m.closed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedBy returns the old "closed_by" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldClosedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedBy: %w", err)
	}
	return oldValue.ClosedBy, nil
}

// ClearClosedBy clears the value of the "closed_by" field.
func (m *CaseRecordMutation) ClearClosedBy() {
	m.closed_by = nil
	m.clearedFields[caserecord.FieldClosedBy] = struct{}{}
}

// ClosedByCleared returns if the "closed_by" field was cleared in this mutation.
func (m *CaseRecordMutation) ClosedByCleared() bool {
	_, ok := m.clearedFields[caserecord.FieldClosedBy]
	return ok
}

// ResetClosedBy resets all changes to the "closed_by" field.
func (m *CaseRecordMutation) ResetClosedBy() {
	m.closed_by = nil
	delete(m.clearedFields, caserecord.FieldClosedBy)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *CaseRecordMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *CaseRecordMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *CaseRecordMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[caserecord.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *CaseRecordMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[caserecord.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *CaseRecordMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, caserecord.FieldDeletedAt)
}

// AddMessageIDs adds the "messages" edge to the CaseMessage entity by ids.
func (m *CaseRecordMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the CaseMessage entity.
func (m *CaseRecordMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the CaseMessage entity was cleared.
func (m *CaseRecordMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the CaseMessage entity by IDs.
func (m *CaseRecordMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the CaseMessage entity.
func (m *CaseRecordMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *CaseRecordMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *CaseRecordMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddReportIDs adds the "reports" edge to the CaseReport entity by ids.
func (m *CaseRecordMutation) AddReportIDs(ids ...string) {
	if m.reports == nil {
		m.reports = make(map[string]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the CaseReport entity.
func (m *CaseRecordMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the CaseReport entity was cleared.
func (m *CaseRecordMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the CaseReport entity by IDs.
func (m *CaseRecordMutation) RemoveReportIDs(ids ...string) {
	if m.removedreports == nil {
		m.removedreports = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the CaseReport entity.
func (m *CaseRecordMutation) RemovedReportsIDs() (ids []string) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *CaseRecordMutation) ReportsIDs() (ids []string) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *CaseRecordMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// AddEvidenceFileIDs adds the "evidence_files" edge to the EvidenceFile entity by ids.
func (m *CaseRecordMutation) AddEvidenceFileIDs(ids ...string) {
	if m.evidence_files == nil {
		m.evidence_files = make(map[string]struct{})
	}
	for i := range ids {
		m.evidence_files[ids[i]] = struct{}{}
	}
}

// ClearEvidenceFiles clears the "evidence_files" edge to the EvidenceFile entity.
func (m *CaseRecordMutation) ClearEvidenceFiles() {
	m.clearedevidence_files = true
}

// EvidenceFilesCleared reports if the "evidence_files" edge to the EvidenceFile entity was cleared.
func (m *CaseRecordMutation) EvidenceFilesCleared() bool {
	return m.clearedevidence_files
}

// RemoveEvidenceFileIDs removes the "evidence_files" edge to the EvidenceFile entity by IDs.
func (m *CaseRecordMutation) RemoveEvidenceFileIDs(ids ...string) {
	if m.removedevidence_files == nil {
		m.removedevidence_files = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evidence_files, ids[i])
		m.removedevidence_files[ids[i]] = struct{}{}
	}
}

// RemovedEvidenceFiles returns the removed IDs of the "evidence_files" edge to the EvidenceFile entity.
func (m *CaseRecordMutation) RemovedEvidenceFilesIDs() (ids []string) {
	for id := range m.removedevidence_files {
		ids = append(ids, id)
	}
	return
}

// EvidenceFilesIDs returns the "evidence_files" edge IDs in the mutation.
func (m *CaseRecordMutation) EvidenceFilesIDs() (ids []string) {
	for id := range m.evidence_files {
		ids = append(ids, id)
	}
	return
}

// ResetEvidenceFiles resets all changes to the "evidence_files" edge.
func (m *CaseRecordMutation) ResetEvidenceFiles() {
	m.evidence_files = nil
	m.clearedevidence_files = false
	m.removedevidence_files = nil
}

// Where appends a list predicates to the CaseRecordMutation builder.
func (m *CaseRecordMutation) Where(ps ...predicate.CaseRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CaseRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CaseRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CaseRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CaseRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CaseRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CaseRecord).
func (m *CaseRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CaseRecordMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.owner_id != nil {
		fields = append(fields, caserecord.FieldOwnerID)
	}
	if m.title != nil {
		fields = append(fields, caserecord.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, caserecord.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, caserecord.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, caserecord.FieldPriority)
	}
	if m.tags != nil {
		fields = append(fields, caserecord.FieldTags)
	}
	if m.metadata != nil {
		fields = append(fields, caserecord.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, caserecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, caserecord.FieldUpdatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, caserecord.FieldResolvedAt)
	}
	if m.resolved_by != nil {
		fields = append(fields, caserecord.FieldResolvedBy)
	}
	if m.closed_at != nil {
		fields = append(fields, caserecord.FieldClosedAt)
	}
	if m.closed_by != nil {
		fields = append(fields, caserecord.FieldClosedBy)
	}
	if m.deleted_at != nil {
		fields = append(fields, caserecord.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CaseRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case caserecord.FieldOwnerID:
		return m.OwnerID()
	case caserecord.FieldTitle:
		return m.Title()
	case caserecord.FieldDescription:
		return m.Description()
	case caserecord.FieldStatus:
		return m.Status()
	case caserecord.FieldPriority:
		return m.Priority()
	case caserecord.FieldTags:
		return m.Tags()
	case caserecord.FieldMetadata:
		return m.Metadata()
	case caserecord.FieldCreatedAt:
		return m.CreatedAt()
	case caserecord.FieldUpdatedAt:
		return m.UpdatedAt()
	case caserecord.FieldResolvedAt:
		return m.ResolvedAt()
	case caserecord.FieldResolvedBy:
		return m.ResolvedBy()
	case caserecord.FieldClosedAt:
		return m.ClosedAt()
	case caserecord.FieldClosedBy:
		return m.ClosedBy()
	case caserecord.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CaseRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case caserecord.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case caserecord.FieldTitle:
		return m.OldTitle(ctx)
	case caserecord.FieldDescription:
		return m.OldDescription(ctx)
	case caserecord.FieldStatus:
		return m.OldStatus(ctx)
	case caserecord.FieldPriority:
		return m.OldPriority(ctx)
	case caserecord.FieldTags:
		return m.OldTags(ctx)
	case caserecord.FieldMetadata:
		return m.OldMetadata(ctx)
	case caserecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case caserecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case caserecord.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case caserecord.FieldResolvedBy:
		return m.OldResolvedBy(ctx)
	case caserecord.FieldClosedAt:
		return m.OldClosedAt(ctx)
	case caserecord.FieldClosedBy:
		return m.OldClosedBy(ctx)
	case caserecord.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CaseRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case caserecord.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case caserecord.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case caserecord.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case caserecord.FieldStatus:
		v, ok := value.(caserecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case caserecord.FieldPriority:
		v, ok := value.(caserecord.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case caserecord.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case caserecord.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case caserecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case caserecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case caserecord.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case caserecord.FieldResolvedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedBy(v)
		return nil
	case caserecord.FieldClosedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedAt(v)
		return nil
	case caserecord.FieldClosedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedBy(v)
		return nil
	case caserecord.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CaseRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CaseRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CaseRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CaseRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CaseRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(caserecord.FieldDescription) {
		fields = append(fields, caserecord.FieldDescription)
	}
	if m.FieldCleared(caserecord.FieldTags) {
		fields = append(fields, caserecord.FieldTags)
	}
	if m.FieldCleared(caserecord.FieldMetadata) {
		fields = append(fields, caserecord.FieldMetadata)
	}
	if m.FieldCleared(caserecord.FieldResolvedAt) {
		fields = append(fields, caserecord.FieldResolvedAt)
	}
	if m.FieldCleared(caserecord.FieldResolvedBy) {
		fields = append(fields, caserecord.FieldResolvedBy)
	}
	if m.FieldCleared(caserecord.FieldClosedAt) {
		fields = append(fields, caserecord.FieldClosedAt)
	}
	if m.FieldCleared(caserecord.FieldClosedBy) {
		fields = append(fields, caserecord.FieldClosedBy)
	}
	if m.FieldCleared(caserecord.FieldDeletedAt) {
		fields = append(fields, caserecord.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CaseRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CaseRecordMutation) ClearField(name string) error {
	switch name {
	case caserecord.FieldDescription:
		m.ClearDescription()
		return nil
	case caserecord.FieldTags:
		m.ClearTags()
		return nil
	case caserecord.FieldMetadata:
		m.ClearMetadata()
		return nil
	case caserecord.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	case caserecord.FieldResolvedBy:
		m.ClearResolvedBy()
		return nil
	case caserecord.FieldClosedAt:
		m.ClearClosedAt()
		return nil
	case caserecord.FieldClosedBy:
		m.ClearClosedBy()
		return nil
	case caserecord.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown CaseRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CaseRecordMutation) ResetField(name string) error {
	switch name {
	case caserecord.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case caserecord.FieldTitle:
		m.ResetTitle()
		return nil
	case caserecord.FieldDescription:
		m.ResetDescription()
		return nil
	case caserecord.FieldStatus:
		m.ResetStatus()
		return nil
	case caserecord.FieldPriority:
		m.ResetPriority()
		return nil
	case caserecord.FieldTags:
		m.ResetTags()
		return nil
	case caserecord.FieldMetadata:
		m.ResetMetadata()
		return nil
	case caserecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case caserecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case caserecord.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case caserecord.FieldResolvedBy:
		m.ResetResolvedBy()
		return nil
	case caserecord.FieldClosedAt:
		m.ResetClosedAt()
		return nil
	case caserecord.FieldClosedBy:
		m.ResetClosedBy()
		return nil
	case caserecord.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown CaseRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CaseRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.messages != nil {
		edges = append(edges, caserecord.EdgeMessages)
	}
	if m.reports != nil {
		edges = append(edges, caserecord.EdgeReports)
	}
	if m.evidence_files != nil {
		edges = append(edges, caserecord.EdgeEvidenceFiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CaseRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case caserecord.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case caserecord.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	case caserecord.EdgeEvidenceFiles:
		ids := make([]ent.Value, 0, len(m.evidence_files))
		for id := range m.evidence_files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CaseRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedmessages != nil {
		edges = append(edges, caserecord.EdgeMessages)
	}
	if m.removedreports != nil {
		edges = append(edges, caserecord.EdgeReports)
	}
	if m.removedevidence_files != nil {
		edges = append(edges, caserecord.EdgeEvidenceFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CaseRecordMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case caserecord.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case caserecord.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	case caserecord.EdgeEvidenceFiles:
		ids := make([]ent.Value, 0, len(m.removedevidence_files))
		for id := range m.removedevidence_files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CaseRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedmessages {
		edges = append(edges, caserecord.EdgeMessages)
	}
	if m.clearedreports {
		edges = append(edges, caserecord.EdgeReports)
	}
	if m.clearedevidence_files {
		edges = append(edges, caserecord.EdgeEvidenceFiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CaseRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case caserecord.EdgeMessages:
		return m.clearedmessages
	case caserecord.EdgeReports:
		return m.clearedreports
	case caserecord.EdgeEvidenceFiles:
		return m.clearedevidence_files
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CaseRecordMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown CaseRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CaseRecordMutation) ResetEdge(name string) error {
	switch name {
	case caserecord.EdgeMessages:
		m.ResetMessages()
		return nil
	case caserecord.EdgeReports:
		m.ResetReports()
		return nil
	case caserecord.EdgeEvidenceFiles:
		m.ResetEvidenceFiles()
		return nil
	}
	return fmt.Errorf("unknown CaseRecord edge %s", name)
}

// CaseReportMutation represents an operation that mutates the CaseReport nodes in the graph.
type CaseReportMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	_type                 *casereport.Type
	title                 *string
	content               *string
	format                *string
	status                *casereport.Status
	version               *int
	addversion            *int
	is_current            *bool
	linked_to_closure     *bool
	error_message         *string
	pod_id                *string
	generation_time_ms    *int64
	addgeneration_time_ms *int64
	generated_at          *time.Time
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	_case                 *string
	cleared_case          bool
	done                  bool
	oldValue              func(context.Context) (*CaseReport, error)
	predicates            []predicate.CaseReport
}

var _ ent.Mutation = (*CaseReportMutation)(nil)

// casereportOption allows management of the mutation configuration using functional options.
type casereportOption func(*CaseReportMutation)

// newCaseReportMutation creates new mutation for the CaseReport entity.
func newCaseReportMutation(c config, op Op, opts ...casereportOption) *CaseReportMutation {
	m := &CaseReportMutation{
		config:        c,
		op:            op,
		typ:           TypeCaseReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCaseReportID sets the ID field of the mutation.
func withCaseReportID(id string) casereportOption {
	return func(m *CaseReportMutation) {
		var (
			err   error
			once  sync.Once
			value *CaseReport
		)
		m.oldValue = func(ctx context.Context) (*CaseReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CaseReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCaseReport sets the old CaseReport of the mutation.
func withCaseReport(node *CaseReport) casereportOption {
	return func(m *CaseReportMutation) {
		m.oldValue = func(context.Context) (*CaseReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CaseReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CaseReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CaseReport entities.
func (m *CaseReportMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CaseReportMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CaseReportMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CaseReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *CaseReportMutation) SetCaseID(s string) {
	m._case = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *CaseReportMutation) CaseID() (r string, exists bool) {
	v := m._case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the CaseReport entity.
// If the CaseReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseReportMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *CaseReportMutation) ResetCaseID() {
	m._case = nil
}

// SetType sets the "type" field.
func (m *CaseReportMutation) SetType(c casereport.Type) {
	m._type = &c
}

// GetType returns the value of the "type" field in the mutation.
func (m *CaseReportMutation) GetType() (r casereport.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the CaseReport entity.
// If the CaseReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseReportMutation) OldType(ctx context.Context) (v casereport.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *CaseReportMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *CaseReportMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CaseReportMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CaseReport entity.
// If the CaseReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseReportMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *CaseReportMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[casereport.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *CaseReportMutation) TitleCleared() bool {
	_, ok := m.clearedFields[casereport.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *CaseReportMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, casereport.FieldTitle)
}

// SetContent sets the "content" field.
func (m *CaseReportMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *CaseReportMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the CaseReport entity.
// If the CaseReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseReportMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *CaseReportMutation) ClearContent() {
	m.content = nil
	m.clearedFields[casereport.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *CaseReportMutation) ContentCleared() bool {
	_, ok := m.clearedFields[casereport.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *CaseReportMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, casereport.FieldContent)
}

// SetFormat sets the "format" field.
func (m *CaseReportMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *CaseReportMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the CaseReport entity.
// If the CaseReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseReportMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *CaseReportMutation) ResetFormat() {
	m.format = nil
}

// SetStatus sets the "status" field.
func (m *CaseReportMutation) SetStatus(c casereport.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CaseReportMutation) Status() (r casereport.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CaseReport entity.
// If the CaseReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseReportMutation) OldStatus(ctx context.Context) (v casereport.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CaseReportMutation) ResetStatus() {
	m.status = nil
}

// SetVersion sets the "version" field.
func (m *CaseReportMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *CaseReportMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the CaseReport entity.
// If the CaseReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseReportMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *CaseReportMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *CaseReportMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *CaseReportMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetIsCurrent sets the "is_current" field.
func (m *CaseReportMutation) SetIsCurrent(b bool) {
	m.is_current = &b
}

// IsCurrent returns the value of the "is_current" field in the mutation.
func (m *CaseReportMutation) IsCurrent() (r bool, exists bool) {
	v := m.is_current
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCurrent returns the old "is_current" field's value of the CaseReport entity.
// If the CaseReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseReportMutation) OldIsCurrent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCurrent: %w", err)
	}
	return oldValue.IsCurrent, nil
}

// ResetIsCurrent resets all changes to the "is_current" field.
func (m *CaseReportMutation) ResetIsCurrent() {
	m.is_current = nil
}

// SetLinkedToClosure sets the "linked_to_closure" field.
func (m *CaseReportMutation) SetLinkedToClosure(b bool) {
	m.linked_to_closure = &b
}

// LinkedToClosure returns the value of the "linked_to_closure" field in the mutation.
func (m *CaseReportMutation) LinkedToClosure() (r bool, exists bool) {
	v := m.linked_to_closure
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedToClosure returns the old "linked_to_closure" field's value of the CaseReport entity.
// If the CaseReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseReportMutation) OldLinkedToClosure(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedToClosure is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedToClosure requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedToClosure: %w", err)
	}
	return oldValue.LinkedToClosure, nil
}

// ResetLinkedToClosure resets all changes to the "linked_to_closure" field.
func (m *CaseReportMutation) ResetLinkedToClosure() {
	m.linked_to_closure = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *CaseReportMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *CaseReportMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the CaseReport entity.
// If the CaseReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseReportMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *CaseReportMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[casereport.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *CaseReportMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[casereport.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *CaseReportMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, casereport.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *CaseReportMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *CaseReportMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the CaseReport entity.
// If the CaseReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseReportMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *CaseReportMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[casereport.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *CaseReportMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[casereport.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *CaseReportMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, casereport.FieldPodID)
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (m *CaseReportMutation) SetGenerationTimeMs(i int64) {
	m.generation_time_ms = &i
	m.addgeneration_time_ms = nil
}

// GenerationTimeMs returns the value of the "generation_time_ms" field in the mutation.
func (m *CaseReportMutation) GenerationTimeMs() (r int64, exists bool) {
	v := m.generation_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationTimeMs returns the old "generation_time_ms" field's value of the CaseReport entity.
// If the CaseReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseReportMutation) OldGenerationTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationTimeMs: %w", err)
	}
	return oldValue.GenerationTimeMs, nil
}

// AddGenerationTimeMs adds i to the "generation_time_ms" field.
func (m *CaseReportMutation) AddGenerationTimeMs(i int64) {
	if m.addgeneration_time_ms != nil {
		*m.addgeneration_time_ms += i
	} else {
		m.addgeneration_time_ms = &i
	}
}

// AddedGenerationTimeMs returns the value that was added to the "generation_time_ms" field in this mutation.
func (m *CaseReportMutation) AddedGenerationTimeMs() (r int64, exists bool) {
	v := m.addgeneration_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearGenerationTimeMs clears the value of the "generation_time_ms" field.
func (m *CaseReportMutation) ClearGenerationTimeMs() {
	m.generation_time_ms = nil
	m.addgeneration_time_ms = nil
	m.clearedFields[casereport.FieldGenerationTimeMs] = struct{}{}
}

// GenerationTimeMsCleared returns if the "generation_time_ms" field was cleared in this mutation.
func (m *CaseReportMutation) GenerationTimeMsCleared() bool {
	_, ok := m.clearedFields[casereport.FieldGenerationTimeMs]
	return ok
}

// ResetGenerationTimeMs resets all changes to the "generation_time_ms" field.
func (m *CaseReportMutation) ResetGenerationTimeMs() {
	m.generation_time_ms = nil
	m.addgeneration_time_ms = nil
	delete(m.clearedFields, casereport.FieldGenerationTimeMs)
}

// SetGeneratedAt sets the "generated_at" field.
func (m *CaseReportMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *CaseReportMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the CaseReport entity.
// If the CaseReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseReportMutation) OldGeneratedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ClearGeneratedAt clears the value of the "generated_at" field.
func (m *CaseReportMutation) ClearGeneratedAt() {
	m.generated_at = nil
	m.clearedFields[casereport.FieldGeneratedAt] = struct{}{}
}

// GeneratedAtCleared returns if the "generated_at" field was cleared in this mutation.
func (m *CaseReportMutation) GeneratedAtCleared() bool {
	_, ok := m.clearedFields[casereport.FieldGeneratedAt]
	return ok
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *CaseReportMutation) ResetGeneratedAt() {
	m.generated_at = nil
	delete(m.clearedFields, casereport.FieldGeneratedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CaseReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CaseReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CaseReport entity.
// If the CaseReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CaseReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CaseReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CaseReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CaseReport entity.
// If the CaseReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CaseReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCase clears the "case" edge to the CaseRecord entity.
func (m *CaseReportMutation) ClearCase() {
	m.cleared_case = true
	m.clearedFields[casereport.FieldCaseID] = struct{}{}
}

// CaseCleared reports if the "case" edge to the CaseRecord entity was cleared.
func (m *CaseReportMutation) CaseCleared() bool {
	return m.cleared_case
}

// CaseIDs returns the "case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CaseID instead. It exists only for internal usage by the builders.
func (m *CaseReportMutation) CaseIDs() (ids []string) {
	if id := m._case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCase resets all changes to the "case" edge.
func (m *CaseReportMutation) ResetCase() {
	m._case = nil
	m.cleared_case = false
}

// Where appends a list predicates to the CaseReportMutation builder.
func (m *CaseReportMutation) Where(ps ...predicate.CaseReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CaseReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CaseReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CaseReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CaseReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CaseReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CaseReport).
func (m *CaseReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CaseReportMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m._case != nil {
		fields = append(fields, casereport.FieldCaseID)
	}
	if m._type != nil {
		fields = append(fields, casereport.FieldType)
	}
	if m.title != nil {
		fields = append(fields, casereport.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, casereport.FieldContent)
	}
	if m.format != nil {
		fields = append(fields, casereport.FieldFormat)
	}
	if m.status != nil {
		fields = append(fields, casereport.FieldStatus)
	}
	if m.version != nil {
		fields = append(fields, casereport.FieldVersion)
	}
	if m.is_current != nil {
		fields = append(fields, casereport.FieldIsCurrent)
	}
	if m.linked_to_closure != nil {
		fields = append(fields, casereport.FieldLinkedToClosure)
	}
	if m.error_message != nil {
		fields = append(fields, casereport.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, casereport.FieldPodID)
	}
	if m.generation_time_ms != nil {
		fields = append(fields, casereport.FieldGenerationTimeMs)
	}
	if m.generated_at != nil {
		fields = append(fields, casereport.FieldGeneratedAt)
	}
	if m.created_at != nil {
		fields = append(fields, casereport.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, casereport.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CaseReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case casereport.FieldCaseID:
		return m.CaseID()
	case casereport.FieldType:
		return m.GetType()
	case casereport.FieldTitle:
		return m.Title()
	case casereport.FieldContent:
		return m.Content()
	case casereport.FieldFormat:
		return m.Format()
	case casereport.FieldStatus:
		return m.Status()
	case casereport.FieldVersion:
		return m.Version()
	case casereport.FieldIsCurrent:
		return m.IsCurrent()
	case casereport.FieldLinkedToClosure:
		return m.LinkedToClosure()
	case casereport.FieldErrorMessage:
		return m.ErrorMessage()
	case casereport.FieldPodID:
		return m.PodID()
	case casereport.FieldGenerationTimeMs:
		return m.GenerationTimeMs()
	case casereport.FieldGeneratedAt:
		return m.GeneratedAt()
	case casereport.FieldCreatedAt:
		return m.CreatedAt()
	case casereport.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CaseReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case casereport.FieldCaseID:
		return m.OldCaseID(ctx)
	case casereport.FieldType:
		return m.OldType(ctx)
	case casereport.FieldTitle:
		return m.OldTitle(ctx)
	case casereport.FieldContent:
		return m.OldContent(ctx)
	case casereport.FieldFormat:
		return m.OldFormat(ctx)
	case casereport.FieldStatus:
		return m.OldStatus(ctx)
	case casereport.FieldVersion:
		return m.OldVersion(ctx)
	case casereport.FieldIsCurrent:
		return m.OldIsCurrent(ctx)
	case casereport.FieldLinkedToClosure:
		return m.OldLinkedToClosure(ctx)
	case casereport.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case casereport.FieldPodID:
		return m.OldPodID(ctx)
	case casereport.FieldGenerationTimeMs:
		return m.OldGenerationTimeMs(ctx)
	case casereport.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	case casereport.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case casereport.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CaseReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case casereport.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case casereport.FieldType:
		v, ok := value.(casereport.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case casereport.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case casereport.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case casereport.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case casereport.FieldStatus:
		v, ok := value.(casereport.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case casereport.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case casereport.FieldIsCurrent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCurrent(v)
		return nil
	case casereport.FieldLinkedToClosure:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedToClosure(v)
		return nil
	case casereport.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case casereport.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case casereport.FieldGenerationTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationTimeMs(v)
		return nil
	case casereport.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	case casereport.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case casereport.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CaseReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CaseReportMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, casereport.FieldVersion)
	}
	if m.addgeneration_time_ms != nil {
		fields = append(fields, casereport.FieldGenerationTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CaseReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case casereport.FieldVersion:
		return m.AddedVersion()
	case casereport.FieldGenerationTimeMs:
		return m.AddedGenerationTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case casereport.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case casereport.FieldGenerationTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGenerationTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown CaseReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CaseReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(casereport.FieldTitle) {
		fields = append(fields, casereport.FieldTitle)
	}
	if m.FieldCleared(casereport.FieldContent) {
		fields = append(fields, casereport.FieldContent)
	}
	if m.FieldCleared(casereport.FieldErrorMessage) {
		fields = append(fields, casereport.FieldErrorMessage)
	}
	if m.FieldCleared(casereport.FieldPodID) {
		fields = append(fields, casereport.FieldPodID)
	}
	if m.FieldCleared(casereport.FieldGenerationTimeMs) {
		fields = append(fields, casereport.FieldGenerationTimeMs)
	}
	if m.FieldCleared(casereport.FieldGeneratedAt) {
		fields = append(fields, casereport.FieldGeneratedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CaseReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CaseReportMutation) ClearField(name string) error {
	switch name {
	case casereport.FieldTitle:
		m.ClearTitle()
		return nil
	case casereport.FieldContent:
		m.ClearContent()
		return nil
	case casereport.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case casereport.FieldPodID:
		m.ClearPodID()
		return nil
	case casereport.FieldGenerationTimeMs:
		m.ClearGenerationTimeMs()
		return nil
	case casereport.FieldGeneratedAt:
		m.ClearGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown CaseReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CaseReportMutation) ResetField(name string) error {
	switch name {
	case casereport.FieldCaseID:
		m.ResetCaseID()
		return nil
	case casereport.FieldType:
		m.ResetType()
		return nil
	case casereport.FieldTitle:
		m.ResetTitle()
		return nil
	case casereport.FieldContent:
		m.ResetContent()
		return nil
	case casereport.FieldFormat:
		m.ResetFormat()
		return nil
	case casereport.FieldStatus:
		m.ResetStatus()
		return nil
	case casereport.FieldVersion:
		m.ResetVersion()
		return nil
	case casereport.FieldIsCurrent:
		m.ResetIsCurrent()
		return nil
	case casereport.FieldLinkedToClosure:
		m.ResetLinkedToClosure()
		return nil
	case casereport.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case casereport.FieldPodID:
		m.ResetPodID()
		return nil
	case casereport.FieldGenerationTimeMs:
		m.ResetGenerationTimeMs()
		return nil
	case casereport.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	case casereport.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case casereport.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CaseReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CaseReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._case != nil {
		edges = append(edges, casereport.EdgeCase)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CaseReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case casereport.EdgeCase:
		if id := m._case; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CaseReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CaseReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CaseReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_case {
		edges = append(edges, casereport.EdgeCase)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CaseReportMutation) EdgeCleared(name string) bool {
	switch name {
	case casereport.EdgeCase:
		return m.cleared_case
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CaseReportMutation) ClearEdge(name string) error {
	switch name {
	case casereport.EdgeCase:
		m.ClearCase()
		return nil
	}
	return fmt.Errorf("unknown CaseReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CaseReportMutation) ResetEdge(name string) error {
	switch name {
	case casereport.EdgeCase:
		m.ResetCase()
		return nil
	}
	return fmt.Errorf("unknown CaseReport edge %s", name)
}

// EvidenceFileMutation represents an operation that mutates the EvidenceFile nodes in the graph.
type EvidenceFileMutation struct {
	config
	op              Op
	typ             string
	id              *string
	filename        *string
	content_type    *string
	storage_path    *string
	size_bytes      *int64
	addsize_bytes   *int64
	evidence_id     *string
	content_summary *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	_case           *string
	cleared_case    bool
	done            bool
	oldValue        func(context.Context) (*EvidenceFile, error)
	predicates      []predicate.EvidenceFile
}

var _ ent.Mutation = (*EvidenceFileMutation)(nil)

// evidencefileOption allows management of the mutation configuration using functional options.
type evidencefileOption func(*EvidenceFileMutation)

// newEvidenceFileMutation creates new mutation for the EvidenceFile entity.
func newEvidenceFileMutation(c config, op Op, opts ...evidencefileOption) *EvidenceFileMutation {
	m := &EvidenceFileMutation{
		config:        c,
		op:            op,
		typ:           TypeEvidenceFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvidenceFileID sets the ID field of the mutation.
func withEvidenceFileID(id string) evidencefileOption {
	return func(m *EvidenceFileMutation) {
		var (
			err   error
			once  sync.Once
			value *EvidenceFile
		)
		m.oldValue = func(ctx context.Context) (*EvidenceFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvidenceFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvidenceFile sets the old EvidenceFile of the mutation.
func withEvidenceFile(node *EvidenceFile) evidencefileOption {
	return func(m *EvidenceFileMutation) {
		m.oldValue = func(context.Context) (*EvidenceFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvidenceFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvidenceFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvidenceFile entities.
func (m *EvidenceFileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvidenceFileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvidenceFileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvidenceFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *EvidenceFileMutation) SetCaseID(s string) {
	m._case = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *EvidenceFileMutation) CaseID() (r string, exists bool) {
	v := m._case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the EvidenceFile entity.
// If the EvidenceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceFileMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *EvidenceFileMutation) ResetCaseID() {
	m._case = nil
}

// SetFilename sets the "filename" field.
func (m *EvidenceFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *EvidenceFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the EvidenceFile entity.
// If the EvidenceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *EvidenceFileMutation) ResetFilename() {
	m.filename = nil
}

// SetContentType sets the "content_type" field.
func (m *EvidenceFileMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *EvidenceFileMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the EvidenceFile entity.
// If the EvidenceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceFileMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *EvidenceFileMutation) ResetContentType() {
	m.content_type = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *EvidenceFileMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *EvidenceFileMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the EvidenceFile entity.
// If the EvidenceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceFileMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *EvidenceFileMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *EvidenceFileMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *EvidenceFileMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the EvidenceFile entity.
// If the EvidenceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceFileMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *EvidenceFileMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *EvidenceFileMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *EvidenceFileMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetEvidenceID sets the "evidence_id" field.
func (m *EvidenceFileMutation) SetEvidenceID(s string) {
	m.evidence_id = &s
}

// EvidenceID returns the value of the "evidence_id" field in the mutation.
func (m *EvidenceFileMutation) EvidenceID() (r string, exists bool) {
	v := m.evidence_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceID returns the old "evidence_id" field's value of the EvidenceFile entity.
// If the EvidenceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceFileMutation) OldEvidenceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceID: %w", err)
	}
	return oldValue.EvidenceID, nil
}

// ClearEvidenceID clears the value of the "evidence_id" field.
func (m *EvidenceFileMutation) ClearEvidenceID() {
	m.evidence_id = nil
	m.clearedFields[evidencefile.FieldEvidenceID] = struct{}{}
}

// EvidenceIDCleared returns if the "evidence_id" field was cleared in this mutation.
func (m *EvidenceFileMutation) EvidenceIDCleared() bool {
	_, ok := m.clearedFields[evidencefile.FieldEvidenceID]
	return ok
}

// ResetEvidenceID resets all changes to the "evidence_id" field.
func (m *EvidenceFileMutation) ResetEvidenceID() {
	m.evidence_id = nil
	delete(m.clearedFields, evidencefile.FieldEvidenceID)
}

// SetContentSummary sets the "content_summary" field.
func (m *EvidenceFileMutation) SetContentSummary(s string) {
	m.content_summary = &s
}

// ContentSummary returns the value of the "content_summary" field in the mutation.
func (m *EvidenceFileMutation) ContentSummary() (r string, exists bool) {
	v := m.content_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldContentSummary returns the old "content_summary" field's value of the EvidenceFile entity.
// If the EvidenceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceFileMutation) OldContentSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentSummary: %w", err)
	}
	return oldValue.ContentSummary, nil
}

// ClearContentSummary clears the value of the "content_summary" field.
func (m *EvidenceFileMutation) ClearContentSummary() {
	m.content_summary = nil
	m.clearedFields[evidencefile.FieldContentSummary] = struct{}{}
}

// ContentSummaryCleared returns if the "content_summary" field was cleared in this mutation.
func (m *EvidenceFileMutation) ContentSummaryCleared() bool {
	_, ok := m.clearedFields[evidencefile.FieldContentSummary]
	return ok
}

// ResetContentSummary resets all changes to the "content_summary" field.
func (m *EvidenceFileMutation) ResetContentSummary() {
	m.content_summary = nil
	delete(m.clearedFields, evidencefile.FieldContentSummary)
}

// SetCreatedAt sets the "created_at" field.
func (m *EvidenceFileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvidenceFileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EvidenceFile entity.
// If the EvidenceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceFileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvidenceFileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCase clears the "case" edge to the CaseRecord entity.
func (m *EvidenceFileMutation) ClearCase() {
	m.cleared_case = true
	m.clearedFields[evidencefile.FieldCaseID] = struct{}{}
}

// CaseCleared reports if the "case" edge to the CaseRecord entity was cleared.
func (m *EvidenceFileMutation) CaseCleared() bool {
	return m.cleared_case
}

// CaseIDs returns the "case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CaseID instead. It exists only for internal usage by the builders.
func (m *EvidenceFileMutation) CaseIDs() (ids []string) {
	if id := m._case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCase resets all changes to the "case" edge.
func (m *EvidenceFileMutation) ResetCase() {
	m._case = nil
	m.cleared_case = false
}

// Where appends a list predicates to the EvidenceFileMutation builder.
func (m *EvidenceFileMutation) Where(ps ...predicate.EvidenceFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvidenceFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvidenceFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvidenceFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvidenceFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvidenceFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvidenceFile).
func (m *EvidenceFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvidenceFileMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m._case != nil {
		fields = append(fields, evidencefile.FieldCaseID)
	}
	if m.filename != nil {
		fields = append(fields, evidencefile.FieldFilename)
	}
	if m.content_type != nil {
		fields = append(fields, evidencefile.FieldContentType)
	}
	if m.storage_path != nil {
		fields = append(fields, evidencefile.FieldStoragePath)
	}
	if m.size_bytes != nil {
		fields = append(fields, evidencefile.FieldSizeBytes)
	}
	if m.evidence_id != nil {
		fields = append(fields, evidencefile.FieldEvidenceID)
	}
	if m.content_summary != nil {
		fields = append(fields, evidencefile.FieldContentSummary)
	}
	if m.created_at != nil {
		fields = append(fields, evidencefile.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvidenceFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evidencefile.FieldCaseID:
		return m.CaseID()
	case evidencefile.FieldFilename:
		return m.Filename()
	case evidencefile.FieldContentType:
		return m.ContentType()
	case evidencefile.FieldStoragePath:
		return m.StoragePath()
	case evidencefile.FieldSizeBytes:
		return m.SizeBytes()
	case evidencefile.FieldEvidenceID:
		return m.EvidenceID()
	case evidencefile.FieldContentSummary:
		return m.ContentSummary()
	case evidencefile.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvidenceFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evidencefile.FieldCaseID:
		return m.OldCaseID(ctx)
	case evidencefile.FieldFilename:
		return m.OldFilename(ctx)
	case evidencefile.FieldContentType:
		return m.OldContentType(ctx)
	case evidencefile.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case evidencefile.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case evidencefile.FieldEvidenceID:
		return m.OldEvidenceID(ctx)
	case evidencefile.FieldContentSummary:
		return m.OldContentSummary(ctx)
	case evidencefile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvidenceFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evidencefile.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case evidencefile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case evidencefile.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case evidencefile.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case evidencefile.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case evidencefile.FieldEvidenceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceID(v)
		return nil
	case evidencefile.FieldContentSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentSummary(v)
		return nil
	case evidencefile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvidenceFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvidenceFileMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, evidencefile.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvidenceFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evidencefile.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evidencefile.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown EvidenceFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvidenceFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evidencefile.FieldEvidenceID) {
		fields = append(fields, evidencefile.FieldEvidenceID)
	}
	if m.FieldCleared(evidencefile.FieldContentSummary) {
		fields = append(fields, evidencefile.FieldContentSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvidenceFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvidenceFileMutation) ClearField(name string) error {
	switch name {
	case evidencefile.FieldEvidenceID:
		m.ClearEvidenceID()
		return nil
	case evidencefile.FieldContentSummary:
		m.ClearContentSummary()
		return nil
	}
	return fmt.Errorf("unknown EvidenceFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvidenceFileMutation) ResetField(name string) error {
	switch name {
	case evidencefile.FieldCaseID:
		m.ResetCaseID()
		return nil
	case evidencefile.FieldFilename:
		m.ResetFilename()
		return nil
	case evidencefile.FieldContentType:
		m.ResetContentType()
		return nil
	case evidencefile.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case evidencefile.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case evidencefile.FieldEvidenceID:
		m.ResetEvidenceID()
		return nil
	case evidencefile.FieldContentSummary:
		m.ResetContentSummary()
		return nil
	case evidencefile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EvidenceFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvidenceFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._case != nil {
		edges = append(edges, evidencefile.EdgeCase)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvidenceFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evidencefile.EdgeCase:
		if id := m._case; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvidenceFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvidenceFileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvidenceFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_case {
		edges = append(edges, evidencefile.EdgeCase)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvidenceFileMutation) EdgeCleared(name string) bool {
	switch name {
	case evidencefile.EdgeCase:
		return m.cleared_case
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvidenceFileMutation) ClearEdge(name string) error {
	switch name {
	case evidencefile.EdgeCase:
		m.ClearCase()
		return nil
	}
	return fmt.Errorf("unknown EvidenceFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvidenceFileMutation) ResetEdge(name string) error {
	switch name {
	case evidencefile.EdgeCase:
		m.ResetCase()
		return nil
	}
	return fmt.Errorf("unknown EvidenceFile edge %s", name)
}
