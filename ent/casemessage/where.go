// Code generated by ent, DO NOT EDIT.

package casemessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/caseops/inquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldContainsFold(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldEQ(FieldCaseID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldEQ(FieldContent, v))
}

// TurnNumber applies equality check predicate on the "turn_number" field. It's identical to TurnNumberEQ.
func TurnNumber(v int) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldEQ(FieldTurnNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldContainsFold(FieldCaseID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldNotIn(FieldRole, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldContainsFold(FieldContent, v))
}

// TurnNumberEQ applies the EQ predicate on the "turn_number" field.
func TurnNumberEQ(v int) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldEQ(FieldTurnNumber, v))
}

// TurnNumberNEQ applies the NEQ predicate on the "turn_number" field.
func TurnNumberNEQ(v int) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldNEQ(FieldTurnNumber, v))
}

// TurnNumberIn applies the In predicate on the "turn_number" field.
func TurnNumberIn(vs ...int) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldIn(FieldTurnNumber, vs...))
}

// TurnNumberNotIn applies the NotIn predicate on the "turn_number" field.
func TurnNumberNotIn(vs ...int) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldNotIn(FieldTurnNumber, vs...))
}

// TurnNumberGT applies the GT predicate on the "turn_number" field.
func TurnNumberGT(v int) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldGT(FieldTurnNumber, v))
}

// TurnNumberGTE applies the GTE predicate on the "turn_number" field.
func TurnNumberGTE(v int) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldGTE(FieldTurnNumber, v))
}

// TurnNumberLT applies the LT predicate on the "turn_number" field.
func TurnNumberLT(v int) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldLT(FieldTurnNumber, v))
}

// TurnNumberLTE applies the LTE predicate on the "turn_number" field.
func TurnNumberLTE(v int) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldLTE(FieldTurnNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CaseMessage {
	return predicate.CaseMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCase applies the HasEdge predicate on the "case" edge.
func HasCase() predicate.CaseMessage {
	return predicate.CaseMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CaseTable, CaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCaseWith applies the HasEdge predicate on the "case" edge with a given conditions (other predicates).
func HasCaseWith(preds ...predicate.CaseRecord) predicate.CaseMessage {
	return predicate.CaseMessage(func(s *sql.Selector) {
		step := newCaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CaseMessage) predicate.CaseMessage {
	return predicate.CaseMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CaseMessage) predicate.CaseMessage {
	return predicate.CaseMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CaseMessage) predicate.CaseMessage {
	return predicate.CaseMessage(sql.NotPredicates(p))
}
