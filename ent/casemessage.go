// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/caseops/inquest/ent/casemessage"
	"github.com/caseops/inquest/ent/caserecord"
)

// CaseMessage is the model entity for the CaseMessage schema.
type CaseMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID string `json:"case_id,omitempty"`
	// Role holds the value of the "role" field.
	Role casemessage.Role `json:"role,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Turn the message belongs to; 0 for consulting chatter
	TurnNumber int `json:"turn_number,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CaseMessageQuery when eager-loading is set.
	Edges        CaseMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CaseMessageEdges holds the relations/edges for other nodes in the graph.
type CaseMessageEdges struct {
	// Case holds the value of the case edge.
	Case *CaseRecord `json:"case,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CaseOrErr returns the Case value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CaseMessageEdges) CaseOrErr() (*CaseRecord, error) {
	if e.Case != nil {
		return e.Case, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: caserecord.Label}
	}
	return nil, &NotLoadedError{edge: "case"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CaseMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case casemessage.FieldTurnNumber:
			values[i] = new(sql.NullInt64)
		case casemessage.FieldID, casemessage.FieldCaseID, casemessage.FieldRole, casemessage.FieldContent:
			values[i] = new(sql.NullString)
		case casemessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CaseMessage fields.
func (_m *CaseMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case casemessage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case casemessage.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case casemessage.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = casemessage.Role(value.String)
			}
		case casemessage.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case casemessage.FieldTurnNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turn_number", values[i])
			} else if value.Valid {
				_m.TurnNumber = int(value.Int64)
			}
		case casemessage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CaseMessage.
// This includes values selected through modifiers, order, etc.
func (_m *CaseMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCase queries the "case" edge of the CaseMessage entity.
func (_m *CaseMessage) QueryCase() *CaseRecordQuery {
	return NewCaseMessageClient(_m.config).QueryCase(_m)
}

// Update returns a builder for updating this CaseMessage.
// Note that you need to call CaseMessage.Unwrap() before calling this method if this CaseMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CaseMessage) Update() *CaseMessageUpdateOne {
	return NewCaseMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CaseMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CaseMessage) Unwrap() *CaseMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CaseMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CaseMessage) String() string {
	var builder strings.Builder
	builder.WriteString("CaseMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("case_id=")
	builder.WriteString(_m.CaseID)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("turn_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.TurnNumber))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CaseMessages is a parsable slice of CaseMessage.
type CaseMessages []*CaseMessage
