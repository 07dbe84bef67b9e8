// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/caseops/inquest/ent/caserecord"
)

// CaseRecord is the model entity for the CaseRecord schema.
type CaseRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// From oauth2-proxy
	OwnerID string `json:"owner_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// User-supplied fault description (full-text searchable)
	Description string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status caserecord.Status `json:"status,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority caserecord.Priority `json:"priority,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// Embeds metadata.investigation (engine state) and metadata.status_history (audit trail)
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// ResolvedBy holds the value of the "resolved_by" field.
	ResolvedBy *string `json:"resolved_by,omitempty"`
	// ClosedAt holds the value of the "closed_at" field.
	ClosedAt *time.Time `json:"closed_at,omitempty"`
	// ClosedBy holds the value of the "closed_by" field.
	ClosedBy *string `json:"closed_by,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CaseRecordQuery when eager-loading is set.
	Edges        CaseRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CaseRecordEdges holds the relations/edges for other nodes in the graph.
type CaseRecordEdges struct {
	// Messages holds the value of the messages edge.
	Messages []*CaseMessage `json:"messages,omitempty"`
	// Reports holds the value of the reports edge.
	Reports []*CaseReport `json:"reports,omitempty"`
	// EvidenceFiles holds the value of the evidence_files edge.
	EvidenceFiles []*EvidenceFile `json:"evidence_files,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e CaseRecordEdges) MessagesOrErr() ([]*CaseMessage, error) {
	if e.loadedTypes[0] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// ReportsOrErr returns the Reports value or an error if the edge
// was not loaded in eager-loading.
func (e CaseRecordEdges) ReportsOrErr() ([]*CaseReport, error) {
	if e.loadedTypes[1] {
		return e.Reports, nil
	}
	return nil, &NotLoadedError{edge: "reports"}
}

// EvidenceFilesOrErr returns the EvidenceFiles value or an error if the edge
// was not loaded in eager-loading.
func (e CaseRecordEdges) EvidenceFilesOrErr() ([]*EvidenceFile, error) {
	if e.loadedTypes[2] {
		return e.EvidenceFiles, nil
	}
	return nil, &NotLoadedError{edge: "evidence_files"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CaseRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case caserecord.FieldTags, caserecord.FieldMetadata:
			values[i] = new([]byte)
		case caserecord.FieldID, caserecord.FieldOwnerID, caserecord.FieldTitle, caserecord.FieldDescription, caserecord.FieldStatus, caserecord.FieldPriority, caserecord.FieldResolvedBy, caserecord.FieldClosedBy:
			values[i] = new(sql.NullString)
		case caserecord.FieldCreatedAt, caserecord.FieldUpdatedAt, caserecord.FieldResolvedAt, caserecord.FieldClosedAt, caserecord.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CaseRecord fields.
func (_m *CaseRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case caserecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case caserecord.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case caserecord.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case caserecord.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case caserecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = caserecord.Status(value.String)
			}
		case caserecord.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = caserecord.Priority(value.String)
			}
		case caserecord.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case caserecord.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case caserecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case caserecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case caserecord.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		case caserecord.FieldResolvedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_by", values[i])
			} else if value.Valid {
				_m.ResolvedBy = new(string)
				*_m.ResolvedBy = value.String
			}
		case caserecord.FieldClosedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field closed_at", values[i])
			} else if value.Valid {
				_m.ClosedAt = new(time.Time)
				*_m.ClosedAt = value.Time
			}
		case caserecord.FieldClosedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field closed_by", values[i])
			} else if value.Valid {
				_m.ClosedBy = new(string)
				*_m.ClosedBy = value.String
			}
		case caserecord.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CaseRecord.
// This includes values selected through modifiers, order, etc.
func (_m *CaseRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessages queries the "messages" edge of the CaseRecord entity.
func (_m *CaseRecord) QueryMessages() *CaseMessageQuery {
	return NewCaseRecordClient(_m.config).QueryMessages(_m)
}

// QueryReports queries the "reports" edge of the CaseRecord entity.
func (_m *CaseRecord) QueryReports() *CaseReportQuery {
	return NewCaseRecordClient(_m.config).QueryReports(_m)
}

// QueryEvidenceFiles queries the "evidence_files" edge of the CaseRecord entity.
func (_m *CaseRecord) QueryEvidenceFiles() *EvidenceFileQuery {
	return NewCaseRecordClient(_m.config).QueryEvidenceFiles(_m)
}

// Update returns a builder for updating this CaseRecord.
// Note that you need to call CaseRecord.Unwrap() before calling this method if this CaseRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CaseRecord) Update() *CaseRecordUpdateOne {
	return NewCaseRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CaseRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CaseRecord) Unwrap() *CaseRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CaseRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CaseRecord) String() string {
	var builder strings.Builder
	builder.WriteString("CaseRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResolvedBy; v != nil {
		builder.WriteString("resolved_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClosedAt; v != nil {
		builder.WriteString("closed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ClosedBy; v != nil {
		builder.WriteString("closed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CaseRecords is a parsable slice of CaseRecord.
type CaseRecords []*CaseRecord
