// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/caseops/inquest/ent/caserecord"
	"github.com/caseops/inquest/ent/evidencefile"
)

// EvidenceFile is the model entity for the EvidenceFile schema.
type EvidenceFile struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID string `json:"case_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// ContentType holds the value of the "content_type" field.
	ContentType string `json:"content_type,omitempty"`
	// Key into the file store
	StoragePath string `json:"storage_path,omitempty"`
	// SizeBytes holds the value of the "size_bytes" field.
	SizeBytes int64 `json:"size_bytes,omitempty"`
	// State-document evidence entry created for this file
	EvidenceID *string `json:"evidence_id,omitempty"`
	// ContentSummary holds the value of the "content_summary" field.
	ContentSummary string `json:"content_summary,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvidenceFileQuery when eager-loading is set.
	Edges        EvidenceFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvidenceFileEdges holds the relations/edges for other nodes in the graph.
type EvidenceFileEdges struct {
	// Case holds the value of the case edge.
	Case *CaseRecord `json:"case,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CaseOrErr returns the Case value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvidenceFileEdges) CaseOrErr() (*CaseRecord, error) {
	if e.Case != nil {
		return e.Case, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: caserecord.Label}
	}
	return nil, &NotLoadedError{edge: "case"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvidenceFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evidencefile.FieldSizeBytes:
			values[i] = new(sql.NullInt64)
		case evidencefile.FieldID, evidencefile.FieldCaseID, evidencefile.FieldFilename, evidencefile.FieldContentType, evidencefile.FieldStoragePath, evidencefile.FieldEvidenceID, evidencefile.FieldContentSummary:
			values[i] = new(sql.NullString)
		case evidencefile.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvidenceFile fields.
func (_m *EvidenceFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evidencefile.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evidencefile.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case evidencefile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case evidencefile.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				_m.ContentType = value.String
			}
		case evidencefile.FieldStoragePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_path", values[i])
			} else if value.Valid {
				_m.StoragePath = value.String
			}
		case evidencefile.FieldSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size_bytes", values[i])
			} else if value.Valid {
				_m.SizeBytes = value.Int64
			}
		case evidencefile.FieldEvidenceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_id", values[i])
			} else if value.Valid {
				_m.EvidenceID = new(string)
				*_m.EvidenceID = value.String
			}
		case evidencefile.FieldContentSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_summary", values[i])
			} else if value.Valid {
				_m.ContentSummary = value.String
			}
		case evidencefile.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EvidenceFile.
// This includes values selected through modifiers, order, etc.
func (_m *EvidenceFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCase queries the "case" edge of the EvidenceFile entity.
func (_m *EvidenceFile) QueryCase() *CaseRecordQuery {
	return NewEvidenceFileClient(_m.config).QueryCase(_m)
}

// Update returns a builder for updating this EvidenceFile.
// Note that you need to call EvidenceFile.Unwrap() before calling this method if this EvidenceFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvidenceFile) Update() *EvidenceFileUpdateOne {
	return NewEvidenceFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvidenceFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvidenceFile) Unwrap() *EvidenceFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvidenceFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvidenceFile) String() string {
	var builder strings.Builder
	builder.WriteString("EvidenceFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("case_id=")
	builder.WriteString(_m.CaseID)
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("content_type=")
	builder.WriteString(_m.ContentType)
	builder.WriteString(", ")
	builder.WriteString("storage_path=")
	builder.WriteString(_m.StoragePath)
	builder.WriteString(", ")
	builder.WriteString("size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SizeBytes))
	builder.WriteString(", ")
	if v := _m.EvidenceID; v != nil {
		builder.WriteString("evidence_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("content_summary=")
	builder.WriteString(_m.ContentSummary)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvidenceFiles is a parsable slice of EvidenceFile.
type EvidenceFiles []*EvidenceFile
