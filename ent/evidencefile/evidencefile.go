// Code generated by ent, DO NOT EDIT.

package evidencefile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the evidencefile type in the database.
	Label = "evidence_file"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "file_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldContentType holds the string denoting the content_type field in the database.
	FieldContentType = "content_type"
	// FieldStoragePath holds the string denoting the storage_path field in the database.
	FieldStoragePath = "storage_path"
	// FieldSizeBytes holds the string denoting the size_bytes field in the database.
	FieldSizeBytes = "size_bytes"
	// FieldEvidenceID holds the string denoting the evidence_id field in the database.
	FieldEvidenceID = "evidence_id"
	// FieldContentSummary holds the string denoting the content_summary field in the database.
	FieldContentSummary = "content_summary"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCase holds the string denoting the case edge name in mutations.
	EdgeCase = "case"
	// CaseRecordFieldID holds the string denoting the ID field of the CaseRecord.
	CaseRecordFieldID = "case_id"
	// Table holds the table name of the evidencefile in the database.
	Table = "evidence_files"
	// CaseTable is the table that holds the case relation/edge.
	CaseTable = "evidence_files"
	// CaseInverseTable is the table name for the CaseRecord entity.
	// It exists in this package in order to avoid circular dependency with the "caserecord" package.
	CaseInverseTable = "case_records"
	// CaseColumn is the table column denoting the case relation/edge.
	CaseColumn = "case_id"
)

// Columns holds all SQL columns for evidencefile fields.
var Columns = []string{
	FieldID,
	FieldCaseID,
	FieldFilename,
	FieldContentType,
	FieldStoragePath,
	FieldSizeBytes,
	FieldEvidenceID,
	FieldContentSummary,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the EvidenceFile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByContentType orders the results by the content_type field.
func ByContentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentType, opts...).ToFunc()
}

// ByStoragePath orders the results by the storage_path field.
func ByStoragePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoragePath, opts...).ToFunc()
}

// BySizeBytes orders the results by the size_bytes field.
func BySizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeBytes, opts...).ToFunc()
}

// ByEvidenceID orders the results by the evidence_id field.
func ByEvidenceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidenceID, opts...).ToFunc()
}

// ByContentSummary orders the results by the content_summary field.
func ByContentSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentSummary, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCaseField orders the results by case field.
func ByCaseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCaseStep(), sql.OrderByField(field, opts...))
	}
}
func newCaseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CaseInverseTable, CaseRecordFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CaseTable, CaseColumn),
	)
}
