// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CaseMessagesColumns holds the columns for the "case_messages" table.
	CaseMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "turn_number", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "case_id", Type: field.TypeString},
	}
	// CaseMessagesTable holds the schema information for the "case_messages" table.
	CaseMessagesTable = &schema.Table{
		Name:       "case_messages",
		Columns:    CaseMessagesColumns,
		PrimaryKey: []*schema.Column{CaseMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "case_messages_case_records_messages",
				Columns:    []*schema.Column{CaseMessagesColumns[5]},
				RefColumns: []*schema.Column{CaseRecordsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "casemessage_case_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CaseMessagesColumns[5], CaseMessagesColumns[4]},
			},
			{
				Name:    "casemessage_case_id_turn_number",
				Unique:  false,
				Columns: []*schema.Column{CaseMessagesColumns[5], CaseMessagesColumns[3]},
			},
		},
	}
	// CaseRecordsColumns holds the columns for the "case_records" table.
	CaseRecordsColumns = []*schema.Column{
		{Name: "case_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"consulting", "investigating", "resolved", "closed"}, Default: "consulting"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolved_by", Type: field.TypeString, Nullable: true},
		{Name: "closed_at", Type: field.TypeTime, Nullable: true},
		{Name: "closed_by", Type: field.TypeString, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// CaseRecordsTable holds the schema information for the "case_records" table.
	CaseRecordsTable = &schema.Table{
		Name:       "case_records",
		Columns:    CaseRecordsColumns,
		PrimaryKey: []*schema.Column{CaseRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "caserecord_owner_id",
				Unique:  false,
				Columns: []*schema.Column{CaseRecordsColumns[1]},
			},
			{
				Name:    "caserecord_status",
				Unique:  false,
				Columns: []*schema.Column{CaseRecordsColumns[4]},
			},
			{
				Name:    "caserecord_priority",
				Unique:  false,
				Columns: []*schema.Column{CaseRecordsColumns[5]},
			},
			{
				Name:    "caserecord_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{CaseRecordsColumns[1], CaseRecordsColumns[4]},
			},
			{
				Name:    "caserecord_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{CaseRecordsColumns[4], CaseRecordsColumns[8]},
			},
			{
				Name:    "caserecord_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{CaseRecordsColumns[14]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// CaseReportsColumns holds the columns for the "case_reports" table.
	CaseReportsColumns = []*schema.Column{
		{Name: "report_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"incident_report", "runbook", "post_mortem"}},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "format", Type: field.TypeString, Default: "markdown"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "generating", "completed", "failed"}, Default: "pending"},
		{Name: "version", Type: field.TypeInt},
		{Name: "is_current", Type: field.TypeBool, Default: false},
		{Name: "linked_to_closure", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "generation_time_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "generated_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "case_id", Type: field.TypeString},
	}
	// CaseReportsTable holds the schema information for the "case_reports" table.
	CaseReportsTable = &schema.Table{
		Name:       "case_reports",
		Columns:    CaseReportsColumns,
		PrimaryKey: []*schema.Column{CaseReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "case_reports_case_records_reports",
				Columns:    []*schema.Column{CaseReportsColumns[15]},
				RefColumns: []*schema.Column{CaseRecordsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "casereport_case_id_type_is_current",
				Unique:  false,
				Columns: []*schema.Column{CaseReportsColumns[15], CaseReportsColumns[1], CaseReportsColumns[7]},
			},
			{
				Name:    "casereport_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{CaseReportsColumns[5], CaseReportsColumns[13]},
			},
		},
	}
	// EvidenceFilesColumns holds the columns for the "evidence_files" table.
	EvidenceFilesColumns = []*schema.Column{
		{Name: "file_id", Type: field.TypeString, Unique: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "size_bytes", Type: field.TypeInt64},
		{Name: "evidence_id", Type: field.TypeString, Nullable: true},
		{Name: "content_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "case_id", Type: field.TypeString},
	}
	// EvidenceFilesTable holds the schema information for the "evidence_files" table.
	EvidenceFilesTable = &schema.Table{
		Name:       "evidence_files",
		Columns:    EvidenceFilesColumns,
		PrimaryKey: []*schema.Column{EvidenceFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evidence_files_case_records_evidence_files",
				Columns:    []*schema.Column{EvidenceFilesColumns[8]},
				RefColumns: []*schema.Column{CaseRecordsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evidencefile_case_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EvidenceFilesColumns[8], EvidenceFilesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CaseMessagesTable,
		CaseRecordsTable,
		CaseReportsTable,
		EvidenceFilesTable,
	}
)

func init() {
	CaseMessagesTable.ForeignKeys[0].RefTable = CaseRecordsTable
	CaseReportsTable.ForeignKeys[0].RefTable = CaseRecordsTable
	EvidenceFilesTable.ForeignKeys[0].RefTable = CaseRecordsTable
}
