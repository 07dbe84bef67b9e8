package models

import "time"

// ReportType names the kinds of rendered report artefacts.
type ReportType string

// Report types.
const (
	ReportIncident   ReportType = "incident_report"
	ReportRunbook    ReportType = "runbook"
	ReportPostMortem ReportType = "post_mortem"
)

// AllReportTypes lists every report type.
var AllReportTypes = []ReportType{ReportIncident, ReportRunbook, ReportPostMortem}

// ReportStatus is the generation lifecycle status of a report.
type ReportStatus string

// Report generation statuses.
const (
	ReportPending    ReportStatus = "pending"
	ReportGenerating ReportStatus = "generating"
	ReportCompleted  ReportStatus = "completed"
	ReportFailed     ReportStatus = "failed"
)

// CaseReport is a versioned, rendered Markdown artefact for a case. At
// most one report per (case_id, type) has IsCurrent set.
type CaseReport struct {
	ID               string       `json:"id"`
	CaseID           string       `json:"case_id"`
	Type             ReportType   `json:"type"`
	Title            string       `json:"title"`
	Content          string       `json:"content,omitempty"`
	Format           string       `json:"format"`
	Status           ReportStatus `json:"status"`
	Version          int          `json:"version"`
	IsCurrent        bool         `json:"is_current"`
	LinkedToClosure  bool         `json:"linked_to_closure"`
	ErrorMessage     string       `json:"error_message,omitempty"`
	GenerationTimeMS int64        `json:"generation_time_ms,omitempty"`
	GeneratedAt      *time.Time   `json:"generated_at,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

// ReportFormatMarkdown is the only report file format. Reports are
// UTF-8 Markdown with no binary surface.
const ReportFormatMarkdown = "markdown"
