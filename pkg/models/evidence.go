package models

import "time"

// EvidenceFile is the metadata row for an uploaded evidence blob. The
// blob itself lives in the file store under StoragePath.
type EvidenceFile struct {
	ID          string    `json:"id"`
	CaseID      string    `json:"case_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	StoragePath string    `json:"-"`
	SizeBytes   int64     `json:"size_bytes"`
	// EvidenceID points at the state-document evidence entry created
	// when the file was cited in a turn, if any.
	EvidenceID     string    `json:"evidence_id,omitempty"`
	ContentSummary string    `json:"content_summary,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
