// Package models contains plain request/response and domain types
// shared between the engine core, services, storage, and the API
// layer. Storage maps these to and from ent entities.
package models

import "time"

// CaseStatus is the lifecycle status of a case.
type CaseStatus string

// Case statuses.
const (
	CaseConsulting    CaseStatus = "consulting"
	CaseInvestigating CaseStatus = "investigating"
	CaseResolved      CaseStatus = "resolved"
	CaseClosed        CaseStatus = "closed"
)

// Terminal reports whether the status admits no further transitions.
func (s CaseStatus) Terminal() bool {
	return s == CaseResolved || s == CaseClosed
}

// CasePriority is the user-assigned priority of a case.
type CasePriority string

// Case priorities.
const (
	PriorityLow      CasePriority = "low"
	PriorityMedium   CasePriority = "medium"
	PriorityHigh     CasePriority = "high"
	PriorityCritical CasePriority = "critical"
)

// Metadata keys used on Case.Metadata.
const (
	MetadataKeyInvestigation = "investigation"
	MetadataKeyStatusHistory = "status_history"
)

// Case is a user-visible investigation record. The engine reads and
// writes the investigation state document embedded in Metadata.
type Case struct {
	ID          string         `json:"id"`
	OwnerID     string         `json:"owner_id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Status      CaseStatus     `json:"status"`
	Priority    CasePriority   `json:"priority"`
	Tags        []string       `json:"tags,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy string     `json:"resolved_by,omitempty"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`
	ClosedBy   string     `json:"closed_by,omitempty"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`

	// MetadataDirty hints the repository that the JSON metadata column
	// changed and must be re-persisted even if the struct pointer is
	// unchanged.
	MetadataDirty bool `json:"-"`
}

// CreateCaseRequest contains fields for opening a new case.
type CreateCaseRequest struct {
	OwnerID     string       `json:"owner_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Priority    CasePriority `json:"priority,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
}

// CaseFilters contains filtering options for listing cases.
type CaseFilters struct {
	Status         CaseStatus   `json:"status,omitempty"`
	Priority       CasePriority `json:"priority,omitempty"`
	Tag            string       `json:"tag,omitempty"`
	CreatedAfter   *time.Time   `json:"created_after,omitempty"`
	CreatedBefore  *time.Time   `json:"created_before,omitempty"`
	Limit          int          `json:"limit,omitempty"`
	Offset         int          `json:"offset,omitempty"`
	IncludeDeleted bool         `json:"include_deleted,omitempty"`
}

// CaseListResponse contains a paginated case list.
type CaseListResponse struct {
	Cases      []*Case `json:"cases"`
	TotalCount int     `json:"total_count"`
	Limit      int     `json:"limit"`
	Offset     int     `json:"offset"`
}

// CaseMessage is one entry in the case transcript.
type CaseMessage struct {
	ID         string    `json:"id"`
	CaseID     string    `json:"case_id"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	TurnNumber int       `json:"turn_number"`
	CreatedAt  time.Time `json:"created_at"`
}

// Message roles.
const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// Attachment is an uploaded evidence file accompanying a turn.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Summary     string `json:"summary,omitempty"`
	StoragePath string `json:"storage_path,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`
}

// StatusAuditRecord is one entry in case.metadata.status_history.
type StatusAuditRecord struct {
	From      CaseStatus `json:"from"`
	To        CaseStatus `json:"to"`
	UserID    string     `json:"user_id,omitempty"`
	Auto      bool       `json:"auto"`
	Reason    string     `json:"reason,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}
