package api

import (
	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/models"
)

// CreateCaseBody is the POST /cases payload.
type CreateCaseBody struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Priority    models.CasePriority `json:"priority"`
	Tags        []string            `json:"tags"`
}

// UpdateCaseBody is the PATCH /cases/:id payload. Nil pointers leave
// the field untouched.
type UpdateCaseBody struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
}

// StatusChangeBody carries the optional reason for resolve/close.
type StatusChangeBody struct {
	Reason string `json:"reason"`
}

// InitializeBody is the POST /cases/:id/investigation payload.
type InitializeBody struct {
	StrategyChoice investigation.Strategy `json:"strategy_choice"`
}

// TurnBody is the POST /cases/:id/turns payload.
type TurnBody struct {
	Input       string              `json:"input" binding:"required"`
	Attachments []models.Attachment `json:"attachments"`
}

// HypothesisBody is the POST /cases/:id/hypotheses payload.
type HypothesisBody struct {
	Statement  string                           `json:"statement" binding:"required"`
	Category   investigation.HypothesisCategory `json:"category"`
	Likelihood float64                          `json:"likelihood"`
}

// EvidenceBody is the POST /cases/:id/evidence payload.
type EvidenceBody struct {
	Description  string                         `json:"description" binding:"required"`
	Category     investigation.EvidenceCategory `json:"category"`
	HypothesisID string                         `json:"hypothesis_id"`
	Supports     bool                           `json:"supports"`
}

// GenerateReportBody is the POST /cases/:id/reports payload.
type GenerateReportBody struct {
	Type models.ReportType `json:"type" binding:"required"`
	// UseLLM requests LLM enhancement on top of the template. Defaults
	// to false; generation degrades to the template either way.
	UseLLM bool `json:"use_llm"`
	// Async enqueues the job for the worker pool instead of rendering
	// inline.
	Async bool `json:"async"`
}

// LinkClosureBody is the POST /cases/:id/closure/reports payload.
type LinkClosureBody struct {
	ReportIDs []string `json:"report_ids" binding:"required"`
}
