// Package report generates and versions the rendered Markdown
// artefacts of a case: incident report, runbook, and post-mortem.
package report

import (
	"context"
	"errors"

	"github.com/caseops/inquest/pkg/models"
)

// Sentinel errors surfaced by the report generator.
var (
	// ErrVersionLimit is returned when a (case, type) pair already has
	// the maximum number of report versions.
	ErrVersionLimit = errors.New("maximum 5 versions allowed per report type")

	// ErrClosureLinked is returned on attempts to delete a report that
	// was linked to case closure.
	ErrClosureLinked = errors.New("report is linked to case closure")

	// ErrNotTerminal is returned when closure linking is requested for a
	// case that is still active.
	ErrNotTerminal = errors.New("case is not in a terminal status")

	// ErrNotFound is returned for unknown report ids.
	ErrNotFound = errors.New("report not found")
)

// Store persists report records. Implementations must key records by id
// and support listing by (case_id, type).
type Store interface {
	CreateReport(ctx context.Context, r *models.CaseReport) error
	UpdateReport(ctx context.Context, r *models.CaseReport) error
	GetReport(ctx context.Context, id string) (*models.CaseReport, error)
	// ListReports returns the reports for a case, optionally filtered by
	// type, ordered by version ascending.
	ListReports(ctx context.Context, caseID string, reportType models.ReportType) ([]*models.CaseReport, error)
	DeleteReport(ctx context.Context, id string) error
}
