// Package events provides best-effort real-time event delivery via
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution. Turn and status
// events let dashboards follow an investigation without polling; a
// failed publish never fails the operation that produced it.
package events

// Event types broadcast over NOTIFY.
const (
	// EventTypeTurnCompleted fires after each persisted turn.
	EventTypeTurnCompleted = "turn.completed"

	// EventTypeCaseStatus fires on every status transition.
	EventTypeCaseStatus = "case.status"

	// EventTypeReportStatus fires on report lifecycle transitions
	// (generating, completed, failed).
	EventTypeReportStatus = "report.status"
)

// GlobalCasesChannel is the channel for case-level status events. The
// case list page subscribes to this for real-time updates.
const GlobalCasesChannel = "cases"

// CaseChannel returns the channel name for a specific case's events.
// Format: "case:{case_id}"
func CaseChannel(caseID string) string {
	return "case:" + caseID
}
