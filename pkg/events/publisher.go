package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/caseops/inquest/pkg/engine"
	"github.com/caseops/inquest/pkg/models"
)

// NotifyPublisher broadcasts events via PostgreSQL NOTIFY. Events are
// transient: a disconnected dashboard re-reads case state on reconnect
// instead of catching up on missed events.
type NotifyPublisher struct {
	db *sql.DB
}

// NewNotifyPublisher creates a NotifyPublisher. The db parameter should
// be the *sql.DB from database.Client.DB().
func NewNotifyPublisher(db *sql.DB) *NotifyPublisher {
	return &NotifyPublisher{db: db}
}

var _ engine.EventPublisher = (*NotifyPublisher)(nil)

// PublishTurnCompleted broadcasts a turn.completed event to the case
// channel and a transient copy to the global cases channel.
func (p *NotifyPublisher) PublishTurnCompleted(ctx context.Context, event engine.TurnEvent) error {
	payload, err := json.Marshal(struct {
		Type string `json:"type"`
		engine.TurnEvent
	}{Type: EventTypeTurnCompleted, TurnEvent: event})
	if err != nil {
		return fmt.Errorf("failed to marshal turn event: %w", err)
	}
	return p.broadcast(ctx, event.CaseID, payload)
}

// PublishCaseStatus broadcasts a case.status event.
func (p *NotifyPublisher) PublishCaseStatus(ctx context.Context, caseID string, record models.StatusAuditRecord) error {
	payload, err := json.Marshal(struct {
		Type   string `json:"type"`
		CaseID string `json:"case_id"`
		models.StatusAuditRecord
	}{Type: EventTypeCaseStatus, CaseID: caseID, StatusAuditRecord: record})
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}
	return p.broadcast(ctx, caseID, payload)
}

// PublishReportStatus broadcasts a report.status event to the case
// channel only.
func (p *NotifyPublisher) PublishReportStatus(ctx context.Context, report *models.CaseReport) error {
	payload, err := json.Marshal(struct {
		Type     string              `json:"type"`
		CaseID   string              `json:"case_id"`
		ReportID string              `json:"report_id"`
		Kind     models.ReportType   `json:"report_type"`
		Status   models.ReportStatus `json:"status"`
		Version  int                 `json:"version"`
	}{
		Type:     EventTypeReportStatus,
		CaseID:   report.CaseID,
		ReportID: report.ID,
		Kind:     report.Type,
		Status:   report.Status,
		Version:  report.Version,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal report event: %w", err)
	}
	return p.notify(ctx, CaseChannel(report.CaseID), payload)
}

// broadcast sends the payload to the case channel and, best-effort, to
// the global cases channel. Returns the first error encountered.
func (p *NotifyPublisher) broadcast(ctx context.Context, caseID string, payload []byte) error {
	var firstErr error
	if err := p.notify(ctx, CaseChannel(caseID), payload); err != nil {
		slog.Warn("Failed to publish to case channel", "case_id", caseID, "error", err)
		firstErr = err
	}
	if err := p.notify(ctx, GlobalCasesChannel, payload); err != nil {
		slog.Warn("Failed to publish to global channel", "case_id", caseID, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// notify broadcasts a pre-marshaled payload via pg_notify.
func (p *NotifyPublisher) notify(ctx context.Context, channel string, payload []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payload))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the
// full JSON payload, keeping only the routing fields a client needs to
// re-read case state.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type   string `json:"type"`
		CaseID string `json:"case_id"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncBytes, err := json.Marshal(map[string]any{
		"type":      routing.Type,
		"case_id":   routing.CaseID,
		"truncated": true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
