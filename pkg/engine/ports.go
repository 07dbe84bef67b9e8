package engine

import (
	"context"
	"time"

	"github.com/caseops/inquest/pkg/models"
)

// CaseStore is the persistence surface the engine needs. The ent-backed
// repository implements it; tests use an in-memory fake.
type CaseStore interface {
	// GetCase loads a case by id. Soft-deleted cases are not returned.
	GetCase(ctx context.Context, id string) (*models.Case, error)

	// SaveCase persists the case, including metadata when MetadataDirty
	// is set.
	SaveCase(ctx context.Context, c *models.Case) error

	// AppendMessage adds one transcript entry.
	AppendMessage(ctx context.Context, msg *models.CaseMessage) error

	// ListMessages returns the newest transcript entries in
	// chronological order, up to limit.
	ListMessages(ctx context.Context, caseID string, limit int) ([]*models.CaseMessage, error)
}

// TurnEvent notifies listeners that a turn finished.
type TurnEvent struct {
	CaseID     string    `json:"case_id"`
	TurnNumber int       `json:"turn_number"`
	Phase      string    `json:"phase"`
	Outcome    string    `json:"outcome"`
	Degraded   bool      `json:"degraded"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher delivers turn events. Publishing is best-effort; a
// failed publish never fails the turn.
type EventPublisher interface {
	PublishTurnCompleted(ctx context.Context, event TurnEvent) error
}
