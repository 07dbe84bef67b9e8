package engine

import (
	"context"
	"fmt"

	"github.com/caseops/inquest/pkg/investigation"
)

// AcknowledgeDegraded marks the current degraded mode as seen by the
// user, which re-arms the degraded-entry triggers.
func (e *Engine) AcknowledgeDegraded(ctx context.Context, caseID string) error {
	unlock := e.locks.acquire(caseID)
	defer unlock()

	c, err := e.store.GetCase(ctx, caseID)
	if err != nil {
		return err
	}
	state, err := LoadState(c)
	if err != nil {
		return err
	}
	if state == nil || state.Degraded == nil {
		return fmt.Errorf("case %s has no degraded mode to acknowledge: %w", caseID, investigation.ErrNotFound)
	}
	if state.Degraded.UserAcknowledged {
		return nil
	}
	state.Degraded.UserAcknowledged = true
	// Counters restart so the same condition must re-accumulate before
	// degraded mode triggers again.
	state.TurnsWithoutProgress = 0
	state.BlockedEvidenceCount = 0

	if err := SaveState(c, state); err != nil {
		return err
	}
	c.UpdatedAt = e.now()
	return e.store.SaveCase(ctx, c)
}
