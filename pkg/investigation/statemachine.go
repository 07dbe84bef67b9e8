package investigation

import (
	"time"

	"github.com/caseops/inquest/pkg/models"
)

// StatusMachine gatekeeps every case status mutation. It never stores
// state itself; callers apply the returned stamps and audit records to
// the case.
type StatusMachine struct {
	now func() time.Time
}

// NewStatusMachine creates a StatusMachine. now may be nil, in which
// case time.Now is used.
func NewStatusMachine(now func() time.Time) *StatusMachine {
	if now == nil {
		now = time.Now
	}
	return &StatusMachine{now: now}
}

// allowedTransitions maps each status to the statuses it may move to.
// Terminal statuses map to the empty set.
var allowedTransitions = map[models.CaseStatus][]models.CaseStatus{
	models.CaseConsulting:    {models.CaseInvestigating, models.CaseClosed},
	models.CaseInvestigating: {models.CaseResolved, models.CaseClosed},
	models.CaseResolved:      {},
	models.CaseClosed:        {},
}

// Validate reports whether the transition current -> target is allowed,
// with a human-readable reason when it is not.
func (m *StatusMachine) Validate(current, target models.CaseStatus) (bool, string) {
	targets, ok := allowedTransitions[current]
	if !ok {
		return false, "unknown source status"
	}
	if current.Terminal() {
		return false, "case is in a terminal status"
	}
	for _, t := range targets {
		if t == target {
			return true, ""
		}
	}
	return false, "transition not permitted"
}

// Assert fails with an InvalidTransitionError when the transition is
// not allowed.
func (m *StatusMachine) Assert(current, target models.CaseStatus) error {
	if ok, reason := m.Validate(current, target); !ok {
		return &InvalidTransitionError{
			From:   string(current),
			To:     string(target),
			Reason: reason,
		}
	}
	return nil
}

// AllowedTargets returns the set of statuses reachable from current.
func (m *StatusMachine) AllowedTargets(current models.CaseStatus) []models.CaseStatus {
	targets := allowedTransitions[current]
	out := make([]models.CaseStatus, len(targets))
	copy(out, targets)
	return out
}

// TerminalStamp holds the timestamp and actor fields to apply when a
// case enters a terminal status.
type TerminalStamp struct {
	ResolvedAt *time.Time
	ResolvedBy string
	ClosedAt   *time.Time
	ClosedBy   string
}

// TerminalFields yields the stamps for entering target, or a zero
// stamp for non-terminal targets.
func (m *StatusMachine) TerminalFields(target models.CaseStatus, userID string) TerminalStamp {
	now := m.now()
	switch target {
	case models.CaseResolved:
		return TerminalStamp{ResolvedAt: &now, ResolvedBy: userID}
	case models.CaseClosed:
		return TerminalStamp{ClosedAt: &now, ClosedBy: userID}
	}
	return TerminalStamp{}
}

// AuditRecord produces a structured audit entry for persistence in
// case.metadata.status_history.
func (m *StatusMachine) AuditRecord(old, new models.CaseStatus, userID string, auto bool, reason string) models.StatusAuditRecord {
	return models.StatusAuditRecord{
		From:      old,
		To:        new,
		UserID:    userID,
		Auto:      auto,
		Reason:    reason,
		Timestamp: m.now(),
	}
}

// Transition validates and applies the transition on the case in one
// step: status, terminal stamps, and the audit record appended to
// metadata.status_history. The case is mutated in place; the caller
// persists it.
func (m *StatusMachine) Transition(c *models.Case, target models.CaseStatus, userID string, auto bool, reason string) error {
	if err := m.Assert(c.Status, target); err != nil {
		return err
	}

	audit := m.AuditRecord(c.Status, target, userID, auto, reason)
	stamp := m.TerminalFields(target, userID)

	c.Status = target
	if stamp.ResolvedAt != nil {
		c.ResolvedAt = stamp.ResolvedAt
		c.ResolvedBy = stamp.ResolvedBy
	}
	if stamp.ClosedAt != nil {
		c.ClosedAt = stamp.ClosedAt
		c.ClosedBy = stamp.ClosedBy
	}

	if c.Metadata == nil {
		c.Metadata = make(map[string]any)
	}
	history, _ := c.Metadata[models.MetadataKeyStatusHistory].([]any)
	history = append(history, audit)
	c.Metadata[models.MetadataKeyStatusHistory] = history
	c.MetadataDirty = true
	c.UpdatedAt = m.now()

	return nil
}
