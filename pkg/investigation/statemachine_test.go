package investigation

import (
	"testing"
	"time"

	"github.com/caseops/inquest/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	at := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestStatusMachine_Validate(t *testing.T) {
	sm := NewStatusMachine(fixedClock())

	tests := []struct {
		from    models.CaseStatus
		to      models.CaseStatus
		allowed bool
	}{
		{models.CaseConsulting, models.CaseInvestigating, true},
		{models.CaseConsulting, models.CaseClosed, true},
		{models.CaseConsulting, models.CaseResolved, false},
		{models.CaseInvestigating, models.CaseResolved, true},
		{models.CaseInvestigating, models.CaseClosed, true},
		{models.CaseInvestigating, models.CaseConsulting, false},
		{models.CaseResolved, models.CaseClosed, false},
		{models.CaseResolved, models.CaseInvestigating, false},
		{models.CaseClosed, models.CaseConsulting, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			ok, reason := sm.Validate(tt.from, tt.to)
			assert.Equal(t, tt.allowed, ok)
			if !tt.allowed {
				assert.NotEmpty(t, reason)
			}
		})
	}
}

func TestStatusMachine_Assert(t *testing.T) {
	sm := NewStatusMachine(fixedClock())

	t.Run("allowed transition passes", func(t *testing.T) {
		assert.NoError(t, sm.Assert(models.CaseConsulting, models.CaseInvestigating))
	})

	t.Run("terminal source always rejects", func(t *testing.T) {
		err := sm.Assert(models.CaseResolved, models.CaseClosed)
		require.Error(t, err)
		var ite *InvalidTransitionError
		require.ErrorAs(t, err, &ite)
		assert.Equal(t, "resolved", ite.From)
	})
}

func TestStatusMachine_AllowedTargets(t *testing.T) {
	sm := NewStatusMachine(fixedClock())

	assert.ElementsMatch(t,
		[]models.CaseStatus{models.CaseInvestigating, models.CaseClosed},
		sm.AllowedTargets(models.CaseConsulting))
	assert.Empty(t, sm.AllowedTargets(models.CaseResolved))
	assert.Empty(t, sm.AllowedTargets(models.CaseClosed))
}

func TestStatusMachine_Transition(t *testing.T) {
	sm := NewStatusMachine(fixedClock())

	t.Run("resolving stamps terminal fields and audit history", func(t *testing.T) {
		c := &models.Case{
			ID:     "case-1",
			Status: models.CaseInvestigating,
		}

		require.NoError(t, sm.Transition(c, models.CaseResolved, "user-1", true, "solution verified"))

		assert.Equal(t, models.CaseResolved, c.Status)
		require.NotNil(t, c.ResolvedAt)
		assert.Equal(t, "user-1", c.ResolvedBy)
		assert.Nil(t, c.ClosedAt)
		assert.True(t, c.MetadataDirty)

		history, ok := c.Metadata[models.MetadataKeyStatusHistory].([]any)
		require.True(t, ok)
		require.Len(t, history, 1)
		audit, ok := history[0].(models.StatusAuditRecord)
		require.True(t, ok)
		assert.Equal(t, models.CaseInvestigating, audit.From)
		assert.Equal(t, models.CaseResolved, audit.To)
		assert.True(t, audit.Auto)
		assert.Equal(t, "solution verified", audit.Reason)
	})

	t.Run("closing stamps closed fields", func(t *testing.T) {
		c := &models.Case{ID: "case-2", Status: models.CaseConsulting}

		require.NoError(t, sm.Transition(c, models.CaseClosed, "user-2", false, "not pursuing"))

		require.NotNil(t, c.ClosedAt)
		assert.Equal(t, "user-2", c.ClosedBy)
		assert.Nil(t, c.ResolvedAt)
	})

	t.Run("rejected transition leaves the case untouched", func(t *testing.T) {
		c := &models.Case{ID: "case-3", Status: models.CaseResolved}

		err := sm.Transition(c, models.CaseClosed, "user-3", false, "")
		require.Error(t, err)
		assert.Equal(t, models.CaseResolved, c.Status)
		assert.Nil(t, c.Metadata)
	})
}
