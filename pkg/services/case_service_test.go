package services

import (
	"context"
	"testing"

	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseService_CreateCase(t *testing.T) {
	_, cases, _ := newTestServices()
	ctx := context.Background()

	t.Run("creates a consulting case with defaults", func(t *testing.T) {
		c, err := cases.CreateCase(ctx, "user-1", models.CreateCaseRequest{
			Title:       "API latency spike",
			Description: "p99 tripled",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, models.CaseConsulting, c.Status)
		assert.Equal(t, models.PriorityMedium, c.Priority)
		assert.Equal(t, "user-1", c.OwnerID)
	})

	t.Run("title is required", func(t *testing.T) {
		_, err := cases.CreateCase(ctx, "user-1", models.CreateCaseRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown priority rejected", func(t *testing.T) {
		_, err := cases.CreateCase(ctx, "user-1", models.CreateCaseRequest{
			Title:    "x",
			Priority: models.CasePriority("urgent"),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestCaseService_Ownership(t *testing.T) {
	repo, cases, _ := newTestServices()
	ctx := context.Background()
	seedConsultingCase(repo, "case-1", "user-1", investigation.TemporalOngoing, investigation.UrgencyHigh)

	_, err := cases.GetCase(ctx, "case-1", "someone-else")
	require.ErrorIs(t, err, ErrForbidden)

	_, err = cases.GetCase(ctx, "case-1", "user-1")
	require.NoError(t, err)
}

func TestCaseService_CloseCase(t *testing.T) {
	repo, cases, _ := newTestServices()
	ctx := context.Background()
	seedConsultingCase(repo, "case-1", "user-1", investigation.TemporalOngoing, investigation.UrgencyHigh)

	c, err := cases.CloseCase(ctx, "case-1", "user-1", "duplicate of case-0")
	require.NoError(t, err)
	assert.Equal(t, models.CaseClosed, c.Status)
	require.NotNil(t, c.ClosedAt)
	assert.Equal(t, "user-1", c.ClosedBy)

	// Closing again fails: terminal statuses admit no transitions.
	_, err = cases.CloseCase(ctx, "case-1", "user-1", "again")
	require.Error(t, err)
	var ite *investigation.InvalidTransitionError
	assert.ErrorAs(t, err, &ite)
}

func TestCaseService_DeleteCase(t *testing.T) {
	repo, cases, _ := newTestServices()
	ctx := context.Background()
	seedConsultingCase(repo, "case-1", "user-1", investigation.TemporalOngoing, investigation.UrgencyLow)

	t.Run("active case cannot be deleted", func(t *testing.T) {
		err := cases.DeleteCase(ctx, "case-1", "user-1")
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("closed case soft-deletes", func(t *testing.T) {
		_, err := cases.CloseCase(ctx, "case-1", "user-1", "not pursuing")
		require.NoError(t, err)
		require.NoError(t, cases.DeleteCase(ctx, "case-1", "user-1"))

		_, err = cases.GetCase(ctx, "case-1", "user-1")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCaseService_ListCases(t *testing.T) {
	repo, cases, _ := newTestServices()
	ctx := context.Background()
	seedConsultingCase(repo, "case-1", "user-1", investigation.TemporalOngoing, investigation.UrgencyLow)
	seedInvestigatingCase(repo, "case-2", "user-1")
	seedConsultingCase(repo, "case-3", "user-2", investigation.TemporalOngoing, investigation.UrgencyLow)

	resp, err := cases.ListCases(ctx, "user-1", models.CaseFilters{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)
	assert.Equal(t, 20, resp.Limit, "limit defaults when unset")

	resp, err = cases.ListCases(ctx, "user-1", models.CaseFilters{Status: models.CaseInvestigating, Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Cases, 1)
	assert.Equal(t, "case-2", resp.Cases[0].ID)
}
