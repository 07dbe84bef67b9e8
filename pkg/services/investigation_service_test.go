package services

import (
	"context"
	"testing"

	"github.com/caseops/inquest/pkg/engine"
	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyFor(t *testing.T) {
	tests := []struct {
		temporal investigation.TemporalState
		urgency  investigation.UrgencyLevel
		want     investigation.Strategy
	}{
		{investigation.TemporalOngoing, investigation.UrgencyCritical, investigation.StrategyMitigationFirst},
		{investigation.TemporalOngoing, investigation.UrgencyHigh, investigation.StrategyMitigationFirst},
		{investigation.TemporalOngoing, investigation.UrgencyMedium, investigation.StrategyUserChoice},
		{investigation.TemporalOngoing, investigation.UrgencyLow, investigation.StrategyUserChoice},
		{investigation.TemporalHistorical, investigation.UrgencyLow, investigation.StrategyRootCause},
		{investigation.TemporalHistorical, investigation.UrgencyMedium, investigation.StrategyRootCause},
		{investigation.TemporalHistorical, investigation.UrgencyHigh, investigation.StrategyUserChoice},
		{investigation.TemporalHistorical, investigation.UrgencyCritical, investigation.StrategyUserChoice},
	}
	for _, tt := range tests {
		t.Run(string(tt.temporal)+"_"+string(tt.urgency), func(t *testing.T) {
			assert.Equal(t, tt.want, StrategyFor(tt.temporal, tt.urgency))
		})
	}
}

func TestInvestigationService_Initialize(t *testing.T) {
	ctx := context.Background()

	t.Run("ongoing critical mitigates first", func(t *testing.T) {
		repo, _, inv := newTestServices()
		seedConsultingCase(repo, "case-1", "user-1", investigation.TemporalOngoing, investigation.UrgencyCritical)

		state, err := inv.Initialize(ctx, "case-1", "user-1", InitializeRequest{})
		require.NoError(t, err)

		assert.NotEmpty(t, state.InvestigationID)
		assert.Equal(t, investigation.PhaseIntake, state.CurrentPhase)
		assert.Equal(t, 0, state.CurrentTurn)
		assert.Equal(t, investigation.StrategyMitigationFirst, state.Strategy)
		assert.Equal(t, "p99 latency tripled", state.AnomalyFrame.ProblemStatement)

		saved, err := repo.GetCase(ctx, "case-1")
		require.NoError(t, err)
		assert.Equal(t, models.CaseInvestigating, saved.Status)
		persisted, err := engine.LoadState(saved)
		require.NoError(t, err)
		assert.Equal(t, state.InvestigationID, persisted.InvestigationID)
		require.NotNil(t, persisted.ConsultingData)
	})

	t.Run("historical goes for root cause", func(t *testing.T) {
		repo, _, inv := newTestServices()
		seedConsultingCase(repo, "case-1", "user-1", investigation.TemporalHistorical, investigation.UrgencyMedium)

		state, err := inv.Initialize(ctx, "case-1", "user-1", InitializeRequest{})
		require.NoError(t, err)
		assert.Equal(t, investigation.StrategyRootCause, state.Strategy)
	})

	t.Run("historical at critical urgency is the user's call", func(t *testing.T) {
		repo, _, inv := newTestServices()
		seedConsultingCase(repo, "case-1", "user-1", investigation.TemporalHistorical, investigation.UrgencyCritical)

		_, err := inv.Initialize(ctx, "case-1", "user-1", InitializeRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		state, err := inv.Initialize(ctx, "case-1", "user-1", InitializeRequest{
			StrategyChoice: investigation.StrategyMitigationFirst,
		})
		require.NoError(t, err)
		assert.Equal(t, investigation.StrategyMitigationFirst, state.Strategy)
	})

	t.Run("user choice is required at low urgency", func(t *testing.T) {
		repo, _, inv := newTestServices()
		seedConsultingCase(repo, "case-1", "user-1", investigation.TemporalOngoing, investigation.UrgencyLow)

		_, err := inv.Initialize(ctx, "case-1", "user-1", InitializeRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		state, err := inv.Initialize(ctx, "case-1", "user-1", InitializeRequest{
			StrategyChoice: investigation.StrategyRootCause,
		})
		require.NoError(t, err)
		assert.Equal(t, investigation.StrategyRootCause, state.Strategy)
	})

	t.Run("only consulting cases initialize", func(t *testing.T) {
		repo, _, inv := newTestServices()
		seedInvestigatingCase(repo, "case-1", "user-1")

		_, err := inv.Initialize(ctx, "case-1", "user-1", InitializeRequest{})
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("ownership enforced", func(t *testing.T) {
		repo, _, inv := newTestServices()
		seedConsultingCase(repo, "case-1", "user-1", investigation.TemporalOngoing, investigation.UrgencyCritical)

		_, err := inv.Initialize(ctx, "case-1", "intruder", InitializeRequest{})
		require.ErrorIs(t, err, ErrForbidden)
	})
}

func TestInvestigationService_AddHypothesis(t *testing.T) {
	ctx := context.Background()
	repo, _, inv := newTestServices()
	seedInvestigatingCase(repo, "case-1", "user-1")

	h, err := inv.AddHypothesis(ctx, "case-1", "user-1", "cache stampede", investigation.CategoryPerformance, 0.4)
	require.NoError(t, err)
	assert.Equal(t, investigation.HypothesisActive, h.Status)
	assert.Equal(t, investigation.GenerationSystematic, h.GenerationMode)

	saved, _ := repo.GetCase(ctx, "case-1")
	state, err := engine.LoadState(saved)
	require.NoError(t, err)
	require.Len(t, state.Hypotheses, 1)
	assert.Equal(t, "cache stampede", state.Hypotheses[0].Statement)

	t.Run("rejected outside investigating status", func(t *testing.T) {
		seedConsultingCase(repo, "case-2", "user-1", investigation.TemporalOngoing, investigation.UrgencyLow)
		_, err := inv.AddHypothesis(ctx, "case-2", "user-1", "x", investigation.CategoryCode, 0.3)
		require.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestInvestigationService_RetireHypothesis(t *testing.T) {
	ctx := context.Background()
	repo, _, inv := newTestServices()
	seedInvestigatingCase(repo, "case-1", "user-1")

	h, err := inv.AddHypothesis(ctx, "case-1", "user-1", "bad deploy", investigation.CategoryCode, 0.5)
	require.NoError(t, err)

	require.NoError(t, inv.RetireHypothesis(ctx, "case-1", "user-1", h.ID, false))

	saved, _ := repo.GetCase(ctx, "case-1")
	state, _ := engine.LoadState(saved)
	assert.Equal(t, investigation.HypothesisRetired, state.Hypotheses[0].Status)

	t.Run("settled hypotheses stay settled", func(t *testing.T) {
		err := inv.RetireHypothesis(ctx, "case-1", "user-1", h.ID, true)
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown hypothesis", func(t *testing.T) {
		err := inv.RetireHypothesis(ctx, "case-1", "user-1", "missing", false)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestInvestigationService_AddEvidence(t *testing.T) {
	ctx := context.Background()
	repo, _, inv := newTestServices()
	seedInvestigatingCase(repo, "case-1", "user-1")

	h, err := inv.AddHypothesis(ctx, "case-1", "user-1", "pool exhausted", investigation.CategoryInfrastructure, 0.5)
	require.NoError(t, err)

	ev, err := inv.AddEvidence(ctx, "case-1", "user-1", "pool wait graph", investigation.EvidenceCausal, h.ID, true)
	require.NoError(t, err)
	assert.Equal(t, []string{h.ID}, ev.SupportsHypothesisIDs)

	saved, _ := repo.GetCase(ctx, "case-1")
	state, _ := engine.LoadState(saved)
	assert.InDelta(t, 0.65, state.Hypotheses[0].Likelihood, 1e-9)
}

func TestInvestigationService_GetProgress(t *testing.T) {
	ctx := context.Background()
	repo, _, inv := newTestServices()
	state := seedInvestigatingCase(repo, "case-1", "user-1")
	_ = state

	report, err := inv.GetProgress(ctx, "case-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, investigation.PhaseValidation, report.Phase)
	assert.Equal(t, 2, report.Turn)
	assert.Len(t, report.Milestones, 8)
	assert.Equal(t, investigation.MomentumEarly, report.Metrics.Momentum)

	t.Run("no investigation yet", func(t *testing.T) {
		seedConsultingCase(repo, "case-2", "user-1", investigation.TemporalOngoing, investigation.UrgencyLow)
		c2, _ := repo.GetCase(ctx, "case-2")
		c2.Metadata = nil
		_ = repo.SaveCase(ctx, c2)

		_, err := inv.GetProgress(ctx, "case-2", "user-1")
		require.ErrorIs(t, err, ErrNotFound)
	})
}
