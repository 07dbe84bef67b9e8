package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseops/inquest/pkg/investigation"
)

func TestInitializeInvestigation(t *testing.T) {
	f := newAPIFixture(t)
	seedConsultingCase(t, f.repo, "case-1", "alice",
		investigation.TemporalOngoing, investigation.UrgencyCritical)

	rec := f.do(t, "alice", http.MethodPost, "/api/v1/cases/case-1/investigation", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	state := decode[investigation.State](t, rec)
	assert.NotEmpty(t, state.InvestigationID)
	assert.Equal(t, investigation.StrategyMitigationFirst, state.Strategy)

	// A second initialization is refused: the case has left consulting.
	rec = f.do(t, "alice", http.MethodPost, "/api/v1/cases/case-1/investigation", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestInitializeInvestigation_UserChoiceRequired(t *testing.T) {
	f := newAPIFixture(t)
	seedConsultingCase(t, f.repo, "case-1", "alice",
		investigation.TemporalOngoing, investigation.UrgencyLow)

	// Low-urgency ongoing incidents need an explicit strategy choice.
	rec := f.do(t, "alice", http.MethodPost, "/api/v1/cases/case-1/investigation", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, "alice", http.MethodPost, "/api/v1/cases/case-1/investigation", InitializeBody{
		StrategyChoice: investigation.StrategyRootCause,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	state := decode[investigation.State](t, rec)
	assert.Equal(t, investigation.StrategyRootCause, state.Strategy)
}

func TestGetInvestigationState(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	rec := f.do(t, "alice", http.MethodGet, "/api/v1/cases/case-1/investigation", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	state := decode[investigation.State](t, rec)
	assert.Equal(t, "inv-case-1", state.InvestigationID)
	assert.Equal(t, investigation.PhaseValidation, state.CurrentPhase)
}

func TestHypothesisLifecycle(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	rec := f.do(t, "alice", http.MethodPost, "/api/v1/cases/case-1/hypotheses", HypothesisBody{
		Statement:  "Connection pool exhausted by leaked transactions",
		Category:   investigation.CategoryCode,
		Likelihood: 0.6,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	h := decode[investigation.Hypothesis](t, rec)
	assert.NotEmpty(t, h.ID)
	assert.Equal(t, investigation.HypothesisActive, h.Status)
	assert.InDelta(t, 0.6, h.Likelihood, 0.001)

	rec = f.do(t, "alice", http.MethodDelete, "/api/v1/cases/case-1/hypotheses/"+h.ID+"?superseded=true", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, "alice", http.MethodGet, "/api/v1/cases/case-1/investigation", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	state := decode[investigation.State](t, rec)
	require.Len(t, state.Hypotheses, 1)
	assert.Equal(t, investigation.HypothesisSuperseded, state.Hypotheses[0].Status)
}

func TestRetireHypothesis_Unknown(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	rec := f.do(t, "alice", http.MethodDelete, "/api/v1/cases/case-1/hypotheses/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddEvidence_LinkedToHypothesis(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	rec := f.do(t, "alice", http.MethodPost, "/api/v1/cases/case-1/hypotheses", HypothesisBody{
		Statement:  "Slow queries from a missing index",
		Category:   investigation.CategoryData,
		Likelihood: 0.5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	h := decode[investigation.Hypothesis](t, rec)

	rec = f.do(t, "alice", http.MethodPost, "/api/v1/cases/case-1/evidence", EvidenceBody{
		Description:  "EXPLAIN shows a sequential scan on orders",
		Category:     investigation.EvidenceCausal,
		HypothesisID: h.ID,
		Supports:     true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	ev := decode[investigation.Evidence](t, rec)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "user", ev.SourceType)

	// Supporting evidence nudges the hypothesis likelihood up.
	rec = f.do(t, "alice", http.MethodGet, "/api/v1/cases/case-1/investigation", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	state := decode[investigation.State](t, rec)
	require.Len(t, state.Hypotheses, 1)
	assert.InDelta(t, 0.65, state.Hypotheses[0].Likelihood, 0.001)
}

func TestGetProgress(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	rec := f.do(t, "alice", http.MethodGet, "/api/v1/cases/case-1/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	progress := decode[struct {
		Phase investigation.Phase `json:"phase"`
		Turn  int                 `json:"turn"`
	}](t, rec)
	assert.Equal(t, investigation.PhaseValidation, progress.Phase)
	assert.Equal(t, 2, progress.Turn)
}

func TestInvestigationEndpoints_ForeignUserForbidden(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	rec := f.do(t, "mallory", http.MethodGet, "/api/v1/cases/case-1/investigation", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, "mallory", http.MethodPost, "/api/v1/cases/case-1/evidence", EvidenceBody{
		Description: "planted",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
