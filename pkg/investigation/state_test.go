package investigation

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_UnknownFieldsSurviveRoundTrip(t *testing.T) {
	doc := []byte(`{
		"investigation_id": "inv-1",
		"current_phase": "validation",
		"current_turn": 4,
		"started_at": "2026-08-20T10:00:00Z",
		"progress": {"symptom_verified": true},
		"future_field": {"nested": [1, 2, 3]},
		"another_unknown": "keep me"
	}`)

	var s State
	require.NoError(t, json.Unmarshal(doc, &s))
	assert.Equal(t, "inv-1", s.InvestigationID)
	assert.Equal(t, PhaseValidation, s.CurrentPhase)
	assert.Equal(t, 4, s.CurrentTurn)
	assert.True(t, s.Progress.SymptomVerified)

	out, err := json.Marshal(&s)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &raw))
	assert.JSONEq(t, `{"nested": [1, 2, 3]}`, string(raw["future_field"]))
	assert.JSONEq(t, `"keep me"`, string(raw["another_unknown"]))
}

func TestState_CloneIsDeep(t *testing.T) {
	s := newTestState(3)
	s.Hypotheses = append(s.Hypotheses, Hypothesis{ID: "h-1", Likelihood: 0.5, Status: HypothesisActive})
	addEvidence(s, "ev-1")

	clone, err := s.Clone()
	require.NoError(t, err)

	clone.Hypotheses[0].Likelihood = 0.9
	clone.Evidence[0].Description = "changed"

	assert.Equal(t, 0.5, s.Hypotheses[0].Likelihood)
	assert.NotEqual(t, "changed", s.Evidence[0].Description)
}

func TestState_ValidateTurnLog(t *testing.T) {
	s := newTestState(3)

	t.Run("contiguous log passes", func(t *testing.T) {
		s.TurnHistory = []TurnRecord{
			{TurnNumber: 1}, {TurnNumber: 2}, {TurnNumber: 3},
		}
		assert.NoError(t, s.ValidateTurnLog())
	})

	t.Run("gap is an invariant violation", func(t *testing.T) {
		s.TurnHistory = []TurnRecord{
			{TurnNumber: 1}, {TurnNumber: 3},
		}
		err := s.ValidateTurnLog()
		require.Error(t, err)
		assert.True(t, IsInvariantViolation(err))
	})
}

func TestState_Lookups(t *testing.T) {
	s := newTestState(1)
	s.Hypotheses = []Hypothesis{
		{ID: "h-1", Status: HypothesisActive},
		{ID: "h-2", Status: HypothesisRetired},
		{ID: "h-3", Status: HypothesisCaptured},
	}
	addEvidence(s, "ev-1")

	assert.NotNil(t, s.HypothesisByID("h-2"))
	assert.Nil(t, s.HypothesisByID("missing"))
	assert.NotNil(t, s.EvidenceByID("ev-1"))
	assert.Nil(t, s.EvidenceByID("missing"))

	active := s.ActiveHypotheses()
	require.Len(t, active, 2)
	assert.Equal(t, "h-1", active[0].ID)
	assert.Equal(t, "h-3", active[1].ID)
}

func TestProgress_Complete(t *testing.T) {
	var p Progress
	at := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

	require.True(t, p.Complete(MilestoneRootCauseIdentified, at))
	assert.True(t, p.RootCauseIdentified)
	assert.Equal(t, at, p.CompletedAt[string(MilestoneRootCauseIdentified)])

	later := at.Add(time.Hour)
	require.True(t, p.Complete(MilestoneRootCauseIdentified, later))
	assert.Equal(t, at, p.CompletedAt[string(MilestoneRootCauseIdentified)], "completion is idempotent")

	assert.False(t, p.Complete(Milestone("bogus"), at))
}

func TestProgress_CompletionPercentage(t *testing.T) {
	var p Progress
	assert.Equal(t, 0.0, p.CompletionPercentage())

	now := time.Now()
	for _, m := range AllMilestones[:4] {
		p.Complete(m, now)
	}
	assert.Equal(t, 50.0, p.CompletionPercentage())

	for _, m := range AllMilestones {
		p.Complete(m, now)
	}
	assert.Equal(t, 100.0, p.CompletionPercentage())
}
