package investigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(turn int) *State {
	return &State{
		InvestigationID: "inv-test",
		CurrentPhase:    PhaseValidation,
		CurrentTurn:     turn,
	}
}

func addEvidence(s *State, id string) {
	s.Evidence = append(s.Evidence, Evidence{
		ID:              id,
		Description:     "evidence " + id,
		Category:        EvidenceCausal,
		CollectedAtTurn: s.CurrentTurn,
	})
}

func TestHypothesisManager_LinkEvidence(t *testing.T) {
	hm := NewHypothesisManager(DefaultSettings())

	t.Run("supporting evidence raises likelihood by 0.15", func(t *testing.T) {
		s := newTestState(2)
		h := hm.Capture(s, "connection pool exhausted", CategoryInfrastructure, 0.50, GenerationOpportunistic)
		hm.Activate(h)
		addEvidence(s, "e1")

		require.NoError(t, hm.LinkEvidence(s, h.ID, "e1", true))
		assert.InDelta(t, 0.65, h.Likelihood, 1e-9)
		assert.Equal(t, HypothesisActive, h.Status)
		assert.Equal(t, 2, h.LastProgressAtTurn)
		assert.Equal(t, 0, h.IterationsWithoutProgress)
	})

	t.Run("second supporting evidence validates at threshold", func(t *testing.T) {
		s := newTestState(3)
		h := hm.Capture(s, "connection pool exhausted", CategoryInfrastructure, 0.50, GenerationOpportunistic)
		hm.Activate(h)
		addEvidence(s, "e1")
		addEvidence(s, "e2")

		require.NoError(t, hm.LinkEvidence(s, h.ID, "e1", true))
		require.NoError(t, hm.LinkEvidence(s, h.ID, "e2", true))

		assert.InDelta(t, 0.80, h.Likelihood, 1e-9)
		assert.Equal(t, HypothesisValidated, h.Status)
		assert.Equal(t, 3, h.ValidatedAtTurn)
	})

	t.Run("validation triggers at exactly 0.70 with two supporters", func(t *testing.T) {
		s := newTestState(1)
		h := hm.Capture(s, "bad deploy", CategoryCode, 0.40, GenerationSystematic)
		hm.Activate(h)
		addEvidence(s, "e1")
		addEvidence(s, "e2")

		require.NoError(t, hm.LinkEvidence(s, h.ID, "e1", true))
		require.NoError(t, hm.LinkEvidence(s, h.ID, "e2", true))

		assert.InDelta(t, 0.70, h.Likelihood, 1e-9)
		assert.Equal(t, HypothesisValidated, h.Status)
	})

	t.Run("refuting evidence lowers likelihood by 0.20 and refutes", func(t *testing.T) {
		s := newTestState(4)
		h := hm.Capture(s, "DNS failure", CategoryNetwork, 0.55, GenerationOpportunistic)
		hm.Activate(h)
		addEvidence(s, "r1")
		addEvidence(s, "r2")

		require.NoError(t, hm.LinkEvidence(s, h.ID, "r1", false))
		assert.InDelta(t, 0.35, h.Likelihood, 1e-9)
		assert.Equal(t, HypothesisActive, h.Status)

		require.NoError(t, hm.LinkEvidence(s, h.ID, "r2", false))
		assert.InDelta(t, 0.15, h.Likelihood, 1e-9)
		assert.Equal(t, HypothesisRefuted, h.Status)
	})

	t.Run("refuted takes precedence over retired", func(t *testing.T) {
		s := newTestState(1)
		h := hm.Capture(s, "disk full", CategoryInfrastructure, 0.45, GenerationOpportunistic)
		hm.Activate(h)
		addEvidence(s, "r1")
		addEvidence(s, "r2")

		require.NoError(t, hm.LinkEvidence(s, h.ID, "r1", false))
		require.NoError(t, hm.LinkEvidence(s, h.ID, "r2", false))

		// 0.05 satisfies both the refuted ceiling and the retired
		// floor; refuted must win.
		assert.Equal(t, HypothesisRefuted, h.Status)
	})

	t.Run("drops below 0.30 without refuting evidence retires", func(t *testing.T) {
		s := newTestState(1)
		h := hm.Capture(s, "cache stampede", CategoryPerformance, 0.45, GenerationOpportunistic)
		hm.Activate(h)
		addEvidence(s, "r1")

		require.NoError(t, hm.LinkEvidence(s, h.ID, "r1", false))
		assert.InDelta(t, 0.25, h.Likelihood, 1e-9)
		assert.Equal(t, HypothesisRetired, h.Status)
	})

	t.Run("likelihood clamps to [0,1]", func(t *testing.T) {
		s := newTestState(1)
		h := hm.Capture(s, "everything", CategoryCode, 0.95, GenerationOpportunistic)
		hm.Activate(h)
		addEvidence(s, "e1")

		require.NoError(t, hm.LinkEvidence(s, h.ID, "e1", true))
		assert.Equal(t, 1.0, h.Likelihood)
	})

	t.Run("duplicate link is a no-op", func(t *testing.T) {
		s := newTestState(1)
		h := hm.Capture(s, "dup", CategoryData, 0.50, GenerationOpportunistic)
		hm.Activate(h)
		addEvidence(s, "e1")

		require.NoError(t, hm.LinkEvidence(s, h.ID, "e1", true))
		require.NoError(t, hm.LinkEvidence(s, h.ID, "e1", true))
		assert.InDelta(t, 0.65, h.Likelihood, 1e-9)
		assert.Len(t, h.SupportingEvidenceIDs, 1)
	})

	t.Run("unknown hypothesis id returns ErrNotFound", func(t *testing.T) {
		s := newTestState(1)
		addEvidence(s, "e1")
		err := hm.LinkEvidence(s, "missing", "e1", true)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("link to terminal hypothesis is an invariant violation", func(t *testing.T) {
		s := newTestState(1)
		h := hm.Capture(s, "done", CategoryCode, 0.90, GenerationOpportunistic)
		h.Status = HypothesisValidated
		addEvidence(s, "e1")

		err := hm.LinkEvidence(s, h.ID, "e1", true)
		require.Error(t, err)
		assert.True(t, IsInvariantViolation(err))
	})
}

func TestHypothesisManager_ProgressTracking(t *testing.T) {
	hm := NewHypothesisManager(DefaultSettings())

	t.Run("delta at exactly the 0.05 boundary resets the stall counter", func(t *testing.T) {
		s := newTestState(5)
		h := hm.Capture(s, "boundary", CategoryCode, 0.50, GenerationOpportunistic)
		hm.Activate(h)
		h.IterationsWithoutProgress = 4

		hm.applyDelta(s, h, 0.05)
		assert.Equal(t, 0, h.IterationsWithoutProgress)
		assert.Equal(t, 5, h.LastProgressAtTurn)
	})

	t.Run("delta below the boundary increments the stall counter", func(t *testing.T) {
		s := newTestState(5)
		h := hm.Capture(s, "boundary", CategoryCode, 0.50, GenerationOpportunistic)
		hm.Activate(h)

		hm.applyDelta(s, h, 0.04)
		assert.Equal(t, 1, h.IterationsWithoutProgress)
	})
}

func TestHypothesisManager_ApplyDecay(t *testing.T) {
	hm := NewHypothesisManager(DefaultSettings())

	t.Run("decay applies at exactly two stalled iterations", func(t *testing.T) {
		s := newTestState(6)
		h := hm.Capture(s, "stalling", CategoryConfiguration, 0.60, GenerationOpportunistic)
		hm.Activate(h)
		h.IterationsWithoutProgress = 2

		hm.ApplyDecay(s)
		assert.InDelta(t, 0.60*0.85*0.85, h.Likelihood, 1e-9)
	})

	t.Run("no decay below two stalled iterations", func(t *testing.T) {
		s := newTestState(6)
		h := hm.Capture(s, "fresh", CategoryConfiguration, 0.60, GenerationOpportunistic)
		hm.Activate(h)
		h.IterationsWithoutProgress = 1

		hm.ApplyDecay(s)
		assert.InDelta(t, 0.60, h.Likelihood, 1e-9)
	})

	t.Run("decay only touches active hypotheses", func(t *testing.T) {
		s := newTestState(6)
		h := hm.Capture(s, "validated", CategoryConfiguration, 0.90, GenerationOpportunistic)
		h.Status = HypothesisValidated
		h.IterationsWithoutProgress = 5

		hm.ApplyDecay(s)
		assert.InDelta(t, 0.90, h.Likelihood, 1e-9)
	})

	t.Run("decay can retire a hypothesis", func(t *testing.T) {
		s := newTestState(6)
		h := hm.Capture(s, "fading", CategoryData, 0.35, GenerationOpportunistic)
		hm.Activate(h)
		h.IterationsWithoutProgress = 3

		hm.ApplyDecay(s)
		assert.Less(t, h.Likelihood, 0.30)
		assert.Equal(t, HypothesisRetired, h.Status)
	})
}

func TestHypothesisManager_DetectAnchoring(t *testing.T) {
	hm := NewHypothesisManager(DefaultSettings())

	activeHypothesis := func(s *State, statement string, cat HypothesisCategory, likelihood float64, stalled int) *Hypothesis {
		h := hm.Capture(s, statement, cat, likelihood, GenerationOpportunistic)
		hm.Activate(h)
		h.IterationsWithoutProgress = stalled
		return h
	}

	t.Run("requires minimum iteration count", func(t *testing.T) {
		s := newTestState(3)
		s.OODA.CurrentIteration = 2
		for i := 0; i < 4; i++ {
			activeHypothesis(s, "infra", CategoryInfrastructure, 0.50, 0)
		}
		assert.False(t, hm.DetectAnchoring(s).Triggered)
	})

	t.Run("four active hypotheses in one category trigger", func(t *testing.T) {
		s := newTestState(3)
		s.OODA.CurrentIteration = 3
		for i := 0; i < 4; i++ {
			activeHypothesis(s, "infra", CategoryInfrastructure, 0.50, 0)
		}

		result := hm.DetectAnchoring(s)
		require.True(t, result.Triggered)
		assert.Contains(t, result.Reason, "4 hypotheses in 'infrastructure' category")
		assert.Len(t, result.AffectedIDs, 4)
	})

	t.Run("category pile-up reports categories deterministically", func(t *testing.T) {
		s := newTestState(3)
		s.OODA.CurrentIteration = 3
		for i := 0; i < 4; i++ {
			activeHypothesis(s, "data", CategoryData, 0.50, 0)
		}
		for i := 0; i < 4; i++ {
			activeHypothesis(s, "code", CategoryCode, 0.50, 0)
		}

		// Both categories are at the threshold; the earlier entry in
		// KnownCategories wins every time.
		for i := 0; i < 5; i++ {
			result := hm.DetectAnchoring(s)
			require.True(t, result.Triggered)
			assert.Contains(t, result.Reason, "'code' category")
			assert.Len(t, result.AffectedIDs, 4)
		}
	})

	t.Run("two stalled hypotheses trigger", func(t *testing.T) {
		s := newTestState(3)
		s.OODA.CurrentIteration = 3
		activeHypothesis(s, "a", CategoryCode, 0.50, 3)
		activeHypothesis(s, "b", CategoryNetwork, 0.45, 4)

		result := hm.DetectAnchoring(s)
		require.True(t, result.Triggered)
		assert.Len(t, result.AffectedIDs, 2)
	})

	t.Run("stalled front-runner below validation confidence triggers", func(t *testing.T) {
		s := newTestState(3)
		s.OODA.CurrentIteration = 3
		activeHypothesis(s, "leader", CategoryCode, 0.60, 3)
		activeHypothesis(s, "trailer", CategoryNetwork, 0.40, 0)

		result := hm.DetectAnchoring(s)
		require.True(t, result.Triggered)
		assert.Contains(t, result.Reason, "top hypothesis stalled")
	})

	t.Run("healthy hypothesis set does not trigger", func(t *testing.T) {
		s := newTestState(3)
		s.OODA.CurrentIteration = 3
		activeHypothesis(s, "a", CategoryCode, 0.60, 0)
		activeHypothesis(s, "b", CategoryNetwork, 0.40, 1)

		assert.False(t, hm.DetectAnchoring(s).Triggered)
	})
}

func TestHypothesisManager_ForceAlternatives(t *testing.T) {
	hm := NewHypothesisManager(DefaultSettings())

	s := newTestState(3)
	s.OODA.CurrentIteration = 3

	var stale []*Hypothesis
	for i := 0; i < 3; i++ {
		h := hm.Capture(s, "infra hypothesis", CategoryInfrastructure, 0.50, GenerationOpportunistic)
		hm.Activate(h)
		h.IterationsWithoutProgress = 2
		stale = append(stale, h)
	}
	fresh := hm.Capture(s, "fresh infra", CategoryInfrastructure, 0.55, GenerationOpportunistic)
	hm.Activate(fresh)
	other := hm.Capture(s, "network", CategoryNetwork, 0.40, GenerationOpportunistic)
	hm.Activate(other)

	constraints := hm.ForceAlternatives(s)

	assert.Equal(t, []HypothesisCategory{CategoryInfrastructure}, constraints.ExcludeCategories)
	assert.True(t, constraints.RequireDiverseCategories)
	assert.Equal(t, 2, constraints.MinNewHypotheses)

	for _, h := range stale {
		assert.Equal(t, HypothesisRetired, h.Status, "stalled dominant-category hypotheses retire")
	}
	assert.Equal(t, HypothesisActive, fresh.Status, "fresh hypothesis survives")
	assert.Equal(t, HypothesisActive, other.Status, "other category survives")
}

func TestHypothesisManager_Helpers(t *testing.T) {
	hm := NewHypothesisManager(DefaultSettings())

	s := newTestState(1)
	low := hm.Capture(s, "low", CategoryCode, 0.35, GenerationOpportunistic)
	hm.Activate(low)
	high := hm.Capture(s, "high", CategoryNetwork, 0.65, GenerationOpportunistic)
	hm.Activate(high)
	floor := hm.Capture(s, "floor", CategoryData, 0.15, GenerationOpportunistic)
	hm.Activate(floor)
	validated := hm.Capture(s, "proven", CategoryCode, 0.85, GenerationOpportunistic)
	validated.Status = HypothesisValidated

	t.Run("GetTestable excludes at-floor and caps the count", func(t *testing.T) {
		testable := hm.GetTestable(s, 1)
		require.Len(t, testable, 1)
		assert.Equal(t, high.ID, testable[0].ID)

		all := hm.GetTestable(s, 0)
		assert.Len(t, all, 2)
	})

	t.Run("GetValidated returns the proven hypothesis", func(t *testing.T) {
		v := hm.GetValidated(s)
		require.NotNil(t, v)
		assert.Equal(t, validated.ID, v.ID)
	})

	t.Run("RankByLikelihood sorts descending", func(t *testing.T) {
		ranked := hm.RankByLikelihood(s.ActiveHypotheses())
		require.Len(t, ranked, 3)
		assert.Equal(t, high.ID, ranked[0].ID)
		assert.Equal(t, floor.ID, ranked[2].ID)
	})
}
