package investigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConclusionTest() (*ConclusionGenerator, *HypothesisManager) {
	settings := DefaultSettings()
	hm := NewHypothesisManager(settings)
	return NewConclusionGenerator(settings, hm), hm
}

func TestConclusionGenerator_Generate(t *testing.T) {
	t.Run("placeholder when nothing leads", func(t *testing.T) {
		g, _ := newConclusionTest()
		s := newTestState(1)
		s.CurrentPhase = PhaseTimeline

		wc := g.Generate(s)

		assert.Equal(t, phasePlaceholders[PhaseTimeline], wc.Statement)
		assert.Equal(t, ConfidenceSpeculation, wc.ConfidenceLevel)
		assert.False(t, wc.CanProceedWithSolution)
		assert.NotEmpty(t, wc.NextEvidenceNeeded)
		assert.Equal(t, 1, wc.UpdatedAtTurn)
	})

	t.Run("follows the validated hypothesis", func(t *testing.T) {
		g, hm := newConclusionTest()
		s := newTestState(5)
		h := hm.Capture(s, "connection pool exhausted", CategoryInfrastructure, 0.80, GenerationOpportunistic)
		h.Status = HypothesisValidated
		h.SupportingEvidenceIDs = []string{"ev-1", "ev-2"}

		wc := g.Generate(s)

		assert.Equal(t, "connection pool exhausted", wc.Statement)
		assert.Equal(t, 0.80, wc.Confidence)
		assert.Equal(t, ConfidenceLikely, wc.ConfidenceLevel)
		assert.True(t, wc.CanProceedWithSolution)
		assert.Empty(t, wc.Caveats)
	})

	t.Run("top active hypothesis with caveats", func(t *testing.T) {
		g, hm := newConclusionTest()
		s := newTestState(5)
		lead := hm.Capture(s, "bad config push", CategoryConfiguration, 0.55, GenerationOpportunistic)
		hm.Activate(lead)
		lead.SupportingEvidenceIDs = []string{"ev-1"}
		lead.IterationsWithoutProgress = 3
		alt := hm.Capture(s, "dependency outage", CategoryExternalDependency, 0.40, GenerationOpportunistic)
		hm.Activate(alt)

		wc := g.Generate(s)

		assert.Equal(t, "bad config push", wc.Statement)
		assert.False(t, wc.CanProceedWithSolution)
		assert.Contains(t, wc.Caveats, "low supporting evidence")
		assert.Contains(t, wc.Caveats, "confidence below validation threshold")
		assert.Contains(t, wc.Caveats, "1 alternative explanations not ruled out")
		assert.Contains(t, wc.Caveats, "no recent progress")
		assert.NotEmpty(t, wc.NextEvidenceNeeded)
	})

	t.Run("next evidence is never empty", func(t *testing.T) {
		g, hm := newConclusionTest()
		s := newTestState(5)
		h := hm.Capture(s, "root cause", CategoryCode, 0.90, GenerationOpportunistic)
		h.Status = HypothesisValidated
		h.SupportingEvidenceIDs = []string{"ev-1", "ev-2", "ev-3"}

		wc := g.Generate(s)
		assert.Equal(t, []string{"verification that the applied fix resolves the symptom"}, wc.NextEvidenceNeeded)
	})
}

func TestConclusionGenerator_Metrics(t *testing.T) {
	g, hm := newConclusionTest()
	s := newTestState(5)
	addEvidence(s, "ev-1")
	addEvidence(s, "ev-2")
	h := hm.Capture(s, "validated cause", CategoryCode, 0.85, GenerationOpportunistic)
	h.Status = HypothesisValidated
	active := hm.Capture(s, "still open", CategoryInfrastructure, 0.40, GenerationOpportunistic)
	hm.Activate(active)
	s.Progress.Complete(MilestoneSymptomVerified, time.Now())
	s.Progress.Complete(MilestoneScopeAssessed, time.Now())

	m := g.Metrics(s)

	assert.Equal(t, 2, m.EvidenceCount)
	assert.Equal(t, 1, m.ActiveHypothesisCount)
	assert.Equal(t, h.ID, m.ValidatedHypothesisID)
	assert.Equal(t, 25.0, m.CompletionPercentage)
	assert.False(t, m.Degraded)
}

func TestConclusionGenerator_Momentum(t *testing.T) {
	g, _ := newConclusionTest()

	record := func(progressed ...bool) *State {
		s := newTestState(len(progressed))
		for i, p := range progressed {
			s.TurnHistory = append(s.TurnHistory, TurnRecord{
				TurnNumber:   i + 1,
				ProgressMade: p,
			})
		}
		return s
	}

	tests := []struct {
		name string
		s    *State
		want Momentum
	}{
		{"fewer than three turns", record(true, true), MomentumEarly},
		{"no progress in last three", record(true, false, false, false), MomentumStalled},
		{"all three progressed", record(false, true, true, true), MomentumAccelerating},
		{"mixed", record(true, true, false, true), MomentumSteady},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, g.Metrics(tt.s).Momentum)
		})
	}
}
