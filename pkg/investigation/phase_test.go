package investigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPhaseTest() (*PhaseOrchestrator, *OODAController) {
	settings := DefaultSettings()
	hm := NewHypothesisManager(settings)
	ooda := NewOODAController(settings, hm)
	return NewPhaseOrchestrator(settings, ooda), ooda
}

func TestPhaseOrchestrator_LinearAdvance(t *testing.T) {
	o, _ := newPhaseTest()
	s := newTestState(1)
	s.CurrentPhase = PhaseIntake
	s.OODA.CurrentIteration = 4

	res := o.NextPhase(s, PhaseCompleted, "intake done")

	assert.True(t, res.Transitioned)
	assert.Equal(t, PhaseBlastRadius, s.CurrentPhase)
	assert.Equal(t, 0, s.OODA.CurrentIteration, "OODA resets on phase entry")
	assert.Equal(t, OODAObserve, s.OODA.CurrentStep)
}

func TestPhaseOrchestrator_FinalPhaseStays(t *testing.T) {
	o, _ := newPhaseTest()
	s := newTestState(1)
	s.CurrentPhase = PhaseDocument

	res := o.NextPhase(s, PhaseCompleted, "")

	assert.False(t, res.Transitioned)
	assert.Equal(t, PhaseDocument, s.CurrentPhase)
}

func TestPhaseOrchestrator_Loopbacks(t *testing.T) {
	tests := []struct {
		outcome PhaseOutcome
		target  Phase
	}{
		{PhaseHypothesisRefuted, PhaseHypothesis},
		{PhaseScopeChanged, PhaseBlastRadius},
		{PhaseTimelineWrong, PhaseTimeline},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			o, _ := newPhaseTest()
			s := newTestState(7)
			s.CurrentPhase = PhaseValidation

			res := o.NextPhase(s, tt.outcome, "framing wrong")

			assert.True(t, res.LoopedBack)
			assert.Equal(t, tt.target, s.CurrentPhase)
			assert.Equal(t, 1, s.Loopbacks.Count)
			require.Len(t, s.Loopbacks.History, 1)
			rec := s.Loopbacks.History[0]
			assert.Equal(t, 7, rec.AtTurn)
			assert.Equal(t, PhaseValidation, rec.From)
			assert.Equal(t, tt.target, rec.To)
			assert.Equal(t, tt.outcome, rec.Reason)
		})
	}
}

func TestPhaseOrchestrator_LoopbackLimit(t *testing.T) {
	o, _ := newPhaseTest()
	s := newTestState(1)
	s.CurrentPhase = PhaseValidation

	for i := 0; i < 3; i++ {
		s.CurrentPhase = PhaseValidation
		res := o.NextPhase(s, PhaseHypothesisRefuted, "refuted")
		require.True(t, res.LoopedBack, "loop-back %d allowed", i+1)
	}
	require.Equal(t, 3, s.Loopbacks.Count)

	s.CurrentPhase = PhaseValidation
	res := o.NextPhase(s, PhaseHypothesisRefuted, "refuted again")

	assert.False(t, res.LoopedBack)
	assert.True(t, res.EnteredDegraded)
	assert.Equal(t, PhaseValidation, s.CurrentPhase, "phase unchanged at the limit")
	assert.Equal(t, 3, s.Loopbacks.Count)
	require.NotNil(t, s.Degraded)
	assert.Equal(t, DegradedLoopbackLimit, s.Degraded.Type)
	assert.Equal(t, "loop-back limit exceeded", s.Degraded.Reason)
}

func TestPhaseOrchestrator_HoldingOutcomes(t *testing.T) {
	o, _ := newPhaseTest()
	s := newTestState(1)
	s.CurrentPhase = PhaseTimeline

	for _, outcome := range []PhaseOutcome{PhaseNeedMoreData, PhaseEscalationNeeded} {
		res := o.NextPhase(s, outcome, "")
		assert.False(t, res.Transitioned)
		assert.Equal(t, PhaseTimeline, s.CurrentPhase)
	}
}

func TestPhaseOrchestrator_Stalled(t *testing.T) {
	o, _ := newPhaseTest()
	s := newTestState(4)
	s.CurrentPhase = PhaseValidation

	res := o.NextPhase(s, PhaseStalled, "no viable next step")

	assert.True(t, res.EnteredDegraded)
	require.NotNil(t, s.Degraded)
	assert.Equal(t, DegradedNoProgress, s.Degraded.Type)
	assert.Equal(t, 4, s.Degraded.EnteredAtTurn)
}

func TestPhaseOrchestrator_DegradedNotReentered(t *testing.T) {
	o, _ := newPhaseTest()
	s := newTestState(4)
	s.CurrentPhase = PhaseValidation

	o.NextPhase(s, PhaseStalled, "first stall")
	first := *s.Degraded

	s.CurrentTurn = 6
	o.NextPhase(s, PhaseStalled, "second stall")
	assert.Equal(t, first, *s.Degraded, "unacknowledged degraded mode is not overwritten")

	s.Degraded.UserAcknowledged = true
	o.NextPhase(s, PhaseStalled, "third stall")
	assert.Equal(t, 6, s.Degraded.EnteredAtTurn, "acknowledged mode can be re-entered")
	assert.False(t, s.Degraded.UserAcknowledged)
}
