package investigation

import "fmt"

// PhaseOrchestrator decides phase transitions, including loop-backs
// when the investigation's framing turns out to be wrong.
type PhaseOrchestrator struct {
	settings Settings
	ooda     *OODAController
}

// NewPhaseOrchestrator creates an orchestrator.
func NewPhaseOrchestrator(settings Settings, ooda *OODAController) *PhaseOrchestrator {
	return &PhaseOrchestrator{settings: settings, ooda: ooda}
}

// loopbackTargets maps loop-back outcomes to the phase they return to.
var loopbackTargets = map[PhaseOutcome]Phase{
	PhaseHypothesisRefuted: PhaseHypothesis,
	PhaseScopeChanged:      PhaseBlastRadius,
	PhaseTimelineWrong:     PhaseTimeline,
}

// TransitionResult describes what NextPhase decided.
type TransitionResult struct {
	Phase          Phase
	Transitioned   bool
	LoopedBack     bool
	EnteredDegraded bool
	Reason         string
}

// NextPhase applies the transition rules for the given outcome and
// mutates the state accordingly: phase, OODA reset, loop-back
// bookkeeping, and degraded mode on the loop-back limit.
func (o *PhaseOrchestrator) NextPhase(s *State, outcome PhaseOutcome, reason string) TransitionResult {
	current := s.CurrentPhase

	switch outcome {
	case PhaseCompleted:
		next := current.Next()
		if next == current {
			return TransitionResult{Phase: current, Reason: "final phase"}
		}
		s.CurrentPhase = next
		o.ooda.ResetForPhase(s, next)
		return TransitionResult{Phase: next, Transitioned: true, Reason: reason}

	case PhaseHypothesisRefuted, PhaseScopeChanged, PhaseTimelineWrong:
		target := loopbackTargets[outcome]
		if s.Loopbacks.Count >= o.settings.MaxLoopbacks {
			o.EnterDegraded(s, DegradedLoopbackLimit, "loop-back limit exceeded")
			return TransitionResult{Phase: current, EnteredDegraded: true, Reason: "loop-back limit exceeded"}
		}
		s.Loopbacks.Count++
		s.Loopbacks.History = append(s.Loopbacks.History, LoopbackRecord{
			AtTurn: s.CurrentTurn,
			From:   current,
			To:     target,
			Reason: outcome,
		})
		s.CurrentPhase = target
		o.ooda.ResetForPhase(s, target)
		return TransitionResult{Phase: target, Transitioned: true, LoopedBack: true, Reason: reason}

	case PhaseNeedMoreData, PhaseEscalationNeeded:
		return TransitionResult{Phase: current, Reason: string(outcome)}

	case PhaseStalled:
		o.EnterDegraded(s, DegradedNoProgress, reason)
		return TransitionResult{Phase: current, EnteredDegraded: true, Reason: reason}
	}

	return TransitionResult{Phase: current, Reason: fmt.Sprintf("unknown outcome %q", outcome)}
}

// EnterDegraded records degraded mode once; re-entry requests are
// ignored until the user acknowledges.
func (o *PhaseOrchestrator) EnterDegraded(s *State, kind DegradedModeType, reason string) {
	if s.Degraded != nil && !s.Degraded.UserAcknowledged {
		return
	}
	s.Degraded = &DegradedMode{
		Type:          kind,
		Reason:        reason,
		EnteredAtTurn: s.CurrentTurn,
	}
}
