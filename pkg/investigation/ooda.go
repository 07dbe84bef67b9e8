package investigation

import "fmt"

// IterationBudget is the (min, max) iteration bound for a phase.
type IterationBudget struct {
	Min int
	Max int
}

// phaseBudgets holds the per-phase iteration budgets. INTAKE gets no
// iterations; VALIDATION gets the deepest budget.
var phaseBudgets = map[Phase]IterationBudget{
	PhaseIntake:      {Min: 0, Max: 0},
	PhaseBlastRadius: {Min: 1, Max: 2},
	PhaseTimeline:    {Min: 1, Max: 2},
	PhaseHypothesis:  {Min: 2, Max: 3},
	PhaseValidation:  {Min: 3, Max: 6},
	PhaseSolution:    {Min: 2, Max: 4},
	PhaseDocument:    {Min: 1, Max: 1},
}

// OODAController drives the fine-grained within-phase iteration loop:
// budgets, adaptive intensity, and the continuation decision.
type OODAController struct {
	settings   Settings
	hypotheses *HypothesisManager
}

// NewOODAController creates a controller sharing the hypothesis
// manager used for anchoring detection.
func NewOODAController(settings Settings, hm *HypothesisManager) *OODAController {
	return &OODAController{settings: settings, hypotheses: hm}
}

// Budget returns the iteration budget for a phase.
func (c *OODAController) Budget(phase Phase) IterationBudget {
	return phaseBudgets[phase]
}

// IntensityFor returns the iteration intensity for a (phase, iteration)
// pair.
func (c *OODAController) IntensityFor(phase Phase, iteration int) Intensity {
	switch phase {
	case PhaseIntake:
		return IntensityNone
	case PhaseBlastRadius, PhaseTimeline, PhaseDocument:
		return IntensityLight
	case PhaseHypothesis:
		if iteration <= 2 {
			return IntensityLight
		}
		return IntensityMedium
	case PhaseValidation:
		if iteration <= 2 {
			return IntensityMedium
		}
		return IntensityFull
	case PhaseSolution:
		return IntensityMedium
	}
	return IntensityLight
}

// ContinuationDecision is the result of shouldContinue.
type ContinuationDecision struct {
	Continue bool
	Reason   string
}

// ShouldContinue decides whether the current phase needs another
// iteration. Order matters: the minimum floor and maximum ceiling win
// over everything; anchoring extends the loop to break the bias;
// VALIDATION refuses to stop without a validated hypothesis.
func (c *OODAController) ShouldContinue(s *State) ContinuationDecision {
	budget := c.Budget(s.CurrentPhase)
	iter := s.OODA.CurrentIteration

	if iter < budget.Min {
		return ContinuationDecision{Continue: true, Reason: "below minimum iterations"}
	}
	if iter >= budget.Max {
		return ContinuationDecision{Continue: false, Reason: "max iterations reached"}
	}

	if anchoring := c.hypotheses.DetectAnchoring(s); anchoring.Triggered {
		return ContinuationDecision{
			Continue: true,
			Reason:   fmt.Sprintf("anchoring detected: %s", anchoring.Reason),
		}
	}

	if s.CurrentPhase == PhaseValidation {
		if v := c.hypotheses.GetValidated(s); v == nil || v.Likelihood < c.settings.ValidationLikelihood {
			return ContinuationDecision{Continue: true, Reason: "no validated hypothesis yet"}
		}
	}

	return ContinuationDecision{Continue: false, Reason: "objectives achieved"}
}

// Advance records one completed iteration and refreshes the adaptive
// intensity for the next.
func (c *OODAController) Advance(s *State) {
	s.OODA.CurrentIteration++
	s.OODA.Intensity = c.IntensityFor(s.CurrentPhase, s.OODA.CurrentIteration)
	s.OODA.CurrentStep = nextStep(s.OODA.CurrentStep)
}

// ResetForPhase zeroes the iteration loop on phase entry.
func (c *OODAController) ResetForPhase(s *State, phase Phase) {
	s.OODA = OODAState{
		CurrentStep:      OODAObserve,
		CurrentIteration: 0,
		Intensity:        c.IntensityFor(phase, 0),
	}
}

func nextStep(step OODAStep) OODAStep {
	switch step {
	case OODAObserve:
		return OODAOrient
	case OODAOrient:
		return OODADecide
	case OODADecide:
		return OODAAct
	default:
		return OODAObserve
	}
}
