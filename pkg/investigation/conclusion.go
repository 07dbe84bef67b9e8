package investigation

import "fmt"

// ConclusionGenerator computes the per-turn working conclusion and
// progress metrics from the current state.
type ConclusionGenerator struct {
	settings   Settings
	hypotheses *HypothesisManager
}

// NewConclusionGenerator creates a generator.
func NewConclusionGenerator(settings Settings, hm *HypothesisManager) *ConclusionGenerator {
	return &ConclusionGenerator{settings: settings, hypotheses: hm}
}

// phasePlaceholders provides a statement when no hypothesis leads yet.
var phasePlaceholders = map[Phase]string{
	PhaseIntake:      "Gathering the initial problem description.",
	PhaseBlastRadius: "Assessing which components and users are affected.",
	PhaseTimeline:    "Establishing when the problem started and what changed.",
	PhaseHypothesis:  "Generating candidate explanations for the fault.",
	PhaseValidation:  "Testing candidate explanations against evidence.",
	PhaseSolution:    "Working toward a fix for the identified cause.",
	PhaseDocument:    "Documenting the investigation and its outcome.",
}

// Generate computes the WorkingConclusion for the current state. The
// statement follows the best VALIDATED or ACTIVE hypothesis; with no
// candidate, a phase-specific placeholder is used.
func (g *ConclusionGenerator) Generate(s *State) WorkingConclusion {
	best := g.hypotheses.GetValidated(s)
	if best == nil {
		if ranked := g.hypotheses.RankByLikelihood(s.ActiveHypotheses()); len(ranked) > 0 {
			best = ranked[0]
		}
	}

	wc := WorkingConclusion{UpdatedAtTurn: s.CurrentTurn}
	if best == nil {
		wc.Statement = phasePlaceholders[s.CurrentPhase]
		wc.ConfidenceLevel = ConfidenceSpeculation
		wc.NextEvidenceNeeded = []string{"any evidence narrowing the fault domain"}
		return wc
	}

	wc.Statement = best.Statement
	wc.Confidence = best.Likelihood
	wc.ConfidenceLevel = ConfidenceLevelFor(best.Likelihood)
	wc.CanProceedWithSolution = best.Likelihood >= g.settings.ValidationLikelihood
	wc.Caveats = g.caveats(s, best)
	wc.NextEvidenceNeeded = g.nextEvidence(s, best)
	return wc
}

func (g *ConclusionGenerator) caveats(s *State, best *Hypothesis) []string {
	var caveats []string
	if len(best.SupportingEvidenceIDs) < g.settings.ValidationEvidenceCount {
		caveats = append(caveats, "low supporting evidence")
	}
	if best.Likelihood < g.settings.ValidationLikelihood {
		caveats = append(caveats, "confidence below validation threshold")
	}
	if n := g.countAlternatives(s, best); n > 0 {
		caveats = append(caveats, fmt.Sprintf("%d alternative explanations not ruled out", n))
	}
	if best.IterationsWithoutProgress >= g.settings.AnchoringStalledIterations {
		caveats = append(caveats, "no recent progress")
	}
	return caveats
}

// countAlternatives counts other ACTIVE hypotheses that remain
// plausible.
func (g *ConclusionGenerator) countAlternatives(s *State, best *Hypothesis) int {
	n := 0
	for _, h := range s.ActiveHypotheses() {
		if h.ID != best.ID && h.Likelihood >= g.settings.RetirementLikelihood {
			n++
		}
	}
	return n
}

// nextEvidence names what evidence would advance the investigation.
// Always non-empty.
func (g *ConclusionGenerator) nextEvidence(s *State, best *Hypothesis) []string {
	var needs []string
	if len(best.SupportingEvidenceIDs) < g.settings.ValidationEvidenceCount {
		needs = append(needs, fmt.Sprintf("additional evidence confirming: %s", best.Statement))
	}
	if n := g.countAlternatives(s, best); n > 0 {
		needs = append(needs, fmt.Sprintf("evidence ruling out %d alternative explanations", n))
	}
	if best.Likelihood < g.settings.ValidationLikelihood {
		needs = append(needs, "a reproduction or correlated change confirming the suspected cause")
	}
	if len(needs) == 0 {
		needs = append(needs, "verification that the applied fix resolves the symptom")
	}
	return needs
}

// ProgressMetrics summarises investigation momentum for the progress
// API and prompt context.
type ProgressMetrics struct {
	EvidenceCount        int      `json:"evidence_count"`
	ActiveHypothesisCount int     `json:"active_hypothesis_count"`
	ValidatedHypothesisID string  `json:"validated_hypothesis_id,omitempty"`
	CompletionPercentage float64  `json:"completion_percentage"`
	Momentum             Momentum `json:"momentum"`
	Degraded             bool     `json:"degraded"`
}

// Metrics computes progress metrics. Momentum is derived from the
// progress ratio of the last three turns.
func (g *ConclusionGenerator) Metrics(s *State) ProgressMetrics {
	metrics := ProgressMetrics{
		EvidenceCount:        len(s.Evidence),
		ActiveHypothesisCount: len(s.ActiveHypotheses()),
		CompletionPercentage: s.Progress.CompletionPercentage(),
		Momentum:             g.momentum(s),
		Degraded:             s.Degraded != nil,
	}
	if v := g.hypotheses.GetValidated(s); v != nil {
		metrics.ValidatedHypothesisID = v.ID
	}
	return metrics
}

func (g *ConclusionGenerator) momentum(s *State) Momentum {
	history := s.TurnHistory
	if len(history) < 3 {
		return MomentumEarly
	}
	recent := history[len(history)-3:]
	progressed := 0
	for _, rec := range recent {
		if rec.ProgressMade {
			progressed++
		}
	}
	switch progressed {
	case 0:
		return MomentumStalled
	case 3:
		return MomentumAccelerating
	default:
		return MomentumSteady
	}
}
