package investigation

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
)

// HypothesisManager implements the evidence-weighted confidence math,
// automatic status transitions, and anchoring-bias detection. All
// operations are pure over the passed state except where documented.
type HypothesisManager struct {
	settings Settings
}

// NewHypothesisManager creates a manager with the given settings.
func NewHypothesisManager(settings Settings) *HypothesisManager {
	return &HypothesisManager{settings: settings}
}

// Capture appends a new hypothesis to the state and returns it. The
// hypothesis starts CAPTURED with the given initial likelihood.
func (m *HypothesisManager) Capture(s *State, statement string, category HypothesisCategory, likelihood float64, mode GenerationMode) *Hypothesis {
	likelihood = clamp01(likelihood)
	h := Hypothesis{
		ID:                uuid.New().String(),
		Statement:         statement,
		Category:          category,
		Status:            HypothesisCaptured,
		Likelihood:        likelihood,
		InitialLikelihood: likelihood,
		CapturedAtTurn:    s.CurrentTurn,
		GenerationMode:    mode,
		ConfidenceTrajectory: []TrajectoryPoint{
			{Turn: s.CurrentTurn, Likelihood: likelihood},
		},
	}
	s.Hypotheses = append(s.Hypotheses, h)
	return &s.Hypotheses[len(s.Hypotheses)-1]
}

// Activate moves a CAPTURED hypothesis to ACTIVE. Other statuses are
// left alone.
func (m *HypothesisManager) Activate(h *Hypothesis) {
	if h.Status == HypothesisCaptured {
		h.Status = HypothesisActive
	}
}

// LinkEvidence attaches evidence to a hypothesis as support or
// refutation and recomputes its confidence. Returns ErrNotFound when
// either id is unknown. Linking the same evidence twice is a no-op.
func (m *HypothesisManager) LinkEvidence(s *State, hypothesisID, evidenceID string, supports bool) error {
	h := s.HypothesisByID(hypothesisID)
	if h == nil {
		return fmt.Errorf("hypothesis %s: %w", hypothesisID, ErrNotFound)
	}
	ev := s.EvidenceByID(evidenceID)
	if ev == nil {
		return fmt.Errorf("evidence %s: %w", evidenceID, ErrNotFound)
	}
	if h.Status.Terminal() {
		return &InvariantViolationError{
			Detail: fmt.Sprintf("evidence link targets %s hypothesis %s", h.Status, h.ID),
		}
	}

	if supports {
		if contains(h.SupportingEvidenceIDs, evidenceID) {
			return nil
		}
		h.SupportingEvidenceIDs = append(h.SupportingEvidenceIDs, evidenceID)
		ev.SupportsHypothesisIDs = appendUnique(ev.SupportsHypothesisIDs, hypothesisID)
		m.applyDelta(s, h, m.settings.SupportingEvidenceStep)
	} else {
		if contains(h.RefutingEvidenceIDs, evidenceID) {
			return nil
		}
		h.RefutingEvidenceIDs = append(h.RefutingEvidenceIDs, evidenceID)
		ev.RefutesHypothesisIDs = appendUnique(ev.RefutesHypothesisIDs, hypothesisID)
		m.applyDelta(s, h, -m.settings.RefutingEvidenceStep)
	}

	m.autoTransition(s, h)
	return nil
}

// applyDelta adjusts likelihood, records the trajectory point, and
// updates the per-hypothesis progress counter.
func (m *HypothesisManager) applyDelta(s *State, h *Hypothesis, delta float64) {
	old := h.Likelihood
	h.Likelihood = clamp01(h.Likelihood + delta)
	h.ConfidenceTrajectory = append(h.ConfidenceTrajectory, TrajectoryPoint{
		Turn:       s.CurrentTurn,
		Likelihood: h.Likelihood,
	})

	if math.Abs(h.Likelihood-old) >= m.settings.ProgressDeltaThreshold {
		h.IterationsWithoutProgress = 0
		h.LastProgressAtTurn = s.CurrentTurn
	} else {
		h.IterationsWithoutProgress++
	}
}

// ApplyDecay applies confidence decay at a turn boundary to every
// ACTIVE hypothesis that has stalled for at least DecayAfterIterations.
func (m *HypothesisManager) ApplyDecay(s *State) {
	for i := range s.Hypotheses {
		h := &s.Hypotheses[i]
		if h.Status != HypothesisActive {
			continue
		}
		if h.IterationsWithoutProgress < m.settings.DecayAfterIterations {
			continue
		}
		h.Likelihood = clamp01(h.Likelihood * math.Pow(m.settings.DecayFactor, float64(h.IterationsWithoutProgress)))
		h.ConfidenceTrajectory = append(h.ConfidenceTrajectory, TrajectoryPoint{
			Turn:       s.CurrentTurn,
			Likelihood: h.Likelihood,
		})
		m.autoTransition(s, h)
	}
}

// autoTransition evaluates the status rules after every update. Only
// CAPTURED and ACTIVE hypotheses are eligible. REFUTED takes precedence
// over RETIRED when both could apply.
func (m *HypothesisManager) autoTransition(s *State, h *Hypothesis) {
	if h.Status != HypothesisCaptured && h.Status != HypothesisActive {
		return
	}
	switch {
	case h.Likelihood >= m.settings.ValidationLikelihood &&
		len(h.SupportingEvidenceIDs) >= m.settings.ValidationEvidenceCount:
		h.Status = HypothesisValidated
		h.ValidatedAtTurn = s.CurrentTurn
	case h.Likelihood <= m.settings.RefutationLikelihood &&
		len(h.RefutingEvidenceIDs) >= m.settings.RefutationEvidenceCount:
		h.Status = HypothesisRefuted
		h.ValidatedAtTurn = s.CurrentTurn
	case h.Likelihood < m.settings.RetirementLikelihood:
		h.Status = HypothesisRetired
	}
}

// AnchoringResult reports whether the hypothesis set shows an
// anchoring-bias pattern.
type AnchoringResult struct {
	Triggered   bool
	Reason      string
	AffectedIDs []string
}

// DetectAnchoring checks the ACTIVE hypothesis set for anchoring
// patterns. Requires the OODA iteration counter to have reached the
// configured minimum; earlier iterations never trigger.
func (m *HypothesisManager) DetectAnchoring(s *State) AnchoringResult {
	if s.OODA.CurrentIteration < m.settings.AnchoringMinIteration {
		return AnchoringResult{}
	}

	active := s.ActiveHypotheses()

	// Pattern 1: category pile-up.
	byCategory := make(map[HypothesisCategory][]*Hypothesis)
	for _, h := range active {
		byCategory[h.Category] = append(byCategory[h.Category], h)
	}
	for _, cat := range KnownCategories {
		group := byCategory[cat]
		if len(group) >= m.settings.AnchoringCategoryCount {
			ids := make([]string, len(group))
			for i, h := range group {
				ids[i] = h.ID
			}
			return AnchoringResult{
				Triggered:   true,
				Reason:      fmt.Sprintf("%d hypotheses in '%s' category", len(group), cat),
				AffectedIDs: ids,
			}
		}
	}

	// Pattern 2: multiple stalled hypotheses.
	var stalled []string
	for _, h := range active {
		if h.IterationsWithoutProgress >= m.settings.AnchoringStalledIterations {
			stalled = append(stalled, h.ID)
		}
	}
	if len(stalled) >= m.settings.AnchoringStalledCount {
		return AnchoringResult{
			Triggered:   true,
			Reason:      fmt.Sprintf("%d hypotheses without progress for %d+ iterations", len(stalled), m.settings.AnchoringStalledIterations),
			AffectedIDs: stalled,
		}
	}

	// Pattern 3: the front-runner is stuck below validation confidence.
	ranked := m.RankByLikelihood(active)
	if len(ranked) > 0 {
		top := ranked[0]
		if top.IterationsWithoutProgress >= m.settings.AnchoringStalledIterations &&
			top.Likelihood < m.settings.ValidationLikelihood {
			return AnchoringResult{
				Triggered:   true,
				Reason:      fmt.Sprintf("top hypothesis stalled at likelihood %.2f", top.Likelihood),
				AffectedIDs: []string{top.ID},
			}
		}
	}

	return AnchoringResult{}
}

// GenerationConstraints steer the prompt layer when anchoring forces
// alternative hypothesis generation.
type GenerationConstraints struct {
	ExcludeCategories       []HypothesisCategory `json:"exclude_categories,omitempty"`
	RequireDiverseCategories bool                `json:"require_diverse_categories"`
	MinNewHypotheses        int                  `json:"min_new_hypotheses"`
}

// ForceAlternatives retires stalled ACTIVE hypotheses in the dominant
// category and returns constraints for the prompt layer. Called when
// anchoring triggers.
func (m *HypothesisManager) ForceAlternatives(s *State) GenerationConstraints {
	active := s.ActiveHypotheses()

	counts := make(map[HypothesisCategory]int)
	var dominant HypothesisCategory
	for _, h := range active {
		counts[h.Category]++
		if counts[h.Category] > counts[dominant] {
			dominant = h.Category
		}
	}

	for _, h := range active {
		if h.Category == dominant && h.IterationsWithoutProgress >= m.settings.DecayAfterIterations {
			h.Status = HypothesisRetired
		}
	}

	constraints := GenerationConstraints{
		RequireDiverseCategories: true,
		MinNewHypotheses:        2,
	}
	if dominant != "" {
		constraints.ExcludeCategories = []HypothesisCategory{dominant}
	}
	return constraints
}

// RankByLikelihood returns the hypotheses sorted descending by
// likelihood. The input slice is not modified.
func (m *HypothesisManager) RankByLikelihood(hs []*Hypothesis) []*Hypothesis {
	out := make([]*Hypothesis, len(hs))
	copy(out, hs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Likelihood > out[j].Likelihood
	})
	return out
}

// GetTestable returns up to max ACTIVE hypotheses with likelihood above
// the refutation floor, best first.
func (m *HypothesisManager) GetTestable(s *State, max int) []*Hypothesis {
	var candidates []*Hypothesis
	for i := range s.Hypotheses {
		h := &s.Hypotheses[i]
		if h.Status == HypothesisActive && h.Likelihood > m.settings.RefutationLikelihood {
			candidates = append(candidates, h)
		}
	}
	ranked := m.RankByLikelihood(candidates)
	if max > 0 && len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}

// GetValidated returns the highest-likelihood VALIDATED hypothesis, or
// nil when none exists.
func (m *HypothesisManager) GetValidated(s *State) *Hypothesis {
	var best *Hypothesis
	for i := range s.Hypotheses {
		h := &s.Hypotheses[i]
		if h.Status != HypothesisValidated {
			continue
		}
		if best == nil || h.Likelihood > best.Likelihood {
			best = h
		}
	}
	return best
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func contains(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func appendUnique(xs []string, v string) []string {
	if contains(xs, v) {
		return xs
	}
	return append(xs, v)
}
