// Package investigation contains the pure core of the investigation
// engine: the state document, hypothesis arithmetic, OODA budgets,
// memory tiering, and phase/status rules. Nothing in this package
// performs I/O; all state comes in and out through parameters.
package investigation

import (
	"encoding/json"
	"fmt"
)

// Phase is a coarse-grained investigation stage. Phases advance
// linearly except where the phase orchestrator loops back.
type Phase int

// Investigation phases in execution order.
const (
	PhaseIntake Phase = iota
	PhaseBlastRadius
	PhaseTimeline
	PhaseHypothesis
	PhaseValidation
	PhaseSolution
	PhaseDocument
)

var phaseNames = map[Phase]string{
	PhaseIntake:      "intake",
	PhaseBlastRadius: "blast_radius",
	PhaseTimeline:    "timeline",
	PhaseHypothesis:  "hypothesis",
	PhaseValidation:  "validation",
	PhaseSolution:    "solution",
	PhaseDocument:    "document",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether p is a defined phase.
func (p Phase) Valid() bool {
	_, ok := phaseNames[p]
	return ok
}

// Next returns the phase after p in linear order. DOCUMENT has no
// successor and returns itself.
func (p Phase) Next() Phase {
	if p >= PhaseDocument {
		return PhaseDocument
	}
	return p + 1
}

// ParsePhase resolves a phase by name.
func ParsePhase(name string) (Phase, bool) {
	for p, n := range phaseNames {
		if n == name {
			return p, true
		}
	}
	return PhaseIntake, false
}

// MarshalJSON encodes the phase by name so persisted state stays
// readable and stable across reorderings of the constants.
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a phase name.
func (p *Phase) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, ok := ParsePhase(name)
	if !ok {
		return fmt.Errorf("unknown phase %q", name)
	}
	*p = parsed
	return nil
}

// HypothesisStatus is the lifecycle state of a hypothesis.
type HypothesisStatus string

// Hypothesis lifecycle states.
const (
	HypothesisCaptured   HypothesisStatus = "captured"
	HypothesisActive     HypothesisStatus = "active"
	HypothesisValidated  HypothesisStatus = "validated"
	HypothesisRefuted    HypothesisStatus = "refuted"
	HypothesisRetired    HypothesisStatus = "retired"
	HypothesisSuperseded HypothesisStatus = "superseded"
)

// Terminal reports whether the status admits no further automatic
// transitions.
func (s HypothesisStatus) Terminal() bool {
	switch s {
	case HypothesisValidated, HypothesisRefuted, HypothesisRetired, HypothesisSuperseded:
		return true
	}
	return false
}

// HypothesisCategory classifies the suspected fault domain.
type HypothesisCategory string

// Hypothesis categories.
const (
	CategoryInfrastructure     HypothesisCategory = "infrastructure"
	CategoryCode               HypothesisCategory = "code"
	CategoryConfiguration      HypothesisCategory = "configuration"
	CategoryData               HypothesisCategory = "data"
	CategoryExternalDependency HypothesisCategory = "external_dependency"
	CategoryHumanError         HypothesisCategory = "human_error"
	CategoryNetwork            HypothesisCategory = "network"
	CategoryPerformance        HypothesisCategory = "performance"
)

// KnownCategories lists every defined hypothesis category.
var KnownCategories = []HypothesisCategory{
	CategoryInfrastructure,
	CategoryCode,
	CategoryConfiguration,
	CategoryData,
	CategoryExternalDependency,
	CategoryHumanError,
	CategoryNetwork,
	CategoryPerformance,
}

// GenerationMode records how a hypothesis was produced.
type GenerationMode string

// Hypothesis generation modes.
const (
	GenerationOpportunistic GenerationMode = "opportunistic"
	GenerationSystematic    GenerationMode = "systematic"
)

// EvidenceCategory classifies what a piece of evidence speaks to.
type EvidenceCategory string

// Evidence categories.
const (
	EvidenceSymptom    EvidenceCategory = "symptom"
	EvidenceCausal     EvidenceCategory = "causal"
	EvidenceResolution EvidenceCategory = "resolution"
	EvidenceOther      EvidenceCategory = "other"
)

// ConfidenceLevel is a named band over the [0,1] likelihood scale.
type ConfidenceLevel string

// Confidence bands.
const (
	ConfidenceSpeculation ConfidenceLevel = "speculation"
	ConfidencePossible    ConfidenceLevel = "possible"
	ConfidenceModerate    ConfidenceLevel = "moderate"
	ConfidenceLikely      ConfidenceLevel = "likely"
	ConfidenceCertain     ConfidenceLevel = "certain"
)

// Band thresholds. These are part of the engine contract; changing them
// changes auto-transition behavior everywhere.
const (
	ThresholdPossible = 0.30
	ThresholdModerate = 0.50
	ThresholdLikely   = 0.70
	ThresholdCertain  = 0.85
)

// ConfidenceLevelFor maps a likelihood to its named band.
func ConfidenceLevelFor(likelihood float64) ConfidenceLevel {
	switch {
	case likelihood >= ThresholdCertain:
		return ConfidenceCertain
	case likelihood >= ThresholdLikely:
		return ConfidenceLikely
	case likelihood >= ThresholdModerate:
		return ConfidenceModerate
	case likelihood >= ThresholdPossible:
		return ConfidencePossible
	default:
		return ConfidenceSpeculation
	}
}

// TurnOutcome tags what a processed turn accomplished.
type TurnOutcome string

// Turn outcomes.
const (
	OutcomeProgress            TurnOutcome = "progress"
	OutcomeEvidenceCollected   TurnOutcome = "evidence_collected"
	OutcomeHypothesisValidated TurnOutcome = "hypothesis_validated"
	OutcomeHypothesisRefuted   TurnOutcome = "hypothesis_refuted"
	OutcomeConversation        TurnOutcome = "conversation"
	OutcomeBlocked             TurnOutcome = "blocked"
)

// PhaseOutcome is what a phase-transition request signals.
type PhaseOutcome string

// Phase outcomes consumed by the phase orchestrator.
const (
	PhaseCompleted         PhaseOutcome = "completed"
	PhaseHypothesisRefuted PhaseOutcome = "hypothesis_refuted"
	PhaseScopeChanged      PhaseOutcome = "scope_changed"
	PhaseTimelineWrong     PhaseOutcome = "timeline_wrong"
	PhaseNeedMoreData      PhaseOutcome = "need_more_data"
	PhaseStalled           PhaseOutcome = "stalled"
	PhaseEscalationNeeded  PhaseOutcome = "escalation_needed"
)

// DegradedModeType names why the engine declared itself stuck.
type DegradedModeType string

// Degraded-mode trigger types.
const (
	DegradedNoProgress      DegradedModeType = "no_progress"
	DegradedHypothesesDead  DegradedModeType = "hypotheses_exhausted"
	DegradedEvidenceBlocked DegradedModeType = "evidence_blocked"
	DegradedLoopbackLimit   DegradedModeType = "loopback_limit"
)

// TemporalState distinguishes a live incident from a historical one.
type TemporalState string

// Temporal states.
const (
	TemporalOngoing    TemporalState = "ongoing"
	TemporalHistorical TemporalState = "historical"
)

// UrgencyLevel is the user-declared urgency of the incident.
type UrgencyLevel string

// Urgency levels.
const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

// Strategy is the investigation strategy derived from temporal state
// and urgency.
type Strategy string

// Investigation strategies.
const (
	StrategyMitigationFirst Strategy = "mitigation_first"
	StrategyRootCause       Strategy = "root_cause"
	StrategyUserChoice      Strategy = "user_choice"
)

// OODAStep is a fine-grained within-phase step.
type OODAStep string

// OODA steps.
const (
	OODAObserve OODAStep = "observe"
	OODAOrient  OODAStep = "orient"
	OODADecide  OODAStep = "decide"
	OODAAct     OODAStep = "act"
)

// Intensity controls how much iteration effort a phase gets.
type Intensity string

// Iteration intensities.
const (
	IntensityNone   Intensity = "none"
	IntensityLight  Intensity = "light"
	IntensityMedium Intensity = "medium"
	IntensityFull   Intensity = "full"
)

// MemoryTier is the retention tier of a memory snapshot.
type MemoryTier string

// Memory tiers.
const (
	TierHot  MemoryTier = "hot"
	TierWarm MemoryTier = "warm"
	TierCold MemoryTier = "cold"
)

// Momentum summarises recent progress velocity.
type Momentum string

// Momentum values.
const (
	MomentumEarly        Momentum = "early"
	MomentumSteady       Momentum = "steady"
	MomentumAccelerating Momentum = "accelerating"
	MomentumStalled      Momentum = "stalled"
)
