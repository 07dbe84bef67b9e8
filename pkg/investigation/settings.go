package investigation

// Settings carries the tunable thresholds and budgets of the engine
// core. A Settings value is injected at construction; the core keeps no
// global state.
type Settings struct {
	// SupportingEvidenceStep is added to likelihood per supporting
	// evidence link.
	SupportingEvidenceStep float64
	// RefutingEvidenceStep is subtracted from likelihood per refuting
	// evidence link.
	RefutingEvidenceStep float64
	// ProgressDeltaThreshold is the minimum |likelihood delta| that
	// counts as progress (boundary inclusive).
	ProgressDeltaThreshold float64
	// DecayFactor is the per-stalled-iteration multiplier applied to
	// ACTIVE hypotheses once DecayAfterIterations is reached.
	DecayFactor          float64
	DecayAfterIterations int

	// ValidationLikelihood and ValidationEvidenceCount gate the
	// VALIDATED auto-transition.
	ValidationLikelihood    float64
	ValidationEvidenceCount int
	// RefutationLikelihood and RefutationEvidenceCount gate the REFUTED
	// auto-transition.
	RefutationLikelihood    float64
	RefutationEvidenceCount int
	// RetirementLikelihood is the floor below which a hypothesis is
	// RETIRED when it does not meet refutation criteria.
	RetirementLikelihood float64

	// Anchoring detection thresholds.
	AnchoringMinIteration      int
	AnchoringCategoryCount     int
	AnchoringStalledCount      int
	AnchoringStalledIterations int

	// Degraded-mode thresholds.
	DegradedTurnsWithoutProgress int
	DegradedBlockedEvidence      int

	// MaxLoopbacks is the number of backward phase transitions allowed
	// per investigation before degraded mode.
	MaxLoopbacks int

	// Memory tier capacities and compression cadence.
	MemoryHotCapacity      int
	MemoryWarmCapacity     int
	MemoryColdCapacity     int
	MemoryCompactEveryTurn int
	MemoryHotOverflow      int
}

// DefaultSettings returns the engine contract defaults. The thresholds
// here are load-bearing; tests pin them.
func DefaultSettings() Settings {
	return Settings{
		SupportingEvidenceStep: 0.15,
		RefutingEvidenceStep:   0.20,
		ProgressDeltaThreshold: 0.05,
		DecayFactor:            0.85,
		DecayAfterIterations:   2,

		ValidationLikelihood:    0.70,
		ValidationEvidenceCount: 2,
		RefutationLikelihood:    0.20,
		RefutationEvidenceCount: 2,
		RetirementLikelihood:    0.30,

		AnchoringMinIteration:      3,
		AnchoringCategoryCount:     4,
		AnchoringStalledCount:      2,
		AnchoringStalledIterations: 3,

		DegradedTurnsWithoutProgress: 3,
		DegradedBlockedEvidence:      3,

		MaxLoopbacks: 3,

		MemoryHotCapacity:      3,
		MemoryWarmCapacity:     5,
		MemoryColdCapacity:     10,
		MemoryCompactEveryTurn: 3,
		MemoryHotOverflow:      5,
	}
}
