package config

import "github.com/caseops/inquest/pkg/investigation"

// EngineConfig carries optional overrides for the investigation engine
// thresholds. Pointer fields distinguish "unset" from an explicit zero;
// unset fields keep the engine defaults.
type EngineConfig struct {
	SupportingEvidenceStep *float64 `yaml:"supporting_evidence_step"`
	RefutingEvidenceStep   *float64 `yaml:"refuting_evidence_step"`
	ValidationLikelihood   *float64 `yaml:"validation_likelihood"`
	RetirementLikelihood   *float64 `yaml:"retirement_likelihood"`

	MaxLoopbacks *int `yaml:"max_loopbacks"`

	DegradedTurnsWithoutProgress *int `yaml:"degraded_turns_without_progress"`
	DegradedBlockedEvidence      *int `yaml:"degraded_blocked_evidence"`

	MemoryHotCapacity  *int `yaml:"memory_hot_capacity"`
	MemoryWarmCapacity *int `yaml:"memory_warm_capacity"`
	MemoryColdCapacity *int `yaml:"memory_cold_capacity"`
}

// Settings returns the engine defaults with the configured overrides
// applied.
func (e *EngineConfig) Settings() investigation.Settings {
	s := investigation.DefaultSettings()
	if e == nil {
		return s
	}
	if e.SupportingEvidenceStep != nil {
		s.SupportingEvidenceStep = *e.SupportingEvidenceStep
	}
	if e.RefutingEvidenceStep != nil {
		s.RefutingEvidenceStep = *e.RefutingEvidenceStep
	}
	if e.ValidationLikelihood != nil {
		s.ValidationLikelihood = *e.ValidationLikelihood
	}
	if e.RetirementLikelihood != nil {
		s.RetirementLikelihood = *e.RetirementLikelihood
	}
	if e.MaxLoopbacks != nil {
		s.MaxLoopbacks = *e.MaxLoopbacks
	}
	if e.DegradedTurnsWithoutProgress != nil {
		s.DegradedTurnsWithoutProgress = *e.DegradedTurnsWithoutProgress
	}
	if e.DegradedBlockedEvidence != nil {
		s.DegradedBlockedEvidence = *e.DegradedBlockedEvidence
	}
	if e.MemoryHotCapacity != nil {
		s.MemoryHotCapacity = *e.MemoryHotCapacity
	}
	if e.MemoryWarmCapacity != nil {
		s.MemoryWarmCapacity = *e.MemoryWarmCapacity
	}
	if e.MemoryColdCapacity != nil {
		s.MemoryColdCapacity = *e.MemoryColdCapacity
	}
	return s
}
