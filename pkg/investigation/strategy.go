package investigation

import (
	"time"

	"github.com/google/uuid"
)

// ResolveStrategy applies the strategy matrix: a live incident at high
// urgency mitigates first; a cold trail at low urgency goes straight
// for the root cause; every other cell is the user's call.
func ResolveStrategy(temporal TemporalState, urgency UrgencyLevel) Strategy {
	switch temporal {
	case TemporalOngoing:
		if urgency == UrgencyCritical || urgency == UrgencyHigh {
			return StrategyMitigationFirst
		}
	case TemporalHistorical:
		if urgency == UrgencyLow || urgency == UrgencyMedium {
			return StrategyRootCause
		}
	}
	return StrategyUserChoice
}

// SeedState builds the initial investigation state from consulting
// data. The problem statement, when present, becomes the anomaly frame.
func SeedState(cd *ConsultingData, temporal TemporalState, urgency UrgencyLevel, strategy Strategy, now time.Time) *State {
	if cd == nil {
		cd = &ConsultingData{}
	}
	s := &State{
		InvestigationID: uuid.New().String(),
		CurrentPhase:    PhaseIntake,
		StartedAt:       now,
		TemporalState:   temporal,
		UrgencyLevel:    urgency,
		Strategy:        strategy,
		ConsultingData:  cd,
	}
	if cd.ProblemStatement != "" {
		s.AnomalyFrame.ProblemStatement = cd.ProblemStatement
	}
	return s
}
