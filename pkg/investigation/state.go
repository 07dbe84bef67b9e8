package investigation

import (
	"encoding/json"
	"fmt"
	"time"
)

// Hypothesis is a candidate root cause with evidence-weighted
// confidence. Evidence links are id references only; lookups go through
// the state document.
type Hypothesis struct {
	ID         string             `json:"id"`
	Statement  string             `json:"statement"`
	Category   HypothesisCategory `json:"category"`
	Status     HypothesisStatus   `json:"status"`
	Likelihood float64            `json:"likelihood"`
	// InitialLikelihood is the likelihood at capture time, kept for
	// anchoring analysis.
	InitialLikelihood     float64           `json:"initial_likelihood"`
	ConfidenceTrajectory  []TrajectoryPoint `json:"confidence_trajectory,omitempty"`
	SupportingEvidenceIDs []string          `json:"supporting_evidence_ids,omitempty"`
	RefutingEvidenceIDs   []string          `json:"refuting_evidence_ids,omitempty"`
	CapturedAtTurn        int               `json:"captured_at_turn"`
	ValidatedAtTurn       int               `json:"validated_at_turn,omitempty"`
	LastProgressAtTurn    int               `json:"last_progress_at_turn,omitempty"`
	// IterationsWithoutProgress drives confidence decay and anchoring
	// detection. Distinct from the state-level TurnsWithoutProgress,
	// which drives degraded-mode detection.
	IterationsWithoutProgress int            `json:"iterations_without_progress"`
	GenerationMode            GenerationMode `json:"generation_mode,omitempty"`
}

// TrajectoryPoint records the likelihood observed at a given turn.
type TrajectoryPoint struct {
	Turn       int     `json:"turn"`
	Likelihood float64 `json:"likelihood"`
}

// Evidence is a datum linked to zero or more hypotheses as support or
// refutation.
type Evidence struct {
	ID                   string           `json:"id"`
	Description          string           `json:"description"`
	Category             EvidenceCategory `json:"category"`
	Form                 string           `json:"form,omitempty"`
	SourceType           string           `json:"source_type,omitempty"`
	ContentSummary       string           `json:"content_summary,omitempty"`
	CollectedAtTurn      int              `json:"collected_at_turn"`
	SupportsHypothesisIDs []string        `json:"supports_hypothesis_ids,omitempty"`
	RefutesHypothesisIDs  []string        `json:"refutes_hypothesis_ids,omitempty"`
}

// Milestone names the eight boolean progress markers.
type Milestone string

// Investigation milestones in rough completion order.
const (
	MilestoneSymptomVerified     Milestone = "symptom_verified"
	MilestoneScopeAssessed       Milestone = "scope_assessed"
	MilestoneTimelineEstablished Milestone = "timeline_established"
	MilestoneChangesIdentified   Milestone = "changes_identified"
	MilestoneRootCauseIdentified Milestone = "root_cause_identified"
	MilestoneSolutionProposed    Milestone = "solution_proposed"
	MilestoneSolutionApplied     Milestone = "solution_applied"
	MilestoneSolutionVerified    Milestone = "solution_verified"
)

// AllMilestones lists every milestone in order.
var AllMilestones = []Milestone{
	MilestoneSymptomVerified,
	MilestoneScopeAssessed,
	MilestoneTimelineEstablished,
	MilestoneChangesIdentified,
	MilestoneRootCauseIdentified,
	MilestoneSolutionProposed,
	MilestoneSolutionApplied,
	MilestoneSolutionVerified,
}

// Progress tracks milestone completion for an investigation.
type Progress struct {
	SymptomVerified     bool `json:"symptom_verified"`
	ScopeAssessed       bool `json:"scope_assessed"`
	TimelineEstablished bool `json:"timeline_established"`
	ChangesIdentified   bool `json:"changes_identified"`
	RootCauseIdentified bool `json:"root_cause_identified"`
	SolutionProposed    bool `json:"solution_proposed"`
	SolutionApplied     bool `json:"solution_applied"`
	SolutionVerified    bool `json:"solution_verified"`

	CompletedAt        map[string]time.Time `json:"completed_at,omitempty"`
	RootCauseConfidence float64             `json:"root_cause_confidence,omitempty"`
}

// Done reports whether the named milestone is complete.
func (p *Progress) Done(m Milestone) bool {
	switch m {
	case MilestoneSymptomVerified:
		return p.SymptomVerified
	case MilestoneScopeAssessed:
		return p.ScopeAssessed
	case MilestoneTimelineEstablished:
		return p.TimelineEstablished
	case MilestoneChangesIdentified:
		return p.ChangesIdentified
	case MilestoneRootCauseIdentified:
		return p.RootCauseIdentified
	case MilestoneSolutionProposed:
		return p.SolutionProposed
	case MilestoneSolutionApplied:
		return p.SolutionApplied
	case MilestoneSolutionVerified:
		return p.SolutionVerified
	}
	return false
}

// Complete marks the named milestone as complete. Idempotent: marking
// an already-complete milestone changes nothing. Returns false for an
// unknown milestone.
func (p *Progress) Complete(m Milestone, at time.Time) bool {
	if p.Done(m) {
		return true
	}
	switch m {
	case MilestoneSymptomVerified:
		p.SymptomVerified = true
	case MilestoneScopeAssessed:
		p.ScopeAssessed = true
	case MilestoneTimelineEstablished:
		p.TimelineEstablished = true
	case MilestoneChangesIdentified:
		p.ChangesIdentified = true
	case MilestoneRootCauseIdentified:
		p.RootCauseIdentified = true
	case MilestoneSolutionProposed:
		p.SolutionProposed = true
	case MilestoneSolutionApplied:
		p.SolutionApplied = true
	case MilestoneSolutionVerified:
		p.SolutionVerified = true
	default:
		return false
	}
	if p.CompletedAt == nil {
		p.CompletedAt = make(map[string]time.Time)
	}
	p.CompletedAt[string(m)] = at
	return true
}

// CompletionPercentage returns completed/total as a percentage in
// [0,100].
func (p *Progress) CompletionPercentage() float64 {
	completed := 0
	for _, m := range AllMilestones {
		if p.Done(m) {
			completed++
		}
	}
	return float64(completed) / float64(len(AllMilestones)) * 100
}

// AnomalyFrame is the structured problem statement.
type AnomalyFrame struct {
	ProblemStatement   string   `json:"problem_statement"`
	AffectedComponents []string `json:"affected_components,omitempty"`
	Scope              string   `json:"scope,omitempty"`
	Severity           string   `json:"severity,omitempty"`
	Confidence         float64  `json:"confidence,omitempty"`
}

// TemporalFrame captures when the incident was noticed versus when it
// actually started, and correlated changes.
type TemporalFrame struct {
	FirstNoticedAt    *time.Time `json:"first_noticed_at,omitempty"`
	ActuallyStartedAt *time.Time `json:"actually_started_at,omitempty"`
	RecentChanges     []string   `json:"recent_changes,omitempty"`
	ChangeCorrelation string     `json:"change_correlation,omitempty"`
}

// WorkingConclusion is the engine's current best narrative answer,
// regardless of certainty.
type WorkingConclusion struct {
	Statement              string          `json:"statement"`
	Confidence             float64         `json:"confidence"`
	ConfidenceLevel        ConfidenceLevel `json:"confidence_level"`
	CanProceedWithSolution bool            `json:"can_proceed_with_solution"`
	Caveats                []string        `json:"caveats,omitempty"`
	NextEvidenceNeeded     []string        `json:"next_evidence_needed,omitempty"`
	UpdatedAtTurn          int             `json:"updated_at_turn"`
}

// OODAState tracks the fine-grained within-phase iteration loop.
type OODAState struct {
	CurrentStep      OODAStep  `json:"current_step"`
	CurrentIteration int       `json:"current_iteration"`
	Intensity        Intensity `json:"intensity"`
}

// MemorySnapshot is a tiered summary of a slice of turn history.
type MemorySnapshot struct {
	SnapshotID      string     `json:"snapshot_id"`
	TurnRange       [2]int     `json:"turn_range"`
	Tier            MemoryTier `json:"tier"`
	ContentSummary  string     `json:"content_summary"`
	KeyInsights     []string   `json:"key_insights,omitempty"`
	EvidenceIDs     []string   `json:"evidence_ids,omitempty"`
	HypothesisIDs   []string   `json:"hypothesis_ids,omitempty"`
	ConfidenceDelta float64    `json:"confidence_delta,omitempty"`
	TokenEstimate   int        `json:"token_estimate,omitempty"`
}

// Memory holds the three retention tiers.
type Memory struct {
	Hot  []MemorySnapshot `json:"hot,omitempty"`
	Warm []MemorySnapshot `json:"warm,omitempty"`
	Cold []MemorySnapshot `json:"cold,omitempty"`
	// LastCompactedTurn records when compression last ran, so the
	// every-N-turns trigger is deterministic.
	LastCompactedTurn int `json:"last_compacted_turn,omitempty"`
}

// TurnRecord is one entry in the immutable turn log.
type TurnRecord struct {
	TurnNumber         int         `json:"turn_number"`
	Phase              Phase       `json:"phase"`
	UserInputSummary   string      `json:"user_input_summary,omitempty"`
	AgentActionSummary string      `json:"agent_action_summary,omitempty"`
	MilestonesCompleted []Milestone `json:"milestones_completed,omitempty"`
	HypothesesUpdated  []string    `json:"hypotheses_updated,omitempty"`
	EvidenceCollected  []string    `json:"evidence_collected,omitempty"`
	Outcome            TurnOutcome `json:"outcome"`
	ProgressMade       bool        `json:"progress_made"`
	RecordedAt         time.Time   `json:"recorded_at"`
}

// ConsultingData is the pre-investigation framing captured while the
// case is still in consulting status.
type ConsultingData struct {
	ProblemStatement string        `json:"problem_statement,omitempty"`
	QuickWins        []string      `json:"quick_wins,omitempty"`
	TemporalState    TemporalState `json:"temporal_state,omitempty"`
	UrgencyLevel     UrgencyLevel  `json:"urgency_level,omitempty"`
}

// DegradedMode records why the engine declared itself stuck.
type DegradedMode struct {
	Type             DegradedModeType `json:"type"`
	Reason           string           `json:"reason"`
	EnteredAtTurn    int              `json:"entered_at_turn"`
	UserAcknowledged bool             `json:"user_acknowledged"`
}

// Loopbacks tracks backward phase transitions.
type Loopbacks struct {
	Count   int              `json:"count"`
	History []LoopbackRecord `json:"history,omitempty"`
}

// LoopbackRecord is one backward phase transition.
type LoopbackRecord struct {
	AtTurn int          `json:"at_turn"`
	From   Phase        `json:"from"`
	To     Phase        `json:"to"`
	Reason PhaseOutcome `json:"reason"`
}

// State is the engine's working document, serialised into
// case.metadata.investigation. Unknown fields present in persisted JSON
// are preserved on round-trip so rolling upgrades do not truncate
// state.
type State struct {
	InvestigationID string    `json:"investigation_id"`
	CurrentPhase    Phase     `json:"current_phase"`
	CurrentTurn     int       `json:"current_turn"`
	StartedAt       time.Time `json:"started_at"`

	TemporalState TemporalState `json:"temporal_state,omitempty"`
	UrgencyLevel  UrgencyLevel  `json:"urgency_level,omitempty"`
	Strategy      Strategy      `json:"strategy,omitempty"`

	AnomalyFrame  AnomalyFrame  `json:"anomaly_frame"`
	TemporalFrame TemporalFrame `json:"temporal_frame"`

	Hypotheses []Hypothesis `json:"hypotheses,omitempty"`
	Evidence   []Evidence   `json:"evidence,omitempty"`

	Progress          Progress           `json:"progress"`
	WorkingConclusion *WorkingConclusion `json:"working_conclusion,omitempty"`
	OODA              OODAState          `json:"ooda_state"`
	Memory            Memory             `json:"memory"`

	ConsultingData *ConsultingData `json:"consulting_data,omitempty"`
	Degraded       *DegradedMode   `json:"degraded_mode,omitempty"`

	TurnHistory []TurnRecord `json:"turn_history,omitempty"`
	Loopbacks   Loopbacks    `json:"phase_loopbacks"`

	// TurnsWithoutProgress is the state-level stall counter consumed by
	// degraded-mode detection.
	TurnsWithoutProgress int `json:"turns_without_progress"`
	// BlockedEvidenceCount counts evidence requests the user could not
	// satisfy; three or more triggers degraded mode.
	BlockedEvidenceCount int `json:"blocked_evidence_count,omitempty"`

	// extra holds unknown top-level JSON fields for forward
	// compatibility.
	extra map[string]json.RawMessage
}

// stateAlias avoids marshal recursion.
type stateAlias State

var knownStateFields = map[string]bool{
	"investigation_id": true, "current_phase": true, "current_turn": true,
	"started_at": true, "temporal_state": true, "urgency_level": true,
	"strategy": true, "anomaly_frame": true, "temporal_frame": true,
	"hypotheses": true, "evidence": true, "progress": true,
	"working_conclusion": true, "ooda_state": true, "memory": true,
	"consulting_data": true, "degraded_mode": true, "turn_history": true,
	"phase_loopbacks": true, "turns_without_progress": true,
	"blocked_evidence_count": true,
}

// UnmarshalJSON decodes the document and stashes unknown fields.
func (s *State) UnmarshalJSON(data []byte) error {
	var alias stateAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k := range raw {
		if knownStateFields[k] {
			delete(raw, k)
		}
	}
	*s = State(alias)
	if len(raw) > 0 {
		s.extra = raw
	}
	return nil
}

// MarshalJSON encodes the document, merging back any unknown fields
// captured at decode time.
func (s State) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(stateAlias(s))
	if err != nil {
		return nil, err
	}
	if len(s.extra) == 0 {
		return data, nil
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range s.extra {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// HypothesisByID returns a pointer into the state's hypothesis slice,
// or nil if the id is unknown.
func (s *State) HypothesisByID(id string) *Hypothesis {
	for i := range s.Hypotheses {
		if s.Hypotheses[i].ID == id {
			return &s.Hypotheses[i]
		}
	}
	return nil
}

// EvidenceByID returns a pointer into the state's evidence slice, or
// nil if the id is unknown.
func (s *State) EvidenceByID(id string) *Evidence {
	for i := range s.Evidence {
		if s.Evidence[i].ID == id {
			return &s.Evidence[i]
		}
	}
	return nil
}

// ActiveHypotheses returns hypotheses in CAPTURED or ACTIVE status, in
// document order.
func (s *State) ActiveHypotheses() []*Hypothesis {
	var out []*Hypothesis
	for i := range s.Hypotheses {
		switch s.Hypotheses[i].Status {
		case HypothesisCaptured, HypothesisActive:
			out = append(out, &s.Hypotheses[i])
		}
	}
	return out
}

// ValidateTurnLog checks that turn numbers form the contiguous
// sequence 1..N. A violation is a programming error.
func (s *State) ValidateTurnLog() error {
	for i, rec := range s.TurnHistory {
		if rec.TurnNumber != i+1 {
			return &InvariantViolationError{
				Detail: fmt.Sprintf("turn log entry %d has turn_number %d", i, rec.TurnNumber),
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the state via JSON round-trip. Used by
// the engine to mutate an in-memory copy and persist atomically at
// end-of-turn.
func (s *State) Clone() (*State, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state for clone: %w", err)
	}
	var out State
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state clone: %w", err)
	}
	return &out, nil
}
