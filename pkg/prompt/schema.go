package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TurnReply is the structured payload the model returns on
// investigating-status turns. Reply is always shown to the user;
// Analysis carries the state updates the engine applies.
type TurnReply struct {
	Reply    string           `json:"reply"`
	Analysis *AnalysisUpdates `json:"analysis,omitempty"`
}

// AnalysisUpdates is the machine-readable half of a turn reply.
type AnalysisUpdates struct {
	NewHypotheses       []HypothesisInput  `json:"new_hypotheses,omitempty"`
	NewEvidence         []EvidenceInput    `json:"new_evidence,omitempty"`
	EvidenceLinks       []EvidenceLink     `json:"evidence_links,omitempty"`
	MilestonesCompleted []string           `json:"milestones_completed,omitempty"`
	PhaseOutcome        string             `json:"phase_outcome,omitempty"`
	PhaseOutcomeReason  string             `json:"phase_outcome_reason,omitempty"`
	EvidenceBlocked     bool               `json:"evidence_blocked,omitempty"`
	ActionSummary       string             `json:"action_summary,omitempty"`
	AnomalyFrame        *AnomalyFrameInput `json:"anomaly_frame,omitempty"`
	TimelineUpdate      *TimelineInput     `json:"timeline_update,omitempty"`
}

// HypothesisInput proposes a new hypothesis.
type HypothesisInput struct {
	Statement         string  `json:"statement"`
	Category          string  `json:"category"`
	InitialLikelihood float64 `json:"initial_likelihood"`
}

// EvidenceInput records a new piece of evidence from the turn.
type EvidenceInput struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Summary     string `json:"summary,omitempty"`
}

// EvidenceLink connects evidence to a hypothesis. EvidenceRef is either
// an existing evidence id or the zero-based index of an entry in
// NewEvidence prefixed with "new:".
type EvidenceLink struct {
	EvidenceRef  string `json:"evidence_ref"`
	HypothesisID string `json:"hypothesis_id"`
	Supports     bool   `json:"supports"`
}

// AnomalyFrameInput refines the structured problem statement.
type AnomalyFrameInput struct {
	ProblemStatement   string   `json:"problem_statement,omitempty"`
	AffectedComponents []string `json:"affected_components,omitempty"`
	Scope              string   `json:"scope,omitempty"`
	Severity           string   `json:"severity,omitempty"`
}

// TimelineInput refines the temporal frame.
type TimelineInput struct {
	ActuallyStartedAt string   `json:"actually_started_at,omitempty"`
	RecentChanges     []string `json:"recent_changes,omitempty"`
	ChangeCorrelation string   `json:"change_correlation,omitempty"`
}

// ConsultingReply is the structured payload for consulting-status
// turns.
type ConsultingReply struct {
	Reply                string   `json:"reply"`
	ProblemStatement     string   `json:"problem_statement,omitempty"`
	QuickWins            []string `json:"quick_wins,omitempty"`
	TemporalState        string   `json:"temporal_state,omitempty"`
	UrgencyLevel         string   `json:"urgency_level,omitempty"`
	ReadyToInvestigate   bool     `json:"ready_to_investigate"`
}

// turnReplySchema constrains investigating-turn output. The sidecar
// enforces it when the provider supports structured output.
const turnReplySchema = `{
  "type": "object",
  "required": ["reply"],
  "properties": {
    "reply": {"type": "string"},
    "analysis": {
      "type": "object",
      "properties": {
        "new_hypotheses": {"type": "array", "items": {"type": "object", "required": ["statement", "category", "initial_likelihood"], "properties": {"statement": {"type": "string"}, "category": {"type": "string"}, "initial_likelihood": {"type": "number", "minimum": 0, "maximum": 1}}}},
        "new_evidence": {"type": "array", "items": {"type": "object", "required": ["description", "category"], "properties": {"description": {"type": "string"}, "category": {"type": "string"}, "summary": {"type": "string"}}}},
        "evidence_links": {"type": "array", "items": {"type": "object", "required": ["evidence_ref", "hypothesis_id", "supports"], "properties": {"evidence_ref": {"type": "string"}, "hypothesis_id": {"type": "string"}, "supports": {"type": "boolean"}}}},
        "milestones_completed": {"type": "array", "items": {"type": "string"}},
        "phase_outcome": {"type": "string"},
        "phase_outcome_reason": {"type": "string"},
        "evidence_blocked": {"type": "boolean"},
        "action_summary": {"type": "string"},
        "anomaly_frame": {"type": "object"},
        "timeline_update": {"type": "object"}
      }
    }
  }
}`

// consultingReplySchema constrains consulting-turn output.
const consultingReplySchema = `{
  "type": "object",
  "required": ["reply"],
  "properties": {
    "reply": {"type": "string"},
    "problem_statement": {"type": "string"},
    "quick_wins": {"type": "array", "items": {"type": "string"}},
    "temporal_state": {"type": "string", "enum": ["ongoing", "historical"]},
    "urgency_level": {"type": "string", "enum": ["low", "medium", "high", "critical"]},
    "ready_to_investigate": {"type": "boolean"}
  }
}`

// TurnReplySchema returns the JSON schema for investigating turns.
func TurnReplySchema() string { return turnReplySchema }

// ConsultingReplySchema returns the JSON schema for consulting turns.
func ConsultingReplySchema() string { return consultingReplySchema }

// ParseTurnReply decodes a model reply, tolerating code fences and
// surrounding prose. Falls back to treating the whole content as the
// user-visible reply when no JSON object can be decoded.
func ParseTurnReply(content string) (*TurnReply, error) {
	payload := extractJSON(content)
	if payload == "" {
		return &TurnReply{Reply: strings.TrimSpace(content)}, nil
	}
	var reply TurnReply
	if err := json.Unmarshal([]byte(payload), &reply); err != nil {
		return &TurnReply{Reply: strings.TrimSpace(content)}, nil
	}
	if reply.Reply == "" {
		return nil, fmt.Errorf("turn reply missing 'reply' field")
	}
	return &reply, nil
}

// ParseConsultingReply decodes a consulting-mode reply with the same
// tolerance rules as ParseTurnReply.
func ParseConsultingReply(content string) (*ConsultingReply, error) {
	payload := extractJSON(content)
	if payload == "" {
		return &ConsultingReply{Reply: strings.TrimSpace(content)}, nil
	}
	var reply ConsultingReply
	if err := json.Unmarshal([]byte(payload), &reply); err != nil {
		return &ConsultingReply{Reply: strings.TrimSpace(content)}, nil
	}
	if reply.Reply == "" {
		return nil, fmt.Errorf("consulting reply missing 'reply' field")
	}
	return &reply, nil
}

// extractJSON pulls the outermost JSON object out of content, handling
// markdown code fences.
func extractJSON(content string) string {
	s := strings.TrimSpace(content)
	if idx := strings.Index(s, "```"); idx >= 0 {
		rest := s[idx+3:]
		rest = strings.TrimPrefix(rest, "json")
		if end := strings.Index(rest, "```"); end >= 0 {
			s = strings.TrimSpace(rest[:end])
		}
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
