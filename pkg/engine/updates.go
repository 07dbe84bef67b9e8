package engine

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/prompt"
	"github.com/google/uuid"
)

// applyResult summarises what a structured update changed, for turn
// outcome derivation and the turn record.
type applyResult struct {
	NewHypothesisIDs    []string
	NewEvidenceIDs      []string
	HypothesesUpdated   []string
	MilestonesCompleted []investigation.Milestone
	PhaseOutcome        investigation.PhaseOutcome
	PhaseOutcomeReason  string
	EvidenceBlocked     bool
	ActionSummary       string
	ValidatedThisTurn   bool
	RefutedThisTurn     bool
}

// ProgressMade reports whether the update moved the investigation.
func (r *applyResult) ProgressMade() bool {
	return len(r.MilestonesCompleted) > 0 ||
		len(r.NewEvidenceIDs) > 0 ||
		len(r.NewHypothesisIDs) > 0 ||
		r.ValidatedThisTurn || r.RefutedThisTurn
}

// knownPhaseOutcomes guards outcome parsing; anything else is ignored.
var knownPhaseOutcomes = map[string]investigation.PhaseOutcome{
	string(investigation.PhaseCompleted):         investigation.PhaseCompleted,
	string(investigation.PhaseHypothesisRefuted): investigation.PhaseHypothesisRefuted,
	string(investigation.PhaseScopeChanged):      investigation.PhaseScopeChanged,
	string(investigation.PhaseTimelineWrong):     investigation.PhaseTimelineWrong,
	string(investigation.PhaseNeedMoreData):      investigation.PhaseNeedMoreData,
	string(investigation.PhaseStalled):           investigation.PhaseStalled,
	string(investigation.PhaseEscalationNeeded):  investigation.PhaseEscalationNeeded,
}

var knownCategories = func() map[string]investigation.HypothesisCategory {
	out := make(map[string]investigation.HypothesisCategory, len(investigation.KnownCategories))
	for _, c := range investigation.KnownCategories {
		out[string(c)] = c
	}
	return out
}()

var knownEvidenceCategories = map[string]investigation.EvidenceCategory{
	string(investigation.EvidenceSymptom):    investigation.EvidenceSymptom,
	string(investigation.EvidenceCausal):     investigation.EvidenceCausal,
	string(investigation.EvidenceResolution): investigation.EvidenceResolution,
	string(investigation.EvidenceOther):      investigation.EvidenceOther,
}

// applyUpdates folds the model's structured analysis into the state.
// Individually invalid entries are skipped with a log line; the rest of
// the update still applies.
func (e *Engine) applyUpdates(s *investigation.State, upd *prompt.AnalysisUpdates, logger *slog.Logger) *applyResult {
	result := &applyResult{}
	if upd == nil {
		return result
	}
	result.EvidenceBlocked = upd.EvidenceBlocked
	result.ActionSummary = upd.ActionSummary

	statusBefore := make(map[string]investigation.HypothesisStatus, len(s.Hypotheses))
	for i := range s.Hypotheses {
		statusBefore[s.Hypotheses[i].ID] = s.Hypotheses[i].Status
	}

	for _, input := range upd.NewHypotheses {
		category, ok := knownCategories[input.Category]
		if !ok {
			logger.Warn("Skipping hypothesis with unknown category",
				"category", input.Category, "statement", input.Statement)
			continue
		}
		if strings.TrimSpace(input.Statement) == "" {
			logger.Warn("Skipping hypothesis with empty statement")
			continue
		}
		h := e.hypotheses.Capture(s, input.Statement, category, input.InitialLikelihood, investigation.GenerationOpportunistic)
		e.hypotheses.Activate(h)
		result.NewHypothesisIDs = append(result.NewHypothesisIDs, h.ID)
	}

	newEvidenceIDs := make([]string, len(upd.NewEvidence))
	for i, input := range upd.NewEvidence {
		category, ok := knownEvidenceCategories[input.Category]
		if !ok {
			category = investigation.EvidenceOther
		}
		ev := investigation.Evidence{
			ID:              uuid.New().String(),
			Description:     input.Description,
			Category:        category,
			SourceType:      "conversation",
			ContentSummary:  input.Summary,
			CollectedAtTurn: s.CurrentTurn,
		}
		s.Evidence = append(s.Evidence, ev)
		newEvidenceIDs[i] = ev.ID
		result.NewEvidenceIDs = append(result.NewEvidenceIDs, ev.ID)
	}

	for _, link := range upd.EvidenceLinks {
		evidenceID, err := resolveEvidenceRef(link.EvidenceRef, newEvidenceIDs)
		if err != nil {
			logger.Warn("Skipping evidence link", "ref", link.EvidenceRef, "error", err)
			continue
		}
		err = e.hypotheses.LinkEvidence(s, link.HypothesisID, evidenceID, link.Supports)
		switch {
		case err == nil:
			result.HypothesesUpdated = appendUnique(result.HypothesesUpdated, link.HypothesisID)
		case investigation.IsInvariantViolation(err):
			logger.Error("Rejected evidence link targeting settled hypothesis",
				"hypothesis_id", link.HypothesisID, "error", err)
		default:
			logger.Warn("Skipping evidence link", "hypothesis_id", link.HypothesisID, "error", err)
		}
	}

	now := e.now()
	for _, name := range upd.MilestonesCompleted {
		m := investigation.Milestone(name)
		if s.Progress.Done(m) {
			continue
		}
		if !s.Progress.Complete(m, now) {
			logger.Warn("Skipping unknown milestone", "milestone", name)
			continue
		}
		result.MilestonesCompleted = append(result.MilestonesCompleted, m)
	}

	if upd.AnomalyFrame != nil {
		applyAnomalyFrame(&s.AnomalyFrame, upd.AnomalyFrame)
	}
	if upd.TimelineUpdate != nil {
		applyTimelineUpdate(&s.TemporalFrame, upd.TimelineUpdate)
	}

	if upd.PhaseOutcome != "" {
		if outcome, ok := knownPhaseOutcomes[upd.PhaseOutcome]; ok {
			result.PhaseOutcome = outcome
			result.PhaseOutcomeReason = upd.PhaseOutcomeReason
		} else {
			logger.Warn("Skipping unknown phase outcome", "outcome", upd.PhaseOutcome)
		}
	}

	for i := range s.Hypotheses {
		h := &s.Hypotheses[i]
		if statusBefore[h.ID] == h.Status {
			continue
		}
		switch h.Status {
		case investigation.HypothesisValidated:
			result.ValidatedThisTurn = true
		case investigation.HypothesisRefuted:
			result.RefutedThisTurn = true
		}
	}

	return result
}

// resolveEvidenceRef maps "new:<index>" references onto the evidence
// ids created this turn; anything else is taken as an existing id.
func resolveEvidenceRef(ref string, newIDs []string) (string, error) {
	if !strings.HasPrefix(ref, "new:") {
		return ref, nil
	}
	idx, err := strconv.Atoi(strings.TrimPrefix(ref, "new:"))
	if err != nil || idx < 0 || idx >= len(newIDs) {
		return "", fmt.Errorf("invalid new-evidence reference %q", ref)
	}
	return newIDs[idx], nil
}

func applyAnomalyFrame(frame *investigation.AnomalyFrame, input *prompt.AnomalyFrameInput) {
	if input.ProblemStatement != "" {
		frame.ProblemStatement = input.ProblemStatement
	}
	if len(input.AffectedComponents) > 0 {
		frame.AffectedComponents = input.AffectedComponents
	}
	if input.Scope != "" {
		frame.Scope = input.Scope
	}
	if input.Severity != "" {
		frame.Severity = input.Severity
	}
}

func applyTimelineUpdate(frame *investigation.TemporalFrame, input *prompt.TimelineInput) {
	if input.ActuallyStartedAt != "" {
		if at, err := time.Parse(time.RFC3339, input.ActuallyStartedAt); err == nil {
			frame.ActuallyStartedAt = &at
		}
	}
	if len(input.RecentChanges) > 0 {
		frame.RecentChanges = append(frame.RecentChanges, input.RecentChanges...)
	}
	if input.ChangeCorrelation != "" {
		frame.ChangeCorrelation = input.ChangeCorrelation
	}
}

func appendUnique(xs []string, v string) []string {
	for _, x := range xs {
		if x == v {
			return xs
		}
	}
	return append(xs, v)
}
