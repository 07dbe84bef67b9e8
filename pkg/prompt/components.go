package prompt

import (
	"fmt"
	"strings"

	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/models"
)

// milestoneChecklist renders the progress gates as a checklist.
func milestoneChecklist(p *investigation.Progress) string {
	var sb strings.Builder
	sb.WriteString("Milestones:\n")
	for _, m := range investigation.AllMilestones {
		mark := "[ ]"
		if p.Done(m) {
			mark = "[x]"
		}
		fmt.Fprintf(&sb, "%s %s\n", mark, m)
	}
	return sb.String()
}

// hypothesisBoard renders the ranked active hypotheses plus terminal
// ones, so the model does not re-propose refuted ideas.
func hypothesisBoard(s *investigation.State, hm *investigation.HypothesisManager) string {
	if len(s.Hypotheses) == 0 {
		return "Hypotheses: none yet.\n"
	}
	var sb strings.Builder
	sb.WriteString("Hypotheses (ranked by likelihood):\n")
	for _, h := range hm.RankByLikelihood(s.ActiveHypotheses()) {
		fmt.Fprintf(&sb, "- [%s] %s (%s, likelihood %.2f, %s, support %d, refute %d)\n",
			h.ID, h.Statement, h.Category, h.Likelihood,
			investigation.ConfidenceLevelFor(h.Likelihood),
			len(h.SupportingEvidenceIDs), len(h.RefutingEvidenceIDs))
	}
	var terminal []string
	for i := range s.Hypotheses {
		h := &s.Hypotheses[i]
		if h.Status.Terminal() {
			terminal = append(terminal, fmt.Sprintf("- [%s] %s: %s", h.ID, h.Status, h.Statement))
		}
	}
	if len(terminal) > 0 {
		sb.WriteString("Settled hypotheses (do not re-propose):\n")
		sb.WriteString(strings.Join(terminal, "\n"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// evidenceInventory lists collected evidence with ids so links can
// reference them.
func evidenceInventory(s *investigation.State) string {
	if len(s.Evidence) == 0 {
		return "Evidence: none collected yet.\n"
	}
	var sb strings.Builder
	sb.WriteString("Evidence collected:\n")
	for i := range s.Evidence {
		ev := &s.Evidence[i]
		fmt.Fprintf(&sb, "- [%s] (%s, turn %d) %s\n", ev.ID, ev.Category, ev.CollectedAtTurn, ev.Description)
	}
	return sb.String()
}

// workingConclusionSection renders the current best explanation.
func workingConclusionSection(wc *investigation.WorkingConclusion) string {
	if wc == nil {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Working conclusion (%s, %.2f): %s\n", wc.ConfidenceLevel, wc.Confidence, wc.Statement)
	if len(wc.Caveats) > 0 {
		sb.WriteString("Caveats: " + strings.Join(wc.Caveats, "; ") + "\n")
	}
	if len(wc.NextEvidenceNeeded) > 0 {
		sb.WriteString("Most valuable next evidence: " + strings.Join(wc.NextEvidenceNeeded, "; ") + "\n")
	}
	return sb.String()
}

// generationConstraintsSection renders anchoring-breaking constraints
// for the hypothesis generation prompt.
func generationConstraintsSection(gc *investigation.GenerationConstraints) string {
	if gc == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Hypothesis generation constraints (anchoring detected):\n")
	if len(gc.ExcludeCategories) > 0 {
		cats := make([]string, len(gc.ExcludeCategories))
		for i, c := range gc.ExcludeCategories {
			cats[i] = string(c)
		}
		sb.WriteString("- Do NOT propose hypotheses in these categories: " + strings.Join(cats, ", ") + "\n")
	}
	if gc.RequireDiverseCategories {
		sb.WriteString("- New hypotheses must span different fault categories.\n")
	}
	if gc.MinNewHypotheses > 0 {
		fmt.Fprintf(&sb, "- Propose at least %d genuinely different explanations.\n", gc.MinNewHypotheses)
	}
	return sb.String()
}

// attachmentsSection summarises evidence files uploaded with the turn.
func attachmentsSection(attachments []models.Attachment) string {
	if len(attachments) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Files attached to this message:\n")
	for _, a := range attachments {
		fmt.Fprintf(&sb, "- %s (%s)", a.Filename, a.ContentType)
		if a.Summary != "" {
			sb.WriteString(": " + a.Summary)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// caseHeader renders the case identity line.
func caseHeader(c *models.Case) string {
	return fmt.Sprintf("Case: %s (priority %s)\n%s\n", c.Title, c.Priority, c.Description)
}

// transcriptMessages converts recent case messages into conversation
// turns for the model.
func transcriptTail(messages []*models.CaseMessage, max int) []*models.CaseMessage {
	if len(messages) <= max {
		return messages
	}
	return messages[len(messages)-max:]
}
