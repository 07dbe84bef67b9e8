package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/models"
)

// renderTemplate produces the deterministic Markdown body for a report.
// It never fails: missing investigation state yields a skeleton report
// noting what is unknown. The LLM enhancement path builds on top of
// this output.
func renderTemplate(c *models.Case, st *investigation.State, reportType models.ReportType) (title, content string) {
	switch reportType {
	case models.ReportRunbook:
		return fmt.Sprintf("Runbook: %s", c.Title), renderRunbook(c, st)
	case models.ReportPostMortem:
		return fmt.Sprintf("Post-Mortem: %s", c.Title), renderPostMortem(c, st)
	default:
		return fmt.Sprintf("Incident Report: %s", c.Title), renderIncidentReport(c, st)
	}
}

func renderIncidentReport(c *models.Case, st *investigation.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Incident Report: %s\n\n", c.Title)
	fmt.Fprintf(&b, "- **Case**: %s\n- **Status**: %s\n- **Priority**: %s\n- **Opened**: %s\n",
		c.ID, c.Status, c.Priority, c.CreatedAt.Format("2006-01-02 15:04 MST"))
	if c.ResolvedAt != nil {
		fmt.Fprintf(&b, "- **Resolved**: %s\n", c.ResolvedAt.Format("2006-01-02 15:04 MST"))
	}
	b.WriteString("\n## Summary\n\n")
	b.WriteString(problemStatement(c, st))
	b.WriteString("\n")

	if st != nil {
		writeScopeSection(&b, st)
		writeTimelineSection(&b, st)
		writeRootCauseSection(&b, st)
		writeEvidenceSection(&b, st)
		writeMilestoneSection(&b, st)
	} else {
		b.WriteString("\n_No investigation has been started for this case._\n")
	}
	return b.String()
}

func renderRunbook(c *models.Case, st *investigation.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Runbook: %s\n\n", c.Title)
	b.WriteString("## Symptoms\n\n")
	b.WriteString(problemStatement(c, st))
	b.WriteString("\n")

	if st != nil {
		if len(st.AnomalyFrame.AffectedComponents) > 0 {
			b.WriteString("\n## Affected Components\n\n")
			for _, comp := range st.AnomalyFrame.AffectedComponents {
				fmt.Fprintf(&b, "- %s\n", comp)
			}
		}

		b.WriteString("\n## Diagnosis\n\n")
		validated := validatedHypotheses(st)
		if len(validated) == 0 {
			b.WriteString("Root cause was not conclusively validated; check the hypotheses below against current symptoms.\n")
			for _, h := range st.ActiveHypotheses() {
				fmt.Fprintf(&b, "- [%s] %s (likelihood %.2f)\n", h.Category, h.Statement, h.Likelihood)
			}
		}
		for _, h := range validated {
			fmt.Fprintf(&b, "**Confirmed cause**: %s\n\n", h.Statement)
			for _, evID := range h.SupportingEvidenceIDs {
				if ev := st.EvidenceByID(evID); ev != nil {
					fmt.Fprintf(&b, "- Verify: %s\n", ev.Description)
				}
			}
		}

		b.WriteString("\n## Resolution\n\n")
		if st.Progress.SolutionVerified {
			b.WriteString("The steps below resolved the incident and were verified.\n\n")
		} else if st.Progress.SolutionProposed {
			b.WriteString("The steps below were proposed but not yet verified end to end.\n\n")
		}
		if st.WorkingConclusion != nil {
			fmt.Fprintf(&b, "%s\n", st.WorkingConclusion.Statement)
		} else {
			b.WriteString("No resolution steps were recorded.\n")
		}
	} else {
		b.WriteString("\n_No investigation has been started for this case._\n")
	}
	return b.String()
}

func renderPostMortem(c *models.Case, st *investigation.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Post-Mortem: %s\n\n", c.Title)
	b.WriteString("## What Happened\n\n")
	b.WriteString(problemStatement(c, st))
	b.WriteString("\n")

	if st != nil {
		writeTimelineSection(&b, st)
		writeRootCauseSection(&b, st)

		b.WriteString("\n## What Went Well / What Did Not\n\n")
		fmt.Fprintf(&b, "- Investigation ran for %d turns across %d hypotheses.\n",
			st.CurrentTurn, len(st.Hypotheses))
		if st.Loopbacks.Count > 0 {
			fmt.Fprintf(&b, "- The investigation looped back %d time(s) when earlier conclusions did not hold.\n", st.Loopbacks.Count)
		}
		if st.Degraded != nil {
			fmt.Fprintf(&b, "- The investigation stalled at turn %d: %s.\n",
				st.Degraded.EnteredAtTurn, st.Degraded.Reason)
		}

		if st.WorkingConclusion != nil && len(st.WorkingConclusion.Caveats) > 0 {
			b.WriteString("\n## Open Caveats\n\n")
			for _, cav := range st.WorkingConclusion.Caveats {
				fmt.Fprintf(&b, "- %s\n", cav)
			}
		}
		if st.WorkingConclusion != nil && len(st.WorkingConclusion.NextEvidenceNeeded) > 0 {
			b.WriteString("\n## Follow-Ups\n\n")
			for _, next := range st.WorkingConclusion.NextEvidenceNeeded {
				fmt.Fprintf(&b, "- %s\n", next)
			}
		}
	} else {
		b.WriteString("\n_No investigation has been started for this case._\n")
	}
	return b.String()
}

func problemStatement(c *models.Case, st *investigation.State) string {
	if st != nil && st.AnomalyFrame.ProblemStatement != "" {
		return st.AnomalyFrame.ProblemStatement + "\n"
	}
	if c.Description != "" {
		return c.Description + "\n"
	}
	return c.Title + "\n"
}

func writeScopeSection(b *strings.Builder, st *investigation.State) {
	if st.AnomalyFrame.Scope == "" && len(st.AnomalyFrame.AffectedComponents) == 0 {
		return
	}
	b.WriteString("\n## Impact\n\n")
	if st.AnomalyFrame.Scope != "" {
		fmt.Fprintf(b, "%s\n", st.AnomalyFrame.Scope)
	}
	for _, comp := range st.AnomalyFrame.AffectedComponents {
		fmt.Fprintf(b, "- %s\n", comp)
	}
}

func writeTimelineSection(b *strings.Builder, st *investigation.State) {
	tf := st.TemporalFrame
	if tf.FirstNoticedAt == nil && tf.ActuallyStartedAt == nil && len(tf.RecentChanges) == 0 {
		return
	}
	b.WriteString("\n## Timeline\n\n")
	if tf.ActuallyStartedAt != nil {
		fmt.Fprintf(b, "- **Started**: %s\n", tf.ActuallyStartedAt.Format("2006-01-02 15:04 MST"))
	}
	if tf.FirstNoticedAt != nil {
		fmt.Fprintf(b, "- **First noticed**: %s\n", tf.FirstNoticedAt.Format("2006-01-02 15:04 MST"))
	}
	for _, change := range tf.RecentChanges {
		fmt.Fprintf(b, "- Change: %s\n", change)
	}
	if tf.ChangeCorrelation != "" {
		fmt.Fprintf(b, "\n%s\n", tf.ChangeCorrelation)
	}
}

func writeRootCauseSection(b *strings.Builder, st *investigation.State) {
	b.WriteString("\n## Root Cause\n\n")
	validated := validatedHypotheses(st)
	if len(validated) == 0 {
		if st.WorkingConclusion != nil {
			fmt.Fprintf(b, "Working conclusion (confidence %.0f%%): %s\n",
				st.WorkingConclusion.Confidence*100, st.WorkingConclusion.Statement)
		} else {
			b.WriteString("Root cause was not identified.\n")
		}
		return
	}
	for _, h := range validated {
		fmt.Fprintf(b, "**[%s]** %s (likelihood %.2f, validated at turn %d)\n\n",
			h.Category, h.Statement, h.Likelihood, h.ValidatedAtTurn)
	}
}

func writeEvidenceSection(b *strings.Builder, st *investigation.State) {
	if len(st.Evidence) == 0 {
		return
	}
	b.WriteString("\n## Evidence\n\n")
	for _, ev := range st.Evidence {
		fmt.Fprintf(b, "- (%s, turn %d) %s\n", ev.Category, ev.CollectedAtTurn, ev.Description)
	}
}

func writeMilestoneSection(b *strings.Builder, st *investigation.State) {
	b.WriteString("\n## Investigation Progress\n\n")
	for _, m := range investigation.AllMilestones {
		mark := " "
		if st.Progress.Done(m) {
			mark = "x"
		}
		fmt.Fprintf(b, "- [%s] %s\n", mark, strings.ReplaceAll(string(m), "_", " "))
	}
	fmt.Fprintf(b, "\n%.0f%% complete over %d turns.\n",
		st.Progress.CompletionPercentage(), st.CurrentTurn)
}

func validatedHypotheses(st *investigation.State) []investigation.Hypothesis {
	var out []investigation.Hypothesis
	for _, h := range st.Hypotheses {
		if h.Status == investigation.HypothesisValidated {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Likelihood > out[j].Likelihood })
	return out
}
