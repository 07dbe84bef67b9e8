// Package prompt builds all model-facing text for the investigation
// engine. Builders are stateless; everything comes in through
// parameters, so the package is safe to share across cases.
package prompt

import (
	"fmt"
	"strings"

	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/llm"
	"github.com/caseops/inquest/pkg/models"
)

// Builder composes per-turn conversations. The case status selects the
// template family; investigating turns additionally carry the full
// investigation context.
type Builder struct {
	settings   investigation.Settings
	hypotheses *investigation.HypothesisManager
}

// NewBuilder creates a Builder.
func NewBuilder(settings investigation.Settings) *Builder {
	return &Builder{
		settings:   settings,
		hypotheses: investigation.NewHypothesisManager(settings),
	}
}

// TurnInput carries everything a turn prompt needs.
type TurnInput struct {
	Case          *models.Case
	State         *investigation.State
	MemoryContext string
	Transcript    []*models.CaseMessage
	UserInput     string
	Attachments   []models.Attachment
	// Constraints is set when anchoring forced alternative generation
	// this turn.
	Constraints *investigation.GenerationConstraints
}

// transcriptWindow bounds how many raw transcript messages ride along;
// older turns arrive through memory context instead.
const transcriptWindow = 10

// BuildTurnMessages returns the conversation and the response schema
// for the turn. The schema is empty for read-only statuses, where free
// text is expected.
func (b *Builder) BuildTurnMessages(in *TurnInput) ([]llm.Message, string) {
	switch in.Case.Status {
	case models.CaseConsulting:
		return b.buildConsulting(in), ConsultingReplySchema()
	case models.CaseInvestigating:
		return b.buildInvestigating(in), TurnReplySchema()
	case models.CaseResolved:
		return b.buildReadOnly(in, resolvedInstructions), ""
	case models.CaseClosed:
		return b.buildReadOnly(in, closedInstructions), ""
	}
	return b.buildReadOnly(in, closedInstructions), ""
}

func (b *Builder) buildConsulting(in *TurnInput) []llm.Message {
	system := strings.Join([]string{
		baseSystemInstructions,
		consultingInstructions,
		"Respond with a JSON object matching the schema you were given. The 'reply' field is shown verbatim to the user.",
	}, "\n\n")

	var user strings.Builder
	user.WriteString(caseHeader(in.Case))
	if in.State != nil && in.State.ConsultingData != nil {
		cd := in.State.ConsultingData
		if cd.ProblemStatement != "" {
			user.WriteString("Problem statement so far: " + cd.ProblemStatement + "\n")
		}
		if cd.TemporalState != "" {
			fmt.Fprintf(&user, "Temporal state: %s\n", cd.TemporalState)
		}
		if cd.UrgencyLevel != "" {
			fmt.Fprintf(&user, "Urgency: %s\n", cd.UrgencyLevel)
		}
	}
	user.WriteString(attachmentsSection(in.Attachments))
	user.WriteString("\nUser message:\n" + in.UserInput)

	return b.compose(system, in.Transcript, user.String())
}

func (b *Builder) buildInvestigating(in *TurnInput) []llm.Message {
	st := in.State

	systemParts := []string{
		baseSystemInstructions,
		investigatingInstructions,
		phaseInstructions[st.CurrentPhase],
	}
	if st.Degraded != nil && !st.Degraded.UserAcknowledged {
		systemParts = append(systemParts, degradedInstructions)
	}
	systemParts = append(systemParts,
		"Respond with a JSON object matching the schema you were given. The 'reply' field is shown verbatim to the user; the 'analysis' field drives investigation state and is never shown.")
	system := strings.Join(systemParts, "\n\n")

	var user strings.Builder
	user.WriteString(caseHeader(in.Case))
	fmt.Fprintf(&user, "Investigation phase: %s (turn %d)\n\n", st.CurrentPhase, st.CurrentTurn)
	user.WriteString(milestoneChecklist(&st.Progress))
	user.WriteString("\n")
	user.WriteString(hypothesisBoard(st, b.hypotheses))
	user.WriteString("\n")
	user.WriteString(evidenceInventory(st))
	user.WriteString("\n")
	user.WriteString(workingConclusionSection(st.WorkingConclusion))
	if in.MemoryContext != "" {
		user.WriteString("\nInvestigation memory:\n" + in.MemoryContext)
	}
	if section := generationConstraintsSection(in.Constraints); section != "" {
		user.WriteString("\n" + section)
	}
	user.WriteString(attachmentsSection(in.Attachments))
	user.WriteString("\nUser message:\n" + in.UserInput)

	return b.compose(system, in.Transcript, user.String())
}

func (b *Builder) buildReadOnly(in *TurnInput, instructions string) []llm.Message {
	system := strings.Join([]string{baseSystemInstructions, instructions}, "\n\n")

	var user strings.Builder
	user.WriteString(caseHeader(in.Case))
	if st := in.State; st != nil {
		if st.WorkingConclusion != nil {
			user.WriteString(workingConclusionSection(st.WorkingConclusion))
		}
		user.WriteString(milestoneChecklist(&st.Progress))
		user.WriteString(hypothesisBoard(st, b.hypotheses))
	}
	if in.MemoryContext != "" {
		user.WriteString("\nInvestigation record:\n" + in.MemoryContext)
	}
	user.WriteString("\nUser message:\n" + in.UserInput)

	return b.compose(system, in.Transcript, user.String())
}

// compose assembles system + transcript tail + current user message.
func (b *Builder) compose(system string, transcript []*models.CaseMessage, userContent string) []llm.Message {
	messages := []llm.Message{{Role: llm.RoleSystem, Content: system}}
	for _, msg := range transcriptTail(transcript, transcriptWindow) {
		role := llm.RoleUser
		if msg.Role == models.MessageRoleAssistant {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: msg.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userContent})
	return messages
}
