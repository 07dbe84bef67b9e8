package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/llm"
	"github.com/caseops/inquest/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCase(status models.CaseStatus) *models.Case {
	return &models.Case{
		ID:          "case-1",
		Title:       "API latency spike",
		Description: "p99 latency tripled since this morning",
		Status:      status,
		Priority:    models.PriorityHigh,
	}
}

func testState() *investigation.State {
	s := &investigation.State{
		InvestigationID: "inv-1",
		CurrentPhase:    investigation.PhaseValidation,
		CurrentTurn:     4,
		StartedAt:       time.Now(),
	}
	s.Hypotheses = []investigation.Hypothesis{
		{ID: "h-1", Statement: "connection pool exhausted", Category: investigation.CategoryInfrastructure, Status: investigation.HypothesisActive, Likelihood: 0.55},
		{ID: "h-2", Statement: "bad deploy", Category: investigation.CategoryCode, Status: investigation.HypothesisRefuted, Likelihood: 0.10},
	}
	s.Evidence = []investigation.Evidence{
		{ID: "ev-1", Description: "pool wait time graph", Category: investigation.EvidenceCausal, CollectedAtTurn: 3},
	}
	s.Progress.SymptomVerified = true
	return s
}

func TestBuilder_Investigating(t *testing.T) {
	b := NewBuilder(investigation.DefaultSettings())

	messages, schema := b.BuildTurnMessages(&TurnInput{
		Case:          testCase(models.CaseInvestigating),
		State:         testState(),
		MemoryContext: "Key facts:\n- incident began after deploy\n",
		UserInput:     "here is the pool metrics dump",
		Attachments:   []models.Attachment{{Filename: "pool.csv", ContentType: "text/csv", Summary: "pool wait times"}},
	})

	require.Len(t, messages, 2)
	assert.Equal(t, llm.RoleSystem, messages[0].Role)
	assert.Equal(t, schema, TurnReplySchema())

	system := messages[0].Content
	assert.Contains(t, system, "site reliability engineer")
	assert.Contains(t, system, "Current focus: test the ranked hypotheses")
	assert.NotContains(t, system, "degraded mode")

	user := messages[1].Content
	assert.Contains(t, user, "API latency spike")
	assert.Contains(t, user, "[x] symptom_verified")
	assert.Contains(t, user, "[ ] root_cause_identified")
	assert.Contains(t, user, "connection pool exhausted")
	assert.Contains(t, user, "do not re-propose")
	assert.Contains(t, user, "bad deploy")
	assert.Contains(t, user, "[ev-1]")
	assert.Contains(t, user, "incident began after deploy")
	assert.Contains(t, user, "pool.csv")
	assert.Contains(t, user, "here is the pool metrics dump")
}

func TestBuilder_InvestigatingDegraded(t *testing.T) {
	b := NewBuilder(investigation.DefaultSettings())
	st := testState()
	st.Degraded = &investigation.DegradedMode{
		Type:   investigation.DegradedNoProgress,
		Reason: "no progress",
	}

	messages, _ := b.BuildTurnMessages(&TurnInput{
		Case:      testCase(models.CaseInvestigating),
		State:     st,
		UserInput: "what now?",
	})
	assert.Contains(t, messages[0].Content, "degraded mode")

	st.Degraded.UserAcknowledged = true
	messages, _ = b.BuildTurnMessages(&TurnInput{
		Case:      testCase(models.CaseInvestigating),
		State:     st,
		UserInput: "what now?",
	})
	assert.NotContains(t, messages[0].Content, "degraded mode")
}

func TestBuilder_AnchoringConstraints(t *testing.T) {
	b := NewBuilder(investigation.DefaultSettings())

	messages, _ := b.BuildTurnMessages(&TurnInput{
		Case:      testCase(models.CaseInvestigating),
		State:     testState(),
		UserInput: "any other ideas?",
		Constraints: &investigation.GenerationConstraints{
			ExcludeCategories:        []investigation.HypothesisCategory{investigation.CategoryInfrastructure},
			RequireDiverseCategories: true,
			MinNewHypotheses:         2,
		},
	})

	user := messages[1].Content
	assert.Contains(t, user, "anchoring detected")
	assert.Contains(t, user, "Do NOT propose hypotheses in these categories: infrastructure")
	assert.Contains(t, user, "at least 2 genuinely different explanations")
}

func TestBuilder_Consulting(t *testing.T) {
	b := NewBuilder(investigation.DefaultSettings())

	messages, schema := b.BuildTurnMessages(&TurnInput{
		Case:      testCase(models.CaseConsulting),
		UserInput: "our API is slow",
	})

	assert.Equal(t, schema, ConsultingReplySchema())
	system := messages[0].Content
	assert.Contains(t, system, "consulting mode")
	assert.Contains(t, system, "Do not generate hypotheses")
}

func TestBuilder_ReadOnlyStatuses(t *testing.T) {
	b := NewBuilder(investigation.DefaultSettings())

	for _, tt := range []struct {
		status models.CaseStatus
		want   string
	}{
		{models.CaseResolved, "The case is resolved"},
		{models.CaseClosed, "closed without a verified resolution"},
	} {
		t.Run(string(tt.status), func(t *testing.T) {
			messages, schema := b.BuildTurnMessages(&TurnInput{
				Case:      testCase(tt.status),
				State:     testState(),
				UserInput: "what was the root cause?",
			})
			assert.Empty(t, schema)
			assert.Contains(t, messages[0].Content, tt.want)
			assert.Contains(t, messages[0].Content, "read-only")
		})
	}
}

func TestBuilder_TranscriptWindow(t *testing.T) {
	b := NewBuilder(investigation.DefaultSettings())

	var transcript []*models.CaseMessage
	for i := 0; i < 25; i++ {
		role := models.MessageRoleUser
		if i%2 == 1 {
			role = models.MessageRoleAssistant
		}
		transcript = append(transcript, &models.CaseMessage{
			Role:    role,
			Content: strings.Repeat("x", 5),
		})
	}

	messages, _ := b.BuildTurnMessages(&TurnInput{
		Case:       testCase(models.CaseInvestigating),
		State:      testState(),
		Transcript: transcript,
		UserInput:  "latest",
	})

	// system + 10 transcript + current user message
	assert.Len(t, messages, 12)
	assert.Equal(t, llm.RoleAssistant, messages[2].Role)
}

func TestParseTurnReply(t *testing.T) {
	t.Run("plain JSON", func(t *testing.T) {
		reply, err := ParseTurnReply(`{"reply": "looking at the pool", "analysis": {"milestones_completed": ["scope_assessed"]}}`)
		require.NoError(t, err)
		assert.Equal(t, "looking at the pool", reply.Reply)
		require.NotNil(t, reply.Analysis)
		assert.Equal(t, []string{"scope_assessed"}, reply.Analysis.MilestonesCompleted)
	})

	t.Run("fenced JSON", func(t *testing.T) {
		reply, err := ParseTurnReply("Here you go:\n```json\n{\"reply\": \"ok\"}\n```")
		require.NoError(t, err)
		assert.Equal(t, "ok", reply.Reply)
	})

	t.Run("free text falls back to reply", func(t *testing.T) {
		reply, err := ParseTurnReply("I could not produce structured output this time.")
		require.NoError(t, err)
		assert.Equal(t, "I could not produce structured output this time.", reply.Reply)
		assert.Nil(t, reply.Analysis)
	})

	t.Run("malformed JSON falls back to raw content", func(t *testing.T) {
		reply, err := ParseTurnReply(`{"reply": "truncated`)
		require.NoError(t, err)
		assert.NotEmpty(t, reply.Reply)
	})
}

func TestParseConsultingReply(t *testing.T) {
	reply, err := ParseConsultingReply(`{"reply": "let's frame this", "temporal_state": "ongoing", "urgency_level": "high", "ready_to_investigate": true}`)
	require.NoError(t, err)
	assert.True(t, reply.ReadyToInvestigate)
	assert.Equal(t, "ongoing", reply.TemporalState)
	assert.Equal(t, "high", reply.UrgencyLevel)
}
