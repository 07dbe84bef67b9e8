package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/llm"
	"github.com/caseops/inquest/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu       sync.Mutex
	cases    map[string]*models.Case
	messages []*models.CaseMessage
	saveErr  error
}

func newMemStore() *memStore {
	return &memStore{cases: make(map[string]*models.Case)}
}

func copyCase(c *models.Case) *models.Case {
	data, _ := json.Marshal(c)
	var out models.Case
	_ = json.Unmarshal(data, &out)
	return &out
}

func (s *memStore) put(c *models.Case) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cases[c.ID] = copyCase(c)
}

func (s *memStore) GetCase(_ context.Context, id string) (*models.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cases[id]
	if !ok {
		return nil, fmt.Errorf("case %s: %w", id, investigation.ErrNotFound)
	}
	return copyCase(c), nil
}

func (s *memStore) SaveCase(_ context.Context, c *models.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.cases[c.ID] = copyCase(c)
	return nil
}

func (s *memStore) AppendMessage(_ context.Context, msg *models.CaseMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return nil
}

func (s *memStore) ListMessages(_ context.Context, caseID string, limit int) ([]*models.CaseMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.CaseMessage
	for _, m := range s.messages {
		if m.CaseID == caseID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

type scriptedLLM struct {
	mu        sync.Mutex
	responses []string
	err       error
	requests  []*llm.ChatRequest
}

func (l *scriptedLLM) Chat(_ context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests = append(l.requests, req)
	if l.err != nil {
		return nil, l.err
	}
	if len(l.responses) == 0 {
		return &llm.ChatResponse{Content: `{"reply": "noted"}`}, nil
	}
	resp := l.responses[0]
	l.responses = l.responses[1:]
	return &llm.ChatResponse{Content: resp}, nil
}

func (l *scriptedLLM) ChatStream(_ context.Context, _ *llm.ChatRequest) (<-chan llm.Chunk, error) {
	ch := make(chan llm.Chunk)
	close(ch)
	return ch, nil
}

func (l *scriptedLLM) Embed(_ context.Context, _ string) ([]float32, error) { return nil, nil }
func (l *scriptedLLM) Close() error                                        { return nil }

type capturedEvents struct {
	mu     sync.Mutex
	events []TurnEvent
}

func (c *capturedEvents) PublishTurnCompleted(_ context.Context, event TurnEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

func newInvestigatingCase(t *testing.T) (*models.Case, *investigation.State) {
	t.Helper()
	state := &investigation.State{
		InvestigationID: "inv-1",
		CurrentPhase:    investigation.PhaseValidation,
		CurrentTurn:     3,
		StartedAt:       time.Now(),
	}
	state.Progress.SymptomVerified = true
	c := &models.Case{
		ID:       "case-1",
		OwnerID:  "user-1",
		Title:    "API latency spike",
		Status:   models.CaseInvestigating,
		Priority: models.PriorityHigh,
	}
	require.NoError(t, SaveState(c, state))
	return c, state
}

func newTestEngine(store *memStore, client llm.Client, events EventPublisher) *Engine {
	return New(store, client, events, nil, investigation.DefaultSettings(), nil)
}

func TestProcessTurn_StructuredUpdates(t *testing.T) {
	store := newMemStore()
	c, _ := newInvestigatingCase(t)
	store.put(c)

	client := &scriptedLLM{responses: []string{`{
		"reply": "That points at the pool. I captured it as a hypothesis.",
		"analysis": {
			"new_hypotheses": [{"statement": "connection pool exhausted", "category": "infrastructure", "initial_likelihood": 0.5}],
			"new_evidence": [{"description": "pool wait time at 900ms", "category": "causal"}],
			"evidence_links": [{"evidence_ref": "new:0", "hypothesis_id": "", "supports": true}],
			"milestones_completed": ["scope_assessed"],
			"action_summary": "captured pool hypothesis"
		}
	}`}}
	events := &capturedEvents{}
	e := newTestEngine(store, client, events)

	result, err := e.ProcessTurn(context.Background(), "case-1", "user-1", "pool wait times look bad", nil)
	require.NoError(t, err)

	assert.Equal(t, 4, result.TurnNumber)
	assert.Contains(t, result.Reply, "points at the pool")
	assert.Equal(t, investigation.OutcomeProgress, result.Outcome)

	saved, err := store.GetCase(context.Background(), "case-1")
	require.NoError(t, err)
	state, err := LoadState(saved)
	require.NoError(t, err)

	assert.Equal(t, 4, state.CurrentTurn)
	require.Len(t, state.Hypotheses, 1)
	assert.Equal(t, "connection pool exhausted", state.Hypotheses[0].Statement)
	assert.Equal(t, investigation.HypothesisActive, state.Hypotheses[0].Status)
	require.Len(t, state.Evidence, 1)
	assert.True(t, state.Progress.ScopeAssessed)
	require.Len(t, state.TurnHistory, 1)
	assert.True(t, state.TurnHistory[0].ProgressMade)
	assert.Equal(t, "captured pool hypothesis", state.TurnHistory[0].AgentActionSummary)
	require.NotNil(t, state.WorkingConclusion)
	assert.NotEmpty(t, state.Memory.Hot)

	// user + assistant messages persisted
	messages, _ := store.ListMessages(context.Background(), "case-1", 10)
	require.Len(t, messages, 2)
	assert.Equal(t, models.MessageRoleUser, messages[0].Role)
	assert.Equal(t, models.MessageRoleAssistant, messages[1].Role)

	require.Len(t, events.events, 1)
	assert.Equal(t, 4, events.events[0].TurnNumber)
}

func TestProcessTurn_EvidenceLinkMovesConfidence(t *testing.T) {
	store := newMemStore()
	c, state := newInvestigatingCase(t)
	state.Hypotheses = []investigation.Hypothesis{{
		ID: "h-1", Statement: "pool exhausted",
		Category: investigation.CategoryInfrastructure,
		Status:   investigation.HypothesisActive, Likelihood: 0.50,
	}}
	require.NoError(t, SaveState(c, state))
	store.put(c)

	client := &scriptedLLM{responses: []string{`{
		"reply": "That confirms it partially.",
		"analysis": {
			"new_evidence": [{"description": "pool saturation graph", "category": "causal"}],
			"evidence_links": [{"evidence_ref": "new:0", "hypothesis_id": "h-1", "supports": true}]
		}
	}`}}
	e := newTestEngine(store, client, nil)

	_, err := e.ProcessTurn(context.Background(), "case-1", "user-1", "here is the graph", nil)
	require.NoError(t, err)

	saved, _ := store.GetCase(context.Background(), "case-1")
	got, err := LoadState(saved)
	require.NoError(t, err)
	require.Len(t, got.Hypotheses, 1)
	assert.InDelta(t, 0.65, got.Hypotheses[0].Likelihood, 1e-9)
	assert.Equal(t, []string{got.Evidence[0].ID}, got.Hypotheses[0].SupportingEvidenceIDs)
}

func TestProcessTurn_LLMFailureIsPartialCommit(t *testing.T) {
	store := newMemStore()
	c, _ := newInvestigatingCase(t)
	store.put(c)

	client := &scriptedLLM{err: errors.New("sidecar down")}
	e := newTestEngine(store, client, nil)

	result, err := e.ProcessTurn(context.Background(), "case-1", "user-1", "anything new?",
		[]models.Attachment{{Filename: "pool.log", ContentType: "text/plain", Summary: "wait times"}})
	require.NoError(t, err)

	assert.Equal(t, investigation.OutcomeBlocked, result.Outcome)
	assert.Equal(t, 4, result.TurnNumber)
	assert.Contains(t, result.Reply, "LLM unavailable")

	// The turn counter advance and the attachment-derived evidence are
	// kept; no structured updates applied.
	saved, _ := store.GetCase(context.Background(), "case-1")
	state, err := LoadState(saved)
	require.NoError(t, err)
	assert.Equal(t, 4, state.CurrentTurn)
	require.Len(t, state.Evidence, 1)
	assert.Equal(t, "file_upload", state.Evidence[0].SourceType)
	require.Len(t, state.TurnHistory, 1)
	assert.Equal(t, investigation.OutcomeBlocked, state.TurnHistory[0].Outcome)
	assert.Equal(t, []string{state.Evidence[0].ID}, state.TurnHistory[0].EvidenceCollected)
	assert.Empty(t, state.Hypotheses)

	// User message plus the fixed unavailable reply in the transcript.
	messages, _ := store.ListMessages(context.Background(), "case-1", 10)
	require.Len(t, messages, 2)
	assert.Equal(t, models.MessageRoleUser, messages[0].Role)
	assert.Equal(t, models.MessageRoleAssistant, messages[1].Role)
	assert.Contains(t, messages[1].Content, "LLM unavailable")
}

func TestProcessTurn_InvalidUpdatesSkipped(t *testing.T) {
	store := newMemStore()
	c, state := newInvestigatingCase(t)
	state.Hypotheses = []investigation.Hypothesis{{
		ID: "h-done", Statement: "already proven",
		Category: investigation.CategoryCode,
		Status:   investigation.HypothesisValidated, Likelihood: 0.90,
	}}
	state.Evidence = []investigation.Evidence{{ID: "ev-1", Description: "old evidence"}}
	require.NoError(t, SaveState(c, state))
	store.put(c)

	client := &scriptedLLM{responses: []string{`{
		"reply": "Mixed bag of updates.",
		"analysis": {
			"new_hypotheses": [
				{"statement": "cosmic rays", "category": "weather", "initial_likelihood": 0.9},
				{"statement": "cache stampede", "category": "performance", "initial_likelihood": 0.4}
			],
			"evidence_links": [
				{"evidence_ref": "ev-1", "hypothesis_id": "h-done", "supports": false},
				{"evidence_ref": "ev-missing", "hypothesis_id": "h-done", "supports": true}
			],
			"milestones_completed": ["not_a_milestone", "timeline_established"]
		}
	}`}}
	e := newTestEngine(store, client, nil)

	_, err := e.ProcessTurn(context.Background(), "case-1", "user-1", "updates", nil)
	require.NoError(t, err)

	saved, _ := store.GetCase(context.Background(), "case-1")
	got, err := LoadState(saved)
	require.NoError(t, err)

	// Unknown category skipped, valid hypothesis kept.
	require.Len(t, got.Hypotheses, 2)
	assert.Equal(t, "cache stampede", got.Hypotheses[1].Statement)

	// The settled hypothesis is untouched by the rejected link.
	assert.Equal(t, investigation.HypothesisValidated, got.Hypotheses[0].Status)
	assert.InDelta(t, 0.90, got.Hypotheses[0].Likelihood, 1e-9)
	assert.Empty(t, got.Hypotheses[0].RefutingEvidenceIDs)

	// Unknown milestone skipped, valid one applied.
	assert.True(t, got.Progress.TimelineEstablished)
}

func TestProcessTurn_AutoResolution(t *testing.T) {
	store := newMemStore()
	c, state := newInvestigatingCase(t)
	now := time.Now()
	for _, m := range investigation.AllMilestones[:7] {
		state.Progress.Complete(m, now)
	}
	state.CurrentPhase = investigation.PhaseSolution
	require.NoError(t, SaveState(c, state))
	store.put(c)

	client := &scriptedLLM{responses: []string{`{
		"reply": "Latency is back to baseline. The fix held.",
		"analysis": {"milestones_completed": ["solution_verified"]}
	}`}}
	e := newTestEngine(store, client, nil)

	result, err := e.ProcessTurn(context.Background(), "case-1", "user-1", "metrics look healthy now", nil)
	require.NoError(t, err)
	assert.True(t, result.AutoResolved)

	saved, _ := store.GetCase(context.Background(), "case-1")
	assert.Equal(t, models.CaseResolved, saved.Status)
	require.NotNil(t, saved.ResolvedAt)
	assert.Equal(t, "user-1", saved.ResolvedBy)

	history, ok := saved.Metadata[models.MetadataKeyStatusHistory].([]any)
	require.True(t, ok)
	require.Len(t, history, 1)
}

func TestProcessTurn_AutoResolutionOnSolutionVerifiedAlone(t *testing.T) {
	store := newMemStore()
	c, state := newInvestigatingCase(t)
	state.CurrentPhase = investigation.PhaseSolution
	require.NoError(t, SaveState(c, state))
	store.put(c)

	client := &scriptedLLM{responses: []string{`{
		"reply": "The workaround held overnight; the incident is over.",
		"analysis": {"milestones_completed": ["solution_verified"]}
	}`}}
	e := newTestEngine(store, client, nil)

	// Closure gates on solution_verified only; a mitigated incident
	// resolves even without a confirmed root cause.
	result, err := e.ProcessTurn(context.Background(), "case-1", "user-1", "still healthy this morning", nil)
	require.NoError(t, err)
	assert.True(t, result.AutoResolved)

	saved, _ := store.GetCase(context.Background(), "case-1")
	assert.Equal(t, models.CaseResolved, saved.Status)
	got, _ := LoadState(saved)
	assert.False(t, got.Progress.RootCauseIdentified)
}

func TestInferEvidenceCategory(t *testing.T) {
	var p investigation.Progress
	assert.Equal(t, investigation.EvidenceSymptom, inferEvidenceCategory(&p))

	p.SymptomVerified = true
	assert.Equal(t, investigation.EvidenceCausal, inferEvidenceCategory(&p))

	// A confirmed root cause alone does not move uploads past causal.
	p.RootCauseIdentified = true
	assert.Equal(t, investigation.EvidenceCausal, inferEvidenceCategory(&p))

	p.SolutionProposed = true
	assert.Equal(t, investigation.EvidenceResolution, inferEvidenceCategory(&p))
}

func TestSummarizeInput_RuneBoundary(t *testing.T) {
	long := strings.Repeat("очень длинное сообщение ", 20)
	got := summarizeInput(long)
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), 200+len("…"))
}

func TestProcessTurn_DegradedAfterStalledTurns(t *testing.T) {
	store := newMemStore()
	c, _ := newInvestigatingCase(t)
	store.put(c)

	client := &scriptedLLM{responses: []string{
		`{"reply": "nothing new"}`,
		`{"reply": "still nothing"}`,
		`{"reply": "stuck"}`,
	}}
	e := newTestEngine(store, client, nil)

	var result *TurnResult
	var err error
	for i := 0; i < 3; i++ {
		result, err = e.ProcessTurn(context.Background(), "case-1", "user-1", "any progress?", nil)
		require.NoError(t, err)
	}

	assert.True(t, result.Degraded)
	saved, _ := store.GetCase(context.Background(), "case-1")
	state, _ := LoadState(saved)
	require.NotNil(t, state.Degraded)
	assert.Equal(t, investigation.DegradedNoProgress, state.Degraded.Type)
	assert.Equal(t, 3, state.TurnsWithoutProgress)
}

func TestProcessTurn_AttachmentsBecomeEvidence(t *testing.T) {
	store := newMemStore()
	c, _ := newInvestigatingCase(t)
	store.put(c)

	client := &scriptedLLM{responses: []string{`{"reply": "thanks, reading the log"}`}}
	e := newTestEngine(store, client, nil)

	_, err := e.ProcessTurn(context.Background(), "case-1", "user-1", "log attached",
		[]models.Attachment{{Filename: "app.log", ContentType: "text/plain", Summary: "timeout errors"}})
	require.NoError(t, err)

	saved, _ := store.GetCase(context.Background(), "case-1")
	state, _ := LoadState(saved)
	require.Len(t, state.Evidence, 1)
	// Symptom is verified, root cause is not: uploads are causal.
	assert.Equal(t, investigation.EvidenceCausal, state.Evidence[0].Category)
	assert.Equal(t, "file_upload", state.Evidence[0].SourceType)
	assert.Equal(t, "timeout errors", state.Evidence[0].ContentSummary)
}

func TestProcessTurn_Consulting(t *testing.T) {
	store := newMemStore()
	c := &models.Case{
		ID:      "case-2",
		OwnerID: "user-1",
		Title:   "Slow dashboard",
		Status:  models.CaseConsulting,
	}
	store.put(c)

	client := &scriptedLLM{responses: []string{`{
		"reply": "Tell me more about when it started.",
		"problem_statement": "dashboard p99 above 5s",
		"quick_wins": ["restart cache"],
		"temporal_state": "ongoing",
		"urgency_level": "high",
		"ready_to_investigate": false
	}`}}
	e := newTestEngine(store, client, nil)

	result, err := e.ProcessTurn(context.Background(), "case-2", "user-1", "dashboard is crawling", nil)
	require.NoError(t, err)
	assert.False(t, result.ReadyToInvestigate)

	saved, _ := store.GetCase(context.Background(), "case-2")
	assert.Equal(t, models.CaseConsulting, saved.Status)
	state, err := LoadState(saved)
	require.NoError(t, err)
	require.NotNil(t, state.ConsultingData)
	assert.Equal(t, "dashboard p99 above 5s", state.ConsultingData.ProblemStatement)
	assert.Equal(t, investigation.TemporalOngoing, state.ConsultingData.TemporalState)
	assert.Equal(t, investigation.UrgencyHigh, state.ConsultingData.UrgencyLevel)
	assert.Equal(t, []string{"restart cache"}, state.ConsultingData.QuickWins)
}

func TestProcessTurn_ConsultingCommitsInvestigation(t *testing.T) {
	store := newMemStore()
	c := &models.Case{
		ID:       "case-2",
		OwnerID:  "user-1",
		Title:    "Checkout timeouts",
		Status:   models.CaseConsulting,
		Priority: models.PriorityCritical,
	}
	store.put(c)

	client := &scriptedLLM{responses: []string{`{
		"reply": "This is an active critical incident. Starting the investigation.",
		"problem_statement": "database timeouts on /checkout",
		"temporal_state": "ongoing",
		"urgency_level": "critical",
		"ready_to_investigate": true
	}`}}
	events := &capturedEvents{}
	e := newTestEngine(store, client, events)

	result, err := e.ProcessTurn(context.Background(), "case-2", "user-1", "database timeouts on /checkout", nil)
	require.NoError(t, err)

	assert.True(t, result.InvestigationStarted)
	assert.Equal(t, 1, result.TurnNumber)
	assert.Equal(t, investigation.PhaseIntake, result.Phase)

	saved, _ := store.GetCase(context.Background(), "case-2")
	assert.Equal(t, models.CaseInvestigating, saved.Status)

	state, err := LoadState(saved)
	require.NoError(t, err)
	assert.NotEmpty(t, state.InvestigationID)
	assert.Equal(t, 1, state.CurrentTurn)
	assert.Equal(t, investigation.StrategyMitigationFirst, state.Strategy)
	assert.Equal(t, "database timeouts on /checkout", state.AnomalyFrame.ProblemStatement)
	require.NotNil(t, state.ConsultingData)
	require.Len(t, state.TurnHistory, 1)

	require.Len(t, events.events, 1)
	assert.Equal(t, 1, events.events[0].TurnNumber)

	t.Run("user-choice cell needs the explicit start", func(t *testing.T) {
		store := newMemStore()
		store.put(&models.Case{ID: "case-3", OwnerID: "user-1", Status: models.CaseConsulting})
		client := &scriptedLLM{responses: []string{`{
			"reply": "We could investigate this one properly whenever you like.",
			"temporal_state": "ongoing",
			"urgency_level": "low",
			"ready_to_investigate": true
		}`}}
		e := newTestEngine(store, client, nil)

		result, err := e.ProcessTurn(context.Background(), "case-3", "user-1", "minor glitch last week", nil)
		require.NoError(t, err)
		assert.True(t, result.ReadyToInvestigate)
		assert.False(t, result.InvestigationStarted)

		saved, _ := store.GetCase(context.Background(), "case-3")
		assert.Equal(t, models.CaseConsulting, saved.Status)
	})
}

func TestProcessTurn_ReadOnlyStatuses(t *testing.T) {
	store := newMemStore()
	c, state := newInvestigatingCase(t)
	c.Status = models.CaseResolved
	require.NoError(t, SaveState(c, state))
	store.put(c)

	client := &scriptedLLM{responses: []string{"The root cause was pool exhaustion after the deploy."}}
	e := newTestEngine(store, client, nil)

	result, err := e.ProcessTurn(context.Background(), "case-1", "user-1", "remind me what happened?", nil)
	require.NoError(t, err)
	assert.Contains(t, result.Reply, "pool exhaustion")

	// Investigation state is untouched by follow-up turns.
	saved, _ := store.GetCase(context.Background(), "case-1")
	got, _ := LoadState(saved)
	assert.Equal(t, 3, got.CurrentTurn)
	assert.Empty(t, got.TurnHistory)
}

func TestAcknowledgeDegraded(t *testing.T) {
	store := newMemStore()
	c, state := newInvestigatingCase(t)
	state.Degraded = &investigation.DegradedMode{
		Type:          investigation.DegradedNoProgress,
		Reason:        "no progress for 3 turns",
		EnteredAtTurn: 3,
	}
	state.TurnsWithoutProgress = 3
	require.NoError(t, SaveState(c, state))
	store.put(c)

	e := newTestEngine(store, &scriptedLLM{}, nil)

	require.NoError(t, e.AcknowledgeDegraded(context.Background(), "case-1"))

	saved, _ := store.GetCase(context.Background(), "case-1")
	got, _ := LoadState(saved)
	assert.True(t, got.Degraded.UserAcknowledged)
	assert.Equal(t, 0, got.TurnsWithoutProgress)

	t.Run("no degraded mode to acknowledge", func(t *testing.T) {
		c2 := &models.Case{ID: "case-3", Status: models.CaseInvestigating}
		store.put(c2)
		err := e.AcknowledgeDegraded(context.Background(), "case-3")
		require.ErrorIs(t, err, investigation.ErrNotFound)
	})
}

func TestProcessTurn_UnknownCase(t *testing.T) {
	e := newTestEngine(newMemStore(), &scriptedLLM{}, nil)
	_, err := e.ProcessTurn(context.Background(), "missing", "user-1", "hello", nil)
	require.ErrorIs(t, err, investigation.ErrNotFound)
}
