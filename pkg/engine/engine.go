// Package engine implements per-turn orchestration: it loads a case,
// drives the model, folds the structured reply into investigation
// state, and persists the result atomically at end of turn.
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/llm"
	"github.com/caseops/inquest/pkg/models"
	"github.com/caseops/inquest/pkg/prompt"
	"github.com/google/uuid"
)

// transcriptLimit bounds how many recent messages feed the prompt.
const transcriptLimit = 20

// Engine is the turn processor. One Engine serves all cases; per-case
// serialisation happens through the internal lock table.
type Engine struct {
	store    CaseStore
	llm      llm.Client
	events   EventPublisher
	settings investigation.Settings

	prompts     *prompt.Builder
	statuses    *investigation.StatusMachine
	hypotheses  *investigation.HypothesisManager
	ooda        *investigation.OODAController
	phases      *investigation.PhaseOrchestrator
	memory      *investigation.MemoryManager
	conclusions *investigation.ConclusionGenerator

	locks  *caseLocks
	logger *slog.Logger
	now    func() time.Time
}

// New creates an Engine. events may be nil; summarizer may be nil, in
// which case memory compaction uses deterministic truncation.
func New(store CaseStore, llmClient llm.Client, events EventPublisher, summarizer investigation.Summarizer, settings investigation.Settings, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	hm := investigation.NewHypothesisManager(settings)
	ooda := investigation.NewOODAController(settings, hm)
	return &Engine{
		store:       store,
		llm:         llmClient,
		events:      events,
		settings:    settings,
		prompts:     prompt.NewBuilder(settings),
		statuses:    investigation.NewStatusMachine(nil),
		hypotheses:  hm,
		ooda:        ooda,
		phases:      investigation.NewPhaseOrchestrator(settings, ooda),
		memory:      investigation.NewMemoryManager(settings, summarizer),
		conclusions: investigation.NewConclusionGenerator(settings, hm),
		locks:       newCaseLocks(),
		logger:      logger,
		now:         time.Now,
	}
}

// TurnResult is what a processed turn returns to the caller.
type TurnResult struct {
	Reply      string                    `json:"reply"`
	TurnNumber int                       `json:"turn_number"`
	Phase      investigation.Phase       `json:"phase"`
	Outcome    investigation.TurnOutcome `json:"outcome"`
	// ReadyToInvestigate is the consulting-mode recommendation to start
	// the formal investigation.
	ReadyToInvestigate bool `json:"ready_to_investigate,omitempty"`
	// InvestigationStarted is set when a consulting turn committed the
	// case into a formal investigation.
	InvestigationStarted bool `json:"investigation_started,omitempty"`
	// AutoResolved is set when the turn completed the investigation and
	// the case transitioned to resolved automatically.
	AutoResolved bool `json:"auto_resolved,omitempty"`
	Degraded     bool `json:"degraded,omitempty"`
}

// LoadState decodes the investigation state embedded in case metadata.
// Returns nil when no investigation has been initialized.
func LoadState(c *models.Case) (*investigation.State, error) {
	raw, ok := c.Metadata[models.MetadataKeyInvestigation]
	if !ok || raw == nil {
		return nil, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode investigation metadata: %w", err)
	}
	var s investigation.State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode investigation state: %w", err)
	}
	return &s, nil
}

// SaveState encodes the state back into case metadata and marks it
// dirty for persistence.
func SaveState(c *models.Case, s *investigation.State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode investigation state: %w", err)
	}
	if c.Metadata == nil {
		c.Metadata = make(map[string]any)
	}
	c.Metadata[models.MetadataKeyInvestigation] = json.RawMessage(data)
	c.MetadataDirty = true
	return nil
}

// ProcessTurn runs one conversational turn on a case. The user message
// is persisted before the model call. When the model is unreachable the
// turn commits partially: the turn counter advance and any
// attachment-derived evidence are kept, and the turn is recorded as
// blocked.
func (e *Engine) ProcessTurn(ctx context.Context, caseID, userID, input string, attachments []models.Attachment) (*TurnResult, error) {
	unlock := e.locks.acquire(caseID)
	defer unlock()

	c, err := e.store.GetCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	logger := e.logger.With("case_id", caseID, "status", c.Status)

	state, err := LoadState(c)
	if err != nil {
		return nil, err
	}

	turnNumber := 0
	if c.Status == models.CaseInvestigating {
		if state == nil {
			return nil, &investigation.InvariantViolationError{
				Detail: fmt.Sprintf("case %s is investigating without investigation state", caseID),
			}
		}
		turnNumber = state.CurrentTurn + 1
	}

	transcript, err := e.store.ListMessages(ctx, caseID, transcriptLimit)
	if err != nil {
		logger.Warn("Failed to load transcript, continuing without it", "error", err)
	}

	userMsg := &models.CaseMessage{
		ID:         uuid.New().String(),
		CaseID:     caseID,
		Role:       models.MessageRoleUser,
		Content:    input,
		TurnNumber: turnNumber,
		CreatedAt:  e.now(),
	}
	if err := e.store.AppendMessage(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to persist user message: %w", err)
	}

	switch c.Status {
	case models.CaseInvestigating:
		return e.processInvestigatingTurn(ctx, c, state, transcript, userID, input, attachments, logger)
	case models.CaseConsulting:
		return e.processConsultingTurn(ctx, c, state, transcript, userID, input, attachments, logger)
	default:
		return e.processReadOnlyTurn(ctx, c, state, transcript, input, logger)
	}
}

func (e *Engine) processInvestigatingTurn(ctx context.Context, c *models.Case, state *investigation.State, transcript []*models.CaseMessage, userID, input string, attachments []models.Attachment, logger *slog.Logger) (*TurnResult, error) {
	// All mutations happen on a clone; the original state is only
	// replaced once the turn fully succeeds.
	clone, err := state.Clone()
	if err != nil {
		return nil, err
	}
	clone.CurrentTurn++
	logger = logger.With("turn", clone.CurrentTurn, "phase", clone.CurrentPhase.String())

	attachmentEvidenceIDs := captureAttachments(clone, attachments)

	var constraints *investigation.GenerationConstraints
	if anchoring := e.hypotheses.DetectAnchoring(clone); anchoring.Triggered {
		logger.Info("Anchoring detected, forcing alternative hypotheses", "reason", anchoring.Reason)
		gc := e.hypotheses.ForceAlternatives(clone)
		constraints = &gc
	}

	messages, schema := e.prompts.BuildTurnMessages(&prompt.TurnInput{
		Case:          c,
		State:         clone,
		MemoryContext: e.memory.Context(clone),
		Transcript:    transcript,
		UserInput:     input,
		Attachments:   attachments,
		Constraints:   constraints,
	})

	resp, err := e.llm.Chat(ctx, &llm.ChatRequest{
		CaseID:         c.ID,
		TurnNumber:     clone.CurrentTurn,
		Messages:       messages,
		ResponseSchema: schema,
	})
	if err != nil {
		return e.commitBlockedTurn(ctx, c, clone, attachmentEvidenceIDs, input, err, logger)
	}

	reply, err := prompt.ParseTurnReply(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("turn %d produced unusable output: %w", clone.CurrentTurn, err)
	}

	result := e.applyUpdates(clone, reply.Analysis, logger)
	result.NewEvidenceIDs = append(result.NewEvidenceIDs, attachmentEvidenceIDs...)

	e.hypotheses.ApplyDecay(clone)
	e.ooda.Advance(clone)

	outcome := result.PhaseOutcome
	reason := result.PhaseOutcomeReason
	if outcome == "" {
		if decision := e.ooda.ShouldContinue(clone); !decision.Continue {
			outcome = investigation.PhaseCompleted
			reason = decision.Reason
		}
	}
	if outcome != "" {
		transition := e.phases.NextPhase(clone, outcome, reason)
		if transition.Transitioned {
			logger.Info("Phase transition",
				"to", transition.Phase.String(),
				"looped_back", transition.LoopedBack,
				"reason", transition.Reason)
		}
	}

	progressMade := result.ProgressMade() || len(result.HypothesesUpdated) > 0
	if progressMade {
		clone.TurnsWithoutProgress = 0
	} else {
		clone.TurnsWithoutProgress++
	}
	if result.EvidenceBlocked {
		clone.BlockedEvidenceCount++
	} else if len(result.NewEvidenceIDs) > 0 {
		clone.BlockedEvidenceCount = 0
	}
	e.checkDegraded(clone, logger)

	wc := e.conclusions.Generate(clone)
	clone.WorkingConclusion = &wc

	record := investigation.TurnRecord{
		TurnNumber:          clone.CurrentTurn,
		Phase:               clone.CurrentPhase,
		UserInputSummary:    summarizeInput(input),
		AgentActionSummary:  result.ActionSummary,
		MilestonesCompleted: result.MilestonesCompleted,
		HypothesesUpdated:   append(result.NewHypothesisIDs, result.HypothesesUpdated...),
		EvidenceCollected:   result.NewEvidenceIDs,
		Outcome:             deriveOutcome(result),
		ProgressMade:        progressMade,
		RecordedAt:          e.now(),
	}
	clone.TurnHistory = append(clone.TurnHistory, record)
	e.memory.RecordTurn(clone, record)
	if e.memory.ShouldCompact(clone) {
		e.memory.Compact(ctx, clone)
	}

	autoResolved := false
	if clone.Progress.SolutionVerified {
		if err := e.statuses.Transition(c, models.CaseResolved, userID, true, "solution verified"); err == nil {
			autoResolved = true
			logger.Info("Case auto-resolved", "turn", clone.CurrentTurn)
		}
	}

	if err := e.persistTurn(ctx, c, clone, reply.Reply); err != nil {
		return nil, err
	}
	e.publishTurn(ctx, c, clone, record)

	return &TurnResult{
		Reply:        reply.Reply,
		TurnNumber:   clone.CurrentTurn,
		Phase:        clone.CurrentPhase,
		Outcome:      record.Outcome,
		AutoResolved: autoResolved,
		Degraded:     clone.Degraded != nil && !clone.Degraded.UserAcknowledged,
	}, nil
}

// llmUnavailableReply is the fixed assistant message for turns the
// model could not serve.
const llmUnavailableReply = "LLM unavailable. Your message and attachments were recorded; send another message to retry."

// commitBlockedTurn persists the partial turn left behind by a model
// failure: the turn counter advance and attachment-derived evidence are
// kept, no structured updates apply, and the turn is recorded as
// blocked.
func (e *Engine) commitBlockedTurn(ctx context.Context, c *models.Case, clone *investigation.State, evidenceIDs []string, input string, cause error, logger *slog.Logger) (*TurnResult, error) {
	record := investigation.TurnRecord{
		TurnNumber:         clone.CurrentTurn,
		Phase:              clone.CurrentPhase,
		UserInputSummary:   summarizeInput(input),
		AgentActionSummary: "model unavailable",
		EvidenceCollected:  evidenceIDs,
		Outcome:            investigation.OutcomeBlocked,
		RecordedAt:         e.now(),
	}
	clone.TurnHistory = append(clone.TurnHistory, record)
	e.memory.RecordTurn(clone, record)

	if err := e.persistTurn(ctx, c, clone, llmUnavailableReply); err != nil {
		return nil, err
	}
	e.publishTurn(ctx, c, clone, record)
	logger.Warn("Turn blocked, model unreachable", "turn", clone.CurrentTurn, "error", cause)

	return &TurnResult{
		Reply:      llmUnavailableReply,
		TurnNumber: clone.CurrentTurn,
		Phase:      clone.CurrentPhase,
		Outcome:    investigation.OutcomeBlocked,
		Degraded:   clone.Degraded != nil && !clone.Degraded.UserAcknowledged,
	}, nil
}

func (e *Engine) processConsultingTurn(ctx context.Context, c *models.Case, state *investigation.State, transcript []*models.CaseMessage, userID, input string, attachments []models.Attachment, logger *slog.Logger) (*TurnResult, error) {
	if state == nil {
		state = &investigation.State{
			StartedAt:      e.now(),
			ConsultingData: &investigation.ConsultingData{},
		}
	}
	clone, err := state.Clone()
	if err != nil {
		return nil, err
	}
	if clone.ConsultingData == nil {
		clone.ConsultingData = &investigation.ConsultingData{}
	}

	messages, schema := e.prompts.BuildTurnMessages(&prompt.TurnInput{
		Case:        c,
		State:       clone,
		Transcript:  transcript,
		UserInput:   input,
		Attachments: attachments,
	})
	resp, err := e.llm.Chat(ctx, &llm.ChatRequest{
		CaseID:         c.ID,
		Messages:       messages,
		ResponseSchema: schema,
	})
	if err != nil {
		return nil, fmt.Errorf("consulting turn failed: %w", err)
	}
	reply, err := prompt.ParseConsultingReply(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("consulting turn produced unusable output: %w", err)
	}

	cd := clone.ConsultingData
	if reply.ProblemStatement != "" {
		cd.ProblemStatement = reply.ProblemStatement
	}
	if len(reply.QuickWins) > 0 {
		cd.QuickWins = append(cd.QuickWins, reply.QuickWins...)
	}
	switch investigation.TemporalState(reply.TemporalState) {
	case investigation.TemporalOngoing, investigation.TemporalHistorical:
		cd.TemporalState = investigation.TemporalState(reply.TemporalState)
	}
	switch investigation.UrgencyLevel(reply.UrgencyLevel) {
	case investigation.UrgencyLow, investigation.UrgencyMedium, investigation.UrgencyHigh, investigation.UrgencyCritical:
		cd.UrgencyLevel = investigation.UrgencyLevel(reply.UrgencyLevel)
	}

	if reply.ReadyToInvestigate {
		temporal := cd.TemporalState
		if temporal == "" {
			temporal = investigation.TemporalOngoing
		}
		urgency := cd.UrgencyLevel
		if urgency == "" {
			urgency = investigation.UrgencyMedium
		}
		// The user-choice cell of the strategy matrix cannot commit on
		// its own; the explicit initialize call resolves the choice.
		if strategy := investigation.ResolveStrategy(temporal, urgency); strategy != investigation.StrategyUserChoice {
			return e.commitToInvestigation(ctx, c, cd, temporal, urgency, strategy, userID, input, reply.Reply, logger)
		}
	}

	if err := e.persistTurn(ctx, c, clone, reply.Reply); err != nil {
		return nil, err
	}
	logger.Info("Consulting turn processed", "ready_to_investigate", reply.ReadyToInvestigate)

	return &TurnResult{
		Reply:              reply.Reply,
		ReadyToInvestigate: reply.ReadyToInvestigate,
	}, nil
}

// commitToInvestigation performs the consulting commit: the case moves
// to investigating through the status machine and the investigation
// state is seeded from the consulting data, all within the same turn.
func (e *Engine) commitToInvestigation(ctx context.Context, c *models.Case, cd *investigation.ConsultingData, temporal investigation.TemporalState, urgency investigation.UrgencyLevel, strategy investigation.Strategy, userID, input, replyText string, logger *slog.Logger) (*TurnResult, error) {
	if err := e.statuses.Transition(c, models.CaseInvestigating, userID, false, "committed to investigation"); err != nil {
		return nil, err
	}

	state := investigation.SeedState(cd, temporal, urgency, strategy, e.now())
	state.CurrentTurn = 1
	record := investigation.TurnRecord{
		TurnNumber:         1,
		Phase:              state.CurrentPhase,
		UserInputSummary:   summarizeInput(input),
		AgentActionSummary: "committed to formal investigation",
		Outcome:            investigation.OutcomeProgress,
		ProgressMade:       true,
		RecordedAt:         e.now(),
	}
	state.TurnHistory = append(state.TurnHistory, record)
	e.memory.RecordTurn(state, record)

	if err := e.persistTurn(ctx, c, state, replyText); err != nil {
		return nil, err
	}
	e.publishTurn(ctx, c, state, record)
	logger.Info("Investigation committed from consulting turn",
		"investigation_id", state.InvestigationID, "strategy", strategy)

	return &TurnResult{
		Reply:                replyText,
		TurnNumber:           1,
		Phase:                state.CurrentPhase,
		Outcome:              record.Outcome,
		ReadyToInvestigate:   true,
		InvestigationStarted: true,
	}, nil
}

func (e *Engine) processReadOnlyTurn(ctx context.Context, c *models.Case, state *investigation.State, transcript []*models.CaseMessage, input string, logger *slog.Logger) (*TurnResult, error) {
	var memoryContext string
	if state != nil {
		memoryContext = e.memory.Context(state)
	}
	messages, _ := e.prompts.BuildTurnMessages(&prompt.TurnInput{
		Case:          c,
		State:         state,
		MemoryContext: memoryContext,
		Transcript:    transcript,
		UserInput:     input,
	})
	resp, err := e.llm.Chat(ctx, &llm.ChatRequest{CaseID: c.ID, Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("follow-up turn failed: %w", err)
	}

	assistantMsg := &models.CaseMessage{
		ID:        uuid.New().String(),
		CaseID:    c.ID,
		Role:      models.MessageRoleAssistant,
		Content:   resp.Content,
		CreatedAt: e.now(),
	}
	if err := e.store.AppendMessage(ctx, assistantMsg); err != nil {
		logger.Error("Failed to persist assistant message", "error", err)
	}
	return &TurnResult{Reply: resp.Content}, nil
}

// checkDegraded applies the state-level degraded triggers. The phase
// orchestrator owns the once-per-acknowledgement semantics.
func (e *Engine) checkDegraded(s *investigation.State, logger *slog.Logger) {
	switch {
	case s.TurnsWithoutProgress >= e.settings.DegradedTurnsWithoutProgress:
		e.phases.EnterDegraded(s, investigation.DegradedNoProgress,
			fmt.Sprintf("no progress for %d turns", s.TurnsWithoutProgress))
	case s.BlockedEvidenceCount >= e.settings.DegradedBlockedEvidence:
		e.phases.EnterDegraded(s, investigation.DegradedEvidenceBlocked,
			fmt.Sprintf("%d evidence requests could not be satisfied", s.BlockedEvidenceCount))
	case len(s.Hypotheses) > 0 && len(s.ActiveHypotheses()) == 0 && e.hypotheses.GetValidated(s) == nil:
		e.phases.EnterDegraded(s, investigation.DegradedHypothesesDead,
			"every hypothesis is refuted or retired")
	}
	if s.Degraded != nil && !s.Degraded.UserAcknowledged {
		logger.Warn("Investigation in degraded mode",
			"type", s.Degraded.Type, "reason", s.Degraded.Reason)
	}
}

// persistTurn writes state and the assistant message. State goes first;
// a failed message append is logged but does not fail the turn.
func (e *Engine) persistTurn(ctx context.Context, c *models.Case, s *investigation.State, replyText string) error {
	if err := SaveState(c, s); err != nil {
		return err
	}
	c.UpdatedAt = e.now()
	if err := e.store.SaveCase(ctx, c); err != nil {
		return fmt.Errorf("failed to persist case: %w", err)
	}
	assistantMsg := &models.CaseMessage{
		ID:         uuid.New().String(),
		CaseID:     c.ID,
		Role:       models.MessageRoleAssistant,
		Content:    replyText,
		TurnNumber: s.CurrentTurn,
		CreatedAt:  e.now(),
	}
	if err := e.store.AppendMessage(ctx, assistantMsg); err != nil {
		e.logger.Error("Failed to persist assistant message", "case_id", c.ID, "error", err)
	}
	return nil
}

func (e *Engine) publishTurn(ctx context.Context, c *models.Case, s *investigation.State, record investigation.TurnRecord) {
	if e.events == nil {
		return
	}
	event := TurnEvent{
		CaseID:     c.ID,
		TurnNumber: record.TurnNumber,
		Phase:      s.CurrentPhase.String(),
		Outcome:    string(record.Outcome),
		Degraded:   s.Degraded != nil && !s.Degraded.UserAcknowledged,
		OccurredAt: e.now(),
	}
	if err := e.events.PublishTurnCompleted(ctx, event); err != nil {
		e.logger.Warn("Failed to publish turn event", "case_id", c.ID, "error", err)
	}
}

// deriveOutcome ranks what the turn accomplished. Validation and
// refutation dominate; a blocked turn only counts as blocked when
// nothing else happened.
func deriveOutcome(r *applyResult) investigation.TurnOutcome {
	switch {
	case r.ValidatedThisTurn:
		return investigation.OutcomeHypothesisValidated
	case r.RefutedThisTurn:
		return investigation.OutcomeHypothesisRefuted
	case len(r.MilestonesCompleted) > 0 || len(r.NewHypothesisIDs) > 0 || len(r.HypothesesUpdated) > 0:
		return investigation.OutcomeProgress
	case len(r.NewEvidenceIDs) > 0:
		return investigation.OutcomeEvidenceCollected
	case r.EvidenceBlocked:
		return investigation.OutcomeBlocked
	default:
		return investigation.OutcomeConversation
	}
}

// summarizeInput clips the user message for the turn record, trimming
// on a rune boundary so persisted summaries stay valid UTF-8.
func summarizeInput(input string) string {
	const max = 200
	if len(input) <= max {
		return input
	}
	cut := max - 1
	for cut > 0 && !utf8.RuneStart(input[cut]) {
		cut--
	}
	return input[:cut] + "…"
}
