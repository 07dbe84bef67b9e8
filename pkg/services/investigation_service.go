package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/caseops/inquest/pkg/engine"
	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/models"
	"github.com/google/uuid"
)

// InvestigationService exposes the investigation lifecycle: starting
// the formal investigation, processing turns, manual state edits, and
// progress reporting.
type InvestigationService struct {
	repo        CaseRepository
	engine      *engine.Engine
	settings    investigation.Settings
	statuses    *investigation.StatusMachine
	hypotheses  *investigation.HypothesisManager
	conclusions *investigation.ConclusionGenerator
	logger      *slog.Logger
}

// NewInvestigationService creates an InvestigationService.
func NewInvestigationService(repo CaseRepository, eng *engine.Engine, settings investigation.Settings, logger *slog.Logger) *InvestigationService {
	if logger == nil {
		logger = slog.Default()
	}
	hm := investigation.NewHypothesisManager(settings)
	return &InvestigationService{
		repo:        repo,
		engine:      eng,
		settings:    settings,
		statuses:    investigation.NewStatusMachine(nil),
		hypotheses:  hm,
		conclusions: investigation.NewConclusionGenerator(settings, hm),
		logger:      logger,
	}
}

// InitializeRequest carries the parameters for starting a formal
// investigation.
type InitializeRequest struct {
	// StrategyChoice resolves the user-choice cell of the strategy
	// matrix. Ignored when the matrix decides on its own.
	StrategyChoice investigation.Strategy `json:"strategy_choice,omitempty"`
}

// StrategyFor applies the strategy matrix: an ongoing incident at high
// urgency mitigates first; a historical incident at low urgency goes
// straight for the root cause; every other combination is the user's
// call.
func StrategyFor(temporal investigation.TemporalState, urgency investigation.UrgencyLevel) investigation.Strategy {
	return investigation.ResolveStrategy(temporal, urgency)
}

// Initialize transitions a consulting case into a formal investigation:
// resolves the strategy, builds the initial investigation state from
// the consulting data, and moves the case to investigating.
func (s *InvestigationService) Initialize(ctx context.Context, caseID, userID string, req InitializeRequest) (*investigation.State, error) {
	var state *investigation.State
	err := s.engine.Locked(caseID, func() error {
		c, err := s.ownedCase(ctx, caseID, userID)
		if err != nil {
			return err
		}
		if c.Status != models.CaseConsulting {
			return fmt.Errorf("case %s is %s: %w", caseID, c.Status, ErrInvalidStatus)
		}

		prior, err := engine.LoadState(c)
		if err != nil {
			return err
		}
		cd := &investigation.ConsultingData{}
		if prior != nil && prior.ConsultingData != nil {
			cd = prior.ConsultingData
		}
		temporal := cd.TemporalState
		if temporal == "" {
			temporal = investigation.TemporalOngoing
		}
		urgency := cd.UrgencyLevel
		if urgency == "" {
			urgency = investigation.UrgencyMedium
		}

		strategy := StrategyFor(temporal, urgency)
		if strategy == investigation.StrategyUserChoice {
			switch req.StrategyChoice {
			case investigation.StrategyMitigationFirst, investigation.StrategyRootCause:
				strategy = req.StrategyChoice
			default:
				return NewValidationError("strategy_choice",
					"required: choose mitigation_first or root_cause for this incident")
			}
		}

		state = investigation.SeedState(cd, temporal, urgency, strategy, time.Now())

		if err := s.statuses.Transition(c, models.CaseInvestigating, userID, false, "investigation started"); err != nil {
			return err
		}
		if err := engine.SaveState(c, state); err != nil {
			return err
		}
		if err := s.repo.SaveCase(ctx, c); err != nil {
			return fmt.Errorf("failed to persist investigation start: %w", err)
		}
		s.logger.Info("Investigation initialized",
			"case_id", caseID,
			"investigation_id", state.InvestigationID,
			"strategy", strategy)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// ProcessTurn runs one conversational turn after an ownership check.
func (s *InvestigationService) ProcessTurn(ctx context.Context, caseID, userID, input string, attachments []models.Attachment) (*engine.TurnResult, error) {
	if input == "" {
		return nil, NewValidationError("input", "required")
	}
	if _, err := s.ownedCase(ctx, caseID, userID); err != nil {
		return nil, err
	}
	return s.engine.ProcessTurn(ctx, caseID, userID, input, attachments)
}

// AddHypothesis records a user-proposed hypothesis.
func (s *InvestigationService) AddHypothesis(ctx context.Context, caseID, userID, statement string, category investigation.HypothesisCategory, likelihood float64) (*investigation.Hypothesis, error) {
	if statement == "" {
		return nil, NewValidationError("statement", "required")
	}
	var captured investigation.Hypothesis
	err := s.mutateState(ctx, caseID, userID, func(st *investigation.State) error {
		h := s.hypotheses.Capture(st, statement, category, likelihood, investigation.GenerationSystematic)
		s.hypotheses.Activate(h)
		captured = *h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &captured, nil
}

// RetireHypothesis retires or supersedes a hypothesis at the user's
// request. Settled hypotheses cannot be changed.
func (s *InvestigationService) RetireHypothesis(ctx context.Context, caseID, userID, hypothesisID string, superseded bool) error {
	return s.mutateState(ctx, caseID, userID, func(st *investigation.State) error {
		h := st.HypothesisByID(hypothesisID)
		if h == nil {
			return fmt.Errorf("hypothesis %s: %w", hypothesisID, ErrNotFound)
		}
		if h.Status.Terminal() {
			return fmt.Errorf("hypothesis %s is %s: %w", hypothesisID, h.Status, ErrInvalidStatus)
		}
		if superseded {
			h.Status = investigation.HypothesisSuperseded
		} else {
			h.Status = investigation.HypothesisRetired
		}
		return nil
	})
}

// AddEvidence records a user-supplied piece of evidence, optionally
// linked to a hypothesis.
func (s *InvestigationService) AddEvidence(ctx context.Context, caseID, userID, description string, category investigation.EvidenceCategory, hypothesisID string, supports bool) (*investigation.Evidence, error) {
	if description == "" {
		return nil, NewValidationError("description", "required")
	}
	var added investigation.Evidence
	err := s.mutateState(ctx, caseID, userID, func(st *investigation.State) error {
		ev := investigation.Evidence{
			ID:              uuid.New().String(),
			Description:     description,
			Category:        category,
			SourceType:      "user",
			CollectedAtTurn: st.CurrentTurn,
		}
		st.Evidence = append(st.Evidence, ev)
		if hypothesisID != "" {
			if err := s.hypotheses.LinkEvidence(st, hypothesisID, ev.ID, supports); err != nil {
				return err
			}
		}
		added = *st.EvidenceByID(ev.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

// ProgressReport is the progress API payload.
type ProgressReport struct {
	Phase             investigation.Phase              `json:"phase"`
	Turn              int                              `json:"turn"`
	Strategy          investigation.Strategy           `json:"strategy,omitempty"`
	Milestones        map[string]bool                  `json:"milestones"`
	Metrics           investigation.ProgressMetrics    `json:"metrics"`
	WorkingConclusion *investigation.WorkingConclusion `json:"working_conclusion,omitempty"`
	Degraded          *investigation.DegradedMode      `json:"degraded_mode,omitempty"`
	Loopbacks         int                              `json:"loopbacks"`
}

// GetProgress returns the current progress snapshot.
func (s *InvestigationService) GetProgress(ctx context.Context, caseID, userID string) (*ProgressReport, error) {
	c, err := s.ownedCase(ctx, caseID, userID)
	if err != nil {
		return nil, err
	}
	st, err := engine.LoadState(c)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("case %s has no investigation: %w", caseID, ErrNotFound)
	}

	milestones := make(map[string]bool, len(investigation.AllMilestones))
	for _, m := range investigation.AllMilestones {
		milestones[string(m)] = st.Progress.Done(m)
	}
	return &ProgressReport{
		Phase:             st.CurrentPhase,
		Turn:              st.CurrentTurn,
		Strategy:          st.Strategy,
		Milestones:        milestones,
		Metrics:           s.conclusions.Metrics(st),
		WorkingConclusion: st.WorkingConclusion,
		Degraded:          st.Degraded,
		Loopbacks:         st.Loopbacks.Count,
	}, nil
}

// GetState returns the raw investigation state for the owner.
func (s *InvestigationService) GetState(ctx context.Context, caseID, userID string) (*investigation.State, error) {
	c, err := s.ownedCase(ctx, caseID, userID)
	if err != nil {
		return nil, err
	}
	st, err := engine.LoadState(c)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("case %s has no investigation: %w", caseID, ErrNotFound)
	}
	return st, nil
}

// AcknowledgeDegraded marks degraded mode as seen by the user.
func (s *InvestigationService) AcknowledgeDegraded(ctx context.Context, caseID, userID string) error {
	if _, err := s.ownedCase(ctx, caseID, userID); err != nil {
		return err
	}
	return s.engine.AcknowledgeDegraded(ctx, caseID)
}

// ownedCase loads a case and enforces ownership.
func (s *InvestigationService) ownedCase(ctx context.Context, caseID, userID string) (*models.Case, error) {
	c, err := s.repo.GetCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != userID {
		return nil, fmt.Errorf("case %s: %w", caseID, ErrForbidden)
	}
	return c, nil
}

// mutateState applies fn to the investigation state under the per-case
// lock and persists the result. Only investigating cases accept manual
// state edits.
func (s *InvestigationService) mutateState(ctx context.Context, caseID, userID string, fn func(*investigation.State) error) error {
	return s.engine.Locked(caseID, func() error {
		c, err := s.ownedCase(ctx, caseID, userID)
		if err != nil {
			return err
		}
		if c.Status != models.CaseInvestigating {
			return fmt.Errorf("case %s is %s: %w", caseID, c.Status, ErrInvalidStatus)
		}
		st, err := engine.LoadState(c)
		if err != nil {
			return err
		}
		if st == nil {
			return fmt.Errorf("case %s has no investigation: %w", caseID, ErrNotFound)
		}
		if err := fn(st); err != nil {
			return err
		}
		if err := engine.SaveState(c, st); err != nil {
			return err
		}
		c.UpdatedAt = time.Now()
		if err := s.repo.SaveCase(ctx, c); err != nil {
			return fmt.Errorf("failed to persist state edit: %w", err)
		}
		return nil
	})
}
