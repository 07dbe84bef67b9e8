package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/models"
	"github.com/google/uuid"
)

// CaseService manages case lifecycle: creation, listing, manual status
// transitions, and soft deletion.
type CaseService struct {
	repo     CaseRepository
	statuses *investigation.StatusMachine
	logger   *slog.Logger
}

// NewCaseService creates a CaseService.
func NewCaseService(repo CaseRepository, logger *slog.Logger) *CaseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CaseService{
		repo:     repo,
		statuses: investigation.NewStatusMachine(nil),
		logger:   logger,
	}
}

// CreateCase opens a new case in consulting status.
func (s *CaseService) CreateCase(ctx context.Context, userID string, req models.CreateCaseRequest) (*models.Case, error) {
	if userID == "" {
		return nil, NewValidationError("owner_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	switch priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityCritical:
	default:
		return nil, NewValidationError("priority", fmt.Sprintf("unknown priority %q", priority))
	}

	now := time.Now()
	c := &models.Case{
		ID:          uuid.New().String(),
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.CaseConsulting,
		Priority:    priority,
		Tags:        req.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateCase(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}
	s.logger.Info("Case created", "case_id", c.ID, "owner_id", userID, "priority", priority)
	return c, nil
}

// GetCase loads a case the user owns.
func (s *CaseService) GetCase(ctx context.Context, caseID, userID string) (*models.Case, error) {
	c, err := s.repo.GetCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != userID {
		return nil, fmt.Errorf("case %s: %w", caseID, ErrForbidden)
	}
	return c, nil
}

// ListCases returns the user's cases, filtered and paginated.
func (s *CaseService) ListCases(ctx context.Context, userID string, filters models.CaseFilters) (*models.CaseListResponse, error) {
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 20
	}
	return s.repo.ListCases(ctx, userID, filters)
}

// UpdateCase changes the mutable descriptive fields.
func (s *CaseService) UpdateCase(ctx context.Context, caseID, userID string, title, description string, tags []string) (*models.Case, error) {
	c, err := s.GetCase(ctx, caseID, userID)
	if err != nil {
		return nil, err
	}
	if title != "" {
		c.Title = title
	}
	if description != "" {
		c.Description = description
	}
	if tags != nil {
		c.Tags = tags
	}
	c.UpdatedAt = time.Now()
	if err := s.repo.SaveCase(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update case: %w", err)
	}
	return c, nil
}

// CloseCase transitions the case to closed with a user-supplied reason.
// Allowed from consulting and investigating.
func (s *CaseService) CloseCase(ctx context.Context, caseID, userID, reason string) (*models.Case, error) {
	c, err := s.GetCase(ctx, caseID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.statuses.Transition(c, models.CaseClosed, userID, false, reason); err != nil {
		return nil, err
	}
	if err := s.repo.SaveCase(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to persist closed case: %w", err)
	}
	s.logger.Info("Case closed", "case_id", caseID, "reason", reason)
	return c, nil
}

// ResolveCase transitions the case to resolved manually. The usual path
// is automatic resolution by the engine; this covers the user declaring
// the incident fixed out of band.
func (s *CaseService) ResolveCase(ctx context.Context, caseID, userID, reason string) (*models.Case, error) {
	c, err := s.GetCase(ctx, caseID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.statuses.Transition(c, models.CaseResolved, userID, false, reason); err != nil {
		return nil, err
	}
	if err := s.repo.SaveCase(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to persist resolved case: %w", err)
	}
	return c, nil
}

// DeleteCase soft-deletes a case. Terminal cases only; an active
// investigation must be closed first.
func (s *CaseService) DeleteCase(ctx context.Context, caseID, userID string) error {
	c, err := s.GetCase(ctx, caseID, userID)
	if err != nil {
		return err
	}
	if !c.Status.Terminal() {
		return fmt.Errorf("case %s is %s: %w", caseID, c.Status, ErrInvalidStatus)
	}
	if err := s.repo.DeleteCase(ctx, caseID); err != nil {
		return fmt.Errorf("failed to delete case: %w", err)
	}
	s.logger.Info("Case soft-deleted", "case_id", caseID)
	return nil
}

// Transcript returns the most recent transcript entries.
func (s *CaseService) Transcript(ctx context.Context, caseID, userID string, limit int) ([]*models.CaseMessage, error) {
	if _, err := s.GetCase(ctx, caseID, userID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.ListMessages(ctx, caseID, limit)
}
