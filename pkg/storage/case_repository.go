// Package storage implements the persistence ports on top of the
// generated ent client, mapping between ent entities and the plain
// model types the core consumes.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/caseops/inquest/ent"
	"github.com/caseops/inquest/ent/casemessage"
	"github.com/caseops/inquest/ent/caserecord"
	"github.com/caseops/inquest/pkg/models"
	"github.com/caseops/inquest/pkg/services"
)

// EntCaseRepository implements services.CaseRepository on PostgreSQL.
type EntCaseRepository struct {
	client *ent.Client
}

// NewEntCaseRepository creates an ent-backed case repository.
func NewEntCaseRepository(client *ent.Client) *EntCaseRepository {
	return &EntCaseRepository{client: client}
}

// CreateCase inserts a new case row.
func (r *EntCaseRepository) CreateCase(ctx context.Context, c *models.Case) error {
	create := r.client.CaseRecord.Create().
		SetID(c.ID).
		SetOwnerID(c.OwnerID).
		SetTitle(c.Title).
		SetDescription(c.Description).
		SetStatus(caserecord.Status(c.Status)).
		SetPriority(caserecord.Priority(c.Priority)).
		SetCreatedAt(c.CreatedAt).
		SetUpdatedAt(c.UpdatedAt)
	if len(c.Tags) > 0 {
		create.SetTags(c.Tags)
	}
	if len(c.Metadata) > 0 {
		create.SetMetadata(c.Metadata)
	}
	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("case %s: %w", c.ID, services.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create case: %w", err)
	}
	return nil
}

// GetCase loads a case by id. Soft-deleted cases are treated as absent.
func (r *EntCaseRepository) GetCase(ctx context.Context, id string) (*models.Case, error) {
	e, err := r.client.CaseRecord.Query().
		Where(caserecord.IDEQ(id), caserecord.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("case %s: %w", id, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load case: %w", err)
	}
	return toModelCase(e), nil
}

// SaveCase persists mutable case fields. The metadata JSON column is
// only rewritten when the dirty flag is set, so ordinary field updates
// do not race the engine's state document.
func (r *EntCaseRepository) SaveCase(ctx context.Context, c *models.Case) error {
	update := r.client.CaseRecord.UpdateOneID(c.ID).
		SetTitle(c.Title).
		SetDescription(c.Description).
		SetStatus(caserecord.Status(c.Status)).
		SetPriority(caserecord.Priority(c.Priority)).
		SetUpdatedAt(time.Now()).
		SetNillableResolvedAt(c.ResolvedAt).
		SetNillableClosedAt(c.ClosedAt)
	if c.Tags != nil {
		update.SetTags(c.Tags)
	}
	if c.ResolvedBy != "" {
		update.SetResolvedBy(c.ResolvedBy)
	}
	if c.ClosedBy != "" {
		update.SetClosedBy(c.ClosedBy)
	}
	if c.MetadataDirty {
		update.SetMetadata(c.Metadata)
	}
	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("case %s: %w", c.ID, services.ErrNotFound)
		}
		return fmt.Errorf("failed to save case: %w", err)
	}
	c.MetadataDirty = false
	return nil
}

// ListCases returns the owner's cases, filtered and paginated, newest
// first.
func (r *EntCaseRepository) ListCases(ctx context.Context, ownerID string, filters models.CaseFilters) (*models.CaseListResponse, error) {
	query := r.client.CaseRecord.Query().
		Where(caserecord.OwnerIDEQ(ownerID))
	if !filters.IncludeDeleted {
		query = query.Where(caserecord.DeletedAtIsNil())
	}
	if filters.Status != "" {
		query = query.Where(caserecord.StatusEQ(caserecord.Status(filters.Status)))
	}
	if filters.Priority != "" {
		query = query.Where(caserecord.PriorityEQ(caserecord.Priority(filters.Priority)))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(caserecord.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(caserecord.CreatedAtLT(*filters.CreatedBefore))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cases: %w", err)
	}

	rows, err := query.
		Order(ent.Desc(caserecord.FieldCreatedAt)).
		Offset(filters.Offset).
		Limit(filters.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}

	resp := &models.CaseListResponse{
		TotalCount: total,
		Limit:      filters.Limit,
		Offset:     filters.Offset,
	}
	for _, e := range rows {
		c := toModelCase(e)
		// Tag filtering happens after the fetch; tags live in a JSON
		// column without a dedicated index.
		if filters.Tag != "" && !hasTag(c.Tags, filters.Tag) {
			resp.TotalCount--
			continue
		}
		resp.Cases = append(resp.Cases, c)
	}
	return resp, nil
}

// DeleteCase soft-deletes a case.
func (r *EntCaseRepository) DeleteCase(ctx context.Context, id string) error {
	err := r.client.CaseRecord.UpdateOneID(id).
		SetDeletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("case %s: %w", id, services.ErrNotFound)
		}
		return fmt.Errorf("failed to delete case: %w", err)
	}
	return nil
}

// AppendMessage stores one transcript entry.
func (r *EntCaseRepository) AppendMessage(ctx context.Context, msg *models.CaseMessage) error {
	_, err := r.client.CaseMessage.Create().
		SetID(msg.ID).
		SetCaseID(msg.CaseID).
		SetRole(casemessage.Role(msg.Role)).
		SetContent(msg.Content).
		SetTurnNumber(msg.TurnNumber).
		SetCreatedAt(msg.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// ListMessages returns the newest limit transcript entries in
// chronological order.
func (r *EntCaseRepository) ListMessages(ctx context.Context, caseID string, limit int) ([]*models.CaseMessage, error) {
	rows, err := r.client.CaseMessage.Query().
		Where(casemessage.CaseIDEQ(caseID)).
		Order(ent.Desc(casemessage.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	out := make([]*models.CaseMessage, len(rows))
	for i, e := range rows {
		out[len(rows)-1-i] = &models.CaseMessage{
			ID:         e.ID,
			CaseID:     e.CaseID,
			Role:       string(e.Role),
			Content:    e.Content,
			TurnNumber: e.TurnNumber,
			CreatedAt:  e.CreatedAt,
		}
	}
	return out, nil
}

// SoftDeleteOldCases soft-deletes terminal cases untouched for longer
// than the retention window. Returns the number of rows affected.
func (r *EntCaseRepository) SoftDeleteOldCases(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().Add(-retention)
	n, err := r.client.CaseRecord.Update().
		Where(
			caserecord.StatusIn(caserecord.StatusResolved, caserecord.StatusClosed),
			caserecord.UpdatedAtLT(cutoff),
			caserecord.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft-delete old cases: %w", err)
	}
	return n, nil
}

func toModelCase(e *ent.CaseRecord) *models.Case {
	c := &models.Case{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Title:       e.Title,
		Description: e.Description,
		Status:      models.CaseStatus(e.Status),
		Priority:    models.CasePriority(e.Priority),
		Tags:        e.Tags,
		Metadata:    e.Metadata,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		ResolvedAt:  e.ResolvedAt,
		ClosedAt:    e.ClosedAt,
		DeletedAt:   e.DeletedAt,
	}
	if e.ResolvedBy != nil {
		c.ResolvedBy = *e.ResolvedBy
	}
	if e.ClosedBy != nil {
		c.ClosedBy = *e.ClosedBy
	}
	return c
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
