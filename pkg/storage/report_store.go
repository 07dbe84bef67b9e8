package storage

import (
	"context"
	"fmt"

	"github.com/caseops/inquest/ent"
	"github.com/caseops/inquest/ent/casereport"
	"github.com/caseops/inquest/pkg/models"
	"github.com/caseops/inquest/pkg/report"
)

// EntReportStore implements report.Store on PostgreSQL.
type EntReportStore struct {
	client *ent.Client
}

// NewEntReportStore creates an ent-backed report store.
func NewEntReportStore(client *ent.Client) *EntReportStore {
	return &EntReportStore{client: client}
}

// CreateReport inserts a new report row.
func (s *EntReportStore) CreateReport(ctx context.Context, r *models.CaseReport) error {
	create := s.client.CaseReport.Create().
		SetID(r.ID).
		SetCaseID(r.CaseID).
		SetType(casereport.Type(r.Type)).
		SetTitle(r.Title).
		SetContent(r.Content).
		SetFormat(r.Format).
		SetStatus(casereport.Status(r.Status)).
		SetVersion(r.Version).
		SetIsCurrent(r.IsCurrent).
		SetLinkedToClosure(r.LinkedToClosure).
		SetCreatedAt(r.CreatedAt)
	if r.GeneratedAt != nil {
		create.SetGeneratedAt(*r.GeneratedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// UpdateReport rewrites the mutable report fields. The updated_at bump
// doubles as the worker heartbeat during generation.
func (s *EntReportStore) UpdateReport(ctx context.Context, r *models.CaseReport) error {
	update := s.client.CaseReport.UpdateOneID(r.ID).
		SetTitle(r.Title).
		SetContent(r.Content).
		SetStatus(casereport.Status(r.Status)).
		SetIsCurrent(r.IsCurrent).
		SetLinkedToClosure(r.LinkedToClosure).
		SetGenerationTimeMs(r.GenerationTimeMS)
	if r.ErrorMessage != "" {
		update.SetErrorMessage(r.ErrorMessage)
	}
	if r.GeneratedAt != nil {
		update.SetGeneratedAt(*r.GeneratedAt)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("report %s: %w", r.ID, report.ErrNotFound)
		}
		return fmt.Errorf("failed to update report: %w", err)
	}
	return nil
}

// GetReport loads one report by id.
func (s *EntReportStore) GetReport(ctx context.Context, id string) (*models.CaseReport, error) {
	e, err := s.client.CaseReport.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("report %s: %w", id, report.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	return toModelReport(e), nil
}

// ListReports returns the case's reports, optionally filtered by type,
// ordered by version ascending.
func (s *EntReportStore) ListReports(ctx context.Context, caseID string, reportType models.ReportType) ([]*models.CaseReport, error) {
	query := s.client.CaseReport.Query().
		Where(casereport.CaseIDEQ(caseID))
	if reportType != "" {
		query = query.Where(casereport.TypeEQ(casereport.Type(reportType)))
	}
	rows, err := query.Order(ent.Asc(casereport.FieldVersion)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	out := make([]*models.CaseReport, len(rows))
	for i, e := range rows {
		out[i] = toModelReport(e)
	}
	return out, nil
}

// DeleteReport removes a report row. Closure-link protection is
// enforced by the generator, not the store.
func (s *EntReportStore) DeleteReport(ctx context.Context, id string) error {
	if err := s.client.CaseReport.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("report %s: %w", id, report.ErrNotFound)
		}
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

func toModelReport(e *ent.CaseReport) *models.CaseReport {
	r := &models.CaseReport{
		ID:               e.ID,
		CaseID:           e.CaseID,
		Type:             models.ReportType(e.Type),
		Title:            e.Title,
		Content:          e.Content,
		Format:           e.Format,
		Status:           models.ReportStatus(e.Status),
		Version:          e.Version,
		IsCurrent:        e.IsCurrent,
		LinkedToClosure:  e.LinkedToClosure,
		GenerationTimeMS: e.GenerationTimeMs,
		GeneratedAt:      e.GeneratedAt,
		CreatedAt:        e.CreatedAt,
	}
	if e.ErrorMessage != nil {
		r.ErrorMessage = *e.ErrorMessage
	}
	return r
}
