package storage

import (
	"context"
	"fmt"

	"github.com/caseops/inquest/ent"
	"github.com/caseops/inquest/ent/evidencefile"
	"github.com/caseops/inquest/pkg/models"
	"github.com/caseops/inquest/pkg/services"
)

// EntEvidenceStore implements services.EvidenceFileRepository on
// PostgreSQL.
type EntEvidenceStore struct {
	client *ent.Client
}

// NewEntEvidenceStore creates an ent-backed evidence file store.
func NewEntEvidenceStore(client *ent.Client) *EntEvidenceStore {
	return &EntEvidenceStore{client: client}
}

// CreateFile inserts a metadata row for an uploaded blob.
func (s *EntEvidenceStore) CreateFile(ctx context.Context, f *models.EvidenceFile) error {
	create := s.client.EvidenceFile.Create().
		SetID(f.ID).
		SetCaseID(f.CaseID).
		SetFilename(f.Filename).
		SetContentType(f.ContentType).
		SetStoragePath(f.StoragePath).
		SetSizeBytes(f.SizeBytes).
		SetContentSummary(f.ContentSummary).
		SetCreatedAt(f.CreatedAt)
	if f.EvidenceID != "" {
		create.SetEvidenceID(f.EvidenceID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to create evidence file: %w", err)
	}
	return nil
}

// GetFile loads one file row by id.
func (s *EntEvidenceStore) GetFile(ctx context.Context, id string) (*models.EvidenceFile, error) {
	e, err := s.client.EvidenceFile.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("evidence file %s: %w", id, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load evidence file: %w", err)
	}
	return toModelEvidenceFile(e), nil
}

// ListFiles returns the case's files in upload order.
func (s *EntEvidenceStore) ListFiles(ctx context.Context, caseID string) ([]*models.EvidenceFile, error) {
	rows, err := s.client.EvidenceFile.Query().
		Where(evidencefile.CaseIDEQ(caseID)).
		Order(ent.Asc(evidencefile.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evidence files: %w", err)
	}
	out := make([]*models.EvidenceFile, len(rows))
	for i, e := range rows {
		out[i] = toModelEvidenceFile(e)
	}
	return out, nil
}

// DeleteFile removes the metadata row.
func (s *EntEvidenceStore) DeleteFile(ctx context.Context, id string) error {
	if err := s.client.EvidenceFile.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("evidence file %s: %w", id, services.ErrNotFound)
		}
		return fmt.Errorf("failed to delete evidence file: %w", err)
	}
	return nil
}

// SetEvidenceID links the file to a state-document evidence entry.
func (s *EntEvidenceStore) SetEvidenceID(ctx context.Context, id, evidenceID string) error {
	if err := s.client.EvidenceFile.UpdateOneID(id).
		SetEvidenceID(evidenceID).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("evidence file %s: %w", id, services.ErrNotFound)
		}
		return fmt.Errorf("failed to link evidence file: %w", err)
	}
	return nil
}

func toModelEvidenceFile(e *ent.EvidenceFile) *models.EvidenceFile {
	f := &models.EvidenceFile{
		ID:             e.ID,
		CaseID:         e.CaseID,
		Filename:       e.Filename,
		ContentType:    e.ContentType,
		StoragePath:    e.StoragePath,
		SizeBytes:      e.SizeBytes,
		ContentSummary: e.ContentSummary,
		CreatedAt:      e.CreatedAt,
	}
	if e.EvidenceID != nil {
		f.EvidenceID = *e.EvidenceID
	}
	return f
}
