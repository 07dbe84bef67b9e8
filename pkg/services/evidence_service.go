package services

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/caseops/inquest/pkg/models"
	"github.com/caseops/inquest/pkg/ports"
	"github.com/google/uuid"
)

// EvidenceService manages uploaded evidence files: the blob goes to the
// file store, the metadata row to the database. A failed row insert
// rolls the blob back so the two never drift.
type EvidenceService struct {
	cases    CaseRepository
	files    EvidenceFileRepository
	store    ports.FileStore
	maxBytes int64
	logger   *slog.Logger
}

// NewEvidenceService creates an EvidenceService. maxBytes caps a single
// upload; zero means no cap.
func NewEvidenceService(cases CaseRepository, files EvidenceFileRepository, store ports.FileStore, maxBytes int64, logger *slog.Logger) *EvidenceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EvidenceService{
		cases:    cases,
		files:    files,
		store:    store,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Upload stores an evidence file for the case.
func (s *EvidenceService) Upload(ctx context.Context, caseID, userID, filename, contentType string, data []byte) (*models.EvidenceFile, error) {
	if filename == "" {
		return nil, NewValidationError("filename", "required")
	}
	if len(data) == 0 {
		return nil, NewValidationError("file", "empty upload")
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return nil, NewValidationError("file", fmt.Sprintf("exceeds the %d byte upload limit", s.maxBytes))
	}
	c, err := s.ownedCase(ctx, caseID, userID)
	if err != nil {
		return nil, err
	}
	if c.Status.Terminal() {
		return nil, fmt.Errorf("case %s is %s: %w", caseID, c.Status, ErrInvalidStatus)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	f := &models.EvidenceFile{
		ID:          uuid.New().String(),
		CaseID:      caseID,
		Filename:    filename,
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
		CreatedAt:   time.Now(),
	}
	f.StoragePath = path.Join(caseID, f.ID+"-"+path.Base(filename))

	if err := s.store.Upload(ctx, f.StoragePath, data, contentType); err != nil {
		return nil, fmt.Errorf("failed to store evidence blob: %w", err)
	}
	if err := s.files.CreateFile(ctx, f); err != nil {
		// Roll the blob back so no orphan survives the failed insert.
		if delErr := s.store.Delete(context.WithoutCancel(ctx), f.StoragePath); delErr != nil {
			s.logger.Warn("Failed to roll back evidence blob",
				"storage_path", f.StoragePath, "error", delErr)
		}
		return nil, err
	}

	s.logger.Info("Evidence file uploaded",
		"case_id", caseID, "file_id", f.ID, "size_bytes", f.SizeBytes)
	return f, nil
}

// Get returns file metadata after an ownership check.
func (s *EvidenceService) Get(ctx context.Context, fileID, userID string) (*models.EvidenceFile, error) {
	f, err := s.files.GetFile(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedCase(ctx, f.CaseID, userID); err != nil {
		return nil, err
	}
	return f, nil
}

// Download returns the metadata and blob content.
func (s *EvidenceService) Download(ctx context.Context, fileID, userID string) (*models.EvidenceFile, []byte, error) {
	f, err := s.Get(ctx, fileID, userID)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.store.Download(ctx, f.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read evidence blob: %w", err)
	}
	return f, data, nil
}

// List returns the case's files.
func (s *EvidenceService) List(ctx context.Context, caseID, userID string) ([]*models.EvidenceFile, error) {
	if _, err := s.ownedCase(ctx, caseID, userID); err != nil {
		return nil, err
	}
	return s.files.ListFiles(ctx, caseID)
}

// Delete removes the row first, then best-effort deletes the blob; an
// orphaned blob is preferable to a row pointing at nothing.
func (s *EvidenceService) Delete(ctx context.Context, fileID, userID string) error {
	f, err := s.Get(ctx, fileID, userID)
	if err != nil {
		return err
	}
	if err := s.files.DeleteFile(ctx, fileID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, f.StoragePath); err != nil {
		s.logger.Warn("Failed to delete evidence blob",
			"storage_path", f.StoragePath, "error", err)
	}
	return nil
}

func (s *EvidenceService) ownedCase(ctx context.Context, caseID, userID string) (*models.Case, error) {
	c, err := s.cases.GetCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != userID {
		return nil, fmt.Errorf("case %s: %w", caseID, ErrForbidden)
	}
	return c, nil
}
