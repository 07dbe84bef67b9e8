package services

import (
	"context"

	"github.com/caseops/inquest/pkg/models"
)

// CaseRepository is the persistence surface for case lifecycle and turn
// processing. The ent-backed implementation lives in pkg/storage.
type CaseRepository interface {
	CreateCase(ctx context.Context, c *models.Case) error
	GetCase(ctx context.Context, id string) (*models.Case, error)
	SaveCase(ctx context.Context, c *models.Case) error
	ListCases(ctx context.Context, ownerID string, filters models.CaseFilters) (*models.CaseListResponse, error)
	// DeleteCase soft-deletes; the case stops appearing in reads but the
	// row is retained for the retention window.
	DeleteCase(ctx context.Context, id string) error

	AppendMessage(ctx context.Context, msg *models.CaseMessage) error
	ListMessages(ctx context.Context, caseID string, limit int) ([]*models.CaseMessage, error)
}

// EvidenceFileRepository is the persistence surface for uploaded
// evidence file metadata. Blobs live in a ports.FileStore.
type EvidenceFileRepository interface {
	CreateFile(ctx context.Context, f *models.EvidenceFile) error
	GetFile(ctx context.Context, id string) (*models.EvidenceFile, error)
	ListFiles(ctx context.Context, caseID string) ([]*models.EvidenceFile, error)
	DeleteFile(ctx context.Context, id string) error
	SetEvidenceID(ctx context.Context, id, evidenceID string) error
}
