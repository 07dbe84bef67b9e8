package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/caseops/inquest/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFileStore keeps blobs in memory.
type fakeFileStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{blobs: make(map[string][]byte)}
}

func (f *fakeFileStore) Upload(_ context.Context, path string, data []byte, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blobs[path] = append([]byte(nil), data...)
	return nil
}

func (f *fakeFileStore) Download(_ context.Context, path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.blobs[path]
	if !ok {
		return nil, errors.New("blob not found")
	}
	return data, nil
}

func (f *fakeFileStore) Delete(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.blobs, path)
	return nil
}

func (f *fakeFileStore) Exists(_ context.Context, path string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.blobs[path]
	return ok, nil
}

func (f *fakeFileStore) URL(_ context.Context, path string, _ time.Duration) (string, error) {
	return "/api/v1/files/" + path, nil
}

// fakeFileRepo is an in-memory EvidenceFileRepository.
type fakeFileRepo struct {
	mu        sync.Mutex
	files     map[string]*models.EvidenceFile
	createErr error
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: make(map[string]*models.EvidenceFile)}
}

func (r *fakeFileRepo) CreateFile(_ context.Context, f *models.EvidenceFile) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *f
	r.files[f.ID] = &cp
	return nil
}

func (r *fakeFileRepo) GetFile(_ context.Context, id string) (*models.EvidenceFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.files[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFileRepo) ListFiles(_ context.Context, caseID string) ([]*models.EvidenceFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.EvidenceFile
	for _, f := range r.files {
		if f.CaseID == caseID {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeFileRepo) DeleteFile(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.files[id]; !ok {
		return ErrNotFound
	}
	delete(r.files, id)
	return nil
}

func (r *fakeFileRepo) SetEvidenceID(_ context.Context, id, evidenceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.files[id]
	if !ok {
		return ErrNotFound
	}
	f.EvidenceID = evidenceID
	return nil
}

func newEvidenceFixture(t *testing.T) (*fakeRepo, *fakeFileRepo, *fakeFileStore, *EvidenceService) {
	t.Helper()
	repo := newFakeRepo()
	files := newFakeFileRepo()
	store := newFakeFileStore()
	svc := NewEvidenceService(repo, files, store, 1024, nil)
	seedInvestigatingCase(repo, "case-1", "alice")
	return repo, files, store, svc
}

func TestEvidenceService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("stores blob and metadata", func(t *testing.T) {
		_, files, store, svc := newEvidenceFixture(t)

		f, err := svc.Upload(ctx, "case-1", "alice", "pg_stat.txt", "text/plain", []byte("waits: 42"))
		require.NoError(t, err)
		assert.Equal(t, "case-1", f.CaseID)
		assert.Equal(t, int64(9), f.SizeBytes)

		stored, err := store.Download(ctx, f.StoragePath)
		require.NoError(t, err)
		assert.Equal(t, "waits: 42", string(stored))

		_, err = files.GetFile(ctx, f.ID)
		require.NoError(t, err)
	})

	t.Run("rolls back blob when the row insert fails", func(t *testing.T) {
		_, files, store, svc := newEvidenceFixture(t)
		files.createErr = errors.New("insert failed")

		_, err := svc.Upload(ctx, "case-1", "alice", "dump.txt", "text/plain", []byte("x"))
		require.Error(t, err)
		assert.Empty(t, store.blobs, "orphaned blob should have been deleted")
	})

	t.Run("rejects oversized upload", func(t *testing.T) {
		_, _, _, svc := newEvidenceFixture(t)

		_, err := svc.Upload(ctx, "case-1", "alice", "big.bin", "", make([]byte, 2048))
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects foreign owner", func(t *testing.T) {
		_, _, _, svc := newEvidenceFixture(t)

		_, err := svc.Upload(ctx, "case-1", "mallory", "x.txt", "", []byte("x"))
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestEvidenceService_DownloadAndDelete(t *testing.T) {
	ctx := context.Background()
	_, _, store, svc := newEvidenceFixture(t)

	f, err := svc.Upload(ctx, "case-1", "alice", "trace.log", "text/plain", []byte("spans"))
	require.NoError(t, err)

	got, data, err := svc.Download(ctx, f.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, f.ID, got.ID)
	assert.Equal(t, "spans", string(data))

	require.NoError(t, svc.Delete(ctx, f.ID, "alice"))
	assert.Empty(t, store.blobs)

	_, err = svc.Get(ctx, f.ID, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEvidenceService_List(t *testing.T) {
	ctx := context.Background()
	_, _, _, svc := newEvidenceFixture(t)

	_, err := svc.Upload(ctx, "case-1", "alice", "a.txt", "", []byte("a"))
	require.NoError(t, err)
	_, err = svc.Upload(ctx, "case-1", "alice", "b.txt", "", []byte("b"))
	require.NoError(t, err)

	files, err := svc.List(ctx, "case-1", "alice")
	require.NoError(t, err)
	assert.Len(t, files, 2)

	_, err = svc.List(ctx, "case-1", "mallory")
	assert.ErrorIs(t, err, ErrForbidden)
}
