package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseops/inquest/pkg/models"
)

func uploadMultipart(t *testing.T, f *apiFixture, user, caseID, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cases/"+caseID+"/files", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-Forwarded-User", user)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestUploadFile_Multipart(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	rec := uploadMultipart(t, f, "alice", "case-1", "pod-logs.txt", []byte("OOMKilled at 14:02"))
	require.Equal(t, http.StatusCreated, rec.Code)

	uploaded := decode[models.EvidenceFile](t, rec)
	assert.NotEmpty(t, uploaded.ID)
	assert.Equal(t, "pod-logs.txt", uploaded.Filename)
	assert.EqualValues(t, 18, uploaded.SizeBytes)
}

func TestUploadFile_RawBody(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cases/case-1/files", bytes.NewReader([]byte("raw payload")))
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("X-Filename", "notes.txt")
	req.Header.Set("X-Forwarded-User", "alice")

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	uploaded := decode[models.EvidenceFile](t, rec)
	assert.Equal(t, "notes.txt", uploaded.Filename)
	assert.Equal(t, "text/plain", uploaded.ContentType)
}

func TestUploadFile_MissingFilename(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cases/case-1/files", bytes.NewReader([]byte("data")))
	req.Header.Set("X-Forwarded-User", "alice")

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadFile_TerminalCaseRefused(t *testing.T) {
	f := newAPIFixture(t)
	seedResolvedCase(t, f.repo, "case-1", "alice")

	rec := uploadMultipart(t, f, "alice", "case-1", "late.txt", []byte("too late"))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDownloadAndDeleteFile(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	rec := uploadMultipart(t, f, "alice", "case-1", "trace.json", []byte(`{"span":"db.query"}`))
	require.Equal(t, http.StatusCreated, rec.Code)
	uploaded := decode[models.EvidenceFile](t, rec)

	rec = f.do(t, "alice", http.MethodGet, "/api/v1/files/"+uploaded.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"span":"db.query"}`, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "trace.json")

	rec = f.do(t, "mallory", http.MethodGet, "/api/v1/files/"+uploaded.ID, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, "alice", http.MethodDelete, "/api/v1/files/"+uploaded.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, "alice", http.MethodGet, "/api/v1/files/"+uploaded.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListFiles(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	require.Equal(t, http.StatusCreated, uploadMultipart(t, f, "alice", "case-1", "a.txt", []byte("a")).Code)
	require.Equal(t, http.StatusCreated, uploadMultipart(t, f, "alice", "case-1", "b.txt", []byte("b")).Code)

	rec := f.do(t, "alice", http.MethodGet, "/api/v1/cases/case-1/files", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	result := decode[struct {
		Files []*models.EvidenceFile `json:"files"`
	}](t, rec)
	assert.Len(t, result.Files, 2)
}
