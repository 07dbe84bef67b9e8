package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/caseops/inquest/pkg/engine"
	"github.com/caseops/inquest/pkg/events"
	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/llm"
	"github.com/caseops/inquest/pkg/models"
	"github.com/caseops/inquest/pkg/report"
	"github.com/caseops/inquest/pkg/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeRepo is an in-memory CaseRepository for handler tests.
type fakeRepo struct {
	mu       sync.Mutex
	cases    map[string]*models.Case
	messages []*models.CaseMessage
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{cases: make(map[string]*models.Case)}
}

func cloneCase(c *models.Case) *models.Case {
	data, _ := json.Marshal(c)
	var out models.Case
	_ = json.Unmarshal(data, &out)
	return &out
}

func (r *fakeRepo) CreateCase(_ context.Context, c *models.Case) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cases[c.ID]; ok {
		return fmt.Errorf("case %s: %w", c.ID, services.ErrAlreadyExists)
	}
	r.cases[c.ID] = cloneCase(c)
	return nil
}

func (r *fakeRepo) GetCase(_ context.Context, id string) (*models.Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cases[id]
	if !ok || c.DeletedAt != nil {
		return nil, fmt.Errorf("case %s: %w", id, services.ErrNotFound)
	}
	return cloneCase(c), nil
}

func (r *fakeRepo) SaveCase(_ context.Context, c *models.Case) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cases[c.ID] = cloneCase(c)
	return nil
}

func (r *fakeRepo) ListCases(_ context.Context, ownerID string, filters models.CaseFilters) (*models.CaseListResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	resp := &models.CaseListResponse{Limit: filters.Limit, Offset: filters.Offset}
	for _, c := range r.cases {
		if c.OwnerID != ownerID || (c.DeletedAt != nil && !filters.IncludeDeleted) {
			continue
		}
		if filters.Status != "" && c.Status != filters.Status {
			continue
		}
		resp.Cases = append(resp.Cases, cloneCase(c))
	}
	resp.TotalCount = len(resp.Cases)
	return resp, nil
}

func (r *fakeRepo) DeleteCase(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cases[id]
	if !ok {
		return fmt.Errorf("case %s: %w", id, services.ErrNotFound)
	}
	now := time.Now()
	c.DeletedAt = &now
	return nil
}

func (r *fakeRepo) AppendMessage(_ context.Context, msg *models.CaseMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	return nil
}

func (r *fakeRepo) ListMessages(_ context.Context, caseID string, limit int) ([]*models.CaseMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.CaseMessage
	for _, m := range r.messages {
		if m.CaseID == caseID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

// stubLLM returns a fixed reply for every call.
type stubLLM struct {
	content string
}

func (l *stubLLM) Chat(_ context.Context, _ *llm.ChatRequest) (*llm.ChatResponse, error) {
	content := l.content
	if content == "" {
		content = `{"reply": "noted"}`
	}
	return &llm.ChatResponse{Content: content}, nil
}

func (l *stubLLM) ChatStream(_ context.Context, _ *llm.ChatRequest) (<-chan llm.Chunk, error) {
	ch := make(chan llm.Chunk)
	close(ch)
	return ch, nil
}

func (l *stubLLM) Embed(_ context.Context, _ string) ([]float32, error) { return nil, nil }
func (l *stubLLM) Close() error                                        { return nil }

// memReportStore is an in-memory report.Store.
type memReportStore struct {
	mu      sync.Mutex
	reports map[string]*models.CaseReport
}

func newMemReportStore() *memReportStore {
	return &memReportStore{reports: make(map[string]*models.CaseReport)}
}

func (s *memReportStore) CreateReport(_ context.Context, r *models.CaseReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.reports[r.ID] = &cp
	return nil
}

func (s *memReportStore) UpdateReport(_ context.Context, r *models.CaseReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[r.ID]; !ok {
		return fmt.Errorf("report %s: %w", r.ID, report.ErrNotFound)
	}
	cp := *r
	s.reports[r.ID] = &cp
	return nil
}

func (s *memReportStore) GetReport(_ context.Context, id string) (*models.CaseReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[id]
	if !ok {
		return nil, fmt.Errorf("report %s: %w", id, report.ErrNotFound)
	}
	cp := *r
	return &cp, nil
}

func (s *memReportStore) ListReports(_ context.Context, caseID string, reportType models.ReportType) ([]*models.CaseReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.CaseReport
	for _, r := range s.reports {
		if r.CaseID != caseID {
			continue
		}
		if reportType != "" && r.Type != reportType {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (s *memReportStore) DeleteReport(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[id]; !ok {
		return fmt.Errorf("report %s: %w", id, report.ErrNotFound)
	}
	delete(s.reports, id)
	return nil
}

// fakeFileStore keeps evidence blobs in memory.
type fakeFileStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{blobs: make(map[string][]byte)}
}

func (s *fakeFileStore) Upload(_ context.Context, path string, data []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[path] = append([]byte(nil), data...)
	return nil
}

func (s *fakeFileStore) Download(_ context.Context, path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[path]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", path)
	}
	return data, nil
}

func (s *fakeFileStore) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, path)
	return nil
}

func (s *fakeFileStore) Exists(_ context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[path]
	return ok, nil
}

func (s *fakeFileStore) URL(_ context.Context, path string, _ time.Duration) (string, error) {
	return "/api/v1/files/" + path, nil
}

// fakeFileRepo is an in-memory EvidenceFileRepository.
type fakeFileRepo struct {
	mu    sync.Mutex
	files map[string]*models.EvidenceFile
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: make(map[string]*models.EvidenceFile)}
}

func (r *fakeFileRepo) CreateFile(_ context.Context, f *models.EvidenceFile) error {
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
		return nil, fmt.Errorf("file %s: %w", id, services.ErrNotFound)
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
		return fmt.Errorf("file %s: %w", id, services.ErrNotFound)
	}
	delete(r.files, id)
	return nil
}

func (r *fakeFileRepo) SetEvidenceID(_ context.Context, id, evidenceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.files[id]
	if !ok {
		return fmt.Errorf("file %s: %w", id, services.ErrNotFound)
	}
	f.EvidenceID = evidenceID
	return nil
}

// apiFixture wires a full handler stack over in-memory stores.
type apiFixture struct {
	repo       *fakeRepo
	router     *gin.Engine
	dispatcher *events.Dispatcher
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	repo := newFakeRepo()
	settings := investigation.DefaultSettings()
	eng := engine.New(repo, &stubLLM{}, nil, nil, settings, nil)

	cases := services.NewCaseService(repo, nil)
	investigations := services.NewInvestigationService(repo, eng, settings, nil)
	evidence := services.NewEvidenceService(repo, newFakeFileRepo(), newFakeFileStore(), 1<<20, nil)
	reports := report.NewGenerator(newMemReportStore(), nil, nil)
	dispatcher := events.NewDispatcher()

	srv := NewServer(nil, cases, investigations, evidence, reports, nil, dispatcher)
	return &apiFixture{repo: repo, router: srv.Router(), dispatcher: dispatcher}
}

// do performs a request as the named user and returns the recorder.
func (f *apiFixture) do(t *testing.T, user, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set("X-Forwarded-User", user)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// seedConsultingCase stores a consulting case with framing data.
func seedConsultingCase(t *testing.T, repo *fakeRepo, id, owner string, temporal investigation.TemporalState, urgency investigation.UrgencyLevel) {
	t.Helper()
	c := &models.Case{
		ID:       id,
		OwnerID:  owner,
		Title:    "API latency spike",
		Status:   models.CaseConsulting,
		Priority: models.PriorityHigh,
	}
	state := &investigation.State{
		StartedAt: time.Now(),
		ConsultingData: &investigation.ConsultingData{
			ProblemStatement: "p99 latency tripled",
			TemporalState:    temporal,
			UrgencyLevel:     urgency,
		},
	}
	require.NoError(t, engine.SaveState(c, state))
	require.NoError(t, repo.CreateCase(context.Background(), c))
}

// seedInvestigatingCase stores a case mid-investigation.
func seedInvestigatingCase(t *testing.T, repo *fakeRepo, id, owner string) {
	t.Helper()
	c := &models.Case{
		ID:       id,
		OwnerID:  owner,
		Title:    "API latency spike",
		Status:   models.CaseInvestigating,
		Priority: models.PriorityHigh,
	}
	state := &investigation.State{
		InvestigationID: "inv-" + id,
		CurrentPhase:    investigation.PhaseValidation,
		CurrentTurn:     2,
		StartedAt:       time.Now(),
	}
	require.NoError(t, engine.SaveState(c, state))
	require.NoError(t, repo.CreateCase(context.Background(), c))
}

// seedResolvedCase stores a case in resolved status with state attached.
func seedResolvedCase(t *testing.T, repo *fakeRepo, id, owner string) {
	t.Helper()
	c := &models.Case{
		ID:       id,
		OwnerID:  owner,
		Title:    "API latency spike",
		Status:   models.CaseResolved,
		Priority: models.PriorityHigh,
	}
	state := &investigation.State{
		InvestigationID: "inv-" + id,
		CurrentPhase:    investigation.PhaseDocument,
		CurrentTurn:     5,
		StartedAt:       time.Now(),
	}
	require.NoError(t, engine.SaveState(c, state))
	require.NoError(t, repo.CreateCase(context.Background(), c))
}
