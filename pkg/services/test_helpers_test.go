package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/caseops/inquest/pkg/engine"
	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/llm"
	"github.com/caseops/inquest/pkg/models"
)

// fakeRepo is an in-memory CaseRepository for service tests.
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
		return fmt.Errorf("case %s: %w", c.ID, ErrAlreadyExists)
	}
	r.cases[c.ID] = cloneCase(c)
	return nil
}

func (r *fakeRepo) GetCase(_ context.Context, id string) (*models.Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cases[id]
	if !ok || c.DeletedAt != nil {
		return nil, fmt.Errorf("case %s: %w", id, ErrNotFound)
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
		return fmt.Errorf("case %s: %w", id, ErrNotFound)
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

func newTestServices() (*fakeRepo, *CaseService, *InvestigationService) {
	repo := newFakeRepo()
	settings := investigation.DefaultSettings()
	eng := engine.New(repo, &stubLLM{}, nil, nil, settings, nil)
	return repo, NewCaseService(repo, nil), NewInvestigationService(repo, eng, settings, nil)
}

// seedConsultingCase stores a consulting case with framing data.
func seedConsultingCase(repo *fakeRepo, id, owner string, temporal investigation.TemporalState, urgency investigation.UrgencyLevel) *models.Case {
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
	_ = engine.SaveState(c, state)
	_ = repo.CreateCase(context.Background(), c)
	return c
}

// seedInvestigatingCase stores a case mid-investigation.
func seedInvestigatingCase(repo *fakeRepo, id, owner string) *investigation.State {
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
	_ = engine.SaveState(c, state)
	_ = repo.CreateCase(context.Background(), c)
	return state
}
