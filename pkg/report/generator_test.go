package report

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/caseops/inquest/pkg/engine"
	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/llm"
	"github.com/caseops/inquest/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for generator tests.
type memStore struct {
	mu      sync.Mutex
	reports map[string]*models.CaseReport
}

func newMemStore() *memStore {
	return &memStore{reports: make(map[string]*models.CaseReport)}
}

func (s *memStore) CreateReport(_ context.Context, r *models.CaseReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.reports[r.ID] = &cp
	return nil
}

func (s *memStore) UpdateReport(_ context.Context, r *models.CaseReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[r.ID]; !ok {
		return fmt.Errorf("report %s: %w", r.ID, ErrNotFound)
	}
	cp := *r
	s.reports[r.ID] = &cp
	return nil
}

func (s *memStore) GetReport(_ context.Context, id string) (*models.CaseReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[id]
	if !ok {
		return nil, fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	cp := *r
	return &cp, nil
}

func (s *memStore) ListReports(_ context.Context, caseID string, reportType models.ReportType) ([]*models.CaseReport, error) {
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
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Version < out[i].Version {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (s *memStore) DeleteReport(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[id]; !ok {
		return fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	delete(s.reports, id)
	return nil
}

// echoLLM returns a fixed enhancement, or an error when broken.
type echoLLM struct {
	content string
	err     error
	calls   int
}

func (l *echoLLM) Chat(_ context.Context, _ *llm.ChatRequest) (*llm.ChatResponse, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return &llm.ChatResponse{Content: l.content}, nil
}

func (l *echoLLM) ChatStream(_ context.Context, _ *llm.ChatRequest) (<-chan llm.Chunk, error) {
	ch := make(chan llm.Chunk)
	close(ch)
	return ch, nil
}

func (l *echoLLM) Embed(_ context.Context, _ string) ([]float32, error) { return nil, nil }
func (l *echoLLM) Close() error                                        { return nil }

func investigatedCase(status models.CaseStatus) *models.Case {
	c := &models.Case{
		ID:        "case-1",
		OwnerID:   "user-1",
		Title:     "Checkout timeouts",
		Status:    status,
		Priority:  models.PriorityCritical,
		CreatedAt: time.Now(),
	}
	st := &investigation.State{
		InvestigationID: "inv-1",
		CurrentPhase:    investigation.PhaseValidation,
		CurrentTurn:     6,
		StartedAt:       time.Now(),
		AnomalyFrame: investigation.AnomalyFrame{
			ProblemStatement:   "database timeouts on /checkout",
			AffectedComponents: []string{"checkout-api", "orders-db"},
		},
		Hypotheses: []investigation.Hypothesis{{
			ID:                    "h-1",
			Statement:             "connection pool exhausted after deploy",
			Category:              investigation.CategoryInfrastructure,
			Status:                investigation.HypothesisValidated,
			Likelihood:            0.85,
			SupportingEvidenceIDs: []string{"ev-1", "ev-2"},
			ValidatedAtTurn:       5,
		}},
		Evidence: []investigation.Evidence{
			{ID: "ev-1", Description: "pool wait time graph", Category: investigation.EvidenceCausal, CollectedAtTurn: 3},
			{ID: "ev-2", Description: "deploy diff shrank pool size", Category: investigation.EvidenceCausal, CollectedAtTurn: 4},
		},
		WorkingConclusion: &investigation.WorkingConclusion{
			Statement:  "Pool size regression from the 14:00 deploy; revert restored throughput.",
			Confidence: 0.85,
		},
	}
	st.Progress.Complete(investigation.MilestoneSymptomVerified, time.Now())
	st.Progress.Complete(investigation.MilestoneRootCauseIdentified, time.Now())
	_ = engine.SaveState(c, st)
	return c
}

func TestGenerator_Generate(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	gen := NewGenerator(store, nil, nil)
	c := investigatedCase(models.CaseResolved)

	rec, err := gen.Generate(ctx, c, models.ReportIncident, false)
	require.NoError(t, err)

	assert.Equal(t, models.ReportCompleted, rec.Status)
	assert.Equal(t, 1, rec.Version)
	assert.True(t, rec.IsCurrent)
	assert.Equal(t, models.ReportFormatMarkdown, rec.Format)
	assert.Equal(t, "Incident Report: Checkout timeouts", rec.Title)
	require.NotNil(t, rec.GeneratedAt)
	assert.GreaterOrEqual(t, rec.GenerationTimeMS, int64(0))

	assert.Contains(t, rec.Content, "database timeouts on /checkout")
	assert.Contains(t, rec.Content, "connection pool exhausted after deploy")
	assert.Contains(t, rec.Content, "pool wait time graph")
	assert.Contains(t, rec.Content, "[x] root cause identified")
	assert.Contains(t, rec.Content, "[ ] solution verified")
}

func TestGenerator_Versioning(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	gen := NewGenerator(store, nil, nil)
	c := investigatedCase(models.CaseResolved)

	for want := 1; want <= 5; want++ {
		rec, err := gen.Generate(ctx, c, models.ReportIncident, false)
		require.NoError(t, err)
		assert.Equal(t, want, rec.Version)
	}

	all, err := store.ListReports(ctx, c.ID, models.ReportIncident)
	require.NoError(t, err)
	require.Len(t, all, 5)
	currents := 0
	for _, r := range all {
		if r.IsCurrent {
			currents++
			assert.Equal(t, 5, r.Version, "only the newest version is current")
		}
	}
	assert.Equal(t, 1, currents)

	// The sixth is refused outright.
	rec, err := gen.Generate(ctx, c, models.ReportIncident, false)
	assert.Nil(t, rec)
	require.ErrorIs(t, err, ErrVersionLimit)

	// The cap is per type: a runbook still generates.
	_, err = gen.Generate(ctx, c, models.ReportRunbook, false)
	require.NoError(t, err)
}

func TestGenerator_LLMEnhancement(t *testing.T) {
	ctx := context.Background()
	c := investigatedCase(models.CaseResolved)

	t.Run("enhanced content replaces the template", func(t *testing.T) {
		client := &echoLLM{content: "# Polished Report\n\nmuch nicer prose"}
		gen := NewGenerator(newMemStore(), client, nil)

		rec, err := gen.Generate(ctx, c, models.ReportIncident, true)
		require.NoError(t, err)
		assert.Equal(t, 1, client.calls)
		assert.Equal(t, "# Polished Report\n\nmuch nicer prose", rec.Content)
	})

	t.Run("LLM failure degrades to the template", func(t *testing.T) {
		client := &echoLLM{err: errors.New("provider down")}
		gen := NewGenerator(newMemStore(), client, nil)

		rec, err := gen.Generate(ctx, c, models.ReportIncident, true)
		require.NoError(t, err)
		assert.Equal(t, models.ReportCompleted, rec.Status)
		assert.Contains(t, rec.Content, "database timeouts on /checkout")
		assert.GreaterOrEqual(t, rec.GenerationTimeMS, int64(0))
	})

	t.Run("use_llm false never calls the provider", func(t *testing.T) {
		client := &echoLLM{content: "unused"}
		gen := NewGenerator(newMemStore(), client, nil)

		rec, err := gen.Generate(ctx, c, models.ReportIncident, false)
		require.NoError(t, err)
		assert.Equal(t, 0, client.calls)
		assert.Contains(t, rec.Content, "database timeouts on /checkout")
	})
}

func TestGenerator_ClosureLinking(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	gen := NewGenerator(store, nil, nil)

	t.Run("rejected while the case is active", func(t *testing.T) {
		c := investigatedCase(models.CaseInvestigating)
		rec, err := gen.Generate(ctx, c, models.ReportIncident, false)
		require.NoError(t, err)

		err = gen.LinkToClosure(ctx, c, []string{rec.ID})
		require.ErrorIs(t, err, ErrNotTerminal)
	})

	t.Run("linked reports cannot be deleted", func(t *testing.T) {
		c := investigatedCase(models.CaseResolved)
		c.ID = "case-2"
		rec, err := gen.Generate(ctx, c, models.ReportIncident, false)
		require.NoError(t, err)

		require.NoError(t, gen.LinkToClosure(ctx, c, []string{rec.ID}))
		linked, err := gen.Get(ctx, rec.ID)
		require.NoError(t, err)
		assert.True(t, linked.LinkedToClosure)

		err = gen.Delete(ctx, rec.ID)
		require.ErrorIs(t, err, ErrClosureLinked)

		// Unlinked reports delete normally.
		other, err := gen.Generate(ctx, c, models.ReportRunbook, false)
		require.NoError(t, err)
		require.NoError(t, gen.Delete(ctx, other.ID))
		_, err = gen.Get(ctx, other.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("foreign report ids rejected", func(t *testing.T) {
		c := investigatedCase(models.CaseResolved)
		c.ID = "case-3"
		other := investigatedCase(models.CaseResolved)
		other.ID = "case-4"
		rec, err := gen.Generate(ctx, other, models.ReportIncident, false)
		require.NoError(t, err)

		err = gen.LinkToClosure(ctx, c, []string{rec.ID})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGenerator_Recommendations(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	gen := NewGenerator(store, nil, nil)

	t.Run("resolved recommends all missing types", func(t *testing.T) {
		c := investigatedCase(models.CaseResolved)
		recs, err := gen.Recommendations(ctx, c)
		require.NoError(t, err)
		assert.ElementsMatch(t, models.AllReportTypes, recs)

		_, err = gen.Generate(ctx, c, models.ReportIncident, false)
		require.NoError(t, err)
		recs, err = gen.Recommendations(ctx, c)
		require.NoError(t, err)
		assert.ElementsMatch(t, []models.ReportType{models.ReportRunbook, models.ReportPostMortem}, recs)
	})

	t.Run("investigating recommends the incident report only", func(t *testing.T) {
		c := investigatedCase(models.CaseInvestigating)
		c.ID = "case-5"
		recs, err := gen.Recommendations(ctx, c)
		require.NoError(t, err)
		assert.Equal(t, []models.ReportType{models.ReportIncident}, recs)
	})

	t.Run("closed recommends the post-mortem only", func(t *testing.T) {
		c := investigatedCase(models.CaseClosed)
		c.ID = "case-6"
		recs, err := gen.Recommendations(ctx, c)
		require.NoError(t, err)
		assert.Equal(t, []models.ReportType{models.ReportPostMortem}, recs)
	})

	t.Run("consulting recommends nothing", func(t *testing.T) {
		c := &models.Case{ID: "case-7", Status: models.CaseConsulting}
		recs, err := gen.Recommendations(ctx, c)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})
}

func TestRenderTemplate_Types(t *testing.T) {
	c := investigatedCase(models.CaseResolved)
	st, err := engine.LoadState(c)
	require.NoError(t, err)

	t.Run("runbook", func(t *testing.T) {
		title, content := renderTemplate(c, st, models.ReportRunbook)
		assert.Equal(t, "Runbook: Checkout timeouts", title)
		assert.Contains(t, content, "## Symptoms")
		assert.Contains(t, content, "**Confirmed cause**: connection pool exhausted after deploy")
		assert.Contains(t, content, "Verify: pool wait time graph")
	})

	t.Run("post-mortem", func(t *testing.T) {
		title, content := renderTemplate(c, st, models.ReportPostMortem)
		assert.Equal(t, "Post-Mortem: Checkout timeouts", title)
		assert.Contains(t, content, "## What Happened")
		assert.Contains(t, content, "ran for 6 turns across 1 hypotheses")
	})

	t.Run("no investigation state", func(t *testing.T) {
		bare := &models.Case{ID: "x", Title: "Mystery", Status: models.CaseConsulting, CreatedAt: time.Now()}
		_, content := renderTemplate(bare, nil, models.ReportIncident)
		assert.Contains(t, content, "No investigation has been started")
	})
}
