package report

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/caseops/inquest/pkg/engine"
	"github.com/caseops/inquest/pkg/llm"
	"github.com/caseops/inquest/pkg/models"
	"github.com/google/uuid"
)

// maxVersionsPerType caps how many report versions a (case, type) pair
// may accumulate. The cap is a hard refusal, not a rotation.
const maxVersionsPerType = 5

// Generator renders and versions case reports. The LLM client is
// optional: when absent, or when enhancement fails, reports are served
// from the deterministic template.
type Generator struct {
	store  Store
	llm    llm.Client
	logger *slog.Logger

	// locks serialises versioning per (case_id, type) so the single
	// is_current invariant holds under concurrent generation.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewGenerator creates a report Generator. llmClient may be nil.
func NewGenerator(store Store, llmClient llm.Client, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		store:  store,
		llm:    llmClient,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (g *Generator) lockFor(caseID string, reportType models.ReportType) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := caseID + "/" + string(reportType)
	l, ok := g.locks[key]
	if !ok {
		l = &sync.Mutex{}
		g.locks[key] = l
	}
	return l
}

// Generate renders a new report version for the case synchronously.
// The record moves PENDING to GENERATING to COMPLETED (or FAILED); on
// success it becomes the single current version for its type. A sixth
// version is refused with ErrVersionLimit.
func (g *Generator) Generate(ctx context.Context, c *models.Case, reportType models.ReportType, useLLM bool) (*models.CaseReport, error) {
	// Created in GENERATING so queue workers never claim inline jobs.
	rec, err := g.create(ctx, c, reportType, models.ReportGenerating)
	if err != nil {
		return nil, err
	}
	if err := g.CompletePending(ctx, c, rec, useLLM); err != nil {
		return nil, err
	}
	return rec, nil
}

// Enqueue creates a PENDING report record, reserving the next version
// number. Batch generation enqueues here and lets the worker pool call
// CompletePending; the synchronous path completes immediately.
func (g *Generator) Enqueue(ctx context.Context, c *models.Case, reportType models.ReportType) (*models.CaseReport, error) {
	return g.create(ctx, c, reportType, models.ReportPending)
}

func (g *Generator) create(ctx context.Context, c *models.Case, reportType models.ReportType, status models.ReportStatus) (*models.CaseReport, error) {
	lock := g.lockFor(c.ID, reportType)
	lock.Lock()
	defer lock.Unlock()

	existing, err := g.store.ListReports(ctx, c.ID, reportType)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing reports: %w", err)
	}
	if len(existing) >= maxVersionsPerType {
		return nil, ErrVersionLimit
	}
	version := 1
	for _, r := range existing {
		if r.Version >= version {
			version = r.Version + 1
		}
	}

	rec := &models.CaseReport{
		ID:        uuid.New().String(),
		CaseID:    c.ID,
		Type:      reportType,
		Format:    models.ReportFormatMarkdown,
		Status:    status,
		Version:   version,
		CreatedAt: time.Now(),
	}
	if err := g.store.CreateReport(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to create report record: %w", err)
	}
	return rec, nil
}

// CompletePending runs the generation lifecycle for an already-created
// record: GENERATING, render, demote the prior current version, then
// COMPLETED or FAILED. rec is updated in place.
func (g *Generator) CompletePending(ctx context.Context, c *models.Case, rec *models.CaseReport, useLLM bool) error {
	lock := g.lockFor(c.ID, rec.Type)
	lock.Lock()
	defer lock.Unlock()

	rec.Status = models.ReportGenerating
	if err := g.store.UpdateReport(ctx, rec); err != nil {
		return fmt.Errorf("failed to mark report generating: %w", err)
	}

	start := time.Now()
	title, content, genErr := g.render(ctx, c, rec.Type, useLLM)
	rec.GenerationTimeMS = time.Since(start).Milliseconds()

	if genErr != nil {
		rec.Status = models.ReportFailed
		rec.ErrorMessage = genErr.Error()
		if err := g.store.UpdateReport(ctx, rec); err != nil {
			return fmt.Errorf("failed to mark report failed: %w", err)
		}
		return genErr
	}

	// Demote the prior current version before promoting the new one.
	existing, err := g.store.ListReports(ctx, c.ID, rec.Type)
	if err != nil {
		return fmt.Errorf("failed to list existing reports: %w", err)
	}
	for _, r := range existing {
		if r.IsCurrent && r.ID != rec.ID {
			r.IsCurrent = false
			if err := g.store.UpdateReport(ctx, r); err != nil {
				return fmt.Errorf("failed to demote report %s: %w", r.ID, err)
			}
		}
	}

	now := time.Now()
	rec.Title = title
	rec.Content = content
	rec.Status = models.ReportCompleted
	rec.IsCurrent = true
	rec.GeneratedAt = &now
	if err := g.store.UpdateReport(ctx, rec); err != nil {
		return fmt.Errorf("failed to complete report: %w", err)
	}
	g.logger.Info("Report generated",
		"case_id", c.ID,
		"type", rec.Type,
		"version", rec.Version,
		"duration_ms", rec.GenerationTimeMS)
	return nil
}

// Execute completes a queued report job. Batch jobs always request LLM
// enhancement; render degrades to the template when no client is
// configured.
func (g *Generator) Execute(ctx context.Context, c *models.Case, rec *models.CaseReport) error {
	return g.CompletePending(ctx, c, rec, true)
}

// render produces title and content. Template rendering always runs;
// LLM enhancement is layered on top and degrades to the template
// silently on any failure.
func (g *Generator) render(ctx context.Context, c *models.Case, reportType models.ReportType, useLLM bool) (string, string, error) {
	st, err := engine.LoadState(c)
	if err != nil {
		return "", "", fmt.Errorf("failed to load investigation state: %w", err)
	}
	title, content := renderTemplate(c, st, reportType)

	if useLLM && g.llm != nil {
		enhanced, err := g.enhance(ctx, reportType, content)
		if err != nil {
			g.logger.Warn("LLM report enhancement failed, using template",
				"case_id", c.ID, "type", reportType, "error", err)
		} else if enhanced != "" {
			content = enhanced
		}
	}
	return title, content, nil
}

func (g *Generator) enhance(ctx context.Context, reportType models.ReportType, draft string) (string, error) {
	resp, err := g.llm.Chat(ctx, &llm.ChatRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "You polish incident documentation. Rewrite the draft report below into clear, professional Markdown. Keep every fact, section, and checklist; do not invent findings. Return only the Markdown document."},
			{Role: llm.RoleUser, Content: fmt.Sprintf("Report type: %s\n\n%s", reportType, draft)},
		},
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// Get returns one report by id.
func (g *Generator) Get(ctx context.Context, id string) (*models.CaseReport, error) {
	return g.store.GetReport(ctx, id)
}

// List returns all reports for a case, optionally filtered by type.
func (g *Generator) List(ctx context.Context, caseID string, reportType models.ReportType) ([]*models.CaseReport, error) {
	return g.store.ListReports(ctx, caseID, reportType)
}

// Delete removes a report. Reports linked to closure are immutable
// history and cannot be deleted.
func (g *Generator) Delete(ctx context.Context, id string) error {
	rec, err := g.store.GetReport(ctx, id)
	if err != nil {
		return err
	}
	if rec.LinkedToClosure {
		return fmt.Errorf("report %s: %w", id, ErrClosureLinked)
	}
	return g.store.DeleteReport(ctx, id)
}

// LinkToClosure marks the named reports as part of the case's closure
// record. Only permitted once the case is in a terminal status.
func (g *Generator) LinkToClosure(ctx context.Context, c *models.Case, reportIDs []string) error {
	if !c.Status.Terminal() {
		return fmt.Errorf("case %s is %s: %w", c.ID, c.Status, ErrNotTerminal)
	}
	for _, id := range reportIDs {
		rec, err := g.store.GetReport(ctx, id)
		if err != nil {
			return err
		}
		if rec.CaseID != c.ID {
			return fmt.Errorf("report %s does not belong to case %s: %w", id, c.ID, ErrNotFound)
		}
		if rec.LinkedToClosure {
			continue
		}
		rec.LinkedToClosure = true
		if err := g.store.UpdateReport(ctx, rec); err != nil {
			return fmt.Errorf("failed to link report %s: %w", id, err)
		}
	}
	return nil
}

// Recommendations returns the report types worth generating for the
// case in its current status, skipping types that already have a
// completed current version.
func (g *Generator) Recommendations(ctx context.Context, c *models.Case) ([]models.ReportType, error) {
	var candidates []models.ReportType
	switch c.Status {
	case models.CaseResolved:
		candidates = models.AllReportTypes
	case models.CaseInvestigating:
		candidates = []models.ReportType{models.ReportIncident}
	case models.CaseClosed:
		candidates = []models.ReportType{models.ReportPostMortem}
	default:
		return nil, nil
	}

	existing, err := g.store.ListReports(ctx, c.ID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	current := make(map[models.ReportType]bool)
	for _, r := range existing {
		if r.IsCurrent && r.Status == models.ReportCompleted {
			current[r.Type] = true
		}
	}

	var out []models.ReportType
	for _, t := range candidates {
		if !current[t] {
			out = append(out, t)
		}
	}
	return out, nil
}
