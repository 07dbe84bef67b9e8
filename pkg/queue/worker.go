package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/caseops/inquest/ent"
	"github.com/caseops/inquest/ent/casereport"
	"github.com/caseops/inquest/pkg/config"
	"github.com/caseops/inquest/pkg/models"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and completes pending
// report jobs.
type Worker struct {
	id         string
	podID      string
	client     *ent.Client
	config     *config.QueueConfig
	executor   JobExecutor
	caseLoader CaseLoader
	publisher  StatusPublisher
	pool       JobRegistry
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// JobRegistry is the subset of WorkerPool used by Worker for job registration.
type JobRegistry interface {
	RegisterJob(jobID string, cancel context.CancelFunc)
	UnregisterJob(jobID string)
}

// NewWorker creates a new queue worker. publisher may be nil.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor JobExecutor, loader CaseLoader, publisher StatusPublisher, pool JobRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		caseLoader:   loader,
		publisher:    publisher,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing report job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, and completes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.CaseReport.Query().
		Where(casereport.StatusEQ(casereport.StatusGenerating)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active jobs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	// 2. Claim next job
	job, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("report_id", job.ID, "case_id", job.CaseID, "worker_id", w.id)
	log.Info("Report job claimed", "type", job.Type, "version", job.Version)

	rec := toModelReport(job)
	w.publishStatus(ctx, rec)

	w.setStatus(WorkerStatusWorking, job.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create job context with timeout
	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancelJob()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterJob(job.ID, cancelJob)
	defer w.pool.UnregisterJob(job.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, job.ID)

	// 6. Load the case and execute. The executor writes the terminal
	//    status itself; the worker only records failures it caused.
	c, err := w.caseLoader.GetCase(jobCtx, job.CaseID)
	if err != nil {
		cancelHeartbeat()
		w.failJob(context.Background(), rec, fmt.Errorf("failed to load case %s: %w", job.CaseID, err))
		return nil
	}

	execErr := w.executor.Execute(jobCtx, c, rec)
	cancelHeartbeat()

	if execErr != nil {
		// Timeouts and cancellations may leave the record mid-flight;
		// make sure a terminal status lands (background context — the
		// job ctx may be cancelled).
		switch {
		case errors.Is(jobCtx.Err(), context.DeadlineExceeded):
			w.failJob(context.Background(), rec, fmt.Errorf("report generation timed out after %v", w.config.JobTimeout))
		case errors.Is(jobCtx.Err(), context.Canceled):
			w.failJob(context.Background(), rec, context.Canceled)
		default:
			// Executor already recorded FAILED; just broadcast it.
			w.publishStatus(context.Background(), rec)
		}
		log.Warn("Report job failed", "error", execErr)
	} else {
		w.publishStatus(context.Background(), rec)
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Report job complete", "status", rec.Status)
	return nil
}

// claimNextJob atomically claims the next pending report using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.CaseReport, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	job, err := tx.CaseReport.Query().
		Where(casereport.StatusEQ(casereport.StatusPending)).
		Order(ent.Asc(casereport.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending report: %w", err)
	}

	// Claim: set generating, pod_id; updated_at bumps automatically and
	// doubles as the first heartbeat.
	job, err = job.Update().
		SetStatus(casereport.StatusGenerating).
		SetPodID(w.podID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim report: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return job, nil
}

// runHeartbeat periodically bumps updated_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, reportID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.CaseReport.UpdateOneID(reportID).
				SetUpdatedAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "report_id", reportID, "error", err)
			}
		}
	}
}

// failJob writes a FAILED terminal status for errors the worker itself
// detected (case load failure, timeout, cancellation).
func (w *Worker) failJob(ctx context.Context, rec *models.CaseReport, cause error) {
	rec.Status = models.ReportFailed
	rec.ErrorMessage = cause.Error()
	if err := w.client.CaseReport.UpdateOneID(rec.ID).
		SetStatus(casereport.StatusFailed).
		SetErrorMessage(rec.ErrorMessage).
		Exec(ctx); err != nil {
		slog.Error("Failed to mark report failed", "report_id", rec.ID, "error", err)
		return
	}
	w.publishStatus(ctx, rec)
}

// publishStatus broadcasts a report status event. Non-blocking: errors
// are logged.
func (w *Worker) publishStatus(ctx context.Context, rec *models.CaseReport) {
	if w.publisher == nil {
		return
	}
	if err := w.publisher.PublishReportStatus(ctx, rec); err != nil {
		slog.Warn("Failed to publish report status",
			"report_id", rec.ID, "status", rec.Status, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}

// toModelReport maps a claimed ent row into the model the executor
// mutates in place.
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
