// Package queue provides the background worker pool that completes
// enqueued report generation jobs.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/caseops/inquest/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no pending report jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// JobExecutor completes a claimed report job. The executor owns the
// full generation lifecycle, writing the terminal status (completed or
// failed) itself; the worker only handles claiming, heartbeat, and
// requeue-on-crash via orphan detection.
type JobExecutor interface {
	Execute(ctx context.Context, c *models.Case, rec *models.CaseReport) error
}

// CaseLoader fetches the case a claimed job belongs to.
type CaseLoader interface {
	GetCase(ctx context.Context, caseID string) (*models.Case, error)
}

// StatusPublisher broadcasts report status transitions. May be nil
// (streaming disabled).
type StatusPublisher interface {
	PublishReportStatus(ctx context.Context, report *models.CaseReport) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	PodID           string         `json:"pod_id"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	ActiveJobs      int            `json:"active_jobs"`
	MaxConcurrent   int            `json:"max_concurrent"`
	QueueDepth      int            `json:"queue_depth"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
	LastOrphanScan  time.Time      `json:"last_orphan_scan"`
	OrphansRequeued int            `json:"orphans_requeued"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
