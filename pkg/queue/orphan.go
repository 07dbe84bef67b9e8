package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/caseops/inquest/ent"
	"github.com/caseops/inquest/ent/casereport"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu              sync.Mutex
	lastOrphanScan  time.Time
	orphansRequeued int
}

// runOrphanDetection periodically scans for orphaned report jobs.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRequeueOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRequeueOrphans finds generating jobs with stale heartbeats
// and puts them back in the pending queue. Generation is idempotent, so
// a requeued job simply renders again on another worker.
func (p *WorkerPool) detectAndRequeueOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.CaseReport.Query().
		Where(
			casereport.StatusEQ(casereport.StatusGenerating),
			casereport.UpdatedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned report jobs", "count", len(orphans))

	requeued := 0
	for _, job := range orphans {
		if err := p.requeueOrphanedJob(ctx, job); err != nil {
			slog.Error("Failed to requeue orphaned job",
				"report_id", job.ID,
				"error", err)
			continue
		}
		requeued++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRequeued += requeued
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphanedJob puts a single orphaned job back in the queue.
func (p *WorkerPool) requeueOrphanedJob(ctx context.Context, job *ent.CaseReport) error {
	lastHeartbeat := job.UpdatedAt.Format(time.RFC3339)

	podID := "unknown"
	if job.PodID != nil {
		podID = *job.PodID
	}

	err := job.Update().
		SetStatus(casereport.StatusPending).
		ClearPodID().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue job: %w", err)
	}

	slog.Warn("Orphaned report job requeued",
		"report_id", job.ID,
		"old_pod_id", podID,
		"last_heartbeat", lastHeartbeat)
	return nil
}

// RequeueStartupOrphans performs a one-time requeue of jobs owned by
// this pod that were mid-generation when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func RequeueStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	n, err := client.CaseReport.Update().
		Where(
			casereport.StatusEQ(casereport.StatusGenerating),
			casereport.PodIDEQ(podID),
		).
		SetStatus(casereport.StatusPending).
		ClearPodID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue startup orphans: %w", err)
	}
	if n > 0 {
		slog.Warn("Requeued report jobs orphaned by previous run",
			"pod_id", podID,
			"count", n)
	}
	return nil
}
