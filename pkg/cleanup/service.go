// Package cleanup provides data retention enforcement.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/caseops/inquest/pkg/config"
)

// CaseRetirer soft-deletes terminal cases past the retention window.
type CaseRetirer interface {
	SoftDeleteOldCases(ctx context.Context, retention time.Duration) (int, error)
}

// Service periodically soft-deletes resolved and closed cases older
// than the retention window. Operations are idempotent and safe to run
// from multiple pods.
type Service struct {
	config *config.RetentionConfig
	cases  CaseRetirer

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, cases CaseRetirer) *Service {
	return &Service{
		config: cfg,
		cases:  cases,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"case_retention_days", s.config.CaseRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.softDeleteOldCases()

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.softDeleteOldCases()
		}
	}
}

func (s *Service) softDeleteOldCases() {
	retention := time.Duration(s.config.CaseRetentionDays) * 24 * time.Hour
	count, err := s.cases.SoftDeleteOldCases(context.Background(), retention)
	if err != nil {
		slog.Error("Retention: soft-delete cases failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old cases", "count", count)
	}
}
