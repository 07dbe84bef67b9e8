package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/caseops/inquest/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRetirer struct {
	deleted   int
	retention time.Duration
	calls     int
	err       error
}

func (f *fakeRetirer) SoftDeleteOldCases(_ context.Context, retention time.Duration) (int, error) {
	f.calls++
	f.retention = retention
	return f.deleted, f.err
}

func TestService_SoftDeletesOnTick(t *testing.T) {
	retirer := &fakeRetirer{deleted: 2}
	cfg := &config.RetentionConfig{
		CaseRetentionDays: 30,
		CleanupInterval:   10 * time.Millisecond,
	}
	svc := NewService(cfg, retirer)

	svc.Start(context.Background())
	require.Eventually(t, func() bool {
		return retirer.calls >= 2
	}, time.Second, 5*time.Millisecond, "expected initial run plus at least one tick")
	svc.Stop()

	assert.Equal(t, 30*24*time.Hour, retirer.retention)
}

func TestService_StartIsIdempotent(t *testing.T) {
	retirer := &fakeRetirer{}
	cfg := &config.RetentionConfig{
		CaseRetentionDays: 365,
		CleanupInterval:   time.Hour,
	}
	svc := NewService(cfg, retirer)

	svc.Start(context.Background())
	svc.Start(context.Background())
	svc.Stop()

	assert.Equal(t, 1, retirer.calls, "only the initial run should have fired")
}

func TestService_StopWithoutStart(t *testing.T) {
	svc := NewService(&config.RetentionConfig{CleanupInterval: time.Hour}, &fakeRetirer{})
	svc.Stop()
}
