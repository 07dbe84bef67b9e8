package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inquest.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitialize_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 365, cfg.Retention.CaseRetentionDays)
	assert.False(t, cfg.LLM.Enabled())
	assert.Nil(t, cfg.Engine)
}

func TestInitialize_UserValuesOverrideDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 9090
llm:
  addr: localhost:50051
  model: sidecar-large
queue:
  worker_count: 3
  max_concurrent_jobs: 6
  job_timeout: 5m
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.LLM.Enabled())
	assert.Equal(t, "sidecar-large", cfg.LLM.Model)
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 6, cfg.Queue.MaxConcurrentJobs)
	assert.Equal(t, 5*time.Minute, cfg.Queue.JobTimeout)

	// Unset fields keep defaults.
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 3, cfg.LLM.MaxAttempts)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("INQUEST_LLM_ADDR", "sidecar:50051")
	dir := writeConfig(t, `
llm:
  addr: "{{.INQUEST_LLM_ADDR}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "sidecar:50051", cfg.LLM.Addr)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "server: [not: a: mapping")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "bad port",
			yaml: "server:\n  port: 70000\n",
			want: "port",
		},
		{
			name: "worker count below one",
			yaml: "queue:\n  worker_count: -1\n",
			want: "worker_count",
		},
		{
			name: "orphan threshold below heartbeat",
			yaml: "queue:\n  heartbeat_interval: 10m\n  orphan_threshold: 1m\n",
			want: "orphan_threshold",
		},
		{
			name: "engine step out of range",
			yaml: "engine:\n  supporting_evidence_step: 1.5\n",
			want: "supporting_evidence_step",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Initialize(context.Background(), writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEngineConfig_Settings(t *testing.T) {
	t.Run("nil keeps defaults", func(t *testing.T) {
		var e *EngineConfig
		s := e.Settings()
		assert.InDelta(t, 0.15, s.SupportingEvidenceStep, 1e-9)
		assert.Equal(t, 3, s.MemoryHotCapacity)
	})

	t.Run("overrides apply, rest untouched", func(t *testing.T) {
		step := 0.10
		hot := 5
		e := &EngineConfig{
			SupportingEvidenceStep: &step,
			MemoryHotCapacity:      &hot,
		}
		s := e.Settings()
		assert.InDelta(t, 0.10, s.SupportingEvidenceStep, 1e-9)
		assert.Equal(t, 5, s.MemoryHotCapacity)
		assert.InDelta(t, 0.20, s.RefutingEvidenceStep, 1e-9)
		assert.Equal(t, 10, s.MemoryColdCapacity)
	})
}
