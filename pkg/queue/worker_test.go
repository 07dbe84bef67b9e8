package queue

import (
	"testing"
	"time"

	"github.com/caseops/inquest/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestPollInterval_Jitter(t *testing.T) {
	w := &Worker{config: &config.QueueConfig{
		PollInterval:       time.Second,
		PollIntervalJitter: 500 * time.Millisecond,
	}}

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}
}

func TestPollInterval_NoJitter(t *testing.T) {
	w := &Worker{config: &config.QueueConfig{
		PollInterval:       2 * time.Second,
		PollIntervalJitter: 0,
	}}
	assert.Equal(t, 2*time.Second, w.pollInterval())
}

func TestWorkerHealth_Tracking(t *testing.T) {
	w := NewWorker("pod-1-worker-0", "pod-1", nil, &config.QueueConfig{}, nil, nil, nil, nil)

	h := w.Health()
	assert.Equal(t, string(WorkerStatusIdle), h.Status)
	assert.Empty(t, h.CurrentJobID)

	w.setStatus(WorkerStatusWorking, "rep-1")
	h = w.Health()
	assert.Equal(t, string(WorkerStatusWorking), h.Status)
	assert.Equal(t, "rep-1", h.CurrentJobID)
	assert.Zero(t, h.JobsProcessed)
}
