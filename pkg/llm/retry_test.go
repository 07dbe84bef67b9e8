package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	failures int
	calls    int
	resp     *ChatResponse
}

func (f *fakeClient) Chat(_ context.Context, _ *ChatRequest) (*ChatResponse, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("upstream unavailable")
	}
	return f.resp, nil
}

func (f *fakeClient) ChatStream(_ context.Context, _ *ChatRequest) (<-chan Chunk, error) {
	ch := make(chan Chunk)
	close(ch)
	return ch, nil
}

func (f *fakeClient) Embed(_ context.Context, _ string) ([]float32, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("upstream unavailable")
	}
	return []float32{0.1}, nil
}

func (f *fakeClient) Close() error { return nil }

func fastPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		PerCallTimeout: time.Second,
		BaseBackoff:    time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}
}

func TestRetryingClient_Chat(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		fake := &fakeClient{failures: 2, resp: &ChatResponse{Content: "ok"}}
		c := NewRetryingClient(fake, fastPolicy())

		resp, err := c.Chat(context.Background(), &ChatRequest{})
		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Content)
		assert.Equal(t, 3, fake.calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		fake := &fakeClient{failures: 10}
		c := NewRetryingClient(fake, fastPolicy())

		_, err := c.Chat(context.Background(), &ChatRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "after 3 attempts")
		assert.Equal(t, 3, fake.calls)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		fake := &fakeClient{failures: 10}
		c := NewRetryingClient(fake, fastPolicy())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Chat(ctx, &ChatRequest{})
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, fake.calls)
	})
}

func TestRetryingClient_Embed(t *testing.T) {
	fake := &fakeClient{failures: 1}
	c := NewRetryingClient(fake, fastPolicy())

	vec, err := c.Embed(context.Background(), "text")
	require.NoError(t, err)
	assert.Len(t, vec, 1)
	assert.Equal(t, 2, fake.calls)
}
