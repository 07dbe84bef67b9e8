package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RetryPolicy controls the retrying wrapper.
type RetryPolicy struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts int
	// PerCallTimeout bounds each individual attempt.
	PerCallTimeout time.Duration
	// BaseBackoff doubles per attempt up to MaxBackoff.
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

// DefaultRetryPolicy returns the standard policy: three attempts, 30s
// per call, exponential backoff from 1s capped at 10s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		PerCallTimeout: 30 * time.Second,
		BaseBackoff:    time.Second,
		MaxBackoff:     10 * time.Second,
	}
}

// RetryingClient wraps a Client with timeout and retry policy on the
// unary calls. Streaming is not retried; a broken stream surfaces to
// the caller, which treats the turn as failed.
type RetryingClient struct {
	inner  Client
	policy RetryPolicy
}

// NewRetryingClient wraps inner with the given policy.
func NewRetryingClient(inner Client, policy RetryPolicy) *RetryingClient {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &RetryingClient{inner: inner, policy: policy}
}

// Chat retries the wrapped Chat call per policy.
func (c *RetryingClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	var resp *ChatResponse
	err := c.retry(ctx, "Chat", func(callCtx context.Context) error {
		var callErr error
		resp, callErr = c.inner.Chat(callCtx, req)
		return callErr
	})
	return resp, err
}

// ChatStream delegates without retry.
func (c *RetryingClient) ChatStream(ctx context.Context, req *ChatRequest) (<-chan Chunk, error) {
	return c.inner.ChatStream(ctx, req)
}

// Embed retries the wrapped Embed call per policy.
func (c *RetryingClient) Embed(ctx context.Context, text string) ([]float32, error) {
	var vec []float32
	err := c.retry(ctx, "Embed", func(callCtx context.Context) error {
		var callErr error
		vec, callErr = c.inner.Embed(callCtx, text)
		return callErr
	})
	return vec, err
}

// Close releases the wrapped client.
func (c *RetryingClient) Close() error {
	return c.inner.Close()
}

func (c *RetryingClient) retry(ctx context.Context, op string, call func(context.Context) error) error {
	backoff := c.policy.BaseBackoff
	var lastErr error

	for attempt := 1; attempt <= c.policy.MaxAttempts; attempt++ {
		callCtx := ctx
		var cancel context.CancelFunc
		if c.policy.PerCallTimeout > 0 {
			callCtx, cancel = context.WithTimeout(ctx, c.policy.PerCallTimeout)
		}
		lastErr = call(callCtx)
		if cancel != nil {
			cancel()
		}
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if attempt < c.policy.MaxAttempts {
			slog.Warn("LLM call failed, retrying",
				"operation", op,
				"attempt", attempt,
				"backoff", backoff,
				"error", lastErr)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
			backoff *= 2
			if backoff > c.policy.MaxBackoff {
				backoff = c.policy.MaxBackoff
			}
		}
	}
	return fmt.Errorf("%s failed after %d attempts: %w", op, c.policy.MaxAttempts, lastErr)
}
