// Package ports declares the contracts the engine core consumes from
// outer-layer collaborators: file storage, vector search, background
// jobs, and caching. The LLM contract lives in pkg/llm and the case
// repository contract in pkg/services.
package ports

import (
	"context"
	"time"
)

// FileStore stores evidence blobs. Paths are opaque storage keys.
type FileStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) error
	Download(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	// URL returns a time-limited download URL for the stored object.
	URL(ctx context.Context, path string, expiresIn time.Duration) (string, error)
}

// VectorMatch is one search hit from the vector store.
type VectorMatch struct {
	ID       string
	Score    float64
	Metadata map[string]string
}

// VectorStore indexes evidence embeddings for similarity search.
// Search failures degrade to empty results at the call site; the store
// itself reports errors.
type VectorStore interface {
	Upsert(ctx context.Context, collection, id string, vector []float32, metadata map[string]string) error
	Search(ctx context.Context, collection string, vector []float32, topK int, filter map[string]string) ([]VectorMatch, error)
	Delete(ctx context.Context, collection, id string) error
}

// JobStatus is the lifecycle status of a background job.
type JobStatus string

// Job statuses.
const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
	JobCancelled JobStatus = "cancelled"
)

// JobQueue runs work outside the turn path. Workers never mutate
// investigation state; their results are absorbed by a later turn.
type JobQueue interface {
	Enqueue(ctx context.Context, jobType string, payload []byte, queue string, priority int) (string, error)
	Status(ctx context.Context, jobID string) (JobStatus, error)
	Result(ctx context.Context, jobID string) ([]byte, error)
	Cancel(ctx context.Context, jobID string) error
}

// Cache is a prefix-scoped key/value store with TTL, used by the outer
// layer for rate limiting and session scratch space.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
