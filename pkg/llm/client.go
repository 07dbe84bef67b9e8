// Package llm wraps the gRPC connection to the model sidecar. The
// sidecar owns provider selection and API keys; this package only
// speaks the wire protocol and adds retry and timeout policy.
package llm

import "context"

// Role identifies the author of a conversation message.
type Role string

// Conversation roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one conversation entry sent to the model.
type Message struct {
	Role    Role
	Content string
}

// ChatRequest is a completion request.
type ChatRequest struct {
	CaseID     string
	TurnNumber int
	Messages   []Message
	// ResponseSchema, when set, asks the sidecar to constrain the reply
	// to the given JSON schema.
	ResponseSchema string
	MaxTokens      int32
	Temperature    *float32
}

// Usage reports token consumption for one call.
type Usage struct {
	InputTokens  int32
	OutputTokens int32
	TotalTokens  int32
}

// ChatResponse is a completed (non-streaming) reply.
type ChatResponse struct {
	Content string
	Usage   Usage
}

// Chunk is one streamed fragment of a reply. Err is set instead of
// Content when the provider reported a failure mid-stream.
type Chunk struct {
	Content string
	IsFinal bool
	Usage   *Usage
	Err     string
}

// Client is the engine-facing LLM port.
type Client interface {
	// Chat sends a conversation and waits for the full reply.
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// ChatStream sends a conversation and returns a channel of reply
	// fragments. The channel is closed when the stream completes.
	ChatStream(ctx context.Context, req *ChatRequest) (<-chan Chunk, error)

	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Close releases the underlying connection.
	Close() error
}
