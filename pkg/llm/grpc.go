package llm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	llmv1 "github.com/caseops/inquest/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCClient implements Client against the model sidecar.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
	model  string
}

// NewGRPCClient connects to the sidecar at addr. The connection is
// lazy; failures surface on the first call.
func NewGRPCClient(addr, model string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
		model:  model,
	}, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// Chat collects the streaming reply into a single response.
func (c *GRPCClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	chunks, err := c.ChatStream(ctx, req)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	resp := &ChatResponse{}
	for chunk := range chunks {
		if chunk.Err != "" {
			return nil, fmt.Errorf("LLM stream error: %s", chunk.Err)
		}
		sb.WriteString(chunk.Content)
		if chunk.Usage != nil {
			resp.Usage = *chunk.Usage
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp.Content = sb.String()
	return resp, nil
}

// ChatStream calls the sidecar's streaming Chat RPC.
func (c *GRPCClient) ChatStream(ctx context.Context, req *ChatRequest) (<-chan Chunk, error) {
	stream, err := c.client.Chat(ctx, c.toProto(req))
	if err != nil {
		return nil, fmt.Errorf("gRPC Chat call failed: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- Chunk{Err: err.Error()}:
				case <-ctx.Done():
				}
				return
			}
			chunk, ok := fromProtoChunk(resp)
			if !ok {
				continue
			}
			select {
			case ch <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

// Embed calls the sidecar's Embed RPC.
func (c *GRPCClient) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.client.Embed(ctx, &llmv1.EmbedRequest{Text: text, Model: c.model})
	if err != nil {
		return nil, fmt.Errorf("gRPC Embed call failed: %w", err)
	}
	return resp.Vector, nil
}

func (c *GRPCClient) toProto(req *ChatRequest) *llmv1.ChatRequest {
	out := &llmv1.ChatRequest{
		CaseId:         req.CaseID,
		TurnNumber:     int32(req.TurnNumber),
		Model:          c.model,
		ResponseSchema: req.ResponseSchema,
		MaxTokens:      req.MaxTokens,
		Temperature:    req.Temperature,
	}
	out.Messages = make([]*llmv1.Message, len(req.Messages))
	for i, m := range req.Messages {
		out.Messages[i] = &llmv1.Message{
			Role:    toProtoRole(m.Role),
			Content: m.Content,
		}
	}
	return out
}

func toProtoRole(role Role) llmv1.Message_Role {
	switch role {
	case RoleSystem:
		return llmv1.Message_ROLE_SYSTEM
	case RoleAssistant:
		return llmv1.Message_ROLE_ASSISTANT
	default:
		return llmv1.Message_ROLE_USER
	}
}

func fromProtoChunk(resp *llmv1.ChatChunk) (Chunk, bool) {
	switch x := resp.ChunkType.(type) {
	case *llmv1.ChatChunk_Text:
		return Chunk{Content: x.Text.Content, IsFinal: x.Text.IsFinal}, true
	case *llmv1.ChatChunk_Usage:
		return Chunk{
			Usage: &Usage{
				InputTokens:  x.Usage.InputTokens,
				OutputTokens: x.Usage.OutputTokens,
				TotalTokens:  x.Usage.TotalTokens,
			},
		}, true
	case *llmv1.ChatChunk_Error:
		slog.Warn("LLM provider error chunk", "code", x.Error.Code, "message", x.Error.Message)
		return Chunk{Err: x.Error.Message}, true
	default:
		return Chunk{}, false
	}
}
