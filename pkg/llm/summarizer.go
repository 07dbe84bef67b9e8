package llm

import (
	"context"
	"fmt"
	"strings"
)

// Summarizer condenses text through the model, satisfying the memory
// compaction contract. Failures propagate; the caller falls back to
// deterministic truncation.
type Summarizer struct {
	client Client
}

// NewSummarizer creates a Summarizer over the given client.
func NewSummarizer(client Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize asks the model for a summary within roughly maxTokens.
func (s *Summarizer) Summarize(ctx context.Context, text string, maxTokens int) (string, error) {
	resp, err := s.client.Chat(ctx, &ChatRequest{
		MaxTokens: int32(maxTokens),
		Messages: []Message{
			{Role: RoleSystem, Content: "Summarize investigation notes. Keep component names, error strings, timestamps, and hypothesis identifiers. Drop conversational filler."},
			{Role: RoleUser, Content: fmt.Sprintf("Summarize in at most %d tokens:\n\n%s", maxTokens, text)},
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Content), nil
}
