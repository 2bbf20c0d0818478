package suggest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nikhilbhutani/aphasiarelay/internal/llm"
)

// Instructions is appended to the caller's context to form the system prompt.
const Instructions = `
You are an aphasia speech assistant. Generate 3 possible corrections:
1. Retain the user's intended meaning.
2. Use first-person perspective ("I") unless user input clearly indicates someone else.
3. Provide one complete sentence per suggestion.
4. Do not number suggestions—just separate them with newlines.
5. Keep sentences simple, clear, and conversational.
`

const (
	Temperature = 0.2
	MaxTokens   = 100
)

// SystemPrompt prepends the caller-supplied situation to Instructions as is;
// nothing is escaped.
func SystemPrompt(situation string) string {
	return situation + Instructions
}

// Service turns a halting utterance into candidate rephrasings.
type Service struct {
	provider llm.Provider
	model    string
}

func NewService(p llm.Provider, model string) *Service {
	return &Service{provider: p, model: model}
}

// Generate returns the model's raw reply. The reply is expected to hold one
// suggestion per line; splitting is left to the client.
func (s *Service) Generate(ctx context.Context, userText, situation string) (string, error) {
	resp, err := s.provider.ChatCompletion(ctx, llm.ChatRequest{
		Model: s.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: SystemPrompt(situation)},
			{Role: llm.RoleUser, Content: userText},
		},
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generate suggestions: %w", err)
	}

	slog.Debug("suggestions generated",
		"provider", s.provider.Name(),
		"model", resp.Model,
		"input_tokens", resp.InputTokens,
		"output_tokens", resp.OutputTokens,
		"cost_usd", resp.CostUSD,
		"latency_ms", resp.LatencyMs,
	)
	return resp.Content, nil
}
