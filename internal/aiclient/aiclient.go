// Package aiclient builds the process-wide handle to the AI provider.
package aiclient

import (
	"errors"

	"github.com/nikhilbhutani/aphasiarelay/internal/config"
	"github.com/nikhilbhutani/aphasiarelay/internal/llm"
	"github.com/nikhilbhutani/aphasiarelay/internal/stt"
)

// ErrMissingCredential means OPENAI_API_KEY was not set at startup.
var ErrMissingCredential = errors.New("OPENAI_API_KEY not set")

// Client is shared read-only by all handlers for the process lifetime.
type Client struct {
	Chat      llm.Provider
	Speech    stt.Provider
	ChatModel string
}

func New(cfg config.OpenAIConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingCredential
	}
	return &Client{
		Chat: llm.NewOpenAIProvider(cfg.APIKey, cfg.BaseURL),
		Speech: stt.NewOpenAISTT(stt.OpenAISTTConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.STTModel,
		}),
		ChatModel: cfg.ChatModel,
	}, nil
}
