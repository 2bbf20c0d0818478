package stt

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAISTTConfig holds configuration for the OpenAI STT backend.
type OpenAISTTConfig struct {
	APIKey  string
	BaseURL string // default: "https://api.openai.com/v1"
	Model   string // default: "whisper-1"
}

// OpenAISTT transcribes audio using OpenAI's Whisper API (or a compatible endpoint).
type OpenAISTT struct {
	client *openai.Client
	model  string
}

// NewOpenAISTT creates an OpenAISTT with defaults applied. The underlying
// HTTP client has no timeout; callers bound the call through ctx.
func NewOpenAISTT(cfg OpenAISTTConfig) *OpenAISTT {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.Model == "" {
		cfg.Model = openai.Whisper1
	}
	return &OpenAISTT{
		client: openai.NewClientWithConfig(oc),
		model:  cfg.Model,
	}
}

func (o *OpenAISTT) Name() string { return "openai-whisper" }

// typedReader lets the form builder label the file part with a fixed
// Content-Type.
type typedReader struct {
	io.Reader
	contentType string
}

func (r typedReader) ContentType() string { return r.contentType }

// Transcribe uploads the file at FilePath under FileName and ContentType.
func (o *OpenAISTT) Transcribe(ctx context.Context, req TranscriptionRequest) (*TranscriptionResponse, error) {
	f, err := os.Open(req.FilePath)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	fileName := req.FileName
	if fileName == "" {
		fileName = filepath.Base(req.FilePath)
	}
	var reader io.Reader = f
	if req.ContentType != "" {
		reader = typedReader{Reader: f, contentType: req.ContentType}
	}

	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    o.model,
		FilePath: fileName,
		Reader:   reader,
		Language: req.Language,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("openai transcription: %w", err)
	}

	return &TranscriptionResponse{Text: resp.Text}, nil
}
