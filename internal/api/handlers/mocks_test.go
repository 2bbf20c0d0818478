package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nikhilbhutani/aphasiarelay/internal/llm"
	"github.com/nikhilbhutani/aphasiarelay/internal/stt"
)

type MockSpeech struct {
	mock.Mock
}

func (m *MockSpeech) Name() string { return "mock-speech" }

func (m *MockSpeech) Transcribe(ctx context.Context, req stt.TranscriptionRequest) (*stt.TranscriptionResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*stt.TranscriptionResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockChat struct {
	mock.Mock
}

func (m *MockChat) Name() string { return "mock-chat" }

func (m *MockChat) ChatCompletion(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*llm.ChatResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}
