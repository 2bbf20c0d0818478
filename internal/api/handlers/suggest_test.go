package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nikhilbhutani/aphasiarelay/internal/aiclient"
	"github.com/nikhilbhutani/aphasiarelay/internal/llm"
	"github.com/nikhilbhutani/aphasiarelay/internal/suggest"
)

func suggestRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/suggest", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSuggest_NotConfigured(t *testing.T) {
	rr := httptest.NewRecorder()
	NewSuggestHandler(nil).Suggest(rr, suggestRequest(`{"user_text":"me water","context":"ctx"}`))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Server not configured: API Key missing.", decodeBody(t, rr)["error"])
}

func TestSuggest_BadRequest(t *testing.T) {
	chat := new(MockChat)
	h := NewSuggestHandler(&aiclient.Client{Chat: chat, ChatModel: "gpt-4o"})

	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty user_text", `{"user_text":"","context":"ctx"}`, "Missing user_text or context"},
		{"missing context", `{"user_text":"me water"}`, "Missing user_text or context"},
		{"empty object", `{}`, "Missing user_text or context"},
		{"not json", `user_text=me`, "invalid request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.Suggest(rr, suggestRequest(tt.body))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.want, decodeBody(t, rr)["error"])
		})
	}

	chat.AssertNotCalled(t, "ChatCompletion", mock.Anything, mock.Anything)
}

func TestSuggest_Success(t *testing.T) {
	chat := new(MockChat)
	chat.On("ChatCompletion", mock.Anything, llm.ChatRequest{
		Model: "gpt-4o",
		Messages: []llm.Message{
			{Role: "system", Content: "Patient is at a restaurant." + suggest.Instructions},
			{Role: "user", Content: "food want me"},
		},
		Temperature: 0.2,
		MaxTokens:   100,
	}).Return(&llm.ChatResponse{Content: "I am hungry"}, nil).Once()

	rr := httptest.NewRecorder()
	NewSuggestHandler(&aiclient.Client{Chat: chat, ChatModel: "gpt-4o"}).
		Suggest(rr, suggestRequest(`{"user_text":"food want me","context":"Patient is at a restaurant."}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]string{"content": "I am hungry"}, decodeBody(t, rr))
	chat.AssertExpectations(t)
}

func TestSuggest_ProviderErrorIsNotSurfaced(t *testing.T) {
	chat := new(MockChat)
	chat.On("ChatCompletion", mock.Anything, mock.Anything).
		Return(nil, errors.New("openai chat: secret upstream detail")).Once()

	rr := httptest.NewRecorder()
	NewSuggestHandler(&aiclient.Client{Chat: chat, ChatModel: "gpt-4o"}).
		Suggest(rr, suggestRequest(`{"user_text":"x","context":"y"}`))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Failed to generate suggestions via server.", decodeBody(t, rr)["error"])
	assert.NotContains(t, rr.Body.String(), "secret upstream detail")
	chat.AssertExpectations(t)
}

func TestSuggest_PanicAnswersGenericJSON(t *testing.T) {
	chat := new(MockChat)
	chat.On("ChatCompletion", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { panic("nil choice") }).Once()

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		NewSuggestHandler(&aiclient.Client{Chat: chat, ChatModel: "gpt-4o"}).
			Suggest(rr, suggestRequest(`{"user_text":"x","context":"y"}`))
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, map[string]string{"error": "Failed to generate suggestions via server."}, decodeBody(t, rr))
}
