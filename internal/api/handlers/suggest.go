package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nikhilbhutani/aphasiarelay/internal/aiclient"
	"github.com/nikhilbhutani/aphasiarelay/internal/suggest"
)

const errSuggestFailed = "Failed to generate suggestions via server."

type SuggestRequest struct {
	UserText string `json:"user_text"`
	Context  string `json:"context"`
}

type SuggestHandler struct {
	svc *suggest.Service
}

// NewSuggestHandler accepts a nil client; every request is then answered
// with a configuration error.
func NewSuggestHandler(client *aiclient.Client) *SuggestHandler {
	h := &SuggestHandler{}
	if client != nil {
		h.svc = suggest.NewService(client.Chat, client.ChatModel)
	}
	return h
}

// Suggest returns the model's candidate rephrasings of user_text as one string.
func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	if h.svc == nil {
		writeError(w, http.StatusInternalServerError, errNotConfigured)
		return
	}
	defer recoverJSON(w, errSuggestFailed, false)

	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UserText == "" || req.Context == "" {
		writeError(w, http.StatusBadRequest, "Missing user_text or context")
		return
	}

	content, err := h.svc.Generate(r.Context(), req.UserText, req.Context)
	if err != nil {
		slog.Error("openai chat error", "error", err)
		writeError(w, http.StatusInternalServerError, errSuggestFailed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"content": content})
}
