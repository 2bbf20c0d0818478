package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/nikhilbhutani/aphasiarelay/internal/aiclient"
	"github.com/nikhilbhutani/aphasiarelay/internal/stt"
	"github.com/nikhilbhutani/aphasiarelay/internal/tempstore"
)

// The provider always sees the upload under this name and type, whatever the
// browser recorded.
const (
	uploadFileName    = "audio.mp3"
	uploadContentType = "audio/mp3"
	uploadLanguage    = "en"

	errTranscribeFailed = "Failed to transcribe audio on the server: "
)

type TranscribeHandler struct {
	speech    stt.Provider
	store     *tempstore.Store
	maxMemory int64
}

// NewTranscribeHandler accepts a nil client; every request is then answered
// with a configuration error.
func NewTranscribeHandler(client *aiclient.Client, store *tempstore.Store, maxMemory int64) *TranscribeHandler {
	h := &TranscribeHandler{store: store, maxMemory: maxMemory}
	if client != nil {
		h.speech = client.Speech
	}
	return h
}

// Transcribe converts an uploaded audio file to text.
func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	if h.speech == nil {
		writeError(w, http.StatusInternalServerError, errNotConfigured)
		return
	}
	defer recoverJSON(w, errTranscribeFailed, true)

	if err := r.ParseMultipartForm(h.maxMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		slog.Warn("parse multipart form", "error", err)
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file part in the request")
		return
	}
	defer file.Close()

	entry, err := h.store.Save(file, ".mp3")
	if err != nil {
		slog.Error("transcription error", "error", err)
		writeError(w, http.StatusInternalServerError, errTranscribeFailed+err.Error())
		return
	}
	defer func() {
		if err := entry.Remove(); err != nil {
			slog.Error("remove transient upload", "path", entry.Path(), "error", err)
		}
	}()

	result, err := h.speech.Transcribe(r.Context(), stt.TranscriptionRequest{
		FilePath:    entry.Path(),
		FileName:    uploadFileName,
		ContentType: uploadContentType,
		Language:    uploadLanguage,
	})
	if err != nil {
		slog.Error("transcription error", "provider", h.speech.Name(), "error", err)
		writeError(w, http.StatusInternalServerError, errTranscribeFailed+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": result.Text})
}
