package stt

import "context"

// TranscriptionRequest holds the parameters for audio transcription.
// FileName and ContentType describe the upload as the provider sees it and
// need not match the file at FilePath.
type TranscriptionRequest struct {
	FilePath    string
	FileName    string
	ContentType string
	Language    string
}

// TranscriptionResponse holds the transcription result.
type TranscriptionResponse struct {
	Text string `json:"text"`
}

// Provider is the interface for speech-to-text backends.
type Provider interface {
	Transcribe(ctx context.Context, req TranscriptionRequest) (*TranscriptionResponse, error)
	Name() string
}
