package aiclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhilbhutani/aphasiarelay/internal/config"
)

func TestNew_MissingCredential(t *testing.T) {
	c, err := New(config.OpenAIConfig{ChatModel: "gpt-4o"})
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestNew(t *testing.T) {
	c, err := New(config.OpenAIConfig{APIKey: "sk-test", ChatModel: "gpt-4o", STTModel: "whisper-1"})
	require.NoError(t, err)

	assert.Equal(t, "openai", c.Chat.Name())
	assert.Equal(t, "openai-whisper", c.Speech.Name())
	assert.Equal(t, "gpt-4o", c.ChatModel)
}
