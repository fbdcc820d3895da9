package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "GROQ_API_KEY", "GROQ_MODEL", "GEMINI_API_KEY", "LLM_TIMEOUT_SECONDS", "DATABASE_URL"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	require.Equal(t, "8000", cfg.Port)
	require.Equal(t, "llama-3.3-70b-versatile", cfg.GroqModel)
	require.Equal(t, "https://api.groq.com/openai/v1", cfg.GroqBaseURL)
	require.Equal(t, 90, cfg.LLMTimeoutSeconds)
	require.False(t, cfg.AIEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GROQ_MODEL", "llama-3.1-8b-instant")
	t.Setenv("LLM_TIMEOUT_SECONDS", "30")

	cfg := Load()
	require.True(t, cfg.AIEnabled())
	require.Equal(t, "llama-3.1-8b-instant", cfg.GroqModel)
	require.Equal(t, 30, cfg.LLMTimeoutSeconds)
}

func TestLoadIgnoresBadTimeout(t *testing.T) {
	t.Setenv("LLM_TIMEOUT_SECONDS", "not-a-number")
	require.Equal(t, 90, Load().LLMTimeoutSeconds)
}
