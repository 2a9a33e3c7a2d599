package config

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PORT", "DATABASE_URL", "REDIS_URL", "FRONTEND_URL", "LLM_PROVIDER",
		"ANTHROPIC_API_KEY", "CLAUDE_API_KEY", "OPENAI_API_KEY", "LLM_MODEL",
		"LLM_MAX_TOKENS", "GENERATION_TIMEOUT", "INFLIGHT_TTL",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "anthropic", cfg.LLMProvider)
	assert.Equal(t, int64(1024), cfg.LLMMaxTokens)
	assert.Equal(t, 60*time.Second, cfg.GenerationTimeout)
	assert.Equal(t, 2*time.Minute, cfg.InFlightTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LLM_PROVIDER", " OpenAI ")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_MODEL", "gpt-4.1-mini")
	t.Setenv("LLM_MAX_TOKENS", "512")
	t.Setenv("GENERATION_TIMEOUT", "15s")
	t.Setenv("FRONTEND_URL", "https://remix.example.com")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, "sk-test", cfg.LLMAPIKey)
	assert.Equal(t, "gpt-4.1-mini", cfg.LLMModel)
	assert.Equal(t, int64(512), cfg.LLMMaxTokens)
	assert.Equal(t, 15*time.Second, cfg.GenerationTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://remix.example.com"}, cfg.AllowedOrigins())
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_MAX_TOKENS", "lots")
	t.Setenv("INFLIGHT_TTL", "-1m")

	cfg := Load()

	assert.Equal(t, int64(1024), cfg.LLMMaxTokens)
	assert.Equal(t, 2*time.Minute, cfg.InFlightTTL)
}

func TestLoadRaisesInFlightTTLAboveGenerationTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("GENERATION_TIMEOUT", "60s")
	t.Setenv("INFLIGHT_TTL", "30s")

	cfg := Load()

	assert.Equal(t, 60*time.Second, cfg.GenerationTimeout)
	assert.Equal(t, 90*time.Second, cfg.InFlightTTL)

	t.Setenv("INFLIGHT_TTL", "60s")
	assert.Equal(t, 90*time.Second, Load().InFlightTTL)

	t.Setenv("INFLIGHT_TTL", "61s")
	assert.Equal(t, 61*time.Second, Load().InFlightTTL)
}

func TestLoadLLMProvider(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"", "anthropic"},
		{"anthropic", "anthropic"},
		{"OPENAI", "openai"},
		{"gemini", "anthropic"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("LLM_PROVIDER", tt.value)
			assert.Equal(t, tt.want, LoadLLMProvider())
		})
	}
}

func TestAnthropicKeyFallsBackToClaudeKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLAUDE_API_KEY", "claude-key")

	assert.Equal(t, "claude-key", Load().LLMAPIKey)

	t.Setenv("ANTHROPIC_API_KEY", "anthropic-key")
	assert.Equal(t, "anthropic-key", Load().LLMAPIKey)
}
