package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ahndee-p/remixer/pkg/llm"
)

const (
	defaultPort              = "8080"
	defaultGenerationTimeout = 60 * time.Second
	defaultInFlightTTL       = 2 * time.Minute
	defaultFrontendOrigin    = "http://localhost:3000"

	// Headroom kept between the generation timeout and the in-flight lock TTL.
	inFlightTTLMargin = 30 * time.Second
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	FrontendURL string

	LLMProvider       string
	LLMAPIKey         string
	LLMModel          string
	LLMMaxTokens      int64
	GenerationTimeout time.Duration
	InFlightTTL       time.Duration
}

func Load() Config {
	LoadDotEnv()

	provider := LoadLLMProvider()

	cfg := Config{
		Port:              getString("PORT", defaultPort),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		FrontendURL:       os.Getenv("FRONTEND_URL"),
		LLMProvider:       provider,
		LLMAPIKey:         loadAPIKey(provider),
		LLMModel:          strings.TrimSpace(os.Getenv("LLM_MODEL")),
		LLMMaxTokens:      int64(getInt("LLM_MAX_TOKENS", llm.DefaultMaxTokens)),
		GenerationTimeout: getDuration("GENERATION_TIMEOUT", defaultGenerationTimeout),
		InFlightTTL:       getDuration("INFLIGHT_TTL", defaultInFlightTTL),
	}

	// A lock that expires while its remix is still generating would let a
	// second remix for the same client start.
	if cfg.InFlightTTL <= cfg.GenerationTimeout {
		ttl := cfg.GenerationTimeout + inFlightTTLMargin
		slog.Warn("INFLIGHT_TTL must exceed GENERATION_TIMEOUT, raising it",
			"inflight_ttl", cfg.InFlightTTL, "generation_timeout", cfg.GenerationTimeout, "using", ttl)
		cfg.InFlightTTL = ttl
	}
	return cfg
}

// AllowedOrigins is the CORS allow list: the local dev frontend plus FRONTEND_URL.
func (c Config) AllowedOrigins() []string {
	origins := []string{defaultFrontendOrigin}
	if c.FrontendURL != "" && c.FrontendURL != defaultFrontendOrigin {
		origins = append(origins, c.FrontendURL)
	}
	return origins
}

func LoadLLMProvider() string {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER")))
	switch provider {
	case llm.ProviderAnthropic, llm.ProviderOpenAI:
		return provider
	case "":
		return llm.ProviderAnthropic
	default:
		slog.Warn("unknown LLM_PROVIDER, using default", "value", provider, "default", llm.ProviderAnthropic)
		return llm.ProviderAnthropic
	}
}

func loadAPIKey(provider string) string {
	if provider == llm.ProviderOpenAI {
		return os.Getenv("OPENAI_API_KEY")
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("CLAUDE_API_KEY")
}

func getString(name, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return defaultValue
}

func getInt(name string, defaultValue int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		slog.Warn("invalid environment variable, using default", "name", name, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return v
}

func getDuration(name string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue
	}

	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		slog.Warn("invalid environment variable, using default", "name", name, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return v
}
