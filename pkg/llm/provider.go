package llm

import (
	"fmt"
	"strings"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// NewClient picks the provider implementation. Model and maxTokens fall back
// to the provider defaults when empty.
func NewClient(provider, apiKey, model string, maxTokens int64) (Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("llm: API key for provider %q is not set", provider)
	}

	switch provider {
	case ProviderAnthropic, "":
		return NewAnthropicClient(apiKey, model, maxTokens), nil
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey, model, maxTokens), nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", provider)
	}
}
