package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const DefaultAnthropicModel = anthropic.ModelClaudeSonnet4_20250514

type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

func NewAnthropicClient(apiKey, model string, maxTokens int64, opts ...option.RequestOption) *AnthropicClient {
	// Every failure is terminal for the action that caused it.
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}, opts...)
	client := anthropic.NewClient(opts...)

	resolved := anthropic.Model(model)
	if model == "" {
		resolved = DefaultAnthropicModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &AnthropicClient{
		client:    &client,
		model:     resolved,
		maxTokens: maxTokens,
	}
}

func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (*Completion, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	text, err := firstText(resp.Content)
	if err != nil {
		return nil, err
	}

	return &Completion{
		Text:      text,
		ModelUsed: string(c.model),
	}, nil
}

func firstText(blocks []anthropic.ContentBlockUnion) (string, error) {
	if len(blocks) == 0 {
		return "", ErrEmptyResponse
	}

	variant, ok := blocks[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", fmt.Errorf("%w: first content block is %q", ErrUnexpectedFormat, blocks[0].Type)
	}
	return variant.Text, nil
}
