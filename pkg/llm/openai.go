package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const DefaultOpenAIModel = openai.ChatModelGPT4oMini

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	maxTokens int64
}

func NewOpenAIClient(apiKey, model string, maxTokens int64, opts ...option.RequestOption) *OpenAIClient {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}, opts...)
	client := openai.NewClient(opts...)

	resolved := openai.ChatModel(model)
	if model == "" {
		resolved = DefaultOpenAIModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &OpenAIClient{
		client:    &client,
		model:     resolved,
		maxTokens: maxTokens,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (*Completion, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               c.model,
		MaxCompletionTokens: openai.Int(c.maxTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return nil, fmt.Errorf("%w: first choice has no text content", ErrUnexpectedFormat)
	}

	return &Completion{
		Text:      content,
		ModelUsed: string(c.model),
	}, nil
}
