package llm

import (
	"context"
	"errors"
)

const DefaultMaxTokens = 1024

var (
	ErrEmptyResponse    = errors.New("llm: empty response")
	ErrUnexpectedFormat = errors.New("llm: unexpected response format")
)

type Completion struct {
	Text      string
	ModelUsed string
}

// Client sends a single user message and returns the first text block verbatim.
type Client interface {
	Complete(ctx context.Context, prompt string) (*Completion, error)
}
