// Package remix turns source text into a rewritten text or a list of tweets
// by way of a generation client.
package remix

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahndee-p/remixer/internal/model"
	"github.com/ahndee-p/remixer/pkg/llm"
)

const (
	NoItemsMessage    = "No valid tweets were generated. Please try again."
	unknownErrorCause = "Unknown error"
)

var (
	ErrEmptyInput = errors.New("remix: source text is empty")
	ErrGeneration = errors.New("remix: generation failed")
	ErrNoItems    = errors.New("remix: no valid items generated")
)

type Orchestrator struct {
	client llm.Client
}

func NewOrchestrator(client llm.Client) *Orchestrator {
	return &Orchestrator{client: client}
}

// Outcome is what one remix action produced. Err is nil on success, otherwise
// ErrGeneration or ErrNoItems with Message holding the user-visible text.
type Outcome struct {
	Kind      model.Kind
	Text      string
	Items     []model.Item
	ModelUsed string
	Err       error
	Message   string
}

// Transform calls the generation client once. Blank source text is a no-op and
// returns the zero result without any outbound call.
func (o *Orchestrator) Transform(ctx context.Context, sourceText string, kind model.Kind) model.TransformResult {
	if strings.TrimSpace(sourceText) == "" {
		return model.TransformResult{}
	}

	completion, err := o.client.Complete(ctx, BuildPrompt(kind, sourceText))
	if err != nil {
		slog.Error("error generating remix", "kind", kind, "error", err)
		return model.TransformResult{ErrorMessage: errorCause(err)}
	}

	return model.TransformResult{
		RawText:   completion.Text,
		ModelUsed: completion.ModelUsed,
	}
}

func errorCause(err error) string {
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return unknownErrorCause
}

func SplitIntoItems(rawText string) []model.Item {
	items := []model.Item{}
	for _, segment := range strings.Split(rawText, ItemSeparator) {
		text := strings.TrimSpace(segment)
		if text == "" {
			continue
		}
		items = append(items, model.Item{Text: text, SourceOrder: len(items)})
	}
	return items
}

func (o *Orchestrator) Remix(ctx context.Context, req model.TransformRequest) (*Outcome, error) {
	if strings.TrimSpace(req.SourceText) == "" {
		return nil, ErrEmptyInput
	}

	result := o.Transform(ctx, req.SourceText, req.Kind)
	outcome := &Outcome{Kind: req.Kind, ModelUsed: result.ModelUsed}

	if result.Failed() {
		outcome.Err = ErrGeneration
		outcome.Message = fmt.Sprintf("Error occurred while remixing content: %s", result.ErrorMessage)
		return outcome, nil
	}

	if req.Kind != model.KindTweets {
		outcome.Text = result.RawText
		return outcome, nil
	}

	items := SplitIntoItems(result.RawText)
	if len(items) == 0 {
		slog.Warn("remix produced no items", "kind", req.Kind, "raw_length", len(result.RawText))
		outcome.Err = ErrNoItems
		outcome.Message = NoItemsMessage
		return outcome, nil
	}

	outcome.Items = items
	return outcome, nil
}
