package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ahndee-p/remixer/internal/inflight"
	"github.com/ahndee-p/remixer/internal/model"
	"github.com/ahndee-p/remixer/internal/remix"

	"github.com/gin-gonic/gin"
)

const ClientIDHeader = "X-Client-ID"

type Remixer interface {
	Remix(ctx context.Context, req model.TransformRequest) (*remix.Outcome, error)
}

type RemixHandler struct {
	remixer Remixer
	guard   inflight.Guard
	timeout time.Duration
}

func NewRemixHandler(remixer Remixer, guard inflight.Guard, timeout time.Duration) *RemixHandler {
	return &RemixHandler{remixer: remixer, guard: guard, timeout: timeout}
}

func (h *RemixHandler) PostRemix(c *gin.Context) {
	var req RemixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		c.Status(http.StatusNoContent)
		return
	}

	// The generation call outlives a client disconnect; only the server
	// timeout bounds it.
	releaseCtx := context.WithoutCancel(c.Request.Context())

	key := clientKey(c)
	token, acquired, err := h.guard.Acquire(releaseCtx, key)
	if err != nil {
		slog.Warn("in-flight guard unavailable, continuing without it", "client", key, "error", err)
	} else if !acquired {
		c.JSON(http.StatusConflict, gin.H{"error": "A remix is already in progress"})
		return
	}
	if acquired {
		// Runs after the generation timeout is cancelled, so it must not use ctx.
		defer func() {
			if err := h.guard.Release(releaseCtx, key, token); err != nil {
				slog.Error("error releasing in-flight guard", "client", key, "error", err)
			}
		}()
	}

	ctx := releaseCtx
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(releaseCtx, h.timeout)
		defer cancel()
	}

	outcome, err := h.remixer.Remix(ctx, model.TransformRequest{
		SourceText: req.Text,
		Kind:       parseKind(req.Kind),
	})
	if errors.Is(err, remix.ErrEmptyInput) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		slog.Error("error remixing content", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred. Please try again."})
		return
	}

	switch {
	case errors.Is(outcome.Err, remix.ErrGeneration):
		c.JSON(http.StatusBadGateway, gin.H{"error": outcome.Message})
		return
	case errors.Is(outcome.Err, remix.ErrNoItems):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": outcome.Message})
		return
	}

	c.JSON(http.StatusOK, toRemixResponse(outcome))
}

// parseKind defaults to tweets when no kind is given. Unknown kinds are kept
// so they reach the generic instruction.
func parseKind(raw string) model.Kind {
	kind := strings.ToLower(strings.TrimSpace(raw))
	if kind == "" {
		return model.KindTweets
	}
	return model.Kind(kind)
}

func clientKey(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(ClientIDHeader)); id != "" {
		return id
	}
	return c.ClientIP()
}

func toRemixResponse(o *remix.Outcome) RemixResponse {
	items := make([]ItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = ItemResponse{
			Text:      item.Text,
			Order:     item.SourceOrder,
			Length:    item.Length(),
			OverLimit: item.OverLimit(),
		}
	}

	return RemixResponse{
		Kind:   string(o.Kind),
		Output: o.Text,
		Items:  items,
		Model:  o.ModelUsed,
	}
}
