package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ahndee-p/remixer/internal/model"

	"github.com/gin-gonic/gin"
)

type SavedGateway interface {
	Persist(ctx context.Context, content string) (*model.SavedItem, bool)
	ListAll(ctx context.Context) []model.SavedItem
	ListRecent(ctx context.Context, limit int) []model.SavedItem
	Remove(ctx context.Context, id int64) bool
}

type SavedHandler struct {
	gateway SavedGateway
}

func NewSavedHandler(gateway SavedGateway) *SavedHandler {
	return &SavedHandler{gateway: gateway}
}

func toSavedItemResponse(item model.SavedItem) SavedItemResponse {
	return SavedItemResponse{
		ID:        item.ID,
		Content:   item.Content,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
	}
}

func (h *SavedHandler) GetSaved(c *gin.Context) {
	var items []model.SavedItem
	if c.Query("limit") != "" {
		items = h.gateway.ListRecent(c.Request.Context(), getQueryLimit(c))
	} else {
		items = h.gateway.ListAll(c.Request.Context())
	}

	res := make([]SavedItemResponse, len(items))
	for i, item := range items {
		res[i] = toSavedItemResponse(item)
	}

	c.JSON(http.StatusOK, res)
}

func (h *SavedHandler) PostSaved(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	item, ok := h.gateway.Persist(c.Request.Context(), req.Content)
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not save item"})
		return
	}

	c.JSON(http.StatusCreated, toSavedItemResponse(*item))
}

func (h *SavedHandler) DeleteSaved(c *gin.Context) {
	id := c.Param("id")

	itemID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Error("invalid saved item id", "id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	if !h.gateway.Remove(c.Request.Context(), itemID) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not delete item"})
		return
	}

	c.Status(http.StatusNoContent)
}
