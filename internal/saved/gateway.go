// Package saved is the persistence gateway for saved tweets. Every storage
// failure is logged and turned into "no state change"; nothing is retried and
// no error reaches the caller.
package saved

import (
	"context"
	"log/slog"

	"github.com/ahndee-p/remixer/internal/model"
)

type Store interface {
	Save(ctx context.Context, content string) (*model.SavedItem, error)
	GetAll(ctx context.Context) ([]model.SavedItem, error)
	GetRecent(ctx context.Context, limit int) ([]model.SavedItem, error)
	Delete(ctx context.Context, id int64) error
}

type Gateway struct {
	store Store
}

func NewGateway(store Store) *Gateway {
	return &Gateway{store: store}
}

func (g *Gateway) Persist(ctx context.Context, content string) (*model.SavedItem, bool) {
	item, err := g.store.Save(ctx, content)
	if err != nil {
		slog.Error("error saving item", "error", err)
		return nil, false
	}
	return item, true
}

func (g *Gateway) ListAll(ctx context.Context) []model.SavedItem {
	items, err := g.store.GetAll(ctx)
	if err != nil {
		slog.Error("error fetching saved items", "error", err)
		return []model.SavedItem{}
	}
	if items == nil {
		return []model.SavedItem{}
	}
	return items
}

func (g *Gateway) ListRecent(ctx context.Context, limit int) []model.SavedItem {
	items, err := g.store.GetRecent(ctx, limit)
	if err != nil {
		slog.Error("error fetching recent saved items", "error", err, "limit", limit)
		return []model.SavedItem{}
	}
	if items == nil {
		return []model.SavedItem{}
	}
	return items
}

func (g *Gateway) Remove(ctx context.Context, id int64) bool {
	if err := g.store.Delete(ctx, id); err != nil {
		slog.Error("error deleting saved item", "error", err, "id", id)
		return false
	}
	return true
}
