package repository

import (
	"context"
	"database/sql"

	"github.com/ahndee-p/remixer/internal/model"
)

type SavedItemRepository struct {
	db *sql.DB
}

func NewSavedItemRepository(db *sql.DB) *SavedItemRepository {
	return &SavedItemRepository{db: db}
}

func (r *SavedItemRepository) Save(ctx context.Context, content string) (*model.SavedItem, error) {
	var item model.SavedItem
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO saved_items(content)
		VALUES($1)
		RETURNING id, content, created_at
	`, content).Scan(&item.ID, &item.Content, &item.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *SavedItemRepository) GetAll(ctx context.Context) ([]model.SavedItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, content, created_at
		FROM saved_items
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSavedItems(rows)
}

func (r *SavedItemRepository) GetRecent(ctx context.Context, limit int) ([]model.SavedItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, content, created_at
		FROM saved_items
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSavedItems(rows)
}

// Delete succeeds for ids that do not exist.
func (r *SavedItemRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM saved_items WHERE id = $1
	`, id)
	return err
}

func (r *SavedItemRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func scanSavedItems(rows *sql.Rows) ([]model.SavedItem, error) {
	items := []model.SavedItem{}
	for rows.Next() {
		var item model.SavedItem
		if err := rows.Scan(&item.ID, &item.Content, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
