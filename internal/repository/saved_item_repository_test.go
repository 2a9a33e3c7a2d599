package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/assert/v2"
)

func newMockRepository(t *testing.T) (*SavedItemRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewSavedItemRepository(db), mock
}

func TestSave(t *testing.T) {
	repo, mock := newMockRepository(t)
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO saved_items").
		WithArgs("a tweet").
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "created_at"}).AddRow(7, "a tweet", createdAt))

	item, err := repo.Save(context.Background(), "a tweet")

	assert.Equal(t, nil, err)
	assert.Equal(t, int64(7), item.ID)
	assert.Equal(t, "a tweet", item.Content)
	assert.Equal(t, createdAt, item.CreatedAt)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestSave_DBError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("INSERT INTO saved_items").
		WithArgs("a tweet").
		WillReturnError(errors.New("DB down"))

	item, err := repo.Save(context.Background(), "a tweet")

	assert.NotEqual(t, nil, err)
	if item != nil {
		t.Fatal("expected nil item on error")
	}
}

func TestGetAll(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, content, created_at FROM saved_items ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "created_at"}).
			AddRow(2, "newer", now).
			AddRow(1, "older", now.Add(-time.Hour)))

	items, err := repo.GetAll(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(items))
	assert.Equal(t, "newer", items[0].Content)
	assert.Equal(t, int64(1), items[1].ID)
}

func TestGetAll_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT id, content, created_at FROM saved_items").
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "created_at"}))

	items, err := repo.GetAll(context.Background())

	assert.Equal(t, nil, err)
	if items == nil {
		t.Fatal("expected empty, non-nil slice")
	}
	assert.Equal(t, 0, len(items))
}

func TestGetRecent(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT id, content, created_at FROM saved_items ORDER BY created_at DESC LIMIT").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "created_at"}).AddRow(3, "latest", time.Now()))

	items, err := repo.GetRecent(context.Background(), 5)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(items))

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("DELETE FROM saved_items WHERE id").
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 4)

	assert.Equal(t, nil, err)
}

func TestDelete_MissingRowIsNotAnError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("DELETE FROM saved_items WHERE id").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 404)

	assert.Equal(t, nil, err)
}
