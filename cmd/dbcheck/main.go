// Command dbcheck inserts a test row into saved_items and prints the most
// recent rows. It exercises the same repository as the API.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/ahndee-p/remixer/db"
	"github.com/ahndee-p/remixer/internal/config"
	"github.com/ahndee-p/remixer/internal/repository"
)

func main() {
	content := flag.String("content", "Test tweet from CLI", "content of the test row")
	limit := flag.Int("limit", 5, "number of recent rows to list")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := repository.NewSavedItemRepository(conn)

	item, err := repo.Save(ctx, *content)
	if err != nil {
		log.Fatalf("error inserting test row: %v", err)
	}
	slog.Info("inserted test row", "id", item.ID, "created_at", item.CreatedAt)

	items, err := repo.GetRecent(ctx, *limit)
	if err != nil {
		log.Fatalf("error fetching recent rows: %v", err)
	}

	for _, i := range items {
		slog.Info("saved item", "id", i.ID, "content", i.Content, "created_at", i.CreatedAt)
	}
	slog.Info("db check complete", "listed", len(items))
}
