package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/ahndee-p/remixer/db"
	"github.com/ahndee-p/remixer/internal/config"
	"github.com/ahndee-p/remixer/internal/handler"
	"github.com/ahndee-p/remixer/internal/inflight"
	"github.com/ahndee-p/remixer/internal/remix"
	"github.com/ahndee-p/remixer/internal/repository"
	"github.com/ahndee-p/remixer/internal/saved"
	"github.com/ahndee-p/remixer/pkg/llm"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer conn.Close()

	client, err := llm.NewClient(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMMaxTokens)
	if err != nil {
		log.Fatalf("error creating LLM client: %v", err)
	}

	guard, closeGuard := newGuard(cfg)
	defer closeGuard()

	savedRepo := repository.NewSavedItemRepository(conn)

	remixHandler := handler.NewRemixHandler(remix.NewOrchestrator(client), guard, cfg.GenerationTimeout)
	savedHandler := handler.NewSavedHandler(saved.NewGateway(savedRepo))
	healthHandler := handler.NewHealthHandler(savedRepo)

	allowedOrigins := cfg.AllowedOrigins()
	slog.Info("starting api", "port", cfg.Port, "llm_provider", cfg.LLMProvider, "allow_origins", allowedOrigins)

	r := handler.NewRouter(remixHandler, savedHandler, healthHandler, allowedOrigins)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func newGuard(cfg config.Config) (inflight.Guard, func()) {
	if cfg.RedisURL == "" {
		slog.Info("REDIS_URL not set, using in-memory in-flight guard")
		return inflight.NewMemoryGuard(), func() {}
	}

	rdb, err := db.ConnectRedis(context.Background(), cfg.RedisURL)
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	return inflight.NewRedisGuard(rdb, cfg.InFlightTTL), func() { rdb.Close() }
}
