package config

import (
	"log/slog"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadDotEnvOnce sync.Once

// LoadDotEnv reads .env once when it exists. Variables already set in the
// environment win.
func LoadDotEnv() {
	loadDotEnvOnce.Do(func() {
		if _, err := os.Stat(".env"); err != nil {
			return
		}
		if err := godotenv.Load(); err != nil {
			slog.Warn("failed to load .env", "error", err)
		}
	})
}
