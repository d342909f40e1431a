package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file if one exists; real environment variables win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}
}

func Get(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

func MustGet(key string) string {
	val := os.Getenv(key)
	if val == "" {
		slog.Error("required environment variable not set", "key", key)
		os.Exit(1)
	}
	return val
}

func DBConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		Get("DB_HOST", "localhost"),
		Get("DB_PORT", "5432"),
		Get("DB_USER", "postgres"),
		Get("DB_PASSWORD", "postgres"),
		Get("DB_NAME", "votingapp"),
		Get("DB_SSLMODE", "disable"),
	)
}
