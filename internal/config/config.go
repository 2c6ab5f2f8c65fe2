// Package config provides runtime configuration for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Backend names accepted in REPO_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds the configuration knobs for the HTTP server, the repository
// backend and the ingestion queue.
type Config struct {
	HTTPAddr          string
	Backend           string
	QueryDefaultLimit int
	QueueBuffer       int
	ShutdownTimeout   time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Load collects configuration from the environment (a .env file is honored
// when present) with defaults suitable for local runs.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		HTTPAddr:          getenv("HTTP_ADDR", ":51224"),
		Backend:           getenv("REPO_BACKEND", BackendMemory),
		QueryDefaultLimit: atoienv("QUERY_DEFAULT_LIMIT", 10),
		QueueBuffer:       atoienv("QUEUE_BUFFER", 64),
		ShutdownTimeout:   time.Duration(atoienv("SHUTDOWN_TIMEOUT_SEC", 15)) * time.Second,

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "closed_auction_metrics_db"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

// PostgresDSN assembles the connection string for the postgres backend.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}
