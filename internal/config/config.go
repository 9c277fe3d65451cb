// Package config loads service settings from a .env file and the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/tanroute/dijkstra"
)

// Config holds the service settings.
type Config struct {
	// NetworkFile, when set, loads the network from a text document
	// instead of the database.
	NetworkFile string

	DatabaseURL string
	NATSURL     string
	NATSSubject string
	HTTPAddr    string
	MetricsAddr string

	LogLevel     slog.Level
	Strategy     dijkstra.Strategy
	QueryTimeout time.Duration
}

// Load reads .env (if present) and the environment, applying defaults.
// Either a network file or a database must be configured.
func Load() (*Config, error) {
	// Load .env into environment (ignore if missing)
	_ = godotenv.Load()

	cfg := &Config{
		NetworkFile: os.Getenv("TAN_NETWORK_FILE"),
		NATSURL:     os.Getenv("NATS_URL"),
		NATSSubject: getenvDefault("NATS_SUBJECT", "tanroute.route"),
		HTTPAddr:    getenvDefault("HTTP_ADDR", ":8080"),
		MetricsAddr: os.Getenv("METRICS_ADDR"),
	}

	// Database URL: prefer DATABASE_URL / PG_DSN, else build from PG* vars
	cfg.DatabaseURL = firstNonEmpty(os.Getenv("DATABASE_URL"), os.Getenv("PG_DSN"))
	if cfg.DatabaseURL == "" && os.Getenv("PGDATABASE") != "" {
		host := getenvDefault("PGHOST", "127.0.0.1")
		port := getenvDefault("PGPORT", "5432")
		user := getenvDefault("PGUSER", "postgres")
		sslmode := getenvDefault("PGSSLMODE", "disable")
		auth := urlEscape(user)
		if pass := os.Getenv("PGPASSWORD"); pass != "" {
			auth += ":" + urlEscape(pass)
		}
		cfg.DatabaseURL = fmt.Sprintf("postgres://%s@%s:%s/%s?sslmode=%s", auth, host, port, os.Getenv("PGDATABASE"), sslmode)
	}
	if cfg.NetworkFile == "" && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("config: TAN_NETWORK_FILE or DATABASE_URL (or PGDATABASE) must be set")
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getenvDefault("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("config: invalid LOG_LEVEL: %w", err)
	}

	strategy, err := dijkstra.ParseStrategy(strings.ToLower(os.Getenv("SEARCH_STRATEGY")))
	if err != nil {
		return nil, fmt.Errorf("config: invalid SEARCH_STRATEGY: %w", err)
	}
	cfg.Strategy = strategy

	// Per-query timeout
	if v := os.Getenv("QUERY_TIMEOUT_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return nil, fmt.Errorf("config: invalid QUERY_TIMEOUT_MS: %q", v)
		}
		cfg.QueryTimeout = time.Duration(ms) * time.Millisecond
	} else {
		cfg.QueryTimeout = 2 * time.Second
	}

	return cfg, nil
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func urlEscape(s string) string {
	// Minimal escape for DSN user/pass with special chars
	r := strings.NewReplacer("@", "%40", ":", "%3A", "/", "%2F", "?", "%3F", "#", "%23")
	return r.Replace(s)
}
