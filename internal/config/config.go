package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	DBPath             string
	LogLevel           string
	StatsAPIURL        string
	StatsAPITimeout    time.Duration
	RedisURL           string
	CacheTTL           time.Duration
	SyncWorkerCount    int
	SyncQueueSize      int
	MaxConcurrentFetch int
	TrendWindow        int
	TrendTopN          int
	CORSOrigins        []string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:               envOr("ADDR", ":8080"),
		DBPath:             envOr("DB_PATH", "file:gridstats.db"),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		StatsAPIURL:        envOr("STATS_API_URL", "http://localhost:5000"),
		StatsAPITimeout:    time.Duration(envIntOr("STATS_API_TIMEOUT_SECONDS", 15)) * time.Second,
		RedisURL:           os.Getenv("REDIS_URL"),
		CacheTTL:           time.Duration(envIntOr("CACHE_TTL_MINUTES", 30)) * time.Minute,
		SyncWorkerCount:    envIntOr("SYNC_WORKER_COUNT", 2),
		SyncQueueSize:      envIntOr("SYNC_QUEUE_SIZE", 32),
		MaxConcurrentFetch: envIntOr("MAX_CONCURRENT_FETCH", 6),
		TrendWindow:        envIntOr("TREND_WINDOW", 3),
		TrendTopN:          envIntOr("TREND_TOP_N", 3),
		CORSOrigins:        envListOr("CORS_ORIGINS", []string{"http://localhost:3000"}),
	}
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error

	if c.Addr == "" {
		errs = append(errs, errors.New("ADDR cannot be empty"))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("DB_PATH cannot be empty"))
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR, got %q", c.LogLevel))
	}
	if u, err := url.Parse(c.StatsAPIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("STATS_API_URL must be an absolute URL, got %q", c.StatsAPIURL))
	}
	if c.StatsAPITimeout <= 0 {
		errs = append(errs, errors.New("STATS_API_TIMEOUT_SECONDS must be positive"))
	}
	if c.CacheTTL <= 0 {
		errs = append(errs, errors.New("CACHE_TTL_MINUTES must be positive"))
	}
	if c.SyncWorkerCount < 1 || c.SyncWorkerCount > 32 {
		errs = append(errs, fmt.Errorf("SYNC_WORKER_COUNT must be between 1 and 32, got %d", c.SyncWorkerCount))
	}
	if c.SyncQueueSize < 1 {
		errs = append(errs, fmt.Errorf("SYNC_QUEUE_SIZE must be positive, got %d", c.SyncQueueSize))
	}
	if c.MaxConcurrentFetch < 1 || c.MaxConcurrentFetch > 50 {
		errs = append(errs, fmt.Errorf("MAX_CONCURRENT_FETCH must be between 1 and 50, got %d", c.MaxConcurrentFetch))
	}
	if c.TrendWindow < 2 {
		errs = append(errs, fmt.Errorf("TREND_WINDOW must be at least 2, got %d", c.TrendWindow))
	}
	if c.TrendTopN < 1 {
		errs = append(errs, fmt.Errorf("TREND_TOP_N must be positive, got %d", c.TrendTopN))
	}

	return errors.Join(errs...)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envListOr(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
