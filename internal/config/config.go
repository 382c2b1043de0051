package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	JobsSourceEmbedded = "embedded"
	JobsSourcePostgres = "postgres"
)

type Config struct {
	// HTTP
	HTTPAddr         string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string

	// Job data
	JobsSource  string
	PostgresDSN string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Requests per client per minute, 0 disables limiting
	RateLimitPerMinute int

	// Telegram, optional
	TelegramToken string

	// Logging
	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		HTTPAddr:           ":8080",
		HTTPReadTimeout:    10 * time.Second,
		HTTPWriteTimeout:   10 * time.Second,
		ShutdownTimeout:    10 * time.Second,
		CORSAllowOrigins:   []string{"*"},
		JobsSource:         JobsSourceEmbedded,
		RateLimitPerMinute: 120,
		LogLevel:           "info",
	}

	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	}

	durations := []struct {
		env  string
		dest *time.Duration
	}{
		{"HTTP_READ_TIMEOUT", &cfg.HTTPReadTimeout},
		{"HTTP_WRITE_TIMEOUT", &cfg.HTTPWriteTimeout},
		{"SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		raw := os.Getenv(d.env)
		if raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.env, err)
		}
		*d.dest = parsed
	}

	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		cfg.CORSAllowOrigins = splitList(origins)
	}

	if source := os.Getenv("JOBS_SOURCE"); source != "" {
		cfg.JobsSource = strings.ToLower(source)
	}

	cfg.PostgresDSN = os.Getenv("POSTGRES_DSN")

	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		db, err := strconv.Atoi(redisDB)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}

	if limit := os.Getenv("RATE_LIMIT_PER_MINUTE"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %w", err)
		}
		cfg.RateLimitPerMinute = n
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("http addr is empty")
	}

	switch c.JobsSource {
	case JobsSourceEmbedded:
	case JobsSourcePostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("postgres DSN is required when jobs source is %q", JobsSourcePostgres)
		}
	default:
		return fmt.Errorf("unknown jobs source: %s", c.JobsSource)
	}

	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate limit must not be negative: %d", c.RateLimitPerMinute)
	}

	if c.TelegramToken != "" && c.RedisAddr == "" {
		return fmt.Errorf("telegram bot requires REDIS_ADDR for conversation state")
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive: %v", c.ShutdownTimeout)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// RedisEnabled reports whether a Redis address was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// TelegramEnabled reports whether the Telegram bot should run.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
