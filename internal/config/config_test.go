package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, env := range []string{
		"HTTP_ADDR", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT",
		"CORS_ALLOW_ORIGINS", "JOBS_SOURCE", "POSTGRES_DSN", "REDIS_ADDR",
		"REDIS_PASSWORD", "REDIS_DB", "RATE_LIMIT_PER_MINUTE", "TELEGRAM_TOKEN", "LOG_LEVEL",
	} {
		t.Setenv(env, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.HTTPReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Equal(t, JobsSourceEmbedded, cfg.JobsSource)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.TelegramEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("HTTP_WRITE_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("JOBS_SOURCE", "Postgres")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/jobs")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, 3*time.Second, cfg.HTTPWriteTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
	assert.Equal(t, JobsSourcePostgres, cfg.JobsSource)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 0, cfg.RateLimitPerMinute)
	assert.True(t, cfg.RedisEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoadInvalidValues(t *testing.T) {
	cases := map[string]string{
		"HTTP_READ_TIMEOUT":     "soon",
		"REDIS_DB":              "one",
		"RATE_LIMIT_PER_MINUTE": "many",
	}

	for env, value := range cases {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, value)
			_, err := Load()
			assert.ErrorContains(t, err, env)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTPAddr:        ":8080",
			ShutdownTimeout: time.Second,
			JobsSource:      JobsSourceEmbedded,
			LogLevel:        "info",
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"empty addr", func(c *Config) { c.HTTPAddr = "" }, "http addr"},
		{"postgres without dsn", func(c *Config) { c.JobsSource = JobsSourcePostgres }, "postgres DSN"},
		{"unknown source", func(c *Config) { c.JobsSource = "s3" }, "unknown jobs source"},
		{"negative rate limit", func(c *Config) { c.RateLimitPerMinute = -1 }, "rate limit"},
		{"telegram without redis", func(c *Config) { c.TelegramToken = "token" }, "REDIS_ADDR"},
		{"zero shutdown timeout", func(c *Config) { c.ShutdownTimeout = 0 }, "shutdown timeout"},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}

	cfg := valid()
	cfg.TelegramToken = "token"
	cfg.RedisAddr = "localhost:6379"
	assert.NoError(t, cfg.Validate())
}
