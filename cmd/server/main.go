package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-board/internal/bot"
	"job-board/internal/config"
	"job-board/internal/jobs"
	"job-board/internal/logger"
	"job-board/internal/models"
	"job-board/internal/ratelimit"
	"job-board/internal/storage/postgres"
	"job-board/internal/storage/redis"
	"job-board/internal/storage/seed"
	"job-board/internal/web"
	"job-board/internal/web/handlers"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	// .env is optional, real environment variables win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting job board",
		zap.String("version", version),
		zap.String("log_level", cfg.LogLevel),
		zap.String("jobs_source", cfg.JobsSource),
	)

	seedJobs, err := loadJobs(cfg, log)
	if err != nil {
		log.Fatal("failed to load jobs", zap.Error(err))
	}

	store, err := jobs.NewStore(seedJobs)
	if err != nil {
		log.Fatal("invalid job data", zap.Error(err))
	}

	log.Info("job store ready", zap.Int("jobs", store.Len()))

	service := jobs.NewService(store, log)

	var cache *redis.Cache
	var counter ratelimit.Counter
	checks := map[string]handlers.Pinger{}
	if cfg.RedisEnabled() {
		log.Info("connecting to Redis...")
		cache, err = redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
		if err != nil {
			log.Fatal("failed to connect to Redis", zap.Error(err))
		}
		defer cache.Close()

		log.Info("Redis connected successfully")
		counter = cache
		checks["redis"] = cache
	} else {
		log.Warn("REDIS_ADDR not set, rate limiting disabled")
	}

	limiter := ratelimit.New(counter, cfg.RateLimitPerMinute, log)

	server, err := web.New(cfg, service, limiter, checks, version, log)
	if err != nil {
		log.Fatal("failed to create http server", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	botDone := make(chan struct{})
	if cfg.TelegramEnabled() {
		log.Info("initializing Telegram bot...")
		tgBot, err := bot.New(cfg, service, cache, limiter, log)
		if err != nil {
			log.Fatal("failed to create bot", zap.Error(err))
		}

		go func() {
			defer close(botDone)
			if err := tgBot.Start(ctx); err != nil {
				log.Error("bot stopped with error", zap.Error(err))
			}
		}()
	} else {
		close(botDone)
	}

	log.Info("job board is running...")
	log.Info("press Ctrl+C to stop")

	if err := server.Start(ctx); err != nil {
		log.Error("http server stopped with error", zap.Error(err))
		cancel()
	}

	log.Info("shutting down gracefully...")

	<-botDone

	log.Info("job board stopped")
}

// loadJobs reads the job postings once from the configured source.
func loadJobs(cfg *config.Config, log *zap.Logger) ([]models.Job, error) {
	if cfg.JobsSource != config.JobsSourcePostgres {
		return seed.Jobs()
	}

	log.Info("connecting to PostgreSQL...")
	db, err := postgres.New(cfg.PostgresDSN, log)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return db.LoadJobs(ctx)
}
