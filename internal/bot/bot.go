package bot

import (
	"context"
	"fmt"
	"time"

	"job-board/internal/bot/handlers"
	"job-board/internal/bot/middleware"
	"job-board/internal/config"
	"job-board/internal/ratelimit"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Bot represents the Telegram front-end of the job board
type Bot struct {
	bot     *tele.Bot
	jobs    handlers.JobService
	chats   handlers.ChatStore
	limiter *ratelimit.Limiter
	config  *config.Config
	logger  *zap.Logger
}

func New(
	cfg *config.Config,
	jobs handlers.JobService,
	chats handlers.ChatStore,
	limiter *ratelimit.Limiter,
	logger *zap.Logger,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.TelegramToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	bot := &Bot{
		bot:     b,
		jobs:    jobs,
		chats:   chats,
		limiter: limiter,
		config:  cfg,
		logger:  logger,
	}

	bot.setupMiddleware()

	bot.registerHandlers()

	logger.Info("bot initialized successfully", zap.String("username", b.Me.Username))

	return bot, nil
}

func (b *Bot) setupMiddleware() {
	b.bot.Use(middleware.Recovery(b.logger))

	b.bot.Use(middleware.Logger(b.logger))

	b.bot.Use(middleware.RateLimit(b.limiter))
}

func (b *Bot) registerHandlers() {
	ctx := &handlers.Context{
		Jobs:   b.jobs,
		Chats:  b.chats,
		Logger: b.logger,
	}

	b.bot.Handle("/start", handlers.HandleStart(ctx))
	b.bot.Handle("/help", handlers.HandleHelp(ctx))
	b.bot.Handle("/jobs", handlers.HandleJobs(ctx))
	b.bot.Handle("/job", handlers.HandleJob(ctx))
	b.bot.Handle("/apply", handlers.HandleApply(ctx))

	b.bot.Handle(tele.OnText, handlers.HandleText(ctx))

	b.bot.Handle(tele.OnCallback, handlers.HandleCallback(ctx))

	b.logger.Info("handlers registered")
}

func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("starting bot...")

	go b.bot.Start()

	<-ctx.Done()

	b.logger.Info("stopping bot...")
	b.bot.Stop()

	b.logger.Info("bot stopped")

	return nil
}
