package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"job-board/internal/config"
	"job-board/internal/ratelimit"
	"job-board/internal/web/handlers"
	"job-board/internal/web/middleware"
	"job-board/internal/web/templates"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server represents the job board HTTP front-end
type Server struct {
	engine  *gin.Engine
	http    *http.Server
	jobs    handlers.JobService
	limiter *ratelimit.Limiter
	checks  map[string]handlers.Pinger
	config  *config.Config
	version string
	logger  *zap.Logger
}

func New(
	cfg *config.Config,
	jobs handlers.JobService,
	limiter *ratelimit.Limiter,
	checks map[string]handlers.Pinger,
	version string,
	logger *zap.Logger,
) (*Server, error) {
	if cfg.LogLevel != "debug" && gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := templates.Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	engine := gin.New()
	engine.SetHTMLTemplate(tmpl)

	s := &Server{
		engine:  engine,
		jobs:    jobs,
		limiter: limiter,
		checks:  checks,
		config:  cfg,
		version: version,
		logger:  logger,
	}

	s.setupMiddleware()

	s.registerHandlers()

	s.http = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      engine,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	logger.Info("http server initialized", zap.String("addr", cfg.HTTPAddr))

	return s, nil
}

func (s *Server) setupMiddleware() {
	s.engine.Use(middleware.Recovery(s.logger, byAudience(handlers.RenderInternalError)))

	s.engine.Use(middleware.Logger(s.logger))

	s.engine.Use(middleware.RateLimit(s.limiter, byAudience(handlers.RenderTooManyRequests)))
}

func (s *Server) registerHandlers() {
	ctx := &handlers.Context{
		Jobs:    s.jobs,
		Checks:  s.checks,
		Logger:  s.logger,
		Version: s.version,
	}

	s.engine.GET("/", handlers.HandleList(ctx))
	s.engine.GET("/jobs/:id", handlers.HandleJob(ctx))
	s.engine.GET("/jobs/apply/:id", handlers.HandleApplyForm(ctx))
	s.engine.POST("/jobs/apply/:id", handlers.HandleApplySubmit(ctx))
	s.engine.GET("/health", handlers.HandleHealth(ctx))

	api := s.engine.Group("/api")
	api.Use(cors.New(s.corsConfig()))
	{
		api.GET("/jobs", handlers.HandleAPIList(ctx))
		api.GET("/jobs/:id", handlers.HandleAPIJob(ctx))
		api.POST("/jobs/:id/apply", handlers.HandleAPIApply(ctx))
	}

	s.engine.NoRoute(func(c *gin.Context) {
		// browsers and dev tools probe these; answer without a page
		if strings.HasPrefix(c.Request.URL.Path, "/.well-known/") {
			c.Status(http.StatusNotFound)
			return
		}

		c.Status(http.StatusNotFound)
		byAudience(handlers.RenderNotFound)(c)
	})

	s.logger.Info("handlers registered")
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}

	if len(s.config.CORSAllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}

	for _, origin := range s.config.CORSAllowOrigins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = s.config.CORSAllowOrigins

	return cfg
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("stopping http server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	s.logger.Info("http server stopped")

	return nil
}

// byAudience renders JSON for /api paths and the HTML page otherwise.
func byAudience(page gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			handlers.RenderAPIError(c)
			return
		}
		page(c)
	}
}
