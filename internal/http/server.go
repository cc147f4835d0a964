// Package http provides the HTTP API server and its middleware stack.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	passphraseHTTP "github.com/allisson/passgen/internal/passphrase/http"
	passwordHTTP "github.com/allisson/passgen/internal/password/http"
	wordlistHTTP "github.com/allisson/passgen/internal/wordlist/http"

	"github.com/allisson/passgen/internal/metrics"

	otelmetric "go.opentelemetry.io/otel/metric"
)

// Handlers groups the API handlers mounted on the server.
type Handlers struct {
	Passphrase *passphraseHTTP.PassphraseHandler
	Password   *passwordHTTP.PasswordHandler
	WordList   *wordlistHTTP.WordListHandler
}

// Options holds the optional middleware configuration for the server.
type Options struct {
	CORSEnabled             bool
	CORSAllowOrigins        string
	RateLimitEnabled        bool
	RateLimitRequestsPerSec float64
	RateLimitBurst          int
	MeterProvider           otelmetric.MeterProvider
	MetricsNamespace        string
}

// Server represents the HTTP API server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new HTTP API server. The database may be nil; the
// readiness endpoint then skips the connectivity check and word list routes
// are not mounted.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
	handlers Handlers,
	opts Options,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(opts.CORSEnabled, opts.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if opts.RateLimitEnabled {
		router.Use(RateLimitMiddleware(opts.RateLimitRequestsPerSec, opts.RateLimitBurst))
		logger.Info("rate limiting enabled",
			slog.Float64("requests_per_second", opts.RateLimitRequestsPerSec),
			slog.Int("burst", opts.RateLimitBurst),
		)
	}

	if opts.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(opts.MeterProvider, opts.MetricsNamespace))
	}

	s := &Server{
		router: router,
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	s.registerRoutes(handlers)

	return s
}

// registerRoutes mounts the health endpoints and the v1 API group.
func (s *Server) registerRoutes(handlers Handlers) {
	s.router.GET("/health", s.healthHandler)
	s.router.GET("/ready", s.readinessHandler)

	v1 := s.router.Group("/v1")

	if handlers.Passphrase != nil {
		v1.POST("/passphrases", handlers.Passphrase.GenerateHandler)
	}
	if handlers.Password != nil {
		v1.POST("/passwords", handlers.Password.GenerateHandler)
	}
	if handlers.WordList != nil {
		v1.POST("/word-lists", handlers.WordList.CreateHandler)
		v1.GET("/word-lists", handlers.WordList.ListHandler)
		v1.GET("/word-lists/:name", handlers.WordList.GetHandler)
		v1.PUT("/word-lists/:name", handlers.WordList.UpdateHandler)
		v1.DELETE("/word-lists/:name", handlers.WordList.DeleteHandler)
	}
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports readiness, checking database connectivity when
// a database is configured.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Error("readiness check failed", slog.Any("error", err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(_ context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
