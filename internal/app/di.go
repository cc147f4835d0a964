// Package app provides the dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/passgen/internal/config"
	"github.com/allisson/passgen/internal/database"
	"github.com/allisson/passgen/internal/http"
	"github.com/allisson/passgen/internal/metrics"

	passphraseHTTP "github.com/allisson/passgen/internal/passphrase/http"
	passphraseService "github.com/allisson/passgen/internal/passphrase/service"
	passphraseUsecase "github.com/allisson/passgen/internal/passphrase/usecase"
	passwordHTTP "github.com/allisson/passgen/internal/password/http"
	passwordService "github.com/allisson/passgen/internal/password/service"
	passwordUsecase "github.com/allisson/passgen/internal/password/usecase"
	wordlistHTTP "github.com/allisson/passgen/internal/wordlist/http"
	wordlistRepository "github.com/allisson/passgen/internal/wordlist/repository"
	wordlistUsecase "github.com/allisson/passgen/internal/wordlist/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger *slog.Logger
	db     *sql.DB

	// Managers
	txManager database.TxManager

	// Metrics
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Repositories
	wordListRepo wordlistUsecase.Repository

	// Use Cases
	wordListUseCase   wordlistUsecase.UseCase
	passphraseUseCase passphraseUsecase.UseCase
	passwordUseCase   passwordUsecase.UseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                    sync.Mutex
	loggerInit            sync.Once
	dbInit                sync.Once
	txManagerInit         sync.Once
	metricsProviderInit   sync.Once
	businessMetricsInit   sync.Once
	wordListRepoInit      sync.Once
	wordListUseCaseInit   sync.Once
	passphraseUseCaseInit sync.Once
	passwordUseCaseInit   sync.Once
	httpServerInit        sync.Once
	metricsServerInit     sync.Once
	initErrors            map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := c.initDB()
		if err != nil {
			c.initErrors["db"] = err
			return
		}
		c.db = db
	})
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
func (c *Container) TxManager() (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["txManager"] = fmt.Errorf("failed to get database for tx manager: %w", err)
			return
		}
		c.txManager = database.NewTxManager(db)
	})
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = fmt.Errorf("failed to create metrics provider: %w", err)
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. When metrics are
// disabled a no-op recorder is returned.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}
		bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = fmt.Errorf("failed to create business metrics: %w", err)
			return
		}
		c.businessMetrics = bm
	})
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// WordListRepository returns the word list repository instance.
func (c *Container) WordListRepository() (wordlistUsecase.Repository, error) {
	c.wordListRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["wordListRepo"] = fmt.Errorf("failed to get database for word list repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.wordListRepo = wordlistRepository.NewMySQLWordListRepository(db)
		case "postgres":
			c.wordListRepo = wordlistRepository.NewPostgreSQLWordListRepository(db)
		default:
			c.initErrors["wordListRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["wordListRepo"]; exists {
		return nil, storedErr
	}
	return c.wordListRepo, nil
}

// WordListUseCase returns the word list use case instance.
func (c *Container) WordListUseCase() (wordlistUsecase.UseCase, error) {
	c.wordListUseCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["wordListUseCase"] = err
			return
		}
		repo, err := c.WordListRepository()
		if err != nil {
			c.initErrors["wordListUseCase"] = err
			return
		}
		bm, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["wordListUseCase"] = err
			return
		}

		useCase := wordlistUsecase.NewWordListUseCase(txManager, repo, c.Logger())
		c.wordListUseCase = wordlistUsecase.NewWordListUseCaseWithMetrics(useCase, bm)
	})
	if storedErr, exists := c.initErrors["wordListUseCase"]; exists {
		return nil, storedErr
	}
	return c.wordListUseCase, nil
}

// PassphraseUseCase returns the passphrase use case instance. The word source
// resolver uses the word list repository when a database is reachable and
// degrades to corpus plus fallback words when it is not.
func (c *Container) PassphraseUseCase() (passphraseUsecase.UseCase, error) {
	c.passphraseUseCaseInit.Do(func() {
		bm, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["passphraseUseCase"] = err
			return
		}

		// Word list lookups are optional: without a database the resolver
		// still serves custom words, the corpus file and the fallback list.
		var listReader wordlistUsecase.ListReader
		if repo, err := c.WordListRepository(); err == nil {
			listReader = repo
		}

		resolver := wordlistUsecase.NewWordSourceResolver(listReader, c.config.CorpusPath, c.Logger())
		useCase := passphraseUsecase.NewPassphraseUseCase(
			resolver,
			passphraseService.NewSelector(),
			passphraseService.NewFormatter(),
			c.Logger(),
		)
		c.passphraseUseCase = passphraseUsecase.NewPassphraseUseCaseWithMetrics(useCase, bm)
	})
	if storedErr, exists := c.initErrors["passphraseUseCase"]; exists {
		return nil, storedErr
	}
	return c.passphraseUseCase, nil
}

// PasswordUseCase returns the password use case instance.
func (c *Container) PasswordUseCase() (passwordUsecase.UseCase, error) {
	c.passwordUseCaseInit.Do(func() {
		bm, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["passwordUseCase"] = err
			return
		}

		useCase := passwordUsecase.NewPasswordUseCase(passwordService.NewGenerator(), c.Logger())
		c.passwordUseCase = passwordUsecase.NewPasswordUseCaseWithMetrics(useCase, bm)
	})
	if storedErr, exists := c.initErrors["passwordUseCase"]; exists {
		return nil, storedErr
	}
	return c.passwordUseCase, nil
}

// HTTPServer returns the HTTP API server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server instance, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		if provider == nil {
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// initHTTPServer assembles the API server with all handlers and middleware.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	passphraseUC, err := c.PassphraseUseCase()
	if err != nil {
		return nil, err
	}
	passwordUC, err := c.PasswordUseCase()
	if err != nil {
		return nil, err
	}

	handlers := http.Handlers{
		Passphrase: passphraseHTTP.NewPassphraseHandler(passphraseUC, logger),
		Password:   passwordHTTP.NewPasswordHandler(passwordUC, logger),
	}

	// Word list management requires a database; the generation endpoints do not.
	db, dbErr := c.DB()
	if dbErr == nil {
		wordListUC, err := c.WordListUseCase()
		if err != nil {
			return nil, err
		}
		handlers.WordList = wordlistHTTP.NewWordListHandler(wordListUC, logger)
	} else {
		db = nil
		logger.Warn("database unavailable, word list endpoints disabled", slog.Any("error", dbErr))
	}

	opts := http.Options{
		CORSEnabled:             c.config.CORSEnabled,
		CORSAllowOrigins:        c.config.CORSAllowOrigins,
		RateLimitEnabled:        c.config.RateLimitEnabled,
		RateLimitRequestsPerSec: c.config.RateLimitRequestsPerSec,
		RateLimitBurst:          c.config.RateLimitBurst,
		MetricsNamespace:        c.config.MetricsNamespace,
	}
	if provider, err := c.MetricsProvider(); err == nil && provider != nil {
		opts.MeterProvider = provider.MeterProvider()
	}

	return http.NewServer(
		db,
		c.config.ServerHost,
		c.config.ServerPort,
		logger,
		handlers,
		opts,
	), nil
}

// Shutdown performs cleanup of all initialized resources.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
