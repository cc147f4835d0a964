// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"github.com/allisson/passgen/internal/app"
	"github.com/allisson/passgen/internal/config"
	"github.com/allisson/passgen/internal/database"

	passphraseService "github.com/allisson/passgen/internal/passphrase/service"
	passphraseUsecase "github.com/allisson/passgen/internal/passphrase/usecase"
	passwordService "github.com/allisson/passgen/internal/password/service"
	passwordUsecase "github.com/allisson/passgen/internal/password/usecase"
	wordlistRepository "github.com/allisson/passgen/internal/wordlist/repository"
	wordlistUsecase "github.com/allisson/passgen/internal/wordlist/usecase"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// BuildPassphraseUseCase assembles the passphrase generation pipeline for CLI
// use. The database is only touched when a stored word list is needed; plain
// generation works entirely offline. The returned cleanup function closes the
// database connection when one was opened.
func BuildPassphraseUseCase(
	cfg *config.Config,
	logger *slog.Logger,
	needWordList bool,
) (passphraseUsecase.UseCase, func(), error) {
	cleanup := func() {}

	var listReader wordlistUsecase.ListReader
	if needWordList {
		db, repo, err := connectWordListRepository(cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { _ = db.Close() }
		listReader = repo
	}

	resolver := wordlistUsecase.NewWordSourceResolver(listReader, cfg.CorpusPath, logger)
	useCase := passphraseUsecase.NewPassphraseUseCase(
		resolver,
		passphraseService.NewSelector(),
		passphraseService.NewFormatter(),
		logger,
	)

	return useCase, cleanup, nil
}

// BuildPasswordUseCase assembles the password generation pipeline for CLI use.
func BuildPasswordUseCase(logger *slog.Logger) passwordUsecase.UseCase {
	return passwordUsecase.NewPasswordUseCase(passwordService.NewGenerator(), logger)
}

// connectWordListRepository opens a database connection and returns the word
// list repository matching the configured driver.
func connectWordListRepository(cfg *config.Config) (*sql.DB, wordlistUsecase.Repository, error) {
	db, err := database.Connect(database.Config{
		Driver:             cfg.DBDriver,
		ConnectionString:   cfg.DBConnectionString,
		MaxOpenConnections: cfg.DBMaxOpenConnections,
		MaxIdleConnections: cfg.DBMaxIdleConnections,
		ConnMaxLifetime:    cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	switch cfg.DBDriver {
	case "mysql":
		return db, wordlistRepository.NewMySQLWordListRepository(db), nil
	case "postgres":
		return db, wordlistRepository.NewPostgreSQLWordListRepository(db), nil
	default:
		_ = db.Close()
		return nil, nil, fmt.Errorf("unsupported database driver: %s", cfg.DBDriver)
	}
}
