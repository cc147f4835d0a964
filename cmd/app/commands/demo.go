package commands

import (
	"context"
	"fmt"
	"log/slog"

	passphraseUsecase "github.com/allisson/passgen/internal/passphrase/usecase"
	passwordUsecase "github.com/allisson/passgen/internal/password/usecase"
)

// RunDemo generates a small showcase of passphrases and passwords with
// different settings and writes them to the output.
func RunDemo(
	ctx context.Context,
	passphraseUC passphraseUsecase.UseCase,
	passwordUC passwordUsecase.UseCase,
	logger *slog.Logger,
	io IOTuple,
) error {
	writer := io.Writer

	_, _ = fmt.Fprintln(writer, "Passphrases (defaults):")
	passphrases, err := passphraseUC.GenerateBatch(ctx, passphraseUsecase.GenerateInput{
		WordCount:  4,
		Separator:  "-",
		Capitalize: true,
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to generate passphrases: %w", err)
	}
	for _, passphrase := range passphrases {
		_, _ = fmt.Fprintf(writer, "  %s\n", passphrase)
	}

	_, _ = fmt.Fprintln(writer, "\nPassphrases (with numbers, dot separator):")
	passphrases, err = passphraseUC.GenerateBatch(ctx, passphraseUsecase.GenerateInput{
		WordCount:      5,
		Separator:      ".",
		Capitalize:     true,
		IncludeNumbers: true,
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to generate passphrases: %w", err)
	}
	for _, passphrase := range passphrases {
		_, _ = fmt.Fprintf(writer, "  %s\n", passphrase)
	}

	_, _ = fmt.Fprintln(writer, "\nPasswords (defaults):")
	passwords, err := passwordUC.GenerateBatch(ctx, passwordUsecase.GenerateInput{
		IncludeUppercase: true,
		IncludeLowercase: true,
		IncludeDigits:    true,
		IncludeSymbols:   true,
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to generate passwords: %w", err)
	}
	for _, password := range passwords {
		_, _ = fmt.Fprintf(writer, "  %s\n", password)
	}

	_, _ = fmt.Fprintln(writer, "\nPasswords (24 chars, no symbols, no ambiguous):")
	passwords, err = passwordUC.GenerateBatch(ctx, passwordUsecase.GenerateInput{
		Length:           24,
		IncludeUppercase: true,
		IncludeLowercase: true,
		IncludeDigits:    true,
		ExcludeAmbiguous: true,
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to generate passwords: %w", err)
	}
	for _, password := range passwords {
		_, _ = fmt.Fprintf(writer, "  %s\n", password)
	}

	logger.Debug("demo completed")

	return nil
}
