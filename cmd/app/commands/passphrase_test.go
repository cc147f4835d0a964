package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	passphraseService "github.com/allisson/passgen/internal/passphrase/service"
	passphraseUsecase "github.com/allisson/passgen/internal/passphrase/usecase"
	passwordService "github.com/allisson/passgen/internal/password/service"
	passwordUsecase "github.com/allisson/passgen/internal/password/usecase"
	wordlistUsecase "github.com/allisson/passgen/internal/wordlist/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestPassphraseUseCase builds a use case backed by the built-in word list.
func newTestPassphraseUseCase() passphraseUsecase.UseCase {
	logger := testLogger()
	resolver := wordlistUsecase.NewWordSourceResolver(nil, "", logger)
	return passphraseUsecase.NewPassphraseUseCase(
		resolver,
		passphraseService.NewSelector(),
		passphraseService.NewFormatter(),
		logger,
	)
}

func newTestPasswordUseCase() passwordUsecase.UseCase {
	return passwordUsecase.NewPasswordUseCase(passwordService.NewGenerator(), testLogger())
}

func TestRunGeneratePassphrase(t *testing.T) {
	ctx := context.Background()
	logger := testLogger()

	t.Run("text-output", func(t *testing.T) {
		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunGeneratePassphrase(ctx, newTestPassphraseUseCase(), logger, PassphraseOptions{
			WordCount: 3,
			Separator: "-",
			Count:     5,
		}, io)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 5)
		for _, line := range lines {
			require.Len(t, strings.Split(line, "-"), 3)
		}
	})

	t.Run("json-output", func(t *testing.T) {
		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunGeneratePassphrase(ctx, newTestPassphraseUseCase(), logger, PassphraseOptions{
			WordCount: 4,
			Separator: "-",
			Count:     2,
			Format:    "json",
		}, io)

		require.NoError(t, err)
		require.Contains(t, out.String(), `"passphrases"`)
	})

	t.Run("default-count", func(t *testing.T) {
		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunGeneratePassphrase(ctx, newTestPassphraseUseCase(), logger, PassphraseOptions{
			WordCount: 4,
			Separator: "-",
		}, io)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 1)
	})

	t.Run("invalid-word-count", func(t *testing.T) {
		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunGeneratePassphrase(ctx, newTestPassphraseUseCase(), logger, PassphraseOptions{
			WordCount: 11,
			Separator: "-",
		}, io)

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to generate passphrases")
	})
}
