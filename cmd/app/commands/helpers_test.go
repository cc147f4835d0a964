package commands

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/passgen/internal/config"
	passphraseUsecase "github.com/allisson/passgen/internal/passphrase/usecase"
)

func TestDefaultIO(t *testing.T) {
	io := DefaultIO()

	assert.Equal(t, os.Stdin, io.Reader)
	assert.Equal(t, os.Stdout, io.Writer)
}

func TestBuildPassphraseUseCase(t *testing.T) {
	logger := testLogger()

	t.Run("without-word-list", func(t *testing.T) {
		cfg := &config.Config{}

		useCase, cleanup, err := BuildPassphraseUseCase(cfg, logger, false)

		require.NoError(t, err)
		defer cleanup()

		passphrase, err := useCase.Generate(context.Background(), passphraseUsecase.GenerateInput{
			WordCount: 3,
			Separator: "-",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, passphrase)
	})

	t.Run("unsupported-driver", func(t *testing.T) {
		cfg := &config.Config{
			DBDriver:           "sqlite",
			DBConnectionString: "file::memory:",
		}

		_, _, err := BuildPassphraseUseCase(cfg, logger, true)

		require.Error(t, err)
	})
}

func TestBuildPasswordUseCase(t *testing.T) {
	useCase := BuildPasswordUseCase(testLogger())

	assert.NotNil(t, useCase)
}
