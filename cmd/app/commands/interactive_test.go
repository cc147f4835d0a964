package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunInteractive(t *testing.T) {
	ctx := context.Background()
	logger := testLogger()

	t.Run("generate-passphrase-and-quit", func(t *testing.T) {
		// Choice p, word count 3, separator ".", then quit.
		userInput := "p\n3\n.\nq\n"
		var out bytes.Buffer
		io := IOTuple{
			Reader: bytes.NewBufferString(userInput),
			Writer: &out,
		}

		err := RunInteractive(ctx, newTestPassphraseUseCase(), newTestPasswordUseCase(), logger, io)

		require.NoError(t, err)
		require.Contains(t, out.String(), "Bye!")

		// One of the output lines is a three word passphrase with dots.
		found := false
		for _, line := range strings.Split(out.String(), "\n") {
			line = strings.TrimSpace(line)
			if strings.Count(line, ".") == 2 && !strings.Contains(line, " ") && line != "" {
				found = true
			}
		}
		require.True(t, found, "expected a dot separated passphrase in output")
	})

	t.Run("generate-password-with-defaults", func(t *testing.T) {
		// Choice w with default length, then quit.
		userInput := "w\n\nq\n"
		var out bytes.Buffer
		io := IOTuple{
			Reader: bytes.NewBufferString(userInput),
			Writer: &out,
		}

		err := RunInteractive(ctx, newTestPassphraseUseCase(), newTestPasswordUseCase(), logger, io)

		require.NoError(t, err)
		require.Contains(t, out.String(), "Bye!")
	})

	t.Run("invalid-choice-then-quit", func(t *testing.T) {
		userInput := "z\nq\n"
		var out bytes.Buffer
		io := IOTuple{
			Reader: bytes.NewBufferString(userInput),
			Writer: &out,
		}

		err := RunInteractive(ctx, newTestPassphraseUseCase(), newTestPasswordUseCase(), logger, io)

		require.NoError(t, err)
		require.Contains(t, out.String(), "Please answer p, w or q.")
	})

	t.Run("input-exhausted", func(t *testing.T) {
		var out bytes.Buffer
		io := IOTuple{
			Reader: bytes.NewBufferString(""),
			Writer: &out,
		}

		err := RunInteractive(ctx, newTestPassphraseUseCase(), newTestPasswordUseCase(), logger, io)

		require.NoError(t, err)
	})
}
