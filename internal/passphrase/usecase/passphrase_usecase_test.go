package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/passgen/internal/errors"
	"github.com/allisson/passgen/internal/passphrase/domain"
	"github.com/allisson/passgen/internal/passphrase/service"
)

// fakeWordSource returns a fixed word sequence, recording the last resolution call.
type fakeWordSource struct {
	words        []string
	err          error
	lastCustom   []string
	lastListName string
}

func (f *fakeWordSource) Resolve(_ context.Context, customWords []string, listName string) ([]string, error) {
	f.lastCustom = customWords
	f.lastListName = listName
	if f.err != nil {
		return nil, f.err
	}
	if len(customWords) > 0 {
		return customWords, nil
	}
	return f.words, nil
}

func newTestUseCase(source WordSource) UseCase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPassphraseUseCase(source, service.NewSelector(), service.NewFormatter(), logger)
}

func TestPassphraseUseCase_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DefaultWordCount", func(t *testing.T) {
		source := &fakeWordSource{words: []string{"alpha", "bravo", "charlie", "delta", "echo"}}
		uc := newTestUseCase(source)

		result, err := uc.Generate(ctx, GenerateInput{Separator: "-", Capitalize: true})

		require.NoError(t, err)
		assert.Len(t, strings.Split(result, "-"), domain.DefaultWordCount)
	})

	t.Run("Success_ExactPoolDraw", func(t *testing.T) {
		source := &fakeWordSource{}
		uc := newTestUseCase(source)

		result, err := uc.Generate(ctx, GenerateInput{
			WordCount:      3,
			Separator:      "_",
			IncludeNumbers: true,
			Words:          []string{"quantum", "nexus", "cipher"},
		})

		require.NoError(t, err)

		segments := strings.Split(result, "_")
		require.Len(t, segments, 3)

		// Each segment is one of the source words, lowercase, with a two-digit suffix.
		for _, segment := range segments {
			require.Greater(t, len(segment), 2)
			word, suffix := segment[:len(segment)-2], segment[len(segment)-2:]
			assert.Contains(t, []string{"quantum", "nexus", "cipher"}, word)
			assert.Regexp(t, `^[0-9]{2}$`, suffix)
		}
	})

	t.Run("Success_CapitalizedSegments", func(t *testing.T) {
		source := &fakeWordSource{words: []string{"alpha", "bravo", "charlie", "delta"}}
		uc := newTestUseCase(source)

		result, err := uc.Generate(ctx, GenerateInput{
			WordCount:  4,
			Separator:  "-",
			Capitalize: true,
		})

		require.NoError(t, err)
		for _, segment := range strings.Split(result, "-") {
			assert.Regexp(t, `^[A-Z][a-z]*$`, segment)
		}
	})

	t.Run("Success_StoredListNamePassedToSource", func(t *testing.T) {
		source := &fakeWordSource{words: []string{"alpha", "bravo", "charlie", "delta"}}
		uc := newTestUseCase(source)

		_, err := uc.Generate(ctx, GenerateInput{
			WordCount:    2,
			Separator:    "-",
			WordListName: "eff-short",
		})

		require.NoError(t, err)
		assert.Equal(t, "eff-short", source.lastListName)
	})

	t.Run("Success_ImplicitSourceFallsBackWhenFiltered", func(t *testing.T) {
		// The corpus-backed source only has short words; filtering empties it and
		// the built-in fallback list takes over.
		source := &fakeWordSource{words: []string{"ox", "an", "it"}}
		uc := newTestUseCase(source)

		result, err := uc.Generate(ctx, GenerateInput{
			WordCount:     4,
			Separator:     "-",
			MinWordLength: 5,
			MaxWordLength: 12,
		})

		require.NoError(t, err)
		assert.Len(t, strings.Split(result, "-"), 4)
	})

	t.Run("Error_CustomWordsFilteredToEmpty", func(t *testing.T) {
		source := &fakeWordSource{}
		uc := newTestUseCase(source)

		_, err := uc.Generate(ctx, GenerateInput{
			WordCount:     2,
			Separator:     "-",
			MinWordLength: 10,
			MaxWordLength: 12,
			Words:         []string{"ox", "cat"},
		})

		assert.ErrorIs(t, err, domain.ErrEmptyPool)
	})

	t.Run("Error_InsufficientWords", func(t *testing.T) {
		source := &fakeWordSource{}
		uc := newTestUseCase(source)

		_, err := uc.Generate(ctx, GenerateInput{
			WordCount: 5,
			Separator: "-",
			Words:     []string{"quantum", "nexus", "cipher"},
		})

		assert.ErrorIs(t, err, domain.ErrInsufficientWords)
	})

	t.Run("Error_InvalidWordCount", func(t *testing.T) {
		source := &fakeWordSource{words: []string{"alpha", "bravo"}}
		uc := newTestUseCase(source)

		_, err := uc.Generate(ctx, GenerateInput{WordCount: domain.MaxWordCount + 1, Separator: "-"})

		assert.ErrorIs(t, err, domain.ErrInvalidWordCount)
	})

	t.Run("Error_SeparatorTooLong", func(t *testing.T) {
		source := &fakeWordSource{words: []string{"alpha", "bravo"}}
		uc := newTestUseCase(source)

		_, err := uc.Generate(ctx, GenerateInput{WordCount: 2, Separator: "======"})

		assert.ErrorIs(t, err, domain.ErrInvalidSeparator)
	})

	t.Run("Error_SourceFailure", func(t *testing.T) {
		source := &fakeWordSource{err: errors.New("database unavailable")}
		uc := newTestUseCase(source)

		_, err := uc.Generate(ctx, GenerateInput{WordCount: 2, Separator: "-"})

		assert.ErrorContains(t, err, "failed to resolve word source")
	})
}

func TestPassphraseUseCase_GenerateBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_GeneratesRequestedCount", func(t *testing.T) {
		source := &fakeWordSource{words: []string{"alpha", "bravo", "charlie", "delta", "echo"}}
		uc := newTestUseCase(source)

		results, err := uc.GenerateBatch(ctx, GenerateInput{WordCount: 3, Separator: "-"}, 10)

		require.NoError(t, err)
		assert.Len(t, results, 10)
		for _, result := range results {
			assert.Len(t, strings.Split(result, "-"), 3)
		}
	})

	t.Run("Error_ZeroCount", func(t *testing.T) {
		uc := newTestUseCase(&fakeWordSource{words: []string{"alpha"}})

		_, err := uc.GenerateBatch(ctx, GenerateInput{WordCount: 1, Separator: "-"}, 0)

		assert.ErrorIs(t, err, domain.ErrInvalidBatchSize)
	})

	t.Run("Error_CountTooLarge", func(t *testing.T) {
		uc := newTestUseCase(&fakeWordSource{words: []string{"alpha"}})

		_, err := uc.GenerateBatch(ctx, GenerateInput{WordCount: 1, Separator: "-"}, domain.MaxBatchSize+1)

		assert.ErrorIs(t, err, domain.ErrInvalidBatchSize)
	})

	t.Run("Error_PropagatesGenerationFailure", func(t *testing.T) {
		uc := newTestUseCase(&fakeWordSource{})

		_, err := uc.GenerateBatch(ctx, GenerateInput{
			WordCount: 5,
			Separator: "-",
			Words:     []string{"alpha", "bravo"},
		}, 3)

		assert.ErrorIs(t, err, domain.ErrInsufficientWords)
	})
}
