// Package passgen generates random passphrases and passwords. It is the
// library entry point over the internal generation services, with the same
// defaults as the CLI and HTTP API: four capitalized words joined by "-" for
// passphrases, twelve characters from all character classes for passwords.
package passgen

import (
	"context"
	"log/slog"

	passphraseDomain "github.com/allisson/passgen/internal/passphrase/domain"
	passphraseService "github.com/allisson/passgen/internal/passphrase/service"
	passphraseUsecase "github.com/allisson/passgen/internal/passphrase/usecase"
	passwordService "github.com/allisson/passgen/internal/password/service"
	passwordUsecase "github.com/allisson/passgen/internal/password/usecase"
	wordlistUsecase "github.com/allisson/passgen/internal/wordlist/usecase"
)

// PassphraseOptions controls passphrase generation. The zero value produces a
// passphrase with the defaults. Pointer fields distinguish absent from
// explicitly set, so an empty separator or disabled capitalization are
// possible.
type PassphraseOptions struct {
	// WordCount is the number of words (1-10). Zero means four.
	WordCount int
	// Separator joins the words (up to 5 characters). Nil means "-".
	Separator *string
	// Capitalize upper-cases the first rune of each word. Nil means true.
	Capitalize *bool
	// IncludeNumbers appends a two digit number to the passphrase.
	IncludeNumbers bool
	// MinWordLength and MaxWordLength filter the word pool. When both are
	// zero and no custom words are given, the 3..12 defaults apply.
	MinWordLength int
	MaxWordLength int
	// Words supplies a custom word pool instead of the built-in one.
	Words []string
	// CorpusPath points to a word file used before the built-in list.
	CorpusPath string
}

// PasswordOptions controls password generation. The zero value produces a
// password with the defaults; nil class flags mean enabled.
type PasswordOptions struct {
	// Length is the password length (1-128). Zero means twelve.
	Length int
	// Uppercase, Lowercase, Digits and Symbols enable character classes.
	// Nil means enabled.
	Uppercase *bool
	Lowercase *bool
	Digits    *bool
	Symbols   *bool
	// ExcludeAmbiguous drops easily confused characters (0O1lI|).
	ExcludeAmbiguous bool
}

// GeneratePassphrase generates a single passphrase.
func GeneratePassphrase(opts PassphraseOptions) (string, error) {
	passphrases, err := GeneratePassphrases(opts, 1)
	if err != nil {
		return "", err
	}
	return passphrases[0], nil
}

// GeneratePassphrases generates count independent passphrases with the same
// options.
func GeneratePassphrases(opts PassphraseOptions, count int) ([]string, error) {
	logger := slog.New(slog.DiscardHandler)
	resolver := wordlistUsecase.NewWordSourceResolver(nil, opts.CorpusPath, logger)
	useCase := passphraseUsecase.NewPassphraseUseCase(
		resolver,
		passphraseService.NewSelector(),
		passphraseService.NewFormatter(),
		logger,
	)

	return useCase.GenerateBatch(context.Background(), toPassphraseInput(opts), count)
}

// GeneratePassword generates a single password.
func GeneratePassword(opts PasswordOptions) (string, error) {
	passwords, err := GeneratePasswords(opts, 1)
	if err != nil {
		return "", err
	}
	return passwords[0], nil
}

// GeneratePasswords generates count independent passwords with the same
// options.
func GeneratePasswords(opts PasswordOptions, count int) ([]string, error) {
	logger := slog.New(slog.DiscardHandler)
	useCase := passwordUsecase.NewPasswordUseCase(passwordService.NewGenerator(), logger)

	return useCase.GenerateBatch(context.Background(), toPasswordInput(opts), count)
}

func toPassphraseInput(opts PassphraseOptions) passphraseUsecase.GenerateInput {
	separator := passphraseDomain.DefaultSeparator
	if opts.Separator != nil {
		separator = *opts.Separator
	}

	capitalize := true
	if opts.Capitalize != nil {
		capitalize = *opts.Capitalize
	}

	minLength := opts.MinWordLength
	maxLength := opts.MaxWordLength
	if minLength == 0 && maxLength == 0 && len(opts.Words) == 0 {
		minLength = passphraseDomain.DefaultMinWordLength
		maxLength = passphraseDomain.DefaultMaxWordLength
	}

	return passphraseUsecase.GenerateInput{
		WordCount:      opts.WordCount,
		Separator:      separator,
		Capitalize:     capitalize,
		IncludeNumbers: opts.IncludeNumbers,
		MinWordLength:  minLength,
		MaxWordLength:  maxLength,
		Words:          opts.Words,
	}
}

func toPasswordInput(opts PasswordOptions) passwordUsecase.GenerateInput {
	boolOrDefault := func(v *bool, def bool) bool {
		if v == nil {
			return def
		}
		return *v
	}

	return passwordUsecase.GenerateInput{
		Length:           opts.Length,
		IncludeUppercase: boolOrDefault(opts.Uppercase, true),
		IncludeLowercase: boolOrDefault(opts.Lowercase, true),
		IncludeDigits:    boolOrDefault(opts.Digits, true),
		IncludeSymbols:   boolOrDefault(opts.Symbols, true),
		ExcludeAmbiguous: opts.ExcludeAmbiguous,
	}
}
