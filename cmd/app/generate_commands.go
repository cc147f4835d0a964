package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/passgen/cmd/app/commands"
	"github.com/allisson/passgen/internal/config"
)

// cliLogger returns a quiet logger for generation commands so that log output
// does not mix with the generated values on stdout.
func cliLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

func getGenerateCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "passphrase",
			Usage: "Generate one or more passphrases",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "words",
					Aliases: []string{"w"},
					Value:   4,
					Usage:   "Number of words (1-10)",
				},
				&cli.StringFlag{
					Name:    "separator",
					Aliases: []string{"s"},
					Value:   "-",
					Usage:   "Separator between words (up to 5 characters)",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"c"},
					Value:   1,
					Usage:   "Number of passphrases to generate (1-100)",
				},
				&cli.BoolFlag{
					Name:  "no-caps",
					Value: false,
					Usage: "Do not capitalize words",
				},
				&cli.BoolFlag{
					Name:    "include-numbers",
					Aliases: []string{"n"},
					Value:   false,
					Usage:   "Append a two-digit number to the passphrase",
				},
				&cli.IntFlag{
					Name:  "min-length",
					Value: 3,
					Usage: "Minimum word length",
				},
				&cli.IntFlag{
					Name:  "max-length",
					Value: 12,
					Usage: "Maximum word length",
				},
				&cli.StringFlag{
					Name:    "wordlist",
					Aliases: []string{"l"},
					Usage:   "Name of a stored word list to draw words from",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				logger := cliLogger()

				wordList := cmd.String("wordlist")
				useCase, cleanup, err := commands.BuildPassphraseUseCase(cfg, logger, wordList != "")
				if err != nil {
					return err
				}
				defer cleanup()

				return commands.RunGeneratePassphrase(ctx, useCase, logger, commands.PassphraseOptions{
					WordCount:      int(cmd.Int("words")),
					Separator:      cmd.String("separator"),
					Capitalize:     !cmd.Bool("no-caps"),
					IncludeNumbers: cmd.Bool("include-numbers"),
					MinWordLength:  int(cmd.Int("min-length")),
					MaxWordLength:  int(cmd.Int("max-length")),
					WordList:       wordList,
					Count:          int(cmd.Int("count")),
					Format:         cmd.String("format"),
				}, commands.DefaultIO())
			},
		},
		{
			Name:  "password",
			Usage: "Generate one or more random passwords",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"L"},
					Value:   12,
					Usage:   "Password length (1-128)",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"c"},
					Value:   1,
					Usage:   "Number of passwords to generate (1-100)",
				},
				&cli.BoolFlag{
					Name:  "no-uppercase",
					Value: false,
					Usage: "Exclude uppercase letters",
				},
				&cli.BoolFlag{
					Name:  "no-lowercase",
					Value: false,
					Usage: "Exclude lowercase letters",
				},
				&cli.BoolFlag{
					Name:  "no-digits",
					Value: false,
					Usage: "Exclude digits",
				},
				&cli.BoolFlag{
					Name:  "no-symbols",
					Value: false,
					Usage: "Exclude symbols",
				},
				&cli.BoolFlag{
					Name:    "exclude-ambiguous",
					Aliases: []string{"x"},
					Value:   false,
					Usage:   "Exclude easily confused characters (0O1lI|)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				logger := cliLogger()
				useCase := commands.BuildPasswordUseCase(logger)

				return commands.RunGeneratePassword(ctx, useCase, logger, commands.PasswordOptions{
					Length:           int(cmd.Int("length")),
					NoUppercase:      cmd.Bool("no-uppercase"),
					NoLowercase:      cmd.Bool("no-lowercase"),
					NoDigits:         cmd.Bool("no-digits"),
					NoSymbols:        cmd.Bool("no-symbols"),
					ExcludeAmbiguous: cmd.Bool("exclude-ambiguous"),
					Count:            int(cmd.Int("count")),
					Format:           cmd.String("format"),
				}, commands.DefaultIO())
			},
		},
		{
			Name:  "demo",
			Usage: "Show sample passphrases and passwords with different settings",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				logger := cliLogger()

				passphraseUC, cleanup, err := commands.BuildPassphraseUseCase(cfg, logger, false)
				if err != nil {
					return err
				}
				defer cleanup()

				passwordUC := commands.BuildPasswordUseCase(logger)

				return commands.RunDemo(ctx, passphraseUC, passwordUC, logger, commands.DefaultIO())
			},
		},
		{
			Name:  "interactive",
			Usage: "Generate passphrases and passwords interactively",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				logger := cliLogger()

				passphraseUC, cleanup, err := commands.BuildPassphraseUseCase(cfg, logger, false)
				if err != nil {
					return err
				}
				defer cleanup()

				passwordUC := commands.BuildPasswordUseCase(logger)

				return commands.RunInteractive(ctx, passphraseUC, passwordUC, logger, commands.DefaultIO())
			},
		},
	}
}
