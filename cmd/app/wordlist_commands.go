package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/passgen/cmd/app/commands"
	"github.com/allisson/passgen/internal/app"
	"github.com/allisson/passgen/internal/config"
)

func getWordListCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-wordlist",
			Usage: "Create a stored word list from a file or stdin",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Word list name (lowercase letters, digits, hyphens and underscores)",
				},
				&cli.StringFlag{
					Name:    "file",
					Aliases: []string{"f"},
					Usage:   "Path to a file with one word per line (omit to read from stdin)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				wordListUseCase, err := container.WordListUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateWordList(
					ctx,
					wordListUseCase,
					container.Logger(),
					cmd.String("name"),
					cmd.String("file"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "list-wordlists",
			Usage: "List the stored word lists",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				wordListUseCase, err := container.WordListUseCase()
				if err != nil {
					return err
				}

				return commands.RunListWordLists(
					ctx,
					wordListUseCase,
					container.Logger(),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "delete-wordlist",
			Usage: "Delete a stored word list by name",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Word list name",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				wordListUseCase, err := container.WordListUseCase()
				if err != nil {
					return err
				}

				return commands.RunDeleteWordList(
					ctx,
					wordListUseCase,
					container.Logger(),
					cmd.String("name"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
