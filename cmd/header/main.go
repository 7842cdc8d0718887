package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/starford/ansuz/internal/header"
	"github.com/starford/ansuz/internal/meta"
	"github.com/starford/ansuz/internal/storage"
	"github.com/starford/ansuz/pkg/config"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func run(_ context.Context, cmd *cli.Command) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadMap(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load project config: %w", err)
	}

	now := time.Now()
	md := meta.Extract(cfg, "", now)
	md.Updated = meta.OrdinalDate(now)

	store, err := storage.NewFS(".")
	if err != nil {
		return fmt.Errorf("open project dir: %w", err)
	}

	target := cmd.String("file")
	if err := header.NewRewriter(store).Rewrite(target, md); err != nil {
		return fmt.Errorf("update %s: %w", target, err)
	}

	logger.Info("header updated",
		slog.String("file", target),
		slog.String("updated", md.Updated))
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "ansuz-header",
		Usage:  "Rewrite the metadata block at the top of the project README",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the project config file",
				Value:   "_config.yml",
				Sources: cli.EnvVars("ANSUZ_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "File whose leading metadata block is rewritten",
				Value:   "README.md",
				Sources: cli.EnvVars("ANSUZ_README"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("header update failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
