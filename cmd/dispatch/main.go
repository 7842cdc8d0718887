package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/starford/ansuz/internal/dispatch"
	"github.com/starford/ansuz/internal/meta"
	"github.com/starford/ansuz/pkg/config"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return cli.Exit("usage: ansuz-dispatch <deployed-url>", 1)
	}
	deployedURL := cmd.Args().First()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadMap(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load project config: %w", err)
	}

	md := meta.Extract(cfg, deployedURL, time.Now())
	logger.Info("project metadata",
		slog.String("title", md.Title),
		slog.String("description", md.Description),
		slog.String("author", md.Author),
		slog.String("tags", strings.Join(md.Tags, ", ")),
		slog.String("url", md.URL),
		slog.String("updated", md.Updated))

	sender := dispatch.NewSender(dispatch.Config{
		Repo:  cmd.String("repo"),
		Token: cmd.String("token"),
	}, dispatch.WithLogger(logger))

	if err := sender.Send(ctx, md); err != nil {
		logger.Info("portfolio integration requires the PORTFOLIO_REPO (owner/repo) and PORTFOLIO_TOKEN secrets")
		return fmt.Errorf("send repository dispatch: %w", err)
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:      "ansuz-dispatch",
		Usage:     "Send project metadata to a portfolio repository via GitHub repository dispatch",
		ArgsUsage: "<deployed-url>",
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the project config file",
				Value:   "_config.yml",
				Sources: cli.EnvVars("ANSUZ_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "repo",
				Usage:   "Portfolio repository in owner/repo form",
				Sources: cli.EnvVars("PORTFOLIO_REPO"),
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "GitHub access token for the portfolio repository",
				Sources: cli.EnvVars("PORTFOLIO_TOKEN"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("dispatch failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
