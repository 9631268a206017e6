package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-dynform/internal/app"
	"github.com/goliatone/go-dynform/internal/config"
	"github.com/goliatone/go-dynform/pkg/controller"
	"github.com/goliatone/go-dynform/pkg/renderers/tui"
)

const defaultConfigPath = "config/config.yaml"

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if err := config.LoadOptional(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if port := cmd.Int("port"); port > 0 {
		cfg.HTTP.Port = int(port)
	}
	if err := app.Run(ctx, app.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func fill(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.App, os.Stderr)
	catalog, err := app.BuildCatalog(ctx, cfg.Catalog)
	if err != nil {
		return err
	}

	ctrl := controller.New(catalog, controller.WithLogger(logger))
	session, err := tui.New(ctrl,
		tui.WithSource(catalog),
		tui.WithOutput(os.Stdout),
		tui.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	if err := session.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stdout, "Aborted.")
			return nil
		}
		return err
	}
	return nil
}

func listCatalog(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	catalog, err := app.BuildCatalog(ctx, cfg.Catalog)
	if err != nil {
		return err
	}
	return writeCatalog(os.Stdout, catalog, cmd.String("format"))
}

func main() {
	cmd := &cli.Command{
		Name:  "dynform",
		Usage: "Schema-driven dynamic form with validation, progress tracking and record editing",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: defaultConfigPath,
				Value:       defaultConfigPath,
				Sources:     cli.EnvVars("DYNFORM_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the form over HTTP",
				Action: serve,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "port",
						Usage: "Override the configured HTTP port",
					},
				},
			},
			{
				Name:   "fill",
				Usage:  "Fill forms interactively in the terminal",
				Action: fill,
			},
			{
				Name:   "catalog",
				Usage:  "Print the merged form catalog",
				Action: listCatalog,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: text, json or yaml",
						Value: formatText,
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
