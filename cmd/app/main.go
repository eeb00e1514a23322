package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/seralys/inkwell/internal"
	"github.com/seralys/inkwell/internal/api"
	"github.com/seralys/inkwell/internal/mcpserver"
	"github.com/seralys/inkwell/internal/source"
	pkgconfig "github.com/seralys/inkwell/pkg/config"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.Load(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if cmd.Bool("mcp") {
		return runMCP(cfg)
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

// runMCP serves the query tools over stdio instead of HTTP. Logs go to
// stderr so stdout stays clean for the MCP transport.
func runMCP(cfg *internal.Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	src := source.NewFresh(cfg.Content.PostsPath, cfg.Content.ThoughtsPath, logger)
	return mcpserver.New(api.NewService(src)).ServeStdio()
}

func main() {
	cmd := &cli.Command{
		Name:   "inkwell",
		Usage:  "Content indexing and query server for a Markdown-based personal site",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.BoolFlag{
				Name:  "mcp",
				Usage: "Serve the MCP tool surface on stdio instead of the HTTP API",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
