package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/abhscancode/cluedin/internal/app"
	"github.com/abhscancode/cluedin/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cluedin",
	Short: "CluedIn event enrichment tools",
	Long: `cluedin runs the event enrichment pipeline from the command line.
It can print the enriched catalog, ask the configured provider for
category suggestions and seed the Postgres catalog.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		godotenv.Load()
		// stdout carries command output, so logs go to stderr.
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	},
}

// Execute runs the root command. It is called once by main.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(eventsCmd, suggestCmd, seedCmd)
}

func newApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return app.New(ctx, cfg)
}
