package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/abhscancode/cluedin/db"
	"github.com/abhscancode/cluedin/internal/config"
	"github.com/abhscancode/cluedin/internal/repository"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the built-in event catalog to Postgres",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		events := repository.MockEvents(time.Now())

		// Validate before touching the database.
		if _, err := repository.NewStaticEventStore(events, cfg.DataCategories); err != nil {
			return fmt.Errorf("invalid built-in catalog: %w", err)
		}

		if err := db.Connect(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("error connecting to DB: %w", err)
		}
		defer db.Close()

		inserted, err := repository.NewEventRepository(db.DB).SaveEvents(events)
		if err != nil {
			return fmt.Errorf("error seeding events: %w", err)
		}

		slog.Info("catalog seeded", "inserted", inserted, "skipped", len(events)-inserted)
		return nil
	},
}
