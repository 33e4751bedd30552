package main

import (
	"encoding/json"
	"fmt"

	"github.com/abhscancode/cluedin/internal/feed"
	"github.com/abhscancode/cluedin/internal/model"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print the enriched event catalog as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if category != "" && category != model.AllCategories && !a.Config.DataCategories.Contains(model.Category(category)) {
			return fmt.Errorf("unknown category %q", category)
		}

		events := feed.Project(a.Pipeline.GetEnrichedEvents(cmd.Context()), category)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	},
}

func init() {
	eventsCmd.Flags().String("category", model.AllCategories, "only print events in this category")
}
