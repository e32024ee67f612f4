package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-daily/internal/papers"
	"github.com/pdiddy/arxiv-daily/internal/pipeline"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Drop aged-out entries from the stores",
	Long: `Prune removes entries older than the retention window from each enabled
target's JSON store and rewrites the store. Entries whose date cannot be
parsed are kept. The documents are not regenerated; run render afterwards.`,
	RunE: runPrune,
}

func runPrune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	days, _ := cmd.Flags().GetInt("days")
	if days == 0 {
		days = cfg.Cleanup.KeepDays
	}
	if days <= 0 {
		return fmt.Errorf("no retention window: set cleanup.keep_days or pass --days")
	}

	for _, target := range pipeline.Targets(cfg) {
		store, err := papers.Load(target.StorePath)
		if err != nil {
			return err
		}
		before, after := papers.Prune(store, days, time.Now())
		if err := store.Save(target.StorePath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%s: pruned %d papers (%d -> %d)\n",
			target.Name, before-after, before, after)
	}
	return nil
}

func init() {
	pruneCmd.Flags().Int("days", 0, "retention window in days (default: cleanup.keep_days)")
	rootCmd.AddCommand(pruneCmd)
}
