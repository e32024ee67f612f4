// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-daily/internal/arxiv"
	"github.com/pdiddy/arxiv-daily/internal/httputil"
	"github.com/pdiddy/arxiv-daily/internal/pipeline"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch new papers and regenerate the listing documents",
	Long: `Update runs the full cycle: fetch papers for every configured topic,
prune aged-out entries when cleanup is enabled, merge the results into each
target's JSON store, and render the markdown documents. A per-topic fetch
failure is logged and skipped; store write failures abort the run.`,
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := &arxiv.Client{
		HTTP:      httputil.NewClient(cfg.HTTP),
		UserAgent: cfg.HTTP.UserAgent,
	}

	stats, err := pipeline.Run(cmd.Context(), cfg, client, os.Stderr)
	if err != nil {
		return err
	}

	for _, ts := range stats.Targets {
		fmt.Fprintf(os.Stderr, "%s: %d added, %d pruned, %d total\n",
			ts.Name, ts.Added, ts.Pruned, ts.Total)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
