package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-daily/internal/pipeline"
	"github.com/pdiddy/arxiv-daily/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Regenerate the listing documents from the existing stores",
	Long: `Render rebuilds each enabled target's markdown document from its JSON
store without fetching anything. Useful after editing the store by hand or
changing presentation settings.`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	for _, target := range pipeline.Targets(cfg) {
		doc, total, err := render.File(target.StorePath, target.Render)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", target.Name, err)
		}
		if err := os.WriteFile(target.OutputPath, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target.OutputPath, err)
		}
		fmt.Fprintf(os.Stderr, "%s: wrote %s with %d papers\n", target.Name, target.OutputPath, total)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
