// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-daily CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-daily/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the arxiv-daily CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-daily",
	Short: "Daily arXiv paper digests by topic",
	Long: `arxiv-daily fetches paper metadata from the arXiv API for each configured
topic, merges it into a local JSON store without duplicates, prunes aged-out
entries, and renders the store into markdown listing documents.

Run "arxiv-daily update" for the full fetch-and-render cycle, or use the
render and prune subcommands to operate on existing stores.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-daily.yaml or ~/.config/arxiv-daily/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-daily")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-daily"))
		}
	}

	bindEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// bindEnv registers the environment overrides. The override keys are bound
// explicitly: AutomaticEnv alone does not make env-only keys visible to
// viper.IsSet when they are absent from the config file.
func bindEnv() {
	viper.SetEnvPrefix("ARXIV_DAILY")
	viper.AutomaticEnv()
	for _, key := range []string{"max_results", "show_abstract"} {
		_ = viper.BindEnv(key)
	}
}

// loadConfig parses the resolved config file and applies environment
// overrides (ARXIV_DAILY_MAX_RESULTS, ARXIV_DAILY_SHOW_ABSTRACT).
func loadConfig() (types.Config, error) {
	path := viper.ConfigFileUsed()
	if path == "" {
		return types.Config{}, fmt.Errorf("no config file found: pass --config or create arxiv-daily.yaml")
	}

	cfg, err := types.LoadConfig(path, os.Stderr)
	if err != nil {
		return types.Config{}, err
	}

	if viper.IsSet("max_results") {
		cfg.MaxResults = viper.GetInt("max_results")
	}
	if viper.IsSet("show_abstract") {
		cfg.ShowAbstract = viper.GetBool("show_abstract")
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
