// Package main provides the entry point for the newsclip CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minafoods/newsclip/internal/config"
)

// NewRootCmd creates the root command for newsclip.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newsclip",
		Short: "Weekly business-news clipping from Google News",
		Long: `newsclip collects Korean business news for the current reporting week
(Friday through Thursday), ranks articles against a persisted keyword
taxonomy, and exports picked articles to an .xlsx clipping sheet.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("keywords", "", "Path to the keywords YAML file (default: XDG config dir)")

	cmd.AddCommand(NewCollectCmd())
	cmd.AddCommand(NewKeywordsCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// loadConfig builds the runtime configuration, applying the --keywords
// override on top of the environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if f := cmd.Flag("keywords"); f != nil && f.Value.String() != "" {
		cfg.KeywordsFile = f.Value.String()
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
