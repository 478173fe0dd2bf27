package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.4.0"

// NewVersionCmd creates the version subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the newsclip version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "newsclip", version)
			return nil
		},
	}
}
