package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minafoods/newsclip/internal/taxonomy"
)

// NewKeywordsCmd creates the keywords subcommand group.
func NewKeywordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Manage the search keyword taxonomy",
		Long: `Keywords are grouped into categories; the collect command issues one
search per category. Every change is written back to the keywords YAML file
immediately.`,
	}

	cmd.AddCommand(
		newKeywordsListCmd(),
		newKeywordsAddCategoryCmd(),
		newKeywordsAddCmd(),
		newKeywordsRemoveCategoryCmd(),
		newKeywordsRemoveCmd(),
	)
	return cmd
}

func newKeywordsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all categories and their keywords",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store := taxonomy.NewStore(cfg.KeywordsFile)
			tax := store.Load()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "keywords file: %s\n\n", store.Path())
			for _, c := range tax.Categories {
				fmt.Fprintf(out, "%s: %s\n", c.Name, strings.Join(c.Keywords, ", "))
			}
			return nil
		},
	}
}

func newKeywordsAddCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-category <name>",
		Short: "Add an empty category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store := taxonomy.NewStore(cfg.KeywordsFile)
			tax := store.Load()

			if err := store.AddCategory(tax, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "category %q saved\n", args[0])
			return nil
		},
	}
}

func newKeywordsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <category> <keyword>",
		Short: "Add a keyword to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store := taxonomy.NewStore(cfg.KeywordsFile)
			tax := store.Load()

			if err := store.AddKeyword(tax, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "keyword %q added to %q\n", args[1], args[0])
			return nil
		},
	}
}

func newKeywordsRemoveCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-category <name>",
		Short: "Remove a category and its keywords",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store := taxonomy.NewStore(cfg.KeywordsFile)
			tax := store.Load()

			if err := store.RemoveCategory(tax, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "category %q removed\n", args[0])
			return nil
		},
	}
}

func newKeywordsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <category> <keyword>",
		Short: "Remove a keyword from a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store := taxonomy.NewStore(cfg.KeywordsFile)
			tax := store.Load()

			if err := store.RemoveKeyword(tax, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "keyword %q removed from %q\n", args[1], args[0])
			return nil
		},
	}
}
