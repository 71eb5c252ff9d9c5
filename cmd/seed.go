package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/traitsmith/internal/config"
	"github.com/arcanaland/traitsmith/internal/localize"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed [language]",
	Short: "Seed a language's trait dictionary from the master list",
	Long: `Seed copies master trait entries that a language's dictionary does not have
yet, as English placeholders for translators to edit. Existing entries are
never touched, so re-running after new packs are released is safe.

The master traits file must exist; run 'traitsmith extract' first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		added, err := localize.UpdatePlaceholder(cfg, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Added %d new trait entries to %s\n", added, cfg.LanguageTraitsFile(args[0]))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
}
