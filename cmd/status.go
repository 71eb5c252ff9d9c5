package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/traitsmith/internal/config"
	"github.com/arcanaland/traitsmith/internal/localize"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status [language]",
	Short: "Show translation progress for a language",
	Long: `Status compares a language's trait dictionary against the master list and
reports how many entries are still untranslated (name equal to code) and which
master codes are missing from the dictionary entirely.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		report, err := localize.Status(cfg, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Trait dictionary for '%s':\n", args[0])
		fmt.Println("--------------------------")
		fmt.Printf("Entries:      %d\n", report.Total)
		color.Green("Translated:   %d", report.Translated)
		if untranslated := report.Total - report.Translated; untranslated > 0 {
			color.Yellow("Untranslated: %d", untranslated)
		}

		if len(report.Missing) > 0 {
			color.Red("\nMissing %d master codes (run 'traitsmith seed %s'):", len(report.Missing), args[0])
			for _, code := range report.Missing {
				fmt.Printf("  %s\n", code)
			}
			return fmt.Errorf("dictionary out of date")
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
}
