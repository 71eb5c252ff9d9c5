package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/traitsmith/internal/config"
	"github.com/arcanaland/traitsmith/internal/validator"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [language]",
	Short: "Validate the content tree and a language's localization files",
	Long: `Check verifies that the content repository is in a state a localization run
can work with: pack files parse and have unique card codes, the master trait
list covers every trait in use, the language's dictionary covers the trait
universe, and every translated pack mirrors an English one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		v := validator.NewValidator(cfg, args[0])
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Content tree is ready for a '%s' localization run.\n", args[0])
		} else {
			fmt.Printf("❌ Found %d problems:\n", len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
