package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/traitsmith/internal/config"
	"github.com/arcanaland/traitsmith/internal/localize"
)

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:   "apply [language]",
	Short: "Propagate translated traits onto a language's card files",
	Long: `Apply recomputes the traits field of every translated card from its English
counterpart, mapping each trait through the language's dictionary. Cards whose
traits already differ from the English source are treated as hand-translated
and skipped unless --overwrite is given.

Every trait appearing in the English data must have a dictionary entry; run
'traitsmith seed' first.

Examples:
  traitsmith apply ko
  traitsmith apply ko --cycle core --cycle dunwich
  traitsmith apply ko --overwrite`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		cycles, _ := cmd.Flags().GetStringSlice("cycle")
		overwrite, _ := cmd.Flags().GetBool("overwrite")

		written, err := localize.UpdateTraits(cfg, args[0], cycles, overwrite)
		if err != nil {
			return err
		}
		fmt.Printf("Updated %d pack files\n", written)
		return nil
	},
}

func init() {
	applyCmd.Flags().StringSlice("cycle", nil, "restrict to the given cycle directories")
	applyCmd.Flags().Bool("overwrite", false, "rewrite traits even on hand-translated cards")
	RootCmd.AddCommand(applyCmd)
}
