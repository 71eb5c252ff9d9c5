package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/traitsmith/internal/config"
	"github.com/arcanaland/traitsmith/internal/localize"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Rebuild the master trait list from the English pack files",
	Long: `Extract scans every pack file under the English pack directory, collects the
distinct trait tags, and rewrites the master traits file as a sorted code/name
list with each name equal to its code.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return localize.MakePlaceholder(cfg)
	},
}

func init() {
	RootCmd.AddCommand(extractCmd)
}
