package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/traitsmith/internal/bridge"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [traits.json] [out.txt]",
	Short: "Export a trait dictionary to tab-separated text",
	Long: `Export writes a trait dictionary as one "code<TAB>name" line per entry, for
bulk editing in a plain text editor or spreadsheet.

Example:
  traitsmith export translations/ko/traits.json ko.txt`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bridge.Export(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Exported %s to %s\n", args[0], args[1])
		return nil
	},
}

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [traits.json] [in.txt]",
	Short: "Apply edited tab-separated text back onto a trait dictionary",
	Long: `Import reads "code<TAB>name" lines and updates the names of matching entries
in the dictionary. Codes not present in the dictionary are ignored, so stale
lines in an old export are harmless.

Example:
  traitsmith import translations/ko/traits.json ko.txt`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bridge.Import(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Imported %s into %s\n", args[1], args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(importCmd)
}
