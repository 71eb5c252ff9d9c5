package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/traitsmith/internal/config"
	"github.com/arcanaland/traitsmith/internal/localize"
)

var verbose bool

// RootCmd represents the base command. Called without a subcommand it runs
// the whole localization pipeline for the default language: rebuild the
// master trait list, seed the language's placeholder, then propagate
// traits without overwriting hand-translated cards.
var RootCmd = &cobra.Command{
	Use:   "traitsmith",
	Short: "Localization pipeline for card-game trait tags",
	Long: `Traitsmith maintains the trait localization files of a card-game content set.
It extracts trait tags from the English card database into a master list, seeds
per-language translation dictionaries, and propagates translated traits onto
the mirrored card files.

Without a subcommand it runs the full pipeline (extract, seed, apply) for the
default language from traitsmith.toml.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		lang := cfg.DefaultLanguage

		if err := localize.MakePlaceholder(cfg); err != nil {
			return err
		}
		if _, err := localize.UpdatePlaceholder(cfg, lang); err != nil {
			return err
		}
		_, err = localize.UpdateTraits(cfg, lang, nil, false)
		return err
	},
}

func init() {
	cobra.OnInitialize(setupLogging)
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func setupLogging() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
