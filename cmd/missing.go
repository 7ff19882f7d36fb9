package cmd

import (
	"os"

	"mtg-utils/core/config"
	"mtg-utils/feature/missing"

	"github.com/spf13/cobra"
)

var (
	// Flags for check-missing-cards
	missingDeckFile   string
	missingMoxfieldID string
	missingConfigFile string
)

// missingCmd reports what a deck lacks and where to borrow it.
var missingCmd = &cobra.Command{
	Use:   "check-missing-cards",
	Short: "Check for missing cards in a deck compared to available cards",
	Long: `Checks a deck against the available cards and, for anything missing,
lists the configured decks that hold copies.

Examples:
  # Check a local deck list
  check-missing-cards -d decks/elves.txt

  # Check a deck straight from Moxfield
  check-missing-cards --moxfield-id MvFOpMknJUKUnL6BMoQv6w`,
	Args: cobra.NoArgs,
	RunE: runMissing,
}

func init() {
	missingCmd.Flags().StringVarP(&missingDeckFile, "deck-file", "d", "", "Path to the deck file")
	missingCmd.Flags().StringVarP(&missingMoxfieldID, "moxfield-id", "i", "", "Moxfield ID of the deck to check")
	missingCmd.Flags().StringVar(&missingConfigFile, "config-file", config.DefaultCollectionFile, "Path to the config file")
	RootCmd.AddCommand(missingCmd)
}

func runMissing(cmd *cobra.Command, args []string) error {
	req := missing.Request{DeckFile: missingDeckFile, MoxfieldID: missingMoxfieldID}
	if err := req.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()

	rt, err := newSession(ctx, cmd.Name())
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	col, err := rt.loadCollection(missingConfigFile)
	if err != nil {
		return err
	}

	svc := missing.NewService(rt.remote(), rt.store, rt.cfg.Library, rt.logger)
	report, err := svc.Check(ctx, col, req)
	if err != nil {
		return err
	}

	missing.Render(os.Stdout, report)
	return nil
}
