package cmd

import (
	"os"

	"mtg-utils/feature/compare"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for compare-decks
	compareDeck1 string
	compareDeck2 string
)

// compareCmd diffs two deck lists.
var compareCmd = &cobra.Command{
	Use:   "compare-decks",
	Short: "Compare two deck lists",
	Long:  `Lists the cards two decks share and the cards unique to each.`,
	Args:  cobra.NoArgs,
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareDeck1, "deck1-file", "1", "", "Path to the deck 1 file")
	compareCmd.Flags().StringVarP(&compareDeck2, "deck2-file", "2", "", "Path to the deck 2 file")
	_ = compareCmd.MarkFlagRequired("deck1-file")
	_ = compareCmd.MarkFlagRequired("deck2-file")
	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := newSession(ctx, cmd.Name())
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	rt.logger.Debug("Comparing decks", zap.String("deck1", compareDeck1), zap.String("deck2", compareDeck2))

	res, err := compare.NewService(rt.store).Compare(ctx, compareDeck1, compareDeck2)
	if err != nil {
		return err
	}

	compare.Render(os.Stdout, res)
	return nil
}
