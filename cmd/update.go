package cmd

import (
	"os"

	"mtg-utils/core/config"
	"mtg-utils/feature/library"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var updateConfigFile string

// updateCmd refreshes decks, owned cards and the available pool.
var updateCmd = &cobra.Command{
	Use:   "update-card-library",
	Short: "Update decks, owned cards and available cards from Moxfield",
	Long: `Fetches every configured deck and the owned-cards binder from Moxfield,
adds the local purchase log, and rewrites the list of cards not used by any deck.

Nothing is written if any fetch fails or returns no cards.`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateConfigFile, "config-file", config.DefaultCollectionFile, "Path to the config file")
	RootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := newSession(ctx, cmd.Name())
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	col, err := rt.loadCollection(updateConfigFile)
	if err != nil {
		return err
	}

	rt.logger.Info("Updating card library", zap.Int("decks", len(col.Decks)))

	svc := library.NewService(rt.remote(), rt.store, rt.cfg.Library, rt.logger)
	res, err := svc.Update(ctx, col)
	if err != nil {
		return err
	}

	library.Render(os.Stdout, res)
	return nil
}
