package cmd

import (
	"fmt"
	"os"
	"strconv"

	"mtg-utils/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var debugFlag bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "mtg-utils",
	Short: "Magic: The Gathering collection utilities",
	Long: `mtg-utils keeps a card collection in step with the decks built from it.
It refreshes decks and owned cards from Moxfield, tracks the cards not assigned
to any deck, and reports what a deck is missing or shares with another.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Errors are reported through a console logger for readable CLI output
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	debugEnv, _ := strconv.ParseBool(os.Getenv("DEBUG"))
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", debugEnv, "Debug mode: set logging level to debug")
}
