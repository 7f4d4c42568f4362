// Package cli wires the session engine to a cobra command surface.
// Each command runs one engine operation against the durable store,
// so a session can be played across invocations and resumed at any
// point.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	DBPath     string
	Verbose    bool
}

// NewRootCommand creates the root command for the turingdeck CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "turingdeck",
		Short: "Session engine for the Turing Machine board game",
		Long: `turingdeck tracks a deductive code-breaking session: the dealt
criteria cards, your law annotations, rounds with their verification
quota, and final guesses. State persists between invocations.`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "path to the session database (overrides config)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewNewCommand(opts))
	cmd.AddCommand(NewOpenCommand(opts))
	cmd.AddCommand(NewResumeCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewMarkCommand(opts))
	cmd.AddCommand(NewUnmarkCommand(opts))
	cmd.AddCommand(NewDigitCommand(opts))
	cmd.AddCommand(NewRoundCommand(opts))
	cmd.AddCommand(NewSetCommand(opts))
	cmd.AddCommand(NewCardCommand(opts))
	cmd.AddCommand(NewLockCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))
	cmd.AddCommand(NewGuessCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewLangCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))

	return cmd
}
