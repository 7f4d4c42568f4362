package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInfoCommand creates the info command: show the session at a
// glance.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the current game, board, and ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(rootOpts)
			if err != nil {
				return err
			}
			defer rt.Close()
			if err := rt.resume(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			renderGame(out, rt.engine.Game())
			renderBoard(out, rt.engine.Game(), rt.engine.Board())
			renderDigits(out, rt.engine.Tools())
			renderLedger(out, rt.engine.Tools())
			if code := rt.engine.Tools().PredictCode(); code != "" {
				fmt.Fprintf(out, "predicted code: %s\n", code)
			}
			return nil
		},
	}
}

// NewStatsCommand creates the stats command: rounds and questions
// spent so far.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show rounds played and questions asked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(rootOpts)
			if err != nil {
				return err
			}
			defer rt.Close()
			if err := rt.resume(); err != nil {
				return err
			}
			rounds, questions := rt.engine.Tools().Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "%s played, %s asked\n",
				pluralCount(rounds, "round"), pluralCount(questions, "question"))
			return nil
		},
	}
}
