package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// intArg parses a positional integer argument.
func intArg(args []string, i int) (int, error) {
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", args[i])
	}
	return n, nil
}

// NewMarkCommand creates the mark command: toggle a law row.
func NewMarkCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mark <row>",
		Short: "Toggle a law row (unset > excluded > included > unset)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := intArg(args, 0)
			if err != nil {
				return err
			}
			rt, err := newRuntime(rootOpts)
			if err != nil {
				return err
			}
			defer rt.Close()
			if err := rt.resume(); err != nil {
				return err
			}
			m, err := rt.engine.ToggleLaw(row)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "row %d: %s\n", row, m)
			return nil
		},
	}
}

// NewUnmarkCommand creates the unmark command: clear a law row.
func NewUnmarkCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unmark <row>",
		Short: "Clear a law row back to unset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := intArg(args, 0)
			if err != nil {
				return err
			}
			rt, err := newRuntime(rootOpts)
			if err != nil {
				return err
			}
			defer rt.Close()
			if err := rt.resume(); err != nil {
				return err
			}
			if err := rt.engine.ResetLaw(row); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "row %d: unset\n", row)
			return nil
		},
	}
}

// NewDigitCommand creates the digit command: toggle a digit cell.
func NewDigitCommand(rootOpts *RootOptions) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "digit [cell]",
		Short: "Toggle a digit cell (0-14), or clear them all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(rootOpts)
			if err != nil {
				return err
			}
			defer rt.Close()
			if err := rt.resume(); err != nil {
				return err
			}
			if reset {
				if err := rt.engine.ResetDigits(); err != nil {
					return err
				}
			} else {
				if len(args) != 1 {
					return fmt.Errorf("pass a cell number or --reset")
				}
				cell, err := intArg(args, 0)
				if err != nil {
					return err
				}
				if _, err := rt.engine.ToggleDigit(cell); err != nil {
					return err
				}
			}
			renderDigits(cmd.OutOrStdout(), rt.engine.Tools())
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "clear the whole digit board")
	return cmd
}

// NewRoundCommand creates the round command: start a new round.
func NewRoundCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "round",
		Short: "Start a new round",
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
			if _, err := rt.engine.AddRound(); err != nil {
				return err
			}
			renderLedger(cmd.OutOrStdout(), rt.engine.Tools())
			return nil
		},
	}
}

// NewSetCommand creates the set command: compose the round proposal.
func NewSetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <position> <digit>",
		Short: "Set one digit of the round's proposal (position 1-3, digit 1-5, 0 clears)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := intArg(args, 0)
			if err != nil {
				return err
			}
			digit, err := intArg(args, 1)
			if err != nil {
				return err
			}
			rt, err := newRuntime(rootOpts)
			if err != nil {
				return err
			}
			defer rt.Close()
			if err := rt.resume(); err != nil {
				return err
			}
			if err := rt.engine.SetProposalDigit(pos-1, digit); err != nil {
				return err
			}
			renderLedger(cmd.OutOrStdout(), rt.engine.Tools())
			return nil
		},
	}
}

// NewCardCommand creates the card command: toggle a round card mark.
func NewCardCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "card <number>",
		Short: "Toggle the manual mark on a card in the current round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := intArg(args, 0)
			if err != nil {
				return err
			}
			rt, err := newRuntime(rootOpts)
			if err != nil {
				return err
			}
			defer rt.Close()
			if err := rt.resume(); err != nil {
				return err
			}
			if err := rt.engine.ToggleCard(card); err != nil {
				return err
			}
			renderLedger(cmd.OutOrStdout(), rt.engine.Tools())
			return nil
		},
	}
}

// NewLockCommand creates the lock command: freeze the round proposal.
func NewLockCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Lock the current round's proposal",
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
			if err := rt.engine.Lock(); err != nil {
				return err
			}
			renderLedger(cmd.OutOrStdout(), rt.engine.Tools())
			return nil
		},
	}
}
