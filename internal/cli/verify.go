package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVerifyCommand creates the verify command: spend one of the
// round's three questions on a card's verifier.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <card>",
		Short: "Check the round's proposal against a card's verifier",
		Long: `Check the current round's 3-digit proposal against one card's
verifier. This locks the round's proposal and spends one of the three
questions allowed per round.`,
		Args: cobra.ExactArgs(1),
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
			ok, err := rt.engine.Verify(cmd.Context(), rt.client, card)
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "card %d: the proposal passes this verifier\n", card)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "card %d: the proposal fails this verifier\n", card)
			}
			return nil
		},
	}
}

// NewGuessCommand creates the guess command: score a final code.
func NewGuessCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "guess [code]",
		Short: "Guess the secret code (defaults to the predicted one)",
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

			code := ""
			if len(args) == 1 {
				code = args[0]
			}
			out := cmd.OutOrStdout()
			rounds, questions := rt.engine.Tools().Stats()
			fmt.Fprintf(out, "%d %s, %s asked\n", rounds, plural(rounds, "round"), pluralCount(questions, "question"))

			correct, err := rt.engine.Guess(code)
			if err != nil {
				return err
			}
			if correct {
				fmt.Fprintln(out, "correct!")
			} else {
				fmt.Fprintln(out, "wrong")
			}
			return nil
		},
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

func pluralCount(n int, noun string) string {
	return fmt.Sprintf("%d %s", n, plural(n, noun))
}
