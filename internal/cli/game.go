package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebgh/turingdeck/internal/session"
)

// NewNewCommand creates the new command: deal a fresh game.
func NewNewCommand(rootOpts *RootOptions) *cobra.Command {
	var difficulty string
	var cards int

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Deal a new game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(rootOpts)
			if err != nil {
				return err
			}
			defer rt.Close()

			if difficulty == "" {
				difficulty = rt.cfg.Difficulty
			}
			if cards == 0 {
				cards = rt.cfg.Cards
			}
			g, err := rt.client.NewGame(cmd.Context(), difficulty, cards)
			if err != nil {
				return fmt.Errorf("something went wrong, try again later: %w", err)
			}
			if err := rt.engine.NewGame(g); err != nil {
				return err
			}
			renderGame(cmd.OutOrStdout(), g)
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "", "game difficulty (easy|medium|hard)")
	cmd.Flags().IntVar(&cards, "cards", 0, "number of criteria cards (4-6)")
	return cmd
}

// NewOpenCommand creates the open command: fetch a game by id.
func NewOpenCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "open <game-id>",
		Short: "Open a game by its shared id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(rootOpts)
			if err != nil {
				return err
			}
			defer rt.Close()

			id := session.NormalizeID(args[0])

			// Fast path: the requested game is already stored, so
			// restart it without a network round-trip.
			if stored, err := session.LoadGame(rt.store); err == nil && stored != nil && stored.ID == id {
				if err := rt.engine.NewGame(stored); err != nil {
					return err
				}
				renderGame(cmd.OutOrStdout(), stored)
				return nil
			}

			g, err := rt.client.GameByID(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("invalid game ID: %w", err)
			}
			if err := rt.engine.NewGame(g); err != nil {
				return err
			}
			renderGame(cmd.OutOrStdout(), g)
			return nil
		},
	}
}

// NewResumeCommand creates the resume command: restore the stored
// session.
func NewResumeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume the stored session",
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
			renderLedger(out, rt.engine.Tools())
			return nil
		},
	}
}

// NewSearchCommand creates the search command: reconstruct a game
// from physical cards via the solver.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	var criterias, verifiers string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find the game matching a set of dealt cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			crits, err := parseCardList(criterias)
			if err != nil {
				return fmt.Errorf("criterias: %w", err)
			}
			verfs, err := parseCardList(verifiers)
			if err != nil {
				return fmt.Errorf("verifiers: %w", err)
			}

			rt, err := newRuntime(rootOpts)
			if err != nil {
				return err
			}
			defer rt.Close()

			g, err := rt.engine.SearchGame(cmd.Context(), rt.client, crits, verfs)
			if err != nil {
				return err
			}
			renderGame(cmd.OutOrStdout(), g)
			return nil
		},
	}

	cmd.Flags().StringVar(&criterias, "criterias", "", "comma-separated criteria card numbers")
	cmd.Flags().StringVar(&verifiers, "verifiers", "", "comma-separated verifier card numbers")
	_ = cmd.MarkFlagRequired("criterias")
	_ = cmd.MarkFlagRequired("verifiers")
	return cmd
}

// parseCardList parses a comma-separated list of card numbers.
func parseCardList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	cards := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid card number %q", p)
		}
		cards = append(cards, n)
	}
	return cards, nil
}
