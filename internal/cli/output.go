package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/calebgh/turingdeck/internal/catalog"
	"github.com/calebgh/turingdeck/internal/session"
)

// markGlyph renders a tri-state mark as a compact cell.
func markGlyph(m session.Mark) string {
	switch m {
	case session.MarkExcluded:
		return "[x]"
	case session.MarkIncluded:
		return "[o]"
	default:
		return "[ ]"
	}
}

// proposalString renders a round's proposal, "?" for unresolved
// positions.
func proposalString(r *session.Round) string {
	var b strings.Builder
	for _, d := range r.Proposal {
		if d < 1 || d > 5 {
			b.WriteByte('?')
		} else {
			b.WriteByte('0' + byte(d))
		}
	}
	return b.String()
}

// renderGame prints the game header: pretty id, criterias, verifiers.
func renderGame(w io.Writer, g *session.Game) {
	fmt.Fprintf(w, "game %s\n", session.PrettyID(g.ID))
	crits := make([]string, len(g.Criterias))
	for i, c := range g.Criterias {
		crits[i] = fmt.Sprintf("%d", c)
	}
	fmt.Fprintf(w, "criterias: %s\n", strings.Join(crits, ", "))
	verifiers := make([]string, 0, len(g.Verifiers))
	for _, v := range g.Verifiers {
		if v == "" {
			v = "-"
		}
		verifiers = append(verifiers, v)
	}
	fmt.Fprintf(w, "verifiers: %s\n", strings.Join(verifiers, ", "))
}

// renderBoard prints the law rows grouped per dealt card, with the
// flat row index players pass to mark/unmark.
func renderBoard(w io.Writer, g *session.Game, b *session.Board) {
	row := 0
	for i, criteria := range g.Criterias {
		fmt.Fprintf(w, "card %d (criteria %d):\n", i+1, criteria)
		count, _ := catalog.LawCount(criteria)
		for n := 0; n < count && row < b.Rows(); n++ {
			fmt.Fprintf(w, "  %3d %s\n", row, markGlyph(b.Laws[row]))
			row++
		}
	}
}

// renderDigits prints the digit board, one line per code position.
func renderDigits(w io.Writer, t *session.Tools) {
	for pos := 0; pos < 3; pos++ {
		fmt.Fprintf(w, "pos %d:", pos+1)
		for cand := 0; cand < 5; cand++ {
			cell := pos*5 + cand
			fmt.Fprintf(w, " %d%s", cand+1, markGlyph(t.Digits[cell]))
		}
		fmt.Fprintln(w)
	}
}

// renderLedger prints the round ledger in chronological order.
func renderLedger(w io.Writer, t *session.Tools) {
	if len(t.Rounds) == 0 {
		fmt.Fprintln(w, "no rounds yet")
		return
	}
	round := 0
	for _, e := range t.Rounds {
		switch e.Kind {
		case session.EntryRound:
			round++
			r := e.Round
			suffix := ""
			if r.Locked {
				suffix = " (locked)"
			}
			fmt.Fprintf(w, "round %d: proposal %s%s\n", round, proposalString(r), suffix)
			for i, c := range r.Cards {
				if c.Mark == session.MarkUnset && c.Verified == nil {
					continue
				}
				fmt.Fprintf(w, "  card %d:", i+1)
				if c.Mark != session.MarkUnset {
					fmt.Fprintf(w, " %s", c.Mark)
				}
				if c.Verified != nil {
					if *c.Verified {
						fmt.Fprint(w, " verified yes")
					} else {
						fmt.Fprint(w, " verified no")
					}
				}
				fmt.Fprintln(w)
			}
		case session.EntrySolution:
			verdict := "wrong"
			if e.Solution.Correct {
				verdict = "correct"
			}
			fmt.Fprintf(w, "guess %s: %s\n", e.Solution.Code, verdict)
		}
	}
}
