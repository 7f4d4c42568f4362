package session

const (
	digitPositions  = 3
	digitCandidates = 5
	digitCells      = digitPositions * digitCandidates

	// MaxQuestions is the verification quota per round.
	MaxQuestions = 3

	// fallbackCardCount sizes a round added with no game loaded.
	fallbackCardCount = MaxCards
)

// EntryKind discriminates the two kinds of ledger entries.
type EntryKind string

const (
	EntryRound    EntryKind = "round"
	EntrySolution EntryKind = "solution"
)

// Entry is one element of the round ledger: either a played round or
// a solution attempt. Exactly one of Round/Solution is set, matching
// Kind.
type Entry struct {
	Kind     EntryKind `json:"kind"`
	Round    *Round    `json:"round,omitempty"`
	Solution *Solution `json:"solution,omitempty"`
}

// Round records one attempt cycle: the 3-digit proposal under
// composition, per-card verification bookkeeping, and the lock flag
// that freezes the proposal.
type Round struct {
	// Proposal holds one entry per code position; 0 means the
	// position is still unresolved, otherwise the digit 1..5.
	Proposal [digitPositions]int `json:"proposal"`
	// Cards has one slot per card in play this round.
	Cards     []CardSlot `json:"cards"`
	CardCount int        `json:"card_count"`
	Locked    bool       `json:"locked"`
}

// CardSlot is the per-card bookkeeping inside a round: the player's
// manual mark plus the recorded verifier result, if any.
type CardSlot struct {
	Mark     Mark  `json:"mark"`
	Verified *bool `json:"verified,omitempty"`
}

// Solution records a final guess and how it scored.
type Solution struct {
	Code    string `json:"code"`
	Correct bool   `json:"correct"`
}

// Tools holds the digit board and the round ledger. The digit board
// has three groups of five cells, one group per code position,
// enumerating that position's candidate values 1..5.
type Tools struct {
	Digits [digitCells]Mark `json:"digits"`
	Rounds []Entry          `json:"rounds"`
}

// NewTools creates an empty digit board and ledger.
func NewTools() *Tools {
	return &Tools{}
}

// AddRound appends a new unlocked round sized to cardCount card
// slots. Counts outside 1..6 fall back to 6. If the trailing entry is
// still an unlocked round it is locked first, so at most the last
// entry is ever unlocked.
func (t *Tools) AddRound(cardCount int) *Round {
	if cardCount < 1 || cardCount > MaxCards {
		cardCount = fallbackCardCount
	}
	if last := t.LastRound(); last != nil && !last.Locked {
		last.Locked = true
	}
	r := &Round{
		Cards:     make([]CardSlot, cardCount),
		CardCount: cardCount,
	}
	t.Rounds = append(t.Rounds, Entry{Kind: EntryRound, Round: r})
	return r
}

// LastRound returns the trailing ledger entry if it is a round,
// locked or not. Only this round accepts verifications; proposal
// edits additionally require it to be unlocked. Returns nil when the
// ledger is empty or ends in a solution attempt.
func (t *Tools) LastRound() *Round {
	if len(t.Rounds) == 0 {
		return nil
	}
	last := t.Rounds[len(t.Rounds)-1]
	if last.Kind != EntryRound {
		return nil
	}
	return last.Round
}

// SetProposalDigit sets one position of the last round's proposal.
// digit 0 clears the position back to unresolved.
func (t *Tools) SetProposalDigit(pos, digit int) error {
	r := t.LastRound()
	if r == nil {
		return &NoOpenRoundError{}
	}
	if r.Locked {
		return ErrRoundLocked
	}
	if pos < 0 || pos >= digitPositions {
		return &IncompleteProposalError{}
	}
	if digit < 0 || digit > digitCandidates {
		return &IncompleteProposalError{}
	}
	r.Proposal[pos] = digit
	return nil
}

// Proposal reads the last round's three digit selections as a code.
// Fails with NoOpenRoundError when no round is active, and with
// IncompleteProposalError when any position is unresolved.
func (t *Tools) Proposal() (string, error) {
	r := t.LastRound()
	if r == nil {
		return "", &NoOpenRoundError{}
	}
	code := make([]byte, 0, digitPositions)
	for _, d := range r.Proposal {
		if d < 1 || d > digitCandidates {
			return "", &IncompleteProposalError{}
		}
		code = append(code, '0'+byte(d))
	}
	return string(code), nil
}

// QuestionCount counts the card slots in a round carrying either a
// manual mark or a recorded verifier result. A slot with both counts
// once. This is the quota-tracking count; enforcement happens at the
// call site before a verification is issued.
func (t *Tools) QuestionCount(r *Round) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, c := range r.Cards {
		if c.Mark != MarkUnset || c.Verified != nil {
			n++
		}
	}
	return n
}

// Lock freezes the last round's proposal. Idempotent; a locked round
// never unlocks.
func (t *Tools) Lock() {
	if r := t.LastRound(); r != nil {
		r.Locked = true
	}
}

// RecordVerification stores a verifier result on the last round's
// card slot. card is 1-based. This is a pure recorder: the quota gate
// runs upstream, and re-verifying an already-checked card stays
// possible.
func (t *Tools) RecordVerification(card int, success bool) error {
	r := t.LastRound()
	if r == nil {
		return &NoOpenRoundError{}
	}
	if card < 1 || card > len(r.Cards) {
		return &NoOpenRoundError{}
	}
	r.Cards[card-1].Verified = &success
	return nil
}

// ToggleCard advances the manual mark on the last round's card slot.
// card is 1-based.
func (t *Tools) ToggleCard(card int) error {
	r := t.LastRound()
	if r == nil {
		return &NoOpenRoundError{}
	}
	if card < 1 || card > len(r.Cards) {
		return &NoOpenRoundError{}
	}
	r.Cards[card-1].Mark = r.Cards[card-1].Mark.Next()
	return nil
}

// AppendSolution appends a scored solution attempt.
func (t *Tools) AppendSolution(code string, correct bool) {
	t.Rounds = append(t.Rounds, Entry{
		Kind:     EntrySolution,
		Solution: &Solution{Code: code, Correct: correct},
	})
}

// ToggleDigit advances the mark on one digit cell. Cells are indexed
// 0..14: position*5 + (candidate-1).
func (t *Tools) ToggleDigit(cell int) Mark {
	if cell < 0 || cell >= digitCells {
		return MarkUnset
	}
	t.Digits[cell] = t.Digits[cell].Next()
	return t.Digits[cell]
}

// ResetDigit forces one digit cell back to unset.
func (t *Tools) ResetDigit(cell int) {
	if cell < 0 || cell >= digitCells {
		return
	}
	t.Digits[cell] = MarkUnset
}

// ResetDigits clears the whole digit board.
func (t *Tools) ResetDigits() {
	t.Digits = [digitCells]Mark{}
}

// Stats reports how many rounds were played and how many questions
// were spent across them. Rounds with no questions don't count, and
// counting stops at the first solution attempt.
func (t *Tools) Stats() (rounds, questions int) {
	for _, e := range t.Rounds {
		if e.Kind != EntryRound {
			break
		}
		q := t.QuestionCount(e.Round)
		if q == 0 {
			continue
		}
		rounds++
		questions += q
	}
	return rounds, questions
}

// Save persists the digit board and the full ledger.
func (t *Tools) Save(s Store) error {
	return saveJSON(s, keyToolsState, t)
}

// Restore replaces the in-memory state with the stored one, if any.
// A missing state is a no-op. Restored entries are sanitized: card
// slots beyond six are dropped, out-of-range proposal digits reset to
// unresolved, and entries of unknown kind are skipped.
func (t *Tools) Restore(s Store) error {
	var stored Tools
	ok, err := loadJSON(s, keyToolsState, &stored)
	if err != nil || !ok {
		return err
	}
	t.Digits = stored.Digits
	t.Rounds = t.Rounds[:0]
	for _, e := range stored.Rounds {
		switch e.Kind {
		case EntryRound:
			if e.Round == nil {
				continue
			}
			r := *e.Round
			if len(r.Cards) > MaxCards {
				r.Cards = r.Cards[:MaxCards]
			}
			if r.CardCount < 1 || r.CardCount > MaxCards {
				r.CardCount = len(r.Cards)
			}
			for i, d := range r.Proposal {
				if d < 0 || d > digitCandidates {
					r.Proposal[i] = 0
				}
			}
			t.Rounds = append(t.Rounds, Entry{Kind: EntryRound, Round: &r})
		case EntrySolution:
			if e.Solution == nil {
				continue
			}
			sol := *e.Solution
			t.Rounds = append(t.Rounds, Entry{Kind: EntrySolution, Solution: &sol})
		}
	}
	return nil
}

// ClearStoredTools deletes the stored ledger state. In-memory state
// is untouched; callers re-initialize when dealing a new game.
func ClearStoredTools(s Store) error {
	return s.Delete(keyToolsState)
}
