package session

import "github.com/calebgh/turingdeck/internal/catalog"

// Board holds the tri-state law annotations across all dealt cards.
// Row indices are flat: card 1's rows first, then card 2's, and so on,
// each card contributing its criteria's law row count.
type Board struct {
	Laws []Mark `json:"laws"`
}

// NewBoard creates an empty board sized for the given criterias.
// Criteria ids unknown to the catalog contribute zero rows.
func NewBoard(criterias []int) *Board {
	return &Board{Laws: make([]Mark, catalog.TotalLawRows(criterias))}
}

// Rows returns the number of law rows on the board.
func (b *Board) Rows() int {
	return len(b.Laws)
}

// Toggle advances the mark at row through the primary cycle and
// returns the new value. Out-of-range rows are ignored.
func (b *Board) Toggle(row int) Mark {
	if row < 0 || row >= len(b.Laws) {
		return MarkUnset
	}
	b.Laws[row] = b.Laws[row].Next()
	return b.Laws[row]
}

// Reset forces the mark at row back to unset regardless of its
// current value (the explicit "clear" actuation).
func (b *Board) Reset(row int) {
	if row < 0 || row >= len(b.Laws) {
		return
	}
	b.Laws[row] = MarkUnset
}

// Save persists the full mark sequence.
func (b *Board) Save(s Store) error {
	return saveJSON(s, keyCardsState, b)
}

// Restore loads stored marks into the board. A missing state is a
// no-op, leaving every row unset. Stored rows beyond the board's size
// are ignored; missing trailing rows stay unset.
func (b *Board) Restore(s Store) error {
	var stored Board
	ok, err := loadJSON(s, keyCardsState, &stored)
	if err != nil || !ok {
		return err
	}
	n := min(len(stored.Laws), len(b.Laws))
	copy(b.Laws[:n], stored.Laws[:n])
	return nil
}

// ClearStoredBoard deletes the stored board state. In-memory marks
// are untouched; callers re-initialize the board when dealing.
func ClearStoredBoard(s Store) error {
	return s.Delete(keyCardsState)
}
