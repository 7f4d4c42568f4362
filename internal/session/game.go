package session

import (
	"strings"
)

const (
	// MinCards and MaxCards bound how many criteria cards a game deals.
	MinCards = 4
	MaxCards = 6
)

// Game is the active game record as returned by the game service or
// restored from storage.
//
// Criterias, Verifiers and Laws are parallel: one entry per dealt
// card. A verifier entry may be empty, meaning the card has no
// verifier attached.
type Game struct {
	ID        string   `json:"id"`
	Code      string   `json:"code"`
	Criterias []int    `json:"criterias"`
	Verifiers []string `json:"verifiers"`
	Laws      []int    `json:"laws"`
}

// Valid reports whether the record satisfies the structural
// invariants: parallel sequences of equal length, cardinality 4..6.
func (g *Game) Valid() bool {
	if g == nil {
		return false
	}
	n := len(g.Criterias)
	if n < MinCards || n > MaxCards {
		return false
	}
	return len(g.Verifiers) == n && len(g.Laws) == n
}

// LawFor returns the law for a dealt card. Cards are numbered 1..n by
// position on the table, not by criteria value.
func (g *Game) LawFor(card int) (int, bool) {
	if g == nil || card < 1 || card > len(g.Laws) {
		return 0, false
	}
	return g.Laws[card-1], true
}

// NormalizeID strips the spaces and dashes players tend to copy along
// with a shared game id.
func NormalizeID(id string) string {
	id = strings.ReplaceAll(id, " ", "")
	id = strings.ReplaceAll(id, "-", "")
	return strings.TrimSpace(id)
}

// PrettyID formats a raw game id for display, inserting a space every
// three characters. Pure formatting; accepts any length.
func PrettyID(id string) string {
	var b strings.Builder
	for i, r := range id {
		if i > 0 && i%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// LoadGame reads the stored game, if any. A missing or malformed
// record yields (nil, nil).
func LoadGame(s Store) (*Game, error) {
	var g Game
	ok, err := loadJSON(s, keyGame, &g)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &g, nil
}

// SaveGame persists the game, replacing any prior one.
func SaveGame(s Store, g *Game) error {
	return saveJSON(s, keyGame, g)
}
