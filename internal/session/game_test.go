package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebgh/turingdeck/internal/testutil"
)

func validGame() *Game {
	return &Game{
		ID:        "ABC123DEF",
		Code:      "245",
		Criterias: []int{4, 9, 11, 14},
		Verifiers: []string{"A", "B", "", "D"},
		Laws:      []int{3, 7, 11, 15},
	}
}

func TestGame_Valid(t *testing.T) {
	assert.True(t, validGame().Valid())

	var nilGame *Game
	assert.False(t, nilGame.Valid())

	g := validGame()
	g.Criterias = []int{1, 2, 3}
	assert.False(t, g.Valid(), "fewer than 4 cards")

	g = validGame()
	g.Verifiers = g.Verifiers[:3]
	assert.False(t, g.Valid(), "verifiers must pair with criterias")

	g = validGame()
	g.Laws = append(g.Laws, 1)
	assert.False(t, g.Valid(), "laws must pair with criterias")
}

func TestGame_LawFor(t *testing.T) {
	g := validGame()

	law, ok := g.LawFor(1)
	require.True(t, ok)
	assert.Equal(t, 3, law)

	law, ok = g.LawFor(4)
	require.True(t, ok)
	assert.Equal(t, 15, law)

	_, ok = g.LawFor(0)
	assert.False(t, ok)
	_, ok = g.LawFor(5)
	assert.False(t, ok)

	var nilGame *Game
	_, ok = nilGame.LawFor(1)
	assert.False(t, ok, "no loaded game yields no law")
}

func TestPrettyID(t *testing.T) {
	assert.Equal(t, "ABC 123 DEF", PrettyID("ABC123DEF"))
	assert.Equal(t, "AB", PrettyID("AB"))
	assert.Equal(t, "ABC 1", PrettyID("ABC1"))
	assert.Equal(t, "", PrettyID(""))
}

func TestNormalizeID(t *testing.T) {
	assert.Equal(t, "ABC123DEF", NormalizeID("ABC 123 DEF"))
	assert.Equal(t, "ABC123DEF", NormalizeID("ABC-123-DEF"))
	assert.Equal(t, "ABC123DEF", NormalizeID("  ABC 123-DEF "))
}

func TestGame_SaveLoadRoundTrip(t *testing.T) {
	s := testutil.NewMemStore()

	g, err := LoadGame(s)
	require.NoError(t, err)
	assert.Nil(t, g, "empty store has no game")

	require.NoError(t, SaveGame(s, validGame()))
	g, err = LoadGame(s)
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, validGame(), g)
}

func TestGame_MalformedStoredRecordIsAbsent(t *testing.T) {
	s := testutil.NewMemStore()
	require.NoError(t, s.Set("game", "{not json"))

	g, err := LoadGame(s)
	require.NoError(t, err)
	assert.Nil(t, g, "malformed state degrades to no game, never a hard failure")
}
