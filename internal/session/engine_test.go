package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebgh/turingdeck/internal/testutil"
)

type fakeVerifier struct {
	calls    int
	result   bool
	err      error
	law      int
	proposal string
}

func (f *fakeVerifier) Verify(_ context.Context, law int, proposal string) (bool, error) {
	f.calls++
	f.law = law
	f.proposal = proposal
	return f.result, f.err
}

type fakeSolver struct {
	game      *Game
	solutions []string
	err       error
}

func (f *fakeSolver) Solve(_ context.Context, _, _ []int) (*Game, []string, error) {
	return f.game, f.solutions, f.err
}

func newTestEngine(t *testing.T) (*Engine, *testutil.MemStore) {
	t.Helper()
	s := testutil.NewMemStore()
	return NewEngine(s, zerolog.Nop()), s
}

func TestEngine_StartGameRejectsInvalid(t *testing.T) {
	e, _ := newTestEngine(t)
	err := e.StartGame(&Game{ID: "X"})
	require.Error(t, err)
	assert.Nil(t, e.Game())
}

func TestEngine_NewGameClearsStoredState(t *testing.T) {
	e, s := newTestEngine(t)
	require.NoError(t, e.StartGame(validGame()))

	// Leave annotations from a prior session
	_, err := e.ToggleLaw(0)
	require.NoError(t, err)
	_, err = e.AddRound()
	require.NoError(t, err)

	require.NoError(t, e.NewGame(validGame()))

	_, ok, err := s.Get("cards_state")
	require.NoError(t, err)
	assert.False(t, ok, "stored board state is discarded")
	_, ok, err = s.Get("tools_state")
	require.NoError(t, err)
	assert.False(t, ok, "stored ledger state is discarded")

	assert.Equal(t, MarkUnset, e.Board().Laws[0])
	assert.Nil(t, e.Tools().LastRound())
}

func TestEngine_ResumeWithoutGame(t *testing.T) {
	e, _ := newTestEngine(t)
	assert.ErrorIs(t, e.Resume(), ErrNoGame)
}

func TestEngine_ResumeReproducesState(t *testing.T) {
	s := testutil.NewMemStore()
	e := NewEngine(s, zerolog.Nop())

	require.NoError(t, e.NewGame(validGame()))
	_, err := e.ToggleLaw(1)
	require.NoError(t, err)
	_, err = e.ToggleDigit(3)
	require.NoError(t, err)
	_, err = e.AddRound()
	require.NoError(t, err)
	require.NoError(t, e.SetProposalDigit(0, 2))
	require.NoError(t, e.ToggleCard(1))
	require.NoError(t, e.Lock())

	resumed := NewEngine(s, zerolog.Nop())
	require.NoError(t, resumed.Resume())

	assert.Equal(t, e.Game(), resumed.Game())
	assert.Equal(t, e.Board().Laws, resumed.Board().Laws)
	assert.Equal(t, e.Tools().Digits, resumed.Tools().Digits)
	assert.Equal(t, e.Tools().Rounds, resumed.Tools().Rounds)
}

func TestEngine_AddRoundUsesGameCardCount(t *testing.T) {
	e, _ := newTestEngine(t)

	// No game loaded: fall back to six cards
	r, err := e.AddRound()
	require.NoError(t, err)
	assert.Equal(t, 6, r.CardCount)

	require.NoError(t, e.NewGame(validGame()))
	r, err = e.AddRound()
	require.NoError(t, err)
	assert.Equal(t, 4, r.CardCount)
	assert.False(t, r.Locked)
}

func TestEngine_VerifyRequiresGame(t *testing.T) {
	e, _ := newTestEngine(t)
	v := &fakeVerifier{}
	_, err := e.Verify(context.Background(), v, 1)
	assert.ErrorIs(t, err, ErrNoGame)
	assert.Zero(t, v.calls)
}

func TestEngine_VerifyRequiresOpenRoundAndProposal(t *testing.T) {
	e, _ := newTestEngine(t)
	require.NoError(t, e.NewGame(validGame()))
	v := &fakeVerifier{}

	_, err := e.Verify(context.Background(), v, 1)
	var noRound *NoOpenRoundError
	require.ErrorAs(t, err, &noRound)

	_, err = e.AddRound()
	require.NoError(t, err)
	_, err = e.Verify(context.Background(), v, 1)
	var incomplete *IncompleteProposalError
	require.ErrorAs(t, err, &incomplete)

	assert.Zero(t, v.calls, "no network call before the preconditions hold")
}

func TestEngine_VerifyWorkflow(t *testing.T) {
	e, _ := newTestEngine(t)
	require.NoError(t, e.NewGame(validGame()))
	_, err := e.AddRound()
	require.NoError(t, err)
	for pos, d := range []int{1, 2, 3} {
		require.NoError(t, e.SetProposalDigit(pos, d))
	}

	v := &fakeVerifier{result: true}
	ok, err := e.Verify(context.Background(), v, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, 1, v.calls)
	assert.Equal(t, 7, v.law, "card 2 maps to its dealt law")
	assert.Equal(t, "123", v.proposal)

	r := e.Tools().LastRound()
	assert.True(t, r.Locked, "issuing a verification locks the proposal")
	require.NotNil(t, r.Cards[1].Verified)
	assert.True(t, *r.Cards[1].Verified)
}

func TestEngine_VerifyQuotaGate(t *testing.T) {
	e, _ := newTestEngine(t)
	require.NoError(t, e.NewGame(validGame()))
	_, err := e.AddRound()
	require.NoError(t, err)
	for pos, d := range []int{1, 2, 3} {
		require.NoError(t, e.SetProposalDigit(pos, d))
	}

	v := &fakeVerifier{result: true}
	for _, card := range []int{1, 2, 3} {
		_, err := e.Verify(context.Background(), v, card)
		require.NoError(t, err)
	}
	require.Equal(t, 3, v.calls)

	// Fourth question: rejected before the network call, no mutation
	_, err = e.Verify(context.Background(), v, 4)
	require.True(t, IsQuotaExceeded(err))
	assert.Equal(t, 3, v.calls)
	assert.Nil(t, e.Tools().LastRound().Cards[3].Verified)
}

func TestEngine_VerifyServiceFailureRecordsNothing(t *testing.T) {
	e, _ := newTestEngine(t)
	require.NoError(t, e.NewGame(validGame()))
	_, err := e.AddRound()
	require.NoError(t, err)
	for pos, d := range []int{1, 2, 3} {
		require.NoError(t, e.SetProposalDigit(pos, d))
	}

	v := &fakeVerifier{err: assert.AnError}
	_, err = e.Verify(context.Background(), v, 1)
	require.Error(t, err)

	r := e.Tools().LastRound()
	assert.Nil(t, r.Cards[0].Verified, "a failed check records no result")
	assert.True(t, r.Locked, "the round still locked before the call went out")
}

func TestEngine_Guess(t *testing.T) {
	e, _ := newTestEngine(t)
	require.NoError(t, e.NewGame(validGame()))

	correct, err := e.Guess("245")
	require.NoError(t, err)
	assert.True(t, correct)

	correct, err = e.Guess("111")
	require.NoError(t, err)
	assert.False(t, correct)

	require.Len(t, e.Tools().Rounds, 2)
	assert.Equal(t, EntrySolution, e.Tools().Rounds[0].Kind)
	assert.True(t, e.Tools().Rounds[0].Solution.Correct)
	assert.False(t, e.Tools().Rounds[1].Solution.Correct)
}

func TestEngine_GuessFallsBackToPrediction(t *testing.T) {
	e, _ := newTestEngine(t)
	require.NoError(t, e.NewGame(validGame()))

	// Board resolves to the secret 245
	e.Tools().Digits[1] = MarkIncluded  // pos 1 -> 2
	e.Tools().Digits[8] = MarkIncluded  // pos 2 -> 4
	e.Tools().Digits[14] = MarkIncluded // pos 3 -> 5

	correct, err := e.Guess("")
	require.NoError(t, err)
	assert.True(t, correct)

	// An unresolved prediction cannot be guessed
	e.Tools().Digits[2] = MarkIncluded // duplicate included in pos 1
	_, err = e.Guess("")
	var incomplete *IncompleteProposalError
	assert.ErrorAs(t, err, &incomplete)
}

func TestEngine_SearchGame(t *testing.T) {
	e, _ := newTestEngine(t)

	_, err := e.SearchGame(context.Background(), &fakeSolver{}, []int{1, 2, 3, 4}, []int{1, 2, 3})
	assert.ErrorIs(t, err, ErrCardMismatch)

	solver := &fakeSolver{game: validGame()}
	_, err = e.SearchGame(context.Background(), solver, []int{1, 2, 3, 4}, []int{5, 6, 7, 8})
	assert.ErrorIs(t, err, ErrNoSolution)

	solver.solutions = []string{"111", "222"}
	_, err = e.SearchGame(context.Background(), solver, []int{1, 2, 3, 4}, []int{5, 6, 7, 8})
	assert.ErrorIs(t, err, ErrManySolutions)

	solver.solutions = []string{"315"}
	g, err := e.SearchGame(context.Background(), solver, []int{1, 2, 3, 4}, []int{5, 6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, "315", g.Code, "the single solution becomes the secret")
	assert.Equal(t, g, e.Game())
}

func TestEngine_CheckpointRoundTrip(t *testing.T) {
	e, _ := newTestEngine(t)

	_, ok, err := e.LoadCheckpoint()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, e.Checkpoint(json.RawMessage(`{"step":3}`)))
	raw, ok, err := e.LoadCheckpoint()
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"step":3}`, string(raw))

	require.NoError(t, e.Checkpoint(nil))
	_, ok, err = e.LoadCheckpoint()
	require.NoError(t, err)
	assert.False(t, ok, "nil checkpoint deletes the stored one")
}
