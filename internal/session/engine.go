package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// Verifier runs one verification check against the game service.
type Verifier interface {
	Verify(ctx context.Context, law int, proposal string) (bool, error)
}

// Solver searches for the game matching a set of dealt cards.
// Returns the reconstructed game record plus every candidate code.
type Solver interface {
	Solve(ctx context.Context, criterias, verifiers []int) (*Game, []string, error)
}

// Engine owns the state of the active session: the game record, the
// card board, and the round ledger. Every mutating operation persists
// before returning, so a session can be resumed after any step.
//
// Not safe for concurrent use; the engine expects the single-caller,
// event-driven discipline of its surface.
type Engine struct {
	store Store
	log   zerolog.Logger

	game  *Game
	board *Board
	tools *Tools
}

// NewEngine creates an engine with no game loaded.
func NewEngine(s Store, log zerolog.Logger) *Engine {
	return &Engine{
		store: s,
		log:   log,
		board: &Board{},
		tools: NewTools(),
	}
}

// Game returns the loaded game, or nil.
func (e *Engine) Game() *Game { return e.game }

// Board returns the card board state.
func (e *Engine) Board() *Board { return e.board }

// Tools returns the digit board and round ledger.
func (e *Engine) Tools() *Tools { return e.tools }

// StartGame makes g the active game: persists it and rebuilds the
// board and ledger in memory. Stored board/ledger state is left
// alone, which is what the resume path needs.
func (e *Engine) StartGame(g *Game) error {
	if !g.Valid() {
		return fmt.Errorf("start game: invalid game record")
	}
	if err := SaveGame(e.store, g); err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	e.game = g
	e.board = NewBoard(g.Criterias)
	e.tools = NewTools()
	e.log.Debug().Str("id", g.ID).Int("cards", len(g.Criterias)).Msg("game started")
	return nil
}

// NewGame starts g fresh, discarding any stored board and ledger
// state from a previous session.
func (e *Engine) NewGame(g *Game) error {
	if err := e.StartGame(g); err != nil {
		return err
	}
	if err := ClearStoredBoard(e.store); err != nil {
		return err
	}
	return ClearStoredTools(e.store)
}

// Resume reloads the stored game and restores the board and ledger.
// Returns ErrNoGame when nothing is stored.
func (e *Engine) Resume() error {
	g, err := LoadGame(e.store)
	if err != nil {
		return fmt.Errorf("resume: %w", err)
	}
	if g == nil {
		return ErrNoGame
	}
	e.game = g
	e.board = NewBoard(g.Criterias)
	if err := e.board.Restore(e.store); err != nil {
		return fmt.Errorf("resume board: %w", err)
	}
	e.tools = NewTools()
	if err := e.tools.Restore(e.store); err != nil {
		return fmt.Errorf("resume ledger: %w", err)
	}
	e.log.Debug().Str("id", g.ID).Msg("session resumed")
	return nil
}

// LawFor returns the law for a dealt card (1-based position).
func (e *Engine) LawFor(card int) (int, bool) {
	return e.game.LawFor(card)
}

// ToggleLaw advances a board row through the mark cycle and persists.
func (e *Engine) ToggleLaw(row int) (Mark, error) {
	m := e.board.Toggle(row)
	return m, e.board.Save(e.store)
}

// ResetLaw clears a board row and persists.
func (e *Engine) ResetLaw(row int) error {
	e.board.Reset(row)
	return e.board.Save(e.store)
}

// ToggleDigit advances a digit cell through the mark cycle and
// persists.
func (e *Engine) ToggleDigit(cell int) (Mark, error) {
	m := e.tools.ToggleDigit(cell)
	return m, e.tools.Save(e.store)
}

// ResetDigits clears the digit board and persists.
func (e *Engine) ResetDigits() error {
	e.tools.ResetDigits()
	return e.tools.Save(e.store)
}

// AddRound appends a new round sized to the loaded game's card
// count, falling back to six cards when no game is loaded.
func (e *Engine) AddRound() (*Round, error) {
	count := fallbackCardCount
	if e.game.Valid() {
		count = len(e.game.Criterias)
	}
	r := e.tools.AddRound(count)
	return r, e.tools.Save(e.store)
}

// SetProposalDigit edits the last round's proposal and persists.
func (e *Engine) SetProposalDigit(pos, digit int) error {
	if err := e.tools.SetProposalDigit(pos, digit); err != nil {
		return err
	}
	return e.tools.Save(e.store)
}

// ToggleCard advances the manual mark on the last round's card slot
// and persists. card is 1-based.
func (e *Engine) ToggleCard(card int) error {
	if err := e.tools.ToggleCard(card); err != nil {
		return err
	}
	return e.tools.Save(e.store)
}

// Lock freezes the last round's proposal and persists. Idempotent.
func (e *Engine) Lock() error {
	e.tools.Lock()
	return e.tools.Save(e.store)
}

// Verify runs the full verification workflow for one card:
//
//   - a game must be loaded and the round's proposal complete;
//   - the round's question quota must not be spent;
//   - the round is locked before the check is issued;
//   - the verifier's answer is recorded on the card slot.
//
// The quota gate runs before any mutation or network call: a denied
// verification leaves the ledger untouched.
func (e *Engine) Verify(ctx context.Context, v Verifier, card int) (bool, error) {
	if !e.game.Valid() {
		return false, ErrNoGame
	}
	proposal, err := e.tools.Proposal()
	if err != nil {
		return false, err
	}
	if n := e.tools.QuestionCount(e.tools.LastRound()); n >= MaxQuestions {
		return false, &QuotaExceededError{Count: n, Limit: MaxQuestions}
	}
	law, ok := e.game.LawFor(card)
	if !ok {
		return false, fmt.Errorf("no law for card %d", card)
	}
	e.tools.Lock()
	if err := e.tools.Save(e.store); err != nil {
		return false, err
	}
	result, err := v.Verify(ctx, law, proposal)
	if err != nil {
		return false, fmt.Errorf("verify card %d: %w", card, err)
	}
	if err := e.tools.RecordVerification(card, result); err != nil {
		return false, err
	}
	e.log.Debug().Int("card", card).Bool("check", result).Msg("verification recorded")
	return result, e.tools.Save(e.store)
}

// Guess scores a final code against the loaded game's secret and
// appends the attempt to the ledger. An empty code falls back to the
// predicted one.
func (e *Engine) Guess(code string) (bool, error) {
	if !e.game.Valid() {
		return false, ErrNoGame
	}
	if code == "" {
		code = e.tools.PredictCode()
	}
	if len(code) != digitPositions {
		return false, &IncompleteProposalError{}
	}
	correct := code == e.game.Code
	e.tools.AppendSolution(code, correct)
	e.log.Debug().Str("code", code).Bool("correct", correct).Msg("solution attempt")
	return correct, e.tools.Save(e.store)
}

// SearchGame reconstructs a game from a set of criteria and verifier
// cards via the solver. Exactly one candidate solution is required:
// zero and multiple solutions are distinct failures. On success the
// game starts fresh.
func (e *Engine) SearchGame(ctx context.Context, s Solver, criterias, verifiers []int) (*Game, error) {
	if len(criterias) != len(verifiers) {
		return nil, ErrCardMismatch
	}
	g, solutions, err := s.Solve(ctx, criterias, verifiers)
	if err != nil {
		return nil, err
	}
	switch len(solutions) {
	case 0:
		return nil, ErrNoSolution
	case 1:
		// keep going
	default:
		return nil, ErrManySolutions
	}
	g.Code = solutions[0]
	if err := e.NewGame(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Checkpoint stores an opaque caller-defined blob.
func (e *Engine) Checkpoint(raw json.RawMessage) error {
	if raw == nil {
		return e.store.Delete(keyCheckpoint)
	}
	return e.store.Set(keyCheckpoint, string(raw))
}

// LoadCheckpoint returns the stored checkpoint blob, if any.
func (e *Engine) LoadCheckpoint() (json.RawMessage, bool, error) {
	raw, ok, err := e.store.Get(keyCheckpoint)
	if err != nil || !ok {
		return nil, false, err
	}
	return json.RawMessage(raw), true, nil
}
