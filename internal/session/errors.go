package session

import (
	"errors"
	"fmt"
)

var (
	// ErrNoGame is returned by operations that require a loaded game.
	ErrNoGame = errors.New("no game loaded")

	// ErrRoundLocked is returned when editing the proposal of a
	// locked round. Locking freezes the proposal only; verification
	// bookkeeping stays open.
	ErrRoundLocked = errors.New("round is locked")

	// ErrNoSolution and ErrManySolutions are the two distinct
	// failure conditions of the solve-by-cards flow.
	ErrNoSolution    = errors.New("this game has no solution")
	ErrManySolutions = errors.New("this game has more than one possible solution")

	// ErrCardMismatch is returned when criterias and verifiers do
	// not pair up one-to-one.
	ErrCardMismatch = errors.New("there should be a verifier for each criteria")
)

// NoOpenRoundError signals an operation that needs an active round
// when none exists. The message carries the player guidance.
type NoOpenRoundError struct{}

func (e *NoOpenRoundError) Error() string {
	return "no active round: start a round first"
}

// IncompleteProposalError signals a proposal read while one or more
// digit positions are still unresolved.
type IncompleteProposalError struct{}

func (e *IncompleteProposalError) Error() string {
	return "compose your 3-digit proposal for this round"
}

// QuotaExceededError signals an attempted verification beyond the
// per-round question quota. The gate runs before any network call or
// state mutation.
type QuotaExceededError struct {
	Count int // questions already spent in the round
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("you can ask at most %d questions per round (%d already asked)", e.Limit, e.Count)
}

// IsQuotaExceeded reports whether err is a quota violation.
// Uses errors.As to handle wrapped errors.
func IsQuotaExceeded(err error) bool {
	var qe *QuotaExceededError
	return errors.As(err, &qe)
}
