// Package session implements the client-side state engine for a game:
// the active game record, the tri-state card board, the round and
// verification ledger, and the digit predictor that infers the
// player's working guess from partial annotations.
//
// The package is transport- and rendering-agnostic. All durable state
// goes through the Store interface; network checks go through the
// Verifier and Solver interfaces. Nothing here is safe for concurrent
// use: the engine expects one caller at a time, matching the
// event-driven surface that drives it.
package session
