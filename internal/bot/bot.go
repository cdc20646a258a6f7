// Package bot defines the player contract and a registry of built-in
// bots. Bots register themselves in init() functions, allowing the
// CLI to discover and instantiate them without hardcoded dependencies.
package bot

import "github.com/vovakirdan/minebench/internal/game"

// Bot is the decision-making contract driven by the harness. Anything
// exposing this three-method shape qualifies; there is no base type to
// inherit from.
//
// For each game the harness calls Reset once, then alternates Next and
// Update until the game ends. Next must return an in-bounds,
// unrevealed position; the harness policy decides what happens when it
// does not.
type Bot interface {
	// Reset prepares the bot for a new game on the given board.
	Reset(cfg game.Config)

	// Next returns the position the bot wants to reveal.
	Next() game.Position

	// Update informs the bot of the outcome of its last move,
	// including every square the move revealed.
	Update(result game.MoveResult)
}

// Flagger is an optional capability: bots that track suspected mines
// expose them for display. Flags never affect game logic.
type Flagger interface {
	Flags() []game.Position
}
