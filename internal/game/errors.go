package game

import "fmt"

// ConfigError reports an invalid board configuration. It is fatal to
// the run that produced it: there is nothing to recover.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %d %s", e.Field, e.Value, e.Reason)
}

// InvalidMoveError reports a move outside the board. It is fatal to
// the game it occurred in, not to the process; the harness decides
// whether the run continues.
type InvalidMoveError struct {
	Pos    Position
	Reason string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move at (%d,%d): %s", e.Pos.X, e.Pos.Y, e.Reason)
}

// GameOverError reports a move requested after the game reached a
// terminal state. This indicates a bug in the caller and must not be
// silently ignored.
type GameOverError struct {
	Status Status
	Moves  int
}

func (e *GameOverError) Error() string {
	return fmt.Sprintf("game already over (%s after %d moves)", e.Status, e.Moves)
}
