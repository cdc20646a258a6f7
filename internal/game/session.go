package game

import "math/rand"

// Status is the state of a single game.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// Session is one game: a board plus the terminal-state machine and a
// move counter. A session is created per game, driven move by move,
// and discarded once its outcome is recorded.
type Session struct {
	board  *Board
	status Status
	moves  int
}

// NewSession starts a game on a freshly generated board.
func NewSession(cfg Config, rng *rand.Rand) (*Session, error) {
	board, err := NewBoard(cfg, rng)
	if err != nil {
		return nil, err
	}
	return &Session{board: board}, nil
}

// NewSessionWithBoard starts a game on an existing board. Used by
// tests and replays that need a fixed mine layout.
func NewSessionWithBoard(board *Board) *Session {
	return &Session{board: board}
}

// Move resolves the square at (x, y) and advances the state machine.
// A move on an already-revealed square is a no-op: empty result, no
// state change, move counter untouched. A move after the game ended
// returns a GameOverError.
func (s *Session) Move(x, y int) (MoveResult, error) {
	if s.status.Terminal() {
		return MoveResult{}, &GameOverError{Status: s.status, Moves: s.moves}
	}
	result, err := resolve(s.board, Position{X: x, Y: y})
	if err != nil {
		return MoveResult{}, err
	}
	if len(result.NewSquares) == 0 {
		return result, nil
	}
	s.moves++
	switch {
	case result.Lost:
		s.status = Lost
	case result.Won:
		s.status = Won
	}
	return result, nil
}

// Status returns the current state of the game.
func (s *Session) Status() Status {
	return s.status
}

// Moves returns the number of effective moves made so far.
func (s *Session) Moves() int {
	return s.moves
}

// Board exposes the underlying board for read access by observers.
func (s *Session) Board() *Board {
	return s.board
}

// SetFlags forwards display flags from the bot to the board.
func (s *Session) SetFlags(flags []Position) {
	s.board.SetFlags(flags)
}
