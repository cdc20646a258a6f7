package game

import (
	"errors"
	"testing"
)

func newSession(t *testing.T, cfg Config, mines []Position) *Session {
	t.Helper()
	b, err := NewBoardWithMines(cfg, mines)
	if err != nil {
		t.Fatalf("NewBoardWithMines() failed: %v", err)
	}
	return NewSessionWithBoard(b)
}

func TestSingleSquareBoardIsInstantWin(t *testing.T) {
	s := newSession(t, Config{Width: 1, Height: 1, Mines: 0}, nil)

	result, err := s.Move(0, 0)
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if !result.Won {
		t.Error("revealing the only square should win")
	}
	if len(result.NewSquares) != 1 {
		t.Fatalf("expected 1 new square, got %d", len(result.NewSquares))
	}
	if result.NewSquares[0].Adjacent != 0 {
		t.Errorf("expected adjacency 0, got %d", result.NewSquares[0].Adjacent)
	}
	if s.Status() != Won {
		t.Errorf("expected status won, got %s", s.Status())
	}
}

func TestNumberedSquareDoesNotCascade(t *testing.T) {
	// 2x1 board, mine at (1,0): revealing (0,0) exposes a single
	// numbered square and wins the game.
	s := newSession(t, Config{Width: 2, Height: 1, Mines: 1}, []Position{{X: 1, Y: 0}})

	result, err := s.Move(0, 0)
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if len(result.NewSquares) != 1 {
		t.Fatalf("expected 1 new square, got %d", len(result.NewSquares))
	}
	if result.NewSquares[0].Adjacent != 1 {
		t.Errorf("expected adjacency 1, got %d", result.NewSquares[0].Adjacent)
	}
	if !result.Won {
		t.Error("revealing the only safe square should win")
	}
}

func TestZeroSquareCascadesToWin(t *testing.T) {
	// 3x3 board with a single mine at (2,2): (0,0) has adjacency 0 and
	// the cascade reveals all 8 safe squares in one move.
	s := newSession(t, Config{Width: 3, Height: 3, Mines: 1}, []Position{{X: 2, Y: 2}})

	result, err := s.Move(0, 0)
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if len(result.NewSquares) != 8 {
		t.Fatalf("expected 8 new squares, got %d", len(result.NewSquares))
	}
	for _, sq := range result.NewSquares {
		if sq.X == 2 && sq.Y == 2 {
			t.Error("cascade must not reveal the mine")
		}
	}
	if !result.Won {
		t.Error("full cascade should win")
	}
	if s.Moves() != 1 {
		t.Errorf("expected 1 move, got %d", s.Moves())
	}
}

func TestFloodFillStopsAtNumberedBorder(t *testing.T) {
	// 5x1 board with a mine at (4,0). Revealing (0,0) should open the
	// zero region (0,0)..(2,0) plus the numbered border (3,0), and
	// leave the mine hidden.
	s := newSession(t, Config{Width: 5, Height: 1, Mines: 1}, []Position{{X: 4, Y: 0}})

	result, err := s.Move(0, 0)
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if len(result.NewSquares) != 4 {
		t.Fatalf("expected 4 new squares, got %d", len(result.NewSquares))
	}
	opened := make(map[Position]int)
	for _, sq := range result.NewSquares {
		opened[sq.Position] = sq.Adjacent
	}
	for x := 0; x <= 2; x++ {
		if n, ok := opened[Position{X: x, Y: 0}]; !ok || n != 0 {
			t.Errorf("expected zero square at (%d,0), got %d (revealed=%v)", x, n, ok)
		}
	}
	if n, ok := opened[Position{X: 3, Y: 0}]; !ok || n != 1 {
		t.Errorf("expected border square (3,0) with count 1, got %d (revealed=%v)", n, ok)
	}
	if s.Board().Revealed(Position{X: 4, Y: 0}) {
		t.Error("mine square must stay hidden")
	}
	if !result.Won {
		t.Error("all safe squares revealed should win")
	}
}

func TestMineHitLosesWithoutCascade(t *testing.T) {
	s := newSession(t, Config{Width: 3, Height: 3, Mines: 1}, []Position{{X: 1, Y: 1}})

	result, err := s.Move(1, 1)
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if !result.Mine || !result.Lost {
		t.Error("hitting a mine should set Mine and Lost")
	}
	if len(result.NewSquares) != 1 {
		t.Errorf("losing move must not cascade, got %d squares", len(result.NewSquares))
	}
	if s.Status() != Lost {
		t.Errorf("expected status lost, got %s", s.Status())
	}
}

func TestRepeatedMoveIsNoOp(t *testing.T) {
	s := newSession(t, Config{Width: 3, Height: 3, Mines: 1}, []Position{{X: 2, Y: 2}})

	// (1,1) borders the mine: reveals exactly one numbered square.
	if _, err := s.Move(1, 1); err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	movesBefore := s.Moves()
	statusBefore := s.Status()

	result, err := s.Move(1, 1)
	if err != nil {
		t.Fatalf("repeated Move() should not error: %v", err)
	}
	if len(result.NewSquares) != 0 {
		t.Errorf("repeated move should reveal nothing, got %d squares", len(result.NewSquares))
	}
	if s.Moves() != movesBefore {
		t.Errorf("repeated move must not increment move count: %d -> %d", movesBefore, s.Moves())
	}
	if s.Status() != statusBefore {
		t.Errorf("repeated move must not change status: %s -> %s", statusBefore, s.Status())
	}
}

func TestMoveOutOfBounds(t *testing.T) {
	s := newSession(t, Config{Width: 2, Height: 2, Mines: 1}, []Position{{X: 1, Y: 1}})

	_, err := s.Move(5, 0)
	var invalid *InvalidMoveError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidMoveError, got %v", err)
	}
	if invalid.Pos.X != 5 || invalid.Pos.Y != 0 {
		t.Errorf("error should carry the coordinate, got (%d,%d)", invalid.Pos.X, invalid.Pos.Y)
	}
	if s.Moves() != 0 {
		t.Errorf("invalid move must not count, got %d moves", s.Moves())
	}
}

func TestMoveAfterGameOver(t *testing.T) {
	s := newSession(t, Config{Width: 2, Height: 1, Mines: 1}, []Position{{X: 1, Y: 0}})

	// Lose on purpose.
	if _, err := s.Move(1, 0); err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if s.Status() != Lost {
		t.Fatalf("expected lost, got %s", s.Status())
	}

	_, err := s.Move(0, 0)
	var over *GameOverError
	if !errors.As(err, &over) {
		t.Fatalf("expected GameOverError, got %v", err)
	}
	if over.Status != Lost {
		t.Errorf("error should carry terminal status, got %s", over.Status)
	}
}

func TestWinOnLastSafeSquare(t *testing.T) {
	// 2x2 board, mine at (1,1): every safe square is numbered, so each
	// move reveals exactly one square.
	s := newSession(t, Config{Width: 2, Height: 2, Mines: 1}, []Position{{X: 1, Y: 1}})

	moves := []Position{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0},
	}
	for i, p := range moves {
		result, err := s.Move(p.X, p.Y)
		if err != nil {
			t.Fatalf("Move(%d,%d) failed: %v", p.X, p.Y, err)
		}
		last := i == len(moves)-1
		if result.Won != last {
			t.Errorf("move %d: Won=%v, want %v", i, result.Won, last)
		}
	}
	if s.Status() != Won {
		t.Errorf("expected won, got %s", s.Status())
	}
	if s.Moves() != len(moves) {
		t.Errorf("expected %d moves, got %d", len(moves), s.Moves())
	}
}

func TestLargeBoardCascade(t *testing.T) {
	// A mine-free 250x250 board must flood in a single move without
	// exhausting memory or the stack.
	cfg := Config{Width: 250, Height: 250, Mines: 0}
	s := newSession(t, cfg, nil)

	result, err := s.Move(125, 125)
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if len(result.NewSquares) != cfg.Squares() {
		t.Errorf("expected %d squares, got %d", cfg.Squares(), len(result.NewSquares))
	}
	if !result.Won {
		t.Error("clearing the whole board should win")
	}
}
