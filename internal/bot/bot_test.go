package bot

import (
	"testing"

	"github.com/vovakirdan/minebench/internal/game"
)

func TestRegistryListsBuiltins(t *testing.T) {
	for _, id := range []string{"counter", "random", "sweep"} {
		if !Exists(id) {
			t.Errorf("built-in bot %q not registered", id)
		}
	}

	infos := List()
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("List() not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}

	if _, err := Create("no-such-bot", 0); err == nil {
		t.Error("Create() should fail for unknown bots")
	}
}

func TestRandomAvoidsRevealedSquares(t *testing.T) {
	cfg := game.Config{Width: 3, Height: 3, Mines: 1}
	b := NewRandom(1)
	b.Reset(cfg)

	// Tell the bot that everything except (2,2) is revealed.
	var squares []game.Square
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 2 && y == 2 {
				continue
			}
			squares = append(squares, game.Square{Position: game.Position{X: x, Y: y}})
		}
	}
	b.Update(game.MoveResult{NewSquares: squares})

	for i := 0; i < 20; i++ {
		p := b.Next()
		if p.X != 2 || p.Y != 2 {
			t.Fatalf("Next() returned revealed square (%d,%d)", p.X, p.Y)
		}
	}
}

func TestRandomDeterministicWithSeed(t *testing.T) {
	cfg := game.Config{Width: 8, Height: 8, Mines: 10}

	b1 := NewRandom(99)
	b1.Reset(cfg)
	b2 := NewRandom(99)
	b2.Reset(cfg)

	for i := 0; i < 10; i++ {
		if b1.Next() != b2.Next() {
			t.Fatal("same seed produced different move sequences")
		}
	}
}

func TestSweepOrder(t *testing.T) {
	cfg := game.Config{Width: 2, Height: 2, Mines: 0}
	b := NewSweep()
	b.Reset(cfg)

	want := []game.Position{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}
	for _, w := range want {
		p := b.Next()
		if p != w {
			t.Fatalf("Next() = (%d,%d), want (%d,%d)", p.X, p.Y, w.X, w.Y)
		}
		b.Update(game.MoveResult{NewSquares: []game.Square{{Position: p}}})
	}
}

func TestSweepSkipsCascadedSquares(t *testing.T) {
	cfg := game.Config{Width: 2, Height: 2, Mines: 0}
	b := NewSweep()
	b.Reset(cfg)

	// First move cascades over the whole left column.
	if p := b.Next(); p != (game.Position{X: 0, Y: 0}) {
		t.Fatalf("unexpected first move (%d,%d)", p.X, p.Y)
	}
	b.Update(game.MoveResult{NewSquares: []game.Square{
		{Position: game.Position{X: 0, Y: 0}},
		{Position: game.Position{X: 0, Y: 1}},
	}})

	if p := b.Next(); p != (game.Position{X: 1, Y: 0}) {
		t.Fatalf("sweep should skip revealed squares, got (%d,%d)", p.X, p.Y)
	}
}

func TestCounterFlagsForcedMine(t *testing.T) {
	// 2x1 board: (0,0) revealed with count 1 leaves (1,0) as the only
	// hidden neighbor, which must be the mine.
	cfg := game.Config{Width: 2, Height: 1, Mines: 1}
	b := NewCounter(1)
	b.Reset(cfg)

	b.Update(game.MoveResult{NewSquares: []game.Square{
		{Position: game.Position{X: 0, Y: 0}, Adjacent: 1},
	}})
	b.deduce()

	flags := b.Flags()
	if len(flags) != 1 || flags[0] != (game.Position{X: 1, Y: 0}) {
		t.Fatalf("expected flag at (1,0), got %v", flags)
	}
}

func TestCounterOpensSatisfiedNeighbors(t *testing.T) {
	// 4x1 board, mine at (1,0). With (0,0)=1 and (2,0)=1 revealed the
	// two rules chain: (0,0) forces the flag on (1,0), which satisfies
	// (2,0) and makes (3,0) provably safe.
	cfg := game.Config{Width: 4, Height: 1, Mines: 1}
	b := NewCounter(1)
	b.Reset(cfg)

	b.Update(game.MoveResult{NewSquares: []game.Square{
		{Position: game.Position{X: 0, Y: 0}, Adjacent: 1},
		{Position: game.Position{X: 2, Y: 0}, Adjacent: 1},
	}})

	p := b.Next()
	if p != (game.Position{X: 3, Y: 0}) {
		t.Fatalf("expected deduced safe square (3,0), got (%d,%d)", p.X, p.Y)
	}
	flags := b.Flags()
	if len(flags) != 1 || flags[0] != (game.Position{X: 1, Y: 0}) {
		t.Fatalf("expected flag at (1,0), got %v", flags)
	}
}

func TestCounterGuessAvoidsFlags(t *testing.T) {
	// 3x1 board, mine at (1,0): after (0,0)=1 the flag on (1,0) is
	// forced and the only reasonable guess left is (2,0).
	cfg := game.Config{Width: 3, Height: 1, Mines: 1}
	b := NewCounter(1)
	b.Reset(cfg)

	b.Update(game.MoveResult{NewSquares: []game.Square{
		{Position: game.Position{X: 0, Y: 0}, Adjacent: 1},
	}})

	if p := b.Next(); p != (game.Position{X: 2, Y: 0}) {
		t.Fatalf("guess should avoid flagged squares, got (%d,%d)", p.X, p.Y)
	}
}

func TestCounterWinsTrivialBoard(t *testing.T) {
	// Play a real game: 3x3 with a mine at (2,2), first guess at any
	// zero square cascades and the solver should finish without ever
	// opening the mine when its deductions are sound. With seed 1 the
	// first guess is deterministic; play until terminal.
	cfg := game.Config{Width: 3, Height: 3, Mines: 1}
	board, err := game.NewBoardWithMines(cfg, []game.Position{{X: 2, Y: 2}})
	if err != nil {
		t.Fatalf("NewBoardWithMines() failed: %v", err)
	}
	session := game.NewSessionWithBoard(board)

	b := NewCounter(1)
	b.Reset(cfg)

	for moves := 0; session.Status() == game.Playing && moves < 20; moves++ {
		p := b.Next()
		result, err := session.Move(p.X, p.Y)
		if err != nil {
			t.Fatalf("Move(%d,%d) failed: %v", p.X, p.Y, err)
		}
		b.Update(result)
	}

	// A single guess decides this board: either the mine (lost) or any
	// safe square (cascade, won). Both are terminal.
	if session.Status() == game.Playing {
		t.Error("game should have reached a terminal state")
	}
}
