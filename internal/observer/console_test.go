package observer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/minebench/internal/game"
	"github.com/vovakirdan/minebench/internal/harness"
)

func TestConsoleAccumulatesView(t *testing.T) {
	var out strings.Builder
	c := NewConsole(&out, PaceNone, 0, nil)

	cfg := game.Config{Width: 2, Height: 1, Mines: 1}
	c.StartGame(0, cfg)
	c.Update(game.MoveResult{
		NewSquares: []game.Square{{Position: game.Position{X: 0, Y: 0}, Adjacent: 1}},
		Won:        true,
	}, nil)
	c.EndGame(harness.GameResult{Game: 0, Won: true, Moves: 1})

	s := out.String()
	if !strings.Contains(s, "game 1 (2x1, 1 mines)") {
		t.Errorf("missing game header in output:\n%s", s)
	}
	if !strings.Contains(s, "move 1: 1 new squares") {
		t.Errorf("missing move line in output:\n%s", s)
	}
	if !strings.Contains(s, "game 1 won in 1 moves") {
		t.Errorf("missing outcome line in output:\n%s", s)
	}
}

func TestConsoleCellStates(t *testing.T) {
	c := NewConsole(&strings.Builder{}, PaceNone, 0, nil)
	cfg := game.Config{Width: 3, Height: 1, Mines: 1}
	c.StartGame(0, cfg)

	c.Update(game.MoveResult{
		NewSquares: []game.Square{{Position: game.Position{X: 1, Y: 0}, Adjacent: 2}},
	}, []game.Position{{X: 2, Y: 0}})

	if got := c.cell(game.Position{X: 0, Y: 0}); !strings.Contains(got, ".") {
		t.Errorf("hidden cell = %q, want dot", got)
	}
	if got := c.cell(game.Position{X: 1, Y: 0}); !strings.Contains(got, "2") {
		t.Errorf("revealed cell = %q, want count", got)
	}
	if got := c.cell(game.Position{X: 2, Y: 0}); !strings.Contains(got, "F") {
		t.Errorf("flagged cell = %q, want flag", got)
	}

	// Losing move marks the exploded square.
	c.Update(game.MoveResult{
		NewSquares: []game.Square{{Position: game.Position{X: 2, Y: 0}, Adjacent: 0}},
		Mine:       true,
		Lost:       true,
	}, nil)
	if got := c.cell(game.Position{X: 2, Y: 0}); !strings.Contains(got, "*") {
		t.Errorf("exploded cell = %q, want mine marker", got)
	}
}

func TestMultiFansOut(t *testing.T) {
	var a, b strings.Builder
	m := Multi{
		NewConsole(&a, PaceNone, 0, nil),
		NewConsole(&b, PaceNone, 0, nil),
	}

	cfg := game.Config{Width: 1, Height: 1, Mines: 0}
	m.StartGame(0, cfg)
	m.Update(game.MoveResult{
		NewSquares: []game.Square{{Position: game.Position{X: 0, Y: 0}}},
		Won:        true,
	}, nil)
	m.EndGame(harness.GameResult{Game: 0, Won: true, Moves: 1})

	if a.String() != b.String() {
		t.Error("both observers should receive identical callbacks")
	}
	if a.Len() == 0 {
		t.Error("observer output should not be empty")
	}
}
