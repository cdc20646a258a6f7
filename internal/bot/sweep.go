package bot

import "github.com/vovakirdan/minebench/internal/game"

func init() {
	Register("sweep", "reveals squares in row-major order", func(int64) Bot {
		return NewSweep()
	})
}

// Sweep reveals squares deterministically in row-major order, skipping
// anything already revealed. Useful as a reproducible baseline and for
// exercising the harness.
type Sweep struct {
	cfg      game.Config
	revealed map[game.Position]bool
	cursor   int
}

// NewSweep creates a sweep bot.
func NewSweep() *Sweep {
	return &Sweep{revealed: make(map[game.Position]bool)}
}

func (b *Sweep) Reset(cfg game.Config) {
	b.cfg = cfg
	b.revealed = make(map[game.Position]bool)
	b.cursor = 0
}

func (b *Sweep) Next() game.Position {
	for ; b.cursor < b.cfg.Squares(); b.cursor++ {
		p := game.Position{X: b.cursor % b.cfg.Width, Y: b.cursor / b.cfg.Width}
		if !b.revealed[p] {
			return p
		}
	}
	// Every square seen: repeat the last one and let the harness's
	// stall guard end the game.
	return game.Position{X: b.cfg.Width - 1, Y: b.cfg.Height - 1}
}

func (b *Sweep) Update(result game.MoveResult) {
	for _, sq := range result.NewSquares {
		b.revealed[sq.Position] = true
	}
}
