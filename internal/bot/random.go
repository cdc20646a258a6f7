package bot

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/minebench/internal/game"
)

func init() {
	Register("random", "picks a uniformly random unrevealed square", func(seed int64) Bot {
		return NewRandom(seed)
	})
}

// Random picks a uniformly random unrevealed square each turn. It is
// the baseline bot: no deduction, pure chance.
type Random struct {
	rng      *rand.Rand
	cfg      game.Config
	revealed map[game.Position]bool
}

// NewRandom creates a random bot. A seed of 0 uses the current time.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		rng:      rand.New(rand.NewSource(seed)),
		revealed: make(map[game.Position]bool),
	}
}

// Reset clears the revealed-square memory for a new game.
func (b *Random) Reset(cfg game.Config) {
	b.cfg = cfg
	b.revealed = make(map[game.Position]bool)
}

// Next rejection-samples until it finds an unrevealed square. The
// harness guarantees at least one exists while the game is running.
func (b *Random) Next() game.Position {
	for {
		p := game.Position{
			X: b.rng.Intn(b.cfg.Width),
			Y: b.rng.Intn(b.cfg.Height),
		}
		if !b.revealed[p] {
			return p
		}
	}
}

// Update records every square the move revealed.
func (b *Random) Update(result game.MoveResult) {
	for _, sq := range result.NewSquares {
		b.revealed[sq.Position] = true
	}
}
