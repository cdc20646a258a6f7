package bot

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/minebench/internal/game"
)

func init() {
	Register("counter", "single-point solver: flags satisfied counts, guesses otherwise", func(seed int64) Bot {
		return NewCounter(seed)
	})
}

// Counter is a single-point solver. It looks at each revealed number
// in isolation: when a number is fully accounted for by hidden
// neighbors it flags them as mines, and when it is fully accounted for
// by flags the remaining hidden neighbors are safe to open. When no
// deduction applies it guesses a random unflagged hidden square.
//
// Single-point solving wins most beginner boards but cannot resolve
// patterns that need multi-square constraint reasoning.
type Counter struct {
	rng    *rand.Rand
	cfg    game.Config
	counts map[game.Position]int
	flags  map[game.Position]bool
	safe   []game.Position
}

// NewCounter creates a counter bot. A seed of 0 uses the current time.
func NewCounter(seed int64) *Counter {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Counter{rng: rand.New(rand.NewSource(seed))}
}

func (b *Counter) Reset(cfg game.Config) {
	b.cfg = cfg
	b.counts = make(map[game.Position]int)
	b.flags = make(map[game.Position]bool)
	b.safe = nil
}

func (b *Counter) Next() game.Position {
	b.deduce()
	for len(b.safe) > 0 {
		p := b.safe[0]
		b.safe = b.safe[1:]
		if _, revealed := b.counts[p]; !revealed {
			return p
		}
	}
	return b.guess()
}

func (b *Counter) Update(result game.MoveResult) {
	for _, sq := range result.NewSquares {
		b.counts[sq.Position] = sq.Adjacent
		delete(b.flags, sq.Position)
	}
}

// Flags reports the suspected mine positions for display.
func (b *Counter) Flags() []game.Position {
	flags := make([]game.Position, 0, len(b.flags))
	for p := range b.flags {
		flags = append(flags, p)
	}
	return flags
}

// deduce runs the two single-point rules to a fixpoint.
func (b *Counter) deduce() {
	for changed := true; changed; {
		changed = false
		for p, count := range b.counts {
			if count == 0 {
				continue
			}
			var hidden []game.Position
			flagged := 0
			for _, q := range b.neighbors(p) {
				if _, revealed := b.counts[q]; revealed {
					continue
				}
				if b.flags[q] {
					flagged++
				} else {
					hidden = append(hidden, q)
				}
			}
			if len(hidden) == 0 {
				continue
			}
			switch {
			case count-flagged == len(hidden):
				// Every hidden neighbor must be a mine.
				for _, q := range hidden {
					b.flags[q] = true
				}
				changed = true
			case count == flagged:
				// The count is satisfied: the rest are safe.
				b.safe = append(b.safe, hidden...)
			}
		}
	}
}

// guess picks a random hidden, unflagged square. Falls back to any
// hidden square if everything left is flagged.
func (b *Counter) guess() game.Position {
	var hidden, unflagged []game.Position
	for y := 0; y < b.cfg.Height; y++ {
		for x := 0; x < b.cfg.Width; x++ {
			p := game.Position{X: x, Y: y}
			if _, revealed := b.counts[p]; revealed {
				continue
			}
			hidden = append(hidden, p)
			if !b.flags[p] {
				unflagged = append(unflagged, p)
			}
		}
	}
	if len(unflagged) > 0 {
		return unflagged[b.rng.Intn(len(unflagged))]
	}
	if len(hidden) > 0 {
		return hidden[b.rng.Intn(len(hidden))]
	}
	// Nothing hidden: the game is over and Next should not have been
	// called. Return the origin and let the harness deal with it.
	return game.Position{}
}

func (b *Counter) neighbors(p game.Position) []game.Position {
	neighbors := make([]game.Position, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			q := game.Position{X: p.X + dx, Y: p.Y + dy}
			if q.X >= 0 && q.X < b.cfg.Width && q.Y >= 0 && q.Y < b.cfg.Height {
				neighbors = append(neighbors, q)
			}
		}
	}
	return neighbors
}
