package game

import "math/rand"

// Position is a 0-based board coordinate. It is a value type and safe
// to use as a map key.
type Position struct {
	X, Y int
}

// Square is a revealed square as reported to bots and observers: its
// position plus the number of mines among its neighbors.
type Square struct {
	Position
	Adjacent int
}

// Board holds the mine layout, the reveal/flag state and the
// precomputed adjacency counts for one game. The mine layout is fixed
// at creation and never changes. Cells are stored in flat slices
// indexed y*width+x.
type Board struct {
	cfg      Config
	mines    []bool
	revealed []bool
	flagged  []bool
	adjacent []uint8
	opened   int // revealed square count
}

// NewBoard creates a board with cfg.Mines mines placed uniformly at
// random without replacement. The random source is injected so runs
// are reproducible from a seed. Construction is O(width*height).
func NewBoard(cfg Config, rng *rand.Rand) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mines := make([]Position, 0, cfg.Mines)
	for _, i := range rng.Perm(cfg.Squares())[:cfg.Mines] {
		mines = append(mines, Position{X: i % cfg.Width, Y: i / cfg.Width})
	}
	return NewBoardWithMines(cfg, mines)
}

// NewBoardWithMines creates a board with a fixed mine layout. The
// layout must contain exactly cfg.Mines distinct in-bounds positions.
// Used by tests and replays.
func NewBoardWithMines(cfg Config, mines []Position) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(mines) != cfg.Mines {
		return nil, &ConfigError{Field: "mines", Value: len(mines), Reason: "layout size does not match mine count"}
	}
	b := &Board{
		cfg:      cfg,
		mines:    make([]bool, cfg.Squares()),
		revealed: make([]bool, cfg.Squares()),
		flagged:  make([]bool, cfg.Squares()),
		adjacent: make([]uint8, cfg.Squares()),
	}
	for _, p := range mines {
		if !b.InBounds(p) {
			return nil, &ConfigError{Field: "mines", Value: len(mines), Reason: "layout position outside the board"}
		}
		if b.mines[b.index(p)] {
			return nil, &ConfigError{Field: "mines", Value: len(mines), Reason: "duplicate position in layout"}
		}
		b.mines[b.index(p)] = true
	}
	b.initCounts()
	return b, nil
}

func (b *Board) index(p Position) int {
	return p.Y*b.cfg.Width + p.X
}

// initCounts computes the adjacency count for every square by scanning
// its grid-clamped neighbors. Counts never change afterwards.
func (b *Board) initCounts() {
	for y := 0; y < b.cfg.Height; y++ {
		for x := 0; x < b.cfg.Width; x++ {
			p := Position{X: x, Y: y}
			n := 0
			for _, q := range b.Neighbors(p) {
				if b.mines[b.index(q)] {
					n++
				}
			}
			b.adjacent[b.index(p)] = uint8(n)
		}
	}
}

// Config returns the board configuration.
func (b *Board) Config() Config {
	return b.cfg
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Position) bool {
	return p.X >= 0 && p.X < b.cfg.Width && p.Y >= 0 && p.Y < b.cfg.Height
}

// Neighbors returns the grid-clamped neighbors of p: 8 in the
// interior, fewer on edges and corners.
func (b *Board) Neighbors(p Position) []Position {
	neighbors := make([]Position, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			q := Position{X: p.X + dx, Y: p.Y + dy}
			if b.InBounds(q) {
				neighbors = append(neighbors, q)
			}
		}
	}
	return neighbors
}

// Mine reports whether p contains a mine.
func (b *Board) Mine(p Position) bool {
	return b.mines[b.index(p)]
}

// Adjacent returns the number of mined neighbors of p.
func (b *Board) Adjacent(p Position) int {
	return int(b.adjacent[b.index(p)])
}

// Revealed reports whether p has been revealed.
func (b *Board) Revealed(p Position) bool {
	return b.revealed[b.index(p)]
}

// Reveal marks a single square revealed and reports whether it was
// newly revealed. No cascade happens here; that is move resolution's
// job.
func (b *Board) Reveal(p Position) bool {
	i := b.index(p)
	if b.revealed[i] {
		return false
	}
	b.revealed[i] = true
	b.opened++
	return true
}

// Cleared reports whether every non-mine square is revealed, which is
// the win condition.
func (b *Board) Cleared() bool {
	return b.opened == b.cfg.Squares()-b.cfg.Mines
}

// SetFlags replaces the flag state with the given positions. Flags are
// display-only and never affect move resolution. Out-of-bounds
// positions are ignored.
func (b *Board) SetFlags(flags []Position) {
	for i := range b.flagged {
		b.flagged[i] = false
	}
	for _, p := range flags {
		if b.InBounds(p) {
			b.flagged[b.index(p)] = true
		}
	}
}

// Flagged reports whether p carries a display flag.
func (b *Board) Flagged(p Position) bool {
	return b.flagged[b.index(p)]
}
