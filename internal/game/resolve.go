package game

// MoveResult describes everything a single move did. A fresh value is
// produced per move and owned by the caller; bots and observers read
// it without any shared-mutation back-channel.
type MoveResult struct {
	// NewSquares holds every square newly revealed by this move,
	// including the flood-fill cascade. Empty for a no-op move on an
	// already-revealed square.
	NewSquares []Square
	Mine       bool // the move hit a mine
	Won        bool
	Lost       bool
}

// resolve applies one move to the board using classic minesweeper
// semantics. It is deterministic: no randomness is involved after
// board creation.
func resolve(b *Board, p Position) (MoveResult, error) {
	if !b.InBounds(p) {
		return MoveResult{}, &InvalidMoveError{Pos: p, Reason: "outside the board"}
	}

	// Revealing an already-revealed square is a no-op, not an error.
	// Keeps bots robust against redundant moves.
	if b.Revealed(p) {
		return MoveResult{}, nil
	}

	b.Reveal(p)
	result := MoveResult{
		NewSquares: []Square{{Position: p, Adjacent: b.Adjacent(p)}},
	}

	if b.Mine(p) {
		// No cascade on a losing move: only the fatal square is exposed.
		result.Mine = true
		result.Lost = true
		return result, nil
	}

	if b.Adjacent(p) == 0 {
		result.NewSquares = append(result.NewSquares, floodFill(b, p)...)
	}

	if b.Cleared() {
		result.Won = true
	}
	return result, nil
}

// floodFill reveals the connected zero-count region around start plus
// its numbered border. The traversal is iterative with an explicit
// worklist so large boards never grow the call stack, and the
// revealed-state check guarantees each square is visited at most once,
// bounding the whole move to O(width*height).
func floodFill(b *Board, start Position) []Square {
	var opened []Square
	stack := []Position{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, q := range b.Neighbors(p) {
			if b.Revealed(q) || b.Mine(q) {
				continue
			}
			b.Reveal(q)
			opened = append(opened, Square{Position: q, Adjacent: b.Adjacent(q)})
			if b.Adjacent(q) == 0 {
				stack = append(stack, q)
			}
		}
	}
	return opened
}
