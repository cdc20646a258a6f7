package observer

import (
	"github.com/vovakirdan/minebench/internal/game"
	"github.com/vovakirdan/minebench/internal/harness"
)

// Multi fans callbacks out to several observers in order.
type Multi []harness.Observer

func (m Multi) StartGame(index int, cfg game.Config) {
	for _, o := range m {
		o.StartGame(index, cfg)
	}
}

func (m Multi) Update(result game.MoveResult, flags []game.Position) {
	for _, o := range m {
		o.Update(result, flags)
	}
}

func (m Multi) EndGame(result harness.GameResult) {
	for _, o := range m {
		o.EndGame(result)
	}
}
