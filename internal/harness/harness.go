// Package harness runs batches of games against a bot and collects
// per-game outcomes. Games run strictly sequentially: bot and observer
// state is single-instance and stateful within a game, so there is no
// parallelism to exploit without isolating both per worker.
package harness

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minebench/internal/bot"
	"github.com/vovakirdan/minebench/internal/game"
)

// Observer receives presentation callbacks during a run. Update is
// called with the same MoveResult the bot just received; observers
// must not mutate game state and nothing they return is consumed.
// Pacing (fixed delay, manual stepping) is a construction-time concern
// of concrete observers, never of the harness.
type Observer interface {
	// StartGame is called once before the first move of each game.
	StartGame(index int, cfg game.Config)

	// Update is called after every resolved move, immediately after
	// the bot's own Update. Flags carry the bot's current suspected
	// mines, display-only.
	Update(result game.MoveResult, flags []game.Position)

	// EndGame is called once with the recorded outcome of the game.
	EndGame(result GameResult)
}

// InvalidMovePolicy decides what a bot contract violation does to the
// rest of the run.
type InvalidMovePolicy int

const (
	// RecordAndContinue aborts the offending game, records it as an
	// invalid outcome, and moves on to the next game.
	RecordAndContinue InvalidMovePolicy = iota

	// AbortRun stops the whole run at the first violation.
	AbortRun
)

// DefaultMaxStall is the number of consecutive no-op moves (repeats of
// an already-revealed square) after which a game is declared stuck.
const DefaultMaxStall = 32

// GameResult is the outcome of a single game.
type GameResult struct {
	Game    int  // zero-based game index within the run
	Moves   int  // effective moves made
	Won     bool
	Invalid bool  // bot violated the contract; never silently swallowed
	Err     error // the violation, when Invalid
}

// Results is the ordered per-game outcome sequence of one run,
// read-only once the run completes.
type Results []GameResult

// Wins counts won games.
func (r Results) Wins() int {
	n := 0
	for _, g := range r {
		if g.Won {
			n++
		}
	}
	return n
}

// Losses counts games lost to a mine (invalid games excluded).
func (r Results) Losses() int {
	n := 0
	for _, g := range r {
		if !g.Won && !g.Invalid {
			n++
		}
	}
	return n
}

// Invalid counts games aborted for contract violations.
func (r Results) Invalid() int {
	n := 0
	for _, g := range r {
		if g.Invalid {
			n++
		}
	}
	return n
}

// WinRate is the fraction of games won, 0 for an empty run.
func (r Results) WinRate() float64 {
	if len(r) == 0 {
		return 0
	}
	return float64(r.Wins()) / float64(len(r))
}

// TotalMoves sums the moves of every game.
func (r Results) TotalMoves() int {
	n := 0
	for _, g := range r {
		n += g.Moves
	}
	return n
}

// Options tunes a run. The zero value is usable.
type Options struct {
	// Seed for board generation; 0 means current time. All boards of
	// the run draw from one seeded stream, so a (seed, config, bot)
	// triple reproduces the exact run.
	Seed int64

	// Policy for bot contract violations.
	Policy InvalidMovePolicy

	// MaxStall bounds consecutive no-op moves per game; 0 uses
	// DefaultMaxStall.
	MaxStall int

	// Observer, optional.
	Observer Observer

	// Logger, optional; discards output when nil.
	Logger *log.Logger
}

// Run plays numGames independent games of cfg against b and returns
// one outcome per game, in order. The board configuration is validated
// once up front; an invalid configuration fails the whole run.
func Run(cfg game.Config, numGames int, b bot.Bot, opts Options) (Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if numGames < 0 {
		return nil, fmt.Errorf("harness: negative game count %d", numGames)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	maxStall := opts.MaxStall
	if maxStall <= 0 {
		maxStall = DefaultMaxStall
	}
	rng := rand.New(rand.NewSource(seed))

	results := make(Results, 0, numGames)
	for i := 0; i < numGames; i++ {
		logger.Debug("starting game", "game", i, "width", cfg.Width, "height", cfg.Height, "mines", cfg.Mines)
		b.Reset(cfg)

		session, err := game.NewSession(cfg, rng)
		if err != nil {
			return results, err
		}
		if opts.Observer != nil {
			opts.Observer.StartGame(i, cfg)
		}

		result, err := playGame(i, session, b, opts.Observer, maxStall, logger)
		results = append(results, result)
		if opts.Observer != nil {
			opts.Observer.EndGame(result)
		}
		logger.Debug("game over", "game", i, "won", result.Won, "invalid", result.Invalid, "moves", result.Moves)

		if err != nil && opts.Policy == AbortRun {
			return results, fmt.Errorf("game %d: %w", i, err)
		}
	}
	return results, nil
}

// playGame drives one session to a terminal state. The returned error
// is the contract violation that aborted the game, if any; it is also
// recorded inside the GameResult.
func playGame(index int, session *game.Session, b bot.Bot, obs Observer, maxStall int, logger *log.Logger) (GameResult, error) {
	stalled := 0
	for session.Status() == game.Playing {
		p := b.Next()
		result, err := session.Move(p.X, p.Y)
		if err != nil {
			var invalid *game.InvalidMoveError
			if errors.As(err, &invalid) {
				err = fmt.Errorf("game %d, move %d: %w", index, session.Moves()+1, invalid)
				logger.Warn("bot made an invalid move", "game", index, "move", session.Moves()+1, "x", p.X, "y", p.Y)
				return GameResult{Game: index, Moves: session.Moves(), Invalid: true, Err: err}, err
			}
			// GameOverError here would be a harness bug; surface it.
			return GameResult{Game: index, Moves: session.Moves(), Invalid: true, Err: err}, err
		}

		if len(result.NewSquares) == 0 {
			// Repeat of an already-revealed square. Bound the repeats
			// so a stuck bot cannot hang the run.
			stalled++
			if stalled >= maxStall {
				err := fmt.Errorf("game %d: no progress after %d repeated moves at (%d,%d)", index, stalled, p.X, p.Y)
				logger.Warn("bot stalled", "game", index, "moves", session.Moves(), "x", p.X, "y", p.Y)
				return GameResult{Game: index, Moves: session.Moves(), Invalid: true, Err: err}, err
			}
		} else {
			stalled = 0
		}

		b.Update(result)

		var flags []game.Position
		if f, ok := b.(bot.Flagger); ok {
			flags = f.Flags()
			session.SetFlags(flags)
		}
		if obs != nil {
			obs.Update(result, flags)
		}
	}

	return GameResult{
		Game:  index,
		Moves: session.Moves(),
		Won:   session.Status() == game.Won,
	}, nil
}
