package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/minebench/internal/bot"
	"github.com/vovakirdan/minebench/internal/platform/tui"
)

var flagWatchManual bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a run live in the terminal",
	Long: `Run a bot and show every move on a live full-screen board.

Controls:
  Space/Enter - Next move (with --manual)
  Q/Ctrl+C    - Quit

Examples:
  minebench watch --bot counter --preset intermediate --games 5
  minebench watch --bot random --delay 50
  minebench watch --bot counter --manual`,
	RunE: runWatch,
}

func init() {
	// The watcher shares the run flags; --delay paces its moves.
	watchCmd.Flags().AddFlagSet(runCmd.Flags())
	watchCmd.Flags().BoolVar(&flagWatchManual, "manual", false, "Advance one move per keypress")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("watch needs a terminal, use 'minebench run --observe console' instead")
	}

	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	board, err := cfg.Board.Resolve()
	if err != nil {
		return err
	}
	if !bot.Exists(cfg.Run.Bot) {
		return fmt.Errorf("unknown bot %q, run 'minebench bots' to see the registered ones", cfg.Run.Bot)
	}
	b, err := bot.Create(cfg.Run.Bot, cfg.Run.BotSeed)
	if err != nil {
		return err
	}

	seed := cfg.Run.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	watchCfg := tui.WatchConfig{
		Board:  board,
		Games:  cfg.Run.Games,
		Seed:   seed,
		Manual: flagWatchManual,
		Delay:  time.Duration(cfg.Observer.DelayMS) * time.Millisecond,
	}

	results, runErr := tui.Watch(watchCfg, cfg.Run.Bot, b, log.New(os.Stderr))
	if len(results) > 0 {
		printSummary(cfg.Run.Bot, board, seed, results)
	}
	return runErr
}
