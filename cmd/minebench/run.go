package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minebench/internal/bot"
	"github.com/vovakirdan/minebench/internal/config"
	"github.com/vovakirdan/minebench/internal/game"
	"github.com/vovakirdan/minebench/internal/harness"
	"github.com/vovakirdan/minebench/internal/observer"
	"github.com/vovakirdan/minebench/internal/storage"
)

var (
	flagRunBot       string
	flagRunGames     int
	flagRunPreset    string
	flagRunWidth     int
	flagRunHeight    int
	flagRunMines     int
	flagRunSeed      int64
	flagRunBotSeed   int64
	flagRunOnInvalid string
	flagRunObserve   string
	flagRunDelay     int
	flagRunSave      bool
	flagRunVerbose   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a headless evaluation",
	Long: `Run a bot through a batch of games and print the aggregate
results. Flags override the loaded configuration file.

The board seed makes runs reproducible: the same bot, board and seed
always produce the same outcome sequence.

Observer modes:
  none    - No per-move output, fastest
  console - Print the board after every move
  step    - Print the board and wait for Enter between moves

Examples:
  minebench run --bot counter --games 1000
  minebench run --bot random --preset expert --seed 42
  minebench run --bot sweep --width 5 --height 5 --mines 3
  minebench run --bot counter --observe console --delay 100
  minebench run --bot counter --on-invalid abort`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagRunBot, "bot", "", "Bot to evaluate")
	runCmd.Flags().IntVar(&flagRunGames, "games", 0, "Number of games to play")
	runCmd.Flags().StringVar(&flagRunPreset, "preset", "", "Board preset: beginner, intermediate, expert")
	runCmd.Flags().IntVar(&flagRunWidth, "width", 0, "Board width (overrides preset)")
	runCmd.Flags().IntVar(&flagRunHeight, "height", 0, "Board height (overrides preset)")
	runCmd.Flags().IntVar(&flagRunMines, "mines", 0, "Mine count (overrides preset)")
	runCmd.Flags().Int64Var(&flagRunSeed, "seed", 0, "Board generation seed (0 = random based on time)")
	runCmd.Flags().Int64Var(&flagRunBotSeed, "bot-seed", 0, "Bot RNG seed (0 = random based on time)")
	runCmd.Flags().StringVar(&flagRunOnInvalid, "on-invalid", "", "Invalid move policy: continue or abort")
	runCmd.Flags().StringVar(&flagRunObserve, "observe", "", "Observer mode: none, console, step")
	runCmd.Flags().IntVar(&flagRunDelay, "delay", 0, "Console observer delay between moves (ms)")
	runCmd.Flags().BoolVar(&flagRunSave, "save", false, "Record the run in the results database")
	runCmd.Flags().BoolVarP(&flagRunVerbose, "verbose", "v", false, "Log per-game progress")
}

// loadRunConfig loads the configuration file and applies any flags the
// user set on top.
func loadRunConfig(cmd *cobra.Command) (config.RunConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("bot") {
		cfg.Run.Bot = flagRunBot
	}
	if cmd.Flags().Changed("games") {
		cfg.Run.Games = flagRunGames
	}
	if cmd.Flags().Changed("preset") {
		cfg.Board = config.BoardConfig{Preset: flagRunPreset}
	}
	if cmd.Flags().Changed("width") || cmd.Flags().Changed("height") || cmd.Flags().Changed("mines") {
		cfg.Board = config.BoardConfig{
			Width:  flagRunWidth,
			Height: flagRunHeight,
			Mines:  flagRunMines,
		}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Run.Seed = flagRunSeed
	}
	if cmd.Flags().Changed("bot-seed") {
		cfg.Run.BotSeed = flagRunBotSeed
	}
	if cmd.Flags().Changed("on-invalid") {
		cfg.Run.OnInvalid = flagRunOnInvalid
	}
	if cmd.Flags().Changed("observe") {
		cfg.Observer.Mode = flagRunObserve
	}
	if cmd.Flags().Changed("delay") {
		cfg.Observer.DelayMS = flagRunDelay
	}
	if cmd.Flags().Changed("save") {
		cfg.Storage.Save = flagRunSave
	}
	if cmd.Flags().Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}

func policyFromString(s string) (harness.InvalidMovePolicy, error) {
	switch s {
	case "", "continue":
		return harness.RecordAndContinue, nil
	case "abort":
		return harness.AbortRun, nil
	default:
		return 0, fmt.Errorf("unknown invalid move policy %q (want continue or abort)", s)
	}
}

func observerFromConfig(cfg config.ObserverConfig) (harness.Observer, error) {
	delay := time.Duration(cfg.DelayMS) * time.Millisecond
	switch cfg.Mode {
	case "", "none":
		return nil, nil
	case "console":
		return observer.NewConsole(os.Stdout, observer.PaceDelay, delay, nil), nil
	case "step":
		return observer.NewConsole(os.Stdout, observer.PaceStep, 0, os.Stdin), nil
	default:
		return nil, fmt.Errorf("unknown observer mode %q (want none, console or step)", cfg.Mode)
	}
}

func runRun(cmd *cobra.Command, _ []string) error {
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
	policy, err := policyFromString(cfg.Run.OnInvalid)
	if err != nil {
		return err
	}
	obs, err := observerFromConfig(cfg.Observer)
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr)
	if flagRunVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	seed := cfg.Run.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	results, runErr := harness.Run(board, cfg.Run.Games, b, harness.Options{
		Seed:     seed,
		Policy:   policy,
		MaxStall: cfg.Run.MaxStall,
		Observer: obs,
		Logger:   logger,
	})

	if len(results) > 0 {
		printSummary(cfg.Run.Bot, board, seed, results)
	}

	if cfg.Storage.Save && len(results) > 0 {
		store, storeErr := storage.Open(cfg.Storage.Path)
		if storeErr != nil {
			logger.Warn("could not open results database", "error", storeErr)
		} else {
			defer store.Close()
			runID, saveErr := store.SaveRun(cfg.Run.Bot, board, seed, results)
			if saveErr != nil {
				logger.Warn("could not save run", "error", saveErr)
			} else {
				fmt.Printf("saved as run %d\n", runID)
			}
		}
	}

	return runErr
}

func boardString(board game.Config) string {
	return fmt.Sprintf("%dx%d/%d mines", board.Width, board.Height, board.Mines)
}

func printSummary(botID string, board game.Config, seed int64, results harness.Results) {
	fmt.Printf("bot:      %s\n", botID)
	fmt.Printf("board:    %s\n", boardString(board))
	fmt.Printf("seed:     %d\n", seed)
	fmt.Printf("games:    %d\n", len(results))
	fmt.Printf("won:      %d (%.1f%%)\n", results.Wins(), results.WinRate()*100)
	fmt.Printf("lost:     %d\n", results.Losses())
	if n := results.Invalid(); n > 0 {
		fmt.Printf("invalid:  %d\n", n)
	}
	fmt.Printf("moves:    %d total\n", results.TotalMoves())
}
