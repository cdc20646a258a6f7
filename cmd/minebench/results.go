package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minebench/internal/platform/tui"
	"github.com/vovakirdan/minebench/internal/storage"
)

var (
	flagResultsBot         string
	flagResultsLimit       int
	flagResultsInteractive bool
	flagResultsGames       int64
	flagResultsClear       bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Browse stored run results",
	Long: `Show runs recorded with 'minebench run --save'.

Examples:
  minebench results                  # Recent runs, all bots
  minebench results --bot counter    # Recent runs of one bot
  minebench results -i               # Interactive browser
  minebench results --run 3          # Per-game outcomes of run 3
  minebench results --clear          # Delete stored runs`,
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().StringVar(&flagResultsBot, "bot", "", "Only show runs of this bot")
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 20, "Number of runs to show")
	resultsCmd.Flags().BoolVarP(&flagResultsInteractive, "interactive", "i", false, "Open the interactive browser")
	resultsCmd.Flags().Int64Var(&flagResultsGames, "run", 0, "Show the per-game outcomes of one run")
	resultsCmd.Flags().BoolVar(&flagResultsClear, "clear", false, "Delete stored runs (honors --bot)")
}

func runResults(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open results database: %w", err)
	}
	defer store.Close()

	switch {
	case flagResultsClear:
		return clearResults(store)
	case flagResultsGames != 0:
		return printRunGames(store, flagResultsGames)
	case flagResultsInteractive:
		return tui.Browse(store, flagResultsBot)
	default:
		return printRuns(store)
	}
}

func printRuns(store *storage.Store) error {
	runs, err := store.RecentRuns(flagResultsBot, flagResultsLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'minebench run --save' to record one.")
		return nil
	}

	fmt.Printf("  %-5s  %-10s  %-10s  %-6s  %-5s  %-5s  %-4s  %-6s  %s\n",
		"Run", "Bot", "Board", "Games", "Won", "Lost", "Inv", "Win%", "Date")
	for _, r := range runs {
		board := fmt.Sprintf("%dx%d/%d", r.Width, r.Height, r.Mines)
		fmt.Printf("  %-5d  %-10s  %-10s  %-6d  %-5d  %-5d  %-4d  %-6.1f  %s\n",
			r.ID, r.BotID, board, r.Games, r.Wins, r.Losses, r.Invalid,
			r.WinRate()*100, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if flagResultsBot != "" {
		best, err := store.BestWinRate(flagResultsBot)
		if err == nil {
			fmt.Println()
			fmt.Printf("Best win rate: %.1f%%\n", best*100)
		}
	}
	return nil
}

func printRunGames(store *storage.Store, runID int64) error {
	games, err := store.RunGames(runID)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		fmt.Printf("No games recorded for run %d.\n", runID)
		return nil
	}

	fmt.Printf("  %-5s  %-8s  %s\n", "Game", "Outcome", "Moves")
	for _, g := range games {
		outcome := "lost"
		switch {
		case g.Won:
			outcome = "won"
		case g.Invalid:
			outcome = "invalid"
		}
		fmt.Printf("  %-5d  %-8s  %d\n", g.GameIndex+1, outcome, g.Moves)
	}
	return nil
}

func clearResults(store *storage.Store) error {
	if err := store.ClearRuns(flagResultsBot); err != nil {
		return err
	}
	if flagResultsBot != "" {
		fmt.Fprintf(os.Stdout, "Cleared stored runs of %s.\n", flagResultsBot)
	} else {
		fmt.Println("Cleared all stored runs.")
	}
	return nil
}
