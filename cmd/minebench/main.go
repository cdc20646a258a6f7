// minebench evaluates minesweeper bots by running them through batches
// of randomly generated games.
//
// Usage:
//
//	minebench bots                 - List registered bots
//	minebench presets              - List board presets
//	minebench run --bot counter    - Run a headless evaluation
//	minebench watch --bot counter  - Watch a run live in the terminal
//	minebench results              - Browse stored run results
//	minebench serve                - Serve the live watcher over SSH
//
// Global flags:
//
//	--config <path> - Custom config YAML (default: ~/.minebench/config.yaml)
//	--db <path>     - Results database path (default: ~/.minebench/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minebench",
	Short: "Minebench - Evaluate minesweeper bots",
	Long: `Minebench runs minesweeper bots through batches of randomly
generated games and reports how well they do.

Available commands:
  bots     - Show all registered bots
  presets  - Show board presets
  run      - Run a headless evaluation
  watch    - Watch a run live in the terminal
  results  - Browse stored run results
  serve    - Serve the live watcher over SSH

Examples:
  minebench bots
  minebench run --bot counter --preset intermediate --games 1000
  minebench watch --bot random --delay 100
  minebench results --bot counter
  minebench serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.minebench/runs.db", "Path to results database")

	rootCmd.AddCommand(botsCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}
