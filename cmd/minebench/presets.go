package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minebench/internal/game"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List board presets",
	Long:  `Shows the built-in board presets usable with --preset.`,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, args []string) {
	fmt.Println("Board presets:")
	fmt.Println()
	fmt.Printf("  %-14s  %-7s  %s\n", "Name", "Board", "Mines")
	fmt.Printf("  %-14s  %-7s  %s\n", "----", "-----", "-----")

	for _, name := range game.PresetNames() {
		cfg := game.MustPreset(name)
		board := fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)
		fmt.Printf("  %-14s  %-7s  %d\n", name, board, cfg.Mines)
	}

	fmt.Println()
	fmt.Println("Any other board is reachable with --width, --height and --mines.")
}
