package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minebench/internal/bot"
)

var botsCmd = &cobra.Command{
	Use:   "bots",
	Short: "List all registered bots",
	Long:  `Shows the id and description of every registered bot.`,
	Run:   runBots,
}

func runBots(cmd *cobra.Command, args []string) {
	bots := bot.List()

	if len(bots) == 0 {
		fmt.Println("No bots registered.")
		return
	}

	fmt.Println("Registered bots:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, b := range bots {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, b := range bots {
		fmt.Printf("  %-*s  %s\n", maxIDLen, b.ID, b.Description)
	}

	fmt.Println()
	fmt.Println("Run 'minebench run --bot <id>' to evaluate a bot.")
}
