package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows the registered 2048 modes and the aliases accepted by 'play' and 'scores'.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "ID", "Alias", "Title")
	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, g.ID, modeAlias(g.ID), g.Title)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <id>' to play a mode.")
}
