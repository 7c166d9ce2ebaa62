package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sneakout/internal/content"
	"github.com/vovakirdan/sneakout/internal/engine"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available maps",
	Long:  `Shows the maps you can sneak out of, with their payout currency.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	fmt.Println("Available maps:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxNameLen := 4
	for _, arch := range engine.Archetypes {
		info := content.Infos[arch]
		if len(arch) > maxIDLen {
			maxIDLen = len(arch)
		}
		if len(info.Name) > maxNameLen {
			maxNameLen = len(info.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Payout")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxNameLen, "----", "------")

	for _, arch := range engine.Archetypes {
		info := content.Infos[arch]
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, string(arch), maxNameLen, info.Name, info.CurrencyName)
	}

	fmt.Println()
	fmt.Println("Run 'sneakout play <id>' to jump straight in, or 'sneakout play' for the menu.")
}
