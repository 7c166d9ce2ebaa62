package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sneakout/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent run history",
	Long: `Display your most recent runs: which map, how it ended, how many
turns it took and what the payout was.

Examples:
  sneakout runs
  sneakout runs --limit 25`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'sneakout play' to start your first run!")
		return
	}

	fmt.Println("Recent runs:")
	fmt.Println()
	fmt.Printf("  %-8s  %-10s  %-6s  %-6s  %-4s  %s\n", "Map", "Outcome", "Payout", "Turns", "Loot", "Date")
	fmt.Printf("  %-8s  %-10s  %-6s  %-6s  %-4s  %s\n", "---", "-------", "------", "-----", "----", "----")
	for _, rec := range runs {
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %-10s  %-6d  %-6d  %-4d  %s\n",
			rec.Archetype, rec.Outcome, rec.Payout, rec.Turns, rec.LootCount, dateStr)
	}
}
