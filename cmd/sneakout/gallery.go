package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sneakout/internal/content"
	"github.com/vovakirdan/sneakout/internal/storage"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Show your collection of found loot",
	Long: `Display the loot catalog with your unlock counts. Items you have never
extracted show as ???.`,
	Run: runGallery,
}

func runGallery(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	unlocks, err := store.Unlocks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving unlocks: %v\n", err)
		os.Exit(1)
	}
	counts := make(map[string]int, len(unlocks))
	for _, u := range unlocks {
		counts[u.LootID] = u.Count
	}

	catalog := content.Default().Loot
	found := 0
	for _, item := range catalog {
		if counts[item.ID] > 0 {
			found++
		}
	}

	fmt.Printf("Collection: %d / %d\n", found, len(catalog))
	fmt.Println()
	fmt.Printf("  %-3s  %-26s  %-9s  %-8s  %s\n", "", "Name", "Rarity", "Map", "Found")
	fmt.Printf("  %-3s  %-26s  %-9s  %-8s  %s\n", "", "----", "------", "---", "-----")
	for _, item := range catalog {
		name := "???"
		glyph := " "
		if counts[item.ID] > 0 {
			name = item.Name
			glyph = string(item.Glyph)
		}
		fmt.Printf("  %-3s  %-26s  %-9s  %-8s  %d\n",
			glyph, name, item.Rarity, item.Archetype, counts[item.ID])
	}
}
