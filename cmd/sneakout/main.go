// sneakout is a turn-based stealth roguelike played in the terminal.
//
// Usage:
//
//	sneakout play [map]      - Start a session (pick a map, sneak out)
//	sneakout list            - List available maps
//	sneakout gallery         - Show your collection of found loot
//	sneakout shop [item]     - Show the gadget shop, or buy an item
//	sneakout runs            - Show recent run history
//	sneakout serve           - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible sessions
//	--db <path>     - Set profile database path (default: ~/.sneakout/profile.db)
//	--config <path> - Path to custom engine config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sneakout",
	Short: "Sneak Out - dodge the family, grab the loot, reach the exit",
	Long: `Sneak Out is a turn-based terminal game. Explore a map, pick up loot
and cash, dodge pursuers who want a word with you, survive their
questioning when caught, and slip out the exit with your haul.

Available commands:
  play     - Start a session
  list     - List the available maps
  gallery  - Show your collection of found loot
  shop     - Browse or buy gadgets
  runs     - Show recent run history
  serve    - Start SSH server for remote play

Examples:
  sneakout play
  sneakout play home
  sneakout play --seed 42
  sneakout shop
  sneakout shop spray
  sneakout serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sneakout/profile.db", "Path to profile database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}
