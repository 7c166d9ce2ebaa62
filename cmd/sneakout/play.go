package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sneakout/internal/config"
	"github.com/vovakirdan/sneakout/internal/content"
	"github.com/vovakirdan/sneakout/internal/engine"
	"github.com/vovakirdan/sneakout/internal/platform/tui"
	"github.com/vovakirdan/sneakout/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [map]",
	Short: "Start a session",
	Args:  cobra.MaximumNArgs(1),
	Long: `Start an interactive session. Pick a map from the menu, or name one
directly to skip the menu, then sneak toward an exit while the locals
close in.

Controls:
  Arrows/WASD  - Move one tile
  i            - Inspect an adjacent obstacle
  1 / 2        - Use a gadget (spray, die)
  Enter/Space  - Confirm
  Esc          - Back to menu
  Q/Ctrl+C     - Quit

Examples:
  sneakout play
  sneakout play home
  sneakout play --seed 42
  sneakout play --config ./my-engine.yaml`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	var arch engine.Archetype
	if len(args) == 1 {
		for _, a := range engine.Archetypes {
			if string(a) == args[0] {
				arch = a
			}
		}
		if arch == "" {
			fmt.Fprintf(os.Stderr, "Unknown map %q, see 'sneakout list'\n", args[0])
			os.Exit(1)
		}
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg, err := config.LoadEngine(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(content.Default(), cfg.ToParams(), flagSeed)

	// Open profile storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open profile database: %v\n", err)
		// Continue without storage - the session still works
		store = nil
	}

	runErr := tui.Run(eng, store, width, height, arch)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
