package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for high scores.
Leaving a finished game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play selected mode
  Tab          - High scores
  Q/Esc        - Quit

Examples:
  flappy menu
  flappy menu --tick 25ms
  flappy menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("flappy", true)
	defer closeLog()

	store := openStore(logger)
	sound := startSound(logger)

	runErr := tui.RunSession(uiOptions(runtimeConfig(), store, sound, logger))

	if sound != nil {
		sound.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
