package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: flappy).

Controls:
  Space/Up/W   - Flap (hold to keep rising in hold modes)
  Down/S       - Fall
  Mouse        - Press to flap, release to fall
  P            - Pause
  R/Enter      - Restart after game over
  Esc          - Leave when paused or after game over
  Ctrl+S       - Save a screenshot to ~/.flappy/screenshots
  Q/Ctrl+C     - Quit

Examples:
  flappy play
  flappy play flappy-hop
  flappy play flappy-classic --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := resolveMode(args)

	logger, closeLog := newLogger("flappy", true)
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sound := startSound(logger)

	runErr := tui.Run(game, uiOptions(runtimeConfig(), store, sound, logger))

	if sound != nil {
		sound.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
