// flappy-desktop plays the game in a window.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/audio"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/platform/desktop"
)

var (
	flagVariant string
	flagConfig  string
	flagTick    time.Duration
	flagSeed    int64
	flagMute    bool
)

var rootCmd = &cobra.Command{
	Use:   "flappy-desktop [mode]",
	Short: "Play Flappy in a window",
	Long: `Open a window and play. Click, tap or press Space to flap.

Controls:
  Space/Up/Click/Touch - Flap
  P                    - Pause
  R/Enter              - Restart after game over
  M                    - Toggle sound
  Esc                  - Quit

The last mode, volume, mute flag and best scores are remembered.`,
	Args: cobra.MaximumNArgs(1),
	Run:  run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().DurationVar(&flagTick, "tick", core.DefaultTick, "Simulation tick interval")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start muted")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy-desktop",
	})

	if len(args) > 0 {
		flagVariant = args[0]
	}

	settings, err := desktop.OpenSettings("flappy_arcade")
	if err != nil {
		logger.Warn("settings unavailable, using defaults", "err", err)
		settings, _ = desktop.NewSettingsStore(nil)
	}
	if flagMute {
		settings.SetMuted(true)
	}

	opts := desktop.Options{
		Variant:    flagVariant,
		ConfigPath: flagConfig,
		Tick:       flagTick,
		Seed:       flagSeed,
		Settings:   settings,
		Logger:     logger,
	}

	sound := audio.NewSoundManager(settings.Settings().Volume)
	if err := sound.Initialize(); err != nil {
		logger.Warn("sound disabled", "err", err)
	} else {
		opts.Sound = sound
		defer sound.Cleanup()
	}

	if err := desktop.Run(opts); err != nil {
		logger.Error("game stopped", "err", err)
		os.Exit(1)
	}
}
