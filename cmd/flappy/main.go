// flappy plays a Flappy Bird-style game in the terminal, over SSH or headless.
//
// Usage:
//
//	flappy list              - List available modes
//	flappy play [mode]       - Play a mode
//	flappy menu              - Pick modes interactively
//	flappy serve             - Start SSH server for remote play
//	flappy scores [mode]     - Show high scores
//	flappy sim [mode]        - Let the autopilot fly headless
//	flappy config            - Print the default configuration
//
// Global flags:
//
//	--tick <duration>  - Simulation interval (default: 33ms)
//	--seed <value>     - RNG seed for reproducible runs
//	--db <path>        - Scores database (default: ~/.flappy/scores.db)
//	--config <path>    - Custom game config YAML
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagTick     time.Duration
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagPlayer   string
	flagMute     bool
	flagVolume   float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly through the gaps in your terminal",
	Long: `Flappy is a terminal take on the classic flap-through-the-pipes game,
with power-ups, a shared SSH leaderboard and a headless autopilot.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run the autopilot without a screen
  config   - Print the default configuration

Examples:
  flappy play
  flappy play flappy-hop
  flappy menu
  flappy serve --ssh :2222
  flappy sim --seed 7 --ticks 5000`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		flappy.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", core.DefaultTick, "Simulation tick interval")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath(), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: ~/.flappy/flappy.log while a UI is running)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores (default: $USER)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
