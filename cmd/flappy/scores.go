package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresTUI    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores for the given mode (default: flappy).

Examples:
  flappy scores
  flappy scores flappy-hop --limit 20
  flappy scores --player alice
  flappy scores --interactive
  flappy scores flappy-classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player-filter", "", "Only show this player's runs")
	scoresCmd.Flags().BoolVarP(&flagScoresTUI, "interactive", "i", false, "Browse all modes in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := resolveMode(args)
	info := lookupInfo(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		w, h := terminalSize()
		if err := tui.RunScoreboard(store, gameID, w, h); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared all scores for %s.\n", info.Title)
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(gameID, flagScoresPlayer, flagScoresLimit)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'flappy play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %-9s  %s\n", "Rank", "Player", "Score", "Power-ups", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %-9s  %s\n", "----", "------", "-----", "---------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-16s  %-6d  %-9d  %s\n", i+1, e.Player, e.Score, e.PowerUps, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}

// lookupInfo returns the registry entry for a known id.
func lookupInfo(id string) registry.GameInfo {
	for _, g := range registry.List() {
		if g.ID == id {
			return g
		}
	}
	return registry.GameInfo{ID: id, Title: id}
}
