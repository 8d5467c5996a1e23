package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show the leaderboard for a mode",
	Long: `Display the top 10 winners for the specified mode.

Examples:
  frogger scores frogger
  frogger scores frogger_classic --all
  frogger scores frogger --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

var (
	flagAllScores   bool
	flagClearScores bool
)

func init() {
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "Show every recorded win instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores recorded for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'frogger list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	if flagClearScores {
		err := store.ClearScores(gameID)
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", registry.Title(gameID))
		return
	}

	var scores []storage.ScoreEntry
	if flagAllScores {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("Leaderboard - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No crossings recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'frogger play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-24s  %-6s  %-5s  %-5s  %s\n", "Rank", "Name", "Score", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-24s  %-6s  %-5s  %-5s  %s\n", "----", "----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-24s  %-6d  %-5d  %-5s  %s\n",
			i+1, entry.PlayerName, entry.Score, entry.Moves, fmt.Sprintf("%ds", entry.Seconds), dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Wins: %d  Players: %d  Fastest: %ds\n",
			stats.HighScore, stats.Wins, stats.Players, stats.BestTime)
	}
}
