package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows a list of all registered game modes with their win counts and best scores.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	stats := loadAllStats()

	// Print header
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Title", "Stats")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, g.ID, g.Title, statsColumn(stats[g.ID]))
	}

	fmt.Println()
	fmt.Println("Run 'frogger play <id>' to play a mode.")
}

// loadAllStats reads per-mode stats, or returns nil when the database
// cannot be opened.
func loadAllStats() map[string]*storage.GameStats {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		return nil
	}
	return stats
}

// statsColumn formats one mode's stats for the list table.
func statsColumn(st *storage.GameStats) string {
	if st == nil || st.Wins == 0 {
		return "no wins yet"
	}
	return fmt.Sprintf("%d wins, best %d, fastest %ds", st.Wins, st.HighScore, st.BestTime)
}
