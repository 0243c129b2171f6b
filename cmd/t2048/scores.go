package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for a mode, or a summary of every mode.

Games played through the HTTP API are recorded under "` + session.GameID + `".

Examples:
  t2048 scores
  t2048 scores 2048
  t2048 scores 2048_api --limit 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer closeStore(store)

	if len(args) == 0 {
		return printSummary(store)
	}

	gameID := args[0]
	title, ok := modeTitle(gameID)
	if !ok {
		return fmt.Errorf("unknown mode %q, run 't2048 list' to see available modes", gameID)
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Best tile", "Moves", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "---------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.Moves, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-14s  %-6s  %-9s  %-8s  %s\n", "Mode", "Games", "Best", "Avg", "Last played")
	fmt.Printf("  %-14s  %-6s  %-9s  %-8s  %s\n", "----", "-----", "----", "---", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-14s  %-6d  %-9d  %-8.1f  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func modeTitle(gameID string) (string, bool) {
	if gameID == session.GameID {
		return "2048 (HTTP API)", true
	}
	for _, g := range registry.List() {
		if g.ID == gameID {
			return g.Title, true
		}
	}
	return "", false
}
