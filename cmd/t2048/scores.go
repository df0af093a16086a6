package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for a mode, or a summary of every mode when
no mode is given.

Examples:
  t2048 scores
  t2048 scores classic
  t2048 scores endless --limit 25
  t2048 scores campaign --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagLimit <= 0 {
		return fmt.Errorf("--limit must be positive, got %d", flagLimit)
	}
	if flagClear && len(args) == 0 {
		return fmt.Errorf("--clear needs a mode")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(store)
	}

	gameID, err := resolveMode(args[0])
	if err != nil {
		return err
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating mode: %w", err)
	}
	title := game.Title()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "mode", gameID)
		fmt.Printf("Cleared all scores for %s.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first high score!\n", args[0])
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %s\n", "Rank", "Score", "Max Tile", "Board", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %s\n", "----", "-----", "--------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %-6s  %s\n", i+1, entry.Score, entry.MaxTile, entry.BoardSize(), dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Avg: %.0f  Best tile: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestTile)
	}
	return nil
}

// printSummary prints one line per mode that has recorded scores.
func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Score summary")
	fmt.Println()
	fmt.Printf("  %-14s  %-6s  %-10s  %-10s  %-9s  %s\n", "Mode", "Games", "Best", "Average", "Best tile", "Last played")
	fmt.Printf("  %-14s  %-6s  %-10s  %-10s  %-9s  %s\n", "----", "-----", "----", "-------", "---------", "-----------")

	for _, id := range ids {
		s := all[id]
		last := "-"
		if !s.LastPlayed.IsZero() {
			last = s.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-14s  %-6d  %-10d  %-10.0f  %-9d  %s\n", id, s.GamesCount, s.HighScore, s.AvgScore, s.BestTile, last)
	}
	return nil
}
