package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresSize int
	flagLimit      int
	flagAll        bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores of both modes for one board size.

Examples:
  t2048 scores
  t2048 scores --size 5
  t2048 scores --limit 3
  t2048 scores --all`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresSize, "size", 0, "Board size N (3-10, default from config)")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show per mode")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show a summary of every mode and size played")
}

func runScores(cmd *cobra.Command, _ []string) error {
	size := appConfig.Board.Size
	if cmd.Flags().Changed("size") {
		size = flagScoresSize
	}
	if err := config.ValidateBoardSize(size); err != nil {
		return fmt.Errorf("--size %d: %w", size, err)
	}
	if flagLimit < 1 {
		return errors.New("--limit must be at least 1")
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagAll {
		return printSummary(store)
	}

	for i, mode := range registry.List() {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, mode.ID, mode.Title, size); err != nil {
			return err
		}
	}
	return nil
}

// printScores prints the score table and stats of one mode and size.
func printScores(store *storage.Store, modeID, title string, size int) error {
	id := storage.ScoreKey(modeID, size)

	scores, err := store.TopScores(id, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s, %dx%d\n", title, size, size)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Max Tile", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "--------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %s\n", i+1, entry.Score, entry.MaxTile, dateStr)
	}

	stats, err := store.GetStats(id)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Best tile: %d  Average: %.0f\n",
		stats.GamesCount, stats.HighScore, stats.BestTile, stats.AvgScore)
	return nil
}

// printSummary prints one stats line per score key.
func printSummary(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("  %-20s  %-6s  %-10s  %-9s  %s\n", "Mode", "Games", "Best", "Best Tile", "Last Played")
	fmt.Printf("  %-20s  %-6s  %-10s  %-9s  %s\n", "----", "-----", "----", "---------", "-----------")
	for _, k := range keys {
		st := all[k]
		fmt.Printf("  %-20s  %-6d  %-10d  %-9d  %s\n",
			k, st.GamesCount, st.HighScore, st.BestTile, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
