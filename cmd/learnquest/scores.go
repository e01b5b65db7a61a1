package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/learnquest/internal/config"
	"github.com/vovakirdan/learnquest/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores from the configured score store.

Examples:
  learnquest scores`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(cfg.Scores)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.Top(storage.DefaultLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores - Learning Quest")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		if f, ok := store.(*storage.ScoreFile); ok {
			fmt.Printf("Scores are kept in %s\n", f.Path())
		}
		fmt.Println()
		fmt.Println("Run 'learnquest' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-20s  %-6s  %-5s  %s\n", "Rank", "Name", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-20s  %-6s  %-5s  %s\n", "----", "----", "-----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-20s  %-6d  %-5d  %s\n", i+1, entry.Name, entry.Score, entry.Level, entry.Timestamp)
	}

	// The SQLite backend keeps enough history for a summary
	if db, ok := store.(*storage.Store); ok {
		stats, err := db.Stats()
		if err == nil {
			fmt.Println()
			fmt.Printf("Games: %d  Best: %d  Average: %.1f  Best level: %d\n",
				stats.Games, stats.HighScore, stats.AvgScore, stats.BestLevel)
			if !stats.LastPlayed.IsZero() {
				fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
			}
		}
	}
}
