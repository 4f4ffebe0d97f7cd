package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best stored sessions, or browse them interactively.

Examples:
  platformer scores
  platformer scores --limit 20
  platformer scores --recent
  platformer scores --browse
  platformer scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent sessions instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored sessions")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All sessions deleted.")
		return
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	title := "High Scores"
	results, err := store.TopScores(flagLimit)
	if flagRecent {
		title = "Recent Sessions"
		results, err = store.RecentResults(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-9s  %-8s  %s\n", "Rank", "Player", "Score", "Result", "Progress", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-9s  %-8s  %s\n", "----", "------", "-----", "------", "--------", "----")

	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-6d  %-9s  %-8s  %s\n",
			i+1, r.Player, r.Score, r.Ending, fmt.Sprintf("%d%%", r.Progress), dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %d  |  Sessions: %d  |  Wins: %d  |  Average: %.0f\n",
			stats.HighScore, stats.Sessions, stats.Wins, stats.AvgScore)
	}
}
