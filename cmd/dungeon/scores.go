package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dungeon/internal/platform/tui"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

var (
	flagScoresClear bool
	flagScoresRuns  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores and the latest runs of a board.

Each difficulty keeps its own board: "dungeon" for the classic rules and
"dungeon_<difficulty>" for the presets picked with --difficulty or the menu.

Examples:
  dungeon scores
  dungeon scores dungeon_hard
  dungeon scores dungeon_easy --runs 20
  dungeon scores dungeon --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs of the board")
	scoresCmd.Flags().IntVar(&flagScoresRuns, "runs", 5, "Number of recent runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	board := tui.DefaultBoard
	if len(args) == 1 {
		board = args[0]
	}

	if err := showScores(board); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// showScores prints a board. The store is closed before runScores exits.
func showScores(board string) error {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(board); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared board %s\n", board)
		return nil
	}

	scores, err := store.TopScores(board, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	runs, err := store.RecentRuns(board, flagScoresRuns)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("High Scores - %s\n", board)
	fmt.Println()

	if len(scores) == 0 && len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		if boards, err := store.Boards(); err == nil && len(boards) > 0 {
			fmt.Printf("Boards with results: %v\n", boards)
		} else {
			fmt.Println("Play 'dungeon play' to set the first high score!")
		}
		return nil
	}

	if len(scores) > 0 {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}
		fmt.Println()
	}

	if len(runs) > 0 {
		fmt.Println("Recent runs")
		fmt.Println()
		fmt.Printf("  %-8s  %-7s  %-5s  %-5s  %-8s  %s\n", "Player", "Outcome", "Score", "Kills", "Time", "Date")
		fmt.Printf("  %-8s  %-7s  %-5s  %-5s  %-8s  %s\n", "------", "-------", "-----", "-----", "----", "----")
		for _, r := range runs {
			fmt.Printf("  %-8s  %-7s  %-5d  %-5d  %-8s  %s\n",
				truncate(r.Player, 8),
				r.Outcome,
				r.Score,
				r.Kills,
				(time.Duration(r.DurationMs) * time.Millisecond).Round(100*time.Millisecond),
				r.CreatedAt.Format("2006-01-02 15:04"),
			)
		}
		fmt.Println()
	}

	if stats, err := store.GetBoardStats(board); err == nil && stats.RunsCount > 0 {
		fmt.Printf("Best: %d  Runs: %d  Wins: %d  Kills: %d\n",
			stats.HighScore, stats.RunsCount, stats.Wins, stats.TotalKills)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
