package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minerun/internal/registry"
	"github.com/vovakirdan/minerun/internal/settings"
	"github.com/vovakirdan/minerun/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs for a mode",
	Long: `Display the best runs for the given mode (default: minerun).

Examples:
  minerun scores
  minerun scores minerun_beams --limit 20
  minerun scores --recent
  minerun scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "minerun"
	if len(args) == 1 {
		gameID = args[0]
	}
	info, ok := registry.Lookup(gameID)
	if !ok {
		fail("unknown mode %q\nRun 'minerun list' to see available modes.", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared runs for %s.\n", info.Title)
		return
	}

	var runs []storage.RunRecord
	heading := "Best Runs"
	if flagScoresRecent {
		heading = "Recent Runs"
		runs, err = store.RecentRuns(gameID, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagScoresLimit)
	}
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Printf("%s - %s\n", heading, info.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'minerun play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-4s  %-10s  %-6s  %s\n",
		"Rank", "Score", "Time", "Sections", "Tier", "Cause", "Diff", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-4s  %-10s  %-6s  %s\n",
		"----", "-----", "----", "--------", "----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-6s  %-8d  %-4d  %-10s  %-6s  %s\n",
			i+1, r.Score, clock(r.TimeAlive), r.SectionsCleared, r.MaxTier,
			r.Cause, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil && stats.RunsCount > 0 {
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Longest: %s\n",
			stats.RunsCount, stats.HighScore, stats.AvgScore, clock(stats.LongestRun))
	}
	if st, err := settings.Open(flagDataDir); err == nil {
		if best, err := st.HighScore(); err == nil && best > 0 {
			fmt.Printf("All-time best: %d\n", best)
		}
	}
}

// clock renders seconds as m:ss.
func clock(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
