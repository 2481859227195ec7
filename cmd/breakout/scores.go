package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show round history for a variant",
	Long: `Display the best rounds for a variant (breakout by default).

Rounds are ranked by score, faster rounds first on ties.

Examples:
  breakout scores
  breakout scores breakout_classic
  breakout scores --recent --limit 20
  breakout scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show most recent rounds instead of best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the variant's round history")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "breakout"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'breakout list' to see available variants", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// History is the whole point here, so a storage failure is fatal.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRounds(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared round history for %s.\n", game.Title())
		return nil
	}

	var rounds []storage.Round
	if flagScoresRecent {
		rounds, err = store.RecentRounds(gameID, flagScoresLimit)
	} else {
		rounds, err = store.TopRounds(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	heading := "Best Rounds"
	if flagScoresRecent {
		heading = "Recent Rounds"
	}
	fmt.Printf("%s - %s\n", heading, game.Title())
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'breakout play %s' to set the first score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-6s  %s\n", "Rank", "Score", "Result", "Blocks", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "------", "------", "----", "----")
	for i, r := range rounds {
		fmt.Printf("  %-4d  %-6d  %-6s  %-6d  %-6s  %s\n",
			i+1, r.Score, r.Outcome, r.BlocksDestroyed,
			r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("cannot summarize rounds: %w", err)
	}
	fmt.Println()
	fmt.Printf("Rounds: %d  Won: %d  Best: %d  Average: %.1f\n",
		stats.Rounds, stats.Wins, stats.HighScore, stats.AvgScore)
	return nil
}
