package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/equata/internal/games/equata"
	"github.com/vovakirdan/equata/internal/platform/tui"
	"github.com/vovakirdan/equata/internal/registry"
	"github.com/vovakirdan/equata/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear string
	flagScoresRun   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level-id]",
	Short: "Show scores or a level's best times",
	Long: `Without arguments, shows the top 10 run scores of the campaign and
endless modes. With a level id, shows that level's attempts and its
fastest clears. With --run, lists every level attempt of one run; run
ids are written to the log when a run ends.

Examples:
  equata scores
  equata scores 03
  equata scores --tui
  equata scores --run 3f2b6c1e-5d4a-4c8e-9b7a-2e1f0d3c4b5a
  equata scores --clear equata_endless`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeLevelIDs,
	Run:               runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().StringVar(&flagScoresClear, "clear", "", "Delete all run scores of a game mode")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "List the level attempts of one run")
}

func runScores(_ *cobra.Command, args []string) {
	logger := newLogger("equata")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening results database: %v", err)
	}
	defer store.Close()

	if flagScoresClear != "" {
		if !registry.Exists(flagScoresClear) {
			exitf("unknown game mode %q\nRun 'equata list' to see the modes.", flagScoresClear)
		}
		if err := store.ClearScores(flagScoresClear); err != nil {
			exitf("clearing scores: %v", err)
		}
		logger.Info("scores cleared", "game", registry.TitleOf(flagScoresClear))
		return
	}

	if flagScoresRun != "" {
		printRunResults(store, flagScoresRun)
		return
	}

	if flagScoresTUI {
		rc := runtimeConfig()
		if _, err := tui.RunScoreboard(loadCatalog(logger), store, rc.ScreenW, rc.ScreenH); err != nil {
			logger.Error("scoreboard failed", "error", err)
		}
		return
	}

	if len(args) == 1 {
		printLevelScores(store, args[0])
		return
	}

	for _, gameID := range []string{equata.IDCampaign, equata.IDEndless} {
		printRunScores(store, gameID)
	}
}

func printRunScores(store *storage.Store, gameID string) {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		exitf("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n\n", registry.TitleOf(gameID))
	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		fmt.Println()
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("\n  Runs: %d  Best: %d  Average: %.0f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
	fmt.Println()
}

func printLevelScores(store *storage.Store, levelID string) {
	stats, err := store.GetLevelStats(levelID)
	if err != nil {
		exitf("retrieving level stats: %v", err)
	}

	fmt.Printf("Level %s\n\n", levelID)
	if stats.Attempts == 0 {
		fmt.Println("No attempts recorded yet.")
		fmt.Printf("Play 'equata play %s' to set the first time!\n", levelID)
		return
	}
	fmt.Printf("  Attempts: %d  Clears: %d\n\n", stats.Attempts, stats.Wins)

	best, err := store.BestTimes(levelID, 10)
	if err != nil {
		exitf("retrieving best times: %v", err)
	}
	if len(best) == 0 {
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "Rank", "Time", "Misses", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "----", "----", "------", "----")
	for i, r := range best {
		fmt.Printf("  %-4d  %-8s  %-6d  %s\n",
			i+1, fmt.Sprintf("%.2fs", r.TimeTaken), r.WrongGuesses, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printRunResults(store *storage.Store, runID string) {
	records, err := store.RunResults(runID)
	if err != nil {
		exitf("retrieving run: %v", err)
	}

	fmt.Printf("Run %s\n\n", runID)
	if len(records) == 0 {
		fmt.Println("No attempts recorded for this run.")
		return
	}

	fmt.Printf("  %-14s  %-6s  %-8s  %-6s  %s\n", "Level", "Result", "Time", "Misses", "Date")
	fmt.Printf("  %-14s  %-6s  %-8s  %-6s  %s\n", "-----", "------", "----", "------", "----")
	cleared := 0
	for _, r := range records {
		result := "lost"
		if r.Won {
			result = "won"
			cleared++
		}
		fmt.Printf("  %-14s  %-6s  %-8s  %-6d  %s\n",
			r.LevelID, result, fmt.Sprintf("%.2fs", r.TimeTaken), r.WrongGuesses, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Printf("\n  Cleared %d of %d attempt(s)\n", cleared, len(records))
}
