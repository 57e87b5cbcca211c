package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagBrowse bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores of a mode.

Modes are classic (no --difficulty) and the difficulty presets
easy, normal, hard and fixed. Without a mode every mode with
recorded runs is listed.

Examples:
  shooter scores
  shooter scores hard
  shooter scores --browse
  shooter scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail(fmt.Errorf("opening scores database: %w", err))
	}
	defer store.Close()

	mode := ""
	if len(args) == 1 {
		mode = args[0]
	}

	switch {
	case flagBrowse:
		if mode == "" {
			mode = config.ModeName("")
		}
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, mode); err != nil {
			fail(err)
		}
		return

	case flagClear:
		if mode == "" {
			fail(errors.New("--clear needs a mode"))
		}
		if err := store.ClearScores(mode); err != nil {
			fail(err)
		}
		fmt.Printf("Cleared scores of %s\n", mode)
		return
	}

	modes := []string{mode}
	if mode == "" {
		if modes, err = store.Modes(); err != nil {
			fail(err)
		}
	}
	if len(modes) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shooter play' to set the first high score!")
		return
	}

	for i, m := range modes {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, m); err != nil {
			fail(err)
		}
	}
}

func printScores(store *storage.Store, mode string) error {
	scores, err := store.TopScores(mode, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	stats, err := store.Stats(mode)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Best level: %d  Average: %.1f\n",
		stats.HighScore, stats.Runs, stats.BestLevel, stats.AvgScore)
	return nil
}
