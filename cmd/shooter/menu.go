package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start menu with difficulty and high scores",
	Long: `Start the shooter in interactive menu mode.

Pick a difficulty, start a run or browse the high scores.
After a game ends, B returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select (cycles the difficulty entry)
  Q            - Quit

Examples:
  shooter menu
  shooter menu --fps 30
  shooter menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	shooterCfg, preset, err := loadShooter()
	if err != nil {
		fail(err)
	}

	logger, closeLog, err := newLogger("shooter", io.Discard)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	store := openStore(logger)

	runErr := tui.RunSession(tui.SessionOptions{
		Store:   store,
		Shooter: shooterCfg,
		Preset:  preset,
		Runtime: runtimeConfig(),
		Logger:  logger,
		Player:  "local",
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail(runErr)
	}
}
