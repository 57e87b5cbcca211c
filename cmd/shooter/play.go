package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  Enter        - Start / restart
  P            - Pause / resume
  B/Esc        - Leave (before start, paused or after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer asteroids, more power-ups, gentle speed-up
  normal - Speed-up starts at 30%
  hard   - More and faster asteroids, speed-up starts at 70%
  fixed  - No speed-up

Examples:
  shooter play
  shooter play --difficulty easy
  shooter play --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	shooterCfg, preset, err := loadPreset()
	if err != nil {
		fail(err)
	}

	logger, closeLog, err := newLogger("shooter", io.Discard)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	store := openStore(logger)

	_, runErr := tui.Run(tui.GameOptions{
		Shooter: shooterCfg,
		Runtime: runtimeConfig(),
		Mode:    config.ModeName(preset),
		Store:   store,
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail(runErr)
	}
}
