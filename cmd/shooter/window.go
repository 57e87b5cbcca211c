package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the shooter in a desktop window.

Sprites and sounds are read from assets.dir in the config
(cute_ship.png, asteroid.png, shield.png, slowmo.png, shoot.wav,
explosion.wav, powerup.wav). Missing files are replaced by
placeholders and synthesized tones.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  Enter        - Start / restart
  P            - Pause / resume
  Esc          - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	shooterCfg, preset, err := loadPreset()
	if err != nil {
		fail(err)
	}

	logger, closeLog, err := newLogger("shooter-window", os.Stderr)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store := openStore(logger)
	rt := runtimeConfig()

	runErr := window.Run(ctx, window.Options{
		Shooter: shooterCfg,
		Runtime: rt,
		Mode:    config.ModeName(preset),
		Store:   store,
		Logger:  logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail(runErr)
	}
}
