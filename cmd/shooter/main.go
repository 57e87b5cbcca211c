// shooter is a side-scrolling space shooter for the terminal and the desktop.
//
// Usage:
//
//	shooter play             - Play in the terminal
//	shooter window           - Play in a desktop window
//	shooter menu             - Start menu with difficulty and high scores
//	shooter serve            - Start SSH server for remote play
//	shooter scores           - Show high scores
//	shooter sim              - Run a headless game on autopilot
//	shooter config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.shooter/scores.db)
//	--config <path>        - Use a custom config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-file <path>      - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Space Shooter - dodge and blast asteroids",
	Long: `Space Shooter is a side-scrolling arcade game: fly the ship with the
arrow keys, fire with Space, collect shield and slow-motion power-ups.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Start menu with difficulty and high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a headless game on autopilot
  config   - Print the effective configuration

Examples:
  shooter play
  shooter play --difficulty hard
  shooter window --config ./my-shooter.yaml
  shooter serve --ssh :2222
  shooter sim --frames 3600 --seed 42`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shooter/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom shooter config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints the error the way every command reports it and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// loadShooter loads the config from the search path without applying a preset.
func loadShooter() (config.ShooterConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ShooterConfig{}, "", err
	}
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return config.ShooterConfig{}, "", err
	}
	return cfg, preset, nil
}

// loadPreset loads the config and applies the --difficulty preset.
func loadPreset() (config.ShooterConfig, config.DifficultyPreset, error) {
	cfg, preset, err := loadShooter()
	if err != nil {
		return cfg, preset, err
	}
	config.ApplyShooterPreset(&cfg, preset)
	return cfg, preset, nil
}

// newLogger logs to --log-file, or to fallback when no file is given.
// The returned function closes the file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database; games still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}
