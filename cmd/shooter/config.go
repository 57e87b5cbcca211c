package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the
search path (--config, ~/.shooter/configs/shooter.yaml,
./configs/shooter.yaml, built-in defaults) and --difficulty.

Examples:
  shooter config > ~/.shooter/configs/shooter.yaml
  shooter config --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, _, err := loadPreset()
	if err != nil {
		fail(err)
	}

	data, err := cfg.Marshal()
	if err != nil {
		fail(err)
	}
	fmt.Print(string(data))
}
