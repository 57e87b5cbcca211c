package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const shooterFile = "shooter.yaml"

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.shooter/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default.
// Files are overlaid on the defaults, so they only need the keys they change.
func LoadShooter(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseShooter(data)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(shooterFile), filepath.Join("configs", shooterFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseShooter(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseShooter(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseShooter overlays YAML on the defaults and validates the result.
func parseShooter(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c ShooterConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the field based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Initial = 12
		cfg.Scoring.EnemiesPerLevel = 3
		cfg.PowerUps.SpawnChance = 0.02
	case DifficultyHard:
		cfg.Enemies.Initial = 30
		cfg.Scoring.EnemiesPerLevel = 8
		cfg.Enemies.MinSpeed = 0.8
		cfg.PowerUps.SpawnChance = 0.005
	}
}

// userConfigPath returns the path in the user's config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", "configs", filename)
}
