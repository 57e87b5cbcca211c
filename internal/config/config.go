// Package config provides YAML-based shooter configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// ShooterConfig contains all tunables of the shooter. Distances are canvas
// pixels, speeds are pixels per frame.
type ShooterConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Hero       HeroConfig       `yaml:"hero"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Stars      StarConfig       `yaml:"stars"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Input      InputConfig      `yaml:"input"`
	Assets     AssetConfig      `yaml:"assets"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig is the size of the drawing surface.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HeroConfig defines the player ship.
type HeroConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// BulletConfig defines the bullet pool.
type BulletConfig struct {
	PoolSize int     `yaml:"pool_size"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	ParkX    float64 `yaml:"park_x"` // position of unused bullets
	ParkY    float64 `yaml:"park_y"`
}

// EnemyConfig defines asteroid spawning.
// Asteroids spawn in a band of SpawnBand pixels right of the canvas.
type EnemyConfig struct {
	Initial     int     `yaml:"initial"`
	MinSize     float64 `yaml:"min_size"`
	SizeRange   float64 `yaml:"size_range"`
	SpawnBand   float64 `yaml:"spawn_band"`
	SpawnYRange float64 `yaml:"spawn_y_range"` // y range at creation, respawns use the canvas height
	MinSpeed    float64 `yaml:"min_speed"`
	SpeedRange  float64 `yaml:"speed_range"`
}

// StarConfig defines the scrolling background.
type StarConfig struct {
	Count       int     `yaml:"count"`
	MinRadius   float64 `yaml:"min_radius"`
	RadiusRange float64 `yaml:"radius_range"`
	MinSpeed    float64 `yaml:"min_speed"`
	SpeedRange  float64 `yaml:"speed_range"`
}

// PowerUpConfig defines power-up spawning and effect duration.
type PowerUpConfig struct {
	SpawnChance float64 `yaml:"spawn_chance"` // per frame
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	DurationMS  int     `yaml:"duration_ms"`
}

// ScoringConfig defines score and level progression.
type ScoringConfig struct {
	KillPoints      int `yaml:"kill_points"`
	LevelEvery      int `yaml:"level_every"`
	EnemiesPerLevel int `yaml:"enemies_per_level"`
}

// InputConfig tunes key handling on terminals, which report no key releases.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"`
}

// AssetConfig points the window front end at sprite and sound files.
// Empty paths fall back to generated placeholders.
type AssetConfig struct {
	Dir string `yaml:"dir"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "level", or "none"
	MaxAt int    `yaml:"max_at"` // Score/level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
}

// ErrInvalidConfig is wrapped by all validation failures.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports the first setting that would make the game unplayable.
func (c ShooterConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Canvas.Width > 0 && c.Canvas.Height > 0, "canvas size must be positive"},
		{c.Hero.Width > 0 && c.Hero.Height > 0, "hero size must be positive"},
		{c.Hero.Speed >= 0, "hero speed must not be negative"},
		{c.Bullets.PoolSize > 0, "bullet pool_size must be positive"},
		{c.Bullets.Speed > 0, "bullet speed must be positive"},
		{c.Enemies.Initial >= 0, "initial enemies must not be negative"},
		{c.Enemies.MinSize > 0, "enemy min_size must be positive"},
		{c.Enemies.MinSpeed >= 0 && c.Enemies.SpeedRange >= 0, "enemy speeds must not be negative"},
		{c.Stars.Count >= 0, "star count must not be negative"},
		{c.PowerUps.SpawnChance >= 0 && c.PowerUps.SpawnChance <= 1, "powerup spawn_chance must be in [0, 1]"},
		{c.PowerUps.DurationMS > 0, "powerup duration_ms must be positive"},
		{c.Scoring.LevelEvery > 0, "scoring level_every must be positive"},
		{c.Scoring.EnemiesPerLevel >= 0, "scoring enemies_per_level must not be negative"},
		{c.Input.HoldMS >= 0, "input hold_ms must not be negative"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.what)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the named presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return "", nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// ModeName returns the score-table mode for a preset.
func ModeName(preset DifficultyPreset) string {
	if preset == "" {
		return "classic"
	}
	return string(preset)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
