package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the hard-coded shooter configuration.
// It matches defaults/shooter.yaml.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Canvas: CanvasConfig{Width: 900, Height: 600},
		Hero: HeroConfig{
			X:      50,
			Y:      260,
			Width:  70,
			Height: 30,
			Speed:  4,
		},
		Bullets: BulletConfig{
			PoolSize: 150,
			Width:    6,
			Height:   3,
			Speed:    8,
			ParkX:    -10,
			ParkY:    -10,
		},
		Enemies: EnemyConfig{
			Initial:     20,
			MinSize:     20,
			SizeRange:   30,
			SpawnBand:   300,
			SpawnYRange: 580,
			MinSpeed:    0.4,
			SpeedRange:  1.0,
		},
		Stars: StarConfig{
			Count:       100,
			MinRadius:   1,
			RadiusRange: 2,
			MinSpeed:    0.5,
			SpeedRange:  1.0,
		},
		PowerUps: PowerUpConfig{
			SpawnChance: 0.01,
			Width:       50,
			Height:      50,
			Speed:       2,
			DurationMS:  5000,
		},
		Scoring: ScoringConfig{
			KillPoints:      10,
			LevelEvery:      100,
			EnemiesPerLevel: 5,
		},
		Input: InputConfig{HoldMS: 180},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}
