package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseShooter(defaultShooterYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultShooterConfig() {
		t.Errorf("embedded defaults differ from DefaultShooterConfig:\n%+v\n%+v", cfg, DefaultShooterConfig())
	}
}

func TestLoadShooterFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if cfg.Bullets.PoolSize != 150 || cfg.Canvas.Width != 900 {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestLoadShooterSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	writeFile(t, filepath.Join(work, "configs", shooterFile), "enemies:\n  initial: 7\n")
	cfg, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if cfg.Enemies.Initial != 7 {
		t.Errorf("local configs/ should be used, got initial=%d", cfg.Enemies.Initial)
	}

	writeFile(t, filepath.Join(home, ".shooter", "configs", shooterFile), "enemies:\n  initial: 3\n")
	cfg, err = LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if cfg.Enemies.Initial != 3 {
		t.Errorf("user config should win over local, got initial=%d", cfg.Enemies.Initial)
	}
}

func TestLoadShooterCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "hero:\n  speed: 6\npowerups:\n  duration_ms: 2500\n")

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if cfg.Hero.Speed != 6 || cfg.PowerUps.DurationMS != 2500 {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	if cfg.Hero.Width != 70 || cfg.Scoring.KillPoints != 10 {
		t.Errorf("unset values should keep defaults: %+v", cfg)
	}
}

func TestLoadShooterCustomPathErrors(t *testing.T) {
	if _, err := LoadShooter(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "scoring:\n  level_every: 0\n")
	_, err := LoadShooter(bad)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	garbage := filepath.Join(t.TempDir(), "garbage.yaml")
	writeFile(t, garbage, "canvas: [1, 2\n")
	if _, err := LoadShooter(garbage); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
	}{
		{"zero canvas", func(c *ShooterConfig) { c.Canvas.Width = 0 }},
		{"empty pool", func(c *ShooterConfig) { c.Bullets.PoolSize = 0 }},
		{"chance above one", func(c *ShooterConfig) { c.PowerUps.SpawnChance = 1.5 }},
		{"zero duration", func(c *ShooterConfig) { c.PowerUps.DurationMS = 0 }},
		{"negative hold", func(c *ShooterConfig) { c.Input.HoldMS = -1 }},
	}

	if err := DefaultShooterConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyShooterPreset(t *testing.T) {
	cfg := DefaultShooterConfig()
	ApplyShooterPreset(&cfg, "")
	if cfg != DefaultShooterConfig() {
		t.Error("empty preset should leave the config untouched")
	}

	ApplyShooterPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Enemies.Initial != 30 {
		t.Errorf("hard preset initial enemies = %d, want 30", cfg.Enemies.Initial)
	}

	cfg = DefaultShooterConfig()
	ApplyShooterPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePresetAndModeName(t *testing.T) {
	p, err := ParsePreset("easy")
	if err != nil || p != DifficultyEasy {
		t.Errorf("ParsePreset(easy) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("unknown preset should fail")
	}
	if ModeName("") != "classic" || ModeName(DifficultyHard) != "hard" {
		t.Error("unexpected mode names")
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	cfg := DefaultShooterConfig()
	cfg.Hero.Speed = 5
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	path := filepath.Join(t.TempDir(), "dump.yaml")
	writeFile(t, path, string(data))
	loaded, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if loaded != cfg {
		t.Errorf("dumped config did not load back unchanged")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
