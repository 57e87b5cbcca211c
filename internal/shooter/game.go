package shooter

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Game owns one run of the shooter. All methods must be called from the
// goroutine that drives Frame; input handlers only touch Keys().
type Game struct {
	cfg        config.ShooterConfig
	hooks      Hooks
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	keys       core.KeyState
	state      State
}

// New validates the configuration and hooks and returns a game that waits for Start.
func New(cfg config.ShooterConfig, rt core.RuntimeConfig, hooks Hooks) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("shooter: %w", err)
	}
	if err := hooks.validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		hooks:      hooks,
		rng:        rand.New(rand.NewSource(rt.Seed)),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	g.reset()
	return g, nil
}

// Start re-initialises every collection and begins a run. It also restarts a run in progress.
// A fire press latched before the run is dropped.
func (g *Game) Start() {
	g.reset()
	g.keys.ConsumePress(core.KeyFire)
	g.state.Started = true
	g.state.Paused = false
	g.hooks.PauseLabel.SetText("Pause")
}

// TogglePause flips the paused flag, relabels the pause button and returns the new flag.
// A fire press made while paused is dropped on resume.
func (g *Game) TogglePause() bool {
	g.state.Paused = !g.state.Paused
	if g.state.Paused {
		g.hooks.PauseLabel.SetText("Resume")
	} else {
		g.keys.ConsumePress(core.KeyFire)
		g.hooks.PauseLabel.SetText("Pause")
	}
	return g.state.Paused
}

// Keys returns the input flags read at the top of every frame.
func (g *Game) Keys() *core.KeyState {
	return &g.keys
}

// State reports the run status to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Level:    g.state.Level,
		Started:  g.state.Started,
		GameOver: g.state.Started && !g.state.Alive,
		Paused:   g.state.Paused,
	}
}

// RunState returns the run-level state.
func (g *Game) RunState() RunState {
	return g.state.RunState()
}

// PowerUpLabel returns the label of the last collected power-up, or LabelNone.
func (g *Game) PowerUpLabel() string {
	return g.state.PowerUpLabel
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// reset rebuilds the run state. Started and Paused are left to the caller.
func (g *Game) reset() {
	cfg := g.cfg
	s := &g.state

	s.Hero = Hero{Entity: Entity{
		X: cfg.Hero.X,
		Y: cfg.Hero.Y,
		W: cfg.Hero.Width,
		H: cfg.Hero.Height,
	}}
	if s.Bullets == nil {
		s.Bullets = NewBulletPool(cfg.Bullets.PoolSize, cfg.Bullets.Width, cfg.Bullets.Height,
			cfg.Bullets.ParkX, cfg.Bullets.ParkY)
	} else {
		s.Bullets.Reset()
	}

	s.Enemies = g.newEnemies(cfg.Enemies.Initial, nil)
	s.Stars = g.newStars(cfg.Stars.Count)
	s.PowerUps = nil
	s.Effects = nil

	s.Score = 0
	s.Level = 1
	s.Alive = true
	s.PowerUpLabel = LabelNone
	s.Frame = 0
	s.Paused = false
	s.Started = false
}

// newEnemies appends n fresh asteroids to dst in the spawn band right of the canvas.
func (g *Game) newEnemies(n int, dst []Enemy) []Enemy {
	ec := g.cfg.Enemies
	for range n {
		size := math.Floor(g.rng.Float64()*ec.SizeRange) + ec.MinSize
		dst = append(dst, Enemy{
			X:    g.rng.Float64()*ec.SpawnBand + g.cfg.Canvas.Width,
			Y:    g.rng.Float64() * ec.SpawnYRange,
			W:    size,
			H:    size,
			VX:   -(g.rng.Float64()*ec.SpeedRange + ec.MinSpeed),
			Face: 1,
		})
	}
	return dst
}

func (g *Game) newStars(n int) []Star {
	sc := g.cfg.Stars
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:      g.rng.Float64() * g.cfg.Canvas.Width,
			Y:      g.rng.Float64() * g.cfg.Canvas.Height,
			Radius: g.rng.Float64()*sc.RadiusRange + sc.MinRadius,
			Speed:  g.rng.Float64()*sc.SpeedRange + sc.MinSpeed,
		}
	}
	return stars
}
