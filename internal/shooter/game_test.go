package shooter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestNewRejectsMissingHooks(t *testing.T) {
	_, err := New(config.DefaultShooterConfig(), core.DefaultConfig(), Hooks{})
	require.ErrorIs(t, err, ErrMissingHook)

	f := newFixture(t, quietConfig())
	hooks := f.game.hooks
	hooks.PauseLabel = nil
	_, err = New(config.DefaultShooterConfig(), core.DefaultConfig(), hooks)
	require.ErrorIs(t, err, ErrMissingHook)
	assert.Contains(t, err.Error(), "pause label")
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	f := newFixture(t, quietConfig())
	cfg := config.DefaultShooterConfig()
	cfg.Bullets.PoolSize = 0

	_, err := New(cfg, core.DefaultConfig(), f.game.hooks)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestGameNotStartedDoesNothing(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig())
	before := f.game.Snapshot()

	for range 10 {
		res := f.game.Frame()
		assert.False(t, res.Rendered)
	}

	assert.Equal(t, RunNotStarted, f.game.RunState())
	assert.Equal(t, before, f.game.Snapshot())
	assert.Empty(t, f.surface.ops)
	assert.Zero(t, f.score.writes)
}

func TestGamePausedFreezes(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig())
	f.game.Start()
	f.frames(5)

	require.True(t, f.game.TogglePause())
	assert.Equal(t, "Resume", f.pause.text)
	assert.Equal(t, RunPaused, f.game.RunState())

	before := f.game.Snapshot()
	ops := len(f.surface.ops)
	writes := f.score.writes
	f.game.Keys().Press(core.KeyRight)
	f.game.Keys().Press(core.KeyFire)

	for range 30 {
		res := f.game.Frame()
		assert.False(t, res.Rendered)
		assert.True(t, res.State.Paused)
	}

	assert.Equal(t, before, f.game.Snapshot())
	assert.Len(t, f.surface.ops, ops)
	assert.Equal(t, writes, f.score.writes)

	require.False(t, f.game.TogglePause())
	assert.Equal(t, "Pause", f.pause.text)
	assert.True(t, f.game.Frame().Rendered)
}

func TestGameHeroClampedToCanvas(t *testing.T) {
	f := started(t)
	keys := f.game.Keys()
	keys.Press(core.KeyRight)
	keys.Press(core.KeyDown)

	for range 300 {
		f.game.Frame()
		h := f.game.state.Hero
		require.True(t, h.X >= 0 && h.X <= 900-70, "hero x out of bounds: %v", h.X)
		require.True(t, h.Y >= 0 && h.Y <= 600-30, "hero y out of bounds: %v", h.Y)
	}
	assert.Equal(t, 830.0, f.game.state.Hero.X)
	assert.Equal(t, 570.0, f.game.state.Hero.Y)

	keys.Release(core.KeyRight)
	keys.Release(core.KeyDown)
	keys.Press(core.KeyLeft)
	keys.Press(core.KeyUp)
	f.frames(300)
	assert.Equal(t, 0.0, f.game.state.Hero.X)
	assert.Equal(t, 0.0, f.game.state.Hero.Y)
}

func TestGameOpposingKeysPrecedence(t *testing.T) {
	f := started(t)
	keys := f.game.Keys()
	keys.Press(core.KeyLeft)
	keys.Press(core.KeyRight)
	keys.Press(core.KeyUp)
	keys.Press(core.KeyDown)

	f.game.Frame()

	// Right beats left, down beats up.
	assert.Equal(t, 54.0, f.game.state.Hero.X)
	assert.Equal(t, 264.0, f.game.state.Hero.Y)
}

func TestGameFireOncePerPress(t *testing.T) {
	f := started(t)
	f.game.Keys().Press(core.KeyFire)
	f.game.Frame()

	require.Equal(t, 1, f.audio.count(CueShoot))
	b := f.game.state.Bullets.At(0)
	assert.True(t, b.Active())
	// Launched from the hero's leading edge, then moved once.
	assert.Equal(t, 50.0+70+8, b.X)
	assert.Equal(t, 260.0+15, b.Y)

	// Holding the key does not fire again.
	f.game.Keys().Press(core.KeyFire)
	f.frames(10)
	assert.Equal(t, 1, f.audio.count(CueShoot))
	assert.Equal(t, 1, f.game.state.Bullets.Cursor())

	f.game.Keys().Release(core.KeyFire)
	f.tap(core.KeyFire)
	assert.Equal(t, 2, f.audio.count(CueShoot))
	assert.Equal(t, 2, f.game.state.Bullets.Cursor())
}

func TestGameBulletsDeactivatePastRightEdge(t *testing.T) {
	f := started(t)
	f.tap(core.KeyFire)

	for range 200 {
		f.game.Frame()
		pool := f.game.state.Bullets
		for i := range pool.Len() {
			if b := pool.At(i); b.Active() {
				require.LessOrEqual(t, b.X, 900.0)
			}
		}
	}
	assert.Zero(t, f.game.state.Bullets.ActiveCount())
}

func TestGameBulletPoolWrapOverridesActive(t *testing.T) {
	cfg := quietConfig()
	cfg.Bullets.PoolSize = 3
	f := newFixture(t, cfg)
	f.game.Start()

	for range 5 {
		f.tap(core.KeyFire)
		require.LessOrEqual(t, f.game.state.Bullets.ActiveCount(), 3)
	}

	assert.Equal(t, 5, f.audio.count(CueShoot))
	assert.Equal(t, 2, f.game.state.Bullets.Cursor())
	// Slot 0 was refired by the fourth shot and has moved one more frame since.
	assert.Equal(t, 50.0+70+16, f.game.state.Bullets.At(0).X)
}

func TestGameHeroDiesOnContact(t *testing.T) {
	f := started(t)
	f.game.state.Enemies = []Enemy{{X: 55, Y: 262, W: 30, H: 30, Face: 1}}

	res := f.game.Frame()

	assert.False(t, f.game.state.Alive)
	assert.True(t, res.State.GameOver)
	assert.Equal(t, RunGameOver, f.game.RunState())
	assert.Equal(t, 1, f.audio.count(CueExplosion))

	assert.NotContains(t, f.surface.ops, "sprite hero")
	assert.Contains(t, f.surface.ops, "dim")
	assert.Equal(t, "text GAME OVER", f.surface.ops[len(f.surface.ops)-1])
	assert.Zero(t, f.score.writes, "HUD must not refresh on a game-over frame")
}

func TestGameCollisionCueNotDeduplicated(t *testing.T) {
	f := started(t)
	f.game.state.Enemies = []Enemy{
		{X: 55, Y: 262, W: 30, H: 30, Face: 1},
		{X: 90, Y: 265, W: 20, H: 20, Face: 1},
		{X: 60, Y: 262, W: 30, H: 30, Face: 0},
	}

	f.game.Frame()

	assert.Equal(t, 2, f.audio.count(CueExplosion))
}

func TestGameOverFieldKeepsMoving(t *testing.T) {
	f := started(t)
	f.game.state.Enemies = []Enemy{
		{X: 55, Y: 262, W: 30, H: 30, VX: -1, Face: 1},
		{X: 500, Y: 100, W: 30, H: 30, VX: -1, Face: 1},
	}
	*f.game.state.Bullets.At(0) = Bullet{X: 400, Y: 110, W: 6, H: 3, VX: 8, Face: 1}

	f.game.Frame()
	require.False(t, f.game.state.Alive)
	require.Equal(t, RunGameOver, f.game.RunState())

	f.surface.ops = nil
	for range 20 {
		assert.True(t, f.game.Frame().Rendered)
	}

	// The bullet in flight meets the second enemy and still scores.
	assert.Equal(t, 10, f.game.state.Score)
	assert.False(t, f.game.state.Enemies[1].Active())
	assert.False(t, f.game.state.Bullets.At(0).Active())
	assert.Equal(t, 55.0-21, f.game.state.Enemies[0].X)
	assert.Equal(t, uint64(21), f.game.Snapshot().Frame)

	// Only the HUD stops updating.
	assert.Zero(t, f.score.writes)
	assert.Contains(t, f.surface.ops, "dim")
	assert.True(t, f.game.State().GameOver)
}

func TestGameBulletsShareOneEnemy(t *testing.T) {
	f := started(t)
	f.game.state.Enemies = []Enemy{
		{X: 300, Y: 270, W: 30, H: 30, Face: 1},
		{X: 300, Y: 270, W: 30, H: 30, Face: 1},
	}
	*f.game.state.Bullets.At(0) = Bullet{X: 300, Y: 280, W: 6, H: 3, Face: 1}
	*f.game.state.Bullets.At(1) = Bullet{X: 305, Y: 285, W: 6, H: 3, Face: 1}

	f.game.Frame()

	assert.Equal(t, 20, f.game.state.Score)
	assert.False(t, f.game.state.Bullets.At(0).Active())
	assert.False(t, f.game.state.Bullets.At(1).Active())
	assert.Equal(t, 2, f.audio.count(CueExplosion))
	assert.False(t, f.game.state.Enemies[0].Active())
	// Both bullets were spent on the first enemy.
	assert.True(t, f.game.state.Enemies[1].Active())
}

func TestGameDropsFirePressBeforeStart(t *testing.T) {
	f := newFixture(t, quietConfig())
	f.game.Keys().Press(core.KeyFire)
	f.game.Frame()

	f.game.Start()
	f.game.Frame()
	assert.Zero(t, f.audio.count(CueShoot))
	assert.Zero(t, f.game.state.Bullets.Cursor())

	f.game.Keys().Release(core.KeyFire)
	f.tap(core.KeyFire)
	assert.Equal(t, 1, f.audio.count(CueShoot))
}

func TestGameDropsFirePressWhilePaused(t *testing.T) {
	f := started(t)
	f.game.Frame()
	require.True(t, f.game.TogglePause())

	f.game.Keys().Press(core.KeyFire)
	f.game.Frame()
	require.False(t, f.game.TogglePause())
	f.game.Frame()

	assert.Zero(t, f.audio.count(CueShoot))
}

func TestGameBulletKillScores(t *testing.T) {
	f := started(t)
	f.game.state.Enemies = []Enemy{{X: 300, Y: 270, W: 30, H: 30, Face: 1}}
	*f.game.state.Bullets.At(0) = Bullet{X: 300, Y: 280, W: 6, H: 3, Face: 1}

	f.game.Frame()

	assert.Equal(t, 10, f.game.state.Score)
	assert.Equal(t, 1, f.game.state.Level)
	assert.Len(t, f.game.state.Enemies, 1)
	assert.False(t, f.game.state.Enemies[0].Active())
	assert.False(t, f.game.state.Bullets.At(0).Active())
	assert.Equal(t, 1, f.audio.count(CueExplosion))
	assert.Equal(t, "Score: 10", f.score.text)

	// Killed enemies stay down and are no longer drawn.
	f.surface.ops = nil
	f.game.Frame()
	assert.NotContains(t, f.surface.ops, "sprite asteroid")
}

func TestGameLevelUpAtHundred(t *testing.T) {
	f := started(t)
	f.game.state.Score = 90
	f.game.state.Enemies = []Enemy{{X: 300, Y: 270, W: 30, H: 30, Face: 1}}
	*f.game.state.Bullets.At(0) = Bullet{X: 300, Y: 280, W: 6, H: 3, Face: 1}

	f.game.Frame()

	assert.Equal(t, 100, f.game.state.Score)
	assert.Equal(t, 2, f.game.state.Level)
	require.Len(t, f.game.state.Enemies, 6)
	for _, e := range f.game.state.Enemies[1:] {
		assert.True(t, e.Active())
		assert.GreaterOrEqual(t, e.X, 900.0)
		assert.Less(t, e.X, 1200.0)
		assert.Equal(t, e.W, e.H)
	}
	assert.Equal(t, "Level: 2", f.level.text)
}

func TestGameLevelUpEnemiesFollowDifficulty(t *testing.T) {
	cfg := quietConfig()
	cfg.Difficulty = config.DifficultyConfig{
		Enabled:     true,
		Progression: config.ProgressionConfig{Type: "level", MaxAt: 1},
		Scaling:     config.ScalingConfig{SpeedMultiplier: 1},
	}
	f := newFixture(t, cfg)
	f.game.Start()
	f.game.state.Score = 90
	f.game.state.Enemies = []Enemy{{X: 300, Y: 270, W: 30, H: 30, Face: 1}}
	*f.game.state.Bullets.At(0) = Bullet{X: 300, Y: 280, W: 6, H: 3, Face: 1}

	f.game.Frame()

	require.Len(t, f.game.state.Enemies, 6)
	for _, e := range f.game.state.Enemies[1:] {
		// Base speed in [0.4, 1.4) doubled at full difficulty.
		assert.LessOrEqual(t, e.VX, -0.8)
		assert.Greater(t, e.VX, -2.8)
	}
}

func TestGameEnemyRespawnsRightOfField(t *testing.T) {
	f := started(t)
	f.game.state.Enemies = []Enemy{{X: -25, Y: 100, W: 30, H: 30, VX: -10, Face: 1}}

	f.game.Frame()

	e := f.game.state.Enemies[0]
	assert.True(t, e.Active())
	assert.GreaterOrEqual(t, e.X, 900.0)
	assert.Less(t, e.X, 1200.0)
	assert.GreaterOrEqual(t, e.Y, 0.0)
	assert.Less(t, e.Y, 600.0)
	assert.Equal(t, -10.0, e.VX)
}

func TestGameStarsWrap(t *testing.T) {
	f := started(t)
	f.game.state.Stars = []Star{{X: 0.2, Y: 10, Radius: 1, Speed: 0.5}}

	f.game.Frame()

	st := f.game.state.Stars[0]
	assert.Equal(t, 900.0, st.X)
	assert.GreaterOrEqual(t, st.Y, 0.0)
	assert.Less(t, st.Y, 600.0)
}

func TestGamePowerUpSpawnAndDrift(t *testing.T) {
	cfg := quietConfig()
	cfg.PowerUps.SpawnChance = 1
	f := newFixture(t, cfg)
	f.game.Start()

	f.game.Frame()
	require.Len(t, f.game.state.PowerUps, 1)
	p := f.game.state.PowerUps[0]
	assert.Equal(t, 898.0, p.X)
	assert.Equal(t, -2.0, p.VX)
	assert.Equal(t, 50.0, p.W)
	assert.Contains(t, []PowerUpKind{PowerUpShield, PowerUpSlow}, p.Kind)

	f.frames(9)
	assert.Len(t, f.game.state.PowerUps, 10)
}

func TestGamePowerUpsDropPastLeftEdge(t *testing.T) {
	f := started(t)
	f.game.state.PowerUps = []PowerUp{
		{Entity: Entity{X: -49, Y: 500, W: 50, H: 50, VX: -2, Face: 1}, Kind: PowerUpSlow},
		{Entity: Entity{X: -47, Y: 500, W: 50, H: 50, VX: -2, Face: 1}, Kind: PowerUpShield},
	}

	f.game.Frame()

	require.Len(t, f.game.state.PowerUps, 1)
	assert.Equal(t, PowerUpShield, f.game.state.PowerUps[0].Kind)
	assert.Zero(t, f.audio.count(CuePickup))
}

func TestGameShieldExpiresAfterWindow(t *testing.T) {
	f := started(t)
	f.game.state.PowerUps = []PowerUp{
		{Entity: Entity{X: 60, Y: 265, W: 50, H: 50, Face: 1}, Kind: PowerUpShield},
	}

	f.game.Frame()
	require.True(t, f.game.state.Hero.Shield)
	assert.Empty(t, f.game.state.PowerUps)
	assert.Equal(t, "shield", f.game.PowerUpLabel())
	assert.Equal(t, "Power-up: shield", f.powerUp.text)
	assert.Equal(t, 1, f.audio.count(CuePickup))
	assert.Contains(t, f.surface.ops, "sprite shield")

	// An asteroid parked on the hero cannot hurt it while the shield lasts.
	f.game.state.Enemies = []Enemy{{X: 55, Y: 262, W: 30, H: 30, Face: 1}}
	f.game.Frame()
	f.clock.Advance(4999 * time.Millisecond)
	f.game.Frame()
	assert.True(t, f.game.state.Alive)
	assert.Zero(t, f.audio.count(CueExplosion))

	f.clock.Advance(time.Millisecond)
	f.game.Frame()
	assert.False(t, f.game.state.Hero.Shield)
	assert.Equal(t, LabelNone, f.game.PowerUpLabel())
	assert.False(t, f.game.state.Alive)
	assert.Equal(t, 1, f.audio.count(CueExplosion))
}

func TestGameSlowHalvesThenRestores(t *testing.T) {
	f := started(t)
	f.game.state.Enemies = []Enemy{
		{X: 500, Y: 100, W: 30, H: 30, VX: -1, Face: 1},
		{X: 600, Y: 100, W: 30, H: 30, VX: -1, Face: 0},
	}
	f.game.state.PowerUps = []PowerUp{
		{Entity: Entity{X: 60, Y: 265, W: 50, H: 50, Face: 1}, Kind: PowerUpSlow},
	}

	f.game.Frame()
	assert.Equal(t, -0.5, f.game.state.Enemies[0].VX)
	assert.Equal(t, -0.5, f.game.state.Enemies[1].VX)
	assert.Equal(t, "slow", f.game.PowerUpLabel())
	require.Len(t, f.game.state.Effects, 1)

	f.clock.Advance(5 * time.Second)
	f.game.Frame()
	assert.Equal(t, -1.0, f.game.state.Enemies[0].VX)
	assert.Equal(t, -1.0, f.game.state.Enemies[1].VX)
	assert.Equal(t, 498.0, f.game.state.Enemies[0].X)
	assert.Empty(t, f.game.state.Effects)
	assert.Equal(t, "Power-up: None", f.powerUp.text)
}

func TestGameEffectsTimedIndependently(t *testing.T) {
	f := started(t)
	f.game.state.PowerUps = []PowerUp{
		{Entity: Entity{X: 60, Y: 265, W: 50, H: 50, Face: 1}, Kind: PowerUpShield},
	}
	f.game.Frame()

	f.clock.Advance(3 * time.Second)
	f.game.state.PowerUps = []PowerUp{
		{Entity: Entity{X: 60, Y: 265, W: 50, H: 50, Face: 1}, Kind: PowerUpSlow},
	}
	f.game.Frame()
	require.Len(t, f.game.state.Effects, 2)

	f.clock.Advance(2 * time.Second)
	f.game.Frame()
	assert.False(t, f.game.state.Hero.Shield)
	require.Len(t, f.game.state.Effects, 1)
	assert.Equal(t, PowerUpSlow, f.game.state.Effects[0].Kind)
	// The label resets even though slow is still active.
	assert.Equal(t, LabelNone, f.game.PowerUpLabel())
}

func TestGameRenderOrder(t *testing.T) {
	f := started(t)
	s := &f.game.state
	s.Stars = []Star{{X: 100, Y: 10, Radius: 1, Speed: 0}}
	s.Hero.Shield = true
	*s.Bullets.At(0) = Bullet{X: 400, Y: 100, W: 6, H: 3, Face: 1}
	s.Enemies = []Enemy{{X: 600, Y: 300, W: 30, H: 30, Face: 1}}
	s.PowerUps = []PowerUp{{Entity: Entity{X: 700, Y: 500, W: 50, H: 50, Face: 1}, Kind: PowerUpSlow}}

	f.game.Frame()

	assert.Equal(t, []string{
		"clear",
		"star",
		"sprite hero",
		"sprite shield",
		"rect 400,100",
		"sprite asteroid",
		"sprite powerup_slow",
	}, f.surface.ops)
	assert.Equal(t, "Score: 0", f.score.text)
	assert.Equal(t, "Level: 1", f.level.text)
	assert.Equal(t, "Power-up: None", f.powerUp.text)
}

func TestGameStartReinitialises(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig())
	f.game.Start()
	f.game.TogglePause()
	f.game.state.Score = 250
	f.game.state.Level = 3
	f.game.state.Alive = false
	f.game.state.Hero.Shield = true
	f.game.state.PowerUpLabel = "slow"
	f.game.state.Bullets.Next()

	f.game.Start()

	s := f.game.state
	assert.Equal(t, RunRunning, s.RunState())
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 1, s.Level)
	assert.True(t, s.Alive)
	assert.False(t, s.Hero.Shield)
	assert.Equal(t, LabelNone, s.PowerUpLabel)
	assert.Equal(t, 0, s.Bullets.Cursor())
	assert.Len(t, s.Enemies, 20)
	assert.Len(t, s.Stars, 100)
	assert.Empty(t, s.PowerUps)
	assert.Equal(t, "Pause", f.pause.text)
}

func TestGameInitialEnemies(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig())
	f.game.Start()

	for _, e := range f.game.state.Enemies {
		assert.True(t, e.Active())
		assert.GreaterOrEqual(t, e.W, 20.0)
		assert.Less(t, e.W, 50.0)
		assert.GreaterOrEqual(t, e.Y, 0.0)
		assert.Less(t, e.Y, 580.0)
		assert.LessOrEqual(t, e.VX, -0.4)
		assert.Greater(t, e.VX, -1.4)
	}
}

func TestGameDeterministic(t *testing.T) {
	run := func() Snapshot {
		f := newFixture(t, config.DefaultShooterConfig())
		f.game.Start()
		pilot := NewAutopilot(8)
		for range 600 {
			pilot.Drive(f.game)
			f.game.Frame()
		}
		return f.game.Snapshot()
	}

	a, b := run(), run()
	assert.Equal(t, a, b)
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestSnapshotHashTracksState(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig())
	f.game.Start()
	before := f.game.Snapshot().Hash()

	f.game.Frame()

	assert.NotEqual(t, before, f.game.Snapshot().Hash())
}

func TestAutopilotFiresAndScores(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig())
	f.game.Start()
	pilot := NewAutopilot(6)

	for range 3000 {
		if !f.game.state.Alive {
			break
		}
		pilot.Drive(f.game)
		f.game.Frame()
	}

	assert.Positive(t, f.audio.count(CueShoot))
	assert.Positive(t, f.game.Snapshot().Frame)
}
