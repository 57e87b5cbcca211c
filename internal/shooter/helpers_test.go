package shooter

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// recordSurface logs draw calls as short strings.
type recordSurface struct {
	w, h float64
	ops  []string
}

func (r *recordSurface) Size() (float64, float64) { return r.w, r.h }
func (r *recordSurface) Clear(core.Color) { r.ops = append(r.ops, "clear") }
func (r *recordSurface) FillRect(rc core.Rect, c core.Color) {
	r.ops = append(r.ops, fmt.Sprintf("rect %v,%v", rc.X, rc.Y))
}
func (r *recordSurface) FillCircle(x, y, radius float64, c core.Color) {
	r.ops = append(r.ops, "star")
}
func (r *recordSurface) DrawSprite(s core.Sprite, rc core.Rect) {
	r.ops = append(r.ops, "sprite "+s.String())
}
func (r *recordSurface) DrawText(x, y, size float64, text string, c core.Color) {
	r.ops = append(r.ops, "text "+text)
}
func (r *recordSurface) Dim(alpha float64) { r.ops = append(r.ops, "dim") }

type recordAudio struct{ cues []Cue }

func (r *recordAudio) Play(c Cue) { r.cues = append(r.cues, c) }

func (r *recordAudio) count(c Cue) int {
	n := 0
	for _, x := range r.cues {
		if x == c {
			n++
		}
	}
	return n
}

type recordText struct {
	text   string
	writes int
}

func (r *recordText) SetText(s string) {
	r.text = s
	r.writes++
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fixture struct {
	game    *Game
	surface *recordSurface
	audio   *recordAudio
	score   *recordText
	level   *recordText
	powerUp *recordText
	pause   *recordText
	clock   *fakeClock
}

// quietConfig is a field with no random spawns, so tests place entities by hand.
func quietConfig() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Enemies.Initial = 0
	cfg.Stars.Count = 0
	cfg.PowerUps.SpawnChance = 0
	return cfg
}

func newFixture(t *testing.T, cfg config.ShooterConfig) *fixture {
	t.Helper()
	f := &fixture{
		surface: &recordSurface{w: cfg.Canvas.Width, h: cfg.Canvas.Height},
		audio:   &recordAudio{},
		score:   &recordText{},
		level:   &recordText{},
		powerUp: &recordText{},
		pause:   &recordText{},
		clock:   &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)},
	}
	g, err := New(cfg, core.RuntimeConfig{Seed: 42, TickRate: 60}, Hooks{
		Surface:    f.surface,
		Audio:      f.audio,
		HUD:        HUD{Score: f.score, Level: f.level, PowerUp: f.powerUp},
		PauseLabel: f.pause,
		Now:        f.clock.Now,
	})
	require.NoError(t, err)
	f.game = g
	return f
}

// started returns a running quiet game.
func started(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t, quietConfig())
	f.game.Start()
	return f
}

func (f *fixture) frames(n int) {
	for range n {
		f.game.Frame()
	}
}

// tap presses and releases a key around one frame.
func (f *fixture) tap(k core.Key) {
	f.game.Keys().Press(k)
	f.game.Frame()
	f.game.Keys().Release(k)
}
