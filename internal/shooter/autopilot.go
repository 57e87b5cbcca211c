package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Autopilot steers the hero for headless runs: it lines up with the
// nearest asteroid ahead, dodges asteroids about to hit, and taps fire.
type Autopilot struct {
	fireEvery int
	tick      int
}

// NewAutopilot creates an autopilot that presses fire every fireEvery frames.
func NewAutopilot(fireEvery int) *Autopilot {
	return &Autopilot{fireEvery: max(fireEvery, 2)}
}

// Drive updates the game's key state for the next frame.
func (a *Autopilot) Drive(g *Game) {
	a.tick++
	keys := g.Keys()
	s := &g.state
	hero := s.Hero

	keys.Release(core.KeyUp)
	keys.Release(core.KeyDown)
	keys.Release(core.KeyLeft)
	keys.Release(core.KeyRight)

	_, heroY := hero.Rect().Center()
	targetY, threat := a.pick(s, g.cfg.Canvas.Width)
	switch {
	case threat && targetY >= heroY:
		keys.Press(core.KeyUp)
	case threat:
		keys.Press(core.KeyDown)
	case targetY > heroY+hero.H/4:
		keys.Press(core.KeyDown)
	case targetY < heroY-hero.H/4:
		keys.Press(core.KeyUp)
	}

	if a.tick%a.fireEvery == 0 {
		keys.Press(core.KeyFire)
	} else {
		keys.Release(core.KeyFire)
	}
}

// pick returns the y to steer towards and whether it is an asteroid to avoid.
func (a *Autopilot) pick(s *State, fieldW float64) (float64, bool) {
	hero := s.Hero.Rect()
	danger := hero.Grow(hero.H)
	danger.W += 60

	nearest := math.Inf(1)
	targetY := hero.Y + hero.H/2
	for _, e := range s.Enemies {
		if !e.Active() || e.X+e.W < hero.X {
			continue
		}
		_, cy := e.Rect().Center()
		if danger.Intersects(e.Rect()) {
			return cy, true
		}
		if e.X < nearest && e.X < fieldW {
			nearest = e.X
			targetY = cy
		}
	}
	return targetY, false
}
