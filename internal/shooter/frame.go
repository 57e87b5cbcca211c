package shooter

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Frame advances the run by one display refresh and draws it.
// Hosts call it once per refresh whatever it returns. Before Start and
// while paused it returns at once without touching state or the surface.
// After the hero dies the field keeps moving under the game-over overlay,
// and bullets still in flight keep scoring; only the HUD stops updating.
func (g *Game) Frame() core.StepResult {
	s := &g.state
	if !s.Started || s.Paused {
		return core.StepResult{State: g.State()}
	}

	s.Frame++
	g.expireEffects()
	g.scrollStars()
	g.moveHero()
	g.fire()
	g.moveBullets()
	g.moveEnemies()
	g.spawnPowerUp()
	g.movePowerUps()
	g.collideHero()
	g.collideBullets()
	g.collectPowerUps()

	g.render()
	if s.Alive {
		g.refreshHUD()
	}
	return core.StepResult{State: g.State(), Rendered: true}
}

func (g *Game) expireEffects() {
	s := &g.state
	now := g.hooks.Now()
	window := time.Duration(g.cfg.PowerUps.DurationMS) * time.Millisecond

	kept := s.Effects[:0]
	for _, e := range s.Effects {
		if now.Sub(e.Start) < window {
			kept = append(kept, e)
			continue
		}
		switch e.Kind {
		case PowerUpSlow:
			g.scaleEnemySpeed(2)
		case PowerUpShield:
			s.Hero.Shield = false
		}
		s.PowerUpLabel = LabelNone
	}
	s.Effects = kept
}

func (g *Game) scrollStars() {
	for i := range g.state.Stars {
		st := &g.state.Stars[i]
		st.X -= st.Speed
		if st.X < 0 {
			st.X = g.cfg.Canvas.Width
			st.Y = g.rng.Float64() * g.cfg.Canvas.Height
		}
	}
}

func (g *Game) moveHero() {
	h := &g.state.Hero
	speed := g.cfg.Hero.Speed

	switch {
	case g.keys.Held(core.KeyRight):
		h.VX = speed
	case g.keys.Held(core.KeyLeft):
		h.VX = -speed
	default:
		h.VX = 0
	}
	switch {
	case g.keys.Held(core.KeyDown):
		h.VY = speed
	case g.keys.Held(core.KeyUp):
		h.VY = -speed
	default:
		h.VY = 0
	}

	h.X = core.ClampF(h.X+h.VX, 0, g.cfg.Canvas.Width-h.W)
	h.Y = core.ClampF(h.Y+h.VY, 0, g.cfg.Canvas.Height-h.H)
}

// fire launches one bullet per press of the fire key.
func (g *Game) fire() {
	if !g.keys.ConsumePress(core.KeyFire) {
		return
	}
	h := g.state.Hero
	b := g.state.Bullets.Next()
	b.VX = g.cfg.Bullets.Speed
	b.X = h.X + h.W
	b.Y = h.Y + h.H/2
	b.Face = 1
	g.hooks.Audio.Play(CueShoot)
}

func (g *Game) moveBullets() {
	pool := g.state.Bullets
	for i := range pool.Len() {
		b := pool.At(i)
		if !b.Active() {
			continue
		}
		b.X += b.VX
		if b.X > g.cfg.Canvas.Width {
			b.Face = 0
		}
	}
}

func (g *Game) moveEnemies() {
	ec := g.cfg.Enemies
	for i := range g.state.Enemies {
		e := &g.state.Enemies[i]
		if !e.Active() {
			continue
		}
		e.X += e.VX
		if e.X < -e.W {
			e.X = g.rng.Float64()*ec.SpawnBand + g.cfg.Canvas.Width
			e.Y = g.rng.Float64() * g.cfg.Canvas.Height
		}
	}
}

func (g *Game) spawnPowerUp() {
	pc := g.cfg.PowerUps
	if g.rng.Float64() >= pc.SpawnChance {
		return
	}
	kind := PowerUpSlow
	if g.rng.Float64() < 0.5 {
		kind = PowerUpShield
	}
	g.state.PowerUps = append(g.state.PowerUps, PowerUp{
		Entity: Entity{
			X:    g.cfg.Canvas.Width,
			Y:    g.rng.Float64() * g.cfg.Canvas.Height,
			W:    pc.Width,
			H:    pc.Height,
			VX:   -pc.Speed,
			Face: 1,
		},
		Kind: kind,
	})
}

func (g *Game) movePowerUps() {
	for i := range g.state.PowerUps {
		g.state.PowerUps[i].X += g.state.PowerUps[i].VX
	}
}

// collideHero plays one explosion per overlapping enemy.
func (g *Game) collideHero() {
	s := &g.state
	hero := s.Hero.Rect()
	for i := range s.Enemies {
		e := s.Enemies[i]
		if !e.Active() || !hero.Intersects(e.Rect()) {
			continue
		}
		if !s.Hero.Shield {
			s.Alive = false
			g.hooks.Audio.Play(CueExplosion)
		}
	}
}

// collideBullets kills each active enemy hit by an active bullet. Every
// bullet overlapping the enemy is spent and scores. Enemies appended by a
// level-up join the test on the next frame.
func (g *Game) collideBullets() {
	s := &g.state
	sc := g.cfg.Scoring
	n := len(s.Enemies)
	for i := range n {
		if !s.Enemies[i].Active() {
			continue
		}
		hit := s.Enemies[i].Rect()
		for j := range s.Bullets.Len() {
			b := s.Bullets.At(j)
			if !b.Active() || !b.Rect().Intersects(hit) {
				continue
			}
			// levelUp may grow the slice, so index it afresh.
			s.Enemies[i].Face = 0
			b.Face = 0
			g.hooks.Audio.Play(CueExplosion)
			s.Score += sc.KillPoints
			if s.Score%sc.LevelEvery == 0 {
				s.Level++
				g.levelUp(sc.EnemiesPerLevel)
			}
		}
	}
}

// levelUp appends n enemies, sped up by the difficulty progression.
func (g *Game) levelUp(n int) {
	s := &g.state
	start := len(s.Enemies)
	s.Enemies = g.newEnemies(n, s.Enemies)
	for i := start; i < len(s.Enemies); i++ {
		s.Enemies[i].VX = g.difficulty.Speed(s.Enemies[i].VX, s.Score, s.Level)
	}
}

func (g *Game) collectPowerUps() {
	s := &g.state
	hero := s.Hero.Rect()
	kept := s.PowerUps[:0]
	for _, p := range s.PowerUps {
		if hero.Intersects(p.Rect()) {
			g.applyPowerUp(p.Kind)
			continue
		}
		if p.X > -p.W {
			kept = append(kept, p)
		}
	}
	s.PowerUps = kept
}

func (g *Game) applyPowerUp(kind PowerUpKind) {
	s := &g.state
	s.PowerUpLabel = string(kind)
	g.hooks.Audio.Play(CuePickup)
	switch kind {
	case PowerUpShield:
		s.Hero.Shield = true
	case PowerUpSlow:
		g.scaleEnemySpeed(0.5)
	}
	s.Effects = append(s.Effects, Effect{Kind: kind, Start: g.hooks.Now()})
}

// scaleEnemySpeed multiplies the speed of every enemy, active or not.
func (g *Game) scaleEnemySpeed(f float64) {
	for i := range g.state.Enemies {
		g.state.Enemies[i].VX *= f
	}
}
