package shooter

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

const (
	gameOverText    = "GAME OVER"
	gameOverSize    = 48
	gameOverOffsetX = 140
	shieldPadding   = 5
	dimAlpha        = 0.6
)

// render draws the frame back to front.
func (g *Game) render() {
	s := &g.state
	surf := g.hooks.Surface

	surf.Clear(core.ColorBlack)

	for _, st := range s.Stars {
		surf.FillCircle(st.X, st.Y, st.Radius, core.ColorWhite)
	}

	if s.Alive {
		surf.DrawSprite(core.SpriteHero, s.Hero.Rect())
	}
	if s.Hero.Shield {
		surf.DrawSprite(core.SpriteShield, s.Hero.Rect().Grow(shieldPadding))
	}

	for i := range s.Bullets.Len() {
		if b := s.Bullets.At(i); b.Active() {
			surf.FillRect(b.Rect(), core.ColorYellow)
		}
	}

	for _, e := range s.Enemies {
		if e.Active() {
			surf.DrawSprite(core.SpriteAsteroid, e.Rect())
		}
	}

	for _, p := range s.PowerUps {
		surf.DrawSprite(p.Kind.Sprite(), p.Rect())
	}

	if !s.Alive {
		w, h := g.cfg.Canvas.Width, g.cfg.Canvas.Height
		surf.Dim(dimAlpha)
		surf.DrawText(w/2-gameOverOffsetX, h/2, gameOverSize, gameOverText, core.ColorRed)
	}
}

func (g *Game) refreshHUD() {
	s := &g.state
	g.hooks.HUD.Score.SetText(fmt.Sprintf("Score: %d", s.Score))
	g.hooks.HUD.Level.SetText(fmt.Sprintf("Level: %d", s.Level))
	g.hooks.HUD.PowerUp.SetText("Power-up: " + s.PowerUpLabel)
}
