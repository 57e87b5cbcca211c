// Package shooter implements the space shooter: entity collections, the
// per-frame updater and its render pass. The package draws through
// core.Surface and reports through the Audio and TextSink hooks, so it runs
// unchanged in a terminal, a window or headless.
package shooter

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Entity is a positioned, sized object with a velocity.
// Face is 1 while the entity is active and visible, 0 when it may be recycled.
type Entity struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
	Face   int
}

// Rect returns the entity's bounding box.
func (e Entity) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Active reports whether the entity is live.
func (e Entity) Active() bool {
	return e.Face == 1
}

// Hero is the player's ship.
type Hero struct {
	Entity
	Shield bool
}

// Enemy is an asteroid. Enemies are recycled in place once they leave the field.
type Enemy = Entity

// Bullet is a pooled projectile.
type Bullet = Entity

// PowerUpKind names a power-up type. The value doubles as the HUD label.
type PowerUpKind string

const (
	PowerUpShield PowerUpKind = "shield"
	PowerUpSlow   PowerUpKind = "slow"
)

// Sprite returns the image used to draw a pending power-up of this kind.
func (k PowerUpKind) Sprite() core.Sprite {
	if k == PowerUpShield {
		return core.SpriteShieldPickup
	}
	return core.SpriteSlowPickup
}

// PowerUp is a collectible drifting towards the hero.
type PowerUp struct {
	Entity
	Kind PowerUpKind
}

// Effect is a collected power-up whose effect is still applied.
type Effect struct {
	Kind  PowerUpKind
	Start time.Time
}

// Star is a background particle. Stars never collide.
type Star struct {
	X, Y   float64
	Radius float64
	Speed  float64
}
