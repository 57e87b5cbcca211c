package shooter

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Cue is a sound the game asks the host to play.
type Cue int

const (
	CueShoot Cue = iota
	CueExplosion
	CuePickup
)

// String returns the cue name, also used as its asset file stem.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueExplosion:
		return "explosion"
	case CuePickup:
		return "powerup"
	default:
		return "unknown"
	}
}

// Audio plays cues. Play restarts a cue that is already playing.
type Audio interface {
	Play(c Cue)
}

// AudioFunc adapts a function to Audio.
type AudioFunc func(c Cue)

// Play calls f(c).
func (f AudioFunc) Play(c Cue) { f(c) }

// TextSink receives the full text of a display element.
type TextSink interface {
	SetText(text string)
}

// TextSinkFunc adapts a function to TextSink.
type TextSinkFunc func(text string)

// SetText calls f(text).
func (f TextSinkFunc) SetText(text string) { f(text) }

// HUD holds the three text elements refreshed every live frame.
type HUD struct {
	Score   TextSink
	Level   TextSink
	PowerUp TextSink
}

// Hooks are the host collaborators a Game draws and reports through.
type Hooks struct {
	Surface    core.Surface
	Audio      Audio
	HUD        HUD
	PauseLabel TextSink
	// Now defaults to time.Now.
	Now func() time.Time
}

// ErrMissingHook is returned by New when a required hook is nil.
var ErrMissingHook = errors.New("missing hook")

func (h *Hooks) validate() error {
	required := []struct {
		name string
		ok   bool
	}{
		{"surface", h.Surface != nil},
		{"audio", h.Audio != nil},
		{"score text", h.HUD.Score != nil},
		{"level text", h.HUD.Level != nil},
		{"power-up text", h.HUD.PowerUp != nil},
		{"pause label", h.PauseLabel != nil},
	}
	for _, r := range required {
		if !r.ok {
			return fmt.Errorf("shooter: %w: %s", ErrMissingHook, r.name)
		}
	}
	if h.Now == nil {
		h.Now = time.Now
	}
	return nil
}
