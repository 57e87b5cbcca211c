package tui

import (
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

// cueFrames is how long a sound cue stays on the status bar.
const cueFrames = 20

// textNode is a text element the model reads back when drawing its chrome.
type textNode struct {
	text string
}

// SetText replaces the node's text.
func (n *textNode) SetText(text string) {
	n.text = text
}

// hudNodes holds the HUD and button labels the game writes to.
type hudNodes struct {
	score   textNode
	level   textNode
	powerUp textNode
	pause   textNode
}

func newHUDNodes() *hudNodes {
	h := &hudNodes{}
	h.score.SetText("Score: 0")
	h.level.SetText("Level: 1")
	h.powerUp.SetText("Power-up: " + shooter.LabelNone)
	h.pause.SetText("Pause")
	return h
}

func (h *hudNodes) hooks() (shooter.HUD, shooter.TextSink) {
	return shooter.HUD{Score: &h.score, Level: &h.level, PowerUp: &h.powerUp}, &h.pause
}

// cueFlash stands in for audio on terminals: it shows the last cue as text.
type cueFlash struct {
	label  string
	frames int
	played map[shooter.Cue]int
}

var cueLabels = map[shooter.Cue]string{
	shooter.CueShoot:     "*pew*",
	shooter.CueExplosion: "*boom*",
	shooter.CuePickup:    "*ding*",
}

func newCueFlash() *cueFlash {
	return &cueFlash{played: make(map[shooter.Cue]int)}
}

// Play restarts the flash with the new cue.
func (c *cueFlash) Play(cue shooter.Cue) {
	c.label = cueLabels[cue]
	c.frames = cueFrames
	c.played[cue]++
}

// tick ages the flash by one frame.
func (c *cueFlash) tick() {
	if c.frames > 0 {
		c.frames--
		if c.frames == 0 {
			c.label = ""
		}
	}
}
