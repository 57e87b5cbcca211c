package window

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

const sampleRate = 44100

// tone describes a synthesized cue.
type tone struct {
	from, to float64 // frequency sweep in Hz
	length   time.Duration
	noise    bool
	volume   float64
}

var cueTones = map[shooter.Cue]tone{
	shooter.CueShoot:     {from: 880, to: 440, length: 80 * time.Millisecond, volume: 0.25},
	shooter.CueExplosion: {length: 300 * time.Millisecond, noise: true, volume: 0.35},
	shooter.CuePickup:    {from: 660, to: 1320, length: 180 * time.Millisecond, volume: 0.3},
}

// synth renders a tone as 16-bit little-endian stereo PCM with a linear fade out.
func synth(t tone, rng *rand.Rand) []byte {
	n := int(t.length.Seconds() * sampleRate)
	buf := make([]byte, n*4)
	phase := 0.0
	for i := range n {
		p := float64(i) / float64(n)
		var v float64
		if t.noise {
			v = rng.Float64()*2 - 1
		} else {
			freq := t.from + (t.to-t.from)*p
			phase += 2 * math.Pi * freq / sampleRate
			v = math.Sin(phase)
		}
		sample := int16(v * t.volume * (1 - p) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(sample))
	}
	return buf
}

// cueFiles are the sound names looked up in the asset directory.
var cueFiles = map[shooter.Cue]string{
	shooter.CueShoot:     "shoot.wav",
	shooter.CueExplosion: "explosion.wav",
	shooter.CuePickup:    "powerup.wav",
}

// Speaker plays cues. Each cue has one player, restarted from the beginning on every call.
type Speaker struct {
	players map[shooter.Cue]*audio.Player
	logger  *log.Logger
}

// NewSpeaker prepares a player per cue, from dir when a sound file exists there.
func NewSpeaker(ctx *audio.Context, dir string, logger *log.Logger) *Speaker {
	s := &Speaker{
		players: make(map[shooter.Cue]*audio.Player, len(cueTones)),
		logger:  logger,
	}
	rng := rand.New(rand.NewSource(1))
	for cue, t := range cueTones {
		pcm := loadSound(dir, cueFiles[cue], logger)
		if pcm == nil {
			pcm = synth(t, rng)
		}
		s.players[cue] = ctx.NewPlayerFromBytes(pcm)
	}
	return s
}

func loadSound(dir, name string, logger *log.Logger) []byte {
	if dir == "" {
		return nil
	}
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		logger.Debug("sound missing, using synthesized cue", "path", path)
		return nil
	}
	defer f.Close()

	stream, err := wav.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		logger.Warn("cannot decode sound", "path", path, "error", err)
		return nil
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, stream); err != nil {
		logger.Warn("cannot read sound", "path", path, "error", err)
		return nil
	}
	return buf.Bytes()
}

// Play restarts the cue's player.
func (s *Speaker) Play(c shooter.Cue) {
	p, ok := s.players[c]
	if !ok {
		return
	}
	if err := p.SetPosition(0); err != nil {
		s.logger.Debug("cannot rewind cue", "cue", c, "error", err)
	}
	p.Play()
}
