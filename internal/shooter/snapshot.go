package shooter

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

// Snapshot captures the run for determinism testing and reports.
type Snapshot struct {
	Frame         uint64
	State         RunState
	Score         int
	Level         int
	Label         string
	HeroX         float64
	HeroY         float64
	Shield        bool
	BulletCursor  int
	ActiveBullets int
	Enemies       int
	ActiveEnemies int
	PowerUps      int
	Effects       int
	// Positions is a checksum over every entity position and velocity.
	Positions uint64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := &g.state
	active := 0
	for _, e := range s.Enemies {
		if e.Active() {
			active++
		}
	}
	return Snapshot{
		Frame:         s.Frame,
		State:         s.RunState(),
		Score:         s.Score,
		Level:         s.Level,
		Label:         s.PowerUpLabel,
		HeroX:         s.Hero.X,
		HeroY:         s.Hero.Y,
		Shield:        s.Hero.Shield,
		BulletCursor:  s.Bullets.Cursor(),
		ActiveBullets: s.Bullets.ActiveCount(),
		Enemies:       len(s.Enemies),
		ActiveEnemies: active,
		PowerUps:      len(s.PowerUps),
		Effects:       len(s.Effects),
		Positions:     g.positionSum(),
	}
}

// Hash condenses the snapshot into one value.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%+v", s)
	return h.Sum64()
}

func (g *Game) positionSum() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(vs ...float64) {
		for _, v := range vs {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			h.Write(buf[:])
		}
	}

	s := &g.state
	put(s.Hero.X, s.Hero.Y)
	for i := range s.Bullets.Len() {
		b := s.Bullets.At(i)
		put(b.X, b.Y, float64(b.Face))
	}
	for _, e := range s.Enemies {
		put(e.X, e.Y, e.W, e.VX, float64(e.Face))
	}
	for _, p := range s.PowerUps {
		put(p.X, p.Y)
	}
	for _, st := range s.Stars {
		put(st.X, st.Y)
	}
	return h.Sum64()
}
