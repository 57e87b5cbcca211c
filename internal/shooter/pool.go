package shooter

// BulletPool is a fixed set of bullets reused round-robin.
// Next never fails: once the cursor wraps it hands out the oldest slot,
// even when that bullet is still in flight.
type BulletPool struct {
	slots  []Bullet
	cursor int
	park   Bullet
}

// NewBulletPool creates size parked bullets of w×h at (parkX, parkY).
func NewBulletPool(size int, w, h, parkX, parkY float64) *BulletPool {
	p := &BulletPool{
		slots: make([]Bullet, size),
		park:  Bullet{X: parkX, Y: parkY, W: w, H: h},
	}
	p.Reset()
	return p
}

// Reset parks every bullet and rewinds the cursor.
func (p *BulletPool) Reset() {
	for i := range p.slots {
		p.slots[i] = p.park
	}
	p.cursor = 0
}

// Next returns the slot under the cursor and advances it.
func (p *BulletPool) Next() *Bullet {
	b := &p.slots[p.cursor]
	p.cursor = (p.cursor + 1) % len(p.slots)
	return b
}

// Len returns the pool capacity.
func (p *BulletPool) Len() int {
	return len(p.slots)
}

// Cursor returns the index Next will hand out.
func (p *BulletPool) Cursor() int {
	return p.cursor
}

// At returns the bullet in slot i.
func (p *BulletPool) At(i int) *Bullet {
	return &p.slots[i]
}

// ActiveCount returns the number of bullets in flight.
func (p *BulletPool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active() {
			n++
		}
	}
	return n
}
