package core

import "math"

// Sprite identifies an image the game asks a Surface to draw.
type Sprite int

const (
	SpriteHero Sprite = iota
	SpriteShield
	SpriteAsteroid
	SpriteShieldPickup
	SpriteSlowPickup
)

// String returns the sprite name, also used as its asset file stem.
func (s Sprite) String() string {
	switch s {
	case SpriteHero:
		return "hero"
	case SpriteShield:
		return "shield"
	case SpriteAsteroid:
		return "asteroid"
	case SpriteShieldPickup:
		return "powerup_shield"
	case SpriteSlowPickup:
		return "powerup_slow"
	default:
		return "unknown"
	}
}

// Surface is a 2D drawing target addressed in canvas pixels.
// Text is positioned by its baseline, the way a canvas fillText call is.
type Surface interface {
	Size() (w, h float64)
	Clear(c Color)
	FillRect(r Rect, c Color)
	FillCircle(x, y, radius float64, c Color)
	DrawSprite(s Sprite, r Rect)
	DrawText(x, y, size float64, text string, c Color)
	// Dim darkens everything drawn so far. alpha is in [0, 1].
	Dim(alpha float64)
}

// Glyph is how a sprite appears on a character grid.
type Glyph struct {
	Rune  rune
	Color Color
	// Outline draws only the border cells of the sprite rect.
	Outline bool
}

// DefaultGlyphs returns the glyphs used by CellSurface unless overridden.
func DefaultGlyphs() map[Sprite]Glyph {
	return map[Sprite]Glyph{
		SpriteHero:         {Rune: '▶', Color: ColorBrightCyan},
		SpriteShield:       {Rune: '○', Color: ColorCyan, Outline: true},
		SpriteAsteroid:     {Rune: '@', Color: ColorOrange},
		SpriteShieldPickup: {Rune: 'S', Color: ColorBrightBlue},
		SpriteSlowPickup:   {Rune: 'Z', Color: ColorBrightMagenta},
	}
}

// CellSurface rasterises canvas drawing onto a region of a Screen.
// Canvas coordinates are scaled to the region, every shape covers at least one cell.
type CellSurface struct {
	screen  *Screen
	canvasW float64
	canvasH float64

	originX, originY int
	cols, rows       int

	glyphs map[Sprite]Glyph
}

// NewCellSurface creates a surface for a canvas of the given size covering the whole screen.
func NewCellSurface(screen *Screen, canvasW, canvasH float64) *CellSurface {
	return &CellSurface{
		screen:  screen,
		canvasW: canvasW,
		canvasH: canvasH,
		cols:    screen.Width(),
		rows:    screen.Height(),
		glyphs:  DefaultGlyphs(),
	}
}

// SetViewport restricts drawing to the cell region starting at (x, y).
func (s *CellSurface) SetViewport(x, y, cols, rows int) {
	s.originX, s.originY = x, y
	s.cols, s.rows = max(cols, 1), max(rows, 1)
}

// SetGlyph overrides how a sprite is drawn.
func (s *CellSurface) SetGlyph(sp Sprite, g Glyph) {
	s.glyphs[sp] = g
}

// Screen returns the target buffer.
func (s *CellSurface) Screen() *Screen {
	return s.screen
}

// Size returns the canvas size in pixels.
func (s *CellSurface) Size() (float64, float64) {
	return s.canvasW, s.canvasH
}

func (s *CellSurface) scaleX() float64 { return float64(s.cols) / s.canvasW }
func (s *CellSurface) scaleY() float64 { return float64(s.rows) / s.canvasH }

// cellRect maps a canvas rect to a half-open cell range clipped to the viewport.
func (s *CellSurface) cellRect(r Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X * s.scaleX()))
	y0 = int(math.Floor(r.Y * s.scaleY()))
	x1 = int(math.Ceil(r.Right() * s.scaleX()))
	y1 = int(math.Ceil(r.Bottom() * s.scaleY()))
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	x0 = Clamp(x0, 0, s.cols)
	x1 = Clamp(x1, 0, s.cols)
	y0 = Clamp(y0, 0, s.rows)
	y1 = Clamp(y1, 0, s.rows)
	return x0, y0, x1, y1
}

func (s *CellSurface) set(cx, cy int, r rune, c Color) {
	if cx < 0 || cx >= s.cols || cy < 0 || cy >= s.rows {
		return
	}
	s.screen.SetCell(s.originX+cx, s.originY+cy, r, c)
}

// Clear blanks the viewport. Terminal cells have no background, so the color is ignored.
func (s *CellSurface) Clear(Color) {
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			s.set(x, y, ' ', ColorDefault)
		}
	}
}

// FillRect fills all cells the rect touches.
func (s *CellSurface) FillRect(r Rect, c Color) {
	x0, y0, x1, y1 := s.cellRect(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.set(x, y, '█', c)
		}
	}
}

// FillCircle plots the cells whose centers lie inside the circle.
// A circle smaller than a cell marks only the cell holding its center.
func (s *CellSurface) FillCircle(x, y, radius float64, c Color) {
	cx := int(math.Floor(x * s.scaleX()))
	cy := int(math.Floor(y * s.scaleY()))
	cellW, cellH := 1/s.scaleX(), 1/s.scaleY()
	if radius*2 < min(cellW, cellH) {
		r := '·'
		if radius >= 2.5 {
			r = '*'
		}
		s.set(cx, cy, r, c)
		return
	}

	x0, y0, x1, y1 := s.cellRect(NewRect(x-radius, y-radius, radius*2, radius*2))
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			px := (float64(col) + 0.5) * cellW
			py := (float64(row) + 0.5) * cellH
			if (px-x)*(px-x)+(py-y)*(py-y) <= radius*radius {
				s.set(col, row, '●', c)
			}
		}
	}
}

// DrawSprite draws the sprite's glyph over the cells of r.
func (s *CellSurface) DrawSprite(sp Sprite, r Rect) {
	g, ok := s.glyphs[sp]
	if !ok {
		return
	}
	x0, y0, x1, y1 := s.cellRect(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			border := x == x0 || x == x1-1 || y == y0 || y == y1-1
			if g.Outline && !border {
				continue
			}
			s.set(x, y, g.Rune, g.Color)
		}
	}
}

// DrawText writes text with its baseline at canvas y. Font size only shifts the row.
func (s *CellSurface) DrawText(x, y, size float64, text string, c Color) {
	col := int(math.Floor(x * s.scaleX()))
	row := int(math.Floor((y - size/2) * s.scaleY()))
	i := 0
	for _, r := range text {
		s.set(col+i, row, r, c)
		i++
	}
}

// Dim grays out the viewport. Cells cannot be partially transparent, so any alpha above zero dims fully.
func (s *CellSurface) Dim(alpha float64) {
	if alpha <= 0 {
		return
	}
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			cell := s.screen.GetCell(s.originX+x, s.originY+y)
			s.set(x, y, cell.Rune, ColorGray)
		}
	}
}
