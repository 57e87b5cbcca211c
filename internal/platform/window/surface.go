// Package window runs the shooter in a desktop window with Ebitengine.
package window

import (
	"image/color"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// debugGlyphH is the line height of the ebitenutil debug font.
const debugGlyphH = 16

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xdd, 0xdd, 0xdd, 0xff},
	core.ColorRed:           {0xcc, 0x22, 0x22, 0xff},
	core.ColorGreen:         {0x22, 0xaa, 0x22, 0xff},
	core.ColorYellow:        {0xff, 0xff, 0x00, 0xff},
	core.ColorBlue:          {0x22, 0x44, 0xcc, 0xff},
	core.ColorMagenta:       {0xaa, 0x22, 0xaa, 0xff},
	core.ColorCyan:          {0x00, 0xaa, 0xaa, 0xff},
	core.ColorWhite:         {0xff, 0xff, 0xff, 0xff},
	core.ColorBrightRed:     {0xff, 0x44, 0x44, 0xff},
	core.ColorBrightGreen:   {0x55, 0xff, 0x55, 0xff},
	core.ColorBrightYellow:  {0xff, 0xff, 0x55, 0xff},
	core.ColorBrightBlue:    {0x55, 0x77, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x55, 0xff, 0xff},
	core.ColorBrightCyan:    {0x55, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x88, 0x00, 0xff},
	core.ColorGray:          {0x80, 0x80, 0x80, 0xff},
	core.ColorBlack:         {0x00, 0x00, 0x00, 0xff},
}

// rgba returns the window color for a palette entry.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// spriteFiles are the image names looked up in the asset directory.
var spriteFiles = map[core.Sprite]string{
	core.SpriteHero:         "cute_ship.png",
	core.SpriteShield:       "shield.png",
	core.SpriteAsteroid:     "asteroid.png",
	core.SpriteShieldPickup: "shield.png",
	core.SpriteSlowPickup:   "slowmo.png",
}

// ImageSurface draws the canvas onto an offscreen Ebitengine image.
type ImageSurface struct {
	canvas  *ebiten.Image
	w, h    float64
	sprites map[core.Sprite]*ebiten.Image
}

// NewImageSurface creates a canvas of the given size and loads sprites from dir.
// Sprites that cannot be loaded are replaced by flat placeholders.
func NewImageSurface(w, h float64, dir string, logger *log.Logger) *ImageSurface {
	s := &ImageSurface{
		canvas:  ebiten.NewImage(int(w), int(h)),
		w:       w,
		h:       h,
		sprites: make(map[core.Sprite]*ebiten.Image, len(spriteFiles)),
	}
	glyphs := core.DefaultGlyphs()
	for sp, name := range spriteFiles {
		if img := loadSprite(dir, name, logger); img != nil {
			s.sprites[sp] = img
			continue
		}
		s.sprites[sp] = placeholder(glyphs[sp])
	}
	return s
}

func loadSprite(dir, name string, logger *log.Logger) *ebiten.Image {
	if dir == "" {
		return nil
	}
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		logger.Warn("sprite missing, using placeholder", "path", path)
		return nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		logger.Warn("cannot load sprite, using placeholder", "path", path, "error", err)
		return nil
	}
	return img
}

// placeholder is a small image in the glyph color, scaled to the sprite rect when drawn.
func placeholder(g core.Glyph) *ebiten.Image {
	img := ebiten.NewImage(16, 16)
	c := rgba(g.Color)
	if g.Outline {
		vector.StrokeCircle(img, 8, 8, 7, 1.5, c, true)
		return img
	}
	img.Fill(c)
	return img
}

// Canvas returns the image drawn to.
func (s *ImageSurface) Canvas() *ebiten.Image {
	return s.canvas
}

// Size returns the canvas size.
func (s *ImageSurface) Size() (float64, float64) {
	return s.w, s.h
}

// Clear fills the canvas.
func (s *ImageSurface) Clear(c core.Color) {
	s.canvas.Fill(rgba(c))
}

// FillRect fills r.
func (s *ImageSurface) FillRect(r core.Rect, c core.Color) {
	vector.FillRect(s.canvas, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(c), false)
}

// FillCircle fills a circle centered on (x, y).
func (s *ImageSurface) FillCircle(x, y, radius float64, c core.Color) {
	vector.DrawFilledCircle(s.canvas, float32(x), float32(y), float32(radius), rgba(c), true)
}

// DrawSprite stretches the sprite image over r.
func (s *ImageSurface) DrawSprite(sp core.Sprite, r core.Rect) {
	img, ok := s.sprites[sp]
	if !ok || r.W <= 0 || r.H <= 0 {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	s.canvas.DrawImage(img, op)
}

// DrawText draws text with its baseline at y, scaled from the debug font to size pixels.
func (s *ImageSurface) DrawText(x, y, size float64, text string, c core.Color) {
	if text == "" || size <= 0 {
		return
	}
	tmp := ebiten.NewImage(len(text)*6+2, debugGlyphH)
	defer tmp.Deallocate()
	ebitenutil.DebugPrint(tmp, text)

	scale := size / debugGlyphH
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-size)
	op.ColorScale.ScaleWithColor(rgba(c))
	s.canvas.DrawImage(tmp, op)
}

// Dim draws a translucent black layer over the canvas.
func (s *ImageSurface) Dim(alpha float64) {
	if alpha <= 0 {
		return
	}
	a := uint8(min(alpha, 1) * 255)
	vector.FillRect(s.canvas, 0, 0, float32(s.w), float32(s.h), color.RGBA{0, 0, 0, a}, false)
}
