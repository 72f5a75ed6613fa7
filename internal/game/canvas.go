package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas is the offscreen image the particle field is drawn on. It satisfies
// frame.Canvas.
type canvas struct {
	img  *ebiten.Image
	w, h int
}

func newCanvas() *canvas {
	return &canvas{}
}

func (c *canvas) DrawDisc(x, y, r float64, col color.NRGBA) {
	if c.img == nil {
		return
	}
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), col, true)
}

func (c *canvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

// Resize replaces the backing image when the size changes.
func (c *canvas) Resize(w, h int) {
	if c.img != nil && c.w == w && c.h == h {
		return
	}
	c.release()
	c.w, c.h = max(w, 1), max(h, 1)
	c.img = ebiten.NewImage(c.w, c.h)
}

func (c *canvas) release() {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
}

func (c *canvas) image() *ebiten.Image { return c.img }
