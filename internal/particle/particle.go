package particle

import (
	"image/color"
	"math"

	"github.com/iburimskiy/particle-intro/internal/config"
)

// Vec2 is a point or offset in surface pixels.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }

// Finite reports whether neither component is NaN or infinite.
func (v Vec2) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Particle is one point of the field. Everything except the current position is
// fixed at creation.
type Particle struct {
	pos    Vec2
	rest   Vec2
	radius float64
	color  color.NRGBA
	mass   float64
}

func (p Particle) Position() Vec2     { return p.pos }
func (p Particle) Rest() Vec2         { return p.rest }
func (p Particle) Radius() float64    { return p.radius }
func (p Particle) Color() color.NRGBA { return p.color }
func (p Particle) Mass() float64      { return p.mass }

// Offset is the particle's displacement from its rest position.
func (p Particle) Offset() Vec2 { return p.pos.Sub(p.rest) }

// Cursor is the pointer as seen by the field. An inactive cursor never repels.
type Cursor struct {
	Pos    Vec2
	Active bool
	Radius float64
}

// NewCursor returns an inactive cursor with the default influence radius.
func NewCursor() Cursor {
	return Cursor{Radius: config.InfluenceRadius}
}

// MoveTo places the cursor and marks it active.
func (c *Cursor) MoveTo(x, y float64) {
	c.Pos = Vec2{x, y}
	c.Active = true
}

// Clear deactivates the cursor, leaving its last position in place.
func (c *Cursor) Clear() {
	c.Active = false
}

// Palette maps particle indices to colors.
type Palette struct {
	Default    color.NRGBA
	EveryThird color.NRGBA
	EveryFifth color.NRGBA
}

// DefaultPalette is pink with navy and white accents.
var DefaultPalette = Palette{
	Default:    config.ColorPink,
	EveryThird: config.ColorNavy,
	EveryFifth: config.ColorWhite,
}

// ColorFor returns the color of the particle at index i. Multiples of five win over
// multiples of three.
func (pl Palette) ColorFor(i int) color.NRGBA {
	switch {
	case i%5 == 0:
		return pl.EveryFifth
	case i%3 == 0:
		return pl.EveryThird
	default:
		return pl.Default
	}
}

// Displacement is the change Step applies to p for cursor c in one tick.
func Displacement(p Particle, c Cursor) Vec2 {
	if c.Active && c.Radius > 0 {
		d := c.Pos.Sub(p.pos)
		dist := d.Len()
		// dist == 0 has no direction to push along; fall through to relaxing.
		if dist > 0 && dist < c.Radius {
			force := (c.Radius - dist) / c.Radius
			return d.Scale(-force * p.mass / dist)
		}
	}
	return p.rest.Sub(p.pos).Scale(config.RelaxFraction)
}
