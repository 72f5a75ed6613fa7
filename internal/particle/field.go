package particle

import (
	"image/color"
	"math/rand/v2"

	"github.com/iburimskiy/particle-intro/internal/config"
)

// Surface is anything a particle can be drawn on.
type Surface interface {
	DrawDisc(x, y, r float64, c color.NRGBA)
}

// Field is one generation of particles. It is replaced, never resized, when the
// surface dimensions change.
type Field struct {
	particles     []Particle
	width, height float64
}

// Create places count particles uniformly in [0,width)×[0,height). A nil rng uses
// a randomly seeded source.
func Create(count int, width, height float64, rng *rand.Rand) *Field {
	return CreateWithPalette(count, width, height, rng, DefaultPalette)
}

// CreateWithPalette is Create with an explicit palette.
func CreateWithPalette(count int, width, height float64, rng *rand.Rand, pl Palette) *Field {
	if count < 0 {
		count = 0
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	f := &Field{
		particles: make([]Particle, count),
		width:     width,
		height:    height,
	}
	for i := range f.particles {
		rest := Vec2{rng.Float64() * width, rng.Float64() * height}
		f.particles[i] = Particle{
			pos:    rest,
			rest:   rest,
			radius: uniform(rng, config.MinRadius, config.MaxRadius),
			color:  pl.ColorFor(i),
			mass:   uniform(rng, config.MinMass, config.MaxMass),
		}
	}
	return f
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Len returns the particle count.
func (f *Field) Len() int { return len(f.particles) }

// Bounds returns the dimensions used for placement.
func (f *Field) Bounds() (width, height float64) { return f.width, f.height }

// Particles returns a copy of the current particles.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// At returns the particle at index i.
func (f *Field) At(i int) Particle { return f.particles[i] }

// Step advances every particle by one tick against cursor c.
func (f *Field) Step(c Cursor) {
	for i := range f.particles {
		p := &f.particles[i]
		p.pos = p.pos.Add(Displacement(*p, c))
	}
}

// Render draws every particle on s. It does not clear s.
func (f *Field) Render(s Surface) {
	for i := range f.particles {
		p := &f.particles[i]
		s.DrawDisc(p.pos.X, p.pos.Y, p.radius, p.color)
	}
}

// MaxOffset returns the largest distance of any particle from its rest position.
func (f *Field) MaxOffset() float64 {
	var m float64
	for i := range f.particles {
		if d := f.particles[i].Offset().Len(); d > m {
			m = d
		}
	}
	return m
}
