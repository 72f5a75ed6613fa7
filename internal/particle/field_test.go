package particle

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/iburimskiy/particle-intro/internal/config"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// displace moves particle i by off without touching its rest position.
func (f *Field) displace(i int, off Vec2) {
	f.particles[i].pos = f.particles[i].pos.Add(off)
}

type recordingSurface struct {
	discs []Vec2
	radii []float64
	cols  []color.NRGBA
}

func (s *recordingSurface) DrawDisc(x, y, r float64, c color.NRGBA) {
	s.discs = append(s.discs, Vec2{x, y})
	s.radii = append(s.radii, r)
	s.cols = append(s.cols, c)
}

func TestCreateAttributesInRange(t *testing.T) {
	f := Create(500, 800, 600, seeded())
	if f.Len() != 500 {
		t.Fatalf("len = %d, want 500", f.Len())
	}
	for i, p := range f.Particles() {
		if p.Position() != p.Rest() {
			t.Errorf("particle %d: position %v != rest %v", i, p.Position(), p.Rest())
		}
		if p.Rest().X < 0 || p.Rest().X >= 800 || p.Rest().Y < 0 || p.Rest().Y >= 600 {
			t.Errorf("particle %d: rest %v outside bounds", i, p.Rest())
		}
		if p.Radius() < config.MinRadius || p.Radius() >= config.MaxRadius {
			t.Errorf("particle %d: radius = %v, want [1,5)", i, p.Radius())
		}
		if p.Mass() < config.MinMass || p.Mass() >= config.MaxMass {
			t.Errorf("particle %d: mass = %v, want [1,31)", i, p.Mass())
		}
		if p.Color() != DefaultPalette.ColorFor(i) {
			t.Errorf("particle %d: color = %v, want %v", i, p.Color(), DefaultPalette.ColorFor(i))
		}
	}
}

func TestCreateSpreadsAcrossSurface(t *testing.T) {
	f := Create(1000, 800, 600, seeded())
	var left, top int
	for _, p := range f.Particles() {
		if p.Rest().X < 400 {
			left++
		}
		if p.Rest().Y < 300 {
			top++
		}
	}
	// Uniform placement puts roughly half on each side.
	if left < 400 || left > 600 {
		t.Errorf("left half count = %d, want about 500", left)
	}
	if top < 400 || top > 600 {
		t.Errorf("top half count = %d, want about 500", top)
	}
}

func TestCreateUnseeded(t *testing.T) {
	f := Create(10, 100, 100, nil)
	if f.Len() != 10 {
		t.Errorf("len = %d, want 10", f.Len())
	}
}

func TestCreateNegativeCount(t *testing.T) {
	f := Create(-3, 100, 100, seeded())
	if f.Len() != 0 {
		t.Errorf("len = %d, want 0", f.Len())
	}
	f.Step(Cursor{Pos: Vec2{1, 1}, Active: true, Radius: 150})
}

func TestColorPrecedence(t *testing.T) {
	pl := DefaultPalette
	cases := []struct {
		i    int
		want color.NRGBA
	}{
		{0, pl.EveryFifth},
		{1, pl.Default},
		{3, pl.EveryThird},
		{5, pl.EveryFifth},
		{9, pl.EveryThird},
		{15, pl.EveryFifth},
		{22, pl.Default},
	}
	for _, c := range cases {
		if got := pl.ColorFor(c.i); got != c.want {
			t.Errorf("ColorFor(%d) = %v, want %v", c.i, got, c.want)
		}
	}
}

func TestStepWithoutCursorKeepsRestingParticles(t *testing.T) {
	f := Create(50, 800, 600, seeded())
	before := f.Particles()
	f.Step(NewCursor())
	for i, p := range f.Particles() {
		if p.Position() != before[i].Position() {
			t.Errorf("particle %d moved from %v to %v", i, before[i].Position(), p.Position())
		}
	}
}

func TestStepZeroDistanceIsFinite(t *testing.T) {
	f := Create(1, 800, 600, seeded())
	p := f.At(0)
	c := Cursor{Pos: p.Position(), Active: true, Radius: config.InfluenceRadius}
	f.Step(c)
	got := f.At(0).Position()
	if !got.Finite() {
		t.Fatalf("position = %v, want finite", got)
	}
	if got != p.Rest() {
		t.Errorf("position = %v, want unchanged %v", got, p.Rest())
	}

	// A displaced particle under the cursor only relaxes.
	f.displace(0, Vec2{10, 0})
	c.Pos = f.At(0).Position()
	f.Step(c)
	got = f.At(0).Position()
	want := p.Rest().Add(Vec2{9, 0})
	if !got.Finite() || got.Sub(want).Len() > 1e-9 {
		t.Errorf("position = %v, want %v", got, want)
	}
}

func TestRelaxationConvergence(t *testing.T) {
	f := Create(1, 800, 600, seeded())
	delta := Vec2{40, -25}
	f.displace(0, delta)
	for n := 1; n <= 30; n++ {
		f.Step(NewCursor())
		off := f.At(0).Offset()
		want := delta.Scale(math.Pow(1-config.RelaxFraction, float64(n)))
		if off.Sub(want).Len() > 1e-9 {
			t.Fatalf("tick %d: offset = %v, want %v", n, off, want)
		}
		if off.X < 0 || off.Y > 0 {
			t.Fatalf("tick %d: offset %v overshot rest", n, off)
		}
	}
}

func TestRepulsionMonotonic(t *testing.T) {
	f := Create(1, 800, 600, seeded())
	p := f.At(0)
	prev := 0.0
	for dist := 140.0; dist > 0; dist -= 10 {
		c := Cursor{Pos: p.Position().Add(Vec2{dist, 0}), Active: true, Radius: config.InfluenceRadius}
		mag := Displacement(p, c).Len()
		if mag <= prev {
			t.Errorf("dist %v: magnitude %v, want > %v", dist, mag, prev)
		}
		prev = mag
	}
}

func TestRepulsionPushesAwayScaledByMass(t *testing.T) {
	f := Create(1, 800, 600, seeded())
	p := f.At(0)
	c := Cursor{Pos: p.Position().Add(Vec2{0, 50}), Active: true, Radius: 150}
	d := Displacement(p, c)
	want := -(100.0 / 150.0) * p.Mass()
	if math.Abs(d.X) > 1e-12 || math.Abs(d.Y-want) > 1e-9 {
		t.Errorf("displacement = %v, want (0, %v)", d, want)
	}
}

func TestRepulsionOutsideRadiusRelaxes(t *testing.T) {
	f := Create(1, 800, 600, seeded())
	f.displace(0, Vec2{10, 10})
	p := f.At(0)
	c := Cursor{Pos: p.Position().Add(Vec2{150, 0}), Active: true, Radius: 150}
	d := Displacement(p, c)
	if d.Sub(Vec2{-1, -1}).Len() > 1e-9 {
		t.Errorf("displacement = %v, want (-1, -1)", d)
	}
}

func TestStepDoesNotClamp(t *testing.T) {
	f := Create(1, 10, 10, seeded())
	p := f.At(0)
	c := Cursor{Pos: p.Position().Add(Vec2{1, 0}), Active: true, Radius: 150}
	for i := 0; i < 20; i++ {
		f.Step(c)
	}
	if got := f.At(0).Position(); got.X >= 0 {
		t.Errorf("position = %v, want pushed past the left edge", got)
	}
	if f.At(0).Rest() != p.Rest() {
		t.Errorf("rest changed from %v to %v", p.Rest(), f.At(0).Rest())
	}
}

func TestRenderDrawsEveryParticle(t *testing.T) {
	f := Create(20, 800, 600, seeded())
	var s recordingSurface
	f.Render(&s)
	if len(s.discs) != 20 {
		t.Fatalf("discs = %d, want 20", len(s.discs))
	}
	for i, p := range f.Particles() {
		if s.discs[i] != p.Position() || s.radii[i] != p.Radius() || s.cols[i] != p.Color() {
			t.Errorf("disc %d = %v r=%v c=%v, want %v r=%v c=%v",
				i, s.discs[i], s.radii[i], s.cols[i], p.Position(), p.Radius(), p.Color())
		}
	}
}

func TestCursorClearIsSticky(t *testing.T) {
	c := NewCursor()
	if c.Active {
		t.Fatal("new cursor should be inactive")
	}
	c.MoveTo(3, 4)
	c.Clear()
	if c.Active {
		t.Error("cursor should be inactive after Clear")
	}
	if c.Pos != (Vec2{3, 4}) {
		t.Errorf("pos = %v, want last position kept", c.Pos)
	}
}
