package frame

import (
	"log"
	"math/rand/v2"
	"os"

	"github.com/iburimskiy/particle-intro/internal/config"
	"github.com/iburimskiy/particle-intro/internal/particle"
)

// Canvas is the drawing surface a Driver owns during a tick.
type Canvas interface {
	particle.Surface
	Clear()
	Resize(width, height int)
}

// State is the driver's run state.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Driver runs one Step+Render of the particle field per scheduled frame.
type Driver struct {
	sched  Scheduler
	canvas Canvas
	cursor *particle.Cursor

	field         *particle.Field
	width, height int
	count         int
	rng           *rand.Rand
	palette       particle.Palette

	state  State
	gen    uint64
	handle Handle
	ticks  int

	onTick func(*particle.Field)
	logger *log.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithCount sets the number of particles per generation.
func WithCount(n int) Option {
	return func(d *Driver) { d.count = n }
}

// WithRand sets the random source used for every generation.
func WithRand(r *rand.Rand) Option {
	return func(d *Driver) { d.rng = r }
}

func WithPalette(pl particle.Palette) Option {
	return func(d *Driver) { d.palette = pl }
}

func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// WithTickHook registers fn to run after every completed tick.
func WithTickHook(fn func(*particle.Field)) Option {
	return func(d *Driver) { d.onTick = fn }
}

// New returns an idle driver for a canvas of the given size. cursor is read on
// every tick and may be updated between ticks by the caller.
func New(sched Scheduler, canvas Canvas, cursor *particle.Cursor, width, height int, opts ...Option) *Driver {
	d := &Driver{
		sched:   sched,
		canvas:  canvas,
		cursor:  cursor,
		width:   width,
		height:  height,
		count:   config.ParticleCount,
		palette: particle.DefaultPalette,
		logger:  log.New(os.Stderr, "[frame] ", log.LstdFlags),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

func (d *Driver) State() State { return d.state }

// Field returns the current generation, or nil before the first Start.
func (d *Driver) Field() *particle.Field { return d.field }

func (d *Driver) Size() (width, height int) { return d.width, d.height }

// Ticks returns the number of ticks completed since the last Start.
func (d *Driver) Ticks() int { return d.ticks }

// Start schedules the first tick. It creates the field on first use and does
// nothing when already running.
func (d *Driver) Start() {
	if d.state == Running {
		return
	}
	if d.field == nil {
		d.regenerate()
	}
	d.state = Running
	d.ticks = 0
	d.schedule()
	d.logger.Printf("started: %d particles on %dx%d", d.field.Len(), d.width, d.height)
}

// Stop cancels the pending tick. Stopping an idle driver is a no-op.
func (d *Driver) Stop() {
	if d.state == Idle {
		return
	}
	d.sched.CancelFrame(d.handle)
	d.handle = 0
	d.gen++
	d.state = Idle
	d.logger.Printf("stopped after %d ticks", d.ticks)
}

// Restart replaces the field with a new generation sized width×height and
// starts again.
func (d *Driver) Restart(width, height int) {
	d.Stop()
	d.width, d.height = width, height
	d.regenerate()
	d.Start()
}

func (d *Driver) regenerate() {
	d.field = particle.CreateWithPalette(d.count, float64(d.width), float64(d.height), d.rng, d.palette)
	d.canvas.Resize(d.width, d.height)
}

func (d *Driver) schedule() {
	gen := d.gen
	d.handle = d.sched.RequestFrame(func() { d.tick(gen) })
}

func (d *Driver) tick(gen uint64) {
	// A callback from before the last Stop must not draw.
	if d.state != Running || gen != d.gen {
		return
	}
	d.handle = 0

	var c particle.Cursor
	if d.cursor != nil {
		c = *d.cursor
	}
	d.canvas.Clear()
	d.field.Step(c)
	d.field.Render(d.canvas)
	d.ticks++

	if d.onTick != nil {
		d.onTick(d.field)
	}
	// The hook may have stopped or restarted the driver.
	if d.state == Running && gen == d.gen {
		d.schedule()
	}
}
