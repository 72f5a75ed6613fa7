package notify

import (
	"image/color"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Severity selects a toast's colors.
type Severity uint8

const (
	Info Severity = iota
	Success
	Error
)

// Colors per severity: background, then foreground.
var Colors = map[Severity]struct{ Bg, Fg color.NRGBA }{
	Info:    {Bg: color.NRGBA{R: 40, G: 40, B: 50, A: 230}, Fg: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	Success: {Bg: color.NRGBA{R: 16, G: 185, B: 129, A: 240}, Fg: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	Error:   {Bg: color.NRGBA{R: 239, G: 68, B: 68, A: 240}, Fg: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
}

// Toast is one on-screen message.
type Toast struct {
	Message  string
	Severity Severity
	Age      time.Duration
	// Slide is the slide-in progress, 0 off-screen to 1 in place.
	Slide float64

	slide *gween.Tween
}

// Toasts holds at most one visible toast. Pushing replaces the current one.
type Toasts struct {
	ttl     time.Duration
	slideIn time.Duration
	current *Toast
}

func NewToasts(ttl, slideIn time.Duration) *Toasts {
	return &Toasts{ttl: ttl, slideIn: slideIn}
}

func (t *Toasts) Push(msg string, sev Severity) {
	t.current = &Toast{
		Message:  msg,
		Severity: sev,
		slide:    gween.New(0, 1, float32(t.slideIn.Seconds()), ease.OutQuad),
	}
}

// Update ages the current toast by dt and drops it once its TTL has passed.
func (t *Toasts) Update(dt time.Duration) {
	c := t.current
	if c == nil {
		return
	}
	c.Age += dt
	if c.Age >= t.ttl {
		t.current = nil
		return
	}
	v, _ := c.slide.Update(float32(dt.Seconds()))
	c.Slide = float64(v)
}

// Current returns the visible toast, or nil.
func (t *Toasts) Current() *Toast { return t.current }

func (t *Toasts) Dismiss() { t.current = nil }

// Notify shows msg as a toast, so Toasts is also a Notifier.
func (t *Toasts) Notify(msg string, sev Severity) error {
	t.Push(msg, sev)
	return nil
}
