package intro

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Overlay holds the fade state of the intro screen: the caption fades in on
// every stage, and the whole overlay fades out once the sequence ends.
type Overlay struct {
	captionIn time.Duration
	fadeOut   time.Duration

	caption      *gween.Tween
	captionAlpha float64

	fade    *gween.Tween
	alpha   float64
	hidden  bool
	removed bool
}

func NewOverlay(captionIn, fadeOut time.Duration) *Overlay {
	return &Overlay{captionIn: captionIn, fadeOut: fadeOut, alpha: 1}
}

// ShowStage restarts the caption fade-in.
func (o *Overlay) ShowStage() {
	if o.hidden {
		return
	}
	o.captionAlpha = 0
	o.caption = gween.New(0, 1, seconds(o.captionIn), ease.OutQuad)
}

// Hide starts the fade-out. Calling it again has no effect.
func (o *Overlay) Hide() {
	if o.hidden {
		return
	}
	o.hidden = true
	o.fade = gween.New(1, 0, seconds(o.fadeOut), ease.InOutQuad)
}

// Update advances both fades by dt.
func (o *Overlay) Update(dt time.Duration) {
	if o.removed {
		return
	}
	step := seconds(dt)
	if o.caption != nil {
		v, finished := o.caption.Update(step)
		o.captionAlpha = float64(v)
		if finished {
			o.caption = nil
		}
	}
	if o.fade != nil {
		v, finished := o.fade.Update(step)
		o.alpha = float64(v)
		if finished {
			o.fade = nil
			o.alpha = 0
			o.removed = true
		}
	}
}

// Alpha is the opacity of the whole overlay.
func (o *Overlay) Alpha() float64 { return o.alpha }

// CaptionAlpha is the opacity of the current caption relative to the overlay.
func (o *Overlay) CaptionAlpha() float64 { return o.captionAlpha }

func (o *Overlay) Hidden() bool { return o.hidden }

// Removed reports whether the fade-out has completed.
func (o *Overlay) Removed() bool { return o.removed }

func seconds(d time.Duration) float32 { return float32(d.Seconds()) }
