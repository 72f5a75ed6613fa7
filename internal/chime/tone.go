package chime

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// tone is a sine wave with a linear fade-out over its whole length.
type tone struct {
	step  float64 // phase increment per sample
	gain  float64
	pos   int
	total int
}

// Tone returns a finite sine streamer of the given frequency and duration.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, gain float64) beep.Streamer {
	return &tone{
		step:  2 * math.Pi * freq / float64(sr),
		gain:  gain,
		total: sr.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		env := 1 - float64(t.pos)/float64(t.total)
		v := math.Sin(t.step*float64(t.pos)) * t.gain * env
		samples[i] = [2]float64{v, v}
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }
