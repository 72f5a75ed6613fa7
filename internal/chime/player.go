package chime

import (
	"fmt"
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Player plays streamers on some output.
type Player interface {
	Play(s beep.Streamer)
	Close()
}

// Mute discards everything.
type Mute struct{}

func (Mute) Play(beep.Streamer) {}
func (Mute) Close()             {}

// SpeakerPlayer plays through the default audio device.
type SpeakerPlayer struct{}

// NewSpeakerPlayer initializes the speaker at sample rate sr.
func NewSpeakerPlayer(sr beep.SampleRate) (*SpeakerPlayer, error) {
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &SpeakerPlayer{}, nil
}

func (*SpeakerPlayer) Play(s beep.Streamer) {
	speaker.Play(s)
}

func (*SpeakerPlayer) Close() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

// Chimes plays one note per intro stage and exposes the loudness of the note
// currently sounding.
type Chimes struct {
	player   Player
	sr       beep.SampleRate
	notes    []float64
	duration time.Duration
	gain     float64
	meterLen int
	meter    *Meter
}

// NewChimes returns Chimes playing on p.
func NewChimes(p Player, sr beep.SampleRate, notes []float64, d time.Duration, gain float64, meterLen int) *Chimes {
	return &Chimes{
		player:   p,
		sr:       sr,
		notes:    notes,
		duration: d,
		gain:     gain,
		meterLen: meterLen,
	}
}

// Open returns Chimes on the speaker, falling back to silence when no audio
// device is available.
func Open(enabled bool, sr beep.SampleRate, notes []float64, d time.Duration, gain float64, meterLen int, logger *log.Logger) *Chimes {
	var p Player = Mute{}
	if enabled {
		sp, err := NewSpeakerPlayer(sr)
		if err != nil {
			logger.Printf("audio disabled: %v", err)
		} else {
			p = sp
		}
	}
	return NewChimes(p, sr, notes, d, gain, meterLen)
}

// Stage plays the note for stage i. Indices past the last note reuse it.
func (c *Chimes) Stage(i int) {
	if len(c.notes) == 0 || i < 0 {
		return
	}
	if i >= len(c.notes) {
		i = len(c.notes) - 1
	}
	m := NewMeter(Tone(c.sr, c.notes[i], c.duration, c.gain), c.meterLen)
	c.meter = m
	c.player.Play(m)
}

// Level is the loudness of the most recent note, 0 when nothing has played.
func (c *Chimes) Level() float64 {
	if c.meter == nil {
		return 0
	}
	return c.meter.Level()
}

func (c *Chimes) Close() {
	c.player.Close()
}
