package chime

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

const testRate = beep.SampleRate(8000)

func drain(s beep.Streamer, chunk int) int {
	buf := make([][2]float64, chunk)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestToneLength(t *testing.T) {
	s := Tone(testRate, 440, 250*time.Millisecond, 0.5)
	if got := drain(s, 333); got != 2000 {
		t.Errorf("samples = %d, want 2000", got)
	}
	if s.Err() != nil {
		t.Errorf("err = %v, want nil", s.Err())
	}
}

func TestToneAmplitudeFades(t *testing.T) {
	s := Tone(testRate, 440, time.Second, 0.5)
	buf := make([][2]float64, 8000)
	n, _ := s.Stream(buf)
	peak := func(from, to int) float64 {
		var p float64
		for _, v := range buf[from:to] {
			p = math.Max(p, math.Abs(v[0]))
		}
		return p
	}
	head, tail := peak(0, 400), peak(n-400, n)
	if head > 0.5 {
		t.Errorf("head peak = %v, want <= gain", head)
	}
	if tail >= head {
		t.Errorf("tail peak %v should be below head peak %v", tail, head)
	}
}

func TestMeterLevel(t *testing.T) {
	m := NewMeter(Tone(testRate, 440, time.Second, 0.5), 256)
	if m.Level() != 0 {
		t.Errorf("level before streaming = %v, want 0", m.Level())
	}
	buf := make([][2]float64, 512)
	m.Stream(buf)
	if lvl := m.Level(); lvl <= 0 || lvl > 0.5 {
		t.Errorf("level = %v, want in (0, 0.5]", lvl)
	}
	drain(m, 512)
	if m.Level() != 0 {
		t.Errorf("level after drain = %v, want 0", m.Level())
	}
}

type recordingPlayer struct {
	played []beep.Streamer
	closed bool
}

func (p *recordingPlayer) Play(s beep.Streamer) { p.played = append(p.played, s) }
func (p *recordingPlayer) Close()               { p.closed = true }

func TestChimesStage(t *testing.T) {
	var p recordingPlayer
	c := NewChimes(&p, testRate, []float64{440, 880}, 100*time.Millisecond, 0.3, 128)
	if c.Level() != 0 {
		t.Errorf("level = %v, want 0 before any stage", c.Level())
	}
	c.Stage(0)
	c.Stage(5)
	c.Stage(-1)
	if len(p.played) != 2 {
		t.Fatalf("played = %d, want 2", len(p.played))
	}
	buf := make([][2]float64, 64)
	p.played[1].Stream(buf)
	if c.Level() <= 0 {
		t.Error("level should follow the latest note")
	}
	c.Close()
	if !p.closed {
		t.Error("Close should close the player")
	}
}

func TestOpenDisabledIsMute(t *testing.T) {
	c := Open(false, testRate, []float64{440}, time.Millisecond, 0.1, 16, nil)
	if _, ok := c.player.(Mute); !ok {
		t.Errorf("player = %T, want Mute", c.player)
	}
	c.Stage(0)
	c.Close()
}
