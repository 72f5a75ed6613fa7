package chime

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Meter wraps a beep.Streamer and keeps the last N streamed samples in a ring
// buffer so the renderer can react to what is currently audible.
type Meter struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func NewMeter(src beep.Streamer, ringSize int) *Meter {
	if ringSize < 1 {
		ringSize = 1
	}
	return &Meter{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (m *Meter) Stream(samples [][2]float64) (int, bool) {
	n, ok := m.Source.Stream(samples)
	m.mu.Lock()
	for i := 0; i < n; i++ {
		m.buffer[m.nextIndex] = samples[i]
		m.nextIndex++
		if m.nextIndex >= len(m.buffer) {
			m.nextIndex = 0
		}
	}
	if m.filled += n; m.filled > len(m.buffer) {
		m.filled = len(m.buffer)
	}
	// Once the source is drained the meter falls silent.
	if !ok {
		for i := range m.buffer {
			m.buffer[i] = [2]float64{}
		}
	}
	m.mu.Unlock()
	return n, ok
}

func (m *Meter) Err() error { return m.Source.Err() }

// Level returns the RMS of the buffered samples (mono mix), in [0,1] for
// normalized audio.
func (m *Meter) Level() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.filled == 0 {
		return 0
	}
	var sumSquares float64
	for _, s := range m.buffer[:m.filled] {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	return math.Sqrt(sumSquares / float64(m.filled))
}
