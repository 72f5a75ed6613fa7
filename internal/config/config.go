package config

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"time"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Baby Bloom - Space/Enter: skip intro, R: regenerate, D: debug, Esc/Q: quit"

	// Particle field
	ParticleCount   = 100
	InfluenceRadius = 150.0
	MinRadius       = 1.0
	MaxRadius       = 5.0 // exclusive
	MinMass         = 1.0
	MaxMass         = 31.0 // exclusive
	RelaxFraction   = 0.1

	// Intro timeline
	IntroEnd       = 6500 * time.Millisecond
	OverlayFadeOut = 800 * time.Millisecond
	CaptionFadeIn  = 300 * time.Millisecond

	// Toasts
	ToastTTL      = 3 * time.Second
	ToastSlideIn  = 300 * time.Millisecond
	ToastMarginX  = 20
	ToastMarginY  = 100
	ToastPaddingX = 24
	ToastPaddingY = 16

	// Chime
	ChimeSampleRate = 44100
	ChimeDuration   = 180 * time.Millisecond
	ChimeGain       = 0.25
	ChimeMeterSize  = 2048
)

// Palette colors, non-premultiplied.
var (
	ColorPink  = color.NRGBA{R: 237, G: 30, B: 121, A: 102}
	ColorNavy  = color.NRGBA{R: 0, G: 0, B: 124, A: 77}
	ColorWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 153}

	Background = color.NRGBA{R: 255, G: 246, B: 249, A: 255}
)

// ChimeNotes are the tone frequencies in Hz played on each intro stage, in order.
var ChimeNotes = []float64{523.25, 587.33, 659.25, 783.99, 1046.50}

// Options are the runtime switches read from the command line.
type Options struct {
	SkipIntro    bool
	Particles    bool
	ClearOnLeave bool
	Chime        bool
	Notify       bool
	Debug        bool
	Seed         uint64
	Count        int
}

// Parse reads Options from args (without the program name).
func Parse(args []string, output io.Writer) (Options, error) {
	var o Options
	fs := flag.NewFlagSet("particles", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&o.SkipIntro, "skip-intro", false, "start as if the intro was already seen this session")
	fs.BoolVar(&o.Particles, "particles", true, "enable the particle canvas")
	fs.BoolVar(&o.ClearOnLeave, "clear-on-leave", false, "stop repelling when the pointer leaves the window")
	fs.BoolVar(&o.Chime, "chime", false, "play a tone on every intro stage")
	fs.BoolVar(&o.Notify, "notify", false, "mirror toasts to desktop notifications")
	fs.BoolVar(&o.Debug, "debug", false, "show the debug overlay")
	fs.Uint64Var(&o.Seed, "seed", 0, "random seed for particle placement (0 = unseeded)")
	fs.IntVar(&o.Count, "count", ParticleCount, "number of particles")
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if o.Count < 0 {
		return Options{}, fmt.Errorf("count must not be negative, got %d", o.Count)
	}
	return o, nil
}
