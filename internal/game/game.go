package game

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-intro/internal/chime"
	"github.com/iburimskiy/particle-intro/internal/config"
	"github.com/iburimskiy/particle-intro/internal/frame"
	"github.com/iburimskiy/particle-intro/internal/intro"
	"github.com/iburimskiy/particle-intro/internal/notify"
	"github.com/iburimskiy/particle-intro/internal/particle"
)

const (
	captionScale = 3
	glyphWidth   = 6
	glyphHeight  = 16
)

// Game hosts the intro overlay and its particle field in an ebiten window.
type Game struct {
	opts   config.Options
	logger *log.Logger

	// surface
	width, height int
	layoutW       int
	layoutH       int
	mounted       bool
	queue         *frame.Queue
	canvas        *canvas
	driver        *frame.Driver
	cursor        particle.Cursor
	pointer       pointer

	// intro
	session *intro.Session
	seq     *intro.Sequence
	overlay *intro.Overlay
	chimes  *chime.Chimes
	caption *ebiten.Image

	// toasts
	toasts   *notify.Toasts
	notifier notify.Notifier

	time  float64
	debug bool
}

// New builds a game from opts. session carries the seen-intro flag across
// restarts within one process.
func New(opts config.Options, session *intro.Session, logger *log.Logger) *Game {
	g := &Game{
		opts:    opts,
		logger:  logger,
		width:   config.WindowWidth,
		height:  config.WindowHeight,
		layoutW: config.WindowWidth,
		layoutH: config.WindowHeight,
		queue:   frame.NewQueue(),
		cursor:  particle.NewCursor(),
		session: session,
		overlay: intro.NewOverlay(config.CaptionFadeIn, config.OverlayFadeOut),
		toasts:  notify.NewToasts(config.ToastTTL, config.ToastSlideIn),
		debug:   opts.Debug,
	}
	g.pointer = pointer{cursor: &g.cursor, clearOnLeave: opts.ClearOnLeave}

	g.notifier = g.toasts
	if opts.Notify {
		g.notifier = notify.Multi{g.toasts, notify.NewDesktop("Baby Bloom")}
	}

	g.chimes = chime.Open(opts.Chime, beep.SampleRate(config.ChimeSampleRate), config.ChimeNotes,
		config.ChimeDuration, config.ChimeGain, config.ChimeMeterSize, logger)

	// No canvas means the particle subsystem never activates.
	if opts.Particles {
		var rng *rand.Rand
		if opts.Seed != 0 {
			rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
		}
		g.canvas = newCanvas()
		g.driver = frame.New(g.queue, g.canvas, &g.cursor, g.width, g.height,
			frame.WithCount(opts.Count),
			frame.WithRand(rng),
			frame.WithLogger(logger),
		)
	}

	g.seq = intro.Default(session)
	g.seq.OnStage = g.onStage
	g.seq.OnEnd = g.onIntroEnd
	return g
}

func (g *Game) onStage(i int, s intro.Stage) {
	g.overlay.ShowStage()
	g.chimes.Stage(i)
}

// onIntroEnd stops the particles before the overlay starts going away.
func (g *Game) onIntroEnd() {
	if g.driver != nil {
		g.driver.Stop()
	}
	g.overlay.Hide()
	g.notify("Welcome to Baby Bloom", notify.Success)
}

func (g *Game) notify(msg string, sev notify.Severity) {
	if err := g.notifier.Notify(msg, sev); err != nil {
		g.logger.Printf("notify: %v", err)
	}
}

// mount runs once the window size is known.
func (g *Game) mount() {
	g.mounted = true
	if g.session.SeenIntro() {
		g.seq.Begin()
		return
	}
	if g.driver != nil {
		g.driver.Restart(g.width, g.height)
	}
	g.seq.Begin()
}

func (g *Game) Update() error {
	if !g.mounted {
		g.width, g.height = g.layoutW, g.layoutH
		g.mount()
	} else {
		g.resize(g.layoutW, g.layoutH)
	}
	dt := time.Second / time.Duration(max(ebiten.TPS(), 1))

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.chimes.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.seq.Skip()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toasts.Dismiss()
	}

	x, y := ebiten.CursorPosition()
	g.pointer.poll(x, y, g.width, g.height)

	g.time += dt.Seconds()
	g.seq.Advance(dt)
	g.overlay.Update(dt)
	g.toasts.Update(dt)

	g.queue.Pump()

	if g.overlay.Removed() && g.canvas != nil {
		g.canvas.release()
		g.canvas = nil
		g.driver = nil
	}
	return nil
}

func (g *Game) regenerate() {
	if g.driver == nil || g.driver.State() != frame.Running {
		g.notify("Particles are not running", notify.Error)
		return
	}
	g.driver.Restart(g.width, g.height)
	g.notify(fmt.Sprintf("Regenerated %d particles", g.driver.Field().Len()), notify.Info)
}

// resize handles a viewport change. A running field is regenerated at the new
// size; a stopped one only records it.
func (g *Game) resize(w, h int) {
	if w == g.width && h == g.height {
		return
	}
	g.width, g.height = w, h
	if g.driver != nil && g.driver.State() == frame.Running {
		g.driver.Restart(w, h)
	}
}

// Layout records the window size; Update applies it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.Background)
	g.drawPage(screen)

	if !g.overlay.Removed() {
		g.drawOverlay(screen)
	}
	g.drawToast(screen)
	if g.debug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawPage(screen *ebiten.Image) {
	msg := "Baby Bloom - gentle care for little ones"
	x := (g.width - len(msg)*glyphWidth) / 2
	ebitenutil.DebugPrintAt(screen, msg, x, g.height/2)
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	alpha := float32(g.overlay.Alpha())
	bg := color.NRGBA{R: 252, G: 228, B: 236, A: uint8(255 * alpha)}
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), bg, false)

	if g.canvas != nil && g.canvas.image() != nil {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(alpha)
		screen.DrawImage(g.canvas.image(), op)
	}

	stage, ok := g.seq.Current()
	if !ok {
		return
	}
	g.drawCaption(screen, stage, alpha*float32(g.overlay.CaptionAlpha()))
}

func (g *Game) drawCaption(screen *ebiten.Image, stage intro.Stage, alpha float32) {
	w := len(stage.Caption)*glyphWidth + 2
	if g.caption == nil || g.caption.Bounds().Dx() < w {
		if g.caption != nil {
			g.caption.Deallocate()
		}
		g.caption = ebiten.NewImage(max(w, 256), glyphHeight)
	}
	g.caption.Clear()
	ebitenutil.DebugPrintAt(g.caption, stage.Caption, 0, 0)

	scale := float64(captionScale)
	if stage.ID == "introLogo" {
		// The logo pulses with the chime.
		scale += clamp01(g.chimes.Level()*4) * 0.5
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(float64(g.width)-float64(len(stage.Caption)*glyphWidth)*scale)/2,
		(float64(g.height)-glyphHeight*scale)/2,
	)
	r, gv, b := hsvToRgb(330+20*g.time, 0.7, 0.6)
	op.ColorScale.Scale(float32(r)/255, float32(gv)/255, float32(b)/255, 1)
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(g.caption, op)
}

func (g *Game) drawToast(screen *ebiten.Image) {
	t := g.toasts.Current()
	if t == nil {
		return
	}
	cols := notify.Colors[t.Severity]
	w := len(t.Message)*glyphWidth + 2*config.ToastPaddingX
	h := glyphHeight + 2*config.ToastPaddingY
	target := g.width - config.ToastMarginX - w
	x := float64(g.width) + (float64(target)-float64(g.width))*t.Slide
	y := config.ToastMarginY

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), cols.Bg, false)
	ebitenutil.DebugPrintAt(screen, t.Message, int(x)+config.ToastPaddingX, y+config.ToastPaddingY)
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	state, ticks, count, offset := "off", 0, 0, 0.0
	if g.driver != nil {
		state, ticks = g.driver.State().String(), g.driver.Ticks()
		if f := g.driver.Field(); f != nil {
			count, offset = f.Len(), f.MaxOffset()
		}
	}
	cursor := "none"
	if g.cursor.Active {
		cursor = fmt.Sprintf("%.0f,%.0f", g.cursor.Pos.X, g.cursor.Pos.Y)
	}
	msg := fmt.Sprintf("TPS %.0f  FPS %.0f\nfield %s  ticks %d  particles %d  max offset %.1f\ncursor %s  intro left %s",
		ebiten.ActualTPS(), ebiten.ActualFPS(), state, ticks, count, offset, cursor, formatSeconds(g.seq.Remaining()))
	ebitenutil.DebugPrintAt(screen, msg, 12, 12)
}
