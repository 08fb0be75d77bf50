package knot

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Saver is the screensaver game: it owns the curves, turns keyboard and
// mouse input into curve operations, advances the animation once per tick
// and draws the result. It implements ebiten.Game.
type Saver struct {
	cfg    Config
	curves *CurveSet
	rng    *rand.Rand
	hue    *HueCycle
	sink   EventSink
	debug  bool

	paused      bool
	showHelp    bool
	showPolygon bool
	quit        bool
	ticks       uint64

	injectQueue     []inputEvent
	testRunner      *TestRunner
	screenshotQueue []string

	batch      strokeBatch
	fonts      helpFonts
	updateTime time.Duration
}

// NewSaver creates a Saver from cfg. The first curve is active from the
// start.
func NewSaver(cfg Config) (*Saver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new saver: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	fonts, err := loadHelpFonts()
	if err != nil {
		return nil, fmt.Errorf("new saver: %w", err)
	}
	bounds := Size{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	s := &Saver{
		cfg:      cfg,
		curves:   NewCurveSet(cfg.Curves, bounds, cfg.Resolution),
		rng:      rand.New(rand.NewPCG(seed, seed>>1|1)),
		hue:      NewHueCycle(float32(cfg.HuePeriod)),
		debug:    cfg.Debug,
		showHelp: cfg.ShowHelp,
		fonts:    fonts,
	}
	s.curves.Active()
	return s, nil
}

// Curves returns the curves the Saver animates.
func (s *Saver) Curves() *CurveSet {
	return s.curves
}

// Config returns the configuration the Saver was created with.
func (s *Saver) Config() Config {
	return s.cfg
}

// Paused reports whether the animation is stopped.
func (s *Saver) Paused() bool {
	return s.paused
}

// Ticks returns the number of completed Update calls.
func (s *Saver) Ticks() uint64 {
	return s.ticks
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame timing
// and curve stats are logged to stderr and the FPS readout is drawn.
func (s *Saver) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update processes input and advances every curve by one tick unless the
// animation is paused. It returns ebiten.Termination once quit is requested.
func (s *Saver) Update() error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	if s.quit {
		return ebiten.Termination
	}
	s.advance(float32(1.0 / float64(ebiten.TPS())))

	if s.debug {
		s.updateTime = time.Since(t0)
	}
	return nil
}

// advance runs the simulation part of a tick. The hue keeps cycling while
// paused.
func (s *Saver) advance(dt float32) {
	if !s.paused {
		s.curves.RecalcAll()
	}
	s.hue.Update(dt)
	s.ticks++
}

// Draw renders every curve, then the help overlay and FPS readout when
// enabled, and finally captures any queued screenshots.
func (s *Saver) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	screen.Fill(s.cfg.Background.RGBA())
	s.drawCurves(screen)
	if s.showHelp {
		s.drawHelp(screen)
	}
	if s.cfg.ShowFPS || s.debug {
		drawFPS(screen)
	}
	s.flushScreenshots(screen)

	if s.debug {
		s.debugLog(s.collectStats(time.Since(t0)))
	}
}

// Layout keeps the logical screen at the configured size, so the bounce
// bounds match what is drawn regardless of the window size.
func (s *Saver) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.cfg.Width, s.cfg.Height
}
