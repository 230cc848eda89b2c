package glimpse

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// ShowFPS overlays an FPS/TPS readout in the top-left corner.
	ShowFPS bool
	Debug   bool
	// ClearColor fills the window before each painted frame.
	ClearColor Color
	Input      InputConfig
}

// RunConfig builds run settings from the window, input and frame sections.
func (c Config) RunConfig() RunConfig {
	return RunConfig{
		Title:     c.Window.Title,
		Width:     c.Window.Width,
		Height:    c.Window.Height,
		Resizable: c.Window.Resizable,
		Debug:     c.Frame.Debug,
		Input:     c.Input,
	}
}

// Game adapts a Drawable to ebiten.Game. Update polls input (or replays
// injected input) and ticks the drawable's clock; Draw paints a frame when
// one is pending. The screen is not cleared between frames, so frames with
// nothing to redraw cost nothing.
type Game struct {
	drawable *Drawable
	router   *Router
	surface  *EbitenSurface
	input    *ebitenInput
	cfg      RunConfig
	now      func() time.Time
	width    int
	height   int
	err      error

	updateFunc func() error

	injectQueue []syntheticPointerEvent
	injectHeld  bool
	testRunner  *TestRunner
}

// NewGame creates a Game for d. The router is bound to the ebiten window:
// cursor hints set the window cursor, and drags keep tracking outside it.
func NewGame(d *Drawable, cfg RunConfig) *Game {
	if d.ContentPane() == nil {
		panic("glimpse: NewGame needs a drawable with a content pane")
	}
	if cfg.ShowFPS {
		root := NewPane("root", NewOverlayLayout())
		root.AddPane(d.ContentPane(), nil)
		root.AddPane(NewFPSPane(d), nil)
		d.SetContentPane(root)
	}
	if cfg.Debug {
		d.SetDebugMode(true)
	}
	g := &Game{
		drawable: d,
		surface:  NewEbitenSurface(nil),
		cfg:      cfg,
		now:      time.Now,
	}
	g.router = NewRouter(d.ContentPane(), cfg.Input.RouterConfig())
	d.ContentChanged().OnEvent(g.router.SetRoot)
	g.input = &ebitenInput{router: g.router}
	g.router.Bind(ebitenCursorSink, g.input)
	return g
}

// Drawable returns the drawable the game paints.
func (g *Game) Drawable() *Drawable { return g.drawable }

// Router returns the game's pointer router.
func (g *Game) Router() *Router { return g.router }

// SetUpdateFunc sets a callback run once per tick after input and timers.
func (g *Game) SetUpdateFunc(fn func() error) { g.updateFunc = fn }

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error { return g.err }

// Update implements ebiten.Game. A layout error from the previous Draw is
// returned here, which ends the ebiten loop.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	now := g.now()
	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	if !g.processInjectedInput(now) {
		g.input.poll(g.width, g.height, now)
	}
	g.drawable.Tick(now)
	if g.updateFunc != nil {
		if err := g.updateFunc(); err != nil {
			g.err = err
		}
	}
	return g.err
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.err != nil {
		return
	}
	g.surface.SetTarget(screen)
	g.drawable.Resize(g.surface.Size())
	if g.drawable.Pending() {
		g.surface.Clear(g.cfg.ClearColor)
	}
	if err := g.drawable.Frame(g.surface); err != nil {
		logger.Error("frame failed", "err", err)
		g.err = err
	}
}

// Layout implements ebiten.Game. The surface is always the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a window and runs d until the window closes or a frame fails.
func Run(d *Drawable, cfg RunConfig) error {
	g := NewGame(d, cfg)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetScreenClearedEveryFrame(false)
	return ebiten.RunGame(g)
}
