package tcellhost

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/glimpse"
)

// Config configures Run.
type Config struct {
	Input glimpse.InputConfig
	// TickInterval is the loop period. Default 16ms (~60 FPS).
	TickInterval time.Duration
	// Quit reports whether a key event ends the loop. Default: Escape or
	// Ctrl-C.
	Quit func(*tcell.EventKey) bool
}

func defaultQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

// Run initializes screen, draws d's content pane into it and routes mouse
// input until ctx is done or a quit key is pressed. All glimpse work happens
// on the calling goroutine; a helper goroutine only forwards screen events.
// The screen is finalized before Run returns.
func Run(ctx context.Context, screen tcell.Screen, d *glimpse.Drawable, cfg Config) error {
	if screen == nil {
		return glimpse.ErrNoSurface
	}
	if d.ContentPane() == nil {
		return glimpse.ErrNoContent
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 16 * time.Millisecond
	}
	if cfg.Quit == nil {
		cfg.Quit = defaultQuit
	}

	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()
	screen.Clear()

	router := glimpse.NewRouter(d.ContentPane(), cfg.Input.RouterConfig())
	router.Bind(nil, nil)
	defer router.Close()
	follow := d.ContentChanged().OnEvent(router.SetRoot)
	defer d.ContentChanged().Off(follow)

	surface := NewSurface(screen)
	pump := NewPump(screen, d, router)

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if key, ok := ev.(*tcell.EventKey); ok && cfg.Quit(key) {
				return nil
			}
			pump.Handle(ev)
		case now := <-ticker.C:
			d.Tick(now)
			if !d.Pending() {
				continue
			}
			screen.Clear()
			if err := d.Frame(surface); err != nil {
				return err
			}
			screen.Show()
		}
	}
}
