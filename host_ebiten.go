package glimpse

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenButtons = [...]struct {
	eb ebiten.MouseButton
	b  MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// ebitenCursorSink applies cursor hints to the ebiten window.
var ebitenCursorSink = CursorSinkFunc(func(c Cursor) {
	ebiten.SetCursorShape(c.EbitenCursorShape())
})

// ebitenInput polls ebiten's pointer state once per tick and reports the
// changes to a Router. The window is the widest scope ebiten can observe, so
// it doubles as the router's InputScope: ebiten keeps reporting the cursor
// while a button is held outside the window.
type ebitenInput struct {
	router *Router

	onMove, onUp func(HostEvent)

	started bool
	inside  bool
	lastI   float64
	lastJ   float64
	held    Buttons // buttons held as of the previous tick
	wheel   float64 // sub-step wheel travel carried between ticks
}

// pointerState is one tick's worth of ebiten pointer input, in window
// coordinates (y grows downward).
type pointerState struct {
	x, y      int
	held      Buttons
	pressed   Buttons
	released  Buttons
	wheelY    float64
	modifiers KeyModifiers
}

func readPointer() pointerState {
	var st pointerState
	st.x, st.y = ebiten.CursorPosition()
	for _, eb := range ebitenButtons {
		if ebiten.IsMouseButtonPressed(eb.eb) {
			st.held = st.held.With(eb.b)
		}
		if inpututil.IsMouseButtonJustPressed(eb.eb) {
			st.pressed = st.pressed.With(eb.b)
		}
		if inpututil.IsMouseButtonJustReleased(eb.eb) {
			st.released = st.released.With(eb.b)
		}
	}
	_, st.wheelY = ebiten.Wheel()
	st.modifiers = readModifiers()
	return st
}

func (in *ebitenInput) Listen(onMove, onUp func(HostEvent)) func() {
	in.onMove, in.onUp = onMove, onUp
	return func() { in.onMove, in.onUp = nil, nil }
}

// poll reads pointer state for a w×h window and dispatches what changed.
func (in *ebitenInput) poll(w, h int, now time.Time) {
	in.dispatch(readPointer(), w, h, now)
}

// dispatch reports one tick of pointer input: moves, then presses, then
// releases, then wheel. The move happened before this tick's button changes,
// so it carries the buttons held at the previous tick; a drag that ends with
// motion sees its move and then its one release.
func (in *ebitenInput) dispatch(st pointerState, w, h int, now time.Time) {
	ev := HostEvent{
		I:         float64(st.x),
		J:         float64(h - st.y),
		Modifiers: st.modifiers,
		Time:      now,
	}
	inside := st.x >= 0 && st.y >= 0 && st.x < w && st.y < h

	if !in.started || ev.I != in.lastI || ev.J != in.lastJ {
		in.started = true
		in.lastI, in.lastJ = ev.I, ev.J
		move := ev
		move.Buttons = in.held
		if inside {
			in.router.Move(move)
		}
		in.scopeMove(move)
	}
	if in.inside && !inside {
		in.router.Exit(ev)
	}
	in.inside = inside
	in.held = st.held
	ev.Buttons = st.held

	for _, eb := range ebitenButtons {
		if inside && st.pressed.Has(eb.b) {
			down := ev
			down.Button = eb.b
			in.router.Down(down)
			if eb.b == MouseButtonRight {
				in.router.ContextMenu(down)
			}
		}
	}
	for _, eb := range ebitenButtons {
		if st.released.Has(eb.b) {
			up := ev
			up.Button = eb.b
			if inside {
				in.router.Up(up)
			}
			in.scopeUp(up)
		}
	}

	if inside && st.wheelY != 0 {
		in.wheel += st.wheelY
		if steps := int(math.Trunc(in.wheel)); steps != 0 {
			in.wheel -= float64(steps)
			wheel := ev
			// ebiten reports wheel-away-from-user as positive; steps count
			// the other way, toward the end of the content.
			wheel.WheelSteps = -steps
			in.router.Wheel(wheel)
		}
	}
}

func (in *ebitenInput) scopeMove(ev HostEvent) {
	if in.onMove != nil {
		in.onMove(ev)
	}
}

func (in *ebitenInput) scopeUp(ev HostEvent) {
	if in.onUp != nil {
		in.onUp(ev)
	}
}
