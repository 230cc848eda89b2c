package tcellhost

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/glimpse"
)

var tcellButtons = [...]struct {
	mask tcell.ButtonMask
	b    glimpse.MouseButton
}{
	{tcell.ButtonPrimary, glimpse.MouseButtonLeft},
	{tcell.ButtonSecondary, glimpse.MouseButtonRight},
	{tcell.ButtonMiddle, glimpse.MouseButtonMiddle},
}

const buttonMask = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// Pump translates tcell events into Router calls and drawable resizes.
//
// tcell reports the full button mask with every mouse event, so presses and
// releases are found by comparing each mask with the previous one. The
// terminal is the widest scope the host can observe; it has no separate
// InputScope, and the router's surface events drive drags.
type Pump struct {
	screen   tcell.Screen
	drawable *glimpse.Drawable
	router   *glimpse.Router

	prev    tcell.ButtonMask
	started bool
	lastX   int
	lastY   int
}

// NewPump creates a pump delivering screen events to r and size changes
// to d.
func NewPump(screen tcell.Screen, d *glimpse.Drawable, r *glimpse.Router) *Pump {
	return &Pump{screen: screen, drawable: d, router: r}
}

// Handle processes one event and reports whether it was a mouse, resize or
// focus event.
func (p *Pump) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		p.mouse(ev)
	case *tcell.EventResize:
		p.drawable.Resize(ev.Size())
		p.drawable.Redraw()
	case *tcell.EventFocus:
		if !ev.Focused {
			p.router.Exit(glimpse.HostEvent{I: -1, J: -1, Time: time.Now()})
		}
	default:
		return false
	}
	return true
}

func (p *Pump) mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	_, h := p.screen.Size()
	mask := ev.Buttons()
	held := mask & buttonMask

	he := glimpse.HostEvent{
		// Cell centers, so hits are never on a boundary.
		I:         float64(x) + 0.5,
		J:         float64(h-1-y) + 0.5,
		Modifiers: modifiers(ev.Modifiers()),
		Time:      eventTime(ev.When()),
		Raw:       ev,
	}
	if !p.started || x != p.lastX || y != p.lastY {
		p.started = true
		p.lastX, p.lastY = x, y
		// The motion came before this event's button changes.
		move := he
		move.Buttons = buttons(p.prev)
		p.router.Move(move)
	}
	he.Buttons = buttons(held)

	pressed := held &^ p.prev
	released := p.prev &^ held
	p.prev = held
	for _, tb := range tcellButtons {
		if pressed&tb.mask != 0 {
			down := he
			down.Button = tb.b
			p.router.Down(down)
			if tb.b == glimpse.MouseButtonRight {
				p.router.ContextMenu(down)
			}
		}
	}
	for _, tb := range tcellButtons {
		if released&tb.mask != 0 {
			up := he
			up.Button = tb.b
			p.router.Up(up)
		}
	}

	switch {
	case mask&tcell.WheelUp != 0:
		he.WheelSteps = -1
		p.router.Wheel(he)
	case mask&tcell.WheelDown != 0:
		he.WheelSteps = 1
		p.router.Wheel(he)
	}
}

func buttons(mask tcell.ButtonMask) glimpse.Buttons {
	var b glimpse.Buttons
	for _, tb := range tcellButtons {
		if mask&tb.mask != 0 {
			b = b.With(tb.b)
		}
	}
	return b
}

func modifiers(m tcell.ModMask) glimpse.KeyModifiers {
	var mods glimpse.KeyModifiers
	if m&tcell.ModShift != 0 {
		mods |= glimpse.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= glimpse.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= glimpse.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= glimpse.ModMeta
	}
	return mods
}

func eventTime(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
