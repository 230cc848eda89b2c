package glimpse

import "time"

type injectKind uint8

const (
	injectPress injectKind = iota
	injectMove
	injectRelease
)

// syntheticPointerEvent represents a single injected pointer event.
// Window coordinates are used (y grows downward, matching what a person or
// tool sees in a screenshot) and converted to surface coordinates exactly
// like real mouse input.
type syntheticPointerEvent struct {
	x, y float64
	kind injectKind
}

// InjectPress queues a left-button press at the given window coordinates.
// The event is consumed on the next Update, in place of polled input.
func (g *Game) InjectPress(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y, kind: injectPress})
}

// InjectMove queues a pointer move. Between InjectPress and InjectRelease it
// is a drag move with the left button held.
func (g *Game) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y, kind: injectMove})
}

// InjectRelease queues a left-button release at the given window coordinates.
func (g *Game) InjectRelease(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y, kind: injectRelease})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same window coordinates. Consumes two frames.
func (g *Game) InjectClick(x, y float64) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (g *Game) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		g.InjectMove(x, y)
	}
	g.InjectRelease(toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (g *Game) PendingInjections() int { return len(g.injectQueue) }

// processInjectedInput pops one event from the inject queue and feeds it to
// the router as both a surface event and a scope event. Returns true if an
// event was consumed (real mouse input is skipped for that tick).
func (g *Game) processInjectedInput(now time.Time) bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]
	g.dispatchSynthetic(evt, now)
	return true
}

func (g *Game) dispatchSynthetic(evt syntheticPointerEvent, now time.Time) {
	ev := HostEvent{
		I:      evt.x,
		J:      float64(g.height) - evt.y,
		Button: MouseButtonLeft,
		Time:   now,
	}
	switch evt.kind {
	case injectPress:
		g.injectHeld = true
		ev.Buttons = ButtonsLeft
		g.router.Move(ev)
		g.router.Down(ev)
	case injectMove:
		if g.injectHeld {
			ev.Buttons = ButtonsLeft
		}
		g.router.Move(ev)
		g.input.scopeMove(ev)
	case injectRelease:
		g.injectHeld = false
		g.router.Up(ev)
		g.input.scopeUp(ev)
	}
}
