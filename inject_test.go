package glimpse

import (
	"slices"
	"testing"
	"time"
)

// newTestGame builds a 100×100 game whose content is two 50 px columns, a on
// the left and b on the right, and returns the event log of both.
func newTestGame(t *testing.T) (*Game, *Pane, *Pane, *[]string) {
	t.Helper()
	root := NewPane("root", NewColumnLayout(true))
	a, b := NewPane("a", nil), NewPane("b", nil)
	root.AddPaneWithOptions(a, Order(0), LayoutOptions{Width: Px(50)})
	root.AddPaneWithOptions(b, Order(1), LayoutOptions{Width: Px(50)})

	var log []string
	for _, p := range []*Pane{a, b} {
		for _, et := range []EventType{EventMouseDown, EventMouseUp, EventMouseMove} {
			p.notification(et).OnEvent(func(ev PointerEvent) {
				log = append(log, p.Name+":"+et.String())
			})
		}
	}

	d := NewDrawable()
	d.SetContentPane(root)
	g := NewGame(d, RunConfig{})
	g.Layout(100, 100)
	if err := d.Frame(&recordSurface{w: 100, h: 100}); err != nil {
		t.Fatal(err)
	}
	return g, a, b, &log
}

func TestInjectClick(t *testing.T) {
	g, _, _, log := newTestGame(t)
	now := time.Unix(10, 0)

	g.InjectClick(25, 50)
	if g.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued events, got %d", g.PendingInjections())
	}

	// Frame 1: press
	g.processInjectedInput(now)
	if !slices.Equal(*log, []string{"a:mouse-move", "a:mouse-down"}) {
		t.Fatalf("after press: %v", *log)
	}
	// Frame 2: release
	g.processInjectedInput(now)
	if !slices.Contains(*log, "a:mouse-up") {
		t.Errorf("release should deliver an up, got %v", *log)
	}
	if g.processInjectedInput(now) {
		t.Error("an empty queue should not consume a frame")
	}
}

func TestInjectUsesWindowCoordinates(t *testing.T) {
	g, a, _, _ := newTestGame(t)
	var j float64
	a.MouseDown().OnEvent(func(ev PointerEvent) { j = ev.J })

	g.InjectPress(10, 90)
	g.processInjectedInput(time.Unix(10, 0))
	if j != 10 {
		t.Errorf("window y=90 should map to j=10, got %v", j)
	}
}

func TestInjectDrag(t *testing.T) {
	g, a, _, log := newTestGame(t)
	var moves []float64
	a.MouseMove().OnEvent(func(ev PointerEvent) { moves = append(moves, ev.I) })

	// press, two interpolated moves, release
	g.InjectDrag(10, 50, 85, 50, 4)
	if g.PendingInjections() != 4 {
		t.Fatalf("expected 4 queued events, got %d", g.PendingInjections())
	}
	now := time.Unix(10, 0)
	for g.PendingInjections() > 0 {
		g.processInjectedInput(now)
		now = now.Add(16 * time.Millisecond)
	}

	if !slices.Equal(moves, []float64{10, 35, 60}) {
		t.Errorf("a moves = %v, want [10 35 60]", moves)
	}
	if slices.Contains(*log, "b:mouse-move") {
		t.Error("b should not see moves while a holds the drag")
	}
	if g.Router().Dragging() {
		t.Error("drag should end on release")
	}
	if got := (*log)[len(*log)-1]; got != "a:mouse-up" {
		t.Errorf("last event = %q, want a:mouse-up", got)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	g, _, _, _ := newTestGame(t)
	g.InjectDrag(0, 0, 10, 10, 0)
	if g.PendingInjections() != 2 {
		t.Errorf("expected press and release only, got %d", g.PendingInjections())
	}
}

func TestInjectedInputReplacesPolling(t *testing.T) {
	g, _, _, log := newTestGame(t)
	g.now = func() time.Time { return time.Unix(10, 0) }
	g.InjectClick(75, 50)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	want := []string{"b:mouse-move", "b:mouse-down", "b:mouse-up"}
	if !slices.Equal(*log, want) {
		t.Errorf("events = %v, want %v", *log, want)
	}
}

func TestGameRoutesToReplacedContent(t *testing.T) {
	g, _, _, log := newTestGame(t)
	now := time.Unix(10, 0)

	next := NewPane("next", NewOverlayLayout())
	c := NewPane("c", nil)
	next.AddPane(c, nil)
	c.MouseMove().OnEvent(func(PointerEvent) { *log = append(*log, "c:mouse-move") })
	g.Drawable().SetContentPane(next)
	if err := g.Drawable().Frame(&recordSurface{w: 100, h: 100}); err != nil {
		t.Fatal(err)
	}

	g.InjectMove(25, 50)
	g.processInjectedInput(now)
	if !slices.Equal(*log, []string{"c:mouse-move"}) {
		t.Errorf("events = %v, want only the new content", *log)
	}
}
