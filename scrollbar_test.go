package glimpse

import (
	"testing"
	"time"
)

// scrollbarFixture is a 112×100 surface: a scroll window over 300 px of
// content on the left and a 12 px scrollbar on the right. Every pane
// consumes input.
type scrollbarFixture struct {
	d       *Drawable
	l       *ScrollLayout
	window  *Pane
	content *Pane
	sb      *Scrollbar
	router  *Router
	surface *recordSurface
	clock   *clock
}

func newScrollbarFixture(t *testing.T, cfg ScrollConfig) *scrollbarFixture {
	t.Helper()
	f := &scrollbarFixture{d: NewDrawable(), surface: &recordSurface{w: 112, h: 100}}
	f.l = NewVerticalScrollLayout()
	f.window = NewPane("window", f.l)
	f.content = NewPane("content", NewFixedSizeLayout(NoExtent, Px(300)))
	f.window.AddPane(f.content, nil)

	f.sb = NewVerticalScrollbar(f.d, f.l, cfg, DefaultScrollbarStyle)
	root := NewPane("root", NewColumnLayout(true))
	root.AddPane(f.window, Order(0))
	root.AddPane(f.sb.Pane(), Order(1))

	f.d.SetContentPane(root)
	f.frame(t)
	f.router = NewRouter(root, RouterConfig{})
	f.router.Bind(nil, nil)
	f.clock = newClock(f.d)
	return f
}

func (f *scrollbarFixture) frame(t *testing.T) {
	t.Helper()
	if err := f.d.Frame(f.surface); err != nil {
		t.Fatal(err)
	}
}

func TestScrollbarThumbGeometry(t *testing.T) {
	f := newScrollbarFixture(t, DefaultConfig().Scroll)
	track := f.sb.Pane().Viewport()
	if track != NewBoundsFromEdges(100, 112, 0, 100) {
		t.Fatalf("track = %v", track)
	}

	thumb, ok := f.sb.Thumb(track)
	if !ok || thumb != NewBoundsFromEdges(100, 112, 67, 100) {
		t.Errorf("thumb at top = %v, %v", thumb, ok)
	}

	f.l.SetOffset(200)
	f.d.Redraw()
	f.frame(t)
	thumb, _ = f.sb.Thumb(track)
	if thumb != NewBoundsFromEdges(100, 112, 0, 33) {
		t.Errorf("thumb at bottom = %v", thumb)
	}
}

func TestScrollbarNoThumbWhenContentFits(t *testing.T) {
	f := newScrollbarFixture(t, DefaultConfig().Scroll)
	f.window.RemovePane(f.content)
	f.window.AddPane(NewPane("short", NewFixedSizeLayout(NoExtent, Px(50))), nil)
	f.d.Redraw()
	f.frame(t)
	if _, ok := f.sb.Thumb(f.sb.Pane().Viewport()); ok {
		t.Error("no thumb expected when the content fits")
	}
}

func TestScrollbarThumbRespectsMinimum(t *testing.T) {
	f := newScrollbarFixture(t, DefaultConfig().Scroll)
	f.window.RemovePane(f.content)
	f.window.AddPane(NewPane("tall", NewFixedSizeLayout(NoExtent, Px(100000))), nil)
	f.d.Redraw()
	f.frame(t)
	thumb, ok := f.sb.Thumb(f.sb.Pane().Viewport())
	if !ok || thumb.H() != DefaultScrollbarStyle.MinThumb {
		t.Errorf("thumb = %v, want height %d", thumb, DefaultScrollbarStyle.MinThumb)
	}
}

func TestScrollbarDragThumb(t *testing.T) {
	f := newScrollbarFixture(t, DefaultConfig().Scroll)
	f.router.Move(HostEvent{I: 106, J: 90})
	f.router.Down(HostEvent{I: 106, J: 90, Button: MouseButtonLeft, Buttons: ButtonsLeft})
	if !f.sb.Dragging() {
		t.Fatal("press on the thumb should start a drag")
	}

	// 30 px of track is 90 px of content.
	f.router.Move(HostEvent{I: 50, J: 60, Buttons: ButtonsLeft})
	if f.l.Offset() != 90 || !f.d.Pending() {
		t.Errorf("offset = %v pending = %v", f.l.Offset(), f.d.Pending())
	}

	f.router.Move(HostEvent{I: 50, J: -100, Buttons: ButtonsLeft})
	if f.l.Offset() != 200 {
		t.Errorf("offset = %v, want clamped 200", f.l.Offset())
	}

	f.router.Up(HostEvent{I: 50, J: -100, Button: MouseButtonLeft})
	if f.sb.Dragging() {
		t.Error("release should end the thumb drag")
	}
}

func TestScrollbarTrackPagingRepeatsUntilPointer(t *testing.T) {
	f := newScrollbarFixture(t, ScrollConfig{HoldDelayMS: 300, HoldRepeatMS: 50})
	f.router.Move(HostEvent{I: 106, J: 10})
	f.router.Down(HostEvent{I: 106, J: 10, Button: MouseButtonLeft, Buttons: ButtonsLeft})

	if !f.sb.Paging() || f.l.Offset() != 100 {
		t.Fatalf("press below the thumb should page once, offset = %v", f.l.Offset())
	}

	for range 6 {
		f.clock.advance(50 * time.Millisecond)
	}
	if f.l.Offset() != 100 {
		t.Fatalf("repeat started before the hold delay, offset = %v", f.l.Offset())
	}
	f.clock.advance(50 * time.Millisecond)
	if f.l.Offset() != 200 {
		t.Fatalf("offset = %v after the first repeat, want 200", f.l.Offset())
	}
	for range 5 {
		f.clock.advance(50 * time.Millisecond)
	}
	if f.l.Offset() != 200 {
		t.Errorf("paging should stop at the pointer, offset = %v", f.l.Offset())
	}

	f.router.Up(HostEvent{I: 106, J: 10, Button: MouseButtonLeft})
	if f.sb.Paging() {
		t.Error("release should stop paging")
	}
}

func TestScrollbarPagingUp(t *testing.T) {
	f := newScrollbarFixture(t, ScrollConfig{HoldDelayMS: 300, HoldRepeatMS: 50})
	f.l.SetOffset(200)
	f.d.Redraw()
	f.frame(t)

	f.router.Move(HostEvent{I: 106, J: 95})
	f.router.Down(HostEvent{I: 106, J: 95, Button: MouseButtonLeft, Buttons: ButtonsLeft})
	if f.l.Offset() != 100 {
		t.Errorf("press above the thumb should page up, offset = %v", f.l.Offset())
	}
	f.router.Up(HostEvent{I: 106, J: 95, Button: MouseButtonLeft})
	for range 20 {
		f.clock.advance(50 * time.Millisecond)
	}
	if f.l.Offset() != 100 {
		t.Errorf("a released press kept paging, offset = %v", f.l.Offset())
	}
}

func TestScrollbarDisposeStopsTimers(t *testing.T) {
	f := newScrollbarFixture(t, ScrollConfig{HoldDelayMS: 300, HoldRepeatMS: 50})
	f.router.Move(HostEvent{I: 106, J: 10})
	f.router.Down(HostEvent{I: 106, J: 10, Button: MouseButtonLeft, Buttons: ButtonsLeft})
	f.sb.Pane().Dispose()
	for range 20 {
		f.clock.advance(50 * time.Millisecond)
	}
	if f.l.Offset() != 100 {
		t.Errorf("a disposed scrollbar kept paging, offset = %v", f.l.Offset())
	}
}

func TestWheelScrollJumps(t *testing.T) {
	f := newScrollbarFixture(t, DefaultConfig().Scroll)
	cfg := ScrollConfig{WheelStepPx: 40}
	AttachWheelScroll(f.d, f.window, f.l, cfg)

	f.router.Move(HostEvent{I: 50, J: 50})
	f.router.Wheel(HostEvent{I: 50, J: 50, WheelSteps: 2})
	if f.l.Offset() != 80 {
		t.Errorf("offset = %v, want 80", f.l.Offset())
	}
	f.router.Wheel(HostEvent{I: 50, J: 50, WheelSteps: -5})
	if f.l.Offset() != 0 {
		t.Errorf("offset = %v, want clamped 0", f.l.Offset())
	}
}

func TestWheelScrollAnimatesAndAccumulates(t *testing.T) {
	f := newScrollbarFixture(t, DefaultConfig().Scroll)
	cfg := ScrollConfig{WheelStepPx: 40, AnimateMS: 100}
	h := AttachWheelScroll(f.d, f.window, f.l, cfg)

	f.router.Move(HostEvent{I: 50, J: 50})
	f.router.Wheel(HostEvent{I: 50, J: 50, WheelSteps: 1})
	f.router.Wheel(HostEvent{I: 50, J: 50, WheelSteps: 1})
	if f.l.Offset() != 0 {
		t.Fatalf("an animated wheel should not jump, offset = %v", f.l.Offset())
	}
	for range 10 {
		f.clock.advance(20 * time.Millisecond)
		f.frame(t)
	}
	if f.l.Offset() != 80 {
		t.Errorf("offset = %v, want 80 after the tween", f.l.Offset())
	}

	f.window.MouseWheel().Off(h)
	f.router.Wheel(HostEvent{I: 50, J: 50, WheelSteps: 1})
	f.clock.advance(time.Second)
	if f.l.Offset() != 80 {
		t.Error("a detached handler still scrolled")
	}
}

func TestWheelScrollReachesWindowOverConsumingContent(t *testing.T) {
	f := newScrollbarFixture(t, DefaultConfig().Scroll)
	AttachWheelScroll(f.d, f.window, f.l, ScrollConfig{WheelStepPx: 40})
	contentWheels := 0
	f.content.MouseWheel().OnEvent(func(PointerEvent) { contentWheels++ })

	f.router.Move(HostEvent{I: 50, J: 50})
	hovered := f.router.Hovered()
	if len(hovered) < 2 || hovered[0] != f.content || hovered[1] != f.window {
		t.Fatalf("hovered = %v, want content then window", names(hovered))
	}
	f.router.Wheel(HostEvent{I: 50, J: 50, WheelSteps: 1})
	if f.l.Offset() != 40 {
		t.Errorf("offset = %v, want 40", f.l.Offset())
	}
	if contentWheels != 1 {
		t.Errorf("content saw %d wheel events, want 1", contentWheels)
	}
}
