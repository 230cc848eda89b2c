package glimpse

import (
	"fmt"
)

// Painter draws one pane. It is called once per paint pass, after the surface
// viewport and scissor have been set to the pane's. Painters must not modify
// the pane tree.
type Painter func(s Surface, viewport Bounds)

// PointerEvent is delivered to a pane's mouse notifications.
type PointerEvent struct {
	// PaneViewport is the receiving pane's viewport.
	PaneViewport Bounds
	// I and J are surface coordinates; J grows upward.
	I, J float64
	// WheelSteps is set for wheel events; positive scrolls content down.
	WheelSteps int
	// ClickCount is set for down and up events: 2 for a double click, etc.
	ClickCount int
	Button     MouseButton
	Modifiers  KeyModifiers
	// Raw is the host's original event, if any.
	Raw any
}

// LocalI returns I relative to the pane's left edge.
func (e PointerEvent) LocalI() float64 { return e.I - float64(e.PaneViewport.IStart) }

// LocalJ returns J relative to the pane's bottom edge.
func (e PointerEvent) LocalJ() float64 { return e.J - float64(e.PaneViewport.JStart) }

// paneIDCounter is a plain counter; glimpse is single-threaded.
var paneIDCounter uint32

func nextPaneID() uint32 {
	paneIDCounter++
	return paneIDCounter
}

// Pane is a rectangular node of the scene tree. It owns its children, a list
// of painters, and an optional layout that sizes and positions the children.
//
// Children are kept in insertion order, which is also z-order: later
// children paint over earlier ones and are hit-tested first.
type Pane struct {
	// Identity
	ID   uint32
	Name string

	// Metadata
	UserData any
	EntityID uint32

	painters []Painter
	children *OrderedSet[uint32, *Child]
	layout   Layout
	attached bool

	viewport Bounds
	scissor  Bounds
	prefSize PrefSize

	consumesInput bool
	contains      func(i, j float64) bool

	cursor              Cursor
	childCursorListener func(struct{}) bool
	childCursorHandles  map[uint32]Handle

	mouseDown       Notification[PointerEvent]
	mouseUp         Notification[PointerEvent]
	mouseMove       Notification[PointerEvent]
	mouseWheel      Notification[PointerEvent]
	mouseEnter      Notification[PointerEvent]
	mouseExit       Notification[PointerEvent]
	contextMenu     Notification[PointerEvent]
	cursorChanged   Notification[struct{}]
	viewportChanged Notification[Bounds]
	disposed        Notification[struct{}]
	isDisposed      bool
}

// NewPane creates a pane with the given layout, which may be nil for a leaf.
// The pane consumes input events by default.
func NewPane(name string, layout Layout) *Pane {
	p := &Pane{
		ID:            nextPaneID(),
		Name:          name,
		layout:        layout,
		consumesInput: true,
		children:      NewOrderedSet(func(c *Child) uint32 { return c.Pane.ID }),
	}
	p.childCursorListener = func(struct{}) bool {
		p.cursorChanged.Fire(struct{}{})
		return false
	}
	return p
}

// Layout returns the pane's layout.
func (p *Pane) Layout() Layout { return p.layout }

// SetLayout replaces the pane's layout.
func (p *Pane) SetLayout(l Layout) { p.layout = l }

// AddPainter appends a painter. Painters run in registration order.
func (p *Pane) AddPainter(fn Painter) {
	p.painters = append(p.painters, fn)
}

// --- Tree manipulation ---

// AddPane attaches child with the given layout arg and default options.
func (p *Pane) AddPane(child *Pane, arg LayoutArg) {
	p.AddPaneWithOptions(child, arg, LayoutOptions{})
}

// AddPaneWithOptions attaches child in front of existing children. Re-adding
// a current child replaces its arg and options and keeps its z-position.
// Panics if child is nil, is p itself, or is already attached elsewhere.
func (p *Pane) AddPaneWithOptions(child *Pane, arg LayoutArg, opts LayoutOptions) {
	if child == nil {
		panic("glimpse: cannot add nil pane")
	}
	if child == p {
		panic("glimpse: cannot add a pane to itself")
	}
	if globalDebug {
		debugCheckDisposed(p, "AddPane (parent)")
		debugCheckDisposed(child, "AddPane (child)")
	}
	if existing, ok := p.children.ValueFor(child.ID); ok {
		existing.Arg = arg
		existing.Options = opts
		return
	}
	if child.attached {
		panic("glimpse: pane already has a parent")
	}
	if child.isAncestorOf(p) {
		panic("glimpse: adding pane would create a cycle")
	}
	child.attached = true
	p.children.Add(&Child{Pane: child, Arg: arg, Options: opts})
	if p.childCursorHandles == nil {
		p.childCursorHandles = make(map[uint32]Handle)
	}
	p.childCursorHandles[child.ID] = child.cursorChanged.On(p.childCursorListener)
	p.cursorChanged.Fire(struct{}{})
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(p)
	}
}

// RemovePane detaches child. No-op if child is not attached to p. The child
// is not disposed.
func (p *Pane) RemovePane(child *Pane) {
	if !p.children.Has(child.ID) {
		return
	}
	p.children.RemoveID(child.ID)
	child.attached = false
	if h, ok := p.childCursorHandles[child.ID]; ok {
		child.cursorChanged.Off(h)
		delete(p.childCursorHandles, child.ID)
	}
	p.cursorChanged.Fire(struct{}{})
}

// HasPane reports whether child is a direct child of p.
func (p *Pane) HasPane(child *Pane) bool {
	return p.children.Has(child.ID)
}

// Children returns the child panes in z-order (back to front).
func (p *Pane) Children() []*Pane {
	out := make([]*Pane, 0, p.children.Len())
	p.children.ForEach(func(c *Child) {
		out = append(out, c.Pane)
	})
	return out
}

// NumChildren returns the number of children.
func (p *Pane) NumChildren() int {
	return p.children.Len()
}

// LayoutArg returns child's layout arg.
func (p *Pane) LayoutArg(child *Pane) (LayoutArg, bool) {
	c, ok := p.children.ValueFor(child.ID)
	if !ok {
		return nil, false
	}
	return c.Arg, true
}

// SetLayoutArg replaces child's layout arg. No-op if child is not attached.
func (p *Pane) SetLayoutArg(child *Pane, arg LayoutArg) {
	if c, ok := p.children.ValueFor(child.ID); ok {
		c.Arg = arg
	}
}

// LayoutOptions returns child's layout options.
func (p *Pane) LayoutOptions(child *Pane) (LayoutOptions, bool) {
	c, ok := p.children.ValueFor(child.ID)
	if !ok {
		return LayoutOptions{}, false
	}
	return c.Options, true
}

// SetLayoutOptions replaces child's layout options.
func (p *Pane) SetLayoutOptions(child *Pane, opts LayoutOptions) {
	if c, ok := p.children.ValueFor(child.ID); ok {
		c.Options = opts
	}
}

// UpdateLayoutArgs replaces every child's layout arg with fn's result.
func (p *Pane) UpdateLayoutArgs(fn func(child *Pane, arg LayoutArg, opts LayoutOptions) LayoutArg) {
	p.children.ForEach(func(c *Child) {
		c.Arg = fn(c.Pane, c.Arg, c.Options)
	})
}

// isAncestorOf reports whether p appears in q's subtree, q included.
func (p *Pane) isAncestorOf(q *Pane) bool {
	if p == q {
		return true
	}
	found := false
	p.children.ForEach(func(c *Child) {
		if !found && c.Pane.isAncestorOf(q) {
			found = true
		}
	})
	return found
}

// --- Input properties ---

// ConsumesInput reports whether a hit on this pane stops the hit test.
func (p *Pane) ConsumesInput() bool { return p.consumesInput }

// SetConsumesInput controls whether panes behind this one also receive
// pointer events at points this pane covers.
func (p *Pane) SetConsumesInput(v bool) { p.consumesInput = v }

// SetContains installs a containment predicate for non-rectangular hit
// regions. It is consulted only for points already inside the pane's
// scissor. Nil accepts every such point.
func (p *Pane) SetContains(fn func(i, j float64) bool) {
	p.contains = fn
}

// SetHitShape restricts hits to shape, in coordinates relative to the
// viewport's bottom-left corner.
func (p *Pane) SetHitShape(shape HitShape) {
	if shape == nil {
		p.contains = nil
		return
	}
	p.contains = func(i, j float64) bool {
		return shape.Contains(i-float64(p.viewport.IStart), j-float64(p.viewport.JStart))
	}
}

func (p *Pane) isInside(i, j float64) bool {
	return p.contains == nil || p.contains(i, j)
}

// MouseCursor returns the pane's cursor hint.
func (p *Pane) MouseCursor() Cursor { return p.cursor }

// SetMouseCursor sets the cursor hint and notifies ancestors when it changes.
func (p *Pane) SetMouseCursor(c Cursor) {
	if c == p.cursor {
		return
	}
	p.cursor = c
	p.cursorChanged.Fire(struct{}{})
}

// --- Notifications ---

func (p *Pane) MouseDown() *Notification[PointerEvent]   { return &p.mouseDown }
func (p *Pane) MouseUp() *Notification[PointerEvent]     { return &p.mouseUp }
func (p *Pane) MouseMove() *Notification[PointerEvent]   { return &p.mouseMove }
func (p *Pane) MouseWheel() *Notification[PointerEvent]  { return &p.mouseWheel }
func (p *Pane) MouseEnter() *Notification[PointerEvent]  { return &p.mouseEnter }
func (p *Pane) MouseExit() *Notification[PointerEvent]   { return &p.mouseExit }
func (p *Pane) ContextMenu() *Notification[PointerEvent] { return &p.contextMenu }

// MouseCursorChanged fires when this pane's or any descendant's cursor hint
// changes, or when the set of descendants changes.
func (p *Pane) MouseCursorChanged() *Notification[struct{}] { return &p.cursorChanged }

// ViewportChanged fires with the new viewport after a layout pass that moved
// or resized the pane.
func (p *Pane) ViewportChanged() *Notification[Bounds] { return &p.viewportChanged }

// Disposed fires once, from Dispose.
func (p *Pane) Disposed() *Notification[struct{}] { return &p.disposed }

// notification returns the channel for a pointer event type.
func (p *Pane) notification(t EventType) *Notification[PointerEvent] {
	switch t {
	case EventMouseDown:
		return &p.mouseDown
	case EventMouseUp:
		return &p.mouseUp
	case EventMouseMove:
		return &p.mouseMove
	case EventMouseWheel:
		return &p.mouseWheel
	case EventMouseEnter:
		return &p.mouseEnter
	case EventMouseExit:
		return &p.mouseExit
	case EventContextMenu:
		return &p.contextMenu
	}
	panic(fmt.Sprintf("glimpse: no notification for %v", t))
}

// fire delivers ev to the pane's channel for t with the pane's viewport
// filled in.
func (p *Pane) fire(t EventType, ev PointerEvent) bool {
	ev.PaneViewport = p.viewport
	return p.notification(t).Fire(ev)
}

// --- Geometry ---

// Viewport returns the pane's drawing rectangle from the last layout pass.
func (p *Pane) Viewport() Bounds { return p.viewport }

// Scissor returns the visible part of the viewport: the viewport
// intersected with every ancestor's scissor.
func (p *Pane) Scissor() Bounds { return p.scissor }

// PrefSize returns the preferred size computed by the last layout pass.
func (p *Pane) PrefSize() PrefSize { return p.prefSize }

// --- Disposal ---

// Dispose fires Disposed on p and every descendant, depth-first, then clears
// all of their listeners. The tree holds strong references, so disposal is
// never implicit. Dispose does not detach p from its parent.
func (p *Pane) Dispose() {
	if p.isDisposed {
		return
	}
	p.isDisposed = true
	p.disposed.Fire(struct{}{})
	p.children.ForEach(func(c *Child) {
		c.Pane.Dispose()
	})
	for id, h := range p.childCursorHandles {
		if c, ok := p.children.ValueFor(id); ok {
			c.Pane.cursorChanged.Off(h)
		}
	}
	p.childCursorHandles = nil
	p.mouseDown.Dispose()
	p.mouseUp.Dispose()
	p.mouseMove.Dispose()
	p.mouseWheel.Dispose()
	p.mouseEnter.Dispose()
	p.mouseExit.Dispose()
	p.contextMenu.Dispose()
	p.cursorChanged.Dispose()
	p.viewportChanged.Dispose()
	p.disposed.Dispose()
	p.painters = nil
}

// IsDisposed reports whether Dispose has been called.
func (p *Pane) IsDisposed() bool {
	return p.isDisposed
}
