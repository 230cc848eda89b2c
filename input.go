package glimpse

import (
	"slices"
	"time"
)

// --- Constants ---

const (
	defaultMultiClickWindow = 250 * time.Millisecond
)

// HostEvent is a raw pointer event reported by a host, already converted to
// surface coordinates (j grows upward).
type HostEvent struct {
	I, J float64
	// Button is the button that changed, for down and up events.
	Button MouseButton
	// Buttons is every button held once the event has been applied. Drag
	// recovery relies on it being accurate for move events.
	Buttons    Buttons
	WheelSteps int
	Modifiers  KeyModifiers
	// Time is when the event happened. Zero means "now".
	Time time.Time
	Raw  any
}

// CursorSink receives the resolved mouse cursor whenever it changes.
type CursorSink interface {
	SetCursor(c Cursor)
}

// CursorSinkFunc adapts a function to CursorSink.
type CursorSinkFunc func(Cursor)

func (f CursorSinkFunc) SetCursor(c Cursor) { f(c) }

// InputScope is the widest area beyond the surface in which a host can still
// observe the pointer, such as the whole window or enclosing frames. During a
// drag the router takes moves and releases from the scope, so a drag keeps
// tracking after the pointer leaves the surface.
type InputScope interface {
	// Listen registers handlers for pointer moves and button releases
	// anywhere in scope, in surface coordinates. The returned func
	// unregisters them.
	Listen(onMove, onUp func(HostEvent)) (stop func())
}

// EntityStore is the interface for optional ECS integration.
// When set on a Router, pointer events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries pointer event data for the ECS bridge.
type InteractionEvent struct {
	Type       EventType
	PaneID     uint32
	EntityID   uint32
	I, J       float64
	Button     MouseButton
	Modifiers  KeyModifiers
	ClickCount int
	WheelSteps int
}

// RouterConfig tunes a Router. Zero fields take defaults.
type RouterConfig struct {
	// MultiClickWindow is the longest gap between presses that still counts
	// as a multi-click. Default 250ms.
	MultiClickWindow time.Duration
	// DefaultCursor is used when no hovered pane has a cursor hint.
	// Default CursorDefault.
	DefaultCursor Cursor
	// Now supplies timestamps for events without one. Default time.Now.
	Now func() time.Time
}

func (c RouterConfig) withDefaults() RouterConfig {
	if c.MultiClickWindow <= 0 {
		c.MultiClickWindow = defaultMultiClickWindow
	}
	if c.DefaultCursor == CursorInherit {
		c.DefaultCursor = CursorDefault
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// Router turns one host's raw pointer events into pane notifications. It
// tracks which panes are hovered, counts multi-clicks, captures panes for the
// duration of a left-button drag and resolves the mouse cursor.
//
// Hosts call Down, Up, Move, Exit, Wheel and ContextMenu for events on the
// surface. When bound with an InputScope, drag moves and releases come from
// the scope and the surface copies are ignored; without one, the surface
// events drive the drag.
type Router struct {
	root  *Pane
	cfg   RouterConfig
	sink  CursorSink
	store EntityStore

	stopScope    func()
	hasScope     bool
	bound        bool
	cursorHandle Handle

	current     []*Pane // hovered panes, front to back
	dragPanes   []*Pane // panes captured at drag start
	dragging    bool
	pendingExit bool
	lastDrag    HostEvent

	clickCount int
	prevDown   time.Time
	cursor     Cursor
}

// NewRouter creates a router that delivers events to root's subtree. It
// follows cursor hint changes anywhere under root.
func NewRouter(root *Pane, cfg RouterConfig) *Router {
	r := &Router{cfg: cfg.withDefaults()}
	r.watch(root)
	return r
}

func (r *Router) watch(root *Pane) {
	r.root = root
	if root == nil {
		return
	}
	r.cursorHandle = root.MouseCursorChanged().On(func(struct{}) bool {
		r.refreshCursor()
		return false
	})
}

func (r *Router) unwatch() {
	if r.root != nil {
		r.root.MouseCursorChanged().Off(r.cursorHandle)
	}
	r.root = nil
}

// SetRoot moves the router onto another tree, typically from a drawable's
// ContentChanged notification. A drag in progress ends with a release
// delivered to its captured panes, and the old tree's hovered panes get an
// exit. Hover on the new tree starts with the next pointer event.
func (r *Router) SetRoot(root *Pane) {
	if root == r.root {
		return
	}
	r.unwatch()
	if r.dragging {
		up := r.lastDrag
		up.Button = MouseButtonLeft
		up.Buttons = 0
		up.Time = r.cfg.Now()
		up.Raw = nil
		panes := r.dragPanes
		r.dragging = false
		r.dragPanes = nil
		r.pendingExit = false
		r.fireAll(panes, EventMouseUp, up)
	}
	r.exitAll(HostEvent{I: -1, J: -1, Time: r.cfg.Now()})
	r.watch(root)
}

// Bind attaches the router to a host's cursor sink and input scope, either
// of which may be nil. A router can be bound once.
func (r *Router) Bind(sink CursorSink, scope InputScope) {
	if r.bound {
		panic("glimpse: router already bound")
	}
	r.bound = true
	r.sink = sink
	if scope != nil {
		r.hasScope = true
		r.stopScope = scope.Listen(r.scopeMove, r.scopeUp)
	}
	r.cursor = CursorInherit
	r.refreshCursor()
}

// Close unbinds the router from its root and scope.
func (r *Router) Close() {
	r.unwatch()
	if r.stopScope != nil {
		r.stopScope()
		r.stopScope = nil
	}
	r.sink = nil
}

// SetEntityStore sets the optional ECS bridge.
func (r *Router) SetEntityStore(store EntityStore) {
	r.store = store
}

// Dragging reports whether a left-button drag is in progress.
func (r *Router) Dragging() bool { return r.dragging }

// Hovered returns the panes currently under the pointer, front to back.
// The returned slice MUST NOT be mutated.
func (r *Router) Hovered() []*Pane { return r.current }

// Cursor returns the resolved mouse cursor.
func (r *Router) Cursor() Cursor { return r.cursor }

// ClickCount returns the click count of the most recent press.
func (r *Router) ClickCount() int { return r.clickCount }

// --- Host entry points ---

// Move handles a pointer move over the surface.
func (r *Router) Move(ev HostEvent) {
	if r.dragging {
		// The pointer is back over the surface.
		r.pendingExit = false
		if !r.hasScope {
			r.dragMove(ev)
		}
		return
	}
	r.updateHover(ev)
	r.fireAll(r.current, EventMouseMove, ev)
}

// Down handles a button press over the surface. A left press starts a drag
// that captures the panes under the pointer.
func (r *Router) Down(ev HostEvent) {
	now := r.eventTime(ev)
	if !r.prevDown.IsZero() && now.Sub(r.prevDown) < r.cfg.MultiClickWindow {
		r.clickCount++
	} else {
		r.clickCount = 1
	}
	r.prevDown = now

	if !r.dragging {
		r.updateHover(ev)
		if ev.Button == MouseButtonLeft {
			r.dragging = true
			r.pendingExit = false
			r.dragPanes = slices.Clone(r.current)
			r.lastDrag = ev
		}
	}
	r.fireAll(r.current, EventMouseDown, ev)
}

// Up handles a button release over the surface.
func (r *Router) Up(ev HostEvent) {
	if r.dragging {
		if !r.hasScope {
			r.dragUp(ev)
		}
		return
	}
	r.updateHover(ev)
	r.fireAll(r.current, EventMouseUp, ev)
}

// Exit handles the pointer leaving the surface. During a drag the exit is
// held back until the drag ends.
func (r *Router) Exit(ev HostEvent) {
	if r.dragging {
		r.pendingExit = true
		return
	}
	r.exitAll(ev)
}

// Wheel delivers a wheel event to the hovered panes.
func (r *Router) Wheel(ev HostEvent) {
	r.fireAll(r.current, EventMouseWheel, ev)
}

// ContextMenu delivers a context-menu request to the hovered panes.
func (r *Router) ContextMenu(ev HostEvent) {
	r.fireAll(r.current, EventContextMenu, ev)
}

// --- Scope handlers ---

func (r *Router) scopeMove(ev HostEvent) {
	if r.dragging {
		r.dragMove(ev)
	}
}

func (r *Router) scopeUp(ev HostEvent) {
	if r.dragging {
		r.dragUp(ev)
	}
}

// --- Drag state machine ---

// dragMove delivers a move to the captured panes. A move that arrives with
// the left button no longer held means the release was lost somewhere the
// host could not see; the drag is ended with a synthetic release at the last
// drag position.
func (r *Router) dragMove(ev HostEvent) {
	if !ev.Buttons.Has(MouseButtonLeft) {
		up := r.lastDrag
		up.Button = MouseButtonLeft
		up.Buttons = ev.Buttons
		up.Time = r.eventTime(ev)
		up.Raw = nil
		r.endDrag(up)
		return
	}
	r.lastDrag = ev
	r.fireAll(r.dragPanes, EventMouseMove, ev)
}

func (r *Router) dragUp(ev HostEvent) {
	if ev.Button != MouseButtonLeft {
		r.fireAll(r.dragPanes, EventMouseUp, ev)
		return
	}
	r.endDrag(ev)
}

// endDrag releases the captured panes and replays the hover changes that
// were suspended during the drag.
func (r *Router) endDrag(ev HostEvent) {
	panes := r.dragPanes
	r.dragging = false
	r.dragPanes = nil
	r.fireAll(panes, EventMouseUp, ev)

	if r.pendingExit {
		r.pendingExit = false
		r.exitAll(ev)
		return
	}
	r.updateHover(ev)
}

// --- Hover ---

// updateHover recomputes the hit list at ev and fires exits, then enters.
func (r *Router) updateHover(ev HostEvent) {
	var next []*Pane
	if r.root != nil {
		next = r.root.PanesAt(ev.I, ev.J)
	}
	exited, entered := diffHover(r.current, next)
	r.current = next
	r.fireAll(exited, EventMouseExit, ev)
	r.fireAll(entered, EventMouseEnter, ev)
	r.refreshCursor()
}

func (r *Router) exitAll(ev HostEvent) {
	exited := r.current
	r.current = nil
	r.fireAll(exited, EventMouseExit, ev)
	r.refreshCursor()
}

// diffHover returns the panes only in prev and the panes only in next, each
// in its list's order.
func diffHover(prev, next []*Pane) (exited, entered []*Pane) {
	inPrev := make(map[*Pane]struct{}, len(prev))
	for _, p := range prev {
		inPrev[p] = struct{}{}
	}
	inNext := make(map[*Pane]struct{}, len(next))
	for _, p := range next {
		inNext[p] = struct{}{}
	}
	for _, p := range prev {
		if _, ok := inNext[p]; !ok {
			exited = append(exited, p)
		}
	}
	for _, p := range next {
		if _, ok := inPrev[p]; !ok {
			entered = append(entered, p)
		}
	}
	return exited, entered
}

// refreshCursor resolves the cursor from the hovered panes, front to back,
// and pushes it to the sink when it changes.
func (r *Router) refreshCursor() {
	resolved := r.cfg.DefaultCursor
	for _, p := range r.current {
		if c := p.MouseCursor(); c != CursorInherit {
			resolved = c
			break
		}
	}
	if resolved == r.cursor {
		return
	}
	r.cursor = resolved
	if r.sink != nil {
		r.sink.SetCursor(resolved)
	}
}

// --- Event dispatch ---

func (r *Router) eventTime(ev HostEvent) time.Time {
	if ev.Time.IsZero() {
		return r.cfg.Now()
	}
	return ev.Time
}

// fireAll delivers one event to each pane in panes. Panes disposed by an
// earlier listener in the same dispatch are skipped.
func (r *Router) fireAll(panes []*Pane, t EventType, ev HostEvent) {
	if len(panes) == 0 {
		return
	}
	pe := PointerEvent{
		I:          ev.I,
		J:          ev.J,
		WheelSteps: ev.WheelSteps,
		Button:     ev.Button,
		Modifiers:  ev.Modifiers,
		Raw:        ev.Raw,
	}
	if t == EventMouseDown || t == EventMouseUp {
		pe.ClickCount = r.clickCount
	}
	for _, p := range slices.Clone(panes) {
		if p.IsDisposed() {
			continue
		}
		p.fire(t, pe)
		r.emitInteractionEvent(t, p, pe)
	}
}

// --- ECS bridge ---

func (r *Router) emitInteractionEvent(t EventType, p *Pane, pe PointerEvent) {
	if r.store == nil || p.EntityID == 0 {
		return
	}
	r.store.EmitEvent(InteractionEvent{
		Type:       t,
		PaneID:     p.ID,
		EntityID:   p.EntityID,
		I:          pe.I,
		J:          pe.J,
		Button:     pe.Button,
		Modifiers:  pe.Modifiers,
		ClickCount: pe.ClickCount,
		WheelSteps: pe.WheelSteps,
	})
}
