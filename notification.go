package glimpse

// Handle identifies a registered listener. Go closures are not comparable, so
// listeners are removed by the handle On returned rather than by value.
type Handle uint64

// handleCounter is a plain counter; glimpse is single-threaded.
var handleCounter Handle

func nextHandle() Handle {
	handleCounter++
	return handleCounter
}

type listener[T any] struct {
	handle Handle
	fn     func(T) bool
}

// Notification is a typed event channel. Listeners run in registration order
// and the first one returning true consumes the event.
//
// On and Off called while a Fire is in progress (including from inside a
// listener, or from a nested Fire on the same Notification) are queued and
// applied in request order once the outermost Fire returns, even if a
// listener panics. A listener added mid-fire is therefore first invoked on
// the next Fire, and one removed mid-fire still runs in the current pass.
type Notification[T any] struct {
	listeners *OrderedSet[Handle, listener[T]]
	firing    int
	pending   []func()
}

// NewNotification returns an empty Notification. The zero value is also
// ready to use.
func NewNotification[T any]() *Notification[T] {
	return &Notification[T]{}
}

func (n *Notification[T]) set() *OrderedSet[Handle, listener[T]] {
	if n.listeners == nil {
		n.listeners = NewOrderedSet(func(l listener[T]) Handle { return l.handle })
	}
	return n.listeners
}

// On registers fn and returns a handle for Off.
func (n *Notification[T]) On(fn func(T) bool) Handle {
	l := listener[T]{handle: nextHandle(), fn: fn}
	if n.firing > 0 {
		n.pending = append(n.pending, func() { n.set().Add(l) })
	} else {
		n.set().Add(l)
	}
	return l.handle
}

// OnEvent registers a listener that never consumes.
func (n *Notification[T]) OnEvent(fn func(T)) Handle {
	return n.On(func(v T) bool {
		fn(v)
		return false
	})
}

// Off unregisters the listener for h. Unknown handles are ignored.
func (n *Notification[T]) Off(h Handle) {
	if n.firing > 0 {
		n.pending = append(n.pending, func() { n.set().RemoveID(h) })
		return
	}
	n.set().RemoveID(h)
}

// Len returns the number of registered listeners, not counting queued
// additions.
func (n *Notification[T]) Len() int {
	if n.listeners == nil {
		return 0
	}
	return n.listeners.Len()
}

// Fire invokes listeners in registration order and stops at the first one
// that returns true, which Fire then returns. Panics raised by a listener
// propagate to the caller.
func (n *Notification[T]) Fire(v T) bool {
	n.firing++
	defer n.endFire()

	set := n.set()
	// Indexing (not a snapshot) lets Dispose cut the pass short.
	for i := 0; i < set.Len(); i++ {
		if set.ValueAt(i).fn(v) {
			return true
		}
	}
	return false
}

// endFire is the deferred guard paired with the increment in Fire.
func (n *Notification[T]) endFire() {
	n.firing--
	if n.firing > 0 || len(n.pending) == 0 {
		return
	}
	for len(n.pending) > 0 {
		ops := n.pending
		n.pending = nil
		for _, op := range ops {
			op()
		}
	}
}

// Dispose removes every listener immediately, including queued additions.
func (n *Notification[T]) Dispose() {
	n.pending = nil
	if n.listeners != nil {
		n.listeners.Clear()
	}
}
