package glimpse

import (
	"cmp"
	"slices"
	"time"
)

// Drawable owns a content pane and turns redraw requests into frames. Any
// number of Redraw calls between two frames produce one layout and paint.
//
// Everything runs on the host's single loop: the host calls Tick once per
// iteration to advance timers and animations, and Frame when it can paint.
type Drawable struct {
	content *Pane
	width   int
	height  int
	pending bool
	debug   bool

	elapsed  time.Duration // clock driven by Tick
	lastTick time.Time
	timers   []*Timer
	anims    []Animation

	contentChanged Notification[*Pane]
}

// NewDrawable creates a drawable with a redraw pending.
func NewDrawable() *Drawable {
	return &Drawable{pending: true}
}

// ContentPane returns the root of the drawn tree.
func (d *Drawable) ContentPane() *Pane { return d.content }

// SetContentPane replaces the root of the drawn tree and requests a redraw.
// ContentChanged fires when the root actually changes.
func (d *Drawable) SetContentPane(p *Pane) {
	d.Redraw()
	if p == d.content {
		return
	}
	d.content = p
	d.contentChanged.Fire(p)
}

// ContentChanged fires with the new root after SetContentPane swaps it.
// Routers follow it to keep input on the drawn tree.
func (d *Drawable) ContentChanged() *Notification[*Pane] { return &d.contentChanged }

// Redraw requests a frame. Requests coalesce until the next Frame.
func (d *Drawable) Redraw() { d.pending = true }

// Pending reports whether a frame has been requested since the last one.
func (d *Drawable) Pending() bool { return d.pending }

// Size returns the surface size seen by the last Resize.
func (d *Drawable) Size() (w, h int) { return d.width, d.height }

// Resize records a new surface size and requests a redraw if it changed.
func (d *Drawable) Resize(w, h int) {
	if w == d.width && h == d.height {
		return
	}
	d.width, d.height = w, h
	d.Redraw()
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-pane
// use panics, tree depth and child count warnings are logged, and per-frame
// timing stats are logged.
func (d *Drawable) SetDebugMode(enabled bool) {
	d.debug = enabled
	globalDebug = enabled
}

// Frame lays out and paints the content pane onto s if a redraw is pending.
// The content pane fills the whole surface. Layout errors are returned and
// leave the surface unpainted.
func (d *Drawable) Frame(s Surface) error {
	if s == nil {
		return ErrNoSurface
	}
	d.Resize(s.Size())
	if !d.pending {
		return nil
	}
	d.pending = false
	if d.content == nil {
		return ErrNoContent
	}

	var stats debugStats
	var t0 time.Time
	if d.debug {
		t0 = time.Now()
	}

	if err := d.content.UpdatePrefSizes(nil); err != nil {
		return err
	}

	if d.debug {
		stats.prefSizeTime = time.Since(t0)
		t0 = time.Now()
	}

	bounds := NewBoundsFromRect(0, 0, d.width, d.height)
	if err := d.content.UpdateBounds(bounds, bounds); err != nil {
		return err
	}

	if d.debug {
		stats.boundsTime = time.Since(t0)
		t0 = time.Now()
	}

	d.content.Paint(s)

	if d.debug {
		stats.paintTime = time.Since(t0)
		stats.paneCount = countPanes(d.content)
		debugLog(stats)
	}
	return nil
}

// --- Clock ---

// Tick advances the drawable's clock to now, fires due timers in due order,
// then steps animations. Running animations request a redraw.
func (d *Drawable) Tick(now time.Time) {
	var dt time.Duration
	if !d.lastTick.IsZero() && now.After(d.lastTick) {
		dt = now.Sub(d.lastTick)
	}
	d.lastTick = now
	d.elapsed += dt

	d.runTimers()
	d.stepAnimations(dt)
}

// Elapsed returns the clock time accumulated by Tick.
func (d *Drawable) Elapsed() time.Duration { return d.elapsed }

func (d *Drawable) runTimers() {
	if len(d.timers) == 0 {
		return
	}
	due := make([]*Timer, 0, len(d.timers))
	for _, t := range d.timers {
		if !t.cancelled && t.due <= d.elapsed {
			due = append(due, t)
		}
	}
	slices.SortStableFunc(due, func(a, b *Timer) int {
		return cmp.Compare(a.due, b.due)
	})
	for _, t := range due {
		// An earlier callback may have cancelled it.
		if t.cancelled {
			continue
		}
		if t.every > 0 {
			t.due += t.every
			if t.due <= d.elapsed {
				t.due = d.elapsed + t.every
			}
		} else {
			t.cancelled = true
		}
		t.fn()
	}
	d.timers = slices.DeleteFunc(d.timers, func(t *Timer) bool { return t.cancelled })
}

func (d *Drawable) stepAnimations(dt time.Duration) {
	if len(d.anims) == 0 {
		return
	}
	secs := float32(dt.Seconds())
	running := d.anims
	d.anims = nil
	for _, a := range running {
		if !a.Update(secs) {
			d.anims = append(d.anims, a)
		}
	}
	d.Redraw()
}

// Animate registers an animation stepped by each Tick until it reports done.
func (d *Drawable) Animate(a Animation) {
	d.anims = append(d.anims, a)
	d.Redraw()
}

// Animating reports whether any animation is still running.
func (d *Drawable) Animating() bool { return len(d.anims) > 0 }
