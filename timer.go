package glimpse

import "time"

// Timer is a callback scheduled on a Drawable's clock. It fires from Tick,
// never concurrently with anything else.
type Timer struct {
	due       time.Duration
	every     time.Duration
	fn        func()
	cancelled bool
}

// After schedules fn to run once, delay after the current clock time.
func (d *Drawable) After(delay time.Duration, fn func()) *Timer {
	t := &Timer{due: d.elapsed + delay, fn: fn}
	d.timers = append(d.timers, t)
	return t
}

// Every schedules fn to run repeatedly, first after interval and then every
// interval. A tick that falls behind fires once and reschedules from now.
func (d *Drawable) Every(interval time.Duration, fn func()) *Timer {
	if interval <= 0 {
		panic("glimpse: Every interval must be positive")
	}
	t := &Timer{due: d.elapsed + interval, every: interval, fn: fn}
	d.timers = append(d.timers, t)
	return t
}

// Cancel stops the timer. It is safe to call more than once and from inside
// any timer callback.
func (t *Timer) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Active reports whether the timer will still fire.
func (t *Timer) Active() bool {
	return t != nil && !t.cancelled
}
