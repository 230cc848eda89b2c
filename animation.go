package glimpse

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation is stepped by a Drawable's Tick. Update advances it by dt
// seconds and reports whether it has finished.
type Animation interface {
	Update(dt float32) (done bool)
}

// AnimationFunc adapts a function to Animation.
type AnimationFunc func(dt float32) bool

func (f AnimationFunc) Update(dt float32) bool { return f(dt) }

// ScrollTween eases a scroll layout's offset toward a target. Each step
// writes the offset and the layout clamps it on the next pass.
//
// There is no global animation manager: register it with Drawable.Animate
// or call Update yourself.
type ScrollTween struct {
	layout *ScrollLayout
	tween  *gween.Tween
	to     float64
	Done   bool
}

// TweenScroll creates a ScrollTween that moves l's offset from its current
// value to `to` over duration seconds using the easing function.
func TweenScroll(l *ScrollLayout, to float64, duration float32, fn ease.TweenFunc) *ScrollTween {
	return &ScrollTween{
		layout: l,
		tween:  gween.New(float32(l.Offset()), float32(to), duration, fn),
		to:     to,
	}
}

// Target returns the offset the tween ends at.
func (t *ScrollTween) Target() float64 { return t.to }

// Stop ends the tween where it is. The next Update reports done.
func (t *ScrollTween) Stop() { t.Done = true }

// Update advances the tween by dt seconds and writes the offset.
func (t *ScrollTween) Update(dt float32) bool {
	if t.Done {
		return true
	}
	val, finished := t.tween.Update(dt)
	if finished {
		t.layout.SetOffset(t.to)
	} else {
		t.layout.SetOffset(float64(val))
	}
	t.Done = finished
	return finished
}
