package glimpse

import (
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

// ScrollbarStyle controls how a scrollbar looks.
type ScrollbarStyle struct {
	Width    int
	MinThumb int
	Track    Color
	Thumb    Color
}

// DefaultScrollbarStyle is a narrow grey bar.
var DefaultScrollbarStyle = ScrollbarStyle{
	Width:    12,
	MinThumb: 16,
	Track:    Color{0.15, 0.15, 0.15, 1},
	Thumb:    Color{0.55, 0.55, 0.55, 1},
}

// Scrollbar is the controller behind a vertical scrollbar pane.
type Scrollbar struct {
	pane   *Pane
	d      *Drawable
	layout *ScrollLayout
	cfg    ScrollConfig
	style  ScrollbarStyle

	dragging   bool
	grabJ      float64
	grabOffset float64

	pageDir   int // -1 pages toward the top, +1 toward the bottom, 0 idle
	pointerJ  float64
	holdDelay *Timer
	holdRep   *Timer
}

// NewVerticalScrollbar creates a scrollbar pane controlling l. Dragging the
// thumb scrolls proportionally. Pressing the track pages by the visible
// height, and holding the press repeats the page every cfg.HoldRepeatMS after
// cfg.HoldDelayMS until the thumb reaches the pointer or the button is
// released. Timers run on d's clock.
func NewVerticalScrollbar(d *Drawable, l *ScrollLayout, cfg ScrollConfig, style ScrollbarStyle) *Scrollbar {
	sb := &Scrollbar{
		pane:   NewPane("scrollbar", NewFixedSizeLayout(Px(style.Width), NoExtent)),
		d:      d,
		layout: l,
		cfg:    cfg,
		style:  style,
	}
	sb.pane.AddPainter(sb.paint)
	sb.pane.MouseDown().OnEvent(sb.onDown)
	sb.pane.MouseMove().OnEvent(sb.onMove)
	sb.pane.MouseUp().OnEvent(sb.onUp)
	sb.pane.Disposed().OnEvent(func(struct{}) { sb.stopPaging() })
	return sb
}

// Pane returns the scrollbar's pane, to be placed beside the scroll viewport.
func (sb *Scrollbar) Pane() *Pane { return sb.pane }

// Dragging reports whether the thumb is being dragged.
func (sb *Scrollbar) Dragging() bool { return sb.dragging }

// Paging reports whether a track press is held.
func (sb *Scrollbar) Paging() bool { return sb.pageDir != 0 }

// Thumb returns the thumb rectangle inside track, or false when the content
// fits and there is nothing to scroll.
func (sb *Scrollbar) Thumb(track Bounds) (Bounds, bool) {
	content := sb.layout.ContentHeight()
	visible := sb.layout.VisibleHeight()
	if content <= visible || content <= 0 || track.Empty() {
		return Bounds{}, false
	}
	h := int(math.Round(float64(track.H()) * float64(visible) / float64(content)))
	h = min(max(h, sb.style.MinThumb), track.H())
	jEnd := track.JEnd - int(math.Round(sb.layout.Offset()/float64(content)*float64(track.H())))
	jEnd = max(jEnd, track.JStart+h)
	return NewBoundsFromEdges(track.IStart, track.IEnd, jEnd-h, jEnd), true
}

func (sb *Scrollbar) paint(s Surface, vp Bounds) {
	s.Fill(vp, sb.style.Track)
	if thumb, ok := sb.Thumb(vp); ok {
		s.Fill(thumb, sb.style.Thumb)
	}
}

func (sb *Scrollbar) scrollTo(offset float64) {
	offset = min(max(offset, 0), float64(sb.layout.MaxOffset()))
	if offset == sb.layout.Offset() {
		return
	}
	sb.layout.SetOffset(offset)
	sb.d.Redraw()
}

func (sb *Scrollbar) onDown(ev PointerEvent) {
	if ev.Button != MouseButtonLeft {
		return
	}
	thumb, ok := sb.Thumb(ev.PaneViewport)
	if !ok {
		return
	}
	switch {
	case ev.J >= float64(thumb.JStart) && ev.J < float64(thumb.JEnd):
		sb.dragging = true
		sb.grabJ = ev.J
		sb.grabOffset = sb.layout.Offset()
	case ev.J >= float64(thumb.JEnd):
		sb.startPaging(-1, ev.J)
	default:
		sb.startPaging(+1, ev.J)
	}
}

func (sb *Scrollbar) onMove(ev PointerEvent) {
	sb.pointerJ = ev.J
	if !sb.dragging {
		return
	}
	track := ev.PaneViewport
	if track.H() <= 0 {
		return
	}
	// Moving the pointer down scrolls toward the end.
	scale := float64(sb.layout.ContentHeight()) / float64(track.H())
	sb.scrollTo(sb.grabOffset + (sb.grabJ-ev.J)*scale)
}

func (sb *Scrollbar) onUp(ev PointerEvent) {
	if ev.Button != MouseButtonLeft {
		return
	}
	sb.dragging = false
	sb.stopPaging()
}

func (sb *Scrollbar) startPaging(dir int, j float64) {
	sb.stopPaging()
	sb.pageDir = dir
	sb.pointerJ = j
	sb.page()
	sb.holdDelay = sb.d.After(sb.cfg.HoldDelay(), func() {
		repeat := sb.cfg.HoldRepeat()
		if repeat <= 0 {
			repeat = 50 * time.Millisecond
		}
		sb.holdRep = sb.d.Every(repeat, sb.page)
	})
}

// page scrolls one visible height in the paging direction, stopping once the
// thumb has reached the pointer.
func (sb *Scrollbar) page() {
	if sb.pageDir == 0 {
		return
	}
	if thumb, ok := sb.Thumb(sb.pane.Viewport()); ok && sb.holdRep != nil {
		if sb.pageDir < 0 && sb.pointerJ < float64(thumb.JEnd) ||
			sb.pageDir > 0 && sb.pointerJ >= float64(thumb.JStart) {
			return
		}
	}
	step := float64(sb.layout.VisibleHeight())
	sb.scrollTo(sb.layout.Offset() + float64(sb.pageDir)*step)
}

func (sb *Scrollbar) stopPaging() {
	sb.pageDir = 0
	sb.holdDelay.Cancel()
	sb.holdRep.Cancel()
	sb.holdDelay, sb.holdRep = nil, nil
}

// AttachWheelScroll makes wheel events on p scroll l by cfg.WheelStepPx per
// step, eased over cfg.AnimateMS when it is positive. Wheel events over any
// of p's descendants reach p too. The returned handle detaches the listener
// from p.MouseWheel().
func AttachWheelScroll(d *Drawable, p *Pane, l *ScrollLayout, cfg ScrollConfig) Handle {
	var tween *ScrollTween
	return p.MouseWheel().On(func(ev PointerEvent) bool {
		if ev.WheelSteps == 0 {
			return false
		}
		base := l.Offset()
		if tween != nil && !tween.Done {
			base = tween.Target()
			tween.Stop()
		}
		target := base + float64(ev.WheelSteps)*cfg.WheelStepPx
		target = min(max(target, 0), float64(l.MaxOffset()))

		if cfg.AnimateMS <= 0 {
			l.SetOffset(target)
			d.Redraw()
			return true
		}
		tween = TweenScroll(l, target, float32(cfg.AnimateDuration().Seconds()), ease.OutQuad)
		d.Animate(tween)
		return true
	})
}
