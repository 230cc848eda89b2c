package glimpse

import (
	"fmt"
	"math"
)

// ScrollLayout positions a single child taller than its parent inside a
// vertically scrolling window. The child must report a preferred height.
//
// Offset is the number of content pixels scrolled off the top. Each layout
// pass clamps it to [0, ContentHeight-VisibleHeight] and stores the effective
// value back, so controllers such as scrollbars can read the current extent.
type ScrollLayout struct {
	offset        float64
	contentHeight int
	visibleHeight int

	// Changed fires after a pass that moved the content or resized it.
	Changed Notification[*ScrollLayout]
}

// NewVerticalScrollLayout returns a scroll layout scrolled to the top.
func NewVerticalScrollLayout() *ScrollLayout {
	return &ScrollLayout{}
}

// Offset returns the scroll offset in pixels.
func (l *ScrollLayout) Offset() float64 { return l.offset }

// SetOffset requests a new offset. It takes effect, clamped, on the next
// layout pass.
func (l *ScrollLayout) SetOffset(px float64) { l.offset = px }

// ScrollBy adjusts the requested offset by delta pixels.
func (l *ScrollLayout) ScrollBy(delta float64) { l.offset += delta }

// ContentHeight returns the child's height as of the last pass.
func (l *ScrollLayout) ContentHeight() int { return l.contentHeight }

// VisibleHeight returns the parent's height as of the last pass.
func (l *ScrollLayout) VisibleHeight() int { return l.visibleHeight }

// MaxOffset returns the largest effective offset as of the last pass.
func (l *ScrollLayout) MaxOffset() int {
	return max(l.contentHeight-l.visibleHeight, 0)
}

func (l *ScrollLayout) UpdatePrefSize(parent *PrefSize, children []*Child) error {
	c, err := singleChild(children)
	if err != nil {
		return err
	}
	if c == nil {
		*parent = PrefSize{}
		return nil
	}
	*parent = PrefSize{W: c.PrefSize.W}
	return nil
}

func (l *ScrollLayout) UpdateChildViewports(children []*Child, viewport Bounds) error {
	c, err := singleChild(children)
	if err != nil || c == nil {
		return err
	}
	h, ok := c.PrefSize.H.Get()
	if !ok {
		return fmt.Errorf("%w (pane %q)", ErrNoPrefHeight, c.Pane.Name)
	}

	var j int
	if h <= viewport.H() {
		j = viewport.JEnd - h
	} else {
		offset := max(0, int(math.Round(l.offset)))
		j = min(viewport.JEnd-h+offset, viewport.JStart)
	}
	c.Viewport.SetRect(viewport.IStart, j, viewport.W(), h)

	offset := float64(j + h - viewport.JEnd)
	changed := offset != l.offset || h != l.contentHeight || viewport.H() != l.visibleHeight
	l.offset = offset
	l.contentHeight = h
	l.visibleHeight = viewport.H()
	if changed {
		l.Changed.Fire(l)
	}
	return nil
}
