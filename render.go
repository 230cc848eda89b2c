package glimpse

import "fmt"

// Surface is the rendering target the paint pass draws into. The core only
// sets its viewport and scissor; painters use Fill or a host-specific
// extension (see EbitenSurface).
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h int)
	SetViewport(b Bounds)
	SetScissor(b Bounds)
	// Fill paints b, clipped to the current scissor, with c.
	Fill(b Bounds, c Color)
}

// --- Layout pass ---

// UpdatePrefSizes runs the bottom-up half of a layout pass: every child's
// preferred size is computed before this pane's layout combines them. The
// result is stored on the pane and written to out when out is non-nil.
func (p *Pane) UpdatePrefSizes(out *PrefSize) error {
	var firstErr error
	p.children.ForEach(func(c *Child) {
		if firstErr != nil {
			return
		}
		firstErr = c.Pane.UpdatePrefSizes(&c.PrefSize)
	})
	if firstErr != nil {
		return firstErr
	}

	var size PrefSize
	if p.layout != nil {
		if err := p.layout.UpdatePrefSize(&size, p.children.ToSlice()); err != nil {
			return fmt.Errorf("pane %q: %w", p.Name, err)
		}
	} else if p.children.Len() > 0 {
		return fmt.Errorf("pane %q: %w", p.Name, ErrNoLayout)
	}
	p.prefSize = size
	if out != nil {
		*out = size
	}
	return nil
}

// UpdateBounds runs the top-down half of a layout pass. The pane takes
// viewport and scissor as its own, its layout positions the children, and
// each child's scissor becomes its viewport cropped to this pane's scissor.
// ViewportChanged fires only when the viewport actually moved or resized.
func (p *Pane) UpdateBounds(viewport, scissor Bounds) error {
	old := p.viewport
	p.viewport.SetBounds(viewport)
	p.scissor.SetBounds(scissor)

	if p.children.Len() > 0 {
		if p.layout == nil {
			return fmt.Errorf("pane %q: %w", p.Name, ErrNoLayout)
		}
		children := p.children.ToSlice()
		if err := p.layout.UpdateChildViewports(children, p.viewport); err != nil {
			return fmt.Errorf("pane %q: %w", p.Name, err)
		}
		for _, c := range children {
			c.Scissor = c.Viewport.CropTo(p.scissor)
			if err := c.Pane.UpdateBounds(c.Viewport, c.Scissor); err != nil {
				return err
			}
		}
	}

	if !old.Equal(p.viewport) {
		p.viewportChanged.Fire(p.viewport)
	}
	return nil
}

// --- Paint pass ---

// Paint draws the pane and its subtree in pre-order. A pane whose scissor is
// empty is culled together with its children, painters included.
func (p *Pane) Paint(s Surface) {
	if p.scissor.Empty() {
		return
	}
	s.SetViewport(p.viewport)
	s.SetScissor(p.scissor)
	for _, fn := range p.painters {
		fn(s, p.viewport)
	}
	p.children.ForEach(func(c *Child) {
		c.Pane.Paint(s)
	})
}

// --- Hit testing ---

// PanesAt returns the panes under (i, j), front to back. Children are tested
// before their parent, frontmost child first. A pane that consumes input
// stops the search among the panes behind it, but its ancestors are still
// hit. A pane that does not consume is recorded and the search goes on
// behind it.
func (p *Pane) PanesAt(i, j float64) []*Pane {
	var out []*Pane
	p.panesAt(i, j, &out)
	return out
}

func (p *Pane) panesAt(i, j float64, out *[]*Pane) bool {
	if !p.scissor.Contains(i, j) {
		return false
	}
	consumed := false
	for n := p.children.Len() - 1; n >= 0; n-- {
		if p.children.ValueAt(n).Pane.panesAt(i, j, out) {
			consumed = true
			break
		}
	}
	if consumed || p.isInside(i, j) {
		*out = append(*out, p)
		return consumed || p.consumesInput
	}
	return false
}
