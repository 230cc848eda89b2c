package glimpse

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

type linearLayout struct {
	vertical bool // rows stack along j, columns along i
	forward  bool // top-to-bottom or left-to-right
}

// NewRowLayout stacks children vertically, one row each. Children are placed
// by their Order arg; Hidden, nil, or Options.Hide collapse a child to an
// empty rectangle.
//
// A row's height is Options.Height if set, else the child's preferred
// height. Rows with neither share the leftover height equally, rounded so
// that the rows tile the parent with no gaps or overlaps. Every row spans the
// parent's full width.
//
// The parent prefers the sum of row heights (no opinion if any row is
// flexible) and the widest preferred width among rows not flagged
// IgnoreWidth.
func NewRowLayout(topToBottom bool) Layout {
	return linearLayout{vertical: true, forward: topToBottom}
}

// NewColumnLayout is NewRowLayout turned sideways: children stack along i,
// sized by Options.Width or their preferred width, and the cross-axis opt-out
// is IgnoreHeight.
func NewColumnLayout(leftToRight bool) Layout {
	return linearLayout{vertical: false, forward: leftToRight}
}

type placedChild struct {
	child *Child
	order float64
}

// partition splits children into placed (sorted by order, ties by insertion)
// and hidden.
func (l linearLayout) partition(children []*Child) (placed []placedChild, hidden []*Child, err error) {
	for _, c := range children {
		switch arg := c.Arg.(type) {
		case nil, hiddenArg:
			hidden = append(hidden, c)
		case Order:
			o := float64(arg)
			if math.IsNaN(o) {
				return nil, nil, fmt.Errorf("%w: order is NaN", ErrLayoutArg)
			}
			if c.Options.Hide {
				hidden = append(hidden, c)
				continue
			}
			placed = append(placed, placedChild{child: c, order: o})
		default:
			return nil, nil, fmt.Errorf("%w: linear got %T", ErrLayoutArg, c.Arg)
		}
	}
	slices.SortStableFunc(placed, func(a, b placedChild) int {
		return cmp.Compare(a.order, b.order)
	})
	return placed, hidden, nil
}

// axisExtent is the child's fixed or preferred length along the stacking axis.
func (l linearLayout) axisExtent(c *Child) Extent {
	if l.vertical {
		if c.Options.Height.Set() {
			return c.Options.Height
		}
		return c.PrefSize.H
	}
	if c.Options.Width.Set() {
		return c.Options.Width
	}
	return c.PrefSize.W
}

func (l linearLayout) crossExtent(c *Child) (Extent, bool) {
	if l.vertical {
		return c.PrefSize.W, !c.Options.IgnoreWidth
	}
	return c.PrefSize.H, !c.Options.IgnoreHeight
}

func (l linearLayout) UpdatePrefSize(parent *PrefSize, children []*Child) error {
	placed, _, err := l.partition(children)
	if err != nil {
		return err
	}
	axis, cross := Px(0), Px(0)
	for _, p := range placed {
		if e := l.axisExtent(p.child); !e.Set() {
			axis = NoExtent
		} else if axis.Set() {
			axis = Px(axis.px + e.px)
		}
		if e, honored := l.crossExtent(p.child); honored {
			cross = maxExtent(cross, e)
		}
	}
	if l.vertical {
		*parent = PrefSize{W: cross, H: axis}
	} else {
		*parent = PrefSize{W: axis, H: cross}
	}
	return nil
}

func (l linearLayout) UpdateChildViewports(children []*Child, viewport Bounds) error {
	placed, hidden, err := l.partition(children)
	if err != nil {
		return err
	}
	for _, c := range hidden {
		c.Viewport.Clear()
	}
	if len(placed) == 0 {
		return nil
	}

	available := viewport.W()
	if l.vertical {
		available = viewport.H()
	}

	sizes := make([]int, len(placed))
	flex := make([]bool, len(placed))
	fixed, numFlex := 0, 0
	for n, p := range placed {
		if e := l.axisExtent(p.child); e.Set() {
			sizes[n] = e.px
			fixed += e.px
		} else {
			flex[n] = true
			numFlex++
		}
	}
	if numFlex > 0 {
		distributeFlex(sizes, flex, max(available-fixed, 0), numFlex)
	}

	cursor := viewport.IStart
	switch {
	case l.vertical && l.forward:
		cursor = viewport.JEnd
	case l.vertical:
		cursor = viewport.JStart
	case !l.forward:
		cursor = viewport.IEnd
	}
	for n, p := range placed {
		size := sizes[n]
		vp := &p.child.Viewport
		switch {
		case l.vertical && l.forward:
			vp.SetEdges(viewport.IStart, viewport.IEnd, cursor-size, cursor)
			cursor -= size
		case l.vertical:
			vp.SetEdges(viewport.IStart, viewport.IEnd, cursor, cursor+size)
			cursor += size
		case l.forward:
			vp.SetEdges(cursor, cursor+size, viewport.JStart, viewport.JEnd)
			cursor += size
		default:
			vp.SetEdges(cursor-size, cursor, viewport.JStart, viewport.JEnd)
			cursor -= size
		}
		// Extents that overrun the parent are cut off at its edge.
		*vp = vp.ClampTo(viewport)
	}
	return nil
}

// distributeFlex fills the flexible entries of sizes with shares of total. Each
// share is rounded after adding the running remainder, and the last share
// takes whatever is left, so the shares always sum to total exactly.
func distributeFlex(sizes []int, flex []bool, total, numFlex int) {
	share := float64(total) / float64(numFlex)
	carry, used, seen := 0.0, 0, 0
	for n := range sizes {
		if !flex[n] {
			continue
		}
		seen++
		if seen == numFlex {
			sizes[n] = total - used
			return
		}
		exact := share + carry
		px := int(math.Round(exact))
		carry = exact - float64(px)
		sizes[n] = px
		used += px
	}
}
