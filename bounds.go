package glimpse

import "fmt"

// Bounds is an axis-aligned pixel rectangle on the rendering surface, given by
// two independent edge pairs. i grows rightward and j grows upward, with the
// origin at the bottom-left of the surface.
//
// Bounds is a value type: a copy is the read-only projection handed to
// painters, listeners and layouts. The owner (a pane, or a child slot during
// layout) mutates its own copy through the pointer methods.
//
// IEnd < IStart or JEnd < JStart is legal and treated as empty.
type Bounds struct {
	IStart, IEnd int
	JStart, JEnd int
}

// NewBoundsFromEdges returns the rectangle with the given edges.
func NewBoundsFromEdges(iStart, iEnd, jStart, jEnd int) Bounds {
	return Bounds{IStart: iStart, IEnd: iEnd, JStart: jStart, JEnd: jEnd}
}

// NewBoundsFromRect returns the rectangle with origin (i, j) and size w×h.
func NewBoundsFromRect(i, j, w, h int) Bounds {
	return Bounds{IStart: i, IEnd: i + w, JStart: j, JEnd: j + h}
}

// I returns the left edge.
func (b Bounds) I() int { return b.IStart }

// J returns the bottom edge.
func (b Bounds) J() int { return b.JStart }

// W returns the width, which may be negative for a degenerate rectangle.
func (b Bounds) W() int { return b.IEnd - b.IStart }

// H returns the height, which may be negative for a degenerate rectangle.
func (b Bounds) H() int { return b.JEnd - b.JStart }

// Empty reports whether the rectangle has no drawable area.
func (b Bounds) Empty() bool {
	return b.W() <= 0 || b.H() <= 0
}

// XFrac returns the fraction of the width at which i lies (0 at IStart,
// 1 at IEnd).
func (b Bounds) XFrac(i float64) float64 {
	return (i - float64(b.IStart)) / float64(b.W())
}

// YFrac returns the fraction of the height at which j lies.
func (b Bounds) YFrac(j float64) float64 {
	return (j - float64(b.JStart)) / float64(b.H())
}

// FracI returns the i coordinate at fraction f of the width.
func (b Bounds) FracI(f float64) float64 {
	return float64(b.IStart) + f*float64(b.W())
}

// FracJ returns the j coordinate at fraction f of the height.
func (b Bounds) FracJ(f float64) float64 {
	return float64(b.JStart) + f*float64(b.H())
}

// Contains reports whether the point lies inside. The start edges are
// inclusive and the end edges exclusive, so adjacent rectangles never both
// contain a point.
func (b Bounds) Contains(i, j float64) bool {
	return float64(b.IStart) <= i && i < float64(b.IEnd) &&
		float64(b.JStart) <= j && j < float64(b.JEnd)
}

// ContainsBounds reports whether o lies entirely within b. Empty rectangles
// are contained anywhere.
func (b Bounds) ContainsBounds(o Bounds) bool {
	if o.Empty() {
		return true
	}
	return o.IStart >= b.IStart && o.IEnd <= b.IEnd &&
		o.JStart >= b.JStart && o.JEnd <= b.JEnd
}

// CropTo returns the intersection of b with parent. A disjoint result keeps
// the crossed-over edges, which makes it empty.
func (b Bounds) CropTo(parent Bounds) Bounds {
	return Bounds{
		IStart: max(b.IStart, parent.IStart),
		IEnd:   min(b.IEnd, parent.IEnd),
		JStart: max(b.JStart, parent.JStart),
		JEnd:   min(b.JEnd, parent.JEnd),
	}
}

// ClampTo moves each edge of b into parent's span. Unlike CropTo, a disjoint
// rectangle collapses onto parent's nearest edge instead of crossing over.
func (b Bounds) ClampTo(parent Bounds) Bounds {
	clamp := func(v, lo, hi int) int { return min(max(v, lo), hi) }
	return Bounds{
		IStart: clamp(b.IStart, parent.IStart, parent.IEnd),
		IEnd:   clamp(b.IEnd, parent.IStart, parent.IEnd),
		JStart: clamp(b.JStart, parent.JStart, parent.JEnd),
		JEnd:   clamp(b.JEnd, parent.JStart, parent.JEnd),
	}
}

// Equal reports whether both rectangles have identical edges.
func (b Bounds) Equal(o Bounds) bool {
	return b == o
}

func (b Bounds) String() string {
	return fmt.Sprintf("[i %d..%d, j %d..%d]", b.IStart, b.IEnd, b.JStart, b.JEnd)
}

// SetEdges overwrites all four edges.
func (b *Bounds) SetEdges(iStart, iEnd, jStart, jEnd int) {
	b.IStart, b.IEnd, b.JStart, b.JEnd = iStart, iEnd, jStart, jEnd
}

// SetRect overwrites the rectangle from an origin and a size.
func (b *Bounds) SetRect(i, j, w, h int) {
	b.SetEdges(i, i+w, j, j+h)
}

// SetBounds copies o.
func (b *Bounds) SetBounds(o Bounds) {
	*b = o
}

// CropToParent clamps b in place to parent.
func (b *Bounds) CropToParent(parent Bounds) {
	*b = b.CropTo(parent)
}

// Clear collapses b to an empty rectangle at the origin.
func (b *Bounds) Clear() {
	*b = Bounds{}
}
