package glimpse

import "fmt"

// Extent is a preferred length along one axis. The zero value means "no
// opinion": the pane is happy to fill whatever space it is given.
type Extent struct {
	px int
	ok bool
}

// Px returns an Extent of n pixels.
func Px(n int) Extent {
	return Extent{px: n, ok: true}
}

// NoExtent is the "no opinion" extent.
var NoExtent = Extent{}

// Get returns the pixel length and whether one is set.
func (e Extent) Get() (int, bool) {
	return e.px, e.ok
}

// Set reports whether the extent carries a length.
func (e Extent) Set() bool { return e.ok }

// Or returns the length, or fallback if there is none.
func (e Extent) Or(fallback int) int {
	if e.ok {
		return e.px
	}
	return fallback
}

func (e Extent) String() string {
	if !e.ok {
		return "none"
	}
	return fmt.Sprintf("%dpx", e.px)
}

// maxExtent folds b into a running maximum. Any missing value poisons the
// result: if one participant has no opinion, neither does the parent.
func maxExtent(a, b Extent) Extent {
	if !a.ok || !b.ok {
		return NoExtent
	}
	return Px(max(a.px, b.px))
}

// PrefSize is a pane's preferred width and height.
type PrefSize struct {
	W, H Extent
}

// LayoutOptions are per-child settings interpreted by the parent's layout.
// Fields a layout does not use are ignored.
type LayoutOptions struct {
	// Width and Height fix the child's extent along a linear layout's axis.
	// Unset means "use the child's preferred extent".
	Width, Height Extent

	// Hide collapses the child in linear layouts.
	Hide bool

	// IgnoreWidth and IgnoreHeight leave the child out of the parent's
	// cross-axis preferred size in row and column layouts.
	IgnoreWidth, IgnoreHeight bool
}

// LayoutArg is the per-child argument a parent's layout reads to place the
// child. Each layout accepts only its own variants (and nil); anything else
// fails the layout pass with ErrLayoutArg.
type LayoutArg interface {
	layoutArg()
}

// Order places a child in a row or column layout. Lower orders come first;
// ties keep insertion order.
type Order float64

// Card marks a child of a card layout as the active one when true.
type Card bool

// Sizing controls whether a child of an overlay layout contributes to the
// parent's preferred size. A nil arg participates.
type Sizing bool

type hiddenArg struct{}

// Hidden collapses a child of a row or column layout.
var Hidden LayoutArg = hiddenArg{}

func (Order) layoutArg()     {}
func (Card) layoutArg()      {}
func (Sizing) layoutArg()    {}
func (hiddenArg) layoutArg() {}

// Child is the slot record a parent keeps for each child pane. Layouts read
// PrefSize, Arg and Options and write Viewport. Scissor is filled in by the
// parent after the layout returns.
type Child struct {
	Pane     *Pane
	Arg      LayoutArg
	Options  LayoutOptions
	PrefSize PrefSize
	Viewport Bounds
	Scissor  Bounds
}

// Layout is a two-phase sizing policy attached to a pane.
//
// UpdatePrefSize runs bottom-up, after every child's PrefSize is final, and
// writes the parent's own preferred size. UpdateChildViewports runs top-down
// with the parent's final viewport and writes every child's Viewport.
//
// Strategy-specific state (a scroll offset, for instance) may persist across
// passes.
type Layout interface {
	UpdatePrefSize(parent *PrefSize, children []*Child) error
	UpdateChildViewports(children []*Child, viewport Bounds) error
}

// LayoutFuncs adapts a pair of functions to Layout. Either may be nil: a nil
// PrefSize reports no opinion, and a nil ChildViewports is only valid for a
// pane without children.
type LayoutFuncs struct {
	PrefSize       func(parent *PrefSize, children []*Child) error
	ChildViewports func(children []*Child, viewport Bounds) error
}

func (f LayoutFuncs) UpdatePrefSize(parent *PrefSize, children []*Child) error {
	if f.PrefSize == nil {
		*parent = PrefSize{}
		return nil
	}
	return f.PrefSize(parent, children)
}

func (f LayoutFuncs) UpdateChildViewports(children []*Child, viewport Bounds) error {
	if f.ChildViewports == nil {
		if len(children) > 0 {
			return ErrNoLayout
		}
		return nil
	}
	return f.ChildViewports(children, viewport)
}

// NewFixedSizeLayout returns a layout for leaf panes that reports the given
// preferred size and positions no children.
func NewFixedSizeLayout(w, h Extent) Layout {
	return LayoutFuncs{
		PrefSize: func(parent *PrefSize, _ []*Child) error {
			*parent = PrefSize{W: w, H: h}
			return nil
		},
	}
}

// singleChild validates the child count of a single-child layout.
func singleChild(children []*Child) (*Child, error) {
	switch len(children) {
	case 0:
		return nil, nil
	case 1:
		return children[0], nil
	default:
		return nil, fmt.Errorf("%w (got %d)", ErrTooManyChildren, len(children))
	}
}
