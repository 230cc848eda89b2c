package glimpse

// HAlign picks the horizontal edge a corner layout anchors to.
type HAlign uint8

const (
	AlignLeft HAlign = iota
	AlignRight
)

// VAlign picks the vertical edge a corner layout anchors to.
type VAlign uint8

const (
	AlignTop VAlign = iota
	AlignBottom
)

type cornerLayout struct {
	h HAlign
	v VAlign
}

// NewCornerLayout anchors a single child at its preferred size against one
// corner of the parent. The child never extends past the parent; an axis with
// no preferred length fills the parent along that axis.
func NewCornerLayout(h HAlign, v VAlign) Layout {
	return cornerLayout{h: h, v: v}
}

func (l cornerLayout) UpdatePrefSize(parent *PrefSize, children []*Child) error {
	c, err := singleChild(children)
	if err != nil {
		return err
	}
	if c == nil {
		*parent = PrefSize{W: Px(0), H: Px(0)}
		return nil
	}
	*parent = c.PrefSize
	return nil
}

func (l cornerLayout) UpdateChildViewports(children []*Child, viewport Bounds) error {
	c, err := singleChild(children)
	if err != nil || c == nil {
		return err
	}
	w := min(c.PrefSize.W.Or(viewport.W()), viewport.W())
	h := min(c.PrefSize.H.Or(viewport.H()), viewport.H())
	w, h = max(w, 0), max(h, 0)

	var iStart, jStart int
	if l.h == AlignLeft {
		iStart = viewport.IStart
	} else {
		iStart = viewport.IEnd - w
	}
	if l.v == AlignBottom {
		jStart = viewport.JStart
	} else {
		jStart = viewport.JEnd - h
	}
	c.Viewport.SetRect(iStart, jStart, w, h)
	return nil
}

// Insets are fixed margins in pixels.
type Insets struct {
	Top, Right, Bottom, Left int
}

type insetLayout struct {
	insets Insets
}

// NewInsetLayout shrinks the parent rectangle by fixed margins and gives the
// remainder to a single child. The parent prefers the child's size plus the
// margins.
func NewInsetLayout(insets Insets) Layout {
	return insetLayout{insets: insets}
}

func (l insetLayout) UpdatePrefSize(parent *PrefSize, children []*Child) error {
	c, err := singleChild(children)
	if err != nil {
		return err
	}
	in := l.insets
	if c == nil {
		*parent = PrefSize{W: Px(in.Left + in.Right), H: Px(in.Top + in.Bottom)}
		return nil
	}
	var size PrefSize
	if w, ok := c.PrefSize.W.Get(); ok {
		size.W = Px(w + in.Left + in.Right)
	}
	if h, ok := c.PrefSize.H.Get(); ok {
		size.H = Px(h + in.Top + in.Bottom)
	}
	*parent = size
	return nil
}

func (l insetLayout) UpdateChildViewports(children []*Child, viewport Bounds) error {
	c, err := singleChild(children)
	if err != nil || c == nil {
		return err
	}
	in := l.insets
	c.Viewport.SetEdges(
		viewport.IStart+in.Left,
		viewport.IEnd-in.Right,
		viewport.JStart+in.Bottom,
		viewport.JEnd-in.Top,
	)
	return nil
}
