package glimpse

import "fmt"

type overlayLayout struct{}

// NewOverlayLayout stacks every child over the full parent rectangle, later
// children in front. The parent prefers the largest size among children that
// participate in sizing (nil or Sizing(true) args); with none it prefers 0×0.
func NewOverlayLayout() Layout {
	return overlayLayout{}
}

func (overlayLayout) UpdatePrefSize(parent *PrefSize, children []*Child) error {
	var (
		size  PrefSize
		first = true
	)
	for _, c := range children {
		participates := true
		switch arg := c.Arg.(type) {
		case nil:
		case Sizing:
			participates = bool(arg)
		default:
			return fmt.Errorf("%w: overlay got %T", ErrLayoutArg, c.Arg)
		}
		if !participates {
			continue
		}
		if first {
			size = c.PrefSize
			first = false
			continue
		}
		size.W = maxExtent(size.W, c.PrefSize.W)
		size.H = maxExtent(size.H, c.PrefSize.H)
	}
	if first {
		size = PrefSize{W: Px(0), H: Px(0)}
	}
	*parent = size
	return nil
}

func (overlayLayout) UpdateChildViewports(children []*Child, viewport Bounds) error {
	for _, c := range children {
		c.Viewport.SetBounds(viewport)
	}
	return nil
}
