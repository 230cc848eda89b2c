package glimpse

import "fmt"

type cardLayout struct{}

// NewCardLayout shows exactly one child, the first whose arg is Card(true),
// over the full parent rectangle. Every other child collapses to an empty
// rectangle. The parent prefers the active child's size, or 0×0.
func NewCardLayout() Layout {
	return cardLayout{}
}

func activeCard(children []*Child) (*Child, error) {
	var active *Child
	for _, c := range children {
		switch arg := c.Arg.(type) {
		case nil:
		case Card:
			if arg && active == nil {
				active = c
			}
		default:
			return nil, fmt.Errorf("%w: card got %T", ErrLayoutArg, c.Arg)
		}
	}
	return active, nil
}

func (cardLayout) UpdatePrefSize(parent *PrefSize, children []*Child) error {
	active, err := activeCard(children)
	if err != nil {
		return err
	}
	if active == nil {
		*parent = PrefSize{W: Px(0), H: Px(0)}
		return nil
	}
	*parent = active.PrefSize
	return nil
}

func (cardLayout) UpdateChildViewports(children []*Child, viewport Bounds) error {
	active, err := activeCard(children)
	if err != nil {
		return err
	}
	for _, c := range children {
		if c == active {
			c.Viewport.SetBounds(viewport)
		} else {
			c.Viewport.Clear()
		}
	}
	return nil
}

// ShowCard makes target the active card of a card-layout pane and every other
// child inactive.
func ShowCard(parent, target *Pane) {
	parent.UpdateLayoutArgs(func(child *Pane, _ LayoutArg, _ LayoutOptions) LayoutArg {
		return Card(child == target)
	})
}
