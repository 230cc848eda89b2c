package glimpse

import "errors"

// Configuration errors are returned from the layout pass. They indicate a
// tree that cannot be laid out and are not expected to be recoverable.
var (
	// ErrNoLayout means a pane has children but no layout strategy able to
	// position them.
	ErrNoLayout = errors.New("glimpse: pane has children but no layout")

	// ErrTooManyChildren means a single-child layout (corner, inset, scroll)
	// was given more than one child.
	ErrTooManyChildren = errors.New("glimpse: layout accepts at most one child")

	// ErrNoPrefHeight means a scroll layout's content reported no preferred
	// height.
	ErrNoPrefHeight = errors.New("glimpse: scroll content has no preferred height")

	// ErrLayoutArg means a child's layout arg is not a variant the parent's
	// layout understands.
	ErrLayoutArg = errors.New("glimpse: layout arg not accepted by layout")
)

// Resource errors.
var (
	// ErrNoSurface means no rendering surface could be acquired.
	ErrNoSurface = errors.New("glimpse: no rendering surface available")

	// ErrNoContent means a frame was requested before SetContentPane.
	ErrNoContent = errors.New("glimpse: drawable has no content pane")
)
