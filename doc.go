// Package glimpse is a retained-mode pane tree for building 2D user
// interfaces on top of [Ebitengine] or a terminal.
//
// Glimpse provides the pane hierarchy, two-phase layout, clipped painting,
// pointer routing with hover and drag capture, timers, and eased animations
// (via [gween]) that an interactive surface needs.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	d := glimpse.NewDrawable()
//	root := glimpse.NewPane("root", glimpse.NewColumnLayout(true))
//	// ... add panes ...
//	d.SetContentPane(root)
//	glimpse.Run(d, glimpse.RunConfig{
//		Title: "My App", Width: 640, Height: 480,
//	})
//
// For full control, build a [Game] with [NewGame] and hand it to
// ebiten.RunGame yourself, or drive a [Drawable] from any host by calling
// [Drawable.Tick] and [Drawable.Frame] and feeding a [Router].
//
// # Panes
//
// Every element is a [Pane]. Panes form a tree rooted at the drawable's
// content pane. A pane's [Layout] sizes and places its children; the
// argument passed to [Pane.AddPane] is interpreted by that layout:
//
//	row := glimpse.NewPane("row", glimpse.NewRowLayout(true))
//	row.AddPane(header, glimpse.Order(0))
//	row.AddPaneWithOptions(body, glimpse.Order(1), glimpse.LayoutOptions{Height: glimpse.Px(200)})
//
// Coordinates are integer pixels with i growing right and j growing up.
// Painters draw into the pane's viewport and are clipped to its scissor.
//
// # Input
//
// A [Router] turns host pointer events into per-pane notifications:
// [Pane.MouseEnter], [Pane.MouseExit], [Pane.MouseDown], [Pane.MouseUp],
// [Pane.MouseMove], [Pane.MouseWheel] and [Pane.ContextMenu]. A left press
// captures the panes under it until release. Handlers may add or remove
// listeners while an event is firing; the change applies afterward.
//
// The terminal host lives in glimpse/tcellhost and the [Donburi] adapter in
// glimpse/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package glimpse
