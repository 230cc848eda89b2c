package glimpse

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

// recordSurface logs the viewport of every painter call and every fill.
type recordSurface struct {
	w, h     int
	viewport Bounds
	scissor  Bounds
	painted  []string
	fills    []Bounds
}

func (s *recordSurface) Size() (int, int)     { return s.w, s.h }
func (s *recordSurface) SetViewport(b Bounds) { s.viewport = b }
func (s *recordSurface) SetScissor(b Bounds)  { s.scissor = b }
func (s *recordSurface) Fill(b Bounds, _ Color) {
	if c := b.CropTo(s.scissor); !c.Empty() {
		s.fills = append(s.fills, c)
	}
}

func namedPainter(name string) Painter {
	return func(s Surface, _ Bounds) {
		rs := s.(*recordSurface)
		rs.painted = append(rs.painted, name)
	}
}

func TestPrefSizesRunBottomUp(t *testing.T) {
	var order []string
	logLayout := func(name string, inner Layout) Layout {
		return LayoutFuncs{
			PrefSize: func(parent *PrefSize, children []*Child) error {
				order = append(order, name)
				return inner.UpdatePrefSize(parent, children)
			},
			ChildViewports: inner.UpdateChildViewports,
		}
	}
	root := NewPane("root", logLayout("root", NewOverlayLayout()))
	a := NewPane("a", logLayout("a", NewOverlayLayout()))
	b := NewPane("b", logLayout("b", NewFixedSizeLayout(Px(1), Px(1))))
	root.AddPane(a, nil)
	a.AddPane(b, nil)

	runLayout(t, root, 10, 10)
	if !slices.Equal(order, []string{"b", "a", "root"}) {
		t.Errorf("pref size order = %v, want [b a root]", order)
	}
}

func TestLayoutPassesDoNotInterleave(t *testing.T) {
	var order []string
	logLayout := func(name string, inner Layout) Layout {
		return LayoutFuncs{
			PrefSize: func(parent *PrefSize, children []*Child) error {
				order = append(order, "pref:"+name)
				return inner.UpdatePrefSize(parent, children)
			},
			ChildViewports: func(children []*Child, vp Bounds) error {
				order = append(order, "viewports:"+name)
				return inner.UpdateChildViewports(children, vp)
			},
		}
	}
	root := NewPane("root", logLayout("root", NewRowLayout(true)))
	a := NewPane("a", logLayout("a", NewOverlayLayout()))
	b := NewPane("b", logLayout("b", NewInsetLayout(Insets{Top: 2})))
	root.AddPane(a, Order(0))
	root.AddPane(b, Order(1))
	a.AddPane(NewPane("a1", logLayout("a1", NewFixedSizeLayout(Px(5), Px(5)))), nil)
	b.AddPane(NewPane("b1", logLayout("b1", NewFixedSizeLayout(NoExtent, NoExtent))), nil)

	d := NewDrawable()
	d.SetContentPane(root)
	if err := d.Frame(&recordSurface{w: 20, h: 20}); err != nil {
		t.Fatal(err)
	}

	firstViewports := slices.IndexFunc(order, func(s string) bool { return strings.HasPrefix(s, "viewports:") })
	if firstViewports < 0 {
		t.Fatalf("no viewport pass recorded: %v", order)
	}
	prefs := 0
	for n, s := range order {
		if strings.HasPrefix(s, "pref:") {
			prefs++
			if n > firstViewports {
				t.Errorf("%s ran after the viewport pass began: %v", s, order)
			}
		}
	}
	if prefs != 5 {
		t.Errorf("pref sizes computed %d times, want 5: %v", prefs, order)
	}
	if got := len(order) - prefs; got != 3 {
		t.Errorf("viewports computed %d times, want 3 (root a b): %v", got, order)
	}
}

func TestPaintPreOrder(t *testing.T) {
	root := NewPane("root", NewOverlayLayout())
	a := NewPane("a", NewOverlayLayout())
	a1 := NewPane("a1", nil)
	b := NewPane("b", nil)
	root.AddPane(a, nil)
	a.AddPane(a1, nil)
	root.AddPane(b, nil)
	for _, p := range []*Pane{root, a, a1, b} {
		p.AddPainter(namedPainter(p.Name))
	}
	root.AddPainter(namedPainter("root2"))

	runLayout(t, root, 10, 10)
	s := &recordSurface{w: 10, h: 10}
	root.Paint(s)

	want := []string{"root", "root2", "a", "a1", "b"}
	if !slices.Equal(s.painted, want) {
		t.Errorf("paint order = %v, want %v", s.painted, want)
	}
}

func TestPaintCullsEmptyScissor(t *testing.T) {
	root := NewPane("root", NewCardLayout())
	shown := NewPane("shown", NewOverlayLayout())
	hidden := NewPane("hidden", NewOverlayLayout())
	inner := NewPane("inner", nil)
	root.AddPane(shown, Card(true))
	root.AddPane(hidden, nil)
	hidden.AddPane(inner, nil)
	for _, p := range []*Pane{shown, hidden, inner} {
		p.AddPainter(namedPainter(p.Name))
	}

	runLayout(t, root, 10, 10)
	s := &recordSurface{w: 10, h: 10}
	root.Paint(s)
	if !slices.Equal(s.painted, []string{"shown"}) {
		t.Errorf("painted = %v, want only [shown]", s.painted)
	}
}

func TestPaintSetsViewportAndScissor(t *testing.T) {
	root := NewPane("root", NewInsetLayout(Insets{Left: 5}))
	child := NewPane("child", NewFixedSizeLayout(Px(50), Px(50)))
	root.AddPane(child, nil)
	var gotVP, gotScissor Bounds
	child.AddPainter(func(s Surface, vp Bounds) {
		rs := s.(*recordSurface)
		gotVP, gotScissor = vp, rs.scissor
	})

	runLayout(t, root, 20, 20)
	root.Paint(&recordSurface{w: 20, h: 20})
	if gotVP != NewBoundsFromEdges(5, 20, 0, 20) {
		t.Errorf("viewport = %v", gotVP)
	}
	if gotScissor != child.Scissor() {
		t.Errorf("scissor = %v, want %v", gotScissor, child.Scissor())
	}
}

// TestLayoutContainment lays out random trees and checks that every viewport
// lies within its parent's viewport, every scissor lies within its viewport
// and its parent's scissor, and painters never fill outside their scissor.
func TestLayoutContainment(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := range 50 {
		root := randomTree(rng, 0)
		s := &recordSurface{w: 200, h: 150}
		runLayout(t, root, s.w, s.h)

		var check func(p *Pane, parentScissor Bounds)
		check = func(p *Pane, parentScissor Bounds) {
			sc := p.Scissor()
			if !sc.Empty() {
				if !p.Viewport().ContainsBounds(sc) {
					t.Fatalf("trial %d: %s scissor %v outside viewport %v", trial, p.Name, sc, p.Viewport())
				}
				if !parentScissor.ContainsBounds(sc) {
					t.Fatalf("trial %d: %s scissor %v outside parent scissor %v", trial, p.Name, sc, parentScissor)
				}
			}
			for _, c := range p.Children() {
				if !p.Viewport().ContainsBounds(c.Viewport()) {
					t.Fatalf("trial %d: %s viewport %v outside parent %s viewport %v",
						trial, c.Name, c.Viewport(), p.Name, p.Viewport())
				}
				check(c, sc)
			}
		}
		check(root, NewBoundsFromRect(0, 0, s.w, s.h))

		root.Paint(s)
		screen := NewBoundsFromRect(0, 0, s.w, s.h)
		for _, f := range s.fills {
			if !screen.ContainsBounds(f) {
				t.Fatalf("trial %d: fill %v escapes the surface", trial, f)
			}
		}
	}
}

// randomTree builds panes with mixed layouts. Leaves overflow their slots so
// clipping is exercised.
func randomTree(rng *rand.Rand, depth int) *Pane {
	if depth >= 3 || rng.IntN(4) == 0 {
		p := NewPane("leaf", NewFixedSizeLayout(Px(rng.IntN(300)), Px(rng.IntN(300))))
		if rng.IntN(2) == 0 {
			p = NewPane("flex", NewFixedSizeLayout(NoExtent, NoExtent))
		}
		p.AddPainter(func(s Surface, vp Bounds) {
			s.Fill(NewBoundsFromEdges(vp.IStart-5, vp.IEnd+5, vp.JStart-5, vp.JEnd+5), ColorWhite)
		})
		return p
	}
	switch rng.IntN(4) {
	case 0:
		p := NewPane("rows", NewRowLayout(rng.IntN(2) == 0))
		for k := range 1 + rng.IntN(4) {
			p.AddPane(randomTree(rng, depth+1), Order(k))
		}
		return p
	case 1:
		p := NewPane("overlay", NewOverlayLayout())
		for range 1 + rng.IntN(3) {
			p.AddPane(randomTree(rng, depth+1), nil)
		}
		return p
	case 2:
		n := rng.IntN(6)
		p := NewPane("inset", NewInsetLayout(Insets{Top: n, Right: n, Bottom: n, Left: n}))
		p.AddPane(randomTree(rng, depth+1), nil)
		return p
	default:
		p := NewPane("corner", NewCornerLayout(HAlign(rng.IntN(2)), VAlign(rng.IntN(2))))
		p.AddPane(randomTree(rng, depth+1), nil)
		return p
	}
}

func TestViewportChangedOnlyOnChange(t *testing.T) {
	root := NewPane("root", NewCornerLayout(AlignLeft, AlignBottom))
	child := NewPane("child", NewFixedSizeLayout(Px(10), Px(10)))
	root.AddPane(child, nil)

	var seen []Bounds
	child.ViewportChanged().OnEvent(func(b Bounds) { seen = append(seen, b) })

	runLayout(t, root, 50, 50)
	runLayout(t, root, 50, 50)
	runLayout(t, root, 60, 60)
	if len(seen) != 1 {
		t.Fatalf("ViewportChanged fired %d times, want 1", len(seen))
	}

	root.SetLayout(NewCornerLayout(AlignRight, AlignBottom))
	runLayout(t, root, 60, 60)
	if len(seen) != 2 || seen[1] != NewBoundsFromRect(50, 0, 10, 10) {
		t.Errorf("seen = %v", seen)
	}
}

func TestPanesAtFrontToBack(t *testing.T) {
	root := NewPane("root", NewOverlayLayout())
	back := NewPane("back", nil)
	front := NewPane("front", nil)
	root.AddPane(back, nil)
	root.AddPane(front, nil)
	root.SetConsumesInput(false)
	runLayout(t, root, 10, 10)

	if got := root.PanesAt(5, 5); !slices.Equal(got, []*Pane{front, root}) {
		t.Errorf("consuming front pane: got %v", names(got))
	}

	front.SetConsumesInput(false)
	if got := root.PanesAt(5, 5); !slices.Equal(got, []*Pane{front, back}) {
		t.Errorf("see-through front pane: got %v", names(got))
	}

	back.SetConsumesInput(false)
	if got := root.PanesAt(5, 5); !slices.Equal(got, []*Pane{front, back, root}) {
		t.Errorf("all see-through: got %v", names(got))
	}

	if got := root.PanesAt(10, 5); len(got) != 0 {
		t.Errorf("outside the scissor: got %v", names(got))
	}
}

func TestPanesAtRespectsScissor(t *testing.T) {
	root := NewPane("root", NewInsetLayout(Insets{Left: 5}))
	root.SetConsumesInput(false)
	child := NewPane("child", nil)
	root.AddPane(child, nil)
	runLayout(t, root, 10, 10)

	if got := root.PanesAt(2, 5); len(got) != 1 || got[0] != root {
		t.Errorf("margin hit = %v, want [root]", names(got))
	}
	if got := root.PanesAt(7, 5); !slices.Equal(got, []*Pane{child, root}) {
		t.Errorf("child hit = %v, want [child root]", names(got))
	}
}

func TestPanesAtHitShape(t *testing.T) {
	root := NewPane("root", NewCornerLayout(AlignLeft, AlignBottom))
	root.SetConsumesInput(false)
	button := NewPane("button", NewFixedSizeLayout(Px(20), Px(20)))
	button.SetHitShape(HitCircle{CenterX: 10, CenterY: 10, Radius: 10})
	root.AddPane(button, nil)
	runLayout(t, root, 100, 100)

	if got := root.PanesAt(10, 10); !slices.Equal(got, []*Pane{button, root}) {
		t.Errorf("center hit = %v", names(got))
	}
	if got := root.PanesAt(1, 1); len(got) != 1 || got[0] != root {
		t.Errorf("corner should fall through to root, got %v", names(got))
	}

	button.SetHitShape(nil)
	if got := root.PanesAt(1, 1); !slices.Equal(got, []*Pane{button, root}) {
		t.Errorf("clearing the shape should restore rectangular hits, got %v", names(got))
	}
}

func TestPanesAtKeepsAncestorsOfConsumingPane(t *testing.T) {
	root := NewPane("root", NewOverlayLayout())
	back := NewPane("back", nil)
	group := NewPane("group", NewInsetLayout(Insets{Left: 5}))
	leaf := NewPane("leaf", nil)
	root.AddPane(back, nil)
	root.AddPane(group, nil)
	group.AddPane(leaf, nil)
	group.SetHitShape(HitRect{Width: 1, Height: 1})
	runLayout(t, root, 10, 10)

	// group's own shape misses (7, 5), but leaf claims the point for it.
	if got := root.PanesAt(7, 5); !slices.Equal(got, []*Pane{leaf, group, root}) {
		t.Errorf("got %v, want [leaf group root]", names(got))
	}
	// In the margin group's shape misses and nothing claims the point, so
	// the search reaches back.
	if got := root.PanesAt(2, 5); !slices.Equal(got, []*Pane{back, root}) {
		t.Errorf("margin got %v, want [back root]", names(got))
	}
}

func names(panes []*Pane) []string {
	out := make([]string, len(panes))
	for n, p := range panes {
		out[n] = p.Name
	}
	return out
}
