package glimpse

// BackgroundPainter fills the whole viewport with c.
func BackgroundPainter(c Color) Painter {
	return func(s Surface, viewport Bounds) {
		s.Fill(viewport, c)
	}
}

// BorderPainter draws a border of the given thickness just inside the
// viewport edges.
func BorderPainter(c Color, thickness int) Painter {
	return func(s Surface, vp Bounds) {
		t := min(thickness, vp.W(), vp.H())
		if t <= 0 || vp.Empty() {
			return
		}
		s.Fill(NewBoundsFromEdges(vp.IStart, vp.IEnd, vp.JEnd-t, vp.JEnd), c)     // top
		s.Fill(NewBoundsFromEdges(vp.IStart, vp.IEnd, vp.JStart, vp.JStart+t), c) // bottom
		s.Fill(NewBoundsFromEdges(vp.IStart, vp.IStart+t, vp.JStart+t, vp.JEnd-t), c)
		s.Fill(NewBoundsFromEdges(vp.IEnd-t, vp.IEnd, vp.JStart+t, vp.JEnd-t), c)
	}
}
