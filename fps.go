package glimpse

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefresh = 500 * time.Millisecond

// NewFPSPane creates a pane that shows the current FPS and TPS in its
// top-left corner, refreshed every half second on d's clock. It ignores
// pointer input and only paints on ebiten surfaces.
func NewFPSPane(d *Drawable) *Pane {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)
	refresh := func() {
		img.Clear()
		// Semi-transparent background for readability
		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	refresh()

	readout := NewPane("fps", NewFixedSizeLayout(Px(100), Px(32)))
	readout.AddPainter(func(s Surface, vp Bounds) {
		es, ok := s.(*EbitenSurface)
		if !ok {
			return
		}
		dst := es.Image()
		if dst == nil {
			return
		}
		r := es.Rect(vp)
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
		dst.DrawImage(img, &op)
	})

	timer := d.Every(fpsRefresh, func() {
		refresh()
		d.Redraw()
	})
	readout.Disposed().OnEvent(func(struct{}) {
		timer.Cancel()
		img.Deallocate()
	})

	corner := NewPane("fps_corner", NewCornerLayout(AlignLeft, AlignTop))
	corner.AddPane(readout, nil)
	for _, p := range []*Pane{corner, readout} {
		p.SetConsumesInput(false)
		p.SetContains(func(float64, float64) bool { return false })
	}
	return corner
}
