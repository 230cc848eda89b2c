// Package tcellhost runs glimpse pane trees in a terminal through tcell.
//
// Each terminal cell is one surface pixel. Rows are flipped so that surface
// j grows upward from the bottom row, as everywhere else in glimpse.
package tcellhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/glimpse"
)

// Surface is a glimpse.Surface backed by a tcell screen.
type Surface struct {
	screen   tcell.Screen
	viewport glimpse.Bounds
	scissor  glimpse.Bounds
}

// NewSurface wraps an initialized screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Screen returns the wrapped screen.
func (s *Surface) Screen() tcell.Screen { return s.screen }

func (s *Surface) Size() (w, h int) { return s.screen.Size() }

func (s *Surface) SetViewport(b glimpse.Bounds) { s.viewport = b }
func (s *Surface) SetScissor(b glimpse.Bounds)  { s.scissor = b }

// Viewport returns the viewport of the pane being painted.
func (s *Surface) Viewport() glimpse.Bounds { return s.viewport }

// Cell converts a surface pixel to a screen cell.
func (s *Surface) Cell(i, j int) (x, y int) {
	_, h := s.screen.Size()
	return i, h - 1 - j
}

// Fill paints the background of every cell in b, clipped to the scissor.
// Colors with zero alpha are skipped; any other alpha paints opaquely.
func (s *Surface) Fill(b glimpse.Bounds, c glimpse.Color) {
	clip := b.CropTo(s.scissor)
	if clip.Empty() || c.A <= 0 {
		return
	}
	style := tcell.StyleDefault.Background(TermColor(c))
	for j := clip.JStart; j < clip.JEnd; j++ {
		for i := clip.IStart; i < clip.IEnd; i++ {
			x, y := s.Cell(i, j)
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawText writes text left to right starting at pixel (i, j), keeping each
// cell's background. Cells outside the scissor are skipped.
func (s *Surface) DrawText(i, j int, text string, fg glimpse.Color) {
	if j < s.scissor.JStart || j >= s.scissor.JEnd {
		return
	}
	for _, r := range text {
		if i >= s.scissor.IEnd {
			return
		}
		if i >= s.scissor.IStart {
			x, y := s.Cell(i, j)
			_, _, style, _ := s.screen.GetContent(x, y)
			s.screen.SetContent(x, y, r, nil, style.Foreground(TermColor(fg)))
		}
		i++
	}
}

// TermColor converts a glimpse color to a 24-bit terminal color.
func TermColor(c glimpse.Color) tcell.Color {
	return tcell.NewRGBColor(channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int32 {
	return int32(min(max(v, 0), 1)*255 + 0.5)
}
