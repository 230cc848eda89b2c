package glimpse

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a lazily-initialized 1x1 white image scaled and tinted by
// Fill.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixel
}

// EbitenSurface draws onto an ebiten image. Surface coordinates have j
// growing upward; the image's y axis grows downward, so rows are flipped.
type EbitenSurface struct {
	target   *ebiten.Image
	viewport Bounds
	scissor  Bounds
	op       ebiten.DrawImageOptions
}

// NewEbitenSurface wraps target, which may be nil until SetTarget.
func NewEbitenSurface(target *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{target: target}
}

// SetTarget replaces the image drawn into, typically once per frame.
func (s *EbitenSurface) SetTarget(target *ebiten.Image) {
	s.target = target
}

// Target returns the full target image.
func (s *EbitenSurface) Target() *ebiten.Image { return s.target }

func (s *EbitenSurface) Size() (w, h int) {
	if s.target == nil {
		return 0, 0
	}
	b := s.target.Bounds()
	return b.Dx(), b.Dy()
}

func (s *EbitenSurface) SetViewport(b Bounds) { s.viewport = b }
func (s *EbitenSurface) SetScissor(b Bounds)  { s.scissor = b }

// Rect converts surface bounds to an image rectangle.
func (s *EbitenSurface) Rect(b Bounds) image.Rectangle {
	_, h := s.Size()
	return image.Rect(b.IStart, h-b.JEnd, b.IEnd, h-b.JStart)
}

// Point converts a surface point to image coordinates.
func (s *EbitenSurface) Point(i, j float64) (x, y float64) {
	_, h := s.Size()
	return i, float64(h) - j
}

// Image returns the target clipped to the current scissor, for painters that
// draw with ebiten directly. Nil when the scissor is empty.
func (s *EbitenSurface) Image() *ebiten.Image {
	if s.target == nil || s.scissor.Empty() {
		return nil
	}
	return s.target.SubImage(s.Rect(s.scissor)).(*ebiten.Image)
}

// Fill blends c over b, clipped to the current scissor.
func (s *EbitenSurface) Fill(b Bounds, c Color) {
	if s.target == nil {
		return
	}
	clip := b.CropTo(s.scissor)
	if clip.Empty() || c.A <= 0 {
		return
	}
	r := s.Rect(clip)
	s.op.GeoM.Reset()
	s.op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	s.op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	s.op.ColorScale.Reset()
	a := float32(clamp01(c.A))
	s.op.ColorScale.Scale(float32(clamp01(c.R))*a, float32(clamp01(c.G))*a, float32(clamp01(c.B))*a, a)
	s.target.DrawImage(ensureWhitePixel(), &s.op)
}

// Clear fills the whole target with c, ignoring the scissor.
func (s *EbitenSurface) Clear(c Color) {
	if s.target != nil {
		s.target.Fill(c.toRGBA())
	}
}

// EbitenImage returns the ebiten image behind s clipped to its scissor, or
// nil if s is not an ebiten surface.
func EbitenImage(s Surface) *ebiten.Image {
	if es, ok := s.(*EbitenSurface); ok {
		return es.Image()
	}
	return nil
}
