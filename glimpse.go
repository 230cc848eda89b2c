package glimpse

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a surface fills pixels.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent has zero alpha.
var ColorTransparent = Color{}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.toRGBA().RGBA()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Cursor is a mouse cursor hint. The zero value means "no preference": the
// router keeps looking further back in the hit list.
type Cursor uint8

const (
	CursorInherit    Cursor = iota // no preference
	CursorDefault                  // platform arrow
	CursorPointer                  // hand, for clickable things
	CursorText                     // I-beam
	CursorCrosshair                // precise selection
	CursorMove                     // four-way move
	CursorEWResize                 // horizontal resize
	CursorNSResize                 // vertical resize
	CursorNotAllowed               // operation unavailable
)

var cursorNames = [...]string{
	CursorInherit:    "inherit",
	CursorDefault:    "default",
	CursorPointer:    "pointer",
	CursorText:       "text",
	CursorCrosshair:  "crosshair",
	CursorMove:       "move",
	CursorEWResize:   "ew-resize",
	CursorNSResize:   "ns-resize",
	CursorNotAllowed: "not-allowed",
}

func (c Cursor) String() string {
	if int(c) < len(cursorNames) {
		return cursorNames[c]
	}
	return fmt.Sprintf("Cursor(%d)", c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Cursor) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so cursors can be named
// in configuration files.
func (c *Cursor) UnmarshalText(text []byte) error {
	for i, name := range cursorNames {
		if name == string(text) {
			*c = Cursor(i)
			return nil
		}
	}
	return fmt.Errorf("glimpse: unknown cursor %q", text)
}

// EbitenCursorShape returns the ebiten cursor shape for this hint.
func (c Cursor) EbitenCursorShape() ebiten.CursorShapeType {
	switch c {
	case CursorPointer:
		return ebiten.CursorShapePointer
	case CursorText:
		return ebiten.CursorShapeText
	case CursorCrosshair:
		return ebiten.CursorShapeCrosshair
	case CursorMove:
		return ebiten.CursorShapeMove
	case CursorEWResize:
		return ebiten.CursorShapeEWResize
	case CursorNSResize:
		return ebiten.CursorShapeNSResize
	case CursorNotAllowed:
		return ebiten.CursorShapeNotAllowed
	default:
		return ebiten.CursorShapeDefault
	}
}

// EventType identifies a kind of pointer event.
type EventType uint8

const (
	EventMouseDown   EventType = iota // button pressed
	EventMouseUp                      // button released, or drag ended
	EventMouseMove                    // pointer moved (hover or drag)
	EventMouseWheel                   // wheel rotated
	EventMouseEnter                   // pointer entered a pane's hit region
	EventMouseExit                    // pointer left a pane's hit region
	EventContextMenu                  // context menu requested
)

var eventNames = [...]string{
	EventMouseDown:   "mouse-down",
	EventMouseUp:     "mouse-up",
	EventMouseMove:   "mouse-move",
	EventMouseWheel:  "mouse-wheel",
	EventMouseEnter:  "mouse-enter",
	EventMouseExit:   "mouse-exit",
	EventContextMenu: "context-menu",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return fmt.Sprintf("EventType(%d)", t)
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Buttons is a bitmask of mouse buttons held at the time of an event.
type Buttons uint8

const (
	ButtonsLeft Buttons = 1 << iota
	ButtonsRight
	ButtonsMiddle
)

// Has reports whether b is held.
func (m Buttons) Has(b MouseButton) bool {
	return m&(1<<b) != 0
}

// With returns the mask with b held.
func (m Buttons) With(b MouseButton) Buttons {
	return m | 1<<b
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
