package glimpse

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestColorToRGBAPremultiplies(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want color.RGBA
	}{
		{"opaque white", ColorWhite, color.RGBA{255, 255, 255, 255}},
		{"transparent", ColorTransparent, color.RGBA{}},
		{"half red", Color{1, 0, 0, 0.5}, color.RGBA{128, 0, 0, 128}},
		{"clamped", Color{2, -1, 0.5, 1}, color.RGBA{255, 0, 128, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.toRGBA(); got != tt.want {
				t.Errorf("toRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCursorText(t *testing.T) {
	for c := CursorInherit; c <= CursorNotAllowed; c++ {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Cursor
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != c {
			t.Errorf("%q decoded to %v, want %v", text, back, c)
		}
	}
	var c Cursor
	if err := c.UnmarshalText([]byte("spinner")); err == nil {
		t.Error("unknown cursor name should fail")
	}
}

func TestCursorEbitenShape(t *testing.T) {
	if CursorInherit.EbitenCursorShape() != ebiten.CursorShapeDefault {
		t.Error("inherit should map to the default shape")
	}
	if CursorEWResize.EbitenCursorShape() != ebiten.CursorShapeEWResize {
		t.Error("ew-resize mapping")
	}
}

func TestButtons(t *testing.T) {
	var m Buttons
	if m.Has(MouseButtonLeft) {
		t.Error("empty mask holds left")
	}
	m = m.With(MouseButtonLeft).With(MouseButtonMiddle)
	if m != ButtonsLeft|ButtonsMiddle {
		t.Errorf("mask = %b", m)
	}
	if !m.Has(MouseButtonMiddle) || m.Has(MouseButtonRight) {
		t.Error("Has mismatch")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventContextMenu.String() != "context-menu" {
		t.Errorf("String() = %q", EventContextMenu.String())
	}
	if EventType(99).String() != "EventType(99)" {
		t.Errorf("String() = %q", EventType(99).String())
	}
}
