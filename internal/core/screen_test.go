package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGlyph(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetGlyph(5, 5, Glyph{Rune: 'M', Color: ColorRed})
	g := s.Glyph(5, 5)
	if g.Rune != 'M' || g.Color != ColorRed {
		t.Errorf("Glyph(5, 5) = %+v, expected M/red", g)
	}

	// Out of bounds should be silent
	s.SetGlyph(-1, 0, Glyph{Rune: 'A'})
	s.SetGlyph(100, 0, Glyph{Rune: 'A'})
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Glyph(100, 0).Color != ColorDefault {
		t.Error("Out of bounds Glyph should be uncoloured")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetGlyph(x, y, Glyph{Rune: 'X', Color: ColorBlue})
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if g := s.Glyph(x, y); g.Rune != ' ' || g.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, g)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "score", ColorYellow)

	if got := s.Row(1); !strings.HasPrefix(got, "  score") {
		t.Errorf("Row(1) = %q, expected to start with '  score'", got)
	}
	if s.Glyph(2, 1).Color != ColorYellow {
		t.Error("DrawText should apply the colour")
	}

	// Multi-byte runes advance one cell each
	s.DrawText(0, 2, "═x", ColorDefault)
	if s.Get(1, 2) != 'x' {
		t.Errorf("Get(1, 2) = %q, expected 'x'", s.Get(1, 2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorMagenta)

	expected := []string{
		"╔════╗",
		"║    ║",
		"║    ║",
		"╚════╝",
	}
	for y, row := range expected {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'A')
	s.Set(4, 4, 'B')

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("Resize() dimensions = %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'A' {
		t.Error("Resize should preserve content inside the new bounds")
	}

	s.Resize(6, 6)
	if s.Get(4, 4) != ' ' {
		t.Error("Content outside a previous shrink should be gone")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q, expected %q", got, "a  \n  b")
	}
}
