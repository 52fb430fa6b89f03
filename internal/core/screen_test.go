package core

import (
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "    \n    " {
		t.Errorf("String() = %q", got)
	}

	empty := NewScreen(-3, 5)
	if empty.Width() != 0 || empty.String() != "\n\n\n\n" {
		t.Errorf("negative width screen = %dx%d %q", empty.Width(), empty.Height(), empty.String())
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(3, 3)

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 1},
		{"right", 3, 1},
		{"above", 1, -1},
		{"below", 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetColored(tt.x, tt.y, 'X', ColorRed)
			if got := s.GetCell(tt.x, tt.y); got != (Cell{Rune: ' '}) {
				t.Errorf("GetCell(%d, %d) = %+v, want blank", tt.x, tt.y, got)
			}
		})
	}
	if s.String() != "   \n   \n   " {
		t.Errorf("out-of-bounds write leaked: %q", s.String())
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(5, 1)
	s.SetColored(1, 0, '@', ColorYellow)
	s.DrawTextColored(2, 0, "ab", ColorCyan)

	want := []Cell{
		{Rune: ' '},
		{Rune: '@', Color: ColorYellow},
		{Rune: 'a', Color: ColorCyan},
		{Rune: 'b', Color: ColorCyan},
		{Rune: ' '},
	}
	for x, w := range want {
		if got := s.GetCell(x, 0); got != w {
			t.Errorf("GetCell(%d, 0) = %+v, want %+v", x, got, w)
		}
	}

	s.Clear()
	if s.GetCell(1, 0) != (Cell{Rune: ' '}) {
		t.Error("Clear() should reset color and rune")
	}
}

func TestScreenTextClipsAndCountsRunes(t *testing.T) {
	s := NewScreen(6, 1)
	// Only "cd" lands on screen.
	s.DrawText(-2, 0, "abcd")
	// Multi-byte runes take one cell each; "xyz" is clipped.
	s.DrawText(4, 0, "▲▼xyz")

	if got := s.Row(0); got != "cd  ▲▼" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenClip(t *testing.T) {
	s := NewScreen(10, 5)

	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"inside", NewRect(2, 1, 3, 2), NewRect(2, 1, 3, 2)},
		{"left overhang", NewRect(-4, 0, 6, 2), NewRect(0, 0, 2, 2)},
		{"bottom right overhang", NewRect(8, 3, 10, 10), NewRect(8, 3, 2, 2)},
		{"fully off", NewRect(20, 0, 3, 3), Rect{}},
		{"covers screen", NewRect(-1, -1, 100, 100), NewRect(0, 0, 10, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Clip(tt.in); got != tt.want {
				t.Errorf("Clip(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestScreenDrawRectColoredClipped(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRectColored(NewRect(2, -1, 5, 3), '#', ColorOrange)

	want := "  ##\n  ##\n    "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if s.GetCell(3, 1).Color != ColorOrange {
		t.Error("filled cell should carry the color")
	}
}

func TestScreenDrawOutline(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawOutline(NewRect(0, 0, 4, 3), '·', ColorGray)

	want := "···· \n·  · \n···· \n     "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	s.Clear()
	s.DrawOutline(NewRect(1, 1, 0, 2), '·', ColorGray)
	if s.Get(1, 1) != ' ' {
		t.Error("empty rect should draw nothing")
	}
}

func TestScreenDrawBoxBlanksInside(t *testing.T) {
	s := NewScreen(4, 3)
	s.Fill('~')
	s.DrawBox(s.Bounds())

	want := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawHLine(1, 0, 3, '-')
	s.DrawHLine(0, 0, -2, 'x')

	if got := s.Row(0); got != " --- " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenResizeBlanks(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill('#')
	s.Resize(3, 2)
	if s.Get(0, 0) != '#' {
		t.Error("same-size Resize should keep content")
	}

	s.Resize(5, 1)
	if s.Width() != 5 || s.Height() != 1 || s.Row(0) != "     " {
		t.Errorf("after Resize: %dx%d %q", s.Width(), s.Height(), s.Row(0))
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(7); got != "   " {
		t.Errorf("Row(7) = %q, want spaces", got)
	}
}
