package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("dimensions = %dx%d, expected 40x12", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColoredAndBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '@', ColorYellow)
	if c := s.GetCell(3, 4); c.Rune != '@' || c.Color != ColorYellow {
		t.Errorf("GetCell(3, 4) = %+v, expected yellow '@'", c)
	}

	// Out of bounds writes are ignored, reads are blank
	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'A')
	s.Set(0, 10, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(10, 9) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColored(5, 0, "Score", ColorWhite)

	if s.Row(0) != "     Sco" {
		t.Errorf("Row(0) = %q, expected clipped text", s.Row(0))
	}
	if s.GetCell(5, 0).Color != ColorWhite {
		t.Error("text cells should carry the requested colour")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "Game Over", ColorRed)

	x := (20 - len("Game Over")) / 2
	if !strings.HasPrefix(s.Row(1)[x:], "Game Over") {
		t.Errorf("Row(1) = %q, expected centered text at %d", s.Row(1), x)
	}
}

func TestScreenDrawRectAndOutline(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(1, 1, 3, 3), '#', ColorGreen)

	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d)", x, y)
			}
		}
	}

	s.Clear()
	s.DrawOutline(NewRect(2, 2, 4, 4), '·', ColorGray)
	if s.Get(2, 2) != '·' || s.Get(5, 5) != '·' {
		t.Error("outline corners should be drawn")
	}
	if s.Get(3, 3) != ' ' {
		t.Error("outline interior should stay empty")
	}
}

func TestScreenDrawBoxCorners(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(5, 1)
	if s.Width() != 5 || s.Height() != 1 {
		t.Fatalf("after resize dimensions = %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != "     " {
		t.Errorf("resize should clear content, row 0 = %q", s.Row(0))
	}
	if s.Row(3) != "     " {
		t.Errorf("out of range row should be spaces, got %q", s.Row(3))
	}
}
