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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, Cell{Rune: '@', Color: ColorBrightYellow})
	cell := s.GetCell(3, 4)
	if cell.Rune != '@' || cell.Color != ColorBrightYellow {
		t.Errorf("GetCell(3, 4) = %+v, expected '@' in bright yellow", cell)
	}

	// Out of bounds cell should be a blank default
	oob := s.GetCell(-1, -1)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected blank default", oob)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, Cell{Rune: 'X', Color: ColorRed})
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, got %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawTextColored(2, 1, "hello", ColorGreen)

	if s.Row(1) != "  hello             " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.GetCell(2, 1).Color != ColorGreen {
		t.Errorf("Expected green text, got color %d", s.GetCell(2, 1).Color)
	}

	// Clipped text should not panic
	s.DrawText(18, 0, "overflow")
	if s.Get(19, 0) != 'v' {
		t.Errorf("Get(19, 0) = %q, expected 'v'", s.Get(19, 0))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'A')
	s.Set(9, 9, 'B')

	s.Resize(5, 5)

	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("Resize(5, 5) gave %dx%d", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'A' {
		t.Error("Content inside new bounds should be preserved")
	}

	s.Resize(12, 12)
	if s.Get(2, 2) != 'A' {
		t.Error("Content should survive growing")
	}
	if s.Get(11, 11) != ' ' {
		t.Error("New cells should be blank")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("Expected 1 newline, got %d", strings.Count(got, "\n"))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 4, 3))

	if s.Get(1, 1) != '┌' || s.Get(4, 1) != '┐' || s.Get(1, 3) != '└' || s.Get(4, 3) != '┘' {
		t.Error("Box corners not drawn correctly")
	}
	if s.Get(2, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Box edges not drawn correctly")
	}
}
