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
			if c := s.Get(x, y); c != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("size = %dx%d, expected 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("String() = %q, expected empty", s.String())
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorBlack, ColorBrightGreen)
	expected := Cell{Rune: 'X', FG: ColorBlack, BG: ColorBrightGreen}
	if got := s.Get(5, 5); got != expected {
		t.Errorf("Get(5, 5) = %+v, expected %+v", got, expected)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorRed, ColorRed)
	s.Set(100, 0, 'A', ColorRed, ColorRed)
	s.Set(0, -1, 'A', ColorRed, ColorRed)
	s.Set(0, 100, 'A', ColorRed, ColorRed)

	if s.Get(-1, 0) != blankCell || s.Get(100, 0) != blankCell {
		t.Error("out of bounds Get should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(0, 0, 4, 4, 'X', ColorWhite, ColorRed)

	s.Clear()

	if got := s.String(); got != "    \n    \n    \n    " {
		t.Errorf("after Clear, String() = %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorRed, ColorWhite)

	if got := s.Text(1); !strings.HasPrefix(got, "  Hello ") {
		t.Errorf("Text(1) = %q, expected Hello at column 2", got)
	}
	if c := s.Get(2, 1); c.FG != ColorRed || c.BG != ColorWhite {
		t.Errorf("colors at (2,1) = %v/%v, expected %v/%v", c.FG, c.BG, ColorRed, ColorWhite)
	}

	// Only "He" fits
	s.DrawText(18, 0, "Hello", ColorDefault, ColorDefault)
	if s.Get(18, 0).Rune != 'H' || s.Get(19, 0).Rune != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(0, 0, "█ █", ColorDefault, ColorDefault)
	if got := s.Text(0); got != "█ █  " {
		t.Errorf("Text(0) = %q, expected %q", got, "█ █  ")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(2, 2, 3, 3, '#', ColorBlack, ColorBrightGreen)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y).Rune != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y).Rune)
			}
		}
	}

	if s.Get(1, 1) != blankCell || s.Get(5, 5) != blankCell {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault, ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault, ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault, ColorDefault)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", ColorGreen, ColorDefault)

	row := s.Row(2)
	if len(row) != 10 {
		t.Fatalf("Row length should be 10, got %d", len(row))
	}
	if row[0].Rune != 'T' || row[0].FG != ColorGreen {
		t.Errorf("Row(2)[0] = %+v, expected green 'T'", row[0])
	}

	row[0].Rune = 'X'
	if s.Get(0, 2).Rune != 'T' {
		t.Error("Row() should return a copy")
	}

	if got := s.Text(-1); got != "          " {
		t.Errorf("out of bounds row should be spaces, got %q", got)
	}
}
