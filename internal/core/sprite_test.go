package core

import (
	"errors"
	"testing"
)

func TestNewSprite(t *testing.T) {
	s, err := NewSprite(" /\\\n/  \\\n\\__/\n", ColorWhite)
	if err != nil {
		t.Fatalf("NewSprite() failed: %v", err)
	}

	cols, rows := s.GridSize()
	if cols != 4 || rows != 3 {
		t.Errorf("GridSize() = %dx%d, expected 4x3", cols, rows)
	}
	if s.W != 4 || s.H != 3 {
		t.Errorf("initial logical size = %.0fx%.0f, expected 4x3", s.W, s.H)
	}
	if s.Glyph() != '/' {
		t.Errorf("Glyph() = %q, expected '/'", s.Glyph())
	}

	// Short first line is padded with transparent runes
	if r := s.At(0.9, 0.1); r != ' ' {
		t.Errorf("padded cell should be space, got %q", r)
	}
}

func TestNewSpriteEmpty(t *testing.T) {
	for _, art := range []string{"", "   \n  ", "\n\n"} {
		if _, err := NewSprite(art, ColorWhite); !errors.Is(err, ErrEmptySprite) {
			t.Errorf("NewSprite(%q) error = %v, expected ErrEmptySprite", art, err)
		}
	}
}

func TestSpriteScaled(t *testing.T) {
	s, err := NewSprite("AB\nCD", ColorWhite)
	if err != nil {
		t.Fatalf("NewSprite() failed: %v", err)
	}

	big := s.Scaled(30, 30)
	if big.W != 30 || big.H != 30 {
		t.Errorf("Scaled size = %.0fx%.0f, expected 30x30", big.W, big.H)
	}
	if s.W != 2 {
		t.Error("Scaled should not modify the original")
	}

	tests := []struct {
		u, v     float64
		expected rune
	}{
		{0.1, 0.1, 'A'},
		{0.9, 0.1, 'B'},
		{0.1, 0.9, 'C'},
		{0.9, 0.9, 'D'},
		{1.0, 0.5, ' '},
		{-0.1, 0.5, ' '},
	}
	for _, tc := range tests {
		if r := big.At(tc.u, tc.v); r != tc.expected {
			t.Errorf("At(%.1f, %.1f) = %q, expected %q", tc.u, tc.v, r, tc.expected)
		}
	}
}

func TestSpriteGlyphPrefersCenter(t *testing.T) {
	s, err := NewSprite("  |  \n--+--\n  |  ", ColorWhite)
	if err != nil {
		t.Fatalf("NewSprite() failed: %v", err)
	}
	if s.Glyph() != '+' {
		t.Errorf("Glyph() = %q, expected center '+'", s.Glyph())
	}
}
