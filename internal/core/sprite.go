package core

import (
	"errors"
	"strings"
)

// ErrEmptySprite is returned when the art contains no visible runes.
var ErrEmptySprite = errors.New("sprite has no visible runes")

// Sprite is a text-art bitmap with a logical size. The rune grid is sampled
// with nearest-neighbour lookup when blitted, so a sprite of any grid size
// can be scaled to any logical size. Spaces are transparent.
type Sprite struct {
	rows  [][]rune
	cols  int
	glyph rune // Drawn alone when the sprite is smaller than a cell

	Color Color   // Foreground color of visible runes
	W, H  float64 // Logical size in display pixels
}

// NewSprite parses text art into a sprite. Lines are padded to the longest
// line. The initial logical size equals the grid size.
func NewSprite(art string, color Color) (*Sprite, error) {
	art = strings.TrimRight(strings.ReplaceAll(art, "\r\n", "\n"), "\n")
	lines := strings.Split(art, "\n")

	s := &Sprite{Color: color}
	for _, line := range lines {
		row := []rune(line)
		if len(row) > s.cols {
			s.cols = len(row)
		}
		s.rows = append(s.rows, row)
		for _, r := range row {
			if s.glyph == 0 && r != ' ' {
				s.glyph = r
			}
		}
	}
	if s.glyph == 0 {
		return nil, ErrEmptySprite
	}

	for i, row := range s.rows {
		if len(row) < s.cols {
			s.rows[i] = append(row, []rune(strings.Repeat(" ", s.cols-len(row)))...)
		}
	}
	// Prefer the center rune so a crosshair collapses to its middle
	if r := s.rows[len(s.rows)/2][s.cols/2]; r != ' ' {
		s.glyph = r
	}
	s.W = float64(s.cols)
	s.H = float64(len(s.rows))
	return s, nil
}

// Scaled returns a copy of the sprite with the given logical size.
// The rune grid is shared.
func (s *Sprite) Scaled(w, h float64) *Sprite {
	c := *s
	c.W = w
	c.H = h
	return &c
}

// GridSize returns the number of columns and rows in the source art.
func (s *Sprite) GridSize() (cols, rows int) {
	return s.cols, len(s.rows)
}

// At samples the sprite at normalized coordinates u, v in [0, 1).
// Out-of-range coordinates return a space.
func (s *Sprite) At(u, v float64) rune {
	if u < 0 || u >= 1 || v < 0 || v >= 1 {
		return ' '
	}
	col := int(u * float64(s.cols))
	row := int(v * float64(len(s.rows)))
	return s.rows[row][col]
}

// Glyph returns the center rune of the art, or the first visible rune
// when the center is transparent.
func (s *Sprite) Glyph() rune {
	return s.glyph
}
