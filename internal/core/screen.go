package core

import (
	"math"
	"strings"
)

// Canvas is the drawing surface the game renders into. All coordinates are
// logical display pixels (LogicalWidth x LogicalHeight).
type Canvas interface {
	Clear()
	FillRect(r Rect, c Color)
	FillCircle(center Point, radius float64, c Color)
	StrokeCircle(center Point, radius float64, c Color)
	Blit(s *Sprite, topLeft Point)
	DrawText(at Point, text string, fg Color)
	DrawTextCentered(r Rect, text string, fg Color)
}

// Cell is one terminal character with its colors.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Runes used for primitives.
const (
	RingRune = '·'
	FillRune = ' ' // Filled shapes paint the background color
)

var blankCell = Cell{Rune: ' '}

// Screen is a terminal cell buffer that implements Canvas by scaling
// logical coordinates onto its cells. A logical point maps to the cell
// containing it; shapes cover the cells whose centers they contain.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
	lw, lh float64 // logical size
	sx, sy float64 // cells per logical pixel
}

var _ Canvas = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions in cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{lw: LogicalWidth, lh: LogicalHeight}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions and clears it.
// Logical coordinates are unaffected; only the scale changes.
func (s *Screen) Resize(width, height int) {
	s.width = Max(width, 1)
	s.height = Max(height, 1)
	s.sx = float64(s.width) / s.lw
	s.sy = float64(s.height) / s.lh

	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
	s.Clear()
}

// SetLogicalSize changes the logical display the screen maps onto.
// Non-positive sizes are ignored.
func (s *Screen) SetLogicalSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.lw, s.lh = float64(w), float64(h)
	s.Resize(s.width, s.height)
}

// Clear fills the entire screen with blank default-colored cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places a cell at the given terminal position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the cell at the given terminal position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// CellAt returns the terminal cell containing the logical point.
func (s *Screen) CellAt(p Point) (x, y int) {
	return int(math.Floor(p.X * s.sx)), int(math.Floor(p.Y * s.sy))
}

// ToLogical returns the logical point at the center of a terminal cell.
// Used to convert mouse positions into display coordinates.
func (s *Screen) ToLogical(x, y int) Point {
	return Point{
		X: (float64(x) + 0.5) / s.sx,
		Y: (float64(y) + 0.5) / s.sy,
	}
}

// CellSize returns the logical size of one cell.
func (s *Screen) CellSize() (w, h float64) {
	return 1 / s.sx, 1 / s.sy
}

// span returns the cell range whose centers may fall in [min, max) logically.
func (s *Screen) span(minX, minY, maxX, maxY float64) (x0, y0, x1, y1 int) {
	x0 = Clamp(int(math.Floor(minX*s.sx)), 0, s.width-1)
	y0 = Clamp(int(math.Floor(minY*s.sy)), 0, s.height-1)
	x1 = Clamp(int(math.Ceil(maxX*s.sx)), 0, s.width-1)
	y1 = Clamp(int(math.Ceil(maxY*s.sy)), 0, s.height-1)
	return
}

// paint sets the background of a cell and replaces its rune with FillRune.
func (s *Screen) paint(x, y int, c Color) {
	s.Set(x, y, Cell{Rune: FillRune, BG: c})
}

// FillRect paints every cell whose center lies inside r.
// A rect smaller than a cell still paints the cell containing its center.
func (s *Screen) FillRect(r Rect, c Color) {
	drawn := false
	x0, y0, x1, y1 := s.span(float64(r.X), float64(r.Y), float64(r.Right()), float64(r.Bottom()))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if r.Contains(s.ToLogical(x, y)) {
				s.paint(x, y, c)
				drawn = true
			}
		}
	}
	if !drawn {
		x, y := s.CellAt(r.Center())
		s.paint(x, y, c)
	}
}

// FillCircle paints every cell whose center lies within radius of center.
// A circle smaller than a cell still paints the cell containing its center.
func (s *Screen) FillCircle(center Point, radius float64, c Color) {
	drawn := false
	x0, y0, x1, y1 := s.span(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if s.ToLogical(x, y).Dist(center) <= radius {
				s.paint(x, y, c)
				drawn = true
			}
		}
	}
	if !drawn {
		x, y := s.CellAt(center)
		s.paint(x, y, c)
	}
}

// StrokeCircle draws an unfilled ring. A cell is on the ring when the ring
// passes within half a cell of its center, measured along the radius.
func (s *Screen) StrokeCircle(center Point, radius float64, c Color) {
	cw, ch := s.CellSize()
	x0, y0, x1, y1 := s.span(center.X-radius-cw, center.Y-radius-ch, center.X+radius+cw, center.Y+radius+ch)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := s.ToLogical(x, y)
			d := p.Dist(center)
			if d == 0 {
				continue
			}
			dx, dy := math.Abs(p.X-center.X)/d, math.Abs(p.Y-center.Y)/d
			tolerance := (dx*cw + dy*ch) / 2
			if math.Abs(d-radius) <= tolerance {
				cell := s.Get(x, y)
				cell.Rune = RingRune
				cell.FG = c
				s.Set(x, y, cell)
			}
		}
	}
}

// Blit draws the visible runes of a sprite with its top-left corner at
// topLeft, scaled to the sprite's logical size. Spaces are transparent.
func (s *Screen) Blit(sp *Sprite, topLeft Point) {
	if sp == nil || sp.W <= 0 || sp.H <= 0 {
		return
	}

	drawn := false
	x0, y0, x1, y1 := s.span(topLeft.X, topLeft.Y, topLeft.X+sp.W, topLeft.Y+sp.H)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := s.ToLogical(x, y)
			r := sp.At((p.X-topLeft.X)/sp.W, (p.Y-topLeft.Y)/sp.H)
			if r == ' ' {
				continue
			}
			s.setRune(x, y, r, sp.Color)
			drawn = true
		}
	}
	if !drawn {
		x, y := s.CellAt(topLeft.Add(sp.W/2, sp.H/2))
		s.setRune(x, y, sp.Glyph(), sp.Color)
	}
}

// setRune replaces the rune and foreground of a cell, keeping its background.
func (s *Screen) setRune(x, y int, r rune, fg Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	cell := &s.cells[y][x]
	cell.Rune = r
	cell.FG = fg
}

// DrawText writes text horizontally starting at the cell containing at.
// Text is not scaled; one rune occupies one cell. Characters that extend
// beyond screen bounds are clipped.
func (s *Screen) DrawText(at Point, text string, fg Color) {
	x, y := s.CellAt(at)
	s.drawTextCells(x, y, text, fg)
}

// DrawTextCentered draws text centered on the cell containing r's center.
func (s *Screen) DrawTextCentered(r Rect, text string, fg Color) {
	x, y := s.CellAt(r.Center())
	s.drawTextCells(x-len([]rune(text))/2, y, text, fg)
}

func (s *Screen) drawTextCells(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		s.setRune(x+i, y, r, fg)
		i++
	}
}

// String converts the screen buffer to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
