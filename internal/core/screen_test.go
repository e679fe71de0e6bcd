package core

import (
	"strings"
	"testing"
)

// newTestScreen returns a screen where one cell covers 10x10 logical pixels.
func newTestScreen() *Screen {
	return NewScreen(LogicalWidth/10, LogicalHeight/10)
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with blank cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.Get(x, y); c.Rune != ' ' || c.BG.IsSet() || c.FG.IsSet() {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, Cell{Rune: 'X', FG: ColorRed})
	if c := s.Get(5, 5); c.Rune != 'X' || c.FG != ColorRed {
		t.Errorf("Get(5, 5) = %+v, expected red 'X'", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, Cell{Rune: 'A'})
	s.Set(100, 0, Cell{Rune: 'A'})
	s.Set(0, -1, Cell{Rune: 'A'})
	s.Set(0, 100, Cell{Rune: 'A'})

	if s.Get(-1, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return blank cell")
	}
}

func TestScreenCoordinateMapping(t *testing.T) {
	s := newTestScreen()

	p := s.ToLogical(5, 7)
	if p.X != 55 || p.Y != 75 {
		t.Errorf("ToLogical(5, 7) = %v, expected (55, 75)", p)
	}

	x, y := s.CellAt(p)
	if x != 5 || y != 7 {
		t.Errorf("CellAt(%v) = (%d, %d), expected (5, 7)", p, x, y)
	}

	x, y = s.CellAt(Pt(LogicalWidth-0.1, LogicalHeight-0.1))
	if x != s.Width()-1 || y != s.Height()-1 {
		t.Errorf("bottom-right logical point should map to last cell, got (%d, %d)", x, y)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := newTestScreen()
	s.FillRect(NewRect(100, 100, 50, 30), ColorGreen)

	for y := 10; y < 13; y++ {
		for x := 10; x < 15; x++ {
			if s.Get(x, y).BG != ColorGreen {
				t.Errorf("FillRect: expected green at (%d, %d)", x, y)
			}
		}
	}

	if s.Get(15, 10).BG.IsSet() {
		t.Error("FillRect should not paint past the right edge")
	}
	if s.Get(12, 13).BG.IsSet() {
		t.Error("FillRect should not paint past the bottom edge")
	}
}

func TestScreenFillCircle(t *testing.T) {
	s := newTestScreen()
	s.FillCircle(Pt(640, 360), 20, ColorSun)

	if s.Get(64, 36).BG != ColorSun {
		t.Error("cell at the circle center should be painted")
	}
	if s.Get(62, 36).BG != ColorSun {
		t.Error("cell 15px from center should be painted")
	}
	if s.Get(61, 36).BG.IsSet() {
		t.Error("cell 25px from center should not be painted")
	}
}

func TestScreenFillCircleSmallerThanCell(t *testing.T) {
	s := NewScreen(80, 24) // 16x30 logical pixels per cell
	s.FillCircle(Pt(643, 363), 1, ColorRed)

	x, y := s.CellAt(Pt(643, 363))
	if s.Get(x, y).BG != ColorRed {
		t.Error("tiny circle should still paint the cell containing its center")
	}
}

func TestScreenStrokeCircle(t *testing.T) {
	s := newTestScreen()
	ring := RGB(50, 50, 50)
	s.FillRect(NewRect(740, 360, 10, 10), ColorRed)
	s.StrokeCircle(Pt(645, 365), 100, ring)

	if c := s.Get(74, 36); c.Rune != RingRune || c.FG != ring {
		t.Errorf("cell on the ring should be drawn, got %+v", c)
	}
	if s.Get(74, 36).BG != ColorRed {
		t.Error("ring should keep the cell background")
	}
	if s.Get(64, 36).Rune == RingRune {
		t.Error("ring center should not be drawn")
	}
	if s.Get(70, 36).Rune == RingRune {
		t.Error("cell inside the ring should not be drawn")
	}
}

func TestScreenBlit(t *testing.T) {
	s := newTestScreen()
	sp, err := NewSprite("AB\nCD", ColorWhite)
	if err != nil {
		t.Fatalf("NewSprite() failed: %v", err)
	}

	s.Blit(sp.Scaled(20, 20), Pt(100, 100))

	expected := map[[2]int]rune{
		{10, 10}: 'A',
		{11, 10}: 'B',
		{10, 11}: 'C',
		{11, 11}: 'D',
	}
	for pos, r := range expected {
		c := s.Get(pos[0], pos[1])
		if c.Rune != r || c.FG != ColorWhite {
			t.Errorf("Blit: expected white %q at %v, got %+v", r, pos, c)
		}
	}
	if s.Get(12, 10).Rune != ' ' {
		t.Error("Blit should not draw outside the sprite")
	}
}

func TestScreenBlitTransparentAndTiny(t *testing.T) {
	s := newTestScreen()
	s.Set(10, 10, Cell{Rune: '#'})

	sp, err := NewSprite(" *", ColorWhite)
	if err != nil {
		t.Fatalf("NewSprite() failed: %v", err)
	}
	s.Blit(sp.Scaled(20, 10), Pt(100, 100))
	if s.Get(10, 10).Rune != '#' {
		t.Error("spaces in a sprite should be transparent")
	}
	if s.Get(11, 10).Rune != '*' {
		t.Error("visible rune should be drawn")
	}

	s.Clear()
	s.Blit(sp.Scaled(2, 2), Pt(300, 300))
	if s.Get(30, 30).Rune != '*' {
		t.Errorf("tiny sprite should draw its glyph, got %q", s.Get(30, 30).Rune)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := newTestScreen()
	s.DrawText(Pt(10, 10), "Score: 3", ColorWhite)

	row := s.Row(1)
	if !strings.HasPrefix(row[1:], "Score: 3") {
		t.Errorf("DrawText: row 1 = %q, expected text at column 1", row)
	}

	// Text should be clipped at boundaries
	s.DrawText(Pt(LogicalWidth-20, 100), "Hello", ColorWhite)
	if s.Get(s.Width()-2, 10).Rune != 'H' || s.Get(s.Width()-1, 10).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredKeepsBackground(t *testing.T) {
	s := newTestScreen()
	button := NewRect(590, 620, 100, 50)
	s.FillRect(button, ColorGreen)
	s.DrawTextCentered(button, "Start", ColorBlack)

	// Center is (640, 645) -> cell (64, 64); 5 runes start at 62
	for i, r := range "Start" {
		c := s.Get(62+i, 64)
		if c.Rune != r {
			t.Errorf("expected %q at column %d, got %q", r, 62+i, c.Rune)
		}
		if c.BG != ColorGreen || c.FG != ColorBlack {
			t.Errorf("label cell should be black on green, got %+v", c)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	for x := 0; x < 5; x++ {
		s.Set(x, 0, Cell{Rune: 'A'})
		s.Set(x, 1, Cell{Rune: 'B'})
		s.Set(x, 2, Cell{Rune: 'C'})
	}

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(0, 0, Cell{Rune: 'X'})

	s.Resize(160, 48)
	if s.Width() != 160 || s.Height() != 48 {
		t.Errorf("After resize, dimensions should be 160x48, got %dx%d", s.Width(), s.Height())
	}
	if s.Get(0, 0).Rune != ' ' {
		t.Error("Resize should clear the buffer")
	}

	x, y := s.CellAt(Pt(640, 360))
	if x != 80 || y != 24 {
		t.Errorf("display center should map to (80, 24) after resize, got (%d, %d)", x, y)
	}

	s.Resize(0, 0)
	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("Resize should keep at least one cell, got %dx%d", s.Width(), s.Height())
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)

	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestScreenSetLogicalSize(t *testing.T) {
	s := NewScreen(80, 60)
	s.SetLogicalSize(800, 600)

	x, y := s.CellAt(Pt(400, 300))
	if x != 40 || y != 30 {
		t.Errorf("CellAt(400,300) = (%d,%d), expected (40,30)", x, y)
	}

	s.SetLogicalSize(0, 600)
	x, _ = s.CellAt(Pt(400, 300))
	if x != 40 {
		t.Error("non-positive logical size should be ignored")
	}
}
