package core

import "testing"

func TestColorHex(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{RGB(0, 191, 255), "#00bfff"},
		{ColorSun, "#ffcc00"},
		{ColorBlack, "#000000"},
		{Color{}, ""},
	}

	for _, tc := range tests {
		if got := tc.c.Hex(); got != tc.expected {
			t.Errorf("Hex() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestColorBlend(t *testing.T) {
	// 20% white over black (the orbit ring alpha)
	ring := ColorWhite.Blend(ColorBlack, 50.0/255.0)
	if ring.R != ring.G || ring.G != ring.B {
		t.Errorf("gray blend should keep channels equal, got %+v", ring)
	}
	if ring.R < 45 || ring.R > 55 {
		t.Errorf("blend of white over black at ~0.2 should be ~50, got %d", ring.R)
	}

	if got := ColorRed.Blend(ColorBlack, 0); got != ColorBlack {
		t.Errorf("zero opacity should return background, got %+v", got)
	}
	if got := ColorRed.Blend(ColorBlack, 1); got != ColorRed {
		t.Errorf("full opacity should return color, got %+v", got)
	}
}

func TestColorZeroValue(t *testing.T) {
	var c Color
	if c.IsSet() {
		t.Error("zero Color should be unset")
	}
	if !RGB(0, 0, 0).IsSet() {
		t.Error("RGB() should produce a set color")
	}
}
