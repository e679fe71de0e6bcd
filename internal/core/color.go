package core

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color for a screen cell.
// The zero value means "terminal default" and is never emitted as a style.
type Color struct {
	R, G, B uint8
	set     bool
}

// RGB returns an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// Predefined colors for scene elements.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
	ColorGreen = RGB(0, 255, 0)
	ColorRed   = RGB(255, 0, 0)
	ColorSun   = RGB(255, 204, 0)
	ColorStar  = RGB(200, 200, 220)
)

// IsSet reports whether the color was explicitly assigned.
func (c Color) IsSet() bool {
	return c.set
}

// Hex returns the color as "#rrggbb". Unset colors return an empty string.
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return c.colorful().Hex()
}

// Blend mixes c over bg with the given opacity (0 = bg, 1 = c).
// Used to emulate alpha for orbit rings.
func (c Color) Blend(bg Color, opacity float64) Color {
	if opacity <= 0 {
		return bg
	}
	if opacity >= 1 {
		return c
	}
	r, g, b := bg.colorful().BlendRgb(c.colorful(), opacity).Clamped().RGB255()
	return RGB(r, g, b)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
