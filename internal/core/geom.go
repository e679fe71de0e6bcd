// Package core provides fundamental types and utilities for the game.
// It does not depend on Bubble Tea, which keeps game
// logic pure and testable.
package core

import "math"

// Point is a position in logical display coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return Distance(p.X, p.Y, q.X, q.Y)
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Nearest returns the point of the box centered on p with half-extents
// (hw, hh) that lies closest to q. A zero box is p itself.
func (p Point) Nearest(q Point, hw, hh float64) Point {
	return Point{
		X: math.Max(p.X-hw, math.Min(q.X, p.X+hw)),
		Y: math.Max(p.Y-hh, math.Min(q.Y, p.Y+hh)),
	}
}

// Polar returns the point at the given distance and angle from center.
func Polar(center Point, distance, angle float64) Point {
	return Point{
		X: center.X + distance*math.Cos(angle),
		Y: center.Y + distance*math.Sin(angle),
	}
}

// Rect represents an axis-aligned rectangle used for buttons and hit testing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point is inside this rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= float64(r.X) && p.X < float64(r.Right()) &&
		p.Y >= float64(r.Y) && p.Y < float64(r.Bottom())
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: float64(r.X) + float64(r.W)/2, Y: float64(r.Y) + float64(r.H)/2}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
