// Package core provides fundamental types and utilities shared by the engine
// and the terminal shell. It has no Bubble Tea dependency so game logic stays
// pure and testable.
package core

import (
	"fmt"
	"math"
)

// Vec is a point on the playing field, in field units (the field is 800x450).
type Vec struct {
	X, Y float64
}

// V is a convenience constructor for Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v offset by (dx, dy).
func (v Vec) Add(dx, dy float64) Vec {
	return Vec{X: v.X + dx, Y: v.Y + dy}
}

// String returns a string representation of the point.
func (v Vec) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}

// Within reports whether other lies strictly inside the axis-aligned square of
// half-width r centred on v. Both axes are tested independently.
func (v Vec) Within(other Vec, r float64) bool {
	return math.Abs(v.X-other.X) < r && math.Abs(v.Y-other.Y) < r
}

// Chebyshev returns max(|dx|, |dy|) between two points.
func (v Vec) Chebyshev(other Vec) float64 {
	return math.Max(math.Abs(v.X-other.X), math.Abs(v.Y-other.Y))
}

// Bounds is an inclusive axis-aligned box.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Clamp moves p onto the nearest point inside b.
func (b Bounds) Clamp(p Vec) Vec {
	return Vec{
		X: ClampF(p.X, b.MinX, b.MaxX),
		Y: ClampF(p.Y, b.MinY, b.MaxY),
	}
}

// Contains reports whether p lies inside b (edges included).
func (b Bounds) Contains(p Vec) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Rect represents a character-cell rectangle on a Screen.
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

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
