// Package core provides fundamental types and utilities for the Equata platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned area of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(r.W-2*n, 0), H: max(r.H-2*n, 0)}
}

// Viewport maps a world-space rectangle onto a block of screen cells.
// World y grows upward; screen y grows downward.
type Viewport struct {
	Area       Rect
	MinX, MaxX float64
	MinY, MaxY float64
}

// ToCell converts a world point to a screen cell.
// ok is false when the point falls outside the world rectangle or is not finite.
func (v Viewport) ToCell(x, y float64) (cx, cy int, ok bool) {
	if v.Area.W <= 0 || v.Area.H <= 0 || !(v.MaxX > v.MinX) || !(v.MaxY > v.MinY) {
		return 0, 0, false
	}
	if math.IsNaN(x) || math.IsNaN(y) || x < v.MinX || x > v.MaxX || y < v.MinY || y > v.MaxY {
		return 0, 0, false
	}

	fx := (x - v.MinX) / (v.MaxX - v.MinX)
	fy := (y - v.MinY) / (v.MaxY - v.MinY)
	cx = v.Area.X + min(int(fx*float64(v.Area.W)), v.Area.W-1)
	cy = v.Area.Bottom() - 1 - min(int(fy*float64(v.Area.H)), v.Area.H-1)
	return cx, cy, true
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(hi, val))
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
