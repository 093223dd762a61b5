// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an integer rectangle in screen cells.
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

// Box is an axis-aligned bounding box in world units.
// Edges are literal: two boxes that only touch do not overlap.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.X }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// OverlapsX reports whether the horizontal extents of the boxes overlap.
func (b Box) OverlapsX(other Box) bool {
	return b.Left() < other.Right() && b.Right() > other.Left()
}

// Intersects returns true if this box overlaps with another.
func (b Box) Intersects(other Box) bool {
	return b.OverlapsX(other) && b.Top() < other.Bottom() && b.Bottom() > other.Top()
}

// WithinY reports whether the box's vertical extent lies inside [top, bottom].
func (b Box) WithinY(top, bottom float64) bool {
	return b.Top() >= top && b.Bottom() <= bottom
}

// Centered returns a square box of the given half-extent around (cx, cy).
func Centered(cx, cy, half float64) Box {
	return Box{X: cx - half, Y: cy - half, W: 2 * half, H: 2 * half}
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
