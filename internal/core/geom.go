// Package core provides fundamental types shared by the runner's subsystems.
// It has no dependencies on rendering or terminal libraries so the game
// logic stays pure and testable.
//
// Coordinates: x grows to the right, y grows downward, and an entity's Y is
// its bottom edge. An entity standing on the ground has Y == ground Y.
package core

import "math"

// Rect is an axis-aligned bounding box anchored at its bottom-left corner.
type Rect struct {
	X, Y float64 // Left edge, bottom edge
	W, H float64 // Width and height, positive and fixed after creation
}

// NewRect creates a new rectangle from its left edge, bottom edge and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y - r.H
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y
}

// Intersects returns true if this rectangle strictly overlaps another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Right() <= other.X || other.Right() <= r.X {
		return false
	}
	if r.Bottom() <= other.Top() || other.Bottom() <= r.Top() {
		return false
	}
	return true
}

// Obstacle is a ground obstacle the player must jump over.
// IDs are unique for the lifetime of the spawner that created them.
type Obstacle struct {
	ID uint64
	Rect
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
