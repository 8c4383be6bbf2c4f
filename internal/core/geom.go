// Package core provides the value types shared by the simulation and its frontends.
// It has no external dependencies so game logic stays pure and testable.
package core

// Vec2 is a position or offset in canvas pixels.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Box is an axis-aligned rectangle in canvas pixels, anchored at its top-left corner.
type Box struct {
	Pos  Vec2
	W, H float64
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.Pos.X }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Pos.Y }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.Pos.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Pos.Y + b.H }

// Rect is an integer rectangle in screen cells, used by the terminal buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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
