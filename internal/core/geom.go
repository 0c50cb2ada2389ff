// Package core provides the terminal-independent building blocks shared by the
// game and the platform layer: a colored character buffer, integer rectangles,
// abstract input actions and runtime configuration.
// It has no Bubble Tea dependency so game code stays pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
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

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Viewport maps a continuous y-up world of size worldW x worldH onto a
// y-down grid of cols x rows cells.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// Cell returns the cell containing the world point (x, y).
// The result may lie outside the grid.
func (v Viewport) Cell(x, y float64) (int, int) {
	cx := int(math.Floor(x / v.WorldW * float64(v.Cols)))
	cy := v.Rows - 1 - int(math.Floor(y/v.WorldH*float64(v.Rows)))
	return cx, cy
}

// Box returns the cell rectangle covered by a world box given by its center
// and size. Boxes always cover at least one cell.
func (v Viewport) Box(cx, cy, w, h float64) Rect {
	x0, y1 := v.Cell(cx-w/2, cy-h/2)
	x1, y0 := v.Cell(cx+w/2, cy+h/2)
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0+1, 1))
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
