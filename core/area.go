package core

import "github.com/golang/geo/r2"

// Obstacle is a static axis-aligned rectangle anchored at its top-left corner
type Obstacle struct {
	Pos  r2.Point
	Size r2.Point // X = width, Y = height
}

// Right returns the x coordinate of the right edge
func (o Obstacle) Right() float64 {
	return o.Pos.X + o.Size.X
}

// Bottom returns the y coordinate of the bottom edge
func (o Obstacle) Bottom() float64 {
	return o.Pos.Y + o.Size.Y
}

// Viewport is the simulated plane, origin at top-left
type Viewport struct {
	Width, Height float64
}

// Fits reports whether the obstacle lies within the viewport
func (v Viewport) Fits(o Obstacle) bool {
	return o.Pos.X >= 0 && o.Pos.Y >= 0 && o.Right() <= v.Width && o.Bottom() <= v.Height
}
