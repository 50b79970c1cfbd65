package core

import "github.com/golang/geo/r2"

// Element is a simulated circular body
// Pos is the top-left corner of its bounding box, Dir is the displacement per tick
type Element struct {
	Pos   r2.Point
	Dir   r2.Point
	Color Color
}

// Center returns the geometric center for a body of the given diameter
func (e Element) Center(diameter float64) r2.Point {
	return r2.Point{X: e.Pos.X + diameter/2, Y: e.Pos.Y + diameter/2}
}
