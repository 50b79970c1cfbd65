package vmath

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/core"
)

// SquareRect returns the square box of side size anchored at top-left pos
func SquareRect(pos r2.Point, size float64) r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: pos.X, Hi: pos.X + size},
		Y: r1.Interval{Lo: pos.Y, Hi: pos.Y + size},
	}
}

// ObstacleRect converts an obstacle to its rectangle
func ObstacleRect(o core.Obstacle) r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: o.Pos.X, Hi: o.Right()},
		Y: r1.Interval{Lo: o.Pos.Y, Hi: o.Bottom()},
	}
}

// Overlaps reports strict AABB overlap; touching edges do not overlap
func Overlaps(a, b r2.Rect) bool {
	return a.X.InteriorIntersects(b.X) && a.Y.InteriorIntersects(b.Y)
}

// CircleContains reports whether p lies strictly inside the circle
func CircleContains(center r2.Point, radius float64, p r2.Point) bool {
	return p.Sub(center).Norm() < radius
}
