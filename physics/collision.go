package physics

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/vmath"
)

// Blocked reports which axis of motion an obstacle blocked
type Blocked struct {
	X, Y bool
}

// Any reports whether either axis is blocked
func (b Blocked) Any() bool {
	return b.X || b.Y
}

// DetectCollision tests the element box at next against obstacles in insertion order
// The first overlapping obstacle decides: if the box at prev already shared the obstacle's
// X-interval the motion into it was vertical (Y blocked), otherwise horizontal (X blocked)
//
// Not a swept test: a body moving farther than an obstacle's thickness in one tick passes
// through, and diagonal corner clips can be attributed to the wrong axis
func DetectCollision(prev, next r2.Point, diameter float64, obstacles []core.Obstacle) Blocked {
	box := vmath.SquareRect(next, diameter)
	prevX := r1.Interval{Lo: prev.X, Hi: prev.X + diameter}

	for i := range obstacles {
		rect := vmath.ObstacleRect(obstacles[i])
		if !vmath.Overlaps(box, rect) {
			continue
		}
		if prevX.InteriorIntersects(rect.X) {
			return Blocked{Y: true}
		}
		return Blocked{X: true}
	}
	return Blocked{}
}
