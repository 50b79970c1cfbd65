package engine

import (
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/parameter"
	"github.com/lixenwraith/bouncer/vmath"
)

// Goal is the circular target of the tracked element
type Goal struct {
	Center r2.Point
	Radius float64
}

// NewGoal creates a default-radius goal anchored to vp
func NewGoal(vp core.Viewport) *Goal {
	g := &Goal{Radius: parameter.GoalDefaultRadius}
	g.Reposition(vp)
	return g
}

// Reposition anchors the goal one radius in from the right edge, vertically centered
func (g *Goal) Reposition(vp core.Viewport) {
	g.Center = r2.Point{X: vp.Width - g.Radius, Y: vp.Height / 2}
}

// SetRadius sets the radius, clamped to GoalMinRadius
func (g *Goal) SetRadius(r float64) {
	g.Radius = vmath.ClampMin(r, parameter.GoalMinRadius)
}

// Grow changes the radius by delta, clamped to GoalMinRadius
func (g *Goal) Grow(delta float64) {
	g.SetRadius(g.Radius + delta)
}

// Move shifts the center
func (g *Goal) Move(dx, dy float64) {
	g.Center = g.Center.Add(r2.Point{X: dx, Y: dy})
}

// ContainsElementCenter reports whether the center of the element box at pos lies strictly
// within the goal radius
func (g *Goal) ContainsElementCenter(pos r2.Point, diameter float64) bool {
	center := r2.Point{X: pos.X + diameter/2, Y: pos.Y + diameter/2}
	return vmath.CircleContains(g.Center, g.Radius, center)
}
