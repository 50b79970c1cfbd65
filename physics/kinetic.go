package physics

import (
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/vmath"
)

// Motion is the outcome of advancing one element by one tick
type Motion struct {
	Element core.Element

	// BounceX, BounceY: velocity component was reflected (boundary or obstacle)
	BounceX, BounceY bool

	// Blocked: obstacle contact, subset of the bounce flags
	Blocked Blocked
}

// Bounced reports whether any axis bounced
func (m Motion) Bounced() bool {
	return m.BounceX || m.BounceY
}

// Advance integrates one tick, in order:
//  1. clamp pos+dir to the viewport, marking boundary bounces
//  2. restore the pre-tick coordinate on an obstacle-blocked axis
//  3. reflect the bounced velocity components
//  4. blend attraction into the reflected direction when gravity is non-nil
//  5. cycle color on any bounce
//
// Reflection precedes attraction, so on a bounced axis the pull acts on the reflected component
// Pure: e is not modified
func Advance(
	e core.Element,
	diameter float64,
	vp core.Viewport,
	obstacles []core.Obstacle,
	focal r2.Point,
	gravity *GravityProfile,
) Motion {
	old := e.Pos
	tentative := old.Add(e.Dir)
	limit := r2.Point{X: vp.Width - diameter, Y: vp.Height - diameter}
	next := vmath.ClampPoint(tentative, r2.Point{}, limit)

	// Clamping onto an unchanged value with zero velocity is not a bounce
	bounceX := next.X != tentative.X && e.Dir.X != 0
	bounceY := next.Y != tentative.Y && e.Dir.Y != 0

	blocked := DetectCollision(old, next, diameter, obstacles)
	if blocked.X {
		next.X = old.X
		bounceX = true
	}
	if blocked.Y {
		next.Y = old.Y
		bounceY = true
	}
	// Restored coordinate may predate a viewport shrink
	next = vmath.ClampPoint(next, r2.Point{}, limit)

	dir := e.Dir
	if bounceX {
		dir = vmath.ReflectAxisX(dir)
	}
	if bounceY {
		dir = vmath.ReflectAxisY(dir)
	}

	if gravity != nil {
		center := r2.Point{X: next.X + diameter/2, Y: next.Y + diameter/2}
		dir = ApplyGravity(dir, center, focal, gravity)
	}

	color := e.Color
	if bounceX || bounceY {
		color = color.Next()
	}

	return Motion{
		Element: core.Element{Pos: next, Dir: dir, Color: color},
		BounceX: bounceX,
		BounceY: bounceY,
		Blocked: blocked,
	}
}
