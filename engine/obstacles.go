package engine

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/parameter"
	"github.com/lixenwraith/bouncer/vmath"
)

// Axis selects the obstacle dimension to resize
type Axis uint8

const (
	AxisWidth Axis = iota
	AxisHeight
)

// ObstacleStore holds the editable rectangles in insertion order
// Every mutation keeps Pos + Size within the viewport; stale indices are ignored
type ObstacleStore struct {
	obstacles []core.Obstacle
}

// NewObstacleStore creates an empty store
func NewObstacleStore() *ObstacleStore {
	return &ObstacleStore{}
}

// Len returns the obstacle count
func (s *ObstacleStore) Len() int {
	return len(s.obstacles)
}

// Get returns the obstacle at i
func (s *ObstacleStore) Get(i int) (core.Obstacle, bool) {
	if !s.valid(i) {
		return core.Obstacle{}, false
	}
	return s.obstacles[i], true
}

// All returns the backing slice for read-only use within the current job
func (s *ObstacleStore) All() []core.Obstacle {
	return s.obstacles
}

// Snapshot returns a copy safe to hand to other goroutines
func (s *ObstacleStore) Snapshot() []core.Obstacle {
	out := make([]core.Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// Add creates a default-sized obstacle anchored at pos and returns its index
// Width and height are truncated at the viewport edge; returns -1 when pos is outside the
// viewport or within ObstacleBottomMargin of the bottom edge
func (s *ObstacleStore) Add(pos r2.Point, vp core.Viewport) int {
	if pos.X < 0 || pos.Y < 0 || pos.X >= vp.Width || pos.Y > vp.Height-parameter.ObstacleBottomMargin {
		return -1
	}
	size := r2.Point{X: parameter.ObstacleDefaultWidth, Y: parameter.ObstacleDefaultHeight}
	s.obstacles = append(s.obstacles, fitObstacle(core.Obstacle{Pos: pos, Size: size}, vp))
	return len(s.obstacles) - 1
}

// Resize grows or shrinks one axis by delta, clamped to ObstacleMinSize and the viewport edge
func (s *ObstacleStore) Resize(i int, axis Axis, delta float64, vp core.Viewport) {
	if !s.valid(i) {
		return
	}
	o := s.obstacles[i]
	switch axis {
	case AxisWidth:
		o.Size.X += delta
	case AxisHeight:
		o.Size.Y += delta
	}
	s.obstacles[i] = fitObstacle(o, vp)
}

// Rotate swaps width and height, truncating whichever side would overflow the viewport
func (s *ObstacleStore) Rotate(i int, vp core.Viewport) {
	if !s.valid(i) {
		return
	}
	o := s.obstacles[i]
	o.Size.X, o.Size.Y = o.Size.Y, o.Size.X
	s.obstacles[i] = fitObstacle(o, vp)
}

// Remove deletes the obstacle at i, shifting later indices down
func (s *ObstacleStore) Remove(i int) {
	if !s.valid(i) {
		return
	}
	s.obstacles = append(s.obstacles[:i:i], s.obstacles[i+1:]...)
}

// Refit re-clamps every obstacle after a viewport change
// Anchors outside the new viewport are pulled in so at least the minimum size fits
func (s *ObstacleStore) Refit(vp core.Viewport) {
	for i, o := range s.obstacles {
		o.Pos.X = vmath.Clamp(o.Pos.X, 0, math.Max(vp.Width-parameter.ObstacleMinSize, 0))
		o.Pos.Y = vmath.Clamp(o.Pos.Y, 0, math.Max(vp.Height-parameter.ObstacleMinSize, 0))
		s.obstacles[i] = fitObstacle(o, vp)
	}
}

func (s *ObstacleStore) valid(i int) bool {
	return i >= 0 && i < len(s.obstacles)
}

// fitObstacle applies the minimum size, then the viewport edge; the viewport wins when both
// cannot hold
func fitObstacle(o core.Obstacle, vp core.Viewport) core.Obstacle {
	o.Size.X = math.Min(vmath.ClampMin(o.Size.X, parameter.ObstacleMinSize), vp.Width-o.Pos.X)
	o.Size.Y = math.Min(vmath.ClampMin(o.Size.Y, parameter.ObstacleMinSize), vp.Height-o.Pos.Y)
	return o
}
