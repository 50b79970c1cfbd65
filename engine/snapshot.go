package engine

import (
	"time"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/core"
)

// ObstacleView is an obstacle with its selection flag
type ObstacleView struct {
	core.Obstacle
	Selected bool
}

// GoalView is the goal with its selection flag
type GoalView struct {
	Center   r2.Point
	Radius   float64
	Selected bool
}

// Snapshot is an immutable copy of session state published after every scheduler job
// Renderers read only snapshots, never live session state
type Snapshot struct {
	Tick      uint64
	Viewport  core.Viewport
	Diameter  float64
	Focal     r2.Point
	Elements  []core.Element
	Obstacles []ObstacleView
	Selection core.Selection

	// Free-roam flags
	Gravity  bool
	Spiral   bool
	EditMode bool

	// Parkour state, Goal nil in free-roam
	Goal    *GoalView
	Tracked TrackedState
	Elapsed time.Duration
}
