package engine

import (
	"sync/atomic"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/parameter"
	"github.com/lixenwraith/bouncer/vmath"
)

// Direction is an arrow-key command direction
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Delta returns the unit step for the direction, screen coordinates (Y down)
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 1
	}
}

// World is the state shared by both sessions: viewport, obstacles, focal point and selection
// Not safe for concurrent use; all calls happen on the scheduler loop, readers use Snapshot
type World struct {
	eventBus

	viewport  core.Viewport
	diameter  float64
	obstacles *ObstacleStore
	focal     r2.Point
	selection core.Selection
	tick      uint64

	snapshot atomic.Pointer[Snapshot]
}

func (w *World) init(vp core.Viewport) {
	w.viewport = vp
	w.diameter = parameter.ElementDiameter
	w.obstacles = NewObstacleStore()
}

// Viewport returns the current viewport
func (w *World) Viewport() core.Viewport {
	return w.viewport
}

// Diameter returns the element diameter
func (w *World) Diameter() float64 {
	return w.diameter
}

// Obstacles returns the obstacle store
func (w *World) Obstacles() *ObstacleStore {
	return w.obstacles
}

// FocalPoint returns the attraction target
func (w *World) FocalPoint() r2.Point {
	return w.focal
}

// SetFocalPoint records the pointer position
func (w *World) SetFocalPoint(p r2.Point) {
	w.focal = p
}

// Selection returns the current selection
func (w *World) Selection() core.Selection {
	return w.selection
}

// Ticks returns the number of ticks advanced
func (w *World) Ticks() uint64 {
	return w.tick
}

// SelectObstacle selects obstacle i, negative i clears the selection
// An index past the end is ignored
func (w *World) SelectObstacle(i int) {
	if i < 0 {
		w.selection = core.NoSelection
		return
	}
	if i >= w.obstacles.Len() {
		return
	}
	w.selection = core.ObstacleSelection(i)
}

// ClearSelection deselects everything
func (w *World) ClearSelection() {
	w.selection = core.NoSelection
}

// AddObstacle creates an obstacle at p and selects it, returns -1 when rejected
func (w *World) AddObstacle(p r2.Point) int {
	i := w.obstacles.Add(p, w.viewport)
	if i >= 0 {
		w.selection = core.ObstacleSelection(i)
	}
	return i
}

// ResizeSelected grows (right, down) or shrinks (left, up) the selected obstacle by one step
func (w *World) ResizeSelected(dir Direction) {
	i, ok := w.selection.Obstacle()
	if !ok {
		return
	}
	dx, dy := dir.Delta()
	if dx != 0 {
		w.obstacles.Resize(i, AxisWidth, dx*parameter.ObstacleStep, w.viewport)
	} else {
		w.obstacles.Resize(i, AxisHeight, dy*parameter.ObstacleStep, w.viewport)
	}
}

// RotateSelected swaps the selected obstacle's width and height
func (w *World) RotateSelected() {
	if i, ok := w.selection.Obstacle(); ok {
		w.obstacles.Rotate(i, w.viewport)
	}
}

// DeleteSelected removes the selected obstacle and clears the selection
func (w *World) DeleteSelected() {
	if i, ok := w.selection.Obstacle(); ok {
		w.obstacles.Remove(i)
		w.selection = core.NoSelection
	}
}

// ObstacleAt returns the index of the topmost obstacle containing p, or -1
func (w *World) ObstacleAt(p r2.Point) int {
	all := w.obstacles.All()
	for i := len(all) - 1; i >= 0; i-- {
		o := all[i]
		if p.X >= o.Pos.X && p.X < o.Right() && p.Y >= o.Pos.Y && p.Y < o.Bottom() {
			return i
		}
	}
	return -1
}

// resize stores the new viewport and re-clamps obstacles
func (w *World) resize(vp core.Viewport) {
	w.viewport = vp
	w.obstacles.Refit(vp)
}

// clampBody keeps an element box within the viewport
func (w *World) clampBody(p r2.Point) r2.Point {
	limit := r2.Point{X: w.viewport.Width - w.diameter, Y: w.viewport.Height - w.diameter}
	return vmath.ClampPoint(p, r2.Point{}, limit)
}

// Snapshot returns the last published state, nil before the first Publish
func (w *World) Snapshot() *Snapshot {
	return w.snapshot.Load()
}

// baseSnapshot copies the shared state
func (w *World) baseSnapshot() *Snapshot {
	all := w.obstacles.All()
	obstacles := make([]ObstacleView, len(all))
	for i, o := range all {
		obstacles[i] = ObstacleView{Obstacle: o, Selected: w.selection.IsObstacle(i)}
	}
	return &Snapshot{
		Tick:      w.tick,
		Viewport:  w.viewport,
		Diameter:  w.diameter,
		Focal:     w.focal,
		Obstacles: obstacles,
		Selection: w.selection,
	}
}
