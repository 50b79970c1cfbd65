package engine

import (
	"time"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/parameter"
	"github.com/lixenwraith/bouncer/physics"
	"github.com/lixenwraith/bouncer/vmath"
)

// TrackedState is the tracked element's run state
type TrackedState uint8

const (
	TrackedIdle TrackedState = iota
	TrackedMoving
	TrackedPaused
	TrackedReached
)

func (s TrackedState) String() string {
	switch s {
	case TrackedIdle:
		return "Idle"
	case TrackedMoving:
		return "Moving"
	case TrackedPaused:
		return "Paused"
	case TrackedReached:
		return "Reached"
	default:
		return "Unknown"
	}
}

// ParkourConfig tunes a parkour session
type ParkourConfig struct {
	TickInterval time.Duration
	GoalRadius   float64
	Time         TimeProvider // nil uses the monotonic clock
}

// DefaultParkourConfig returns the stock tuning
func DefaultParkourConfig() ParkourConfig {
	return ParkourConfig{
		TickInterval: parameter.ParkourTickInterval,
		GoalRadius:   parameter.GoalDefaultRadius,
	}
}

// Parkour steers one tracked element through obstacles toward the goal
type Parkour struct {
	World

	cfg     ParkourConfig
	goal    *Goal
	element core.Element
	state   TrackedState
	clock   *PausableClock
}

// NewParkour creates an idle session with the tracked element at the origin
func NewParkour(vp core.Viewport, cfg ParkourConfig) *Parkour {
	if cfg.Time == nil {
		cfg.Time = NewMonotonicTimeProvider()
	}
	p := &Parkour{
		cfg: cfg,
		element: core.Element{
			Dir:   r2.Point{X: parameter.TrackedStartDirX, Y: parameter.TrackedStartDirY},
			Color: core.ColorYellow,
		},
		clock: NewPausableClock(cfg.Time),
	}
	p.World.init(vp)
	p.goal = NewGoal(vp)
	if cfg.GoalRadius > 0 {
		p.goal.SetRadius(cfg.GoalRadius)
		p.goal.Reposition(vp)
	}
	// Attempt clock runs only while Moving
	p.clock.Pause()
	p.Publish()
	return p
}

// Start registers the advance timer
func (p *Parkour) Start(t Timers) {
	t.Every(TimerAdvance, p.cfg.TickInterval, p.Tick)
}

// Element returns the tracked element
func (p *Parkour) Element() core.Element {
	return p.element
}

// State returns the tracked element's run state
func (p *Parkour) State() TrackedState {
	return p.state
}

// Goal returns a copy of the goal
func (p *Parkour) Goal() Goal {
	return *p.goal
}

// Elapsed returns the attempt time, frozen while not Moving
func (p *Parkour) Elapsed() time.Duration {
	return p.clock.Elapsed()
}

// Tick advances the tracked element while Moving and checks the goal
// Gravity never applies to the tracked element
func (p *Parkour) Tick() {
	if p.state != TrackedMoving {
		return
	}
	m := physics.Advance(p.element, p.diameter, p.viewport, p.obstacles.All(), p.focal, nil)
	p.element = m.Element
	p.tick++
	if m.Bounced() {
		p.emit(EventBounce, 1)
	}
	if p.goal.ContainsElementCenter(p.element.Pos, p.diameter) {
		p.state = TrackedReached
		p.clock.Pause()
		p.emit(EventGoalReached, 1)
	}
}

// Launch aims the tracked element at target and starts a fresh attempt, from any state
// Direction is (target - position) / LaunchDivisor
func (p *Parkour) Launch(target r2.Point) {
	p.element.Dir = target.Sub(p.element.Pos).Mul(1 / parameter.LaunchDivisor)
	p.state = TrackedMoving
	p.clock.Reset()
	if p.selection.IsTracked() {
		p.selection = core.NoSelection
	}
	p.emit(EventLaunch, 1)
}

// SetLaunchVector launches toward (x, y)
func (p *Parkour) SetLaunchVector(x, y float64) {
	p.Launch(r2.Point{X: x, Y: y})
}

// TogglePause flips Moving and Paused, no-op in other states
func (p *Parkour) TogglePause() TrackedState {
	switch p.state {
	case TrackedMoving:
		p.state = TrackedPaused
		p.clock.Pause()
	case TrackedPaused:
		p.state = TrackedMoving
		p.clock.Resume()
	}
	return p.state
}

// SelectTracked toggles selection of the tracked element
func (p *Parkour) SelectTracked() {
	if p.selection.IsTracked() {
		p.selection = core.NoSelection
		return
	}
	p.selection = core.TrackedSelection()
}

// SelectGoal toggles selection of the goal
func (p *Parkour) SelectGoal() {
	if p.selection.IsGoal() {
		p.selection = core.NoSelection
		return
	}
	p.selection = core.GoalSelection()
}

// ResizeGoal changes the goal radius by delta while the goal is selected
func (p *Parkour) ResizeGoal(delta float64) {
	if !p.selection.IsGoal() {
		return
	}
	p.goal.Grow(delta)
}

// MoveGoal shifts the goal while it is selected
func (p *Parkour) MoveGoal(dx, dy float64) {
	if !p.selection.IsGoal() {
		return
	}
	p.goal.Move(dx, dy)
}

// ResizeSelected moves the goal one step when it is selected, otherwise resizes the selected obstacle
func (p *Parkour) ResizeSelected(dir Direction) {
	if p.selection.IsGoal() {
		dx, dy := dir.Delta()
		p.MoveGoal(dx*parameter.GoalStep, dy*parameter.GoalStep)
		return
	}
	p.World.ResizeSelected(dir)
}

// Click dispatches a pointer press at pt
// Tracked selected launches; otherwise the goal, the element and obstacles are hit-tested in
// that order and an empty spot creates an obstacle
func (p *Parkour) Click(pt r2.Point) {
	switch {
	case p.selection.IsTracked():
		p.Launch(pt)
	case vmath.CircleContains(p.goal.Center, p.goal.Radius, pt):
		p.SelectGoal()
	case vmath.SquareRect(p.element.Pos, p.diameter).ContainsPoint(pt):
		p.SelectTracked()
	default:
		if i := p.ObstacleAt(pt); i >= 0 {
			p.SelectObstacle(i)
			return
		}
		p.AddObstacle(pt)
	}
}

// Resize applies a new viewport, re-anchors the goal and pulls the element inside
func (p *Parkour) Resize(vp core.Viewport) {
	p.resize(vp)
	p.goal.Reposition(vp)
	p.element.Pos = p.clampBody(p.element.Pos)
}

// Publish stores a snapshot of the current state
func (p *Parkour) Publish() {
	s := p.baseSnapshot()
	s.Elements = []core.Element{p.element}
	s.Goal = &GoalView{
		Center:   p.goal.Center,
		Radius:   p.goal.Radius,
		Selected: p.selection.IsGoal(),
	}
	s.Tracked = p.state
	s.Elapsed = p.clock.Elapsed()
	p.snapshot.Store(s)
}
