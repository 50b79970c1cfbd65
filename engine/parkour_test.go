package engine

import (
	"testing"
	"time"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/parameter"
)

var parkourViewport = core.Viewport{Width: 1000, Height: 600}

func newTestParkour(t *testing.T) (*Parkour, *MockTimeProvider) {
	t.Helper()
	mock := NewMockTimeProvider(epoch)
	cfg := DefaultParkourConfig()
	cfg.Time = mock
	return NewParkour(parkourViewport, cfg), mock
}

func TestParkour_InitialState(t *testing.T) {
	p, mock := newTestParkour(t)

	e := p.Element()
	if e.Pos != (r2.Point{}) || e.Color != core.ColorYellow {
		t.Errorf("initial element = %+v, want yellow at origin", e)
	}
	if p.State() != TrackedIdle {
		t.Errorf("State = %v, want Idle", p.State())
	}

	p.Tick()
	mock.Advance(time.Second)
	if p.Element() != e {
		t.Error("idle tick moved the element")
	}
	if p.Elapsed() != 0 {
		t.Errorf("Elapsed before launch = %v, want 0", p.Elapsed())
	}
	if g := p.Goal(); g.Center != (r2.Point{X: 900, Y: 300}) {
		t.Errorf("goal center = %v, want (900, 300)", g.Center)
	}
}

func TestParkour_LaunchAndPause(t *testing.T) {
	p, mock := newTestParkour(t)
	events := eventCounter{}
	p.RegisterHandler(events)

	if p.TogglePause() != TrackedIdle {
		t.Error("TogglePause changed Idle state")
	}

	p.SetLaunchVector(100, 50)
	if p.State() != TrackedMoving {
		t.Fatalf("State after launch = %v, want Moving", p.State())
	}
	if p.Element().Dir != (r2.Point{X: 1, Y: 0.5}) {
		t.Errorf("launch Dir = %v, want (1, 0.5)", p.Element().Dir)
	}

	p.Tick()
	if p.Element().Pos != (r2.Point{X: 1, Y: 0.5}) {
		t.Errorf("Pos after tick = %v, want (1, 0.5)", p.Element().Pos)
	}
	mock.Advance(2 * time.Second)

	if p.TogglePause() != TrackedPaused {
		t.Fatal("TogglePause did not pause a moving element")
	}
	pos := p.Element().Pos
	p.Tick()
	mock.Advance(5 * time.Second)
	if p.Element().Pos != pos {
		t.Error("paused tick moved the element")
	}
	if p.Elapsed() != 2*time.Second {
		t.Errorf("Elapsed while paused = %v, want 2s", p.Elapsed())
	}

	if p.TogglePause() != TrackedMoving {
		t.Fatal("TogglePause did not resume")
	}
	p.Tick()
	if p.Element().Pos == pos {
		t.Error("resumed tick did not move the element")
	}
	if events[EventLaunch] != 1 {
		t.Errorf("launch events = %d, want 1", events[EventLaunch])
	}
}

func TestParkour_ReachGoal(t *testing.T) {
	p, mock := newTestParkour(t)
	events := eventCounter{}
	p.RegisterHandler(events)

	// Aim the element box so its center heads for the goal center
	p.Launch(r2.Point{X: 889, Y: 289})
	for i := 0; i < 200 && p.State() == TrackedMoving; i++ {
		p.Tick()
		mock.Advance(parameter.ParkourTickInterval)
	}

	if p.State() != TrackedReached {
		t.Fatalf("State = %v after 200 ticks, want Reached", p.State())
	}
	if events[EventGoalReached] != 1 {
		t.Errorf("goal events = %d, want 1", events[EventGoalReached])
	}

	pos := p.Element().Pos
	elapsed := p.Elapsed()
	p.Tick()
	mock.Advance(time.Second)
	if p.Element().Pos != pos {
		t.Error("tick after Reached moved the element")
	}
	if p.Elapsed() != elapsed {
		t.Errorf("Elapsed advanced after Reached: %v -> %v", elapsed, p.Elapsed())
	}
	if p.TogglePause() != TrackedReached {
		t.Error("TogglePause changed Reached state")
	}

	// Relaunch from Reached starts a fresh attempt
	p.Launch(r2.Point{})
	if p.State() != TrackedMoving || p.Elapsed() != 0 {
		t.Errorf("relaunch: state %v elapsed %v, want Moving and 0", p.State(), p.Elapsed())
	}
}

func TestParkour_SelectionToggles(t *testing.T) {
	p, _ := newTestParkour(t)

	p.SelectTracked()
	if !p.Selection().IsTracked() {
		t.Fatal("SelectTracked did not select")
	}
	p.SelectGoal()
	if !p.Selection().IsGoal() {
		t.Fatal("SelectGoal did not replace the selection")
	}
	p.SelectGoal()
	if p.Selection() != core.NoSelection {
		t.Error("second SelectGoal did not deselect")
	}

	p.SelectTracked()
	p.Launch(r2.Point{X: 500, Y: 300})
	if p.Selection() != core.NoSelection {
		t.Error("launch kept the tracked selection")
	}
}

func TestParkour_GoalEditing(t *testing.T) {
	p, _ := newTestParkour(t)

	p.ResizeGoal(50)
	p.MoveGoal(10, 10)
	if g := p.Goal(); g.Radius != parameter.GoalDefaultRadius || g.Center != (r2.Point{X: 900, Y: 300}) {
		t.Fatalf("unselected goal edited: %+v", g)
	}

	p.SelectGoal()
	p.ResizeGoal(-parameter.GoalStep)
	p.ResizeSelected(DirLeft)
	p.ResizeSelected(DirDown)

	g := p.Goal()
	if g.Radius != parameter.GoalDefaultRadius-parameter.GoalStep {
		t.Errorf("Radius = %v, want %v", g.Radius, parameter.GoalDefaultRadius-parameter.GoalStep)
	}
	if g.Center != (r2.Point{X: 890, Y: 310}) {
		t.Errorf("Center = %v, want (890, 310)", g.Center)
	}

	p.ResizeGoal(-1000)
	if p.Goal().Radius != parameter.GoalMinRadius {
		t.Errorf("Radius = %v, want minimum %v", p.Goal().Radius, parameter.GoalMinRadius)
	}
}

func TestParkour_ClickDispatch(t *testing.T) {
	p, _ := newTestParkour(t)

	// Empty spot adds an obstacle
	p.Click(r2.Point{X: 300, Y: 100})
	if p.Obstacles().Len() != 1 || !p.Selection().IsObstacle(0) {
		t.Fatalf("empty click: %d obstacles, selection %v", p.Obstacles().Len(), p.Selection())
	}

	// Obstacle hit selects without adding
	p.ClearSelection()
	p.Click(r2.Point{X: 350, Y: 105})
	if p.Obstacles().Len() != 1 || !p.Selection().IsObstacle(0) {
		t.Errorf("obstacle click: %d obstacles, selection %v", p.Obstacles().Len(), p.Selection())
	}

	// Goal hit toggles goal selection
	p.Click(r2.Point{X: 900, Y: 300})
	if !p.Selection().IsGoal() {
		t.Errorf("goal click selection = %v", p.Selection())
	}
	p.Click(r2.Point{X: 900, Y: 300})
	if p.Selection() != core.NoSelection {
		t.Errorf("second goal click selection = %v", p.Selection())
	}

	// Element hit selects it, the next click launches
	p.Click(r2.Point{X: 5, Y: 5})
	if !p.Selection().IsTracked() {
		t.Fatalf("element click selection = %v", p.Selection())
	}
	p.Click(r2.Point{X: 200, Y: 100})
	if p.State() != TrackedMoving || p.Selection() != core.NoSelection {
		t.Errorf("launch click: state %v selection %v", p.State(), p.Selection())
	}
	if p.Element().Dir != (r2.Point{X: 2, Y: 1}) {
		t.Errorf("launch Dir = %v, want (2, 1)", p.Element().Dir)
	}
	if p.Obstacles().Len() != 1 {
		t.Errorf("launch click added an obstacle")
	}
}

func TestParkour_ResizeAndPublish(t *testing.T) {
	p, _ := newTestParkour(t)
	p.Launch(r2.Point{X: 2000, Y: 0})
	for i := 0; i < 50; i++ {
		p.Tick()
	}

	small := core.Viewport{Width: 400, Height: 200}
	p.Resize(small)
	p.SelectGoal()
	p.Publish()

	s := p.Snapshot()
	if s.Goal == nil {
		t.Fatal("parkour snapshot has no goal")
	}
	if s.Goal.Center != (r2.Point{X: 300, Y: 100}) || !s.Goal.Selected {
		t.Errorf("snapshot goal = %+v", s.Goal)
	}
	if s.Tracked != TrackedMoving {
		t.Errorf("snapshot state = %v, want Moving", s.Tracked)
	}
	if len(s.Elements) != 1 {
		t.Fatalf("snapshot elements = %d, want 1", len(s.Elements))
	}
	if e := s.Elements[0]; e.Pos.X > small.Width-s.Diameter || e.Pos.Y > small.Height-s.Diameter {
		t.Errorf("tracked element outside shrunk viewport: %v", e.Pos)
	}
}

func TestParkour_Start(t *testing.T) {
	p, _ := newTestParkour(t)
	timers := newFakeTimers()
	p.Start(timers)

	if timers.active[TimerAdvance] != parameter.ParkourTickInterval {
		t.Errorf("advance period = %v, want %v", timers.active[TimerAdvance], parameter.ParkourTickInterval)
	}
	p.Launch(r2.Point{X: 100})
	timers.fns[TimerAdvance]()
	if p.Element().Pos != (r2.Point{X: 1}) {
		t.Errorf("timer tick Pos = %v, want (1, 0)", p.Element().Pos)
	}
}
