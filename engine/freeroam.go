package engine

import (
	"math/rand"
	"time"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/parameter"
	"github.com/lixenwraith/bouncer/physics"
)

// Timer names
const (
	TimerAdvance = "advance"
	TimerSpiral  = "spiral"
)

// FreeRoamConfig tunes a free-roam session
type FreeRoamConfig struct {
	TickInterval   time.Duration
	SpiralInterval time.Duration
	BurstCount     int
	Gravity        physics.GravityProfile
	Seed           int64
}

// DefaultFreeRoamConfig returns the stock tuning
func DefaultFreeRoamConfig() FreeRoamConfig {
	return FreeRoamConfig{
		TickInterval:   parameter.FreeRoamTickInterval,
		SpiralInterval: parameter.SpiralInterval,
		BurstCount:     parameter.BurstCount,
		Gravity:        physics.DefaultGravity,
		Seed:           1,
	}
}

// FreeRoam is the sandbox of accumulating elements
// Clicks spawn elements, or edit obstacles while edit mode is on
type FreeRoam struct {
	World

	cfg      FreeRoamConfig
	elements *ElementRegistry
	timers   Timers

	gravity  bool
	spiral   bool
	editMode bool
}

// NewFreeRoam creates an empty session for vp
func NewFreeRoam(vp core.Viewport, cfg FreeRoamConfig) *FreeRoam {
	f := &FreeRoam{cfg: cfg}
	f.World.init(vp)
	f.elements = NewElementRegistry(f.diameter, rand.New(rand.NewSource(cfg.Seed)))
	f.Publish()
	return f
}

// Start registers the session timers; the spiral timer only when spiral is on
func (f *FreeRoam) Start(t Timers) {
	f.timers = t
	t.Every(TimerAdvance, f.cfg.TickInterval, func() { f.Tick() })
	if f.spiral {
		t.Every(TimerSpiral, f.cfg.SpiralInterval, f.EmitSpiral)
	}
}

// Elements returns the element registry
func (f *FreeRoam) Elements() *ElementRegistry {
	return f.elements
}

// Tick advances every element once
func (f *FreeRoam) Tick() TickReport {
	var gravity *physics.GravityProfile
	if f.gravity {
		gravity = &f.cfg.Gravity
	}
	report := f.elements.TickAll(f.viewport, f.obstacles.All(), f.focal, gravity)
	f.tick++
	if report.Bounced > 0 {
		f.emit(EventBounce, report.Bounced)
	}
	return report
}

// SpawnAt adds one element at p with a random direction and color
func (f *FreeRoam) SpawnAt(p r2.Point) core.Element {
	e := f.elements.SpawnRandom(f.clampBody(p))
	f.emit(EventSpawn, 1)
	return e
}

// SpawnCircularBurst adds BurstCount elements at p spreading evenly over the full circle
func (f *FreeRoam) SpawnCircularBurst(p r2.Point) []core.Element {
	burst := f.elements.SpawnCircularBurst(f.clampBody(p), f.cfg.BurstCount)
	if len(burst) > 0 {
		f.emit(EventSpawn, len(burst))
	}
	return burst
}

// EmitSpiral adds one spiral element at the focal point
func (f *FreeRoam) EmitSpiral() {
	f.elements.SpawnSpiral(f.clampBody(f.focal))
	f.emit(EventSpawn, 1)
}

// ToggleGravity switches attraction toward the focal point, returns the new state
func (f *FreeRoam) ToggleGravity() bool {
	f.gravity = !f.gravity
	return f.gravity
}

// ToggleSpiral starts or cancels the spiral emitter, returns the new state
func (f *FreeRoam) ToggleSpiral() bool {
	f.spiral = !f.spiral
	if f.timers != nil {
		if f.spiral {
			f.timers.Every(TimerSpiral, f.cfg.SpiralInterval, f.EmitSpiral)
		} else {
			f.timers.Cancel(TimerSpiral)
		}
	}
	return f.spiral
}

// SyncColors sets every element to SyncColor
func (f *FreeRoam) SyncColors() {
	f.elements.RecolorAll(core.SyncColor)
}

// ToggleEditMode switches clicks between spawning and obstacle editing
// Leaving edit mode clears the selection
func (f *FreeRoam) ToggleEditMode() bool {
	f.editMode = !f.editMode
	if !f.editMode {
		f.ClearSelection()
	}
	return f.editMode
}

// Click spawns at p, or in edit mode selects the obstacle under p or creates one
func (f *FreeRoam) Click(p r2.Point) {
	if !f.editMode {
		f.SpawnAt(p)
		return
	}
	if i := f.ObstacleAt(p); i >= 0 {
		f.SelectObstacle(i)
		return
	}
	f.AddObstacle(p)
}

// Resize applies a new viewport and pulls every element inside it
func (f *FreeRoam) Resize(vp core.Viewport) {
	f.resize(vp)
	f.elements.Clamp(vp)
}

// Publish stores a snapshot of the current state
func (f *FreeRoam) Publish() {
	s := f.baseSnapshot()
	s.Elements = f.elements.Elements()
	s.Gravity = f.gravity
	s.Spiral = f.spiral
	s.EditMode = f.editMode
	f.snapshot.Store(s)
}
