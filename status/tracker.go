package status

import (
	"sync/atomic"

	"github.com/lixenwraith/bouncer/engine"
)

// Tracker counts session events into a Registry
// Registered on a session with RegisterHandler; runs on the scheduler loop
type Tracker struct {
	elements *atomic.Int64
	ticks    *atomic.Int64
	bounces  *atomic.Int64
	spawns   *atomic.Int64
	launches *atomic.Int64
	goals    *atomic.Int64

	// OnEvent, when set, is called after counting
	OnEvent func(ev engine.Event)
}

// NewTracker caches the event counters of reg
func NewTracker(reg *Registry) *Tracker {
	return &Tracker{
		elements: reg.Ints.Get(KeyElements),
		ticks:    reg.Ints.Get(KeyTicks),
		bounces:  reg.Ints.Get(KeyBounces),
		spawns:   reg.Ints.Get(KeySpawns),
		launches: reg.Ints.Get(KeyLaunches),
		goals:    reg.Ints.Get(KeyGoals),
	}
}

// HandleEvent implements engine.Handler
func (t *Tracker) HandleEvent(ev engine.Event) {
	n := int64(ev.Count)
	switch ev.Type {
	case engine.EventBounce:
		t.bounces.Add(n)
	case engine.EventSpawn:
		t.spawns.Add(n)
	case engine.EventLaunch:
		t.launches.Add(n)
	case engine.EventGoalReached:
		t.goals.Add(n)
	}
	if t.OnEvent != nil {
		t.OnEvent(ev)
	}
}

// Observe records per-frame gauges from a published snapshot
func (t *Tracker) Observe(s *engine.Snapshot) {
	if s == nil {
		return
	}
	t.ticks.Store(int64(s.Tick))
	t.elements.Store(int64(len(s.Elements)))
}
