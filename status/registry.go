package status

import "sync/atomic"

// Metric keys
const (
	KeyTicks    = "ticks"
	KeyBounces  = "bounces"
	KeySpawns   = "spawns"
	KeyLaunches = "launches"
	KeyGoals    = "goals"
	KeyElements = "elements"
	KeyFPS      = "fps"
	KeyScreen   = "screen"
	KeyAudio    = "audio"
)

// Registry is the central metrics facade
// Writers cache pointers at setup; the status bar and exit summary read them from any goroutine
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of cells across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Int returns the current value of an integer metric, 0 when unregistered
func (r *Registry) Int(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}
