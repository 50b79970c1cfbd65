package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/bouncer/core"
)

// Timers registers and cancels named repeating callbacks
// Sessions depend on this instead of the concrete scheduler
type Timers interface {
	Every(name string, period time.Duration, fn func())
	Cancel(name string)
}

// ClockScheduler serializes every simulation mutation onto one loop goroutine
// Repeating timers and input commands are queued jobs; a job runs to completion before the next
// starts, so state is never observed or mutated at sub-tick granularity
type ClockScheduler struct {
	queue chan job

	mu      sync.Mutex
	timers  map[string]*timer
	stopped bool

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// afterJob runs on the loop goroutine after every job, typically snapshot publishing
	afterJob func()

	jobCount atomic.Uint64
}

type job struct {
	fn    func()
	timer *timer // nil for commands
}

type timer struct {
	name     string
	period   time.Duration
	stop     chan struct{}
	canceled atomic.Bool
}

// NewClockScheduler creates a stopped scheduler
// afterJob may be nil
func NewClockScheduler(afterJob func()) *ClockScheduler {
	return &ClockScheduler{
		queue:    make(chan job, 64),
		timers:   make(map[string]*timer),
		stopChan: make(chan struct{}),
		afterJob: afterJob,
	}
}

// Start begins the loop goroutine
func (cs *ClockScheduler) Start() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.stopped || !cs.running.CompareAndSwap(false, true) {
		return
	}
	cs.wg.Add(1)
	// Use core.Go for safe execution with centralized crash handling
	core.Go(cs.loop)
}

// Stop cancels every timer and halts the loop, jobs still queued are dropped
// Blocks until the loop and all timer goroutines have exited; safe to call more than once,
// must not be called from the loop goroutine
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		cs.mu.Lock()
		cs.stopped = true
		for name, t := range cs.timers {
			t.cancel()
			delete(cs.timers, name)
		}
		cs.mu.Unlock()

		close(cs.stopChan)
		cs.running.Store(false)
		cs.wg.Wait()
	})
}

// Every registers a repeating callback, replacing any timer with the same name
// The callback runs on the loop goroutine
func (cs *ClockScheduler) Every(name string, period time.Duration, fn func()) {
	t := &timer{name: name, period: period, stop: make(chan struct{})}

	cs.mu.Lock()
	if cs.stopped {
		cs.mu.Unlock()
		return
	}
	if prev, ok := cs.timers[name]; ok {
		prev.cancel()
	}
	cs.timers[name] = t
	// Add under lock so Stop never waits concurrently with a new timer
	cs.wg.Add(1)
	cs.mu.Unlock()

	core.Go(func() {
		defer cs.wg.Done()
		cs.runTimer(t, fn)
	})
}

// Cancel stops the named timer; no-op when absent
// Called from the loop goroutine (inside a job), the callback never fires again, ticks already
// queued included. From another goroutine one tick already dequeued may still run; use Do to
// cancel from outside the loop when that matters
func (cs *ClockScheduler) Cancel(name string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if t, ok := cs.timers[name]; ok {
		t.cancel()
		delete(cs.timers, name)
	}
}

// Active reports whether a timer is registered under name
func (cs *ClockScheduler) Active(name string) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	_, ok := cs.timers[name]
	return ok
}

// Do queues a command, strictly ordered before or after any tick
// Returns false if the scheduler is stopped
func (cs *ClockScheduler) Do(fn func()) bool {
	select {
	case <-cs.stopChan:
		return false
	default:
	}

	select {
	case cs.queue <- job{fn: fn}:
		return true
	case <-cs.stopChan:
		return false
	}
}

// Flush blocks until every job queued before the call has run
// Returns false if the scheduler is not running or stopped first; must not be called from the
// loop goroutine
func (cs *ClockScheduler) Flush() bool {
	if !cs.running.Load() {
		return false
	}
	done := make(chan struct{})
	if !cs.Do(func() { close(done) }) {
		return false
	}
	select {
	case <-done:
		return true
	case <-cs.stopChan:
		return false
	}
}

// JobCount returns the number of jobs executed
func (cs *ClockScheduler) JobCount() uint64 {
	return cs.jobCount.Load()
}

func (t *timer) cancel() {
	if t.canceled.CompareAndSwap(false, true) {
		close(t.stop)
	}
}

// runTimer feeds ticks into the queue until the timer or scheduler stops
// A busy loop makes the send block, and the ticker drops the ticks missed meanwhile
func (cs *ClockScheduler) runTimer(t *timer, fn func()) {
	ticker := time.NewTicker(t.period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			select {
			case cs.queue <- job{fn: fn, timer: t}:
			case <-t.stop:
				return
			case <-cs.stopChan:
				return
			}
		case <-t.stop:
			return
		case <-cs.stopChan:
			return
		}
	}
}

// loop runs queued jobs one at a time
func (cs *ClockScheduler) loop() {
	defer cs.wg.Done()

	for {
		select {
		case <-cs.stopChan:
			return
		case j := <-cs.queue:
			if j.timer != nil && j.timer.canceled.Load() {
				continue
			}
			j.fn()
			cs.jobCount.Add(1)
			if cs.afterJob != nil {
				cs.afterJob()
			}
		}
	}
}
