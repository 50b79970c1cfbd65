package audio

import (
	"time"

	"github.com/lixenwraith/bouncer/engine"
)

// Cue is a short sound bound to a simulation event
type Cue int

const (
	CueBounce Cue = iota // Element hit a wall or obstacle
	CueLaunch            // Tracked element launched
	CueGoal              // Tracked element reached the goal
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueBounce:
		return "bounce"
	case CueLaunch:
		return "launch"
	case CueGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// duration of each cue
func (c Cue) duration() time.Duration {
	switch c {
	case CueBounce:
		return 40 * time.Millisecond
	case CueLaunch:
		return 120 * time.Millisecond
	default:
		return 450 * time.Millisecond
	}
}

// cueFor maps an engine event to its cue; spawns are silent
func cueFor(ev engine.Event) (Cue, bool) {
	switch ev.Type {
	case engine.EventBounce:
		return CueBounce, true
	case engine.EventLaunch:
		return CueLaunch, true
	case engine.EventGoalReached:
		return CueGoal, true
	default:
		return 0, false
	}
}
