package engine

// EventType identifies a simulation signal emitted to handlers
type EventType uint8

const (
	// EventBounce: Count elements bounced during one tick
	EventBounce EventType = iota
	// EventSpawn: Count elements were added
	EventSpawn
	// EventLaunch: the tracked element was launched
	EventLaunch
	// EventGoalReached: the tracked element entered the goal
	EventGoalReached
)

func (t EventType) String() string {
	switch t {
	case EventBounce:
		return "Bounce"
	case EventSpawn:
		return "Spawn"
	case EventLaunch:
		return "Launch"
	case EventGoalReached:
		return "GoalReached"
	default:
		return "Unknown"
	}
}

// Event is delivered synchronously on the loop goroutine
type Event struct {
	Type  EventType
	Count int
}

// Handler consumes simulation events; implementations must not block
type Handler interface {
	HandleEvent(ev Event)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ev Event)

// HandleEvent calls f(ev)
func (f HandlerFunc) HandleEvent(ev Event) {
	f(ev)
}

// eventBus fans events out to registered handlers in registration order
type eventBus struct {
	handlers []Handler
}

// RegisterHandler adds a handler; call before the session is started
func (b *eventBus) RegisterHandler(h Handler) {
	b.handlers = append(b.handlers, h)
}

func (b *eventBus) emit(t EventType, count int) {
	ev := Event{Type: t, Count: count}
	for _, h := range b.handlers {
		h.HandleEvent(ev)
	}
}
