package core

// SelectionKind discriminates the selectable entities
type SelectionKind uint8

const (
	SelectNone SelectionKind = iota
	SelectObstacle
	SelectGoal
	SelectTracked
)

// Selection is the single exclusive selection across obstacles, the goal and the tracked element
// Index is meaningful only for SelectObstacle
type Selection struct {
	Kind  SelectionKind
	Index int
}

// NoSelection is the empty selection
var NoSelection = Selection{}

// ObstacleSelection selects the obstacle at index i
func ObstacleSelection(i int) Selection {
	return Selection{Kind: SelectObstacle, Index: i}
}

// GoalSelection selects the goal
func GoalSelection() Selection {
	return Selection{Kind: SelectGoal}
}

// TrackedSelection selects the tracked element
func TrackedSelection() Selection {
	return Selection{Kind: SelectTracked}
}

// Obstacle returns the selected obstacle index, ok false when no obstacle is selected
func (s Selection) Obstacle() (int, bool) {
	if s.Kind != SelectObstacle {
		return 0, false
	}
	return s.Index, true
}

// IsObstacle reports whether obstacle i is the selection
func (s Selection) IsObstacle(i int) bool {
	return s.Kind == SelectObstacle && s.Index == i
}

// IsGoal reports whether the goal is selected
func (s Selection) IsGoal() bool {
	return s.Kind == SelectGoal
}

// IsTracked reports whether the tracked element is selected
func (s Selection) IsTracked() bool {
	return s.Kind == SelectTracked
}

func (s Selection) String() string {
	switch s.Kind {
	case SelectObstacle:
		return "obstacle"
	case SelectGoal:
		return "goal"
	case SelectTracked:
		return "element"
	default:
		return "none"
	}
}
