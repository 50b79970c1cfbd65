package input

import "github.com/lixenwraith/bouncer/engine"

// Screen identifies the active control view
type Screen uint8

const (
	ScreenFreeRoam Screen = iota
	ScreenParkour
)

func (s Screen) String() string {
	if s == ScreenParkour {
		return "parkour"
	}
	return "free-roam"
}

// Other returns the screen the switch key leads to
func (s Screen) Other() Screen {
	if s == ScreenParkour {
		return ScreenFreeRoam
	}
	return ScreenParkour
}

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit         // q, Esc, Ctrl+C
	IntentSwitchScreen // p
	IntentToggleMute   // m
	IntentResize       // Terminal resize event

	// Pointer
	IntentClick   // Left button press
	IntentPointer // Pointer motion, updates the focal point

	// Free-roam
	IntentBurst         // Tab
	IntentSync          // Enter
	IntentToggleGravity // g
	IntentToggleSpiral  // s
	IntentToggleEdit    // e

	// Editing, shared by free-roam edit mode and parkour
	IntentArrow  // arrows: resize obstacle, move goal
	IntentRotate // Tab in parkour, r in edit mode
	IntentDelete // Backspace, Delete

	// Parkour
	IntentGoalGrow      // +
	IntentGoalShrink    // -
	IntentSelectTracked // t
	IntentSelectGoal    // o
	IntentPause         // space
)

var intentNames = map[IntentType]string{
	IntentNone:          "none",
	IntentQuit:          "quit",
	IntentSwitchScreen:  "switch-screen",
	IntentToggleMute:    "toggle-mute",
	IntentResize:        "resize",
	IntentClick:         "click",
	IntentPointer:       "pointer",
	IntentBurst:         "burst",
	IntentSync:          "sync",
	IntentToggleGravity: "toggle-gravity",
	IntentToggleSpiral:  "toggle-spiral",
	IntentToggleEdit:    "toggle-edit",
	IntentArrow:         "arrow",
	IntentRotate:        "rotate",
	IntentDelete:        "delete",
	IntentGoalGrow:      "goal-grow",
	IntentGoalShrink:    "goal-shrink",
	IntentSelectTracked: "select-tracked",
	IntentSelectGoal:    "select-goal",
	IntentPause:         "pause",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// Intent is a parsed semantic action
// Pure data; coordinates are terminal cells, conversion to viewport units is the caller's
type Intent struct {
	Type IntentType
	Dir  engine.Direction // IntentArrow
	X, Y int              // IntentClick, IntentPointer: cell; IntentResize: columns, rows
}
