package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bouncer/engine"
)

// KeyEntry describes what a key does on one screen
type KeyEntry struct {
	Intent IntentType
	Dir    engine.Direction // arrows only
}

// KeyTable maps keys to intents for one screen
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Tab, Enter...)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable runes
	Runes map[rune]KeyEntry
}

// Lookup resolves a key event against the table
func (kt *KeyTable) Lookup(key tcell.Key, r rune) (KeyEntry, bool) {
	if key == tcell.KeyRune {
		e, ok := kt.Runes[r]
		return e, ok
	}
	e, ok := kt.SpecialKeys[key]
	return e, ok
}

// globalKeys apply on every screen
func globalKeys() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
		},
		Runes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			'p': {Intent: IntentSwitchScreen},
			'm': {Intent: IntentToggleMute},
		},
	}
}

// arrowKeys edit the selection
var arrowKeys = map[tcell.Key]KeyEntry{
	tcell.KeyLeft:  {Intent: IntentArrow, Dir: engine.DirLeft},
	tcell.KeyRight: {Intent: IntentArrow, Dir: engine.DirRight},
	tcell.KeyUp:    {Intent: IntentArrow, Dir: engine.DirUp},
	tcell.KeyDown:  {Intent: IntentArrow, Dir: engine.DirDown},
}

// FreeRoamKeyTable returns the sandbox bindings
func FreeRoamKeyTable() *KeyTable {
	kt := globalKeys()
	kt.SpecialKeys[tcell.KeyTab] = KeyEntry{Intent: IntentBurst}
	kt.SpecialKeys[tcell.KeyEnter] = KeyEntry{Intent: IntentSync}
	kt.SpecialKeys[tcell.KeyBackspace] = KeyEntry{Intent: IntentDelete}
	kt.SpecialKeys[tcell.KeyBackspace2] = KeyEntry{Intent: IntentDelete}
	kt.SpecialKeys[tcell.KeyDelete] = KeyEntry{Intent: IntentDelete}
	for k, e := range arrowKeys {
		kt.SpecialKeys[k] = e
	}
	kt.Runes['g'] = KeyEntry{Intent: IntentToggleGravity}
	kt.Runes['s'] = KeyEntry{Intent: IntentToggleSpiral}
	kt.Runes['e'] = KeyEntry{Intent: IntentToggleEdit}
	kt.Runes['r'] = KeyEntry{Intent: IntentRotate}
	return kt
}

// ParkourKeyTable returns the tracked-element bindings
func ParkourKeyTable() *KeyTable {
	kt := globalKeys()
	kt.SpecialKeys[tcell.KeyTab] = KeyEntry{Intent: IntentRotate}
	kt.SpecialKeys[tcell.KeyBackspace] = KeyEntry{Intent: IntentDelete}
	kt.SpecialKeys[tcell.KeyBackspace2] = KeyEntry{Intent: IntentDelete}
	kt.SpecialKeys[tcell.KeyDelete] = KeyEntry{Intent: IntentDelete}
	for k, e := range arrowKeys {
		kt.SpecialKeys[k] = e
	}
	kt.Runes['+'] = KeyEntry{Intent: IntentGoalGrow}
	kt.Runes['='] = KeyEntry{Intent: IntentGoalGrow}
	kt.Runes['-'] = KeyEntry{Intent: IntentGoalShrink}
	kt.Runes['t'] = KeyEntry{Intent: IntentSelectTracked}
	kt.Runes['o'] = KeyEntry{Intent: IntentSelectGoal}
	kt.Runes[' '] = KeyEntry{Intent: IntentPause}
	return kt
}
