package input

import (
	"github.com/gdamore/tcell/v2"
)

// Translator turns tcell events into intents for the active screen
// Not safe for concurrent use; owned by the event loop
type Translator struct {
	tables  map[Screen]*KeyTable
	buttons tcell.ButtonMask
	lastX   int
	lastY   int
}

// NewTranslator creates a translator with the default tables
func NewTranslator() *Translator {
	return &Translator{
		tables: map[Screen]*KeyTable{
			ScreenFreeRoam: FreeRoamKeyTable(),
			ScreenParkour:  ParkourKeyTable(),
		},
		lastX: -1,
		lastY: -1,
	}
}

// Table returns the key table of a screen
func (t *Translator) Table(s Screen) *KeyTable {
	return t.tables[s]
}

// Translate maps ev to intents on screen s
// A mouse event yields a pointer intent when the pointer moved, then a click on the Button1
// press edge; holding the button does not repeat clicks
func (t *Translator) Translate(ev tcell.Event, s Screen) []Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry, ok := t.tables[s].Lookup(ev.Key(), ev.Rune())
		if !ok {
			return nil
		}
		return []Intent{{Type: entry.Intent, Dir: entry.Dir}}

	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := ev.Buttons()
		var out []Intent
		if x != t.lastX || y != t.lastY {
			t.lastX, t.lastY = x, y
			out = append(out, Intent{Type: IntentPointer, X: x, Y: y})
		}
		if buttons&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0 {
			out = append(out, Intent{Type: IntentClick, X: x, Y: y})
		}
		t.buttons = buttons
		return out

	case *tcell.EventResize:
		w, h := ev.Size()
		return []Intent{{Type: IntentResize, X: w, Y: h}}
	}
	return nil
}
