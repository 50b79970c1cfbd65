package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/bouncer/engine"
)

// StatusLine carries the non-snapshot values shown in the status bar
type StatusLine struct {
	Screen  string
	Bounces int64
	Spawns  int64
	Goals   int64
	FPS     float64
	Muted   bool
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// FormatStatus builds the status bar text
func FormatStatus(s *engine.Snapshot, st StatusLine) string {
	parts := []string{st.Screen}

	if s != nil {
		if s.Goal == nil {
			parts = append(parts,
				fmt.Sprintf("elements %d", len(s.Elements)),
				"gravity "+onOff(s.Gravity),
				"spiral "+onOff(s.Spiral),
				"edit "+onOff(s.EditMode),
			)
		} else {
			parts = append(parts,
				fmt.Sprintf("%s %.1fs", s.Tracked, s.Elapsed.Round(100*time.Millisecond).Seconds()),
				fmt.Sprintf("goals %d", st.Goals),
			)
		}
		parts = append(parts, "sel "+s.Selection.String())
	}

	parts = append(parts,
		fmt.Sprintf("bounces %d", st.Bounces),
		fmt.Sprintf("fps %.0f", st.FPS),
	)
	if st.Muted {
		parts = append(parts, "muted")
	}
	return strings.Join(parts, " | ")
}
