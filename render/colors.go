package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bouncer/core"
)

// RGB color definitions
var (
	RgbBackground   = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbObstacle     = tcell.NewRGBColor(150, 150, 160) // Light gray
	RgbSelected     = tcell.NewRGBColor(255, 80, 80)   // Red highlight
	RgbGoal         = tcell.NewRGBColor(0, 160, 80)    // Green
	RgbGoalSelected = tcell.NewRGBColor(80, 255, 140)  // Bright green
	RgbAim          = tcell.NewRGBColor(90, 90, 110)   // Dim aim line
	RgbStatusBar    = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg     = tcell.NewRGBColor(40, 42, 60)    // Slightly lighter than background
)

// palette matches core.Color order
var palette = [core.PaletteSize]tcell.Color{
	tcell.NewRGBColor(70, 130, 255), // blue
	tcell.NewRGBColor(60, 200, 60),  // green
	tcell.NewRGBColor(255, 230, 0),  // yellow
	tcell.NewRGBColor(255, 165, 0),  // orange
	tcell.NewRGBColor(230, 40, 40),  // red
	tcell.NewRGBColor(255, 0, 200),  // fuchsia
	tcell.NewRGBColor(150, 80, 230), // violet
}

// ElementColor returns the terminal color of a palette entry
func ElementColor(c core.Color) tcell.Color {
	if !c.Valid() {
		return tcell.ColorWhite
	}
	return palette[c]
}
