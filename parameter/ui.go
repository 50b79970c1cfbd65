package parameter

import "time"

// Terminal cell to viewport unit mapping
// Terminal cells are roughly twice as tall as wide
const (
	CellWidth  = 10.0
	CellHeight = 20.0

	// StatusBarRows is reserved at the bottom of the screen
	StatusBarRows = 1
)

// FrameUpdateInterval is the render cadence, decoupled from simulation ticks
const FrameUpdateInterval = 33 * time.Millisecond

// Audio
const (
	// BounceCueCooldown rate-limits bounce cues when many elements bounce at once
	BounceCueCooldown = 60 * time.Millisecond
)
