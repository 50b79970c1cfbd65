package parameter

import (
	"math"
	"time"
)

// Tick periods
const (
	// FreeRoamTickInterval advances every free-roam element
	FreeRoamTickInterval = 10 * time.Millisecond

	// ParkourTickInterval advances the tracked element
	ParkourTickInterval = 20 * time.Millisecond

	// SpiralInterval is the period of the spiral emitter, independent of the advance tick
	SpiralInterval = 120 * time.Millisecond
)

// Emission
const (
	// BurstCount is the number of elements in one circular burst
	BurstCount = 51

	// SpiralAngleStep is the angle advanced between two spiral emissions
	SpiralAngleStep = math.Pi / 8

	// SpiralSpeed is the displacement per tick of spiral-emitted elements
	SpiralSpeed = 1.5
)

// Obstacles
const (
	// ObstacleDefaultWidth, ObstacleDefaultHeight is the size of a click-created obstacle
	ObstacleDefaultWidth  = 100.0
	ObstacleDefaultHeight = 10.0

	// ObstacleStep is the resize increment per command
	ObstacleStep = 10.0

	// ObstacleMinSize is the smallest width or height
	ObstacleMinSize = 10.0

	// ObstacleBottomMargin rejects obstacle creation this close to the bottom edge
	ObstacleBottomMargin = 10.0
)

// Goal
const (
	// GoalDefaultRadius is the initial goal radius
	GoalDefaultRadius = 100.0

	// GoalMinRadius is the smallest allowed goal radius
	GoalMinRadius = 10.0

	// GoalStep is the radius and move increment per command
	GoalStep = 10.0
)
