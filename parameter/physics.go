package parameter

// Element body
const (
	// ElementDiameter is the side of the element bounding box in viewport units
	ElementDiameter = 22.0

	// SpawnSpeed is the displacement per tick of a click-spawned element
	SpawnSpeed = 2.0

	// BurstSpeed is the displacement per tick of each circular burst element
	BurstSpeed = 1.0
)

// Gravity (attraction toward the focal point)
const (
	// GravityConstant scales the attraction term; velocity is damped by (1 - G²) each tick
	GravityConstant = 0.1

	// GravityFalloff is the distance exponent of the attraction force
	GravityFalloff = 1.3

	// GravityMinDistance floors the focal distance so the force stays bounded
	GravityMinDistance = 1.0
)

// Tracked element launch
const (
	// LaunchDivisor converts the aim vector (target - position) into a per-tick direction
	LaunchDivisor = 100.0

	// TrackedStartDirX, TrackedStartDirY is the tracked element direction before the first launch
	TrackedStartDirX = 3.0
	TrackedStartDirY = 0.95
)
