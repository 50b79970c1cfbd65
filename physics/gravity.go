package physics

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/parameter"
)

// GravityProfile defines attraction toward the focal point
type GravityProfile struct {
	Constant    float64 // G: attraction scale, damping is (1 - G²)
	Falloff     float64 // distance exponent of the force
	MinDistance float64 // floor on focal distance, keeps the force bounded
}

// DefaultGravity is the attraction used by the free-roam sandbox
var DefaultGravity = GravityProfile{
	Constant:    parameter.GravityConstant,
	Falloff:     parameter.GravityFalloff,
	MinDistance: parameter.GravityMinDistance,
}

// ApplyGravity damps dir and adds the pull from center toward focal
// dir' = dir * (1 - G²) + G * Δ / max(|Δ|, min)^falloff
func ApplyGravity(dir, center, focal r2.Point, profile *GravityProfile) r2.Point {
	delta := focal.Sub(center)
	dist := math.Max(delta.Norm(), profile.MinDistance)
	pull := delta.Mul(profile.Constant / math.Pow(dist, profile.Falloff))
	damp := 1 - profile.Constant*profile.Constant
	return dir.Mul(damp).Add(pull)
}
