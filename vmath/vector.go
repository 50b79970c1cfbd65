package vmath

import (
	"math"

	"github.com/golang/geo/r2"
)

// FromAngle returns the vector of the given magnitude at angle radians from +X
func FromAngle(angle, magnitude float64) r2.Point {
	return r2.Point{X: math.Cos(angle) * magnitude, Y: math.Sin(angle) * magnitude}
}

// Normalize2D returns unit vector, zero-safe
func Normalize2D(v r2.Point) r2.Point {
	n := v.Norm()
	if n == 0 {
		return r2.Point{}
	}
	return v.Mul(1 / n)
}

// ReflectAxisX returns velocity reflected off a vertical wall
func ReflectAxisX(v r2.Point) r2.Point {
	return r2.Point{X: -v.X, Y: v.Y}
}

// ReflectAxisY returns velocity reflected off a horizontal wall
func ReflectAxisY(v r2.Point) r2.Point {
	return r2.Point{X: v.X, Y: -v.Y}
}

// ClampPoint clamps each axis of p independently into [lo, hi]
func ClampPoint(p, lo, hi r2.Point) r2.Point {
	return r2.Point{X: Clamp(p.X, lo.X, hi.X), Y: Clamp(p.Y, lo.Y, hi.Y)}
}
