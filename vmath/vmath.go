package vmath

import "math"

// Clamp limits v to [lo, hi]; when hi < lo the result is lo
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampMin returns v or lo, whichever is greater
func ClampMin(v, lo float64) float64 {
	return math.Max(v, lo)
}
