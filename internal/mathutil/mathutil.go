package mathutil

import "math"

// Clamp restricts x to the closed interval [lo, hi].
// The bounds are hard ceilings/floors, not soft.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// RoundHalfAway rounds to the nearest integer, resolving exact halves
// away from zero (2.5 → 3, -2.5 → -3).
func RoundHalfAway(x float64) float64 {
	return math.Round(x)
}

// RoundToNearestHalf rounds x to the nearest multiple of 0.5, resolving
// exact quarters away from zero (1.25 → 1.5, -1.25 → -1.5).
func RoundToNearestHalf(x float64) float64 {
	return math.Round(x*2) / 2
}
