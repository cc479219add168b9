package vmath

import "math"

// Sign returns -1, 0, or 1
// Zero (and negative zero) map to 0 so a ball at rest gains no speed
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// IsFinite reports whether x is neither NaN nor infinite
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
