package geometry

import "math"

// Epsilon is the tolerance used by the approximate float comparisons in this
// package. Geometry built from game-scale coordinates stays well above it.
const Epsilon = 1e-9

// EqualEpsilon reports whether a and b differ by at most Epsilon.
func EqualEpsilon(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Clamp restricts value to the interval [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// OverlapsInterval reports whether the closed intervals [minA, maxA] and
// [minB, maxB] share at least one point.
func OverlapsInterval(minA, maxA, minB, maxB float64) bool {
	return minA <= maxB && minB <= maxA
}
