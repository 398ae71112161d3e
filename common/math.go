package common

import "cmp"

// Clamp restricts a value to the inclusive range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound of the range
//   - hi: upper bound of the range
//
// Returns:
//   - T: v limited to [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
