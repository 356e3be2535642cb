// SPDX-License-Identifier: EPL-2.0

package utils

// Lerp maps x linearly from the domain [x0, x1] to the range [y0, y1].
// x is not clamped to the domain; values outside it extrapolate.
func Lerp(x, x0, x1, y0, y1 float64) float64 {
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
