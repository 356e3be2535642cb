// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// DBToLinear converts a decibel value to a linear amplitude multiplier
// using the 10^(dB/20) convention.
func DBToLinear(db float64) float64 {
	return math.Pow(10.0, db/20.0)
}

// LinearToDB converts a linear amplitude multiplier to decibels. The
// multiplier must be positive.
func LinearToDB(g float64) float64 {
	return 20.0 * math.Log10(g)
}
