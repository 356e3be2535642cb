// SPDX-License-Identifier: EPL-2.0

package sampleformat

import "fmt"

// VectorLengthError reports a conversion input that is shorter than the
// channel count of the target layout. Inputs longer than the channel
// count are not an error; the extra elements are ignored.
type VectorLengthError struct {
	// Len is the length of the vector that was given.
	Len int
	// Required is the channel count the conversion needs.
	Required int
}

func (e *VectorLengthError) Error() string {
	return fmt.Sprintf("ERROR: Given vector was length %d. This function requires length %d.", e.Len, e.Required)
}
