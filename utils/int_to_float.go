// SPDX-License-Identifier: EPL-2.0

package utils

// Uint8ToFloat32 decodes an unsigned byte sample into a normalized
// float32 in [-1, 1), with 128 mapping to 0.
func Uint8ToFloat32(v uint8) float32 {
	return (float32(v) - 128.0) / 128.0
}

// Int16ToFloat32 decodes a signed 16-bit sample into a normalized
// float32 in [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Int24ToFloat32 decodes a signed 24-bit sample stored in an int32 into a
// normalized float32 in [-1, 1). The value is sign-extended from bit 23,
// so containers with a zeroed upper byte decode the same as ones carrying
// the sign extension.
func Int24ToFloat32(v int32) float32 {
	// Sign-extend from 24 bits
	v = (v << 8) >> 8

	return float32(v) / 8388608.0
}
