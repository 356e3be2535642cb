package utils

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Float32ToUint8 encodes a normalized sample as an unsigned byte with the
// zero signal at 128.
func Float32ToUint8(x float32) uint8 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return uint8(x*127.0 + 128.0)
}

// Float32ToInt24 encodes a normalized sample as a signed 24-bit value
// stored in an int32. The upper byte of the result carries only the sign
// extension.
func Float32ToInt24(x float32) int32 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 8388607 for positive max to avoid overflow
	return int32(x * 8388607.0)
}
