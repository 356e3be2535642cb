// SPDX-License-Identifier: EPL-2.0

package sampleformat

import "github.com/ik5/sampleformat/utils"

// Mono is a monophonic audio sample: a single channel holding one Sample.
// Mono is a plain value type; every operation returns a new value.
type Mono struct {
	// M is the single, monophonic sample.
	M Sample
}

// NewMono returns a Mono holding the given sample.
func NewMono(s Sample) Mono {
	return Mono{M: s}
}

// FromSample wraps the sample unchanged. The receiver is ignored.
func (Mono) FromSample(s Sample) Mono {
	return Mono{M: s}
}

// IntoSample unwraps the sample unchanged.
func (m Mono) IntoSample() Sample {
	return m.M
}

// NumSamples reports the channel count, which is always 1.
func (Mono) NumSamples() int {
	return 1
}

func (m Mono) Neg() Mono {
	return Mono{M: -m.M}
}

func (m Mono) Add(rhs Mono) Mono {
	return Mono{M: m.M + rhs.M}
}

func (m Mono) Sub(rhs Mono) Mono {
	return Mono{M: m.M - rhs.M}
}

func (m Mono) Mul(rhs Mono) Mono {
	return Mono{M: m.M * rhs.M}
}

func (m Mono) MulSample(s Sample) Mono {
	return Mono{M: m.M * s}
}

func (m Mono) MulMath(g Math) Mono {
	return Mono{M: Sample(float64(m.M) * float64(g))}
}

// FromUint8s decodes the first byte of v. It fails when v is empty.
func (Mono) FromUint8s(v []uint8) (Mono, error) {
	if len(v) < 1 {
		return Mono{}, &VectorLengthError{Len: len(v), Required: 1}
	}

	return Mono{M: Sample(utils.Uint8ToFloat32(v[0]))}, nil
}

// FromInt16s decodes the first element of v. It fails when v is empty.
func (Mono) FromInt16s(v []int16) (Mono, error) {
	if len(v) < 1 {
		return Mono{}, &VectorLengthError{Len: len(v), Required: 1}
	}

	return Mono{M: Sample(utils.Int16ToFloat32(v[0]))}, nil
}

// FromInt24s decodes the first element of v as a 24-bit value in an int32
// container. It fails when v is empty.
func (Mono) FromInt24s(v []int32) (Mono, error) {
	if len(v) < 1 {
		return Mono{}, &VectorLengthError{Len: len(v), Required: 1}
	}

	return Mono{M: Sample(utils.Int24ToFloat32(v[0]))}, nil
}

func (m Mono) Uint8s() []uint8 {
	return []uint8{utils.Float32ToUint8(float32(m.M))}
}

func (m Mono) Int16s() []int16 {
	return []int16{utils.Float32ToInt16(float32(m.M))}
}

func (m Mono) Int24s() []int32 {
	return []int32{utils.Float32ToInt24(float32(m.M))}
}
