// SPDX-License-Identifier: EPL-2.0

package sampleformat

import (
	"math"

	"github.com/ik5/sampleformat/utils"
)

// sqrtHalf is the per-channel multiplier of the equal-power center law:
// both channels at sqrt(0.5) keeps the summed power of a centered signal
// equal to the mono original.
var sqrtHalf = Sample(math.Sqrt(0.5))

// Stereo is a stereophonic audio sample: a left and a right channel. The
// left channel comes first in every serialized form. Stereo is a plain
// value type; every operation returns a new value.
type Stereo struct {
	// L is the left channel sample.
	L Sample
	// R is the right channel sample.
	R Sample
}

// NewStereo returns a Stereo holding the given left and right samples.
func NewStereo(l, r Sample) Stereo {
	return Stereo{L: l, R: r}
}

// FromSample spreads a monophonic sample across both channels with the
// equal-power center law: each channel receives s*sqrt(0.5). The receiver
// is ignored.
func (Stereo) FromSample(s Sample) Stereo {
	return Stereo{L: s * sqrtHalf, R: s * sqrtHalf}
}

// IntoSample folds both channels into a monophonic sample with the
// inverse of the equal-power center law: (L+R)*sqrt(0.5). The round trip
// through FromSample is exact for a centered signal; for anything else
// this is a lossy downmix, and the result can exceed the unit range.
func (s Stereo) IntoSample() Sample {
	return (s.L + s.R) * sqrtHalf
}

// NumSamples reports the channel count, which is always 2.
func (Stereo) NumSamples() int {
	return 2
}

func (s Stereo) Neg() Stereo {
	return Stereo{L: -s.L, R: -s.R}
}

func (s Stereo) Add(rhs Stereo) Stereo {
	return Stereo{L: s.L + rhs.L, R: s.R + rhs.R}
}

func (s Stereo) Sub(rhs Stereo) Stereo {
	return Stereo{L: s.L - rhs.L, R: s.R - rhs.R}
}

func (s Stereo) Mul(rhs Stereo) Stereo {
	return Stereo{L: s.L * rhs.L, R: s.R * rhs.R}
}

func (s Stereo) MulSample(x Sample) Stereo {
	return Stereo{L: s.L * x, R: s.R * x}
}

func (s Stereo) MulMath(g Math) Stereo {
	return Stereo{
		L: Sample(float64(s.L) * float64(g)),
		R: Sample(float64(s.R) * float64(g)),
	}
}

// FromUint8s decodes the first two bytes of v as left then right. It
// fails when v holds fewer than two elements.
func (Stereo) FromUint8s(v []uint8) (Stereo, error) {
	if len(v) < 2 {
		return Stereo{}, &VectorLengthError{Len: len(v), Required: 2}
	}

	return Stereo{
		L: Sample(utils.Uint8ToFloat32(v[0])),
		R: Sample(utils.Uint8ToFloat32(v[1])),
	}, nil
}

// FromInt16s decodes the first two elements of v as left then right. It
// fails when v holds fewer than two elements.
func (Stereo) FromInt16s(v []int16) (Stereo, error) {
	if len(v) < 2 {
		return Stereo{}, &VectorLengthError{Len: len(v), Required: 2}
	}

	return Stereo{
		L: Sample(utils.Int16ToFloat32(v[0])),
		R: Sample(utils.Int16ToFloat32(v[1])),
	}, nil
}

// FromInt24s decodes the first two elements of v as left then right
// 24-bit values in int32 containers. It fails when v holds fewer than two
// elements.
func (Stereo) FromInt24s(v []int32) (Stereo, error) {
	if len(v) < 2 {
		return Stereo{}, &VectorLengthError{Len: len(v), Required: 2}
	}

	return Stereo{
		L: Sample(utils.Int24ToFloat32(v[0])),
		R: Sample(utils.Int24ToFloat32(v[1])),
	}, nil
}

func (s Stereo) Uint8s() []uint8 {
	return []uint8{
		utils.Float32ToUint8(float32(s.L)),
		utils.Float32ToUint8(float32(s.R)),
	}
}

func (s Stereo) Int16s() []int16 {
	return []int16{
		utils.Float32ToInt16(float32(s.L)),
		utils.Float32ToInt16(float32(s.R)),
	}
}

func (s Stereo) Int24s() []int32 {
	return []int32{
		utils.Float32ToInt24(float32(s.L)),
		utils.Float32ToInt24(float32(s.R)),
	}
}
