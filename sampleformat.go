// SPDX-License-Identifier: EPL-2.0

package sampleformat

// Sample is a single normalized audio sample value for one channel at one
// instant. The usual range convention is [-1, 1], but nothing in this
// package clamps arithmetic results; non-finite values propagate to the
// caller.
type Sample float32

// Math is a dimensionless gain scalar, kept as a distinct type from Sample
// so a signal value cannot be accidentally used where a gain is expected.
// Gain math is carried out at float64 precision.
type Math float64

// Float constrains the gain parameter of a panner to a floating point
// type. Stereo panning accepts either precision with identical logic.
type Float interface {
	~float32 | ~float64
}

// SampleFormat is the capability set shared by all channel layouts. A
// layout F holds a fixed number of Sample values (one per channel) and
// supports element-wise arithmetic, conversion to and from a single
// monophonic Sample, and conversion to and from fixed-width integer
// vectors.
//
// All methods are usable on the zero value; FromSample and the FromXxxs
// constructors build a fresh value and ignore the receiver, which lets
// generic code construct instances from `var f F`:
//
//	func decode[F SampleFormat[F]](v []int16) (F, error) {
//		var zero F
//		return zero.FromInt16s(v)
//	}
//
// The FromXxxs constructors fail with a *VectorLengthError when the input
// vector is shorter than NumSamples(); extra trailing elements are
// ignored. The Uint8s/Int16s/Int24s conversions always produce exactly
// NumSamples() elements in channel order (left first for Stereo).
//
// Integer encodings are linear over the full width of the integer type:
// 8-bit is unsigned, 16-bit is signed, and 24-bit is signed and stored in
// an int32 container with the upper byte unused.
type SampleFormat[F any] interface {
	// FromSample lifts a single monophonic sample into the layout. The
	// receiver is ignored.
	FromSample(s Sample) F
	// IntoSample collapses the layout back to one monophonic sample. For
	// multi-channel layouts this is a lossy downmix.
	IntoSample() Sample
	// NumSamples reports the fixed channel count of the layout. It does
	// not depend on the receiver's data.
	NumSamples() int

	Neg() F
	Add(rhs F) F
	Sub(rhs F) F
	// Mul multiplies element-wise by another value of the same layout.
	Mul(rhs F) F
	// MulSample scales every channel by a raw sample value.
	MulSample(s Sample) F
	// MulMath scales every channel by a gain, computed at float64
	// precision.
	MulMath(g Math) F

	FromUint8s(v []uint8) (F, error)
	FromInt16s(v []int16) (F, error)
	FromInt24s(v []int32) (F, error)
	Uint8s() []uint8
	Int16s() []int16
	Int24s() []int32
}

// Panner converts a monophonic sample into layout F, placed according to
// a gain parameter of type G. A layout may support several gain
// parameterizations; see PanMono and PanStereo for the implementations
// provided here.
type Panner[F any, G any] func(s Sample, g G) F
