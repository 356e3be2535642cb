// SPDX-License-Identifier: EPL-2.0

// Package sampleformat provides fixed-width audio sample containers and
// the arithmetic and conversion contracts that let audio code treat
// different channel layouts uniformly.
//
// The package centers on the SampleFormat capability set and its two
// concrete layouts: Mono (one channel) and Stereo (left and right). Both
// are plain immutable-by-value records; every operation produces a new
// value, so independent values are safe to use from any number of
// goroutines.
//
// # Samples and Gains
//
// A Sample is a single normalized float32 signal value, conventionally in
// [-1, 1]. A Math value is a dimensionless float64 gain. Keeping the two
// as distinct types prevents a signal value from being passed where a
// gain is expected.
//
// # Layouts
//
// Construct layouts directly, from a monophonic sample, or from integer
// vectors:
//
//	m := sampleformat.NewMono(0.5)
//	s := sampleformat.Stereo{}.FromSample(0.5) // equal-power center
//	s, err := sampleformat.Stereo{}.FromInt16s([]int16{1000, -1000})
//
// Vector constructors fail with a *VectorLengthError when the input is
// shorter than the layout's channel count; longer inputs use only the
// leading elements. The Uint8s, Int16s and Int24s methods convert back
// out and always produce exactly NumSamples() elements, left first.
//
// # Arithmetic
//
// Layouts support negation, addition, subtraction and three distinct
// multiplications: by another value of the same layout (element-wise), by
// a Sample, and by a Math gain.
//
//	mixed := a.Add(b).MulMath(0.5)
//
// Arithmetic is total over the float domain; overflow produces
// infinities rather than errors.
//
// # Panning
//
// PanStereo places a monophonic sample in the stereo field with an
// equal-power law, taking the pan position as either float32 or float64:
//
//	centered := sampleformat.PanStereo(x, 0.0)  // -3 dB per channel
//	hardLeft := sampleformat.PanStereo(x, -1.0) // right near silence
//
// PanMono is the single-channel counterpart and ignores the pan position.
//
// # Tracks
//
// MonoTrack and StereoTrack are slice aliases for time series of frames.
// StereoToMono, MonoToStereo, PanMonoTrack, Mix and Gain operate on whole
// tracks. The formats subpackages convert tracks to and from WAV, AIFF,
// MP3 and Ogg Vorbis streams.
package sampleformat
