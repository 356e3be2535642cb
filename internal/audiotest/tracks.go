// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic track generators for tests.
package audiotest

import (
	"math"

	"github.com/ik5/sampleformat"
)

// SineMonoTrack generates n samples of a sine wave at the given frequency
// and sample rate.
func SineMonoTrack(sampleRate, n int, frequency float64) sampleformat.MonoTrack {
	track := make(sampleformat.MonoTrack, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		track[i] = sampleformat.NewMono(sampleformat.Sample(math.Sin(2 * math.Pi * frequency * t)))
	}

	return track
}

// ConstantMonoTrack generates n identical mono samples.
func ConstantMonoTrack(n int, v sampleformat.Sample) sampleformat.MonoTrack {
	track := make(sampleformat.MonoTrack, n)
	for i := 0; i < n; i++ {
		track[i] = sampleformat.NewMono(v)
	}

	return track
}

// ConstantStereoTrack generates n identical stereo frames.
func ConstantStereoTrack(n int, l, r sampleformat.Sample) sampleformat.StereoTrack {
	track := make(sampleformat.StereoTrack, n)
	for i := 0; i < n; i++ {
		track[i] = sampleformat.NewStereo(l, r)
	}

	return track
}
