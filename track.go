// SPDX-License-Identifier: EPL-2.0

package sampleformat

// MonoTrack is an ordered time series of Mono samples.
type MonoTrack = []Mono

// StereoTrack is an ordered time series of Stereo samples.
type StereoTrack = []Stereo

// StereoToMono folds every frame of a stereo track down to mono with the
// equal-power downmix of Stereo.IntoSample.
func StereoToMono(track StereoTrack) MonoTrack {
	out := make(MonoTrack, len(track))
	for i, s := range track {
		out[i] = Mono{M: s.IntoSample()}
	}

	return out
}

// MonoToStereo lifts every frame of a mono track into stereo with the
// equal-power center split of Stereo.FromSample.
func MonoToStereo(track MonoTrack) StereoTrack {
	out := make(StereoTrack, len(track))
	for i, m := range track {
		out[i] = Stereo{}.FromSample(m.M)
	}

	return out
}

// PanMonoTrack pans every frame of a mono track into stereo at a fixed
// pan position g. See PanStereo for the panning law.
func PanMonoTrack[G Float](track MonoTrack, g G) StereoTrack {
	out := make(StereoTrack, len(track))
	for i, m := range track {
		out[i] = PanStereo(m.M, g)
	}

	return out
}

// Mix sums any number of tracks element-wise. The result is as long as
// the longest input; shorter inputs contribute silence past their end.
func Mix[F SampleFormat[F]](tracks ...[]F) []F {
	var n int
	for _, t := range tracks {
		if len(t) > n {
			n = len(t)
		}
	}

	out := make([]F, n)
	for _, t := range tracks {
		for i, f := range t {
			out[i] = out[i].Add(f)
		}
	}

	return out
}

// Gain returns a copy of track with every frame scaled by g.
func Gain[F SampleFormat[F]](track []F, g Math) []F {
	out := make([]F, len(track))
	for i, f := range track {
		out[i] = f.MulMath(g)
	}

	return out
}
