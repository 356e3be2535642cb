// SPDX-License-Identifier: EPL-2.0

package sampleformat

import "github.com/ik5/sampleformat/utils"

// Per-channel attenuation at the pan positions: -3 dB on both channels at
// center keeps the summed power at unity, -120 dB on the far channel at
// the extremes is effectively silence.
const (
	centerDB = -3.0
	floorDB  = -120.0
)

// PanMono places a monophonic sample into a Mono layout. A single channel
// has no spatial dimension, so the gain parameter is ignored and the
// sample passes through unchanged.
func PanMono[G any](s Sample, _ G) Mono {
	return Mono{M: s}
}

// PanStereo places a monophonic sample into a Stereo layout under an
// equal-power panning law. The pan position g runs from -1 (hard left)
// through 0 (center) to 1 (hard right) and is clamped to that range.
//
// Each channel's attenuation is interpolated in decibel space: the left
// channel runs from 0 dB at hard left through -3 dB at center down to
// -120 dB at hard right, and the right channel mirrors it. The -3 dB
// center keeps perceived loudness constant across pan positions.
//
// Both float32 and float64 pan positions are accepted; the math is
// carried out at float64 precision either way.
func PanStereo[G Float](s Sample, g G) Stereo {
	x := utils.Clamp(float64(g), -1.0, 1.0)

	var lDB, rDB float64
	if x <= 0 {
		lDB = utils.Lerp(x, -1.0, 0.0, 0.0, centerDB)
	} else {
		lDB = utils.Lerp(x, 0.0, 1.0, centerDB, floorDB)
	}
	if x >= 0 {
		rDB = utils.Lerp(x, 0.0, 1.0, centerDB, 0.0)
	} else {
		rDB = utils.Lerp(x, -1.0, 0.0, floorDB, centerDB)
	}

	return Stereo{
		L: Sample(utils.DBToLinear(lDB) * float64(s)),
		R: Sample(utils.DBToLinear(rDB) * float64(s)),
	}
}
