// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"io"
	"sync"

	"github.com/ik5/sampleformat"
)

// Decoder decodes a complete encoded audio stream into a track. Decoding
// is whole-stream: the input is consumed to its end and returned as one
// track together with its sample rate in Hz.
type Decoder interface {
	// DecodeMono returns the stream as a mono track. Stereo sources are
	// folded down with the equal-power downmix.
	DecodeMono(r io.ReadSeeker) (sampleformat.MonoTrack, int, error)
	// DecodeStereo returns the stream as a stereo track. Mono sources are
	// lifted with the equal-power center split.
	DecodeStereo(r io.ReadSeeker) (sampleformat.StereoTrack, int, error)
}

// Registry maps format keys (e.g., "wav", "mp3", "ogg") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// MonoTrackOf builds a mono track from interleaved normalized samples.
// Stereo input is folded frame by frame with the equal-power downmix.
func MonoTrackOf(samples []float32, channels int) (sampleformat.MonoTrack, error) {
	switch channels {
	case 1:
		track := make(sampleformat.MonoTrack, len(samples))
		for i, x := range samples {
			track[i] = sampleformat.NewMono(sampleformat.Sample(x))
		}
		return track, nil
	case 2:
		frames := len(samples) / 2
		track := make(sampleformat.MonoTrack, frames)
		for f := 0; f < frames; f++ {
			st := sampleformat.NewStereo(
				sampleformat.Sample(samples[2*f]),
				sampleformat.Sample(samples[2*f+1]),
			)
			track[f] = sampleformat.NewMono(st.IntoSample())
		}
		return track, nil
	default:
		return nil, ErrUnsupportedChannels
	}
}

// StereoTrackOf builds a stereo track from interleaved normalized
// samples. Mono input is lifted frame by frame with the equal-power
// center split.
func StereoTrackOf(samples []float32, channels int) (sampleformat.StereoTrack, error) {
	switch channels {
	case 1:
		track := make(sampleformat.StereoTrack, len(samples))
		for i, x := range samples {
			track[i] = sampleformat.Stereo{}.FromSample(sampleformat.Sample(x))
		}
		return track, nil
	case 2:
		frames := len(samples) / 2
		track := make(sampleformat.StereoTrack, frames)
		for f := 0; f < frames; f++ {
			track[f] = sampleformat.NewStereo(
				sampleformat.Sample(samples[2*f]),
				sampleformat.Sample(samples[2*f+1]),
			)
		}
		return track, nil
	default:
		return nil, ErrUnsupportedChannels
	}
}
