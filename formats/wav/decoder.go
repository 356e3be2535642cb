package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/sampleformat"
	"github.com/ik5/sampleformat/formats"
	"github.com/ik5/sampleformat/utils"
)

// Decoder reads PCM 16-bit WAV streams into tracks.
type Decoder struct{}

func (Decoder) DecodeMono(r io.ReadSeeker) (sampleformat.MonoTrack, int, error) {
	samples, rate, channels, err := decodePCM16(r)
	if err != nil {
		return nil, 0, err
	}

	track, err := formats.MonoTrackOf(samples, channels)
	if err != nil {
		return nil, 0, err
	}

	return track, rate, nil
}

func (Decoder) DecodeStereo(r io.ReadSeeker) (sampleformat.StereoTrack, int, error) {
	samples, rate, channels, err := decodePCM16(r)
	if err != nil {
		return nil, 0, err
	}

	track, err := formats.StereoTrackOf(samples, channels)
	if err != nil {
		return nil, 0, err
	}

	return track, rate, nil
}

// decodePCM16 reads the whole stream as interleaved normalized samples.
func decodePCM16(r io.ReadSeeker) ([]float32, int, int, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, 0, ErrNotWavFile
	}

	if dec.WavAudioFormat != 1 || dec.BitDepth != 16 {
		return nil, 0, 0, ErrOnlyPCM16bitSupported
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w", err)
	}

	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = utils.Int16ToFloat32(int16(v))
	}

	return samples, int(dec.SampleRate), int(dec.NumChans), nil
}
