// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sampleformat"
	"github.com/ik5/sampleformat/formats"
	"github.com/ik5/sampleformat/utils"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder reads PCM 16-bit AIFF streams into tracks.
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

func decodePCM16(r io.ReadSeeker) ([]float32, int, int, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, 0, ErrNotAiffFile
	}

	if dec.BitDepth != 16 {
		return nil, 0, 0, ErrOnlyPCM16bitSupported
	}

	samples, err := readAll(dec)
	if err != nil {
		return nil, 0, 0, err
	}

	return samples, int(dec.SampleRate), int(dec.NumChans), nil
}

// readAll drains the decoder chunk by chunk, normalizing 16-bit values.
func readAll(dec aiffReader) ([]float32, error) {
	samples := make([]float32, 0, 8192)
	buf := &goaudio.IntBuffer{
		Data:   make([]int, 4096),
		Format: dec.Format(),
	}

	for {
		n, err := dec.PCMBuffer(buf)
		if n > 0 {
			for _, v := range buf.Data[:n] {
				samples = append(samples, utils.Int16ToFloat32(int16(v)))
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	return samples, nil
}
