package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/sampleformat"
	"github.com/ik5/sampleformat/formats"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Decoder reads Ogg Vorbis streams into tracks.
type Decoder struct{}

func (Decoder) DecodeMono(r io.ReadSeeker) (sampleformat.MonoTrack, int, error) {
	samples, rate, channels, err := decodeAll(r)
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
	samples, rate, channels, err := decodeAll(r)
	if err != nil {
		return nil, 0, err
	}

	track, err := formats.StereoTrackOf(samples, channels)
	if err != nil {
		return nil, 0, err
	}

	return track, rate, nil
}

func decodeAll(r io.Reader) ([]float32, int, int, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w", err)
	}

	return readAll(dec)
}

// readAll drains the decoder. Vorbis already delivers normalized float32
// samples, interleaved by channel.
func readAll(dec oggReader) ([]float32, int, int, error) {
	samples := make([]float32, 0, 8192)
	buf := make([]float32, 4096)

	for {
		n, err := dec.Read(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, 0, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	return samples, dec.SampleRate(), dec.Channels(), nil
}
