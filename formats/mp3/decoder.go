// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/sampleformat"
	"github.com/ik5/sampleformat/formats"
	"github.com/ik5/sampleformat/utils"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decoder reads MP3 streams into tracks.
type Decoder struct{}

func (Decoder) DecodeMono(r io.ReadSeeker) (sampleformat.MonoTrack, int, error) {
	samples, rate, err := decodeAll(r)
	if err != nil {
		return nil, 0, err
	}

	// go-mp3 outputs stereo (2 channels) for most MP3 files
	track, err := formats.MonoTrackOf(samples, 2)
	if err != nil {
		return nil, 0, err
	}

	return track, rate, nil
}

func (Decoder) DecodeStereo(r io.ReadSeeker) (sampleformat.StereoTrack, int, error) {
	samples, rate, err := decodeAll(r)
	if err != nil {
		return nil, 0, err
	}

	track, err := formats.StereoTrackOf(samples, 2)
	if err != nil {
		return nil, 0, err
	}

	return track, rate, nil
}

func decodeAll(r io.Reader) ([]float32, int, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return readAll(dec)
}

// readAll drains the decoder's 16-bit little-endian PCM into normalized
// samples. A carry byte covers reads that split an int16 across calls.
func readAll(dec mp3Reader) ([]float32, int, error) {
	samples := make([]float32, 0, 8192)
	buf := make([]byte, 8192)
	carry := 0

	for {
		n, err := dec.Read(buf[carry:])
		if n > 0 {
			total := carry + n
			whole := total &^ 1

			for i := 0; i < whole; i += 2 {
				v := int16(uint16(buf[i]) | uint16(buf[i+1])<<8)
				samples = append(samples, utils.Int16ToFloat32(v))
			}

			if whole < total {
				buf[0] = buf[whole]
				carry = 1
			} else {
				carry = 0
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	return samples, dec.SampleRate(), nil
}
