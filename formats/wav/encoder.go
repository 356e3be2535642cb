// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/sampleformat"
)

// EncodeMono writes a mono track as a PCM 16-bit WAV file at sampleRate.
// The writer must support seeking so the header sizes can be finalized.
func EncodeMono(w io.WriteSeeker, sampleRate int, track sampleformat.MonoTrack) error {
	data := make([]int, len(track))
	for i, m := range track {
		data[i] = int(m.Int16s()[0])
	}

	return encodePCM16(w, sampleRate, 1, data)
}

// EncodeStereo writes a stereo track as a PCM 16-bit WAV file at
// sampleRate, left channel first in every frame. The writer must support
// seeking so the header sizes can be finalized.
func EncodeStereo(w io.WriteSeeker, sampleRate int, track sampleformat.StereoTrack) error {
	data := make([]int, 0, len(track)*2)
	for _, s := range track {
		for _, v := range s.Int16s() {
			data = append(data, int(v))
		}
	}

	return encodePCM16(w, sampleRate, 2, data)
}

func encodePCM16(w io.WriteSeeker, sampleRate, channels int, data []int) error {
	enc := gowav.NewEncoder(w, sampleRate, 16, channels, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
