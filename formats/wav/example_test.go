// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/sampleformat"
	"github.com/ik5/sampleformat/formats/wav"
)

// ExampleEncodeStereo writes a short stereo track to a WAV file and reads
// it back.
func ExampleEncodeStereo() {
	track := sampleformat.StereoTrack{
		sampleformat.NewStereo(0.5, -0.5),
		sampleformat.NewStereo(0.25, -0.25),
	}

	f, err := os.CreateTemp("", "example-*.wav")
	if err != nil {
		fmt.Println("temp file:", err)
		return
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if err := wav.EncodeStereo(f, 8000, track); err != nil {
		fmt.Println("encode:", err)
		return
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		fmt.Println("seek:", err)
		return
	}

	decoded, rate, err := wav.Decoder{}.DecodeStereo(f)
	if err != nil {
		fmt.Println("decode:", err)
		return
	}

	fmt.Printf("%d frames at %d Hz\n", len(decoded), rate)
	// Output: 2 frames at 8000 Hz
}
