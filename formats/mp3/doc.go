// SPDX-License-Identifier: EPL-2.0

// Package mp3 converts MP3 streams into sampleformat tracks.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// Decoding is whole-stream: the input is read to its end and returned as
// one track.
//
// # Supported Formats
//
// The decoder supports:
//   - MP3 (MPEG-1 Audio Layer 3)
//   - Various bitrates
//   - Various sample rates
//
// # Decoding
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	track, rate, err := decoder.DecodeStereo(file)
//
// The underlying decoder always produces stereo PCM; DecodeMono folds it
// down with the equal-power downmix.
//
// # Limitations
//
// Note:
//   - MP3 writing is not supported (decoding only)
//   - The whole stream is held in memory as a track
package mp3
