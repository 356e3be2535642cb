// SPDX-License-Identifier: EPL-2.0

// Package vorbis converts Ogg Vorbis streams into sampleformat tracks.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files. Vorbis is a free, open-source lossy audio compression format.
// Decoding is whole-stream: the input is read to its end and returned as
// one track.
//
// # Supported Formats
//
// The decoder supports:
//   - Ogg Vorbis (.ogg files)
//   - Variable bitrates
//   - Mono and stereo streams
//
// # Decoding
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	track, rate, err := decoder.DecodeStereo(file)
//
// Mono streams are lifted to stereo with the equal-power center split,
// and DecodeMono folds stereo streams down with the equal-power downmix.
//
// # Limitations
//
// Note:
//   - Vorbis writing is not supported (decoding only)
//   - Streams with more than two channels are rejected
package vorbis
