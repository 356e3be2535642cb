// SPDX-License-Identifier: EPL-2.0

// Package wav converts between sampleformat tracks and WAV files.
//
// This package supports reading and writing WAV files in PCM 16-bit
// format. It uses the github.com/go-audio library for robust WAV file
// handling.
//
// # Decoding
//
// The Decoder reads a whole WAV stream into a track:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	track, rate, err := decoder.DecodeStereo(file)
//
// Mono files are lifted to stereo with the equal-power center split, and
// DecodeMono folds stereo files down with the equal-power downmix.
//
// # Encoding
//
// EncodeMono and EncodeStereo write a track as a PCM 16-bit WAV file:
//
//	file, _ := os.Create("output.wav")
//	err := wav.EncodeStereo(file, 44100, track)
//
// The writer must support seeking; the encoder finalizes chunk sizes in
// the header when it closes.
//
// # Error Handling
//
// The package defines two sentinel errors:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//
// Errors from the underlying go-audio decoder and encoder are wrapped and
// can be unwrapped with errors.Is/errors.As.
package wav
