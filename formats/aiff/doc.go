// SPDX-License-Identifier: EPL-2.0

// Package aiff converts AIFF streams into sampleformat tracks.
//
// This package uses github.com/go-audio/aiff to decode AIFF files. AIFF
// is Apple's standard audio file format, commonly used on macOS.
// Decoding is whole-stream: the input is read to its end and returned as
// one track.
//
// # Supported Formats
//
// Currently supported:
//   - AIFF (Audio Interchange File Format)
//   - PCM 16-bit (most common)
//   - Mono and stereo files
//
// # Decoding
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	track, rate, err := decoder.DecodeStereo(file)
//
// # Error Handling
//
// The package defines two sentinel errors:
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//
// # Limitations
//
// Note:
//   - AIFF writing is not supported (decoding only)
//   - Only 16-bit PCM data is accepted
package aiff
