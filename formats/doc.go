// SPDX-License-Identifier: EPL-2.0

// Package formats defines the contract between sampleformat tracks and
// the codec subpackages.
//
// # Decoder Interface
//
// Every codec implements the Decoder interface:
//
//	type Decoder interface {
//	    DecodeMono(r io.ReadSeeker) (sampleformat.MonoTrack, int, error)
//	    DecodeStereo(r io.ReadSeeker) (sampleformat.StereoTrack, int, error)
//	}
//
// Decoding is whole-stream: the input is consumed to its end and
// returned as one track with its sample rate. Channel-count conversion
// always goes through the equal-power laws of the root package: mono
// sources lift with the center split, stereo sources fold with the
// downmix.
//
// # Registry
//
// The Registry maps format keys to decoders so callers can dispatch on a
// file extension:
//
//	reg := formats.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	reg.Register("mp3", mp3.Decoder{})
//
//	dec, ok := reg.Get("wav")
//
// # Track Builders
//
// MonoTrackOf and StereoTrackOf convert interleaved normalized samples
// into tracks; codec packages share them so the channel handling lives
// in one place. Sources with more than two channels are rejected with
// ErrUnsupportedChannels.
package formats
