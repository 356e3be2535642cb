// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/sampleformat"
	"github.com/ik5/sampleformat/internal/audiotest"
)

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, _, err := decoder.DecodeStereo(bytes.NewReader([]byte("This is not WAV data")))

	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("DecodeStereo() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, _, err := decoder.DecodeMono(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("DecodeMono() error = nil, want error for empty input")
	}
}

func TestEncodeDecode_StereoRoundTrip(t *testing.T) {
	t.Parallel()

	track := sampleformat.StereoTrack{
		sampleformat.NewStereo(0.0, 0.0),
		sampleformat.NewStereo(0.5, -0.5),
		sampleformat.NewStereo(-0.25, 0.25),
	}

	path := filepath.Join(t.TempDir(), "roundtrip.wav")

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}

	if err := EncodeStereo(out, 44100, track); err != nil {
		t.Fatalf("EncodeStereo() error = %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("os.Open() error = %v", err)
	}
	defer in.Close()

	got, rate, err := Decoder{}.DecodeStereo(in)
	if err != nil {
		t.Fatalf("DecodeStereo() error = %v", err)
	}

	if rate != 44100 {
		t.Errorf("sample rate = %d, want 44100", rate)
	}
	if len(got) != len(track) {
		t.Fatalf("decoded length = %d, want %d", len(got), len(track))
	}

	// Within one 16-bit quantization step
	const tol = 2.0 / 32768.0
	for i := range track {
		if math.Abs(float64(got[i].L-track[i].L)) > tol ||
			math.Abs(float64(got[i].R-track[i].R)) > tol {
			t.Errorf("frame %d = %+v, want ≈%+v", i, got[i], track[i])
		}
	}
}

func TestEncodeDecode_MonoRoundTrip(t *testing.T) {
	t.Parallel()

	track := audiotest.SineMonoTrack(8000, 100, 440.0)

	path := filepath.Join(t.TempDir(), "mono.wav")

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}

	if err := EncodeMono(out, 8000, track); err != nil {
		t.Fatalf("EncodeMono() error = %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("os.Open() error = %v", err)
	}
	defer in.Close()

	got, rate, err := Decoder{}.DecodeMono(in)
	if err != nil {
		t.Fatalf("DecodeMono() error = %v", err)
	}

	if rate != 8000 {
		t.Errorf("sample rate = %d, want 8000", rate)
	}
	if len(got) != len(track) {
		t.Fatalf("decoded length = %d, want %d", len(got), len(track))
	}

	const tol = 2.0 / 32768.0
	for i := range track {
		if math.Abs(float64(got[i].M-track[i].M)) > tol {
			t.Errorf("frame %d = %v, want ≈%v", i, got[i].M, track[i].M)
		}
	}
}

func TestDecodeStereo_FromMonoFile(t *testing.T) {
	t.Parallel()

	track := audiotest.ConstantMonoTrack(10, 0.5)

	path := filepath.Join(t.TempDir(), "lift.wav")

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}

	if err := EncodeMono(out, 8000, track); err != nil {
		t.Fatalf("EncodeMono() error = %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("os.Open() error = %v", err)
	}
	defer in.Close()

	got, _, err := Decoder{}.DecodeStereo(in)
	if err != nil {
		t.Fatalf("DecodeStereo() error = %v", err)
	}

	// Equal-power center split of 0.5
	want := 0.5 * math.Sqrt(0.5)
	for i, f := range got {
		if math.Abs(float64(f.L)-want) > 0.001 || f.L != f.R {
			t.Errorf("frame %d = %+v, want both channels ≈%v", i, f, want)
		}
	}
}

func TestDecodeMono_FoldsStereoFile(t *testing.T) {
	t.Parallel()

	// Opposing channels cancel in the downmix
	track := audiotest.ConstantStereoTrack(10, 0.5, -0.5)

	path := filepath.Join(t.TempDir(), "fold.wav")

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}

	if err := EncodeStereo(out, 8000, track); err != nil {
		t.Fatalf("EncodeStereo() error = %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("os.Open() error = %v", err)
	}
	defer in.Close()

	got, _, err := Decoder{}.DecodeMono(in)
	if err != nil {
		t.Fatalf("DecodeMono() error = %v", err)
	}

	for i, f := range got {
		if math.Abs(float64(f.M)) > 0.001 {
			t.Errorf("frame %d = %v, want ≈0 (cancelled)", i, f.M)
		}
	}
}

func TestEncodeStereo_EmptyTrack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.wav")

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}

	if err := EncodeStereo(out, 8000, nil); err != nil {
		t.Fatalf("EncodeStereo() error = %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("os.Open() error = %v", err)
	}
	defer in.Close()

	got, _, err := Decoder{}.DecodeStereo(in)
	if err != nil {
		t.Fatalf("DecodeStereo() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("decoded length = %d, want 0", len(got))
	}
}
