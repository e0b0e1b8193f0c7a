// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audsound/internal/audiotest"
)

type mockDecoder struct {
	magic []byte
}

func (d *mockDecoder) Decode(io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func (d *mockDecoder) Sniff(header []byte) bool {
	return bytes.HasPrefix(header, d.magic)
}

// plainDecoder cannot sniff.
type plainDecoder struct{}

func (plainDecoder) Decode(io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{magic: []byte("RIFF")}
	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}

	if _, ok := registry.Get("flac"); ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_FormatsKeepRegistrationOrder(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{})
	registry.Register("ogg", &mockDecoder{})
	registry.Register("wav", &mockDecoder{}) // replace, no duplicate

	got := registry.Formats()
	if len(got) != 2 || got[0] != "wav" || got[1] != "ogg" {
		t.Errorf("Formats() = %v, want [wav ogg]", got)
	}
}

func TestRegistry_Detect(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("plain", plainDecoder{})
	registry.Register("wav", &mockDecoder{magic: []byte("RIFF")})
	registry.Register("ogg", &mockDecoder{magic: []byte("OggS")})

	tests := []struct {
		header string
		want   string
		wantOK bool
	}{
		{"RIFF....WAVE", "wav", true},
		{"OggS\x00\x02", "ogg", true},
		{"ID3\x04", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		format, dec, ok := registry.Detect([]byte(tt.header))
		if ok != tt.wantOK || format != tt.want {
			t.Errorf("Detect(%q) = %q, %v, want %q, %v", tt.header, format, ok, tt.want, tt.wantOK)
		}
		if ok && dec == nil {
			t.Errorf("Detect(%q) returned nil decoder", tt.header)
		}
	}
}

func TestReadAll_Deinterleaves(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 1000, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.25
		}
		return -0.5
	})

	got, err := ReadAll(src, 300) // rounded to whole frames
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ReadAll() channels = %d, want 2", len(got))
	}
	for c, want := range []float32{0.25, -0.5} {
		if len(got[c]) != 1000 {
			t.Fatalf("channel %d has %d samples, want 1000", c, len(got[c]))
		}
		if got[c][999] != want {
			t.Errorf("channel %d last sample = %v, want %v", c, got[c][999], want)
		}
	}
}

func TestReadAll_NoChannels(t *testing.T) {
	t.Parallel()

	_, err := ReadAll(audiotest.NewSilentSource(8000, 0, 10), 1024)
	if !errors.Is(err, ErrNoChannels) {
		t.Errorf("ReadAll() error = %v, want ErrNoChannels", err)
	}
}

func readFrames(t *testing.T, src Source) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 512*src.Channels())
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestResampler_Downsample(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 1, 44100, 440)
	r := NewResampler(src, 16000)

	if r.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", r.SampleRate())
	}

	got := len(readFrames(t, r))
	if got < 15999 || got > 16001 {
		t.Errorf("resampled length = %d, want ~16000", got)
	}
}

func TestResampler_UpsampleKeepsConstant(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(22050, 2, 2205, 0.5)
	r := NewResampler(src, 44100)

	out := readFrames(t, r)
	if frames := len(out) / 2; frames < 4409 || frames > 4411 {
		t.Errorf("resampled frames = %d, want ~4410", frames)
	}
	for i, v := range out {
		if math.Abs(float64(v-0.5)) > 1e-5 {
			t.Fatalf("sample %d = %v, want 0.5", i, v)
		}
	}
}

func TestResampler_SameRateIsLossless(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 1, 100, func(sample, _ int) float32 {
		return float32(sample) / 100
	})

	out := readFrames(t, NewResampler(src, 8000))
	if len(out) != 100 {
		t.Fatalf("len = %d, want 100", len(out))
	}
	for i, v := range out {
		if math.Abs(float64(v)-float64(i)/100) > 1e-5 {
			t.Fatalf("sample %d = %v, want %v", i, v, float64(i)/100)
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(8000, 2, 10), 16000)
	if _, err := r.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(8000, 1, 0), 16000)
	n, err := r.ReadSamples(make([]float32, 16))
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestMonoMixer_AveragesChannels(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 64, func(_, channel int) float32 {
		if channel == 0 {
			return 0.2
		}
		return 0.6
	})

	mono := NewMonoMixer(src)
	if mono.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", mono.Channels())
	}

	out := readFrames(t, mono)
	if len(out) != 64 {
		t.Fatalf("len = %d, want 64", len(out))
	}
	if math.Abs(float64(out[10]-0.4)) > 1e-6 {
		t.Errorf("sample = %v, want 0.4", out[10])
	}
}

func TestResampleToMono16(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(16000, 2, 16000, 440)
	pcm, rate, err := ResampleToMono16(src, 8000, 4096)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}
	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}
	if len(pcm) < 7999 || len(pcm) > 8001 {
		t.Errorf("len = %d, want ~8000", len(pcm))
	}
}
