// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audsound/internal/audiotest"
)

func readAll(t *testing.T, dec Decoder, data []byte) ([]float32, int, int) {
	t.Helper()

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	var out []float32
	buf := make([]float32, 256)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	return out, src.SampleRate(), src.Channels()
}

func TestDecoder_Stereo16(t *testing.T) {
	t.Parallel()

	samples := []int16{16384, -16384, 8192, -8192, 0, 0}
	got, rate, channels := readAll(t, Decoder{}, audiotest.WAV16(44100, 2, samples))

	if rate != 44100 || channels != 2 {
		t.Errorf("format = %d Hz / %d ch, want 44100 / 2", rate, channels)
	}
	if len(got) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(samples))
	}
	for i, s := range samples {
		want := float32(s) / 32768.0
		if math.Abs(float64(got[i]-want)) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestDecoder_NotWAVFile(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("NOT A WAV FILE DATA AT ALL, REALLY")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_Sniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header []byte
		want   bool
	}{
		{"canonical", audiotest.WAV16(8000, 1, nil)[:12], true},
		{"riff but avi", []byte("RIFF\x00\x00\x00\x00AVI "), false},
		{"too short", []byte("RIFF"), false},
		{"ogg", []byte("OggS\x00\x02\x00\x00\x00\x00\x00\x00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := (Decoder{}).Sniff(tt.header); got != tt.want {
				t.Errorf("Sniff() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWriteWAV16_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1000, -1000, 32767, -32768}
	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	if buf.Len() != 44+len(samples)*2 {
		t.Errorf("file size = %d, want %d", buf.Len(), 44+len(samples)*2)
	}

	got, rate, channels := readAll(t, Decoder{}, buf.Bytes())
	if rate != 8000 || channels != 1 {
		t.Errorf("format = %d Hz / %d ch, want 8000 / 1", rate, channels)
	}
	if len(got) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(samples))
	}
	if got[1] != float32(1000)/32768.0 {
		t.Errorf("sample 1 = %v, want %v", got[1], float32(1000)/32768.0)
	}
}

func TestWriteWAV16Channels_InvalidChannels(t *testing.T) {
	t.Parallel()

	err := WriteWAV16Channels(io.Discard, 8000, 0, []int16{1})
	if !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("WriteWAV16Channels() error = %v, want ErrInvalidChannels", err)
	}
}
