// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// mockMP3Reader simulates gomp3.Decoder output
type mockMP3Reader struct {
	samples []int16
	offset  int
}

func (m *mockMP3Reader) SampleRate() int { return 44100 }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}
	n := min(len(buf)/2, len(m.samples)-m.offset)
	for i := range n {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(m.samples[m.offset+i]))
	}
	m.offset += n
	return n * 2, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockMP3Reader{samples: []int16{16384, -16384, 0, 32767}},
		sampleRate: 44100,
		channels:   2,
	}

	buf := make([]float32, 8)
	n, err := src.ReadSamples(buf)
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if buf[0] != 0.5 || buf[1] != -0.5 {
		t.Errorf("samples = %v, want [0.5 -0.5 ...]", buf[:4])
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("second ReadSamples() = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestDecoder_Sniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header []byte
		want   bool
	}{
		{[]byte("ID3\x03\x00"), true},
		{[]byte{0xFF, 0xFB, 0x90}, true},
		{[]byte{0xFF, 0xE0}, false}, // reserved layer
		{[]byte("RIFF"), false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := (Decoder{}).Sniff(tt.header); got != tt.want {
			t.Errorf("Sniff(%x) = %v, want %v", tt.header, got, tt.want)
		}
	}
}
