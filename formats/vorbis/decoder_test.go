// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"
)

type mockOggReader struct {
	data   []float32
	offset int
}

func (m *mockOggReader) SampleRate() int { return 48000 }
func (m *mockOggReader) Channels() int   { return 2 }

func (m *mockOggReader) Read(p []float32) (int, error) {
	if m.offset >= len(m.data) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.offset:])
	m.offset += n
	return n, nil
}

func TestSource_ReadSamplesFrameAligned(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{data: []float32{0.1, 0.2, 0.3, 0.4}},
		sampleRate: 48000,
		channels:   2,
	}

	buf := make([]float32, 3) // one and a half frames
	n, err := src.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 2 {
		t.Errorf("ReadSamples() n = %d, want 2", n)
	}

	if n, _ := src.ReadSamples(buf[:1]); n != 0 {
		t.Errorf("ReadSamples() with sub-frame dst n = %d, want 0", n)
	}
}

func TestDecoder_Sniff(t *testing.T) {
	t.Parallel()

	if !(Decoder{}).Sniff([]byte("OggS\x00\x02")) {
		t.Error("Sniff() = false for Ogg page header")
	}
	if (Decoder{}).Sniff([]byte("fLaC")) {
		t.Error("Sniff() = true for FLAC header")
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an ogg stream"))); err == nil {
		t.Error("Decode() error = nil, want error")
	}
}
