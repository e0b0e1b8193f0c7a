// SPDX-License-Identifier: EPL-2.0

package audsound

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/ik5/audsound/audio"
	"github.com/ik5/audsound/engine"
	"github.com/ik5/audsound/formats/wav"
)

func TestExport_WritesMonoWAV(t *testing.T) {
	t.Parallel()

	ctx := engine.NewContext(engine.Config{SampleRate: 16000})
	buf, err := engine.NewEmptyBuffer(2, 16000, 16000)
	if err != nil {
		t.Fatalf("NewEmptyBuffer() error = %v", err)
	}
	for c := range 2 {
		data := buf.ChannelData(c)
		for i := range data {
			data[i] = 0.5
		}
	}

	src := ctx.CreateBufferSource()
	src.SetBuffer(buf)
	if err := src.Connect(ctx.Destination()); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	ctx.Resume()
	if err := src.Start(0, 0, 0); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	var out bytes.Buffer
	if err := Export(&out, ctx, 0.25, 8000); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	decoded, err := wav.Decoder{}.Decode(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	if decoded.SampleRate() != 8000 || decoded.Channels() != 1 {
		t.Fatalf("export format = %d Hz %d ch, want 8000 Hz mono", decoded.SampleRate(), decoded.Channels())
	}

	channels, err := audio.ReadAll(decoded, 1024)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if n := len(channels[0]); math.Abs(float64(n-2000)) > 8 {
		t.Errorf("exported %d frames, want about 2000", n)
	}
	if got := channels[0][1000]; math.Abs(float64(got)-0.5) > 0.01 {
		t.Errorf("sample 1000 = %v, want about 0.5", got)
	}

	if got := ctx.CurrentTime(); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("CurrentTime() = %v, want 0.25", got)
	}
}

func TestExport_InvalidDuration(t *testing.T) {
	t.Parallel()

	ctx := engine.NewContext(engine.DefaultConfig())
	for _, d := range []float64{0, -1, math.NaN()} {
		if err := Export(&bytes.Buffer{}, ctx, d, 0); !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("Export(%v) error = %v, want ErrInvalidDuration", d, err)
		}
	}
}
