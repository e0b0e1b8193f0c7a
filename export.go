// SPDX-License-Identifier: EPL-2.0

package audsound

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audsound/audio"
	"github.com/ik5/audsound/engine"
	"github.com/ik5/audsound/formats/wav"
)

// ErrInvalidDuration is returned by Export for a non-positive length.
var ErrInvalidDuration = errors.New("export duration must be positive")

// Export renders the next seconds of ctx and writes them to w as a mono
// 16-bit WAV at targetRate. A targetRate of 0 keeps the context rate.
// The context must be running for anything but silence to be captured.
func Export(w io.Writer, ctx *engine.Context, seconds float64, targetRate int) error {
	if seconds <= 0 || math.IsNaN(seconds) {
		return ErrInvalidDuration
	}
	if targetRate <= 0 {
		targetRate = ctx.SampleRate()
	}

	frames := int(math.Round(seconds * float64(ctx.SampleRate())))
	samples, rate, err := audio.ResampleToMono16(ctx.Record(frames), targetRate, ctx.BufSize())
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	if err := wav.WriteWAV16(w, rate, samples); err != nil {
		return fmt.Errorf("writing wav: %w", err)
	}
	return nil
}
