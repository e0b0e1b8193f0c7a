// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"errors"
	"fmt"

	"github.com/ik5/audsound/audio"
	"github.com/ik5/audsound/formats"
)

// DecodeAudioData sniffs and decodes data into a Buffer at the context
// sample rate. It is safe to call from any goroutine.
func (c *Context) DecodeAudioData(data []byte) (*Buffer, error) {
	src, format, err := formats.Decode(c.registry, data)
	if errors.Is(err, audio.ErrUnknownFormat) {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer src.Close()

	var pipeline audio.Source = src
	if src.SampleRate() != c.rate {
		pipeline = audio.NewResampler(src, c.rate)
	}

	channels, err := audio.ReadAll(pipeline, 4096)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", format, err)
	}
	if len(channels) == 0 {
		return nil, ErrEmptyBuffer
	}

	return NewBuffer(channels, c.rate)
}
