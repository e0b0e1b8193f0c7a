// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// maxEmptyReads bounds how many (0, nil) reads are tolerated before a
// source is considered stalled.
const maxEmptyReads = 64

// ReadAll drains src and returns its samples split per channel.
// bufSize is the interleaved read size; it is rounded down to whole frames.
func ReadAll(src Source, bufSize int) ([][]float32, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	bufSize -= bufSize % channels
	if bufSize <= 0 {
		bufSize = channels * 1024
	}

	out := make([][]float32, channels)
	buf := make([]float32, bufSize)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		frames := n / channels
		for f := range frames {
			base := f * channels
			for c := range channels {
				out[c] = append(out[c], buf[base+c])
			}
		}

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return nil, ErrStalledSource
			}
			continue
		}
		empty = 0
	}
}
