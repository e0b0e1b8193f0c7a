// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audsound/utils"
)

// Resampler streams from src to a target sample rate using cubic interpolation.
// Works on interleaved samples and preserves channel count.
// A one-pole low-pass is applied to incoming frames when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames consumed per output frame
	channels int

	// window[0] = t-1, window[1] = t0, window[2] = t+1, window[3] = t+2
	window [4][]float32
	padded [4]bool
	primed bool
	done   bool

	// fractional position between window[1] and window[2]
	pos float64

	srcBuf []float32
	bufPos int
	bufLen int
	eof    bool
	empty  int

	useFilter   bool
	filterAlpha float32
	filterState []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float32, max(channels, 1)*1024),
		useFilter:   ratio > 1.0,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// nextFrame copies the next source frame into dst. It reports false once
// the source is exhausted.
func (r *Resampler) nextFrame(dst []float32) (bool, error) {
	for r.bufPos+r.channels > r.bufLen {
		if r.eof {
			return false, nil
		}

		rem := copy(r.srcBuf, r.srcBuf[r.bufPos:r.bufLen])
		n, err := r.src.ReadSamples(r.srcBuf[rem:])
		r.bufPos, r.bufLen = 0, rem+n

		switch {
		case errors.Is(err, io.EOF):
			r.eof = true
		case err != nil:
			return false, fmt.Errorf("%w", err)
		case n == 0:
			r.empty++
			if r.empty >= maxEmptyReads {
				return false, ErrStalledSource
			}
		default:
			r.empty = 0
		}
	}

	copy(dst, r.srcBuf[r.bufPos:r.bufPos+r.channels])
	r.bufPos += r.channels

	if r.useFilter {
		for c := range r.channels {
			dst[c] = r.filterAlpha*dst[c] + (1-r.filterAlpha)*r.filterState[c]
			r.filterState[c] = dst[c]
		}
	}

	return true, nil
}

// fill loads window slot i from the source, or repeats slot i-1 once the
// source has nothing left.
func (r *Resampler) fill(i int) error {
	ok, err := r.nextFrame(r.window[i])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[i], r.window[i-1])
		r.padded[i] = true
		return nil
	}
	r.padded[i] = false
	return nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.nextFrame(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		r.done = true
		return nil
	}
	if r.useFilter {
		// start the filter from the first frame to avoid a fade-in
		copy(r.filterState, r.window[1])
	}
	copy(r.window[0], r.window[1])

	if err := r.fill(2); err != nil {
		return err
	}
	return r.fill(3)
}

func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:3], r.window[1:])
	copy(r.padded[:3], r.padded[1:])
	r.window[3] = first
	return r.fill(3)
}

// ReadSamples produces samples at the destination rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.channels <= 0 {
		return 0, ErrNoChannels
	}
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	framesNeeded := len(dst) / r.channels
	written := 0

	for written < framesNeeded && !r.done {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if r.padded[1] {
			r.done = true
			break
		}

		alpha := float32(r.pos)
		base := written * r.channels
		for c := range r.channels {
			dst[base+c] = utils.CubicInterpolate(
				r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], alpha,
			)
		}

		written++
		r.pos += r.ratio
	}

	if r.done {
		return written * r.channels, io.EOF
	}
	return written * r.channels, nil
}
