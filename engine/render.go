// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"io"

	"github.com/gopxl/beep"
	"github.com/ik5/audsound/audio"
)

var (
	_ audio.Source  = (*Context)(nil)
	_ beep.Streamer = (*Context)(nil)
)

// Render fills dst with the next len(dst) frames of the destination.
// While the context is not running dst is silent and the clock stays put.
// Ended callbacks raised during the pass run before Render returns.
func (c *Context) Render(dst [][2]float64) {
	c.mu.Lock()
	for off := 0; off < len(dst); off += c.quantum {
		c.renderQuantum(dst[off:min(off+c.quantum, len(dst))])
	}
	c.mu.Unlock()

	c.flush()
}

func (c *Context) renderQuantum(out [][2]float64) {
	if c.state != StateRunning {
		clear(out)
		return
	}

	c.block++
	copy(out, c.pull(c.dest, len(out)))
	c.frame += int64(len(out))
}

// Channels is always 2; the destination is stereo.
func (c *Context) Channels() int { return 2 }

func (c *Context) BufSize() int { return c.quantum * 2 }

// ReadSamples renders interleaved stereo float32. It only reports io.EOF
// once the context is closed.
func (c *Context) ReadSamples(dst []float32) (int, error) {
	if c.State() == StateClosed {
		return 0, io.EOF
	}
	if len(dst)%2 != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	frames := make([][2]float64, len(dst)/2)
	c.Render(frames)
	for i, f := range frames {
		dst[2*i] = float32(f[0])
		dst[2*i+1] = float32(f[1])
	}
	return len(dst), nil
}

// Stream implements beep.Streamer.
func (c *Context) Stream(samples [][2]float64) (int, bool) {
	if c.State() == StateClosed {
		return 0, false
	}
	c.Render(samples)
	return len(samples), true
}

// Err implements beep.Streamer.
func (c *Context) Err() error { return nil }

// Format describes the destination for beep consumers.
func (c *Context) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(c.rate),
		NumChannels: 2,
		Precision:   2,
	}
}

// Record returns a source that renders the next frames frames of the
// context and then reports io.EOF.
func (c *Context) Record(frames int) audio.Source {
	return &recording{ctx: c, left: frames}
}

type recording struct {
	ctx  *Context
	left int
}

func (r *recording) SampleRate() int { return r.ctx.rate }
func (r *recording) Channels() int   { return 2 }
func (r *recording) BufSize() int    { return r.ctx.BufSize() }
func (r *recording) Close() error    { return nil }

func (r *recording) ReadSamples(dst []float32) (int, error) {
	if r.left <= 0 {
		return 0, io.EOF
	}

	frames := min(len(dst)/2, r.left)
	n, err := r.ctx.ReadSamples(dst[:frames*2])
	r.left -= n / 2
	if err != nil {
		return n, err
	}
	if r.left <= 0 {
		return n, io.EOF
	}
	return n, nil
}
