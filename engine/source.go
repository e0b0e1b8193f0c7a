// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"math"

	"github.com/ik5/audsound/utils"
)

// BufferSourceNode plays a Buffer once. It can be started a single time;
// a new node is needed to play again.
type BufferSourceNode struct {
	node

	buffer *Buffer
	detune float64 // cents
	loop   bool

	started    bool
	ended      bool
	startFrame int64
	playhead   float64 // buffer frames
	played     float64 // buffer frames consumed
	limit      float64 // buffer frames to play, 0 = unbounded

	onEnded func()
}

func (c *Context) CreateBufferSource() *BufferSourceNode {
	s := &BufferSourceNode{}
	s.init(c, s, "buffer-source")
	return s
}

func (s *BufferSourceNode) SetBuffer(b *Buffer) {
	s.ctx.mu.Lock()
	defer s.ctx.mu.Unlock()

	s.buffer = b
}

func (s *BufferSourceNode) Buffer() *Buffer {
	s.ctx.mu.Lock()
	defer s.ctx.mu.Unlock()

	return s.buffer
}

// SetDetune sets the pitch offset in cents.
func (s *BufferSourceNode) SetDetune(cents float64) {
	s.ctx.mu.Lock()
	defer s.ctx.mu.Unlock()

	s.detune = cents
}

func (s *BufferSourceNode) Detune() float64 {
	s.ctx.mu.Lock()
	defer s.ctx.mu.Unlock()

	return s.detune
}

func (s *BufferSourceNode) SetLoop(loop bool) {
	s.ctx.mu.Lock()
	defer s.ctx.mu.Unlock()

	s.loop = loop
}

func (s *BufferSourceNode) Loop() bool {
	s.ctx.mu.Lock()
	defer s.ctx.mu.Unlock()

	return s.loop
}

// OnEnded registers fn to run once when playback finishes or Stop is
// called. It replaces any previous callback.
func (s *BufferSourceNode) OnEnded(fn func()) {
	s.ctx.mu.Lock()
	defer s.ctx.mu.Unlock()

	s.onEnded = fn
}

func (s *BufferSourceNode) Started() bool {
	s.ctx.mu.Lock()
	defer s.ctx.mu.Unlock()

	return s.started
}

func (s *BufferSourceNode) Ended() bool {
	s.ctx.mu.Lock()
	defer s.ctx.mu.Unlock()

	return s.ended
}

// Start schedules playback at context time when, beginning offset seconds
// into the buffer and lasting duration seconds (0 plays to the end, or
// forever when looping). Times in the past start immediately.
func (s *BufferSourceNode) Start(when, offset, duration float64) error {
	s.ctx.mu.Lock()
	defer s.ctx.mu.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true

	s.startFrame = max(secondsToFrames(when, s.ctx.rate), s.ctx.frame)
	if s.buffer != nil {
		s.playhead = float64(secondsToFrames(offset, s.buffer.rate))
		s.limit = float64(secondsToFrames(duration, s.buffer.rate))
	}

	return nil
}

// Stop ends playback now. Stopping an ended node is a no-op.
func (s *BufferSourceNode) Stop() error {
	s.ctx.mu.Lock()
	defer s.ctx.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	s.finish()
	return nil
}

// finish marks the node ended and queues its callback. Callers hold ctx.mu.
func (s *BufferSourceNode) finish() {
	if s.ended {
		return
	}
	s.ended = true
	if s.onEnded != nil {
		s.ctx.queue(s.onEnded)
	}
}

// at returns frame i of channel ch, wrapping when looping and clamping
// otherwise.
func (s *BufferSourceNode) at(ch []float32, i int) float32 {
	n := len(ch)
	if s.loop {
		i %= n
		if i < 0 {
			i += n
		}
		return ch[i]
	}
	return ch[utils.Clamp(i, 0, n-1)]
}

func (s *BufferSourceNode) sample(ch []float32) float64 {
	i := int(s.playhead)
	frac := float32(s.playhead - float64(i))
	return float64(utils.CubicInterpolate(s.at(ch, i-1), s.at(ch, i), s.at(ch, i+1), s.at(ch, i+2), frac))
}

func (s *BufferSourceNode) process(c *Context, _, out [][2]float64) {
	clear(out)
	if !s.started || s.ended || s.buffer == nil {
		return
	}

	length := float64(s.buffer.Length())
	if length == 0 {
		s.finish()
		return
	}

	left := s.buffer.channels[0]
	right := left
	if len(s.buffer.channels) > 1 {
		right = s.buffer.channels[1]
	}

	step := math.Pow(2, s.detune/1200) * float64(s.buffer.rate) / float64(c.rate)

	for i := range out {
		if c.frame+int64(i) < s.startFrame {
			continue
		}

		if s.playhead >= length {
			if !s.loop {
				s.finish()
				return
			}
			s.playhead = math.Mod(s.playhead, length)
		}

		out[i][0] = s.sample(left)
		out[i][1] = s.sample(right)

		s.playhead += step
		s.played += step
		if s.limit > 0 && s.played >= s.limit {
			s.finish()
			return
		}
		if s.playhead >= length && !s.loop {
			s.finish()
			return
		}
	}
}
