// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"errors"
	"fmt"

	"github.com/ik5/audsound/engine"
)

// EndedEvent describes a natural end of playback.
type EndedEvent struct {
	// Source is the node that finished. It has already been replaced.
	Source *engine.BufferSourceNode
	// Time is the context clock when the end was handled.
	Time float64
}

type playOptions struct {
	when     float64
	offset   float64
	duration float64
}

// PlayOption adjusts a single Play call.
type PlayOption func(*playOptions)

// When schedules playback at context time t in seconds.
func When(t float64) PlayOption {
	return func(p *playOptions) { p.when = t }
}

// Offset starts t seconds into the buffer.
func Offset(t float64) PlayOption {
	return func(p *playOptions) { p.offset = t }
}

// For limits playback to d seconds.
func For(d float64) PlayOption {
	return func(p *playOptions) { p.duration = d }
}

// Play resumes the context clock and starts the source. A source that was
// already started is replaced first and the play runs on the fresh one
// before Play returns. A pending paused offset overrides When and is then
// cleared.
func (s *Sound) Play(opts ...PlayOption) error {
	var p playOptions
	for _, opt := range opts {
		opt(&p)
	}
	return s.play(p)
}

func (s *Sound) play(p playOptions) error {
	s.mu.Lock()
	defer s.unlock()

	if !s.ready() {
		return ErrNotReady
	}

	if s.hasPlayed {
		s.pendingPlay = &p
		s.buildSource()
		return nil
	}

	if s.savedOffset != 0 {
		p.when = s.savedOffset
		s.savedOffset = 0
	}

	s.ctx.Resume()
	s.hasPlayed = true

	src := s.source
	src.OnEnded(func() { s.ended(src) })
	if err := src.Start(p.when, p.offset, p.duration); err != nil {
		return fmt.Errorf("starting source: %w", err)
	}
	return nil
}

// ended handles a natural end of src. Signals from nodes that are no
// longer current were already handled by Pause, Stop or a rebuild.
func (s *Sound) ended(src *engine.BufferSourceNode) {
	s.mu.Lock()
	defer s.unlock()

	if src != s.source {
		return
	}

	s.buildSource()
	if fn := s.onEnded; fn != nil {
		ev := &EndedEvent{Source: src, Time: s.ctx.CurrentTime()}
		s.queue(func() { fn(ev) })
	}
}

// Pause remembers the context clock, suspends it and replaces the source.
// The next Play starts at the remembered time.
func (s *Sound) Pause() error {
	s.mu.Lock()
	defer s.unlock()

	if !s.ready() {
		return ErrNotReady
	}

	s.savedOffset = s.ctx.CurrentTime()
	s.halt(true)
	return nil
}

// Stop is Pause with the remembered time reset to zero.
func (s *Sound) Stop() error {
	s.mu.Lock()
	defer s.unlock()

	if !s.ready() {
		return ErrNotReady
	}

	s.savedOffset = 0
	s.halt(true)
	return nil
}

// halt suspends the clock, stops the current source and queues the ended
// callback with a nil event. Callers hold mu.
func (s *Sound) halt(rebuild bool) {
	s.ctx.Suspend()

	s.source.OnEnded(nil)
	if err := s.source.Stop(); err != nil && !errors.Is(err, engine.ErrNotStarted) {
		s.log.Warn("stopping source", "error", err)
	}

	if rebuild {
		s.buildSource()
	}
	if fn := s.onEnded; fn != nil {
		s.queue(func() { fn(nil) })
	}
}

// SavedOffset is the context time remembered by the last Pause, or 0.
func (s *Sound) SavedOffset() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.savedOffset
}

// Playing reports whether the current source has been started and has not
// ended.
func (s *Sound) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.source != nil && s.hasPlayed && !s.source.Ended()
}
