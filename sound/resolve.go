// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"context"
	"fmt"

	"github.com/ik5/audsound/engine"
)

// resolution tracks one attempt at turning the source into a buffer.
type resolution struct {
	done chan struct{}
	err  error
}

// Loaded blocks until the latest resolution finishes or ctx is done. It
// returns the resolution error, wrapped in ErrFetch or ErrDecode.
func (s *Sound) Loaded(ctx context.Context) error {
	s.mu.Lock()
	res := s.res
	s.mu.Unlock()

	select {
	case <-res.done:
		return res.err
	case <-ctx.Done():
		return fmt.Errorf("%w", ctx.Err())
	}
}

// resolve starts a new resolution generation for the configured source.
// Callers hold mu.
func (s *Sound) resolve() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	s.gen++
	gen := s.gen
	res := &resolution{done: make(chan struct{})}
	s.res = res

	src := s.cfg.source
	if src.kind == kindBuffer {
		s.install(src.buffer)
		close(res.done)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.log.Debug("resolving sound source", "source", src.String(), "generation", gen)
	go s.load(ctx, gen, res, src)
}

// load fetches and decodes src outside the lock, then installs the buffer
// if no newer resolution has started.
func (s *Sound) load(ctx context.Context, gen uint64, res *resolution, src Source) {
	buf, err := s.decode(ctx, src)

	s.mu.Lock()
	s.complete(gen, res, src, buf, err)
	s.unlock()

	close(res.done)
}

// complete records the outcome of a resolution. Callers hold mu.
func (s *Sound) complete(gen uint64, res *resolution, src Source, buf *engine.Buffer, err error) {
	res.err = err
	if gen != s.gen {
		s.log.Debug("discarding stale resolution", "source", src.String(), "generation", gen, "current", s.gen)
		return
	}
	s.cancel = nil

	if err != nil {
		s.log.Error("resolving sound source", "source", src.String(), "error", err)
		return
	}
	s.install(buf)
}

func (s *Sound) decode(ctx context.Context, src Source) (*engine.Buffer, error) {
	data := src.data
	if src.kind == kindURL {
		var err error
		data, err = s.fetcher.Fetch(ctx, resolveURL(s.origin, src.url))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}
	}

	buf, err := s.ctx.DecodeAudioData(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return buf, nil
}

// install caches buf and builds a fresh source node for it. Callers hold
// mu.
func (s *Sound) install(buf *engine.Buffer) {
	s.buffer = buf
	if s.samplesOf != buf {
		s.samples, s.samplesOf = nil, nil
	}
	s.buildSource()
}

// buildSource replaces the source node with an unstarted one reading the
// cached buffer, rewires the chain and queues the load callback and any
// pending play. Callers hold mu.
func (s *Sound) buildSource() {
	s.dropSource()

	src := s.ctx.CreateBufferSource()
	src.SetBuffer(s.buffer)
	s.source = src
	s.hasPlayed = false
	s.reconfigure()
	s.linkNodes()

	if fn := s.onLoad; fn != nil {
		buf := s.buffer
		s.queue(func() { fn(buf, src) })
	}

	if p := s.pendingPlay; p != nil {
		s.pendingPlay = nil
		s.log.Debug("running queued play", "when", p.when, "offset", p.offset, "duration", p.duration)
		s.queue(func() {
			if err := s.play(*p); err != nil {
				s.log.Warn("queued play failed", "error", err)
			}
		})
	}
}

// dropSource detaches the current source node and unwires the chain so the
// next link pass leaves it out. Callers hold mu.
func (s *Sound) dropSource() {
	if s.source == nil {
		return
	}
	s.ctx.Update(s.unlink)
	s.source.OnEnded(nil)
	s.source = nil
}
