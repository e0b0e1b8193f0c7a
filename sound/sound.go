// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"context"
	"sync"

	"github.com/ik5/audsound/engine"
	"github.com/ik5/audsound/utils"
)

type config struct {
	source Source
	volume float64 // gain, 1 is unity
	pitch  float64 // cents
	pan    float64 // [-1, 1]
	loop   bool
}

// Sound is a playable source wired through a fixed chain of panner, stereo
// panner and gain nodes. All methods are safe for concurrent use.
type Sound struct {
	mu sync.Mutex

	ctx     *engine.Context
	fetcher Fetcher
	origin  string
	log     Logger

	cfg config
	pos *Position

	panner *engine.PannerNode
	stereo *engine.StereoPannerNode
	gain   *engine.GainNode

	effects   []engine.Node
	connected []engine.Node

	source    *engine.BufferSourceNode
	buffer    *engine.Buffer
	samples   [][]float32
	samplesOf *engine.Buffer

	hasPlayed   bool
	savedOffset float64
	pendingPlay *playOptions

	gen    uint64
	res    *resolution
	cancel context.CancelFunc

	onLoad  func(*engine.Buffer, *engine.BufferSourceNode)
	onEnded func(*EndedEvent)

	// callbacks collected under mu, run by unlock
	calls []func()
}

// New builds a sound for src and starts resolving it. Decoded buffers are
// ready when New returns; URLs and bytes load in the background.
func New(src Source, opts ...Option) (*Sound, error) {
	if err := src.validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx := o.ctx
	if ctx == nil {
		ctx = engine.NewContext(engine.Config{SampleRate: o.sampleRate})
	}

	s := &Sound{
		ctx:     ctx,
		fetcher: o.fetcher,
		origin:  o.origin,
		log:     o.logger,
		cfg:     config{source: src, volume: 1, pitch: 1},
		pos:     NewPosition(0, 0, 0),
		panner:  ctx.CreatePanner(),
		stereo:  ctx.CreateStereoPanner(),
		gain:    ctx.CreateGain(),
		onLoad:  o.onLoad,
		onEnded: o.onEnded,
	}

	s.mu.Lock()
	defer s.unlock()

	s.reconfigure()
	s.linkNodes()
	s.resolve()

	return s, nil
}

// unlock releases mu and then runs the callbacks queued while it was held.
func (s *Sound) unlock() {
	calls := s.calls
	s.calls = nil
	s.mu.Unlock()

	for _, fn := range calls {
		fn()
	}
}

// queue defers fn until the lock is released. Callers hold mu.
func (s *Sound) queue(fn func()) {
	s.calls = append(s.calls, fn)
}

// Context returns the engine context the sound renders through.
func (s *Sound) Context() *engine.Context {
	return s.ctx
}

func (s *Sound) Source() Source {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cfg.source
}

// SetSource stops playback, drops the decoded buffer and resolves src.
func (s *Sound) SetSource(src Source) error {
	if err := src.validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.unlock()

	s.cfg.source = src
	if s.ready() {
		s.savedOffset = 0
		s.halt(false)
	}

	s.buffer = nil
	s.samples, s.samplesOf = nil, nil
	s.dropSource()
	s.linkNodes()
	s.resolve()

	return nil
}

// Volume returns the gain as a percentage.
func (s *Sound) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cfg.volume * 100
}

// SetVolume sets the gain as a percentage. Values above 100 amplify.
func (s *Sound) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.volume = v / 100
	s.reconfigure()
}

// Pitch returns the source detune in cents.
func (s *Sound) Pitch() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cfg.pitch
}

// SetPitch sets the source detune in cents.
func (s *Sound) SetPitch(cents float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.pitch = cents
	s.reconfigure()
}

// Pan returns the stereo balance in [-100, 100].
func (s *Sound) Pan() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cfg.pan * 100
}

// SetPan sets the stereo balance; values outside [-100, 100] are clamped.
func (s *Sound) SetPan(p float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.pan = utils.Clamp(p, -100, 100) / 100
	s.reconfigure()
}

func (s *Sound) Loop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cfg.loop
}

func (s *Sound) SetLoop(loop bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.loop = loop
	s.reconfigure()
}

// Position returns the sound's position. Changes made through the pointer
// take effect on the next Reconfigure or setter call.
func (s *Sound) Position() *Position {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pos
}

// SetPosition replaces the position; nil moves the sound to the origin.
func (s *Sound) SetPosition(p *Position) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p == nil {
		p = NewPosition(0, 0, 0)
	}
	s.pos = p
	s.reconfigure()
}

// Reconfigure pushes the current settings into the live nodes.
func (s *Sound) Reconfigure() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reconfigure()
}

func (s *Sound) reconfigure() {
	s.gain.SetGain(s.cfg.volume)
	s.stereo.SetPan(s.cfg.pan)
	if s.source != nil {
		s.source.SetDetune(s.cfg.pitch)
		s.source.SetLoop(s.cfg.loop)
	}
	s.pos.ApplyTo(s)
}

// Duration of the decoded buffer in seconds, 0 until loaded.
func (s *Sound) Duration() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buffer == nil {
		return 0
	}
	return s.buffer.Duration()
}

func (s *Sound) NumberOfChannels() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buffer == nil {
		return 0
	}
	return s.buffer.NumberOfChannels()
}

func (s *Sound) SampleRate() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buffer == nil {
		return 0
	}
	return s.buffer.SampleRate()
}

// CurrentTime is the context clock in seconds.
func (s *Sound) CurrentTime() float64 {
	return s.ctx.CurrentTime()
}

// Samples returns a per-channel copy of the decoded buffer. The copy is
// made once per buffer and shared between calls; callers must not modify
// it.
func (s *Sound) Samples() ([][]float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready() {
		return nil, ErrNotReady
	}

	if s.samplesOf != s.buffer {
		samples := make([][]float32, s.buffer.NumberOfChannels())
		for i := range samples {
			samples[i] = append([]float32(nil), s.buffer.ChannelData(i)...)
		}
		s.samples, s.samplesOf = samples, s.buffer
	}
	return s.samples, nil
}

// SetOnLoad replaces the callback run whenever a new source node is built.
func (s *Sound) SetOnLoad(fn func(*engine.Buffer, *engine.BufferSourceNode)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onLoad = fn
}

// SetOnEnded replaces the callback run when playback ends, pauses or stops.
func (s *Sound) SetOnEnded(fn func(*EndedEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onEnded = fn
}

// Close abandons any pending resolution and closes the engine context.
func (s *Sound) Close() error {
	s.mu.Lock()
	defer s.unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.source != nil {
		s.source.OnEnded(nil)
	}
	return s.ctx.Close()
}

func (s *Sound) ready() bool {
	return s.buffer != nil && s.source != nil
}

// Copy returns a new sound for the same source with its own context. The
// settings, saved offset, callbacks and effect list are carried over and
// the position is deep copied. The copy resolves its own buffer.
func (s *Sound) Copy() (*Sound, error) {
	s.mu.Lock()
	cfg := s.cfg
	pos := s.pos.Copy()
	offset := s.savedOffset
	effects := append([]engine.Node(nil), s.effects...)
	opts := []Option{
		WithSampleRate(s.ctx.SampleRate()),
		WithFetcher(s.fetcher),
		WithOrigin(s.origin),
		WithLogger(s.log),
		WithOnLoad(s.onLoad),
		WithOnEnded(s.onEnded),
	}
	s.mu.Unlock()

	c, err := New(cfg.source, opts...)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.unlock()

	c.cfg.pitch = cfg.pitch
	c.cfg.volume = cfg.volume
	c.cfg.loop = cfg.loop
	c.cfg.pan = cfg.pan
	c.pos = pos
	c.savedOffset = offset
	c.effects = effects
	c.linkNodes()
	c.reconfigure()

	return c, nil
}
