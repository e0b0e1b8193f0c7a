// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"log/slog"

	"github.com/ik5/audsound/engine"
)

// Option configures a Sound at construction.
type Option func(*options)

type options struct {
	ctx        *engine.Context
	sampleRate int
	fetcher    Fetcher
	origin     string
	logger     Logger
	onLoad     func(*engine.Buffer, *engine.BufferSourceNode)
	onEnded    func(*EndedEvent)
}

func defaultOptions() options {
	return options{
		sampleRate: engine.DefaultConfig().SampleRate,
		fetcher:    NewHTTPFetcher(),
		logger:     slog.Default(),
	}
}

// WithContext renders the sound through ctx instead of a private context.
func WithContext(ctx *engine.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// WithSampleRate sets the rate of the private context. It is ignored when
// WithContext is used.
func WithSampleRate(rate int) Option {
	return func(o *options) {
		if rate > 0 {
			o.sampleRate = rate
		}
	}
}

func WithFetcher(f Fetcher) Option {
	return func(o *options) {
		if f != nil {
			o.fetcher = f
		}
	}
}

// WithOrigin sets the base that relative URLs are joined to.
func WithOrigin(origin string) Option {
	return func(o *options) {
		o.origin = origin
	}
}

func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnLoad registers fn to run every time a new source node is built.
func WithOnLoad(fn func(*engine.Buffer, *engine.BufferSourceNode)) Option {
	return func(o *options) {
		o.onLoad = fn
	}
}

// WithOnEnded registers fn to run when playback ends, pauses or stops.
func WithOnEnded(fn func(*EndedEvent)) Option {
	return func(o *options) {
		o.onEnded = fn
	}
}
