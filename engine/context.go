// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"math"
	"sync"

	"github.com/ik5/audsound/audio"
	"github.com/ik5/audsound/formats"
)

// State of a context clock.
type State int

const (
	StateSuspended State = iota
	StateRunning
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateSuspended:
		return "suspended"
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Config holds the context settings. Zero fields fall back to DefaultConfig.
type Config struct {
	// SampleRate of the destination in Hz.
	SampleRate int
	// Quantum is the render block size in frames.
	Quantum int
	// Registry used by DecodeAudioData; formats.NewRegistry() when nil.
	Registry *audio.Registry
}

func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		Quantum:    128,
	}
}

// Context is an audio graph with its own clock and destination.
// A new context starts suspended.
type Context struct {
	mu sync.Mutex

	rate     int
	quantum  int
	registry *audio.Registry

	state State
	frame int64 // frames rendered while running
	block int64 // render pass counter

	dest    *DestinationNode
	pending []func()
}

func NewContext(cfg Config) *Context {
	def := DefaultConfig()
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = def.SampleRate
	}
	if cfg.Quantum <= 0 {
		cfg.Quantum = def.Quantum
	}
	if cfg.Registry == nil {
		cfg.Registry = formats.NewRegistry()
	}

	c := &Context{
		rate:     cfg.SampleRate,
		quantum:  cfg.Quantum,
		registry: cfg.Registry,
		state:    StateSuspended,
	}
	c.dest = &DestinationNode{}
	c.dest.init(c, c.dest, "destination")

	return c
}

func (c *Context) SampleRate() int { return c.rate }

// Destination is the final sink of the graph.
func (c *Context) Destination() *DestinationNode { return c.dest }

// CurrentTime is the clock position in seconds.
func (c *Context) CurrentTime() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now()
}

func (c *Context) now() float64 {
	return float64(c.frame) / float64(c.rate)
}

func (c *Context) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Resume starts the clock. It is a no-op on a closed context.
func (c *Context) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateClosed {
		c.state = StateRunning
	}
}

// Suspend freezes the clock; rendering produces silence until Resume.
func (c *Context) Suspend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateClosed {
		c.state = StateSuspended
	}
}

// Close stops the context for good.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateClosed
	return nil
}

// Update runs fn with the graph locked, making every connection change
// inside it a single step for the renderer.
func (c *Context) Update(fn func(g *Graph)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fn(&Graph{ctx: c})
}

// queue schedules fn to run once the context lock is released.
// Callers must hold c.mu.
func (c *Context) queue(fn func()) {
	c.pending = append(c.pending, fn)
}

// flush runs queued callbacks. Callers must not hold c.mu.
func (c *Context) flush() {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
}

// Flush runs any ended callbacks raised outside of rendering (for example
// by Stop) without waiting for the next render pass.
func (c *Context) Flush() {
	c.flush()
}

// secondsToFrames converts t seconds at rate to a frame count.
func secondsToFrames(t float64, rate int) int64 {
	if t <= 0 || math.IsNaN(t) {
		return 0
	}
	return int64(math.Round(t * float64(rate)))
}
