// SPDX-License-Identifier: EPL-2.0

package engine

// GainNode scales its input.
type GainNode struct {
	node
	gain float64
}

func (c *Context) CreateGain() *GainNode {
	g := &GainNode{gain: 1}
	g.init(c, g, "gain")
	return g
}

func (g *GainNode) Gain() float64 {
	g.ctx.mu.Lock()
	defer g.ctx.mu.Unlock()

	return g.gain
}

func (g *GainNode) SetGain(v float64) {
	g.ctx.mu.Lock()
	defer g.ctx.mu.Unlock()

	g.gain = v
}

func (g *GainNode) process(_ *Context, in, out [][2]float64) {
	for i := range out {
		out[i][0] = in[i][0] * g.gain
		out[i][1] = in[i][1] * g.gain
	}
}

// DestinationNode sums everything connected to it. It cannot feed other nodes.
type DestinationNode struct {
	node
}

func (d *DestinationNode) process(_ *Context, in, out [][2]float64) {
	copy(out, in)
}

// ProcessFunc edits one block of stereo frames in place.
type ProcessFunc func(block [][2]float64)

// ProcessorNode runs a caller supplied function over every block.
type ProcessorNode struct {
	node
	fn ProcessFunc
}

// CreateProcessor returns a node that applies fn to its mixed input.
// A nil fn passes audio through unchanged.
func (c *Context) CreateProcessor(fn ProcessFunc) *ProcessorNode {
	p := &ProcessorNode{fn: fn}
	p.init(c, p, "processor")
	return p
}

func (p *ProcessorNode) process(_ *Context, in, out [][2]float64) {
	copy(out, in)
	if p.fn != nil {
		p.fn(out)
	}
}
