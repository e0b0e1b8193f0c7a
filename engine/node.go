// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"slices"

	"github.com/google/uuid"
)

// Node is a processing stage of a Context graph. Only node types created
// by a Context implement it.
type Node interface {
	// ID is a unique identifier, stable for the node's lifetime.
	ID() string
	// Kind names the node type ("gain", "panner", ...).
	Kind() string
	Context() *Context

	// Connect feeds this node's output into dst. Connecting an existing
	// edge again is a no-op.
	Connect(dst Node) error
	// Disconnect removes every outgoing connection of this node.
	Disconnect()

	Inputs() []Node
	Outputs() []Node

	base() *node
	process(c *Context, in, out [][2]float64)
}

type node struct {
	id   string
	kind string
	ctx  *Context
	self Node

	inputs  []Node
	outputs []Node

	in       [][2]float64
	out      [][2]float64
	block    int64
	visiting bool
}

func (n *node) init(c *Context, self Node, kind string) {
	n.id = uuid.NewString()
	n.kind = kind
	n.ctx = c
	n.self = self
	n.in = make([][2]float64, c.quantum)
	n.out = make([][2]float64, c.quantum)
}

func (n *node) ID() string        { return n.id }
func (n *node) Kind() string      { return n.kind }
func (n *node) Context() *Context { return n.ctx }
func (n *node) base() *node       { return n }

func (n *node) Connect(dst Node) error {
	var err error
	n.ctx.Update(func(g *Graph) {
		err = g.Connect(n.self, dst)
	})
	return err
}

func (n *node) Disconnect() {
	n.ctx.Update(func(g *Graph) {
		g.Disconnect(n.self)
	})
}

func (n *node) Inputs() []Node {
	n.ctx.mu.Lock()
	defer n.ctx.mu.Unlock()

	return slices.Clone(n.inputs)
}

func (n *node) Outputs() []Node {
	n.ctx.mu.Lock()
	defer n.ctx.mu.Unlock()

	return slices.Clone(n.outputs)
}

// Graph is the locked view of a context handed to Context.Update.
type Graph struct {
	ctx *Context
}

// Connect wires src into dst.
func (g *Graph) Connect(src, dst Node) error {
	if src.Context() != g.ctx || dst.Context() != g.ctx {
		return ErrContextMismatch
	}
	if src == Node(g.ctx.dest) {
		return ErrDestinationOutput
	}

	s, d := src.base(), dst.base()
	if slices.Contains(s.outputs, dst) {
		return nil
	}
	s.outputs = append(s.outputs, dst)
	d.inputs = append(d.inputs, src)
	return nil
}

// Disconnect removes every outgoing edge of src.
func (g *Graph) Disconnect(src Node) {
	s := src.base()
	for _, dst := range s.outputs {
		d := dst.base()
		d.inputs = slices.DeleteFunc(d.inputs, func(n Node) bool { return n == src })
	}
	s.outputs = nil
}

// Connected reports whether src currently feeds dst.
func (g *Graph) Connected(src, dst Node) bool {
	return slices.Contains(src.base().outputs, dst)
}

// pull renders n for the current block, mixing its inputs first.
// Each node renders at most once per block; a cycle yields silence.
func (c *Context) pull(n Node, frames int) [][2]float64 {
	b := n.base()
	out := b.out[:frames]
	if b.block == c.block {
		return out
	}
	if b.visiting {
		clear(out)
		return out
	}

	b.visiting = true
	in := b.in[:frames]
	clear(in)
	for _, src := range b.inputs {
		s := c.pull(src, frames)
		for i := range in {
			in[i][0] += s[i][0]
			in[i][1] += s[i][1]
		}
	}

	n.process(c, in, out)
	b.visiting = false
	b.block = c.block

	return out
}
