// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"slices"

	"github.com/ik5/audsound/engine"
)

// chain lists the nodes to wire, in signal order, ending at the
// destination. Effects owned by another context are left out.
func (s *Sound) chain() []engine.Node {
	nodes := make([]engine.Node, 0, len(s.effects)+5)
	if s.source != nil {
		nodes = append(nodes, s.source)
	}
	for _, n := range s.effects {
		if n.Context() != s.ctx {
			s.log.Warn("skipping effect from another context", "node", n.ID(), "kind", n.Kind())
			continue
		}
		nodes = append(nodes, n)
	}
	return append(nodes, s.panner, s.stereo, s.gain, s.ctx.Destination())
}

// UnlinkNodes disconnects every node the sound wired, nearest the
// destination first. Calling it again without a link in between does
// nothing.
func (s *Sound) UnlinkNodes() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx.Update(s.unlink)
}

// LinkNodes rewires the whole chain from scratch.
func (s *Sound) LinkNodes() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.linkNodes()
}

func (s *Sound) linkNodes() {
	s.ctx.Update(func(g *engine.Graph) {
		s.unlink(g)

		nodes := s.chain()
		for i, n := range nodes[:len(nodes)-1] {
			if err := g.Connect(n, nodes[i+1]); err != nil {
				s.log.Error("connecting nodes", "src", n.Kind(), "dst", nodes[i+1].Kind(), "error", err)
				break
			}
			s.connected = append(s.connected, n)
		}
	})

	s.log.Debug("relinked sound graph", "nodes", len(s.connected), "effects", len(s.effects), "source", s.source != nil)
}

func (s *Sound) unlink(g *engine.Graph) {
	for _, n := range slices.Backward(s.connected) {
		g.Disconnect(n)
	}
	s.connected = nil
}

// PushNode inserts n next to the source, so the most recently pushed
// effect processes the raw signal first. The chain is rewired.
func (s *Sound) PushNode(n engine.Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.Context() != s.ctx {
		return engine.ErrContextMismatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.effects = slices.Insert(s.effects, 0, n)
	s.linkNodes()
	return nil
}

// PopNode removes and returns the effect nearest the main chain, or nil
// when there are no effects. The chain is rewired either way.
func (s *Sound) PopNode() engine.Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n engine.Node
	if last := len(s.effects) - 1; last >= 0 {
		n = s.effects[last]
		s.effects = s.effects[:last]
	}
	s.linkNodes()
	return n
}

// RemoveNode takes n out of the effect chain wherever it sits.
func (s *Sound) RemoveNode(n engine.Node) (engine.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.Index(s.effects, n)
	if n == nil || idx < 0 {
		return nil, ErrNodeNotFound
	}

	s.effects = slices.Delete(s.effects, idx, idx+1)
	s.linkNodes()
	return n, nil
}

// Effects returns the effect chain, nearest the source first.
func (s *Sound) Effects() []engine.Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.effects)
}

// ConnectedNodes returns the nodes currently wired by the sound, in
// connection order. The destination is not included.
func (s *Sound) ConnectedNodes() []engine.Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.connected)
}
