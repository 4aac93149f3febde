// Package prim_kruskal provides an incremental implementation of Kruskal's
// Minimum Spanning Tree algorithm: one accepted edge per Step.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/unionfind"
)

// KruskalStepper consumes the graph's edges in ascending weight order and
// accepts every edge that joins two different components.
type KruskalStepper struct {
	cfg     stepperConfig
	sorted  []core.Edge // remaining candidates, lightest first
	next    int         // index of the next candidate in sorted
	uf      *unionfind.UnionFind
	touched []bool
	nTouch  int
	result  []core.Edge
	dropped int
}

// NewKruskalStepper sorts all edges once and creates a fresh union-find.
//
// Error Conditions:
//   - ErrInvalidGraph : g is nil.
//   - ErrEmptyGraph   : g has no nodes.
//
// Steps:
//  1. Validate the graph.
//  2. Copy edges (enumeration order) and sort with sort.SliceStable so that
//     equal weights keep enumeration order.
//  3. Create unionfind.New(n).
//
// Complexity: O(E log E) time, O(E + n) memory.
func NewKruskalStepper(g *core.Graph, opts ...StepperOption) (*KruskalStepper, error) {
	// 1. Validate.
	if g == nil {
		return nil, ErrInvalidGraph
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	// 2. Stable sort by weight.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Fresh disjoint sets.
	return &KruskalStepper{
		cfg:     newStepperConfig(opts),
		sorted:  edges,
		uf:      unionfind.New(n),
		touched: make([]bool, n),
		result:  make([]core.Edge, 0, n-1),
	}, nil
}

// Step removes candidates until one joins two components, then accepts it.
//
// Steps:
//  1. If the union-find has a single group, return ErrComplete.
//  2. Take the next candidate; if its endpoints are connected, drop it and
//     continue. Running out of candidates is ErrInvariant.
//  3. Append the edge and Union(u, v).
//
// Complexity: O(n) per accepted edge (linear-scan union) plus O(1) per drop.
func (s *KruskalStepper) Step() (core.Edge, error) {
	// 1. Completion guard.
	if s.Done() {
		return core.Edge{}, ErrComplete
	}

	for {
		// 2. Next candidate.
		if s.next >= len(s.sorted) {
			return core.Edge{}, fmt.Errorf("kruskal: %d components left: %w", s.uf.Count(), ErrInvariant)
		}
		e := s.sorted[s.next]
		s.next++

		same, err := s.uf.Connected(e.U, e.V)
		if err != nil {
			return core.Edge{}, err
		}
		if same {
			s.dropped++
			s.cfg.onDiscard(e)
			continue
		}

		// 3. Accept.
		if err := s.uf.Union(e.U, e.V); err != nil {
			return core.Edge{}, err
		}
		s.result = append(s.result, e)
		s.touch(e.U)
		s.touch(e.V)
		s.cfg.onAccept(e)

		return e, nil
	}
}

func (s *KruskalStepper) touch(id int) {
	if !s.touched[id] {
		s.touched[id] = true
		s.nTouch++
	}
}

// Done reports whether the union-find holds a single component.
func (s *KruskalStepper) Done() bool { return s.uf.Count() <= 1 }

// Result returns a copy of the accepted edges.
func (s *KruskalStepper) Result() []core.Edge { return append([]core.Edge(nil), s.result...) }

// Algorithm returns Kruskal.
func (s *KruskalStepper) Algorithm() Algorithm { return Kruskal }

// Components returns the current union-find group count.
func (s *KruskalStepper) Components() int { return s.uf.Count() }

// Remaining returns how many sorted candidates have not been examined yet.
func (s *KruskalStepper) Remaining() int { return len(s.sorted) - s.next }

// Stats reports progress. Visited counts nodes touched by at least one
// accepted edge.
func (s *KruskalStepper) Stats() Stats {
	return Stats{
		Accepted:   len(s.result),
		Discarded:  s.dropped,
		Pops:       s.next,
		Visited:    s.nTouch,
		Components: s.uf.Count(),
		Nodes:      s.uf.Len(),
	}
}
