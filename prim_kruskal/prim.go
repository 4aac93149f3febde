// Package prim_kruskal provides an incremental implementation of Prim's
// Minimum Spanning Tree algorithm: one accepted edge per Step.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/spanviz/core"
)

// PrimStepper grows a spanning tree outwards from a start node.
//
// The frontier is a lazy-deletion min-heap: when a node is visited, ALL of its
// incident edges are pushed, including edges whose other endpoint is already
// visited. Such stale edges are only detected and dropped when they reach the
// top of the heap. This changes how many pops a Step performs, never which
// edge it accepts.
type PrimStepper struct {
	g        *core.Graph
	cfg      stepperConfig
	frontier *edgePQ
	visited  []bool
	nVisited int
	result   []core.Edge
	seq      uint64 // push counter; breaks weight ties in push order
	pops     int
	dropped  int
}

// NewPrimStepper marks start visited and pushes every edge incident to it.
//
// Error Conditions:
//   - ErrInvalidGraph    : g is nil.
//   - ErrEmptyGraph      : g has no nodes.
//   - ErrStartOutOfRange : start is not a node ID of g.
//
// Complexity: O(n log n) for the initial pushes.
func NewPrimStepper(g *core.Graph, start int, opts ...StepperOption) (*PrimStepper, error) {
	// 1. Validate graph and start node.
	if g == nil {
		return nil, ErrInvalidGraph
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("NewPrimStepper: start=%d, n=%d: %w", start, n, ErrStartOutOfRange)
	}

	// 2. Initialize state; the frontier starts empty.
	s := &PrimStepper{
		g:        g,
		cfg:      newStepperConfig(opts),
		frontier: &edgePQ{},
		visited:  make([]bool, n),
		result:   make([]core.Edge, 0, n-1),
	}
	heap.Init(s.frontier)

	// 3. Visit the start node.
	if err := s.visit(start); err != nil {
		return nil, err
	}

	return s, nil
}

// Step pops the lightest frontier edge with at least one unvisited endpoint,
// accepts it and visits its new endpoint(s).
//
// Steps:
//  1. If every node is visited, return ErrComplete.
//  2. Pop until an edge touches an unvisited node; drop stale ones.
//     An empty frontier here is an invariant violation (ErrInvariant).
//  3. Append the edge; visit each unvisited endpoint, pushing all its edges.
//
// Complexity: amortized O(n log E) per call, O(E log E) over a whole run.
func (s *PrimStepper) Step() (core.Edge, error) {
	// 1. Completion guard.
	if s.Done() {
		return core.Edge{}, ErrComplete
	}

	// 2. Pop, skipping stale edges.
	var e core.Edge
	for {
		if s.frontier.Len() == 0 {
			return core.Edge{}, fmt.Errorf("prim: visited %d of %d: %w", s.nVisited, len(s.visited), ErrInvariant)
		}
		e = heap.Pop(s.frontier).(pqItem).edge
		s.pops++
		if !s.visited[e.U] || !s.visited[e.V] {
			break
		}
		s.dropped++
		s.cfg.onDiscard(e)
	}

	// 3. Accept and expand.
	s.result = append(s.result, e)
	s.cfg.onAccept(e)
	for _, id := range [2]int{e.U, e.V} {
		if s.visited[id] {
			continue
		}
		if err := s.visit(id); err != nil {
			return core.Edge{}, err
		}
	}

	return e, nil
}

// visit marks id visited and pushes every edge incident to it.
func (s *PrimStepper) visit(id int) error {
	s.visited[id] = true
	s.nVisited++
	incident, err := s.g.Incident(id)
	if err != nil {
		return err
	}
	for _, e := range incident {
		heap.Push(s.frontier, pqItem{edge: e, seq: s.seq})
		s.seq++
	}

	return nil
}

// Done reports whether every node is visited.
func (s *PrimStepper) Done() bool { return s.nVisited == len(s.visited) }

// Result returns a copy of the accepted edges.
func (s *PrimStepper) Result() []core.Edge { return append([]core.Edge(nil), s.result...) }

// Algorithm returns Prim.
func (s *PrimStepper) Algorithm() Algorithm { return Prim }

// Visited returns the number of visited nodes.
func (s *PrimStepper) Visited() int { return s.nVisited }

// FrontierLen returns the number of edges waiting in the frontier, stale ones included.
func (s *PrimStepper) FrontierLen() int { return s.frontier.Len() }

// Stats reports progress. Prim's tree is a single component, so Components is
// the tree plus every still-unvisited node.
func (s *PrimStepper) Stats() Stats {
	n := len(s.visited)
	return Stats{
		Accepted:   len(s.result),
		Discarded:  s.dropped,
		Pops:       s.pops,
		Visited:    s.nVisited,
		Components: 1 + n - s.nVisited,
		Nodes:      n,
	}
}

// pqItem is a frontier entry. seq records push order so that equal weights
// pop first-in, first-out.
type pqItem struct {
	edge core.Edge
	seq  uint64
}

// edgePQ implements heap.Interface for a min-heap of pqItem, ordered by
// edge.Weight then seq.
type edgePQ []pqItem

// Len returns the number of edges in the priority queue.
// Complexity: O(1).
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by ascending weight, then by push order.
// Complexity: O(1).
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps elements at indices i and j.
// Complexity: O(1).
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new pqItem to the heap.
// Called by heap.Push. Complexity: O(log N) amortized.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

// Pop removes and returns the last element after heap adjustments.
// Called by heap.Pop. Complexity: O(log N) amortized.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
