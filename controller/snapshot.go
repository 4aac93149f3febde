package controller

import (
	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/prim_kruskal"
)

// Snapshot is a consistent, copied view of the Controller for renderers.
type Snapshot struct {
	RunID       string
	State       State
	Algorithm   prim_kruskal.Algorithm
	Start       int // Prim's start node; 0 for Kruskal
	Nodes       []core.Node
	Edges       []core.Edge
	Segments    []core.Segment
	TotalWeight float64
	Stats       prim_kruskal.Stats

	// Visited is Prim's visited-node count; Components is Kruskal's union-find
	// group count. Both are filled for either algorithm and equal the idle
	// defaults (0 and node count) when no run is active.
	Visited    int
	Components int
}

// Done reports whether the snapshot holds a complete tree.
func (s Snapshot) Done() bool { return s.State == Done }

// Expected returns the number of edges a complete tree over the nodes has.
func (s Snapshot) Expected() int {
	if len(s.Nodes) == 0 {
		return 0
	}

	return len(s.Nodes) - 1
}

// Snapshot copies the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		RunID:      c.runID,
		State:      c.state,
		Algorithm:  c.algo,
		Start:      c.start,
		Nodes:      append([]core.Node(nil), c.nodes...),
		Edges:      append([]core.Edge(nil), c.result...),
		Components: len(c.nodes),
	}
	if c.stepper != nil {
		snap.Stats = c.stepper.Stats()
		snap.Visited = snap.Stats.Visited
		snap.Components = snap.Stats.Components
		snap.Segments = c.graph.Segments(c.result)
		snap.TotalWeight = core.TotalWeight(c.result)
	}

	return snap
}
