// Package prim_kruskal provides two incremental Minimum Spanning Tree (MST)
// algorithms over a complete Euclidean *core.Graph: Prim's and Kruskal's.
//
// What & Why
//
//   - What is an MST?
//     Given a connected, weighted, undirected graph G = (V, E), an MST is a subset T ⊆ E that
//     connects every vertex, has no cycle, and minimizes the sum of edge weights.
//
//   - Why stepping?
//     Each algorithm is exposed as a Stepper that accepts exactly one tree edge per Step call
//     and keeps its progress in between. A caller can draw the partial tree after every call,
//     pause, or abandon the run at any point without cooperation from the stepper.
//
// Algorithms Provided
//
//   - NewPrimStepper(g *core.Graph, start int) (*PrimStepper, error)
//
//   - Strategy: Grow a single tree from start. Every newly visited node pushes ALL its incident
//     edges onto a min-heap. A popped edge whose endpoints are both visited is stale and is
//     dropped at pop time (lazy deletion), never filtered at push time.
//
//   - Determinism: equal weights pop in push order.
//
//   - Complexity: O(E log E) time, O(E) heap memory over a full run.
//
//   - NewKruskalStepper(g *core.Graph) (*KruskalStepper, error)
//
//   - Strategy: Stable-sort all edges once. Each Step walks the sorted list, dropping edges whose
//     endpoints are already connected, and accepts the first one that is not, merging the two
//     components in a linear-scan union-find (package unionfind).
//
//   - Determinism: sort.SliceStable keeps pair-enumeration order among equal weights.
//
//   - Complexity: O(E log E) sort + O(V) per accepted edge for the union.
//
// Completion
//
//	Prim is done when every node is visited; Kruskal when the union-find holds one group.
//	Both produce exactly n-1 edges for n ≥ 1 nodes. Step after completion returns ErrComplete.
//
// Errors
//
//	ErrInvalidGraph, ErrEmptyGraph and ErrStartOutOfRange are construction errors.
//	ErrInvariant reports candidate exhaustion before completion, which a complete graph
//	cannot produce; treat it as a bug.
//
// One-shot helpers PrimMST, KruskalMST and Compute drive a stepper to completion.
package prim_kruskal
