// Package core defines the Node, Edge, Segment and Graph types that the
// spanning-tree steppers operate on.
//
// A Graph is always the complete Euclidean graph over a list of 2-D points:
// every unordered pair of distinct nodes is joined by exactly one Edge whose
// Weight is the Euclidean distance between the two positions. Weights are
// computed once, when the graph is built, and never recomputed.
//
// Identity vs. position:
//
//   - Node.ID is the identity. It is the node's index in the list the graph
//     was built from, it is assigned once and never reused.
//   - Node.SamePosition compares coordinates only. Two distinct nodes may sit
//     on the same point; they are still two nodes joined by a zero-weight edge.
//
// Determinism:
//
//	Edges are enumerated in pair order (i=0..n-2, j=i+1..n-1). Edges() and
//	Incident(id) both preserve that order, which is what makes tie-breaking
//	between equal-weight edges reproducible in the steppers.
//
// Complexity:
//
//	BuildComplete is O(n²) in time and in produced edges. All accessors are
//	O(1) or O(k) in the size of the returned slice.
//
// A Graph is immutable once built and safe to share between goroutines.
package core
