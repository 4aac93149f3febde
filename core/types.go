// SPDX-License-Identifier: MIT
// Package: spanviz/core
//
// types.go — Node, Edge, Segment and sentinel errors.
//
// Contract:
//   • Node identity is its ID (index); SamePosition is a separate, position-only test.
//   • Edge endpoints are node IDs with U < V as enumerated by BuildComplete.
//   • Edge.Weight is fixed at construction time.

package core

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadPosition indicates a coordinate that is NaN or infinite.
	ErrBadPosition = errors.New("core: position is not finite")

	// ErrNodeID indicates a node ID that is negative or does not match its index.
	ErrNodeID = errors.New("core: node id does not match its index")

	// ErrNodeNotFound indicates an operation referenced a node ID outside the graph.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Node is a point placed on the canvas.
type Node struct {
	// ID is the stable index of the node. It is never reused within a node list.
	ID int

	// Pos is the position of the node in canvas coordinates.
	Pos r2.Vec
}

// NewNode validates the coordinates and returns a Node with the given ID.
func NewNode(id int, x, y float64) (Node, error) {
	if id < 0 {
		return Node{}, fmt.Errorf("NewNode(%d): %w", id, ErrNodeID)
	}
	if !finite(x) || !finite(y) {
		return Node{}, fmt.Errorf("NewNode(%d): (%v, %v): %w", id, x, y, ErrBadPosition)
	}

	return Node{ID: id, Pos: r2.Vec{X: x, Y: y}}, nil
}

// SamePosition reports whether n and o sit on the same coordinates.
// It ignores IDs: two different nodes can share a position.
func (n Node) SamePosition(o Node) bool {
	return n.Pos == o.Pos
}

// String renders the node as "#id(x,y)".
func (n Node) String() string {
	return fmt.Sprintf("#%d(%g,%g)", n.ID, n.Pos.X, n.Pos.Y)
}

// Edge joins two nodes of a complete graph.
//
// U and V are node IDs (U < V for edges produced by BuildComplete) and Weight is
// the Euclidean distance between their positions.
type Edge struct {
	U, V   int
	Weight float64
}

// newEdge computes the weight of the edge between a and b once.
func newEdge(a, b Node) Edge {
	return Edge{U: a.ID, V: b.ID, Weight: Distance(a.Pos, b.Pos)}
}

// Has reports whether id is one of the edge's endpoints.
func (e Edge) Has(id int) bool { return e.U == id || e.V == id }

// Other returns the endpoint opposite to id. If id is not an endpoint, -1 is returned.
func (e Edge) Other(id int) int {
	switch id {
	case e.U:
		return e.V
	case e.V:
		return e.U
	default:
		return -1
	}
}

// String renders the edge as "u-v(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%.3f)", e.U, e.V, e.Weight)
}

// Segment is an edge reduced to its endpoint positions, ready for drawing.
type Segment struct {
	A, B r2.Vec
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 { return Distance(s.A, s.B) }

// Distance returns the Euclidean distance between p and q.
func Distance(p, q r2.Vec) float64 {
	return r2.Norm(r2.Sub(p, q))
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
