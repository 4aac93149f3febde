// SPDX-License-Identifier: MIT
// Package: spanviz/core
//
// graph.go — the complete Euclidean graph and its read-only accessors.
//
// Determinism:
//   • edges are stored in pair-enumeration order (i<j, lexicographic).
//   • incident[id] lists edge indices touching id, in the same order.

package core

import "fmt"

// Graph is the complete graph over a fixed node list.
// It is built once by BuildComplete and never mutated afterwards.
type Graph struct {
	nodes    []Node
	edges    []Edge
	incident [][]int // node ID → indices into edges
}

// BuildComplete constructs one Edge for every unordered pair of distinct nodes.
//
// Requirements:
//   - nodes[i].ID == i for every i (ErrNodeID otherwise).
//   - every position is finite (ErrBadPosition otherwise).
//
// Zero or one node is valid and yields a graph with no edges.
//
// Complexity: O(n²) time and memory.
func BuildComplete(nodes []Node) (*Graph, error) {
	n := len(nodes)
	for i, nd := range nodes {
		if nd.ID != i {
			return nil, fmt.Errorf("BuildComplete: nodes[%d].ID=%d: %w", i, nd.ID, ErrNodeID)
		}
		if !finite(nd.Pos.X) || !finite(nd.Pos.Y) {
			return nil, fmt.Errorf("BuildComplete: node %d: %w", i, ErrBadPosition)
		}
	}

	g := &Graph{
		nodes:    append([]Node(nil), nodes...),
		incident: make([][]int, n),
	}
	if n > 1 {
		g.edges = make([]Edge, 0, n*(n-1)/2)
	}
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			idx := len(g.edges)
			g.edges = append(g.edges, newEdge(g.nodes[i], g.nodes[j]))
			g.incident[i] = append(g.incident[i], idx)
			g.incident[j] = append(g.incident[j], idx)
		}
	}

	return g, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges, n(n-1)/2.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the node with the given ID.
func (g *Graph) Node(id int) (Node, error) {
	if id < 0 || id >= len(g.nodes) {
		return Node{}, fmt.Errorf("Node(%d): %w", id, ErrNodeNotFound)
	}

	return g.nodes[id], nil
}

// Nodes returns a copy of the node list.
func (g *Graph) Nodes() []Node {
	return append([]Node(nil), g.nodes...)
}

// Edges returns a copy of all edges in enumeration order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Incident returns a copy of the edges touching id, in enumeration order.
func (g *Graph) Incident(id int) ([]Edge, error) {
	if id < 0 || id >= len(g.nodes) {
		return nil, fmt.Errorf("Incident(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]Edge, len(g.incident[id]))
	for k, idx := range g.incident[id] {
		out[k] = g.edges[idx]
	}

	return out, nil
}

// Segment maps an edge of this graph to its endpoint positions.
// Endpoints outside the graph yield a zero Segment.
func (g *Graph) Segment(e Edge) Segment {
	if e.U < 0 || e.U >= len(g.nodes) || e.V < 0 || e.V >= len(g.nodes) {
		return Segment{}
	}

	return Segment{A: g.nodes[e.U].Pos, B: g.nodes[e.V].Pos}
}

// Segments maps every edge to its Segment, preserving order.
func (g *Graph) Segments(edges []Edge) []Segment {
	out := make([]Segment, len(edges))
	for i, e := range edges {
		out[i] = g.Segment(e)
	}

	return out
}
