package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/prim_kruskal"
)

// points builds a complete graph from (x,y) pairs, ignoring errors for brevity.
func points(xy ...float64) *core.Graph {
	nodes := make([]core.Node, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		n, _ := core.NewNode(i/2, xy[i], xy[i+1])
		nodes = append(nodes, n)
	}
	g, _ := core.BuildComplete(nodes)

	return g
}

// ExampleKruskalStepper_Step steps Kruskal's algorithm over the right triangle
// (0,0), (10,0), (10,10). The two weight-10 edges win in enumeration order and
// the diagonal is never needed.
func ExampleKruskalStepper_Step() {
	g := points(0, 0, 10, 0, 10, 10)
	s, err := prim_kruskal.NewKruskalStepper(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for !s.Done() {
		e, _ := s.Step()
		fmt.Printf("accept %d-%d w=%.0f components=%d\n", e.U, e.V, e.Weight, s.Components())
	}
	// Output:
	// accept 0-1 w=10 components=2
	// accept 1-2 w=10 components=1
}

// ExamplePrimStepper_Step grows a tree from node 0 over four collinear points:
// (0,0), (1,0), (2,0), (3,0). Each step reaches one new node; the stale
// copies of already-accepted edges are dropped on later pops.
func ExamplePrimStepper_Step() {
	g := points(0, 0, 1, 0, 2, 0, 3, 0)
	s, err := prim_kruskal.NewPrimStepper(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for !s.Done() {
		e, _ := s.Step()
		fmt.Printf("accept %d-%d visited=%d\n", e.U, e.V, s.Visited())
	}
	fmt.Printf("stale edges dropped: %d\n", s.Stats().Discarded)
	// Output:
	// accept 0-1 visited=2
	// accept 1-2 visited=3
	// accept 2-3 visited=4
	// stale edges dropped: 2
}

// ExampleCompute runs both algorithms to completion on a house-shaped layout.
// Equal weights occur, but the MST weight is unique.
func ExampleCompute() {
	g := points(0, 0, 4, 0, 4, 3, 0, 3, 2, 6)

	_, kTotal, _ := prim_kruskal.Compute(g)
	_, pTotal, _ := prim_kruskal.Compute(g, prim_kruskal.WithAlgorithm(prim_kruskal.Prim), prim_kruskal.WithStart(4))
	fmt.Printf("Kruskal: %.3f, Prim: %.3f\n", kTotal, pTotal)
	// Output: Kruskal: 13.211, Prim: 13.211
}
