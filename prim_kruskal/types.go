// Package prim_kruskal defines the Stepper contract, configuration options and
// sentinel errors shared by the Prim and Kruskal steppers.
package prim_kruskal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/spanviz/core"
)

// ErrInvalidGraph indicates that a stepper was given a nil graph.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrEmptyGraph indicates a graph with no nodes: there is nothing to span.
var ErrEmptyGraph = errors.New("prim_kruskal: graph has no nodes")

// ErrStartOutOfRange indicates a Prim start node that is not in the graph.
var ErrStartOutOfRange = errors.New("prim_kruskal: start node out of range")

// ErrUnknownAlgorithm indicates an algorithm name other than prim or kruskal.
var ErrUnknownAlgorithm = errors.New("prim_kruskal: unknown algorithm")

// ErrComplete is returned by Step once the spanning tree is complete.
var ErrComplete = errors.New("prim_kruskal: spanning tree already complete")

// ErrInvariant indicates that the frontier or the sorted edge list ran dry
// before the tree spanned every node. On a complete graph this cannot happen;
// seeing it means a bug, not a bad input.
var ErrInvariant = errors.New("prim_kruskal: candidate edges exhausted before tree complete")

// Algorithm names an MST algorithm.
type Algorithm string

const (
	// Prim grows one tree from a start node using a lazy min-heap frontier.
	Prim Algorithm = "prim"

	// Kruskal consumes globally sorted edges and merges components with union-find.
	Kruskal Algorithm = "kruskal"
)

// String returns the display name, e.g. "Prim's".
func (a Algorithm) String() string {
	switch a {
	case Prim:
		return "Prim's"
	case Kruskal:
		return "Kruskal's"
	default:
		return string(a)
	}
}

// ParseAlgorithm accepts "prim", "prims", "prim's", "kruskal", "kruskals" and
// "kruskal's" in any case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prim", "prims", "prim's":
		return Prim, nil
	case "kruskal", "kruskals", "kruskal's":
		return Kruskal, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownAlgorithm)
	}
}

// Stepper advances a spanning-tree algorithm by exactly one accepted edge per
// Step call and keeps its progress between calls.
type Stepper interface {
	// Step accepts and returns the next tree edge. It returns ErrComplete once
	// Done is true and ErrInvariant if candidates run out early.
	Step() (core.Edge, error)

	// Done reports whether the accepted edges span every node.
	Done() bool

	// Result returns a copy of the accepted edges in acceptance order.
	Result() []core.Edge

	// Algorithm identifies the stepper.
	Algorithm() Algorithm

	// Stats returns the current progress counters.
	Stats() Stats
}

// Stats exposes stepper progress to renderers.
type Stats struct {
	Accepted   int // edges in the result
	Discarded  int // stale (Prim) or cycle-forming (Kruskal) edges dropped
	Pops       int // candidate removals, accepted and discarded
	Visited    int // Prim: visited node count; Kruskal: nodes touched by the result
	Components int // connected components formed by the result so far
	Nodes      int // node count of the graph
}

// StepperOption configures hooks on a stepper.
type StepperOption func(*stepperConfig)

type stepperConfig struct {
	onAccept  func(core.Edge)
	onDiscard func(core.Edge)
}

// WithOnAccept registers fn to be called with every accepted edge.
// Panics on nil.
func WithOnAccept(fn func(core.Edge)) StepperOption {
	if fn == nil {
		panic("prim_kruskal: WithOnAccept(nil)")
	}
	return func(c *stepperConfig) { c.onAccept = fn }
}

// WithOnDiscard registers fn to be called with every discarded candidate.
// Panics on nil.
func WithOnDiscard(fn func(core.Edge)) StepperOption {
	if fn == nil {
		panic("prim_kruskal: WithOnDiscard(nil)")
	}
	return func(c *stepperConfig) { c.onDiscard = fn }
}

func newStepperConfig(opts []StepperOption) stepperConfig {
	cfg := stepperConfig{
		onAccept:  func(core.Edge) {},
		onDiscard: func(core.Edge) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// MSTOptions selects the algorithm and, for Prim, the start node.
//
// Fields:
//
//	Algorithm — Prim or Kruskal.
//	Start     — start node for Prim; ignored by Kruskal.
type MSTOptions struct {
	Algorithm Algorithm
	Start     int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithAlgorithm sets the algorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *MSTOptions) { o.Algorithm = a }
}

// WithStart sets Prim's start node.
func WithStart(start int) Option {
	return func(o *MSTOptions) { o.Start = start }
}

// DefaultOptions returns Kruskal with Start = 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{Algorithm: Kruskal, Start: 0}
}

// NewStepper builds the stepper selected by opts over g.
func NewStepper(g *core.Graph, opts MSTOptions, sopts ...StepperOption) (Stepper, error) {
	switch opts.Algorithm {
	case Prim:
		return NewPrimStepper(g, opts.Start, sopts...)
	case Kruskal:
		return NewKruskalStepper(g, sopts...)
	default:
		return nil, fmt.Errorf("NewStepper(%q): %w", opts.Algorithm, ErrUnknownAlgorithm)
	}
}

// Compute runs the selected algorithm to completion and returns the tree and
// its total weight. A graph with a single node yields an empty tree.
//
// Note: PrimMST and KruskalMST can still be called directly.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s, err := NewStepper(g, o)
	if err != nil {
		return nil, 0, err
	}

	return run(s)
}

// PrimMST computes the MST of g by growing a tree from start.
func PrimMST(g *core.Graph, start int) ([]core.Edge, float64, error) {
	s, err := NewPrimStepper(g, start)
	if err != nil {
		return nil, 0, err
	}

	return run(s)
}

// KruskalMST computes the MST of g from globally sorted edges.
func KruskalMST(g *core.Graph) ([]core.Edge, float64, error) {
	s, err := NewKruskalStepper(g)
	if err != nil {
		return nil, 0, err
	}

	return run(s)
}

// run drives s until Done.
func run(s Stepper) ([]core.Edge, float64, error) {
	for !s.Done() {
		if _, err := s.Step(); err != nil {
			return nil, 0, err
		}
	}
	tree := s.Result()

	return tree, core.TotalWeight(tree), nil
}
