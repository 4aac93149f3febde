// Package controller owns one MST run at a time and exposes it to a renderer.
//
// A Controller is a three-state machine:
//
//	Idle ──Start──▶ Running ──Step (tree complete)──▶ Done
//	  ▲                │                                 │
//	  └─────Reset──────┴──────────────Reset──────────────┘
//
// Nodes are added while Idle. Start builds the complete graph and the chosen
// stepper; Step advances it by exactly one edge. The Controller never
// schedules anything itself: whoever drives it decides the pace.
//
// All methods are safe for concurrent use; calls are serialized by a mutex,
// so two Steps can never overlap.
package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/prim_kruskal"
)

const tracerName = "github.com/katalvlaran/spanviz/controller"

// Controller holds the node list and, while a run is active, the graph
// snapshot, the stepper and the accepted edges.
type Controller struct {
	mu sync.Mutex

	logger      *slog.Logger
	tracer      trace.Tracer
	pickStart   func(n int) int
	stepperOpts []prim_kruskal.StepperOption

	nodes []core.Node
	state State

	// run state, rebuilt by Start and discarded by Reset
	runID   string
	algo    prim_kruskal.Algorithm
	start   int
	graph   *core.Graph
	stepper prim_kruskal.Stepper
	result  []core.Edge
	runCtx  context.Context
	runSpan trace.Span
}

// StepResult describes the outcome of one successful Step.
type StepResult struct {
	Edge    core.Edge
	Segment core.Segment
	Index   int  // 1-based position of Edge in the result
	Done    bool // the tree is complete after this step
	State   State
}

// New returns an Idle Controller with no nodes.
//
// Defaults: a discarding logger, the global OpenTelemetry tracer, and Prim
// starting from node 0.
func New(opts ...Option) *Controller {
	c := &Controller{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:    otel.Tracer(tracerName),
		pickStart: func(int) int { return 0 },
		state:     Idle,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// AddNode appends a node at (x, y) with the next sequential ID.
func (c *Controller) AddNode(x, y float64) (core.Node, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Idle {
		return core.Node{}, fmt.Errorf("AddNode in %s: %w", c.state, ErrNotIdle)
	}

	return c.addNode(x, y)
}

// AddNodes appends every point in order. It is all-or-nothing: if any point
// is rejected, no node is added.
func (c *Controller) AddNodes(points []r2.Vec) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Idle {
		return fmt.Errorf("AddNodes in %s: %w", c.state, ErrNotIdle)
	}

	return c.addPoints(points)
}

func (c *Controller) addNode(x, y float64) (core.Node, error) {
	n, err := core.NewNode(len(c.nodes), x, y)
	if err != nil {
		return core.Node{}, err
	}
	c.nodes = append(c.nodes, n)

	return n, nil
}

func (c *Controller) addPoints(points []r2.Vec) error {
	mark := len(c.nodes)
	for _, p := range points {
		if _, err := c.addNode(p.X, p.Y); err != nil {
			c.nodes = c.nodes[:mark]
			return err
		}
	}

	return nil
}

// Start builds the complete graph over the current nodes, creates the stepper
// for algo and moves to Running.
//
// Error Conditions:
//   - ErrNotIdle          : not in Idle.
//   - ErrTooFewNodes      : fewer than two nodes.
//   - ErrUnknownAlgorithm : algo is neither Prim nor Kruskal.
func (c *Controller) Start(algo prim_kruskal.Algorithm) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.startLocked(algo)
}

// StartWith replaces the node list with points and then behaves like Start.
// On error the previous node list is kept.
func (c *Controller) StartWith(algo prim_kruskal.Algorithm, points []r2.Vec) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Idle {
		return fmt.Errorf("StartWith in %s: %w", c.state, ErrNotIdle)
	}
	prev := c.nodes
	c.nodes = nil
	if err := c.addPoints(points); err != nil {
		c.nodes = prev
		return err
	}
	if err := c.startLocked(algo); err != nil {
		c.nodes = prev
		return err
	}

	return nil
}

func (c *Controller) startLocked(algo prim_kruskal.Algorithm) error {
	// 1. Preconditions.
	if c.state != Idle {
		return fmt.Errorf("Start in %s: %w", c.state, ErrNotIdle)
	}
	if len(c.nodes) < 2 {
		return fmt.Errorf("Start with %d node(s): %w", len(c.nodes), ErrTooFewNodes)
	}

	// 2. Build the graph snapshot and the stepper.
	g, err := core.BuildComplete(c.nodes)
	if err != nil {
		return err
	}
	start := 0
	if algo == prim_kruskal.Prim {
		start = c.pickStart(len(c.nodes))
	}
	stepper, err := prim_kruskal.NewStepper(g, prim_kruskal.MSTOptions{Algorithm: algo, Start: start}, c.stepperOpts...)
	if err != nil {
		return fmt.Errorf("Start: %w", err)
	}

	// 3. Commit.
	c.runID = uuid.NewString()
	c.algo = algo
	c.start = start
	c.graph = g
	c.stepper = stepper
	c.result = make([]core.Edge, 0, len(c.nodes)-1)
	c.runCtx, c.runSpan = c.tracer.Start(context.Background(), "mst.run",
		trace.WithAttributes(
			attribute.String("mst.run_id", c.runID),
			attribute.String("mst.algorithm", string(algo)),
			attribute.Int("mst.nodes", len(c.nodes)),
			attribute.Int("mst.edges", g.EdgeCount()),
		))
	c.state = Running

	c.logger.Info("run started",
		slog.String("run_id", c.runID),
		slog.String("algorithm", string(algo)),
		slog.Int("nodes", len(c.nodes)),
		slog.Int("start", start))

	return nil
}

// Step advances the active stepper by one edge. When the tree becomes
// complete the Controller moves to Done.
//
// A failed Step leaves the state unchanged. ErrNotRunning is returned outside
// Running; an ErrInvariant failure from the stepper is logged at error level
// and returned.
func (c *Controller) Step() (StepResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Running {
		return StepResult{State: c.state}, fmt.Errorf("Step in %s: %w", c.state, ErrNotRunning)
	}

	_, span := c.tracer.Start(c.runCtx, "mst.step")
	defer span.End()

	e, err := c.stepper.Step()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, ErrInvariant) {
			c.logger.Error("spanning tree invariant violated",
				slog.String("run_id", c.runID),
				slog.String("algorithm", string(c.algo)),
				slog.Int("accepted", len(c.result)),
				slog.Any("error", err))
		}
		return StepResult{State: c.state}, err
	}

	c.result = append(c.result, e)
	res := StepResult{
		Edge:    e,
		Segment: c.graph.Segment(e),
		Index:   len(c.result),
	}
	span.SetAttributes(
		attribute.Int("mst.edge.u", e.U),
		attribute.Int("mst.edge.v", e.V),
		attribute.Float64("mst.edge.weight", e.Weight),
		attribute.Int("mst.accepted", res.Index),
	)
	c.logger.Debug("edge accepted",
		slog.String("run_id", c.runID),
		slog.Int("u", e.U),
		slog.Int("v", e.V),
		slog.Float64("weight", e.Weight),
		slog.Int("index", res.Index))

	if c.stepper.Done() {
		c.state = Done
		total := core.TotalWeight(c.result)
		c.runSpan.SetAttributes(attribute.Float64("mst.total_weight", total))
		c.endRun("complete")
		c.logger.Info("run complete",
			slog.String("run_id", c.runID),
			slog.String("algorithm", string(c.algo)),
			slog.Int("edges", len(c.result)),
			slog.Float64("total_weight", total))
	}
	res.Done = c.state == Done
	res.State = c.state

	return res, nil
}

// Reset discards the graph, the stepper and the result and returns to Idle.
// Nodes are kept. Valid from any state.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetLocked()
}

// Clear resets and also drops every node.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetLocked()
	c.nodes = nil
}

func (c *Controller) resetLocked() {
	if c.state != Idle {
		c.logger.Info("run reset",
			slog.String("run_id", c.runID),
			slog.String("from", c.state.String()),
			slog.Int("accepted", len(c.result)))
	}
	if c.runSpan != nil {
		c.endRun("reset")
	}
	c.runID = ""
	c.algo = ""
	c.start = 0
	c.graph = nil
	c.stepper = nil
	c.result = nil
	c.state = Idle
}

// endRun closes the run span with an outcome attribute.
func (c *Controller) endRun(outcome string) {
	c.runSpan.SetAttributes(attribute.String("mst.outcome", outcome))
	c.runSpan.End()
	c.runSpan = nil
	c.runCtx = nil
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Done reports whether the current run has a complete tree.
func (c *Controller) Done() bool { return c.State() == Done }

// Nodes returns a copy of the node list.
func (c *Controller) Nodes() []core.Node {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]core.Node(nil), c.nodes...)
}

// NodeCount returns the number of nodes.
func (c *Controller) NodeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.nodes)
}

// Result returns a copy of the accepted edges in acceptance order.
func (c *Controller) Result() []core.Edge {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]core.Edge(nil), c.result...)
}

// Segments returns the accepted edges reduced to endpoint positions.
func (c *Controller) Segments() []core.Segment {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.graph == nil {
		return nil
	}

	return c.graph.Segments(c.result)
}
