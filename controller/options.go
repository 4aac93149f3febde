package controller

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/spanviz/prim_kruskal"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("controller: WithLogger(nil)")
	}
	return func(c *Controller) { c.logger = l }
}

// WithTracer sets the tracer used for run and step spans. Panics on nil.
func WithTracer(t trace.Tracer) Option {
	if t == nil {
		panic("controller: WithTracer(nil)")
	}
	return func(c *Controller) { c.tracer = t }
}

// WithStartPicker sets how Prim's start node is chosen. fn receives the node
// count and must return an index in [0, n). Panics on nil.
func WithStartPicker(fn func(n int) int) Option {
	if fn == nil {
		panic("controller: WithStartPicker(nil)")
	}
	return func(c *Controller) { c.pickStart = fn }
}

// WithRandomStart picks Prim's start node uniformly from r. Panics on nil.
func WithRandomStart(r *rand.Rand) Option {
	if r == nil {
		panic("controller: WithRandomStart(nil)")
	}
	return WithStartPicker(func(n int) int { return r.Intn(n) })
}

// WithStepperOptions forwards hooks to every stepper the Controller creates.
func WithStepperOptions(opts ...prim_kruskal.StepperOption) Option {
	return func(c *Controller) { c.stepperOpts = append(c.stepperOpts, opts...) }
}
