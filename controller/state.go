package controller

import (
	"errors"

	"github.com/katalvlaran/spanviz/prim_kruskal"
)

// State is the lifecycle position of a Controller.
type State int

const (
	// Idle accepts nodes and waits for Start.
	Idle State = iota
	// Running owns a stepper and accepts Step calls.
	Running
	// Done holds a complete spanning tree until Reset or Clear.
	Done
)

// String returns "idle", "running" or "done".
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Precondition errors. Each rejected call leaves the Controller untouched.
var (
	// ErrNotIdle rejects AddNode, AddNodes and Start outside Idle.
	ErrNotIdle = errors.New("controller: operation requires idle state")

	// ErrNotRunning rejects Step outside Running, including after completion.
	ErrNotRunning = errors.New("controller: operation requires running state")

	// ErrTooFewNodes rejects Start with fewer than two nodes.
	ErrTooFewNodes = errors.New("controller: at least two nodes are required")
)

// Re-exported engine errors so callers need not import prim_kruskal to branch.
var (
	// ErrUnknownAlgorithm rejects Start with an algorithm other than Prim or Kruskal.
	ErrUnknownAlgorithm = prim_kruskal.ErrUnknownAlgorithm

	// ErrInvariant marks an internal-consistency failure inside a stepper.
	ErrInvariant = prim_kruskal.ErrInvariant
)
