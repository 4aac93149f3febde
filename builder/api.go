// SPDX-License-Identifier: MIT
// Package: spanviz/builder
//
// api.go — the Build orchestrator and the Constructor type.
//
// Contract:
//   • One orchestrator: Build(opts, cons...). Resolves config once, runs
//     constructors in order, concatenates their points.
//   • Determinism: equal options, seed and constructor order give equal output.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Constructor produces points from the resolved config. Constructors must
// validate their parameters, return sentinel errors and never panic.
type Constructor func(cfg config) ([]r2.Vec, error)

// Build resolves opts and applies every constructor in order, returning the
// concatenated points. The first error is wrapped with "Build: %w" and
// returned; no partial result is returned.
//
// Complexity: O(len(opts)) plus the sum of constructor costs.
func Build(opts []Option, cons ...Constructor) ([]r2.Vec, error) {
	cfg := newConfig(opts...)

	var out []r2.Vec
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		pts, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		out = append(out, pts...)
	}

	return out, nil
}
