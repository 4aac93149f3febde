// SPDX-License-Identifier: MIT
// Package: spanviz/builder
//
// impl_grid.go — Grid(rows, cols) lattice.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1.
//   • Row-major order; a single row or column is centred on its axis.
//   • Deterministic; no RNG needed.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor placing rows×cols points on an even lattice
// spanning the canvas minus margins.
func Grid(rows, cols int) Constructor {
	return func(cfg config) ([]r2.Vec, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: %dx%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewPoints)
		}
		lo, hi, err := cfg.area()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodGrid, err)
		}

		pts := make([]r2.Vec, 0, rows*cols)
		for r := 0; r < rows; r++ {
			y := lattice(lo.Y, hi.Y, r, rows)
			for c := 0; c < cols; c++ {
				pts = append(pts, r2.Vec{X: lattice(lo.X, hi.X, c, cols), Y: y})
			}
		}

		return pts, nil
	}
}

// lattice returns the i-th of n evenly spaced coordinates in [lo, hi].
func lattice(lo, hi float64, i, n int) float64 {
	if n == 1 {
		return (lo + hi) / 2
	}

	return lo + float64(i)*(hi-lo)/float64(n-1)
}
