// SPDX-License-Identifier: MIT
// Package: spanviz/builder
//
// impl_noise.go — NoiseField: clustered points from OpenSimplex noise.
//
// Contract:
//   • n ≥ 1, scale > 0, threshold in [-1, 1).
//   • Candidates are drawn uniformly and kept when the noise value at
//     (x·scale, y·scale) is ≥ threshold.
//   • At most n·maxNoiseAttempts candidates are drawn; running out returns
//     ErrConstructFailed.
//   • The noise seed is drawn from cfg.rng, so one seed fixes both.

package builder

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	methodNoiseField = "NoiseField"
	maxNoiseAttempts = 200
)

// NoiseField returns a Constructor placing n points in the regions where
// OpenSimplex noise exceeds threshold. Higher thresholds give tighter
// clusters; smaller scales give larger blobs.
func NoiseField(n int, scale, threshold float64) Constructor {
	return func(cfg config) ([]r2.Vec, error) {
		// 1. Validate.
		if n < minRandomPoints {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodNoiseField, n, minRandomPoints, ErrTooFewPoints)
		}
		if !(scale > 0) || !(threshold >= -1 && threshold < 1) {
			return nil, fmt.Errorf("%s: scale=%g threshold=%g: %w", methodNoiseField, scale, threshold, ErrBadBounds)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodNoiseField, ErrNeedRandSource)
		}
		lo, hi, err := cfg.area()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodNoiseField, err)
		}

		// 2. Rejection sampling.
		noise := opensimplex.New(cfg.rng.Int63())
		pts := make([]r2.Vec, 0, n)
		for attempts := n * maxNoiseAttempts; attempts > 0 && len(pts) < n; attempts-- {
			p := cfg.uniform(lo, hi)
			if noise.Eval2(p.X*scale, p.Y*scale) >= threshold {
				pts = append(pts, p)
			}
		}
		if len(pts) < n {
			return nil, fmt.Errorf("%s: placed %d of %d points: %w", methodNoiseField, len(pts), n, ErrConstructFailed)
		}

		return pts, nil
	}
}
