// SPDX-License-Identifier: MIT
// Package: spanviz/builder
//
// impl_random.go — Random(n) and RandomCount(min, max).
//
// Contract:
//   • Random: n ≥ 1, uniform inside the canvas minus margins.
//   • RandomCount: 1 ≤ min ≤ max; draws the count first, then the points,
//     all from the same RNG.
//   • Both need cfg.rng.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	methodRandom      = "Random"
	methodRandomCount = "RandomCount"
	minRandomPoints   = 1
)

// Random returns a Constructor placing n uniformly distributed points.
func Random(n int) Constructor {
	return func(cfg config) ([]r2.Vec, error) {
		if n < minRandomPoints {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minRandomPoints, ErrTooFewPoints)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		lo, hi, err := cfg.area()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, err)
		}

		pts := make([]r2.Vec, n)
		for i := range pts {
			pts[i] = cfg.uniform(lo, hi)
		}

		return pts, nil
	}
}

// RandomCount returns a Constructor placing a uniformly chosen number of
// points in [min, max].
func RandomCount(min, max int) Constructor {
	return func(cfg config) ([]r2.Vec, error) {
		if min < minRandomPoints {
			return nil, fmt.Errorf("%s: min=%d < %d: %w", methodRandomCount, min, minRandomPoints, ErrTooFewPoints)
		}
		if max < min {
			return nil, fmt.Errorf("%s: max=%d < min=%d: %w", methodRandomCount, max, min, ErrBadBounds)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandomCount, ErrNeedRandSource)
		}

		n := min + cfg.rng.Intn(max-min+1)
		pts, err := Random(n)(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodRandomCount, err)
		}

		return pts, nil
	}
}
