// SPDX-License-Identifier: MIT
// Package: spanviz/builder
//
// impl_circle.go — Circle(n): points evenly spaced on a circle.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	methodCircle    = "Circle"
	minCirclePoints = 3
)

// Circle returns a Constructor placing n points counter-clockwise on the
// largest circle that fits the canvas minus margins, starting at angle 0.
// Neighbouring points are equidistant, so every MST over them is a path of
// equal-weight edges; useful for exercising tie-breaking.
func Circle(n int) Constructor {
	return func(cfg config) ([]r2.Vec, error) {
		if n < minCirclePoints {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCircle, n, minCirclePoints, ErrTooFewPoints)
		}
		lo, hi, err := cfg.area()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodCircle, err)
		}

		center := r2.Scale(0.5, r2.Add(lo, hi))
		radius := math.Min(hi.X-lo.X, hi.Y-lo.Y) / 2
		pts := make([]r2.Vec, n)
		for i := range pts {
			theta := 2 * math.Pi * float64(i) / float64(n)
			pts[i] = r2.Add(center, r2.Vec{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)})
		}

		return pts, nil
	}
}
