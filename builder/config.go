// SPDX-License-Identifier: MIT
// Package: spanviz/builder
//
// config.go — resolved configuration and deterministic defaults.
//
// Defaults:
//   • rng     = nil         (stochastic constructors fail with ErrNeedRandSource)
//   • width   = 800, height = 600
//   • margin  = 20
//
// Options apply in order; later ones override earlier ones.

package builder

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultMargin = 20
)

// config holds every knob a Constructor may read. It is passed by value.
type config struct {
	rng           *rand.Rand
	width, height float64
	margin        float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		width:  defaultWidth,
		height: defaultHeight,
		margin: defaultMargin,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// area returns the drawable rectangle as its min and max corners.
func (c config) area() (lo, hi r2.Vec, err error) {
	lo = r2.Vec{X: c.margin, Y: c.margin}
	hi = r2.Vec{X: c.width - c.margin, Y: c.height - c.margin}
	if hi.X <= lo.X || hi.Y <= lo.Y {
		return lo, hi, fmt.Errorf("canvas %gx%g with margin %g: %w", c.width, c.height, c.margin, ErrBadBounds)
	}

	return lo, hi, nil
}

// uniform draws one point in [lo, hi).
func (c config) uniform(lo, hi r2.Vec) r2.Vec {
	return r2.Vec{
		X: lo.X + c.rng.Float64()*(hi.X-lo.X),
		Y: lo.Y + c.rng.Float64()*(hi.Y-lo.Y),
	}
}
