// SPDX-License-Identifier: MIT
// Package: spanviz/builder
//
// options.go — functional options for the builder package.
//
// Option constructors validate and panic on meaningless input. Constructors
// themselves return errors.

package builder

import (
	"math"
	"math/rand"
)

// Option customizes the config seen by every Constructor of one Build call.
type Option func(*config)

// WithSeed seeds a new *rand.Rand. Use it in tests to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithBounds sets the canvas size. Panics unless both are finite and positive.
func WithBounds(width, height float64) Option {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		panic("builder: WithBounds requires finite positive width and height")
	}
	return func(c *config) {
		c.width, c.height = width, height
	}
}

// WithMargin sets the empty border kept on every side. Panics on a negative
// or non-finite value.
func WithMargin(m float64) Option {
	if !(m >= 0) || math.IsInf(m, 0) {
		panic("builder: WithMargin requires a finite non-negative margin")
	}
	return func(c *config) {
		c.margin = m
	}
}
