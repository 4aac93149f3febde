// SPDX-License-Identifier: MIT
// Package: spanviz/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Constructors attach context with %w, never by redefining sentinels.
//   • Constructors never panic; option constructors (WithX) do on
//     meaningless input.

package builder

import "errors"

// ErrTooFewPoints indicates that a count parameter (n, rows, cols, min) is
// below the constructor's minimum.
var ErrTooFewPoints = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadBounds indicates that the canvas minus its margins has no area, or
// that a range parameter is inverted.
var ErrBadBounds = errors.New("builder: bounds out of range")

// ErrConstructFailed indicates that a constructor could not produce its
// points, e.g. NoiseField exhausting its sampling attempts or a nil
// constructor passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")
