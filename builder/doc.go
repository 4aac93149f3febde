// Package builder generates deterministic point sets for MST runs.
//
// A point set is a []r2.Vec placed inside a rectangular canvas. Generators are
// Constructors composed by Build, in the same functional-options style used
// across spanviz:
//
//	pts, err := builder.Build(
//		[]builder.Option{builder.WithSeed(42), builder.WithBounds(800, 600)},
//		builder.RandomCount(100, 124),
//	)
//
// Provided constructors:
//
//   - Random(n):                    n uniform points.
//   - RandomCount(min, max):        a uniform count in [min, max], then Random.
//   - Grid(rows, cols):             a regular lattice, row-major.
//   - Circle(n):                    n points evenly spaced on the largest circle.
//   - NoiseField(n, scale, thr):    rejection-sampled points whose OpenSimplex
//     density at (x·scale, y·scale) exceeds thr.
//
// Stochastic constructors need a random source (WithSeed or WithRand) and
// return ErrNeedRandSource otherwise. Equal options and constructor order
// give identical point sets.
package builder
