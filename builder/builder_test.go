package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/spanviz/builder"
	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/prim_kruskal"
)

func inside(t *testing.T, pts []r2.Vec, w, h, margin float64) {
	t.Helper()
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, margin)
		assert.LessOrEqual(t, p.X, w-margin)
		assert.GreaterOrEqual(t, p.Y, margin)
		assert.LessOrEqual(t, p.Y, h-margin)
	}
}

func toNodes(t *testing.T, pts []r2.Vec) []core.Node {
	t.Helper()
	nodes := make([]core.Node, len(pts))
	for i, p := range pts {
		n, err := core.NewNode(i, p.X, p.Y)
		require.NoError(t, err)
		nodes[i] = n
	}

	return nodes
}

func TestRandom_DeterministicAndBounded(t *testing.T) {
	opts := []builder.Option{builder.WithSeed(7), builder.WithBounds(400, 300), builder.WithMargin(10)}
	a, err := builder.Build(opts, builder.Random(50))
	require.NoError(t, err)
	b, err := builder.Build([]builder.Option{builder.WithSeed(7), builder.WithBounds(400, 300), builder.WithMargin(10)}, builder.Random(50))
	require.NoError(t, err)

	assert.Len(t, a, 50)
	assert.Equal(t, a, b)
	inside(t, a, 400, 300, 10)

	c, err := builder.Build([]builder.Option{builder.WithSeed(8)}, builder.Random(50))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRandomCount_Range(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		pts, err := builder.Build([]builder.Option{builder.WithSeed(seed)}, builder.RandomCount(100, 124))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(pts), 100)
		assert.LessOrEqual(t, len(pts), 124)
		inside(t, pts, 800, 600, 20)
	}

	pts, err := builder.Build([]builder.Option{builder.WithRand(rand.New(rand.NewSource(1)))}, builder.RandomCount(5, 5))
	require.NoError(t, err)
	assert.Len(t, pts, 5)
}

func TestGrid_Layout(t *testing.T) {
	pts, err := builder.Build([]builder.Option{builder.WithBounds(100, 100), builder.WithMargin(0)}, builder.Grid(2, 3))
	require.NoError(t, err)
	assert.Equal(t, []r2.Vec{
		{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 100, Y: 0},
		{X: 0, Y: 100}, {X: 50, Y: 100}, {X: 100, Y: 100},
	}, pts)

	one, err := builder.Build([]builder.Option{builder.WithBounds(100, 60), builder.WithMargin(0)}, builder.Grid(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []r2.Vec{{X: 50, Y: 30}}, one)
}

func TestGrid_MSTWeight(t *testing.T) {
	// default canvas: 760 wide, 560 tall → spacing 380 × 280
	pts, err := builder.Build(nil, builder.Grid(3, 3))
	require.NoError(t, err)
	g, err := core.BuildComplete(toNodes(t, pts))
	require.NoError(t, err)

	tree, total, err := prim_kruskal.KruskalMST(g)
	require.NoError(t, err)
	assert.Len(t, tree, 8)
	assert.InDelta(t, 6*280.0+2*380.0, total, 1e-9)
}

func TestCircle_EquidistantNeighbours(t *testing.T) {
	pts, err := builder.Build([]builder.Option{builder.WithBounds(200, 200), builder.WithMargin(0)}, builder.Circle(8))
	require.NoError(t, err)
	require.Len(t, pts, 8)

	center := r2.Vec{X: 100, Y: 100}
	side := core.Distance(pts[0], pts[1])
	for i, p := range pts {
		assert.InDelta(t, 100, core.Distance(center, p), 1e-9)
		assert.InDelta(t, side, core.Distance(p, pts[(i+1)%len(pts)]), 1e-9)
	}
	assert.InDelta(t, 200.0, pts[0].X, 1e-9)
}

func TestNoiseField(t *testing.T) {
	opts := []builder.Option{builder.WithSeed(3)}
	a, err := builder.Build(opts, builder.NoiseField(60, 0.01, 0.2))
	require.NoError(t, err)
	assert.Len(t, a, 60)
	inside(t, a, 800, 600, 20)

	b, err := builder.Build([]builder.Option{builder.WithSeed(3)}, builder.NoiseField(60, 0.01, 0.2))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// 2D OpenSimplex values peak near 0.87, so this threshold is unreachable.
	_, err = builder.Build(opts, builder.NoiseField(5, 0.01, 0.999))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuild_ComposesInOrder(t *testing.T) {
	pts, err := builder.Build(
		[]builder.Option{builder.WithSeed(1)},
		builder.Grid(2, 2),
		builder.Random(3),
		builder.Circle(4),
	)
	require.NoError(t, err)
	assert.Len(t, pts, 11)
	assert.Equal(t, r2.Vec{X: 20, Y: 20}, pts[0])
}

func TestBuild_Errors(t *testing.T) {
	seeded := []builder.Option{builder.WithSeed(1)}
	tests := []struct {
		name string
		opts []builder.Option
		con  builder.Constructor
		want error
	}{
		{"random zero", seeded, builder.Random(0), builder.ErrTooFewPoints},
		{"random no rng", nil, builder.Random(3), builder.ErrNeedRandSource},
		{"count inverted", seeded, builder.RandomCount(5, 4), builder.ErrBadBounds},
		{"count zero", seeded, builder.RandomCount(0, 4), builder.ErrTooFewPoints},
		{"count no rng", nil, builder.RandomCount(1, 4), builder.ErrNeedRandSource},
		{"grid empty", nil, builder.Grid(0, 3), builder.ErrTooFewPoints},
		{"circle small", nil, builder.Circle(2), builder.ErrTooFewPoints},
		{"noise scale", seeded, builder.NoiseField(3, 0, 0), builder.ErrBadBounds},
		{"noise threshold", seeded, builder.NoiseField(3, 1, 1), builder.ErrBadBounds},
		{"noise no rng", nil, builder.NoiseField(3, 1, 0), builder.ErrNeedRandSource},
		{"margin eats canvas", []builder.Option{builder.WithBounds(30, 30), builder.WithMargin(15)}, builder.Grid(2, 2), builder.ErrBadBounds},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, err := builder.Build(tt.opts, tt.con)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, pts)
		})
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithBounds(0, 10) })
	assert.Panics(t, func() { builder.WithBounds(10, math.Inf(1)) })
	assert.Panics(t, func() { builder.WithBounds(math.NaN(), 10) })
	assert.Panics(t, func() { builder.WithMargin(-1) })
	assert.NotPanics(t, func() { builder.WithMargin(0) })
}
