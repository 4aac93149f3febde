package unionfind_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spanviz/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Singletons(t *testing.T) {
	uf := unionfind.New(4)
	assert.Equal(t, 4, uf.Len())
	assert.Equal(t, 4, uf.Count())
	for i := 0; i < 4; i++ {
		r, err := uf.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, r)
	}
	assert.Equal(t, "[0 1 2 3]", uf.String())
}

func TestNew_NegativePanics(t *testing.T) {
	assert.Panics(t, func() { unionfind.New(-1) })
	assert.NotPanics(t, func() { unionfind.New(0) })
}

func TestUnion_FirstRepresentativeSurvives(t *testing.T) {
	uf := unionfind.New(5)
	require.NoError(t, uf.Union(3, 1))
	require.NoError(t, uf.Union(3, 4))
	assert.Equal(t, "[0 3 2 3 3]", uf.String())

	// merging {0} into {1,3,4}: 1's representative is 3, so 3 survives
	require.NoError(t, uf.Union(1, 0))
	assert.Equal(t, "[3 3 2 3 3]", uf.String())
	assert.Equal(t, 2, uf.Count())
}

func TestUnion_CountAndConnected(t *testing.T) {
	uf := unionfind.New(3)

	ok, err := uf.Connected(0, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, uf.Union(0, 2))
	ok, err = uf.Connected(0, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, uf.Count())

	// repeated union is a no-op on count
	require.NoError(t, uf.Union(0, 2))
	require.NoError(t, uf.Union(2, 0))
	assert.Equal(t, 2, uf.Count())

	require.NoError(t, uf.Union(1, 0))
	assert.Equal(t, 1, uf.Count())
}

func TestFind_Idempotent(t *testing.T) {
	uf := unionfind.New(6)
	require.NoError(t, uf.Union(4, 5))
	a, err := uf.Find(5)
	require.NoError(t, err)
	b, err := uf.Find(5)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 4, a)
}

func TestOutOfRange(t *testing.T) {
	uf := unionfind.New(2)

	_, err := uf.Find(2)
	assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)
	_, err = uf.Find(-1)
	assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)
	_, err = uf.Connected(0, 9)
	assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)

	err = uf.Union(7, 0)
	assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)
	assert.Equal(t, 2, uf.Count(), "failed union must not touch count")
}

// TestCountMatchesDistinctRepresentatives runs random unions and checks the
// count invariant after each one.
func TestCountMatchesDistinctRepresentatives(t *testing.T) {
	const n = 40
	r := rand.New(rand.NewSource(7))
	uf := unionfind.New(n)
	for step := 0; step < 200; step++ {
		require.NoError(t, uf.Union(r.Intn(n), r.Intn(n)))

		distinct := make(map[int]struct{}, n)
		for i := 0; i < n; i++ {
			rep, err := uf.Find(i)
			require.NoError(t, err)
			distinct[rep] = struct{}{}
		}
		require.Equal(t, len(distinct), uf.Count(), "step %d", step)
	}
}

func ExampleUnionFind_Union() {
	uf := unionfind.New(4)
	_ = uf.Union(0, 1)
	_ = uf.Union(2, 3)
	_ = uf.Union(3, 0)
	fmt.Println(uf, uf.Count())
	// Output: [2 2 2 2] 1
}
