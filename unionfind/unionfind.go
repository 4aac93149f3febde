// Package unionfind implements the disjoint-set structure used by the Kruskal
// stepper to track which nodes are already joined by accepted edges.
//
// Every index stores its representative directly, and Union rewrites all
// members of the second group with a linear scan. There is no path
// compression and no union by rank. The representative that survives a union
// is always the first argument's.
//
// Complexity:
//
//	Find, Connected: O(1).
//	Union:           O(n).
//	Count, Len:      O(1).
package unionfind

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates an index that is not in [0, Len()).
var ErrIndexOutOfRange = errors.New("unionfind: index out of range")

// UnionFind maps each index to a representative and keeps a live group count.
//
// Invariant: count equals the number of distinct values in id.
type UnionFind struct {
	id    []int
	count int
}

// New returns a UnionFind over n singleton groups. It panics if n is negative.
func New(n int) *UnionFind {
	if n < 0 {
		panic("unionfind: New with negative size")
	}
	uf := &UnionFind{id: make([]int, n), count: n}
	for i := range uf.id {
		uf.id[i] = i
	}

	return uf
}

// Len returns the number of indices tracked.
func (uf *UnionFind) Len() int { return len(uf.id) }

// Count returns the number of distinct groups.
func (uf *UnionFind) Count() int { return uf.count }

// Find returns the representative currently stored for i.
func (uf *UnionFind) Find(i int) (int, error) {
	if err := uf.validate(i); err != nil {
		return 0, err
	}

	return uf.id[i], nil
}

// Connected reports whether i and j share a representative.
func (uf *UnionFind) Connected(i, j int) (bool, error) {
	ri, err := uf.Find(i)
	if err != nil {
		return false, err
	}
	rj, err := uf.Find(j)
	if err != nil {
		return false, err
	}

	return ri == rj, nil
}

// Union merges the groups of i and j. Every index mapped to j's representative
// is reassigned to i's representative and Count drops by one. Merging a group
// with itself is a no-op.
func (uf *UnionFind) Union(i, j int) error {
	ri, err := uf.Find(i)
	if err != nil {
		return err
	}
	rj, err := uf.Find(j)
	if err != nil {
		return err
	}
	if ri == rj {
		return nil
	}

	for k, r := range uf.id {
		if r == rj {
			uf.id[k] = ri
		}
	}
	uf.count--

	return nil
}

// String renders the representative array, e.g. "[0 0 2]".
func (uf *UnionFind) String() string {
	return fmt.Sprint(uf.id)
}

func (uf *UnionFind) validate(i int) error {
	if i < 0 || i >= len(uf.id) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(uf.id))
	}

	return nil
}
