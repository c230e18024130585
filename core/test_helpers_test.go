// Package core_test contains test helpers for lvyen/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/katalvlaran/lvyen/core"
)

// Common concurrency sizes used across core tests (avoid magic numbers in test bodies).
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// mustAddEdge adds {u,v} or fails the test immediately.
func mustAddEdge(t *testing.T, g *core.Graph, u, v int) {
	t.Helper()
	if err := g.AddEdge(u, v); err != nil {
		t.Fatalf("AddEdge(%d, %d): unexpected error: %v", u, v, err)
	}
}

// newSquare builds the 4-cycle 0-1-2-3-0.
func newSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(4)
	mustAddEdge(t, g, 0, 1)
	mustAddEdge(t, g, 1, 2)
	mustAddEdge(t, g, 2, 3)
	mustAddEdge(t, g, 0, 3)

	return g
}

// mustErrorIs fails when err does not match target via errors.Is.
func mustErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want error %v, got %v", target, err)
	}
}

// adjacencyOf snapshots every neighbor list of g, order included.
func adjacencyOf(g *core.Graph) [][]int {
	out := make([][]int, g.Size())
	for u := range out {
		out[u] = g.Neighbors(u)
	}

	return out
}

// sameAdjacency compares two adjacency snapshots element-wise, order included.
func sameAdjacency(a, b [][]int) bool {
	return slices.EqualFunc(a, b, func(x, y []int) bool { return slices.Equal(x, y) })
}
