// File: types.go
// Role: Graph type, sentinel errors and the NewGraph constructor.
// Determinism:
//   - Adjacency slices keep insertion order; no method reorders them silently.
// Concurrency:
//   - mu guards adj and edges; reserve serializes whole search calls.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex outside 0..n-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Graph is an undirected, unweighted, simple graph over the vertices 0..n-1.
//
// adj[u] lists the neighbors of u in insertion order. Every edge {u,v} appears
// exactly once in adj[u] and exactly once in adj[v].
type Graph struct {
	mu      sync.RWMutex // guards adj and edges
	reserve sync.Mutex   // held by Reserve for a whole multi-step call

	adj   [][]int // vertex → neighbors, insertion order
	edges int     // number of undirected edges
}

// NewGraph creates a Graph with n isolated vertices 0..n-1.
// A negative n is treated as zero.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{adj: make([][]int, n)}
}

// Size returns the number of vertices.
// Complexity: O(1).
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// HasVertex reports whether id lies in 0..Size()-1.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.valid(id)
}

// Reserve acquires the graph's single-writer region and returns the function
// that releases it. Searches that suppress and restore edges hold it for
// their entire duration, so two of them never interleave on one Graph.
//
//	defer g.Reserve()()
func (g *Graph) Reserve() (release func()) {
	g.reserve.Lock()

	return g.reserve.Unlock
}

// valid checks a vertex id; caller holds mu.
func (g *Graph) valid(id int) bool {
	return id >= 0 && id < len(g.adj)
}
