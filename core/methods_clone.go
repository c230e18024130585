// File: methods_clone.go
// Role: Cloning and edge-set comparison.
// Determinism:
//   - Clone preserves adjacency order exactly.
// Concurrency:
//   - Read locks on the source; the clone is a fresh instance.

package core

import "slices"

// Clone returns a deep copy of g with identical adjacency order.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{adj: make([][]int, len(g.adj)), edges: g.edges}
	for u, nbrs := range g.adj {
		out.adj[u] = slices.Clone(nbrs)
	}

	return out
}

// Equal reports whether g and o have the same vertex count and the same edge
// set. Neighbor order is ignored.
// Complexity: O(V + E log E).
func (g *Graph) Equal(o *Graph) bool {
	if g == o {
		return true
	}
	if g == nil || o == nil {
		return false
	}
	if g.Size() != o.Size() || g.EdgeCount() != o.EdgeCount() {
		return false
	}

	return slices.Equal(g.Edges(), o.Edges())
}
