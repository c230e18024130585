// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, ForEachNeighbor, Degree).
// Determinism:
//   - Both Neighbors and ForEachNeighbor yield neighbors in insertion order.
// Concurrency:
//   - Read lock on mu. ForEachNeighbor holds it across the callback.

package core

import "slices"

// Neighbors returns a fresh copy of the neighbors of u in insertion order.
// The copy stays valid while the caller mutates the graph, so it is the safe
// way to iterate edges of u that are about to be removed.
// Out-of-range ids yield nil.
//
// Complexity: O(deg(u)) time and space.
func (g *Graph) Neighbors(u int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(u) {
		return nil
	}

	return slices.Clone(g.adj[u])
}

// ForEachNeighbor calls fn for each neighbor of u in insertion order until fn
// returns false. No copy is made: the read lock is held for the whole walk,
// so fn must not mutate g (it would deadlock).
//
// Complexity: O(deg(u)).
func (g *Graph) ForEachNeighbor(u int, fn func(v int) bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(u) {
		return
	}
	for _, v := range g.adj[u] {
		if !fn(v) {
			return
		}
	}
}

// Degree returns the number of neighbors of u, or 0 for out-of-range ids.
// Complexity: O(1).
func (g *Graph) Degree(u int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(u) {
		return 0
	}

	return len(g.adj[u])
}
