// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeCount/Edges,
//       plus the position-aware detach/attach pair used by Edit.
// Determinism:
//   - AddEdge appends at the tail of both adjacency slices.
//   - RemoveEdge preserves the relative order of the remaining neighbors.
//   - Edges() returns pairs (u<v) sorted by u asc, then v asc.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"slices"
)

// AddEdge inserts the undirected edge {u,v}.
//
// Steps:
//  1. Validate both endpoints (ErrVertexNotFound) and reject u==v (ErrLoopNotAllowed).
//  2. Lock mu, reject an existing edge (ErrMultiEdgeNotAllowed).
//  3. Append v to adj[u] and u to adj[v].
//
// Complexity: O(deg(u)) for the duplicate check.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.valid(u) || !g.valid(v) {
		return fmt.Errorf("%w: AddEdge(%d, %d) on %d vertices", ErrVertexNotFound, u, v, len(g.adj))
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	if slices.Contains(g.adj[u], v) {
		return ErrMultiEdgeNotAllowed
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges++

	return nil
}

// RemoveEdge deletes the undirected edge {u,v} from both adjacency slices.
// Removing an absent edge returns ErrEdgeNotFound (no silent ignore).
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.valid(u) || !g.valid(v) {
		return fmt.Errorf("%w: RemoveEdge(%d, %d) on %d vertices", ErrVertexNotFound, u, v, len(g.adj))
	}
	if _, _, ok := g.detach(u, v); !ok {
		return ErrEdgeNotFound
	}

	return nil
}

// HasEdge reports whether the edge {u,v} exists. Out-of-range ids report false.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(u) || !g.valid(v) {
		return false
	}

	return slices.Contains(g.adj[u], v)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Edges returns a snapshot of all edges as pairs {u,v} with u<v,
// sorted by u then v. The result is independent of adjacency order, which
// makes it suitable for comparing edge sets.
// Complexity: O(V + E log E).
func (g *Graph) Edges() [][2]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][2]int, 0, g.edges)
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	slices.SortFunc(out, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})

	return out
}

// detach removes {u,v} from both adjacency slices and reports the positions
// v held in adj[u] and u held in adj[v]. Caller holds mu for writing.
func (g *Graph) detach(u, v int) (iu, iv int, ok bool) {
	iu = slices.Index(g.adj[u], v)
	if iu < 0 {
		return 0, 0, false
	}
	iv = slices.Index(g.adj[v], u)
	g.adj[u] = slices.Delete(g.adj[u], iu, iu+1)
	g.adj[v] = slices.Delete(g.adj[v], iv, iv+1)
	g.edges--

	return iu, iv, true
}

// attach is the exact inverse of detach when applied in reverse order of
// removals: it re-inserts v at position iu of adj[u] and u at position iv of
// adj[v]. Caller holds mu for writing.
func (g *Graph) attach(u, v, iu, iv int) {
	g.adj[u] = slices.Insert(g.adj[u], iu, v)
	g.adj[v] = slices.Insert(g.adj[v], iv, u)
	g.edges++
}
