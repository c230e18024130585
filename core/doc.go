// Package core provides the in-memory Graph store used by the path search
// engine: a fixed set of integer vertices 0..n-1 and a symmetric, simple,
// unweighted edge relation.
//
// The Graph G = (V,E) guarantees:
//
//   - u is a neighbor of v iff v is a neighbor of u (mirrored adjacency).
//   - No self-loops (ErrLoopNotAllowed) and no parallel edges (ErrMultiEdgeNotAllowed).
//   - Neighbor order is insertion order; it is the only source of tie-breaking
//     for traversals built on top of the store.
//   - The vertex count is fixed at construction.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int) *Graph                   // O(n)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error                  // O(deg)
//	RemoveEdge(u, v int) error               // O(deg)
//	HasEdge(u, v int) bool                   // O(deg)
//
//	// Query
//	Size() int                               // O(1)
//	Degree(u int) int                        // O(1)
//	EdgeCount() int                          // O(1)
//	Neighbors(u int) []int                   // O(deg), fresh copy
//	ForEachNeighbor(u int, fn func(int) bool)// O(deg), no copy, read-locked
//	Edges() [][2]int                         // O(V+E log E), sorted u<v
//
//	// Cloning & comparison
//	Clone() *Graph                           // O(V+E), adjacency order preserved
//	Equal(o *Graph) bool                     // O(V+E), same size and edge set
//
//	// Scoped mutation
//	BeginEdit() *Edit                        // record removals, Restore() undoes them
//	Reserve() (release func())               // single-writer region for a whole call
//
// Scoped edits:
//
// Algorithms that need to hide edges temporarily (spur searches) open an Edit,
// suppress edges through it and defer Restore. Restore re-inserts every removed
// edge in reverse order at its original adjacency position, so the store is
// identical afterwards, neighbor order included:
//
//	edit := g.BeginEdit()
//	defer edit.Restore()
//	edit.Suppress(0, 1)
//	edit.Isolate(2)
//
// Concurrency:
//
// Every single operation is guarded by one sync.RWMutex. A sequence of
// operations (an Edit, a whole search) is not atomic with respect to other
// writers; callers that share a Graph between concurrent searches must hold
// Reserve for the duration of each call.
//
// Errors:
//
//	ErrVertexNotFound      – vertex id outside 0..n-1
//	ErrLoopNotAllowed      – AddEdge(v, v)
//	ErrMultiEdgeNotAllowed – AddEdge on an existing edge
//	ErrEdgeNotFound        – RemoveEdge on a missing edge
package core
