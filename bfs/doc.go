// Package bfs provides an early-exit breadth-first shortest-path search over
// a core.Graph, returning the minimum-hop simple path between two vertices.
//
// What
//
//   - Explore vertices level by level from start, recording the discovering
//     predecessor of each vertex. A vertex is discovered at most once.
//   - Stop the instant end is discovered, rebuild the path by walking
//     predecessors back to start, and reverse it.
//   - Report an unreachable end as a nil path with a nil error; errors are
//     reserved for invalid input and cancellation.
//   - start == end yields the single-vertex path [start].
//
// Determinism
//
//	Neighbors are scanned in core insertion order and the first discovery
//	wins, so the result is fully reproducible for a given graph. It is not
//	canonical across graphs that hold the same edges in a different order.
//
// Options
//
//   - WithContext(ctx): checked once per dequeued vertex.
//   - WithOnDiscover(fn): called for every newly discovered vertex.
//   - WithFilterNeighbor(fn): skip individual edges curr→nbr.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	path, err := bfs.ShortestPath(g, 0, 10)
//	if err != nil {
//		// ErrGraphNil, ErrVertexNotFound, ErrOptionViolation or ctx.Err()
//	}
//	if path == nil {
//		// 10 is not reachable from 0
//	}
package bfs
