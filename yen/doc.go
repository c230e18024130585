// Package yen finds a simple path with an exact number of vertices between
// two vertices of a core.Graph, by enumerating paths Yen-style: every
// confirmed path is expanded into one-edge deviations, and candidates are
// confirmed one at a time until one has the requested length.
//
// Algorithm
//
//  1. Seed: the breadth-first shortest path start→end. None, or longer than
//     requested, ends the search; exactly the requested length is returned.
//  2. Expand the most recently confirmed path P: for every index j except
//     the last, hide (inside one core.Edit) the next edge of every confirmed
//     path sharing the root P[:j+1] and every edge of P[:j], search spur
//     node P[j] → end, and splice P[:j] with the spur path into a candidate.
//     The edit is restored before the next index, on every exit.
//  3. Select the next candidate from the pool. Empty pool ends the search;
//     exact length is returned; longer than requested ends the search
//     (unless WithExhaustive); anything else is confirmed and expanded.
//
// Candidate order
//
//	OrderLexMax (default) yields the lexicographic maximum of the vertex-id
//	sequence. It ignores length, so stopping at an over-long candidate may
//	miss a match; add WithExhaustive to search until the pool drains.
//	OrderShortestFirst yields fewest vertices first (ties by OrderLexMax);
//	under it the early stop never misses a match.
//
// Identical candidates share one pool slot. Neither the confirmed list nor
// the pool is bounded: dense graphs and distant lengths grow both.
//
// Special cases
//
//   - length 0, or more than the graph has vertices: not found, no search.
//   - start == end: found iff length == 1, as the path [start].
//
// Complexity
//
//	Each expansion of a path with k vertices runs k-1 breadth-first searches,
//	O(k·(V + E)) plus the edge suppression work. The number of expansions
//	is bounded only by the number of simple paths start→end.
//
// Concurrency
//
//	Find holds g.Reserve for its whole run, so concurrent calls on one
//	graph run one after another. Other writers must not touch the graph
//	while a search is in flight.
package yen
