// SPDX-License-Identifier: MIT
//
// Package builder constructs core.Graph fixtures: random graphs for the
// command-line harness and small deterministic topologies for tests and
// examples.
//
// The package offers the following key components:
//
//   - BuildGraph(n, bopts, cons...): creates an n-vertex core.Graph and
//     applies constructors in order.
//   - Constructors (Constructor closures):
//     – RandomSparse(n, p): each unordered pair {i<j} of 0..n-1 independently with probability p.
//     – Cycle(n):           C_n over 0..n-1.
//     – Path(n):            P_n over 0..n-1.
//     – Complete(n):        K_n over 0..n-1.
//   - Options (BuilderOption):
//     – WithSeed(seed):     deterministic RNG.
//     – WithRand(r):        caller supplied RNG.
//
// Constructors work on the vertex prefix 0..n-1 of the target graph, so
// several of them can be combined over one graph. A constructor whose n
// exceeds the graph size fails with ErrBadSize.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical
//     graphs, neighbor order included.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Runtime validation errors are sentinels wrapped with method context; branch
//     with errors.Is.
package builder
