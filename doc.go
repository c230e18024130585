// Package lvyen finds simple paths with an exact number of vertices in
// unweighted, undirected graphs.
//
// The search enumerates start→end paths Yen-style, seeded by a
// breadth-first shortest path, and stops as soon as a path of the requested
// length is selected. Every temporary edge removal is undone before a call
// returns, so the caller's graph keeps its exact adjacency order.
//
// Packages, leaves first:
//
//	core/     int-indexed simple Graph, symmetric edge edits, scoped Edit/Restore
//	builder/  BuildGraph + RandomSparse, Cycle, Path, Complete constructors
//	bfs/      ShortestPath: early-exit minimum-hop search
//	yen/      Find: deviation search for an exact-length path
//	dfs/      ExactPath: backtracking baseline, exact but exponential
//	verify/   Path: structural checks of a returned path
//	cmd/lvyen command-line harness: random graph, timed search, validation
//
// Quick example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	g, _ := builder.BuildGraph(4, nil, builder.Cycle(4))
//	res, _ := yen.Find(g, 0, 2, 3) // res.Path == [0 1 2]
//
//	go install github.com/katalvlaran/lvyen/cmd/lvyen@latest
//	lvyen 5 --vertices 1000 --density 0.1 --start 0 --end 10
package lvyen
