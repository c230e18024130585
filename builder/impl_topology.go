// SPDX-License-Identifier: MIT
// Package: lvyen/builder
//
// impl_topology.go - deterministic constructors Cycle(n), Path(n), Complete(n).
//
// Contract:
//   • Work on the vertex prefix 0..n-1; n ≤ g.Size() (else ErrBadSize).
//   • Minimums: Cycle n ≥ 3, Path n ≥ 2, Complete n ≥ 1 (else ErrTooFewVertices).
//   • Edge emission order is fixed (documented per constructor), which fixes
//     neighbor order in the core graph.
//
// Complexity:
//   • Cycle, Path: O(n). Complete: O(n²).

package builder

import "github.com/katalvlaran/lvyen/core"

const (
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodComplete = "Complete"

	minCycleNodes    = 3
	minPathNodes     = 2
	minCompleteNodes = 1
)

// Cycle returns a Constructor that builds the simple cycle C_n.
// Edges are emitted as i-(i+1)%n for i = 0..n-1.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkSpan(methodCycle, g, n, minCycleNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the simple path P_n.
// Edges are emitted as i-(i+1) for i = 0..n-2.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkSpan(methodPath, g, n, minPathNodes); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n.
// Edges are emitted for i asc, j asc with j > i.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkSpan(methodComplete, g, n, minCompleteNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
