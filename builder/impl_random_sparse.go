// SPDX-License-Identifier: MIT
// Package: lvyen/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p. Self-pairs are never tried.
//
// Contract:
//   - 1 ≤ n ≤ g.Size() (else ErrTooFewVertices / ErrBadSize).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (j>i).
//   - Deterministic outcomes for fixed seed due to fixed trial order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvyen/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over vertices 0..n-1 with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSpan(methodRandomSparse, g, n, minRandomSparseVertices); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		rng := cfg.rng
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var hit bool
				switch {
				case p == probMin:
					hit = false
				case p == probMax:
					hit = true
				default:
					hit = rng.Float64() < p
				}
				if !hit {
					continue
				}
				if err := addEdge(methodRandomSparse, g, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
