// Package verify checks that a path returned by a search is what was asked
// for: the right vertex count, the right endpoints, real edges only and no
// repeated vertex.
package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvyen/core"
)

// Sentinel errors for path validation.
var (
	// ErrLength means the path does not have the requested vertex count.
	ErrLength = errors.New("verify: wrong path length")

	// ErrEndpoints means the path does not start at start or end at end.
	ErrEndpoints = errors.New("verify: wrong endpoints")

	// ErrMissingEdge means two consecutive vertices are not adjacent.
	ErrMissingEdge = errors.New("verify: consecutive vertices are not adjacent")

	// ErrRepeatedVertex means the path visits a vertex twice.
	ErrRepeatedVertex = errors.New("verify: path contains a loop")
)

// Path validates path against g and the request (start, end, length).
// All failures are collected and joined, so the diagnostic is complete;
// errors.Is works against each sentinel.
func Path(g *core.Graph, path []int, start, end, length int) error {
	var errs []error

	if len(path) != length {
		errs = append(errs, fmt.Errorf("%w: got %d vertices, want %d", ErrLength, len(path), length))
	}
	if len(path) == 0 {
		return errors.Join(append(errs, fmt.Errorf("%w: empty path", ErrEndpoints))...)
	}
	if path[0] != start || path[len(path)-1] != end {
		errs = append(errs, fmt.Errorf("%w: got %d→%d, want %d→%d",
			ErrEndpoints, path[0], path[len(path)-1], start, end))
	}
	for i := 0; i+1 < len(path); i++ {
		if !g.HasEdge(path[i], path[i+1]) {
			errs = append(errs, fmt.Errorf("%w: %d-%d at index %d", ErrMissingEdge, path[i], path[i+1], i))
		}
	}
	seen := make(map[int]int, len(path))
	for i, v := range path {
		if j, dup := seen[v]; dup {
			errs = append(errs, fmt.Errorf("%w: vertex %d at indices %d and %d", ErrRepeatedVertex, v, j, i))
			continue
		}
		seen[v] = i
	}

	return errors.Join(errs...)
}
