package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexNotFound indicates start or end lies outside the graph.
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrBadLength indicates a negative target length.
	ErrBadLength = errors.New("dfs: negative path length")
)

// Option configures optional behavior of ExactPath.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for the backtracking search.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked with the current depth whenever a
	// vertex is appended to the path under construction.
	OnVisit func(id, depth int)
}

// DefaultOptions returns DFSOptions with a background context and no hook.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a hook on every path extension.
func WithOnVisit(fn func(id, depth int)) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}
