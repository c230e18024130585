// Package dfs finds a simple path with an exact number of vertices by
// depth-first backtracking over a core.Graph.
//
// ExactPath explores every simple path out of start in neighbor order and
// stops at the first one that reaches end with the requested vertex count.
// It never mutates the graph. The result is exact: nil means no such path
// exists.
//
// Complexity:
//
//   - Time:   O(d^(length-1)) in the worst case, d = maximum degree.
//   - Memory: O(V) for the on-path marks and the recursion stack.
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked on every step.
//   - WithOnVisit(fn)    hook on every vertex pushed onto the current path.
//
// Errors:
//
//   - ErrGraphNil, ErrVertexNotFound, ErrBadLength for invalid input.
//   - ctx.Err() when canceled.
package dfs
