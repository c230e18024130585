package dfs

import (
	"github.com/katalvlaran/lvyen/core"
)

// walker holds the state of one backtracking run.
type walker struct {
	graph  *core.Graph
	opts   DFSOptions
	end    int
	length int
	path   []int  // current path, start first
	onPath []bool // onPath[v] iff v is in path
}

// ExactPath returns a simple path start→end with exactly length vertices,
// or nil if none exists. The call holds g.Reserve for its whole run.
//
// length 0, or more than g.Size(), yields nil without a search; start == end
// yields [start] iff length == 1.
func ExactPath(g *core.Graph, start, end, length int, opts ...Option) ([]int, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) || !g.HasVertex(end) {
		return nil, ErrVertexNotFound
	}
	if length < 0 {
		return nil, ErrBadLength
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Trivial answers
	if length == 0 || length > g.Size() {
		return nil, nil
	}
	if start == end {
		if length == 1 {
			return []int{start}, nil
		}
		return nil, nil
	}

	defer g.Reserve()()

	w := &walker{
		graph:  g,
		opts:   dopts,
		end:    end,
		length: length,
		path:   make([]int, 0, length),
		onPath: make([]bool, g.Size()),
	}
	found, err := w.extend(start)
	if err != nil || !found {
		return nil, err
	}

	return w.path, nil
}

// extend pushes id onto the path and reports whether the path could be
// completed from there. On false the path is left as it was before the call.
func (w *walker) extend(id int) (bool, error) {
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	w.path = append(w.path, id)
	w.onPath[id] = true
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(id, len(w.path)-1)
	}

	switch {
	case len(w.path) == w.length:
		if id == w.end {
			return true, nil
		}
	case id != w.end:
		// Neighbors is a snapshot, so no lock is held across recursion.
		for _, nid := range w.graph.Neighbors(id) {
			if w.onPath[nid] {
				continue
			}
			found, err := w.extend(nid)
			if err != nil || found {
				return found, err
			}
		}
	}

	w.onPath[id] = false
	w.path = w.path[:len(w.path)-1]

	return false, nil
}
