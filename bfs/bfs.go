package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvyen/core"
)

// noParent marks a vertex that has not been discovered (or the start vertex).
const noParent = -1

// walker encapsulates mutable BFS state.
type walker struct {
	graph  *core.Graph
	opts   BFSOptions
	ctx    context.Context
	queue  []int
	parent []int
	seen   []bool
	end    int
}

// ShortestPath returns a minimum-hop path from start to end in g, first
// vertex start and last vertex end. When end is unreachable it returns
// (nil, nil).
// Returns ErrGraphNil, ErrVertexNotFound or ErrOptionViolation for invalid
// input, and ctx.Err() when the context is cancelled mid-search.
func ShortestPath(g *core.Graph, start, end int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.Size()
	if start < 0 || start >= n || end < 0 || end >= n {
		return nil, fmt.Errorf("%w: start=%d end=%d on %d vertices", ErrVertexNotFound, start, end, n)
	}
	if start == end {
		return []int{start}, nil
	}

	w := &walker{
		graph:  g,
		opts:   o,
		ctx:    o.Ctx,
		queue:  make([]int, 0, n),
		parent: make([]int, n),
		seen:   make([]bool, n),
		end:    end,
	}
	for i := range w.parent {
		w.parent[i] = noParent
	}
	w.seen[start] = true
	w.queue = append(w.queue, start)

	return w.loop()
}

// loop processes the queue until end is discovered, the queue drains, or the
// context is cancelled.
func (w *walker) loop() ([]int, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		curr := w.queue[0]
		w.queue = w.queue[1:]
		if w.expand(curr) {
			return w.path(), nil
		}
	}

	// start and end are not connected
	return nil, nil
}

// expand discovers every unseen neighbor of curr and reports whether end was
// among them.
func (w *walker) expand(curr int) bool {
	found := false
	w.graph.ForEachNeighbor(curr, func(nbr int) bool {
		if w.seen[nbr] || !w.opts.FilterNeighbor(curr, nbr) {
			return true
		}
		w.seen[nbr] = true
		w.parent[nbr] = curr
		w.opts.OnDiscover(nbr, curr)
		if nbr == w.end {
			found = true
			return false
		}
		w.queue = append(w.queue, nbr)
		return true
	})

	return found
}

// path walks predecessor links from end back to start and reverses them.
func (w *walker) path() []int {
	path := []int{w.end}
	for cur := w.end; w.parent[cur] != noParent; {
		cur = w.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
